package commands

import (
	"github.com/spf13/cobra"

	"github.com/iota-uz/iota-actions/modules"
	"github.com/iota-uz/iota-actions/pkg/commands/e2e"
)

// NewUtilityCommands creates the maintenance commands (check_tr_keys, check_tr_usage, seed, migrate, e2e)
func NewUtilityCommands() []*cobra.Command {
	return []*cobra.Command{
		newCheckTrKeysCmd(),
		newCheckTrUsageCmd(),
		newSeedCmd(),
		newMigrateCmd(),
		newE2ECmd(),
	}
}

func newCheckTrKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check_tr_keys",
		Short: "Check translation key consistency across all locales",
		Long:  `Validates that every translation key is present in every supported locale and reports any missing translations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return CheckTrKeys(nil, modules.BuiltInModules...)
		},
	}
}

func newCheckTrUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check_tr_usage",
		Short: "Check that translation keys used in code exist in the locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			return CheckTrUsage(nil, modules.BuiltInModules...)
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample actions",
		Long:  `Populates statuses, processes, businesses, users and sample actions. Does nothing when actions already exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return SeedDatabase(modules.BuiltInModules...)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	for _, direction := range []string{MigrateUp, MigrateDown, MigrateStatus} {
		direction := direction
		cmd.AddCommand(&cobra.Command{
			Use:   direction,
			Short: "Run goose " + direction + " for every registered module schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Migrate(cmd.Context(), direction, modules.BuiltInModules...)
			},
		})
	}
	return cmd
}

func newE2ECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "e2e",
		Short: "Manage the end-to-end test database",
	}
	cmd.AddCommand(
		&cobra.Command{Use: "setup", Short: "Create (or truncate), migrate and seed the e2e database", RunE: func(*cobra.Command, []string) error { return e2e.Setup() }},
		&cobra.Command{Use: "reset", Short: "Drop and recreate the e2e database", RunE: func(*cobra.Command, []string) error { return e2e.Reset() }},
		&cobra.Command{Use: "drop", Short: "Drop the e2e database", RunE: func(*cobra.Command, []string) error { return e2e.Drop() }},
	)
	return cmd
}
