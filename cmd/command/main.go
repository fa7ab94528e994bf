package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/iota-uz/iota-actions/pkg/commands"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "command",
		Short:         "Maintenance commands for the actions service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(commands.NewUtilityCommands()...)
	return cmd
}

func main() {
	err := newRootCmd().Execute()
	configuration.Use().Unload()
	if err != nil {
		os.Exit(1)
	}
}
