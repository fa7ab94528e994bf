package commands

import (
	"context"
	"fmt"

	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/commands/common"
	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

// SeedDatabase runs every seed function the modules registered.
func SeedDatabase(mods ...application.Module) error {
	conf := configuration.Use()
	app, pool, err := common.NewApplicationWithDefaults(mods...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer pool.Close()

	ctx := composables.WithPool(context.Background(), pool)
	if err := app.Seeder().Seed(ctx, app); err != nil {
		return err
	}
	conf.Logger().Info("Seeding complete")
	return nil
}
