package commands

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate registers mods on a pool-less application and runs goose over their schemas.
func Migrate(ctx context.Context, direction string, mods ...application.Module) error {
	if ctx == nil {
		ctx = context.Background()
	}
	conf := configuration.Use()
	app := application.New(&application.ApplicationOptions{
		Bundle: application.LoadBundle(),
		Logger: conf.Logger(),
	})
	for _, m := range mods {
		if err := m.Register(app); err != nil {
			return err
		}
	}

	db, err := sql.Open("postgres", conf.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return RunMigrations(ctx, app.Migrations(), db, direction)
}

func RunMigrations(ctx context.Context, migrations application.MigrationManager, db *sql.DB, direction string) error {
	switch direction {
	case MigrateUp:
		return migrations.Up(ctx, db)
	case MigrateDown:
		return migrations.Down(ctx, db)
	case MigrateStatus:
		return migrations.Status(ctx, db)
	default:
		return fmt.Errorf("unknown migration direction %q (expected up, down or status)", direction)
	}
}
