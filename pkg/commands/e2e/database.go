package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/iota-uz/iota-actions/modules"
	"github.com/iota-uz/iota-actions/pkg/commands/common"
	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

const DBName = "actions_e2e"

func options() configuration.DatabaseOptions {
	opts := configuration.Use().Database
	opts.Name = DBName
	return opts
}

func maintenanceConn(ctx context.Context) (*pgx.Conn, error) {
	opts := configuration.Use().Database
	opts.Name = "postgres"
	conn, err := pgx.Connect(ctx, opts.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	return conn, nil
}

func GetE2EPool(ctx context.Context) (*pgxpool.Pool, error) {
	opts := options()
	return pgxpool.New(ctx, opts.ConnectionString())
}

// Create drops and creates an empty e2e database
func Create() error {
	ctx := context.Background()
	conn, err := maintenanceConn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(ctx) }()

	name := pgx.Identifier{DBName}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
		return fmt.Errorf("failed to drop existing e2e database: %w", err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		return fmt.Errorf("failed to create e2e database: %w", err)
	}
	configuration.Use().Logger().WithField("database", DBName).Info("Created e2e database")
	return nil
}

func Drop() error {
	ctx := context.Background()
	conn, err := maintenanceConn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(ctx) }()

	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to drop e2e database: %w", err)
	}
	configuration.Use().Logger().WithField("database", DBName).Info("Dropped e2e database")
	return nil
}

func DatabaseExists() (bool, error) {
	ctx := context.Background()
	conn, err := maintenanceConn(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = conn.Close(ctx) }()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", DBName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if database exists: %w", err)
	}
	return exists, nil
}

// Migrate applies every module schema to the e2e database
func Migrate() error {
	ctx := context.Background()
	pool, err := GetE2EPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to e2e database: %w", err)
	}
	defer pool.Close()

	app, err := common.NewApplication(pool, modules.BuiltInModules...)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	opts := options()
	db, err := sql.Open("postgres", opts.ConnectionString())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := app.Migrations().Up(ctx, db); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	configuration.Use().Logger().Info("Applied migrations to e2e database")
	return nil
}

// Seed loads the sample dataset into the e2e database
func Seed() error {
	ctx := context.Background()
	pool, err := GetE2EPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to e2e database: %w", err)
	}
	defer pool.Close()

	app, err := common.NewApplication(pool, modules.BuiltInModules...)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	if err := app.Seeder().Seed(composables.WithPool(ctx, pool), app); err != nil {
		return err
	}
	configuration.Use().Logger().Info("Seeded e2e database with test data")
	return nil
}

// TruncateAllTables clears data but keeps goose's version table.
func TruncateAllTables() error {
	ctx := context.Background()
	pool, err := GetE2EPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to e2e database: %w", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'goose_db_version'
		ORDER BY tablename`)
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("failed to read table names: %w", err)
	}
	if len(tables) == 0 {
		return nil
	}

	if _, err := pool.Exec(ctx, truncateStatement(tables)); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	configuration.Use().Logger().WithField("count", len(tables)).Info("Truncated e2e tables")
	return nil
}

func truncateStatement(tables []string) string {
	quoted := make([]string, len(tables))
	for i, t := range tables {
		quoted[i] = pgx.Identifier{t}.Sanitize()
	}
	return "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE"
}

// Setup truncates an existing e2e database or creates and migrates a new one, then seeds it.
func Setup() error {
	exists, err := DatabaseExists()
	if err != nil {
		return err
	}
	if exists {
		if err := TruncateAllTables(); err != nil {
			return err
		}
	} else {
		if err := Create(); err != nil {
			return err
		}
		if err := Migrate(); err != nil {
			return err
		}
	}
	return Seed()
}

func Reset() error {
	if err := Create(); err != nil {
		return err
	}
	if err := Migrate(); err != nil {
		return err
	}
	return Seed()
}
