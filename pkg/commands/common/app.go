package common

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

// NewApplication registers mods against an existing pool.
func NewApplication(pool *pgxpool.Pool, mods ...application.Module) (application.Application, error) {
	conf := configuration.Use()
	app := application.New(&application.ApplicationOptions{
		Pool:   pool,
		Bundle: application.LoadBundle(),
		Logger: conf.Logger(),
	})
	for _, m := range mods {
		if err := m.Register(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// NewApplicationWithDefaults connects to the configured database and registers mods.
// The caller closes the returned pool.
func NewApplicationWithDefaults(mods ...application.Module) (application.Application, *pgxpool.Pool, error) {
	conf := configuration.Use()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return nil, nil, err
	}
	app, err := NewApplication(pool, mods...)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return app, pool, nil
}
