package actions

import (
	"embed"

	"github.com/iota-uz/iota-actions/modules/actions/infrastructure/persistence"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/controllers"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/locales"
	"github.com/iota-uz/iota-actions/modules/actions/seed"
	"github.com/iota-uz/iota-actions/modules/actions/services"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type ModuleOptions struct {
	PageSize    int
	MaxPageSize int
	Placeholder configuration.PlaceholderOptions
}

func NewModule(opts *ModuleOptions) application.Module {
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	opts := m.options
	if opts == nil {
		conf := configuration.Use()
		opts = &ModuleOptions{
			PageSize:    conf.PageSize,
			MaxPageSize: conf.MaxPageSize,
			Placeholder: conf.Placeholder,
		}
	}

	app.RegisterLocaleFiles(&locales.FS)
	app.Migrations().RegisterSchema(&migrationFiles)
	app.RegisterServices(
		services.NewActionsService(
			persistence.NewActionRepository(),
			opts.PageSize,
			opts.MaxPageSize,
		),
	)
	app.RegisterControllers(
		controllers.NewActionsController(app, opts.Placeholder),
		controllers.NewActionsAPIController(app),
	)
	app.Seeder().Register(seed.CreateActions)
	return nil
}

func (m *Module) Name() string {
	return "actions"
}
