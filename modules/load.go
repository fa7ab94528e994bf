package modules

import (
	"slices"

	"github.com/iota-uz/iota-actions/modules/actions"
	"github.com/iota-uz/iota-actions/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		actions.NewModule(nil),
	}

	NavLinks = slices.Concat(
		actions.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
