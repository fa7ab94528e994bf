package application

import (
	"embed"
	"testing"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/pkg/types"
)

//go:embed testdata/locales/*.json
var testLocales embed.FS

//go:embed testdata/schema/*.sql
var testSchema embed.FS

type stubController struct{ key string }

func (c stubController) Register(r *mux.Router) {}
func (c stubController) Key() string            { return c.key }

type stubService struct{ name string }

func TestApplication_ServiceRegistry(t *testing.T) {
	app := New(&ApplicationOptions{})
	svc := &stubService{name: "actions"}
	app.RegisterServices(svc)

	got := app.Service(stubService{}).(*stubService)
	require.Same(t, svc, got)
	require.Panics(t, func() { app.Service(struct{ X int }{}) })
}

func TestApplication_ControllersAreOrderedAndDeduplicated(t *testing.T) {
	app := New(&ApplicationOptions{})
	app.RegisterControllers(stubController{key: "/b"}, stubController{key: "/a"}, stubController{key: "/b"})

	controllers := app.Controllers()
	require.Len(t, controllers, 2)
	require.Equal(t, "/a", controllers[0].Key())
	require.Equal(t, "/b", controllers[1].Key())
}

func TestApplication_LocalesAndNavItems(t *testing.T) {
	app := New(&ApplicationOptions{})
	app.RegisterLocaleFiles(&testLocales)
	app.RegisterNavItems(types.NavigationItem{Name: "NavigationLinks.Actions", Href: "/actions"})

	items := app.NavItems(i18n.NewLocalizer(app.Bundle(), "en"))
	require.Len(t, items, 1)
	require.Equal(t, "Actions", items[0].Name)
	require.Equal(t, "/actions", items[0].Href)
	require.Equal(t, []string{"en", "zh"}, app.GetSupportedLanguages())
}

func TestMigrationManager_RegisterSchemaFindsSQLDirs(t *testing.T) {
	m := NewMigrationManager()
	m.RegisterSchema(&testSchema)

	sources := m.Sources()
	require.Len(t, sources, 1)
	require.Equal(t, "testdata/schema", sources[0].Dir)
}
