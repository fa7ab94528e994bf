package routelint

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	internalassets "github.com/iota-uz/iota-actions/internal/assets"
	internalserver "github.com/iota-uz/iota-actions/internal/server"
	"github.com/iota-uz/iota-actions/modules"
	"github.com/iota-uz/iota-actions/modules/actions"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/controllers"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
	"github.com/iota-uz/iota-actions/pkg/metrics"
	"github.com/iota-uz/iota-actions/pkg/routing"
)

func buildRouter(t *testing.T) *mux.Router {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := application.New(&application.ApplicationOptions{Logger: logger})

	require.NoError(t, modules.Load(app, actions.NewModule(&actions.ModuleOptions{PageSize: 10, MaxPageSize: 100})))
	app.RegisterNavItems(modules.NavLinks...)
	app.RegisterHashFsAssets(internalassets.HashFS)
	app.RegisterControllers(
		controllers.NewStaticFilesController(app.HashFsAssets(), false),
		internalserver.NewHealthController((*pgxpool.Pool)(nil)),
		metrics.NewPrometheusController(""),
	)

	srv, err := internalserver.Default(&internalserver.DefaultOptions{
		Logger:        logger,
		Configuration: &configuration.Configuration{},
		Application:   app,
		Entrypoint:    "server",
	})
	require.NoError(t, err)
	return srv.Router()
}

func TestServerRoutes_AreClassified(t *testing.T) {
	router := buildRouter(t)
	rules, err := routing.LoadRules("", "server")
	require.NoError(t, err)
	classifier := routing.NewClassifier(rules)

	var templates []string
	require.NoError(t, router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		templates = append(templates, tpl)
		return nil
	}))
	sort.Strings(templates)
	require.NotEmpty(t, templates)

	for _, tpl := range templates {
		_, ok := classifier.Match(tpl)
		require.Truef(t, ok, "route %q is not covered by routes.yaml", tpl)
	}
	require.Contains(t, templates, "/api/actions")
	require.Contains(t, templates, "/api/actions/export")
}

func TestServerRoutes_APIErrorsAreJSON(t *testing.T) {
	router := buildRouter(t)

	for _, tc := range []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
		{http.MethodPost, "/api/actions", http.StatusMethodNotAllowed},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equal(t, tc.code, rec.Code, tc.path)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"), tc.path)
	}
}
