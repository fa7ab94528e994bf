package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/internal/assets"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/locales"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/httpapi"
)

func newFallbackRouter(t *testing.T) *mux.Router {
	t.Helper()
	app := application.New(&application.ApplicationOptions{})
	app.RegisterLocaleFiles(&locales.FS)

	router := mux.NewRouter()
	router.HandleFunc("/api/actions", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodGet)
	router.HandleFunc("/actions", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodGet)
	router.NotFoundHandler = NotFound(app, ErrorHandlersOptions{Entrypoint: "server"})
	router.MethodNotAllowedHandler = MethodNotAllowed(ErrorHandlersOptions{Entrypoint: "server"})
	return router
}

func TestNotFound_APIPathGetsJSON(t *testing.T) {
	rec := serve(newFallbackRouter(t), "/api/missing", map[string]string{"X-Request-ID": "req-1"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "NOT_FOUND", envelope.Code)
	require.Equal(t, "/api/missing", envelope.Meta["path"])
	require.Equal(t, "req-1", envelope.Meta["request_id"])
}

func TestNotFound_PageIsLocalized(t *testing.T) {
	rec := serve(newFallbackRouter(t), "/nowhere?lang=zh", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	require.Equal(t, "页面未找到", doc.Find("title").Text())
	require.Equal(t, "/actions", doc.Find("a.btn-primary").AttrOr("href", ""))
}

func TestMethodNotAllowed(t *testing.T) {
	router := newFallbackRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/actions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Contains(t, rec.Body.String(), "METHOD_NOT_ALLOWED")

	req = httptest.NewRequest(http.MethodPost, "/actions", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Contains(t, rec.Body.String(), "Method not allowed")
}

func TestStaticFilesController(t *testing.T) {
	router := mux.NewRouter()
	NewStaticFilesController([]*hashfs.FS{assets.HashFS}, false).Register(router)

	rec := serve(router, assets.Path("css/actions.css"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	require.Equal(t, "no-cache", rec.Header().Get("Pragma"))

	rec = serve(router, "/assets/css/missing.css", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
