package controllers

import (
	"net/http"
	"strings"

	"github.com/iota-uz/iota-actions/modules/actions/presentation/templates/pages/error_pages"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/httpapi"
	"github.com/iota-uz/iota-actions/pkg/middleware"
	"github.com/iota-uz/iota-actions/pkg/routing"
)

type ErrorHandlersOptions struct {
	Entrypoint string
	RoutesPath string
}

func classifier(opts []ErrorHandlersOptions) *routing.Classifier {
	var resolved ErrorHandlersOptions
	if len(opts) > 0 {
		resolved = opts[0]
	}
	rules, err := routing.LoadRules(resolved.RoutesPath, resolved.Entrypoint)
	if err != nil {
		rules = nil
	}
	return routing.NewClassifier(rules)
}

func handler404(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := error_pages.NotFound().Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound answers API paths with a JSON envelope and everything else with the localized 404 page.
func NotFound(app application.Application, opts ...ErrorHandlersOptions) http.HandlerFunc {
	routes := classifier(opts)
	page := middleware.ProvideLocalizer(app)(middleware.WithPageContext()(http.HandlerFunc(handler404)))

	return func(w http.ResponseWriter, r *http.Request) {
		if routes.WantsJSON(r.URL.Path) {
			meta := map[string]string{"path": r.URL.Path}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeNotFound, "not found", meta)
			return
		}
		page.ServeHTTP(w, r)
	}
}

func MethodNotAllowed(opts ...ErrorHandlersOptions) http.HandlerFunc {
	routes := classifier(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		if routes.WantsJSON(r.URL.Path) {
			meta := map[string]string{
				"method": r.Method,
				"path":   r.URL.Path,
			}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.CodeMethodNotAllowed, "method not allowed", meta)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func requestIDFromResponse(w http.ResponseWriter, r *http.Request) string {
	if requestID := strings.TrimSpace(w.Header().Get("X-Request-ID")); requestID != "" {
		return requestID
	}
	return strings.TrimSpace(r.Header.Get("X-Request-ID"))
}
