package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/intl"
	"github.com/iota-uz/iota-actions/pkg/types"
)

// WithPageContext builds the page context from the localizer ProvideLocalizer stored.
// Without one the request fails with a 500 instead of rendering untranslated keys.
func WithPageContext() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			localizer, hasLocalizer := intl.UseLocalizer(r.Context())
			locale, hasLocale := intl.UseLocale(r.Context())
			if !hasLocalizer || !hasLocale {
				composables.UseLogger(r.Context()).WithError(intl.ErrNoLocalizer).Error("page context unavailable")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			ctx := composables.WithPageCtx(r.Context(), &types.PageContext{
				URL:       r.URL,
				Localizer: localizer,
				Locale:    locale,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
