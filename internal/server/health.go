package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/httpapi"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db      pinger
	timeout time.Duration
}

// NewHealthController reports "ok" while db answers a ping within two seconds.
func NewHealthController(db pinger) application.Controller {
	return &HealthController{db: db, timeout: 2 * time.Second}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Health).Methods(http.MethodGet)
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()
	if err := c.db.Ping(ctx); err != nil {
		_ = httpapi.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": err.Error(),
		})
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
