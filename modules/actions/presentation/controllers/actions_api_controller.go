package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-actions/modules/actions/presentation/controllers/dtos"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/mappers"
	"github.com/iota-uz/iota-actions/modules/actions/services"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/httpapi"
	"github.com/iota-uz/iota-actions/pkg/mapping"
	"github.com/iota-uz/iota-actions/pkg/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ActionsAPIController struct {
	app            application.Application
	actionsService *services.ActionsService
	basePath       string
}

func NewActionsAPIController(app application.Application) application.Controller {
	return &ActionsAPIController{
		app:            app,
		actionsService: app.Service(services.ActionsService{}).(*services.ActionsService),
		basePath:       "/api/actions",
	}
}

func (c *ActionsAPIController) Key() string {
	return c.basePath
}

func (c *ActionsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer(c.app))
	router.HandleFunc("", instrument("api_list", c.List)).Methods(http.MethodGet)
	router.HandleFunc("/export", instrument("api_export", c.Export)).Methods(http.MethodGet)
}

// parseQuery writes a 400 envelope and returns nil when the query is unusable.
func (c *ActionsAPIController) parseQuery(w http.ResponseWriter, r *http.Request) *services.ListParams {
	query, err := dtos.ParseListQuery(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidQuery, "Invalid query parameters", map[string]string{
			"query": err.Error(),
		})
		return nil
	}
	if errs, ok := query.Ok(r.Context()); !ok {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidQuery, "Invalid query parameters", errs)
		return nil
	}
	return query.ListParams("")
}

func (c *ActionsAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := c.parseQuery(w, r)
	if params == nil {
		return
	}

	result, err := c.actionsService.List(r.Context(), params)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list actions")
		_ = httpapi.WriteServerError(w)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &dtos.ListResponse{
		Actions:          mapping.MapViewModels(result.Actions, mappers.ActionToResponse),
		TotalCompleted:   result.TotalCompleted,
		TotalOutstanding: result.TotalOutstanding,
		TotalPages:       result.TotalPages,
		Total:            result.Total,
		Page:             result.Page,
		PerPage:          result.PerPage,
	})
}

func (c *ActionsAPIController) Export(w http.ResponseWriter, r *http.Request) {
	params := c.parseQuery(w, r)
	if params == nil {
		return
	}

	var buf bytes.Buffer
	if err := c.actionsService.Export(r.Context(), params, &buf); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to export actions")
		_ = httpapi.WriteServerError(w)
		return
	}

	filename := fmt.Sprintf("actions-%s.xlsx", time.Now().Format("20060102-150405"))
	_ = httpapi.WriteAttachment(w, xlsxContentType, filename, buf.Bytes())
}
