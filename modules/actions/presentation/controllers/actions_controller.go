package controllers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/controllers/dtos"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/mappers"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/templates/pages/actions"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/viewmodels"
	"github.com/iota-uz/iota-actions/modules/actions/services"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/configuration"
	"github.com/iota-uz/iota-actions/pkg/htmx"
	"github.com/iota-uz/iota-actions/pkg/mapping"
	"github.com/iota-uz/iota-actions/pkg/middleware"
	"github.com/iota-uz/iota-actions/pkg/repo"
)

var defaultStatusOptions = []viewmodels.StatusOption{
	{Value: action.StatusOutstanding, Label: "Outstanding"},
	{Value: action.StatusCompleted, Label: "Completed"},
}

type ActionsController struct {
	app            application.Application
	actionsService *services.ActionsService
	header         viewmodels.Header
	basePath       string
}

func NewActionsController(app application.Application, placeholder configuration.PlaceholderOptions) application.Controller {
	return &ActionsController{
		app:            app,
		actionsService: app.Service(services.ActionsService{}).(*services.ActionsService),
		header: viewmodels.Header{
			BusinessID:   placeholder.BusinessID,
			BusinessName: placeholder.BusinessName,
			UserID:       placeholder.UserID,
			UserName:     placeholder.UserName,
		},
		basePath: "/actions",
	}
}

func (c *ActionsController) Key() string {
	return c.basePath
}

func (c *ActionsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.ProvideLocalizer(c.app),
		middleware.WithPageContext(),
	)
	router.HandleFunc("", instrument("page", c.List)).Methods(http.MethodGet)
}

func (c *ActionsController) List(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())

	query, err := dtos.ParseListQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs, ok := query.Ok(r.Context()); !ok {
		messages := make([]string, 0, len(errs))
		for _, msg := range errs {
			messages = append(messages, msg)
		}
		http.Error(w, strings.Join(messages, "\n"), http.StatusBadRequest)
		return
	}

	params := query.ListParams(viewmodels.DirectionAsc)
	result, err := c.actionsService.List(r.Context(), params)
	if err != nil {
		logger.WithError(err).Error("failed to list actions")
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	statusOptions := defaultStatusOptions
	statuses, err := c.actionsService.Statuses(r.Context())
	if err != nil {
		logger.WithError(err).Warn("failed to load action statuses")
	} else if len(statuses) > 0 {
		statusOptions = mappers.StatusesToOptions(statuses)
	}

	sortBy := action.NewSortBy(params.SortField, params.SortDirection)
	direction := viewmodels.DirectionDesc
	if sortBy.Direction == repo.SortAsc {
		direction = viewmodels.DirectionAsc
	}

	props := &viewmodels.ListPageProps{
		State: viewmodels.ListState{
			BasePath:      c.basePath,
			Page:          result.Page,
			PerPage:       result.PerPage,
			SortField:     string(sortBy.Field),
			SortDirection: direction,
			Search:        params.Search,
			Status:        params.Status,
			Assigned:      params.Assigned,
			FilterOpen:    query.FilterOpen(),
		},
		Header:           c.header,
		Actions:          mapping.MapViewModels(result.Actions, mappers.ActionToViewModel),
		Statuses:         statusOptions,
		Total:            result.Total,
		TotalPages:       result.TotalPages,
		TotalCompleted:   result.TotalCompleted,
		TotalOutstanding: result.TotalOutstanding,
	}

	if htmx.IsHxRequest(r) {
		templ.Handler(actions.Content(props), templ.WithStreaming()).ServeHTTP(w, r)
		return
	}
	pageCtx := composables.UsePageCtx(r.Context())
	navItems := c.app.NavItems(pageCtx.GetLocalizer())
	templ.Handler(actions.Index(props, navItems), templ.WithStreaming()).ServeHTTP(w, r)
}
