package dtos

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/iota-uz/iota-actions/modules/actions/services"
	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/constants"
	"github.com/iota-uz/iota-actions/pkg/intl"
)

var ErrMalformedQuery = errors.New("malformed query")

// ListQuery is the query string accepted by the actions page and API.
// BusinessID and UserID are accepted for compatibility and not used for scoping.
type ListQuery struct {
	Page          int    `form:"page" validate:"max=1000000"`
	PerPage       int    `form:"perPage"`
	SortField     string `form:"sortField" validate:"max=64"`
	SortDirection string `form:"sortDirection" validate:"max=8"`
	Search        string `form:"search" validate:"max=255"`
	Status        string `form:"status" validate:"max=64"`
	Assigned      string `form:"assigned" validate:"max=255"`
	Filter        string `form:"filter"`
	BusinessID    string `form:"businessId"`
	UserID        string `form:"userId"`
}

func ParseListQuery(r *http.Request) (*ListQuery, error) {
	q, err := composables.UseQuery(&ListQuery{}, r)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedQuery, err.Error())
	}
	return q, nil
}

func (q *ListQuery) Ok(ctx context.Context) (map[string]string, bool) {
	errorMessages := map[string]string{}
	errs := constants.Validate.Struct(q)
	if errs == nil {
		return errorMessages, true
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(errs, &validationErrs) {
		errorMessages["query"] = errs.Error()
		return errorMessages, false
	}
	l, hasLocalizer := intl.UseLocalizer(ctx)
	for _, err := range validationErrs {
		msg := err.Error()
		if hasLocalizer {
			translated, lErr := l.Localize(&i18n.LocalizeConfig{
				MessageID: fmt.Sprintf("ValidationErrors.%s", err.Tag()),
				TemplateData: map[string]string{
					"Field": err.Field(),
					"Param": err.Param(),
				},
			})
			if lErr == nil {
				msg = translated
			}
		}
		errorMessages[err.Field()] = msg
	}
	return errorMessages, len(errorMessages) == 0
}

// ListParams falls back to defaultDirection when no sortDirection was sent.
func (q *ListQuery) ListParams(defaultDirection string) *services.ListParams {
	direction := strings.TrimSpace(q.SortDirection)
	if direction == "" {
		direction = defaultDirection
	}
	return &services.ListParams{
		Page:          q.Page,
		PerPage:       q.PerPage,
		SortField:     strings.TrimSpace(q.SortField),
		SortDirection: direction,
		Search:        strings.TrimSpace(q.Search),
		Status:        strings.TrimSpace(q.Status),
		Assigned:      strings.TrimSpace(q.Assigned),
	}
}

func (q *ListQuery) FilterOpen() bool {
	switch strings.ToLower(strings.TrimSpace(q.Filter)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
