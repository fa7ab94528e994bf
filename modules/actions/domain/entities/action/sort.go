package action

import (
	"strings"

	"github.com/iota-uz/iota-actions/pkg/repo"
)

type SortField string

const (
	SortFieldID                 SortField = "id"
	SortFieldBusinessName       SortField = "business_name"
	SortFieldProcess            SortField = "process"
	SortFieldProcessDescription SortField = "process_description"
	SortFieldDescription        SortField = "description"
	SortFieldDueAt              SortField = "due_at"
	SortFieldCompletedAt        SortField = "completed_at"
	SortFieldStatus             SortField = "status_slug"
	SortFieldAssignedUser       SortField = "assigned_user_id"
)

var knownSortFields = map[SortField]struct{}{
	SortFieldID:                 {},
	SortFieldBusinessName:       {},
	SortFieldProcess:            {},
	SortFieldProcessDescription: {},
	SortFieldDescription:        {},
	SortFieldDueAt:              {},
	SortFieldCompletedAt:        {},
	SortFieldStatus:             {},
	SortFieldAssignedUser:       {},
}

// ParseSortField returns SortFieldID for empty or unknown input.
func ParseSortField(v string) SortField {
	f := SortField(strings.TrimSpace(v))
	if _, ok := knownSortFields[f]; ok {
		return f
	}
	return SortFieldID
}

type SortBy struct {
	Field     SortField
	Direction repo.SortDirection
}

func NewSortBy(field, direction string) SortBy {
	return SortBy{
		Field:     ParseSortField(field),
		Direction: repo.ParseSortDirection(direction),
	}
}
