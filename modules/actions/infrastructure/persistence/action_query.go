package persistence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/pkg/repo"
)

const (
	actionSelectColumns = `SELECT a.id, a.business_id, b.business_name, a.process, ap.description,
		a.description, a.due_at, a.completed_at, a.status_slug, s.name,
		a.assigned_user_id, u.first_name, u.last_name, u.profile_picture_filename, a.created_at`

	actionJoins = `FROM actions a
		LEFT JOIN business b ON b.id = a.business_id
		LEFT JOIN users u ON u.id = a.assigned_user_id
		LEFT JOIN action_statuses s ON s.slug = a.status_slug
		LEFT JOIN action_processes ap ON ap.code = a.process`
)

var sortColumns = map[action.SortField]string{
	action.SortFieldID:                 "a.id",
	action.SortFieldBusinessName:       "b.business_name",
	action.SortFieldProcess:            "ap.description",
	action.SortFieldProcessDescription: "ap.description",
	action.SortFieldDescription:        "a.description",
	action.SortFieldDueAt:              "a.due_at",
	action.SortFieldCompletedAt:        "a.completed_at",
	action.SortFieldStatus:             "s.name",
	action.SortFieldAssignedUser:       "u.first_name",
}

// orderByClause never interpolates user input: unknown fields fall back to a.id.
func orderByClause(sortBy action.SortBy) string {
	column, ok := sortColumns[sortBy.Field]
	if !ok {
		column = "a.id"
	}
	direction := repo.SortDesc
	if sortBy.Direction.Ascending() {
		direction = repo.SortAsc
	}
	if column == "a.id" {
		return fmt.Sprintf("ORDER BY a.id %s", direction)
	}
	return fmt.Sprintf("ORDER BY %s %s, a.id %s", column, direction, direction)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// buildActionFilters renders the WHERE clause as
// [status AND] (search-clauses OR assigned-clauses).
func buildActionFilters(params *action.FindParams) (string, []any) {
	if params == nil {
		return "", nil
	}
	var args repo.Args
	var where []string

	if status := strings.TrimSpace(params.Status); status != "" {
		where = append(where, "a.status_slug = "+args.Add(status))
	}

	var anyOf []string
	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" {
		if isDigits(search) {
			if id, err := strconv.ParseInt(search, 10, 64); err == nil {
				anyOf = append(anyOf, "a.id = "+args.Add(id))
			}
		}
		p := args.Add(repo.Contains(search))
		anyOf = append(anyOf,
			"b.business_name ILIKE "+p,
			"a.description ILIKE "+p,
			"ap.description ILIKE "+p,
			"u.first_name ILIKE "+p,
			"u.last_name ILIKE "+p,
		)
	}
	if assigned := strings.TrimSpace(params.Assigned); assigned != "" {
		p := args.Add(repo.Contains(assigned))
		anyOf = append(anyOf,
			"u.first_name ILIKE "+p,
			"u.last_name ILIKE "+p,
		)
	}
	if len(anyOf) > 0 {
		where = append(where, "("+strings.Join(anyOf, " OR ")+")")
	}

	if len(where) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(where, " AND "), args.Values()
}

func buildListQuery(params *action.FindParams) (string, []any) {
	where, args := buildActionFilters(params)
	parts := []string{actionSelectColumns, actionJoins}
	if where != "" {
		parts = append(parts, where)
	}
	var sortBy action.SortBy
	if params != nil {
		sortBy = params.SortBy
	}
	parts = append(parts, orderByClause(sortBy))
	if params != nil {
		if page := repo.FormatLimitOffset(params.Limit, params.Offset); page != "" {
			parts = append(parts, page)
		}
	}
	return strings.Join(parts, "\n"), args
}

func buildCountQuery(params *action.FindParams) (string, []any) {
	where, args := buildActionFilters(params)
	parts := []string{"SELECT COUNT(*)", actionJoins}
	if where != "" {
		parts = append(parts, where)
	}
	return strings.Join(parts, "\n"), args
}
