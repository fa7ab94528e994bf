package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/pkg/repo"
)

func TestBuildActionFilters_Empty(t *testing.T) {
	where, args := buildActionFilters(&action.FindParams{Search: "   "})
	require.Empty(t, where)
	require.Empty(t, args)

	where, args = buildActionFilters(nil)
	require.Empty(t, where)
	require.Empty(t, args)
}

func TestBuildActionFilters_StatusOnly(t *testing.T) {
	where, args := buildActionFilters(&action.FindParams{Status: "completed"})
	require.Equal(t, "WHERE a.status_slug = $1", where)
	require.Equal(t, []any{"completed"}, args)
}

func TestBuildActionFilters_TextSearchIsLowercasedAndEscaped(t *testing.T) {
	where, args := buildActionFilters(&action.FindParams{Search: "  50%_Off "})
	require.Equal(t,
		"WHERE (b.business_name ILIKE $1 OR a.description ILIKE $1 OR ap.description ILIKE $1 OR u.first_name ILIKE $1 OR u.last_name ILIKE $1)",
		where,
	)
	require.Equal(t, []any{`%50\%\_off%`}, args)
}

func TestBuildActionFilters_NumericSearchMatchesID(t *testing.T) {
	where, args := buildActionFilters(&action.FindParams{Search: "42"})
	require.Contains(t, where, "a.id = $1 OR b.business_name ILIKE $2")
	require.Equal(t, []any{int64(42), "%42%"}, args)
}

func TestBuildActionFilters_OverflowingDigitsSkipIDMatch(t *testing.T) {
	where, args := buildActionFilters(&action.FindParams{Search: "99999999999999999999"})
	require.NotContains(t, where, "a.id =")
	require.Len(t, args, 1)
}

func TestBuildActionFilters_StatusAndSearchOrAssigned(t *testing.T) {
	where, args := buildActionFilters(&action.FindParams{
		Status:   "outstanding",
		Search:   "invoice",
		Assigned: "Ann",
	})
	require.Equal(t,
		"WHERE a.status_slug = $1 AND (b.business_name ILIKE $2 OR a.description ILIKE $2 OR ap.description ILIKE $2"+
			" OR u.first_name ILIKE $2 OR u.last_name ILIKE $2 OR u.first_name ILIKE $3 OR u.last_name ILIKE $3)",
		where,
	)
	require.Equal(t, []any{"outstanding", "%invoice%", "%Ann%"}, args)
}

func TestOrderByClause(t *testing.T) {
	cases := []struct {
		name string
		sort action.SortBy
		want string
	}{
		{"default", action.SortBy{}, "ORDER BY a.id DESC"},
		{"id asc", action.SortBy{Field: action.SortFieldID, Direction: repo.SortAsc}, "ORDER BY a.id ASC"},
		{"business", action.SortBy{Field: action.SortFieldBusinessName, Direction: repo.SortAsc}, "ORDER BY b.business_name ASC, a.id ASC"},
		{"process", action.SortBy{Field: action.SortFieldProcess, Direction: repo.SortDesc}, "ORDER BY ap.description DESC, a.id DESC"},
		{"process description", action.SortBy{Field: action.SortFieldProcessDescription, Direction: repo.SortAsc}, "ORDER BY ap.description ASC, a.id ASC"},
		{"status", action.SortBy{Field: action.SortFieldStatus, Direction: repo.SortAsc}, "ORDER BY s.name ASC, a.id ASC"},
		{"assignee", action.SortBy{Field: action.SortFieldAssignedUser, Direction: repo.SortDesc}, "ORDER BY u.first_name DESC, a.id DESC"},
		{"unknown", action.SortBy{Field: "password", Direction: repo.SortAsc}, "ORDER BY a.id ASC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, orderByClause(tc.sort))
		})
	}
}

func TestBuildListQuery_AppendsPagination(t *testing.T) {
	query, args := buildListQuery(&action.FindParams{
		Limit:  10,
		Offset: 20,
		SortBy: action.NewSortBy("due_at", "asc"),
		Status: "completed",
	})
	require.Contains(t, query, "LEFT JOIN action_processes ap ON ap.code = a.process")
	require.Contains(t, query, "WHERE a.status_slug = $1")
	require.Contains(t, query, "ORDER BY a.due_at ASC, a.id ASC")
	require.Contains(t, query, "LIMIT 10 OFFSET 20")
	require.Equal(t, []any{"completed"}, args)
}

func TestBuildCountQuery_OmitsOrderAndPagination(t *testing.T) {
	query, args := buildCountQuery(&action.FindParams{Limit: 10, Assigned: "bob"})
	require.Contains(t, query, "SELECT COUNT(*)")
	require.Contains(t, query, "(u.first_name ILIKE $1 OR u.last_name ILIKE $1)")
	require.NotContains(t, query, "ORDER BY")
	require.NotContains(t, query, "LIMIT")
	require.Equal(t, []any{"%bob%"}, args)
}
