package dtos

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListQuery_DecodesParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/actions?page=2&perPage=25&sortField=due_at&sortDirection=ASC&search=%20vat%20&status=completed&assigned=ann&businessId=1153&userId=163&filter=1", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)
	require.Equal(t, 2, q.Page)
	require.Equal(t, 25, q.PerPage)
	require.Equal(t, "1153", q.BusinessID)
	require.True(t, q.FilterOpen())

	params := q.ListParams("desc")
	require.Equal(t, "due_at", params.SortField)
	require.Equal(t, "ASC", params.SortDirection)
	require.Equal(t, "vat", params.Search)
	require.Equal(t, "completed", params.Status)
	require.Equal(t, "ann", params.Assigned)
}

func TestParseListQuery_RejectsNonNumericPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/actions?page=abc", nil)
	_, err := ParseListQuery(r)
	require.ErrorIs(t, err, ErrMalformedQuery)
}

func TestListQuery_DefaultDirection(t *testing.T) {
	q := &ListQuery{}
	require.Equal(t, "asc", q.ListParams("asc").SortDirection)
	require.False(t, q.FilterOpen())
}

func TestListQuery_Ok(t *testing.T) {
	q := &ListQuery{Search: "vat"}
	errs, ok := q.Ok(context.Background())
	require.True(t, ok)
	require.Empty(t, errs)

	q.Search = strings.Repeat("x", 300)
	errs, ok = q.Ok(context.Background())
	require.False(t, ok)
	require.Contains(t, errs, "Search")
}

func TestListQuery_Ok_RejectsPageBeyondBound(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/actions?page=1000000000000000000", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)

	errs, ok := q.Ok(context.Background())
	require.False(t, ok)
	require.Contains(t, errs, "Page")

	q.Page = 1000000
	_, ok = q.Ok(context.Background())
	require.True(t, ok)
}
