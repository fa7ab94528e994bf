package viewmodels

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func labels(links []PageLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Label)
	}
	return out
}

func baseState(page int) ListState {
	return ListState{BasePath: "/actions", Page: page, PerPage: 10, SortField: "id", SortDirection: "asc"}
}

func TestPagination_Window(t *testing.T) {
	cases := []struct {
		page  int
		total int
		want  []string
	}{
		{1, 1, []string{"«", "1", "»"}},
		{1, 10, []string{"«", "1", "2", "3", "...", "10", "»"}},
		{3, 10, []string{"«", "1", "2", "3", "4", "5", "...", "10", "»"}},
		{4, 10, []string{"«", "1", "2", "3", "4", "5", "6", "...", "10", "»"}},
		{5, 10, []string{"«", "1", "...", "3", "4", "5", "6", "7", "...", "10", "»"}},
		{7, 10, []string{"«", "1", "...", "5", "6", "7", "8", "9", "10", "»"}},
		{8, 10, []string{"«", "1", "...", "6", "7", "8", "9", "10", "»"}},
		{10, 10, []string{"«", "1", "...", "8", "9", "10", "»"}},
	}
	for _, tc := range cases {
		got := labels(baseState(tc.page).Pagination(tc.total))
		require.Equal(t, tc.want, got, "page %d of %d", tc.page, tc.total)
	}
}

func TestPagination_PrevNextDisabledAtEdges(t *testing.T) {
	links := baseState(1).Pagination(3)
	require.True(t, links[0].Disabled)
	require.Empty(t, links[0].Href)
	require.False(t, links[len(links)-1].Disabled)

	links = baseState(3).Pagination(3)
	require.False(t, links[0].Disabled)
	require.True(t, links[len(links)-1].Disabled)

	for _, l := range links {
		if l.Label == "3" {
			require.True(t, l.Active)
		}
	}
}

func TestPagination_LinksCarryState(t *testing.T) {
	s := baseState(2)
	s.Search = "vat"
	s.Status = "completed"
	links := s.Pagination(5)

	u, err := url.Parse(links[0].Href)
	require.NoError(t, err)
	require.Equal(t, "/actions", u.Path)
	require.Equal(t, "1", u.Query().Get("page"))
	require.Equal(t, "vat", u.Query().Get("search"))
	require.Equal(t, "completed", u.Query().Get("status"))
}

func TestListState_ToggleSort(t *testing.T) {
	s := baseState(1)
	flipped := s.ToggleSort("id")
	require.Equal(t, "id", flipped.SortField)
	require.Equal(t, "desc", flipped.SortDirection)
	require.Equal(t, "asc", flipped.ToggleSort("id").SortDirection)
	require.Equal(t, "asc", ListState{SortField: "id", SortDirection: "DESC"}.ToggleSort("id").SortDirection)

	other := flipped.ToggleSort("due_at")
	require.Equal(t, "due_at", other.SortField)
	require.Equal(t, "asc", other.SortDirection)

	require.Equal(t, "▼", flipped.SortIndicator("id"))
	require.Equal(t, "▲", s.SortIndicator("id"))
	require.Empty(t, s.SortIndicator("due_at"))
}

func TestListState_Values(t *testing.T) {
	s := baseState(2)
	q := s.Values()
	require.Equal(t, "2", q.Get("page"))
	require.Equal(t, "10", q.Get("perPage"))
	require.False(t, q.Has("search"))
	require.False(t, q.Has("filter"))

	s.Assigned = "ann"
	q = s.WithFilterOpen(true).Values()
	require.Equal(t, "ann", q.Get("assigned"))
	require.Equal(t, "1", q.Get("filter"))
}
