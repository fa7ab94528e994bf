package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatLimitOffset(t *testing.T) {
	require.Equal(t, "LIMIT 10 OFFSET 20", FormatLimitOffset(10, 20))
	require.Equal(t, "LIMIT 10", FormatLimitOffset(10, 0))
	require.Equal(t, "OFFSET 5", FormatLimitOffset(0, 5))
	require.Empty(t, FormatLimitOffset(0, 0))
}

func TestParseSortDirection(t *testing.T) {
	require.Equal(t, SortAsc, ParseSortDirection("asc"))
	require.Equal(t, SortAsc, ParseSortDirection(" ASC "))
	require.Equal(t, SortDesc, ParseSortDirection("desc"))
	require.Equal(t, SortDesc, ParseSortDirection(""))
	require.Equal(t, SortDesc, ParseSortDirection("sideways"))
	require.Equal(t, SortDesc, SortAsc.Flip())
	require.Equal(t, SortAsc, SortDesc.Flip())
}

func TestContains_EscapesWildcards(t *testing.T) {
	require.Equal(t, "%acme%", Contains("acme"))
	require.Equal(t, `%50\%\_off\\%`, Contains(`50%_off\`))
}

func TestArgs_Placeholders(t *testing.T) {
	var args Args
	require.Equal(t, "$1", args.Add("a"))
	require.Equal(t, "$2", args.Add(2))
	require.Equal(t, []any{"a", 2}, args.Values())
}
