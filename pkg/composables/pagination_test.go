package composables

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/pkg/repo"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(3, 10, 25, 100)
	require.Equal(t, PaginationParams{Page: 3, Limit: 10, Offset: 20}, p)

	p = NewPagination(0, 0, 25, 100)
	require.Equal(t, PaginationParams{Page: 1, Limit: 25, Offset: 0}, p)

	p = NewPagination(2, 1000, 25, 100)
	require.Equal(t, PaginationParams{Page: 2, Limit: 100, Offset: 100}, p)
}

func TestNewPagination_HugePageDoesNotOverflow(t *testing.T) {
	p := NewPagination(1_000_000_000_000_000_000, 10, 10, 100)
	require.Equal(t, 10, p.Limit)
	require.Positive(t, p.Offset)
	require.LessOrEqual(t, p.Offset, math.MaxInt-p.Limit+1)
	require.Equal(t, (p.Page-1)*p.Limit, p.Offset)
	require.Contains(t, repo.FormatLimitOffset(p.Limit, p.Offset), "OFFSET")

	p = NewPagination(math.MaxInt, 1, 10, 100)
	require.Equal(t, math.MaxInt-1, p.Offset)
}
