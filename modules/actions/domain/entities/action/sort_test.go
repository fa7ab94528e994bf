package action

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/pkg/repo"
)

func TestParseSortField(t *testing.T) {
	require.Equal(t, SortFieldBusinessName, ParseSortField("business_name"))
	require.Equal(t, SortFieldProcess, ParseSortField("process"))
	require.Equal(t, SortFieldProcessDescription, ParseSortField("process_description"))
	require.Equal(t, SortFieldID, ParseSortField(""))
	require.Equal(t, SortFieldID, ParseSortField("password; DROP TABLE actions"))
}

func TestNewSortBy(t *testing.T) {
	require.Equal(t, SortBy{Field: SortFieldDueAt, Direction: repo.SortAsc}, NewSortBy("due_at", "asc"))
	require.Equal(t, SortBy{Field: SortFieldID, Direction: repo.SortDesc}, NewSortBy("", ""))
}

func TestUser_FullName(t *testing.T) {
	first, last := "Ada", "Lovelace"
	require.Equal(t, "Ada Lovelace", (&User{FirstName: &first, LastName: &last}).FullName())
	require.Equal(t, "Ada", (&User{FirstName: &first}).FullName())
	require.Equal(t, "Lovelace", (&User{LastName: &last}).FullName())
	var u *User
	require.Empty(t, u.FullName())
}

func TestAction_Labels(t *testing.T) {
	code, desc, name := "VAT", "VAT return", "Acme"
	a := &Action{Process: &code}
	require.Equal(t, "VAT", a.ProcessLabel())
	require.Empty(t, a.BusinessName())
	require.Empty(t, a.StatusLabel())

	a.ProcessDescription = &desc
	a.Business = &Business{ID: 1, Name: &name}
	require.Equal(t, "VAT return", a.ProcessLabel())
	require.Equal(t, "Acme", a.BusinessName())
}
