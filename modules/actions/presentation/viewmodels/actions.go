package viewmodels

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/iota-uz/iota-actions/pkg/repo"
)

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

type Action struct {
	ID           string
	BusinessName string
	Process      string
	Description  string
	DueAt        string
	CompletedAt  string
	StatusSlug   string
	StatusName   string
	AssignedTo   string
	Assigned     bool
	Completed    bool
}

type StatusOption struct {
	Value string
	Label string
}

// Header identifies the business and user the page is rendered for.
type Header struct {
	BusinessID   string
	BusinessName string
	UserID       string
	UserName     string
}

// ListState is the URL-encoded state of the actions list.
type ListState struct {
	BasePath      string
	Page          int
	PerPage       int
	SortField     string
	SortDirection string
	Search        string
	Status        string
	Assigned      string
	FilterOpen    bool
}

func (s ListState) Values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(s.Page))
	q.Set("perPage", strconv.Itoa(s.PerPage))
	q.Set("sortField", s.SortField)
	q.Set("sortDirection", s.SortDirection)
	if s.Search != "" {
		q.Set("search", s.Search)
	}
	if s.Status != "" {
		q.Set("status", s.Status)
	}
	if s.Assigned != "" {
		q.Set("assigned", s.Assigned)
	}
	if s.FilterOpen {
		q.Set("filter", "1")
	}
	return q
}

func (s ListState) URL() string {
	return s.BasePath + "?" + s.Values().Encode()
}

func (s ListState) WithPage(page int) ListState {
	s.Page = page
	return s
}

func (s ListState) WithFilterOpen(open bool) ListState {
	s.FilterOpen = open
	return s
}

// ToggleSort flips the direction of the active column; a new column starts ascending.
func (s ListState) ToggleSort(field string) ListState {
	if s.SortField == field {
		s.SortDirection = strings.ToLower(string(repo.ParseSortDirection(s.SortDirection).Flip()))
		return s
	}
	s.SortField = field
	s.SortDirection = DirectionAsc
	return s
}

func (s ListState) SortIndicator(field string) string {
	if s.SortField != field {
		return ""
	}
	if s.SortDirection == DirectionAsc {
		return "▲"
	}
	return "▼"
}

type PageLink struct {
	Label    string
	Href     string
	Active   bool
	Disabled bool
	Ellipsis bool
}

// Pagination renders prev, an optional first page, a window of two pages
// around the current one, an optional last page and next.
func (s ListState) Pagination(totalPages int) []PageLink {
	if totalPages < 1 {
		totalPages = 1
	}
	page := s.Page
	var links []PageLink

	prev := PageLink{Label: "«", Disabled: page <= 1}
	if !prev.Disabled {
		prev.Href = s.WithPage(page - 1).URL()
	}
	links = append(links, prev)

	if page > 3 {
		links = append(links, PageLink{Label: "1", Href: s.WithPage(1).URL()})
		if page > 4 {
			links = append(links, PageLink{Label: "...", Disabled: true, Ellipsis: true})
		}
	}

	for p := page - 2; p <= page+2; p++ {
		if p < 1 || p > totalPages {
			continue
		}
		links = append(links, PageLink{
			Label:  strconv.Itoa(p),
			Href:   s.WithPage(p).URL(),
			Active: p == page,
		})
	}

	if page < totalPages-2 {
		if page < totalPages-3 {
			links = append(links, PageLink{Label: "...", Disabled: true, Ellipsis: true})
		}
		links = append(links, PageLink{Label: strconv.Itoa(totalPages), Href: s.WithPage(totalPages).URL()})
	}

	next := PageLink{Label: "»", Disabled: page >= totalPages}
	if !next.Disabled {
		next.Href = s.WithPage(page + 1).URL()
	}
	return append(links, next)
}

func (s ListState) DirectionLabel() string {
	return strings.ToLower(s.SortDirection)
}

type ListPageProps struct {
	State            ListState
	Header           Header
	Actions          []*Action
	Statuses         []StatusOption
	Total            int64
	TotalPages       int
	TotalCompleted   int64
	TotalOutstanding int64
}
