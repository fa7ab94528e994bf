package actions

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/iota-actions/components/base"
	"github.com/iota-uz/iota-actions/modules/actions/presentation/viewmodels"
	"github.com/iota-uz/iota-actions/pkg/composables"
	"github.com/iota-uz/iota-actions/pkg/types"
)

const ContentID = "actions-content"

type column struct {
	field string
	label string
}

var columns = []column{
	{"id", "Columns.ID"},
	{"business_name", "Columns.Business"},
	{"process_description", "Columns.Process"},
	{"description", "Columns.Description"},
	{"due_at", "Columns.Due"},
	{"completed_at", "Columns.Completed"},
	{"status_slug", "Columns.Status"},
	{"assigned_user_id", "Columns.Assigned"},
}

func Index(props *viewmodels.ListPageProps, navItems []types.NavigationItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		layout := base.Layout(base.LayoutProps{
			Title:    pageCtx.T("Actions.Meta.Title"),
			Lang:     pageCtx.GetLocale().String(),
			NavItems: navItems,
		})
		return layout.Render(templ.WithChildren(ctx, Content(props)), w)
	})
}

// Content is the part of the page swapped by htmx.
func Content(props *viewmodels.ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := base.NewWriter(w)
		hw.Raw(`<div id="` + ContentID + `" class="container my-4" hx-boost="true" hx-target="#` + ContentID + `" hx-select="#` + ContentID + `" hx-swap="outerHTML">`)
		hw.Render(ctx, header(props.Header))
		hw.Render(ctx, titleRow(props.State))
		hw.Render(ctx, stats(props))
		hw.Render(ctx, controls(props.State))
		hw.Render(ctx, filterPanel(props))
		hw.Render(ctx, table(props))
		hw.Render(ctx, pagination(props))
		hw.Raw(`</div>`)
		return hw.Err()
	})
}

func header(h viewmodels.Header) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := base.NewWriter(w)
		hw.Raw(`<div class="actions-header d-flex justify-content-between align-items-center mb-3 p-3 border-bottom">`)
		hw.Raw(`<div class="d-flex align-items-center gap-2"><span class="header-icon text-secondary bg-light rounded">`)
		hw.Render(ctx, icons.Buildings(icons.Props{Size: "20"}))
		hw.Raw(`</span><div><strong>`)
		hw.Text(h.BusinessName)
		hw.Raw(`</strong> <span class="text-muted">#`)
		hw.Text(h.BusinessID)
		hw.Raw(`</span></div></div><div class="text-end"><div><strong>`)
		hw.Text(h.UserName)
		hw.Raw(`</strong></div><small class="text-muted">`)
		hw.Text(pageCtx.T("Actions.UserID", map[string]interface{}{"ID": h.UserID}))
		hw.Raw(`</small></div></div>`)
		return hw.Err()
	})
}

func titleRow(state viewmodels.ListState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		exportState := state
		exportState.BasePath = "/api/actions/export"
		hw := base.NewWriter(w)
		hw.Raw(`<div class="d-flex justify-content-between align-items-center mb-2"><h5 class="d-flex align-items-center gap-2">`)
		hw.Render(ctx, icons.List(icons.Props{Size: "20"}))
		hw.Text(pageCtx.T("Actions.Title"))
		hw.Raw(`</h5><div class="d-flex gap-2"><a class="btn btn-outline-primary btn-sm" hx-boost="false" href="`)
		hw.Text(exportState.URL())
		hw.Raw(`">`)
		hw.Text(pageCtx.T("Actions.Export"))
		hw.Raw(`</a><button type="button" class="btn btn-outline-success btn-sm">`)
		hw.Text(pageCtx.T("Actions.Help"))
		hw.Raw(`</button></div></div>`)
		return hw.Err()
	})
}

func statCard(ctx context.Context, hw *base.Writer, tone, label string, value int64, icon templ.Component) {
	hw.Raw(`<div class="col-md-6"><div class="card stat-card shadow-sm border-start border-4 border-` + tone + `"><div class="card-body text-center"><h6 class="text-muted d-flex justify-content-center align-items-center gap-2">`)
	hw.Render(ctx, icon)
	hw.Text(label)
	hw.Raw(`</h6><h2 class="text-` + tone + ` fw-bold">`)
	hw.Text(strconv.FormatInt(value, 10))
	hw.Raw(`</h2></div></div></div>`)
}

func stats(props *viewmodels.ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := base.NewWriter(w)
		hw.Raw(`<div class="row g-3 mb-4" id="actions-stats">`)
		statCard(ctx, hw, "warning", pageCtx.T("Actions.Stats.Outstanding"), props.TotalOutstanding, icons.Warning(icons.Props{Size: "18"}))
		statCard(ctx, hw, "success", pageCtx.T("Actions.Stats.Completed"), props.TotalCompleted, icons.Gauge(icons.Props{Size: "18"}))
		hw.Raw(`</div>`)
		return hw.Err()
	})
}

// hiddenState keeps the rest of the list state when a form submits one field.
func hiddenState(hw *base.Writer, state viewmodels.ListState, skip ...string) {
	values := state.Values()
	for _, k := range skip {
		values.Del(k)
	}
	for _, key := range []string{"page", "perPage", "sortField", "sortDirection", "search", "status", "assigned", "filter"} {
		v := values.Get(key)
		if v == "" {
			continue
		}
		hw.Raw(`<input type="hidden" name="` + key + `" value="`)
		hw.Text(v)
		hw.Raw(`">`)
	}
}

func controls(state viewmodels.ListState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := base.NewWriter(w)
		hw.Raw(`<div class="d-md-flex justify-content-between align-items-center mb-3 gap-2">`)

		hw.Raw(`<form class="input-group w-50" method="get" action="`)
		hw.Text(state.BasePath)
		hw.Raw(`" role="search"><span class="input-group-text bg-white">`)
		hw.Render(ctx, icons.MagnifyingGlass(icons.Props{Size: "16"}))
		hw.Raw(`</span>`)
		hiddenState(hw, state.WithPage(1), "search", "filter")
		hw.Raw(`<input type="text" name="search" class="form-control" placeholder="`)
		hw.Text(pageCtx.T("Actions.Search.Placeholder"))
		hw.Raw(`" value="`)
		hw.Text(state.Search)
		hw.Raw(`"></form>`)

		hw.Raw(`<div class="d-flex gap-2"><a class="btn btn-outline-secondary" href="`)
		hw.Text(state.WithFilterOpen(false).URL())
		hw.Raw(`">`)
		hw.Text(pageCtx.T("Actions.Refresh"))
		hw.Raw(`</a><a class="btn btn-outline-secondary" href="`)
		hw.Text(state.WithFilterOpen(false).ToggleSort("id").URL())
		hw.Raw(`">`)
		hw.Text(pageCtx.T("Actions.SortID", map[string]interface{}{"Direction": state.DirectionLabel()}))
		hw.Raw(`</a><a class="btn btn-outline-secondary" href="`)
		hw.Text(state.WithFilterOpen(true).URL())
		hw.Raw(`">`)
		hw.Text(pageCtx.T("Actions.Filter.Title"))
		hw.Raw(`</a></div></div>`)
		return hw.Err()
	})
}

func filterPanel(props *viewmodels.ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		state := props.State
		closed := state.WithFilterOpen(false)
		hw := base.NewWriter(w)

		cls := "offcanvas offcanvas-end"
		if state.FilterOpen {
			cls += " show"
			hw.Raw(`<a class="offcanvas-backdrop-link" aria-hidden="true" href="`)
			hw.Text(closed.URL())
			hw.Raw(`"></a>`)
		}
		hw.Raw(`<div class="` + cls + `" id="actions-filter" tabindex="-1">`)
		hw.Raw(`<div class="offcanvas-header"><h5 class="offcanvas-title">`)
		hw.Text(pageCtx.T("Actions.Filter.Title"))
		hw.Raw(`</h5><a class="btn-close" href="`)
		hw.Text(closed.URL())
		hw.Raw(`" aria-label="`)
		hw.Text(pageCtx.T("Actions.Filter.Close"))
		hw.Raw(`"></a></div><div class="offcanvas-body">`)

		hw.Raw(`<form method="get" action="`)
		hw.Text(state.BasePath)
		hw.Raw(`">`)
		hiddenState(hw, closed.WithPage(1), "status", "assigned")

		hw.Raw(`<div class="mb-3"><label class="form-label" for="filter-status">`)
		hw.Text(pageCtx.T("Actions.Filter.Status"))
		hw.Raw(`</label><select id="filter-status" name="status" class="form-select" onchange="this.form.requestSubmit()">`)
		hw.Raw(`<option value="">`)
		hw.Text(pageCtx.T("Actions.Filter.All"))
		hw.Raw(`</option>`)
		for _, opt := range props.Statuses {
			hw.Raw(`<option value="`)
			hw.Text(opt.Value)
			hw.Raw(`"`)
			if opt.Value == state.Status {
				hw.Raw(` selected`)
			}
			hw.Raw(`>`)
			hw.Text(opt.Label)
			hw.Raw(`</option>`)
		}
		hw.Raw(`</select></div>`)

		hw.Raw(`<div class="mb-3"><label class="form-label" for="filter-assigned">`)
		hw.Text(pageCtx.T("Actions.Filter.Assigned"))
		hw.Raw(`</label><input id="filter-assigned" type="text" name="assigned" class="form-control" placeholder="`)
		hw.Text(pageCtx.T("Actions.Filter.AssignedPlaceholder"))
		hw.Raw(`" value="`)
		hw.Text(state.Assigned)
		hw.Raw(`"></div><button type="submit" class="btn btn-primary w-100">`)
		hw.Text(pageCtx.T("Actions.Filter.Apply"))
		hw.Raw(`</button></form></div></div>`)
		return hw.Err()
	})
}

func table(props *viewmodels.ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		state := props.State.WithFilterOpen(false)
		hw := base.NewWriter(w)
		hw.Raw(`<div class="table-responsive"><table class="actions-table table table-bordered table-hover align-middle"><thead class="table-light"><tr>`)
		for _, col := range columns {
			hw.Raw(`<th scope="col"><a href="`)
			hw.Text(state.ToggleSort(col.field).URL())
			hw.Raw(`">`)
			hw.Text(pageCtx.T("Actions." + col.label))
			if ind := state.SortIndicator(col.field); ind != "" {
				hw.Raw(`<span class="sort-indicator">` + ind + `</span>`)
			}
			hw.Raw(`</a></th>`)
		}
		hw.Raw(`</tr></thead><tbody>`)
		if len(props.Actions) == 0 {
			hw.Raw(`<tr><td colspan="` + strconv.Itoa(len(columns)) + `" class="text-center text-muted py-4">`)
			hw.Text(pageCtx.T("Actions.Empty"))
			hw.Raw(`</td></tr>`)
		}
		for _, a := range props.Actions {
			hw.Render(ctx, row(a))
		}
		hw.Raw(`</tbody></table></div>`)
		return hw.Err()
	})
}

func row(a *viewmodels.Action) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := base.NewWriter(w)
		hw.Raw(`<tr data-action-id="`)
		hw.Text(a.ID)
		hw.Raw(`"><td>#`)
		hw.Text(a.ID)
		for _, v := range []string{a.BusinessName, a.Process, a.Description, a.DueAt, a.CompletedAt} {
			hw.Raw(`</td><td>`)
			hw.Text(v)
		}
		badge := "bg-warning text-dark"
		if a.Completed {
			badge = "bg-success"
		}
		hw.Raw(`</td><td><span class="badge ` + badge + `">`)
		hw.Text(a.StatusName)
		hw.Raw(`</span></td><td>`)
		hw.Text(a.AssignedTo)
		hw.Raw(`</td></tr>`)
		return hw.Err()
	})
}

func pagination(props *viewmodels.ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := base.NewWriter(w)
		hw.Raw(`<nav class="d-flex justify-content-center mt-4" aria-label="`)
		hw.Text(pageCtx.T("Actions.Pagination"))
		hw.Raw(`"><ul class="pagination flex-wrap justify-content-center">`)
		for _, link := range props.State.WithFilterOpen(false).Pagination(props.TotalPages) {
			cls := "page-item"
			if link.Active {
				cls += " active"
			}
			if link.Disabled {
				cls += " disabled"
			}
			hw.Raw(`<li class="` + cls + `">`)
			if link.Href == "" || link.Ellipsis {
				hw.Raw(`<span class="page-link">`)
				hw.Text(link.Label)
				hw.Raw(`</span>`)
			} else {
				hw.Raw(`<a class="page-link" href="`)
				hw.Text(link.Href)
				hw.Raw(`">`)
				hw.Text(link.Label)
				hw.Raw(`</a>`)
			}
			hw.Raw(`</li>`)
		}
		hw.Raw(`</ul></nav>`)
		return hw.Err()
	})
}
