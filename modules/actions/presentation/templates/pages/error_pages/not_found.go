package error_pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/iota-actions/components/base"
	"github.com/iota-uz/iota-actions/pkg/composables"
)

func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		layout := base.Layout(base.LayoutProps{
			Title: pageCtx.T("Errors.NotFound.Title"),
			Lang:  pageCtx.GetLocale().String(),
		})
		return layout.Render(templ.WithChildren(ctx, notFoundContent()), w)
	})
}

func notFoundContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := base.NewWriter(w)
		hw.Raw(`<div class="container my-5 text-center"><h1 class="display-5">404</h1><p class="lead">`)
		hw.Text(pageCtx.T("Errors.NotFound.Text"))
		hw.Raw(`</p><a class="btn btn-primary" href="/actions">`)
		hw.Text(pageCtx.T("Errors.NotFound.Back"))
		hw.Raw(`</a></div>`)
		return hw.Err()
	})
}
