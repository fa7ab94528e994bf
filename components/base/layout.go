package base

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/iota-actions/internal/assets"
	"github.com/iota-uz/iota-actions/pkg/types"
)

const (
	bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	htmxJS       = "https://unpkg.com/htmx.org@2.0.4"
)

type LayoutProps struct {
	Title    string
	Lang     string
	NavItems []types.NavigationItem
}

// Layout wraps the children of ctx in the HTML document shell.
func Layout(props LayoutProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := props.Lang
		if lang == "" {
			lang = "en"
		}
		hw := NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="`)
		hw.Text(lang)
		hw.Raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.Text(props.Title)
		hw.Raw(`</title><link rel="stylesheet" href="` + bootstrapCSS + `">`)
		hw.Raw(`<link rel="stylesheet" href="`)
		hw.Text(assets.Path("css/actions.css"))
		hw.Raw(`"><script src="` + htmxJS + `" defer></script></head><body>`)
		if len(props.NavItems) > 0 {
			hw.Raw(`<nav class="actions-nav navbar bg-white border-bottom px-3"><ul class="navbar-nav flex-row gap-3">`)
			for _, item := range props.NavItems {
				hw.Raw(`<li class="nav-item"><a class="nav-link" href="`)
				hw.Text(item.Href)
				hw.Raw(`">`)
				hw.Render(ctx, item.Icon)
				hw.Raw(`<span>`)
				hw.Text(item.Name)
				hw.Raw(`</span></a></li>`)
			}
			hw.Raw(`</ul></nav>`)
		}
		hw.Raw(`<main>`)
		hw.Render(ctx, templ.GetChildren(ctx))
		hw.Raw(`</main></body></html>`)
		return hw.Err()
	})
}
