package base

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-actions/pkg/types"
)

func TestLayout_RendersChildrenAndNav(t *testing.T) {
	child := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hello</p>`)
		return err
	})
	layout := Layout(LayoutProps{
		Title:    "Actions <list>",
		NavItems: []types.NavigationItem{{Name: "Actions", Href: "/actions"}},
	})

	var buf bytes.Buffer
	require.NoError(t, layout.Render(templ.WithChildren(context.Background(), child), &buf))
	html := buf.String()
	require.Contains(t, html, "<title>Actions &lt;list&gt;</title>")
	require.Contains(t, html, `<p id="child">hello</p>`)
	require.Contains(t, html, `href="/actions"`)
	require.Contains(t, html, `/assets/css/actions-`)
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriter_StopsAfterFirstError(t *testing.T) {
	hw := NewWriter(failingWriter{})
	hw.Raw("a")
	hw.Text("b")
	require.ErrorIs(t, hw.Err(), io.ErrClosedPipe)
}
