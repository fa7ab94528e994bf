package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer renders HTML fragments and remembers the first write error.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes s HTML-escaped. Safe for attribute values too.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

func (hw *Writer) Render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

func (hw *Writer) Err() error {
	return hw.err
}
