// Package views renders the Hotel Finder pages as templ components.
package views

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/a-h/templ"
)

// html writes markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) { h.raw(templ.EscapeString(s)) }

// rawf formats with every argument escaped.
func (h *html) rawf(format string, args ...any) {
	esc := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case string:
			esc[i] = templ.EscapeString(v)
		default:
			esc[i] = v
		}
	}
	h.raw(fmt.Sprintf(format, esc...))
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

// money renders whole amounts without decimals.
func money(v float64) string {
	if v == math.Trunc(v) {
		return "$" + strconv.FormatFloat(v, 'f', 0, 64)
	}
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func rating(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// safeURL passes u through templ's URL sanitizer for use in src and href values.
func safeURL(u string) string { return string(templ.URL(u)) }

func attrIf(cond bool, attr string) string {
	if cond {
		return " " + attr
	}
	return ""
}
