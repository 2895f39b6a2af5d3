package views

import (
	"context"

	"github.com/a-h/templ"
)

// Navbar is passive chrome: the brand and whatever content the caller passes.
func Navbar(title string, content templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="navbar"><div class="navbar__inner"><div class="navbar__brand" aria-label="App brand">`)
		h.raw(`<div class="navbar__logo" aria-hidden="true">H</div>`)
		h.rawf(`<div class="navbar__title">%s</div></div>`, title)
		h.raw(`<div class="navbar__content">`)
		if content != nil {
			h.render(ctx, content)
		}
		h.raw(`</div></div></div>`)
	})
}
