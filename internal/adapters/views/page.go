package views

import (
	"context"

	"github.com/a-h/templ"

	"hotel_finder/internal/app"
	"hotel_finder/internal/domain"
)

const Title = "Hotel Finder"

// Page is the whole application for one session state.
func Page(st app.State) templ.Component {
	return component(func(ctx context.Context, h *html) {
		theme := st.Theme
		if theme != domain.ThemeDark {
			theme = domain.ThemeLight
		}
		h.rawf(`<!doctype html><html lang="en" data-theme="%s"><head>`, string(theme))
		h.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s</title>`, Title)
		h.raw(styles)
		h.raw(`</head><body><div class="App">`)

		h.render(ctx, Navbar(Title, navbarRight(st.APIStatus, theme)))

		h.raw(`<div class="page">`)
		h.render(ctx, SearchPanel(st.Filters, domain.Amenities, st.Error))
		h.raw(`<main class="content" aria-label="Search results and hotel details">`)
		if st.Selected != nil {
			h.render(ctx, HotelDetail(*st.Selected))
		} else {
			h.render(ctx, Results(st.Results, st.Searched))
		}
		h.raw(`</main></div>`)

		h.render(ctx, BookingModal(st.Booking, st.Selected))
		h.raw(`</div></body></html>`)
	})
}

func navbarRight(status domain.APIStatus, theme domain.Theme) templ.Component {
	return component(func(ctx context.Context, h *html) {
		badge, label := "badge--warn", "API: Mock"
		if status.State == domain.APIOK {
			badge, label = "badge--ok", "API: OK"
		}
		h.raw(`<div class="navbar__right">`)
		h.rawf(`<div class="badge %s" role="status" aria-label="API status" title="%s">%s</div>`, badge, status.Message, label)

		next := theme.Toggle()
		text := "Dark"
		if theme == domain.ThemeDark {
			text = "Light"
		}
		h.rawf(`<form method="post" action="/theme"><button class="theme-toggle" type="submit" aria-label="Switch to %s mode">%s</button></form>`,
			string(next), text)
		h.raw(`</div>`)
	})
}
