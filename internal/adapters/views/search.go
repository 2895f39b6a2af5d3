package views

import (
	"context"

	"github.com/a-h/templ"

	"hotel_finder/internal/domain"
)

// SearchPanel is the filter sidebar. Amenity chips are submit buttons of the same
// form, so typed values survive a toggle.
func SearchPanel(f domain.SearchFilters, amenities []string, errMsg string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<aside class="sidebar" aria-label="Search filters"><form class="panel" method="post" action="/search">`)
		h.raw(`<div class="panel__title">Search</div>`)

		h.rawf(`<label class="field"><span class="field__label">Location or hotel</span><input class="input" name="q" value="%s" placeholder="e.g. Austin, TX"></label>`, f.Q)

		h.raw(`<div class="grid2">`)
		h.rawf(`<label class="field"><span class="field__label">Check-in</span><input type="date" class="input" name="checkIn" value="%s"></label>`, f.CheckIn)
		h.rawf(`<label class="field"><span class="field__label">Check-out</span><input type="date" class="input" name="checkOut" value="%s"></label>`, f.CheckOut)
		h.raw(`</div><div class="grid2">`)
		h.rawf(`<label class="field"><span class="field__label">Min price</span><input type="number" class="input" name="minPrice" value="%s" placeholder="0" min="0"></label>`, f.MinPrice)
		h.rawf(`<label class="field"><span class="field__label">Max price</span><input type="number" class="input" name="maxPrice" value="%s" placeholder="500" min="0"></label>`, f.MaxPrice)
		h.raw(`</div>`)

		h.raw(`<div class="field"><div class="field__label">Amenities</div><div class="amenities">`)
		for _, a := range f.Amenities {
			h.rawf(`<input type="hidden" name="amenities" value="%s">`, a)
		}
		for _, a := range amenities {
			active := f.HasAmenity(a)
			class := "chip chip--selectable"
			if active {
				class += " chip--active"
			}
			pressed := "false"
			if active {
				pressed = "true"
			}
			h.rawf(`<button type="submit" class="%s" formaction="/filters/amenity" name="amenity" value="%s" aria-pressed="%s">%s</button>`,
				class, a, pressed, a)
		}
		h.raw(`</div></div>`)

		h.raw(`<div class="panel__actions"><button type="submit" class="btn btn-primary">Search</button>`)
		h.raw(`<button type="submit" class="btn btn-secondary" formaction="/reset">Reset</button></div>`)

		if errMsg != "" {
			h.rawf(`<div class="alert alert--error" role="alert">%s</div>`, errMsg)
		}
		h.raw(`</form></aside>`)
	})
}
