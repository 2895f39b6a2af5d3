package views

import (
	"context"

	"github.com/a-h/templ"

	"hotel_finder/internal/domain"
)

const maxGallery = 6

func HotelDetail(hotel domain.Hotel) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="panel"><div class="detail"><div class="detail__hero">`)
		if cover := hotel.Cover(); cover != "" {
			h.rawf(`<img class="detail__img" src="%s" alt="%s">`, safeURL(cover), hotel.Name)
		} else {
			h.raw(`<div class="detail__placeholder">No image</div>`)
		}

		h.raw(`<div class="detail__heroInfo"><div class="detail__titleRow"><div>`)
		h.rawf(`<div class="detail__name">%s</div>`, hotel.Name)
		h.rawf(`<div class="detail__sub">%s • %s (%d)</div></div>`, hotel.Location, rating(hotel.Rating), hotel.ReviewCount)
		h.rawf(`<div class="detail__price"><div class="detail__priceValue">%s</div><div class="detail__priceUnit">per night</div></div></div>`,
			money(hotel.PricePerNight))

		h.raw(`<div class="detail__amenities">`)
		for _, a := range hotel.Amenities {
			h.rawf(`<span class="chip">%s</span>`, a)
		}
		h.raw(`</div>`)
		h.rawf(`<div class="detail__desc">%s</div>`, hotel.Description)

		h.raw(`<div class="detail__actions">`)
		h.raw(`<form method="post" action="/detail/close"><button type="submit" class="btn btn-secondary">Back to results</button></form>`)
		h.raw(`<form method="post" action="/booking/open"><button type="submit" class="btn btn-primary">Book</button></form>`)
		h.raw(`</div></div></div>`)

		if len(hotel.Photos) > 1 {
			h.raw(`<div class="gallery" aria-label="Photo gallery">`)
			for i, src := range hotel.Photos {
				if i == maxGallery {
					break
				}
				h.rawf(`<img class="gallery__img" src="%s" alt="%s photo">`, safeURL(src), hotel.Name)
			}
			h.raw(`</div>`)
		}
		h.raw(`</div></div>`)
	})
}

// Results lists hotel cards, or the empty prompt.
func Results(hotels []domain.Hotel, searched bool) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="panel"><div class="panel__title">Results</div>`)
		if len(hotels) == 0 {
			title, text := "Search for hotels", "Use the filters on the left to find stays by location, price, and amenities."
			if searched {
				title, text = "No hotels found", "Try a different location, a wider price range, or fewer amenities."
			}
			h.rawf(`<div class="empty"><div class="empty__title">%s</div><div class="empty__text">%s</div></div></div>`, title, text)
			return
		}
		h.raw(`<div class="results">`)
		for _, hotel := range hotels {
			h.render(ctx, HotelCard(hotel))
		}
		h.raw(`</div></div>`)
	})
}
