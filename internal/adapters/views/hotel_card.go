package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"hotel_finder/internal/domain"
)

const maxCardAmenities = 4

// HotelCard is one result. Its button posts the hotel id to the select action.
func HotelCard(hotel domain.Hotel) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.rawf(`<form method="post" action="/hotels/%s/select">`, url.PathEscape(string(hotel.ID)))
		h.rawf(`<button type="submit" class="hotel-card" aria-label="View details for %s">`, hotel.Name)

		h.raw(`<div class="hotel-card__media">`)
		if cover := hotel.Cover(); cover != "" {
			h.rawf(`<img class="hotel-card__img" src="%s" alt="%s">`, safeURL(cover), hotel.Name)
		} else {
			h.raw(`<div class="hotel-card__placeholder">No photo</div>`)
		}
		h.raw(`</div>`)

		h.raw(`<div class="hotel-card__body"><div class="hotel-card__top">`)
		h.rawf(`<div class="hotel-card__name">%s</div>`, hotel.Name)
		h.rawf(`<div class="hotel-card__price"><span class="hotel-card__priceValue">%s</span><span class="hotel-card__priceUnit">/night</span></div>`,
			money(hotel.PricePerNight))
		h.raw(`</div>`)

		h.rawf(`<div class="hotel-card__meta"><span class="hotel-card__location">%s</span>`, hotel.Location)
		h.raw(`<span class="hotel-card__dot" aria-hidden="true">•</span>`)
		h.rawf(`<span class="hotel-card__rating">%s (%d)</span></div>`, rating(hotel.Rating), hotel.ReviewCount)

		if len(hotel.Amenities) > 0 {
			h.raw(`<div class="hotel-card__amenities" aria-label="Amenities">`)
			for i, a := range hotel.Amenities {
				if i == maxCardAmenities {
					break
				}
				h.rawf(`<span class="chip">%s</span>`, a)
			}
			h.raw(`</div>`)
		}
		h.raw(`</div></button></form>`)
	})
}
