package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"hotel_finder/internal/app"
	"hotel_finder/internal/domain"
)

// BookingModal renders nothing while the modal is closed.
func BookingModal(m app.BookingModal, hotel *domain.Hotel) templ.Component {
	return component(func(ctx context.Context, h *html) {
		if !m.Open {
			return
		}
		name := "hotel"
		if hotel != nil && hotel.Name != "" {
			name = hotel.Name
		}
		h.raw(`<div class="modal__backdrop" role="presentation">`)
		h.rawf(`<div class="modal" role="dialog" aria-modal="true" aria-label="Book %s">`, name)
		h.raw(`<div class="modal__header"><div><div class="modal__title">Complete your booking</div>`)
		if hotel != nil {
			h.rawf(`<div class="modal__subtitle">%s</div>`, hotel.Name)
		}
		h.raw(`</div><form method="post" action="/booking/close"><button type="submit" class="icon-btn" aria-label="Close">×</button></form></div>`)

		if m.Status == app.BookingSuccess {
			h.raw(`<div class="modal__content"><div class="alert alert--success" role="status">`)
			if c := m.Confirmation; c != nil {
				label := "Booking confirmed"
				if c.Source == domain.SourceMock {
					label += " (mock)"
				}
				h.rawf(`%s! Reference <strong>%s</strong>, status %s.`, label, c.BookingID, c.Status)
			} else {
				h.raw(`Booking confirmed!`)
			}
			h.raw(`</div><div class="modal__actions"><form method="post" action="/booking/close"><button type="submit" class="btn btn-primary">Done</button></form></div></div>`)
			h.raw(`</div></div>`)
			return
		}

		h.raw(`<form method="post" action="/booking" class="modal__content">`)
		if m.Error != "" {
			h.rawf(`<div class="alert alert--error" role="alert">%s</div>`, m.Error)
		}
		f := m.Form
		h.raw(`<div class="grid2">`)
		h.rawf(`<label class="field"><span class="field__label">Full name</span><input class="input" name="fullName" value="%s" placeholder="Jane Doe" autocomplete="name"></label>`, f.FullName)
		h.rawf(`<label class="field"><span class="field__label">Email</span><input class="input" name="email" value="%s" placeholder="jane@example.com" autocomplete="email"></label>`, f.Email)
		h.rawf(`<label class="field"><span class="field__label">Check-in</span><input type="date" class="input" name="checkIn" value="%s"></label>`, f.CheckIn)
		h.rawf(`<label class="field"><span class="field__label">Check-out</span><input type="date" class="input" name="checkOut" value="%s"></label>`, f.CheckOut)
		h.rawf(`<label class="field"><span class="field__label">Guests</span><input type="number" class="input" name="guests" min="1" max="10" value="%d"></label>`, f.Guests)

		nights, total := "—", "—"
		if n := m.Nights(); n > 0 {
			nights = strconv.Itoa(n)
		}
		if t := m.Total(hotel); t > 0 {
			total = money(t)
		}
		h.raw(`<div class="price-box" aria-label="Price summary">`)
		h.rawf(`<div class="price-box__row"><span>Nights</span><span>%s</span></div>`, nights)
		h.rawf(`<div class="price-box__row"><span>Total</span><span class="price-box__total">%s</span></div>`, total)
		h.raw(`</div></div>`)

		submitting := m.Status == app.BookingSubmitting
		label := "Book now"
		if submitting {
			label = "Booking..."
		}
		h.raw(`<div class="modal__actions"><button type="submit" class="btn btn-secondary" formaction="/booking/close">Cancel</button>`)
		h.rawf(`<button type="submit" class="btn btn-primary"%s>%s</button></div>`, attrIf(submitting, "disabled"), label)
		h.raw(`</form></div></div>`)
	})
}
