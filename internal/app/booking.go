package app

import (
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"hotel_finder/internal/domain"
)

type BookingStatus string

const (
	BookingIdle       BookingStatus = "idle"
	BookingSubmitting BookingStatus = "submitting"
	BookingSuccess    BookingStatus = "success"
	BookingError      BookingStatus = "error"
)

const (
	defaultGuests = 2
	minGuests     = 1
	maxGuests     = 10
)

var errAlreadyConfirmed = errors.New("booking already confirmed")

// BookingForm is what the user typed into the modal.
type BookingForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Guests   int    `json:"guests"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// BookingModal is the booking dialog: idle -> submitting -> success | error.
type BookingModal struct {
	Open         bool                        `json:"open"`
	Status       BookingStatus               `json:"status"`
	Error        string                      `json:"error,omitempty"`
	Form         BookingForm                 `json:"form"`
	Confirmation *domain.BookingConfirmation `json:"confirmation,omitempty"`
}

func NewBookingModal() BookingModal {
	return BookingModal{Status: BookingIdle, Form: BookingForm{Guests: defaultGuests}}
}

// Reopen shows the modal in idle state. Empty dates are taken from the search.
func (m *BookingModal) Reopen(f domain.SearchFilters) {
	m.Open = true
	m.Status = BookingIdle
	m.Error = ""
	m.Confirmation = nil
	if m.Form.Guests == 0 {
		m.Form.Guests = defaultGuests
	}
	if m.Form.CheckIn == "" {
		m.Form.CheckIn = f.CheckIn
	}
	if m.Form.CheckOut == "" {
		m.Form.CheckOut = f.CheckOut
	}
}

// Close hides the modal and drops any confirmation.
func (m *BookingModal) Close() {
	m.Open = false
	m.Confirmation = nil
	if m.Status == BookingSuccess || m.Status == BookingSubmitting {
		m.Status = BookingIdle
	}
}

func (m BookingModal) Nights() int { return NightsBetween(m.Form.CheckIn, m.Form.CheckOut) }

// Total is nights times the nightly price, 0 while the dates don't form a stay.
func (m BookingModal) Total(h *domain.Hotel) float64 {
	n := m.Nights()
	if n == 0 || h == nil {
		return 0
	}
	return float64(n) * h.PricePerNight
}

// Begin records form, validates it against hotel and moves to submitting. A failed
// check moves to error and returns the *domain.ValidationError.
func (m *BookingModal) Begin(hotel *domain.Hotel, form BookingForm) (domain.BookingRequest, error) {
	if m.Status == BookingSuccess {
		return domain.BookingRequest{}, errAlreadyConfirmed
	}
	m.Form = form
	m.Error = ""
	req, err := Validate(hotel, form)
	if err != nil {
		m.fail(err)
		return domain.BookingRequest{}, err
	}
	m.Status = BookingSubmitting
	return req, nil
}

// Complete applies the outcome of the booking call.
func (m *BookingModal) Complete(conf domain.BookingConfirmation, err error) {
	if err != nil {
		m.fail(err)
		return
	}
	m.Status = BookingSuccess
	m.Error = ""
	m.Confirmation = &conf
}

func (m *BookingModal) fail(err error) {
	m.Status = BookingError
	m.Error = err.Error()
	if m.Error == "" {
		m.Error = "Booking failed."
	}
}

// Validate runs the local checks in order and stops at the first failure.
func Validate(hotel *domain.Hotel, form BookingForm) (domain.BookingRequest, error) {
	invalid := func(field, msg string) (domain.BookingRequest, error) {
		return domain.BookingRequest{}, &domain.ValidationError{Field: field, Message: msg}
	}
	name := strings.TrimSpace(form.FullName)
	email := strings.TrimSpace(form.Email)

	switch {
	case hotel == nil || hotel.ID == "":
		return invalid("hotelId", "Missing hotel selection.")
	case name == "":
		return invalid("fullName", "Please enter your full name.")
	case email == "" || !strings.Contains(email, "@"):
		return invalid("email", "Please enter a valid email address.")
	case form.CheckIn == "" || form.CheckOut == "":
		return invalid("dates", "Please choose check-in and check-out dates.")
	case NightsBetween(form.CheckIn, form.CheckOut) <= 0:
		return invalid("checkOut", "Check-out must be after check-in.")
	case form.Guests < minGuests || form.Guests > maxGuests:
		return invalid("guests", "Guests must be between 1 and 10.")
	}
	return domain.BookingRequest{
		HotelID:  hotel.ID,
		FullName: name,
		Email:    email,
		Guests:   form.Guests,
		CheckIn:  form.CheckIn,
		CheckOut: form.CheckOut,
	}, nil
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// NightsBetween is the ceiling of the day difference, never below zero.
// Missing or unparseable dates count as zero nights.
func NightsBetween(checkIn, checkOut string) int {
	a, ok := parseDate(checkIn)
	if !ok {
		return 0
	}
	b, ok := parseDate(checkOut)
	if !ok {
		return 0
	}
	days := math.Ceil(b.Sub(a).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return int(days)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
