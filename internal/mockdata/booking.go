package mockdata

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel_finder/internal/domain"
)

// Confirm synthesizes the confirmation shown when the bookings endpoint fails.
func Confirm(req domain.BookingRequest, now time.Time) domain.BookingConfirmation {
	return domain.BookingConfirmation{
		Source:         domain.SourceMock,
		BookingID:      NewBookingID(),
		Status:         domain.BookingConfirmed,
		CreatedAt:      now.UTC().Format(time.RFC3339),
		BookingRequest: req,
	}
}

// NewBookingID returns "bk_" followed by 8 random hex characters.
func NewBookingID() string {
	return "bk_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
