package domain

type BookingRequest struct {
	HotelID  HotelID `json:"hotelId"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Guests   int     `json:"guests"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
}

// BookingConfirmation echoes the request next to what the backend (or the mock) assigned.
type BookingConfirmation struct {
	Source    string `json:"source,omitempty"`
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	BookingRequest
}

const BookingConfirmed = "confirmed"

// SourceMock tags results that came from the in-memory dataset.
const SourceMock = "mock"
