package domain

import "context"

// HotelAPI is the backend as seen by the front end. Implementations fall back to
// mock data instead of failing wherever the fallback is defined.
type HotelAPI interface {
	HealthCheck(ctx context.Context) (map[string]any, error)
	SearchHotels(ctx context.Context, f SearchFilters) (SearchResult, error)
	GetHotelByID(ctx context.Context, id HotelID) (HotelResult, error)
	CreateBooking(ctx context.Context, req BookingRequest) (BookingConfirmation, error)
}

// SearchResult is a normalized search response.
type SearchResult struct {
	Source  string  `json:"source,omitempty"`
	Results []Hotel `json:"results"`
}

// HotelResult is a normalized detail response.
type HotelResult struct {
	Source string `json:"source,omitempty"`
	Hotel  Hotel  `json:"hotel"`
}

// Cache holds JSON-encodable values; the session state lives here between requests.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
