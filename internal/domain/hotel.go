package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Hotel struct {
	ID            HotelID  `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Amenities     []string `json:"amenities"`
	Photos        []string `json:"photos"`
	Description   string   `json:"description"`
}

// Cover is the first photo, or "" when the hotel has none.
func (h Hotel) Cover() string {
	if len(h.Photos) == 0 {
		return ""
	}
	return h.Photos[0]
}

// HotelID accepts both JSON strings and JSON numbers; backends disagree.
type HotelID string

func (id *HotelID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = HotelID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = HotelID(n.String())
	return nil
}

type SearchFilters struct {
	Q         string   `json:"q"`
	CheckIn   string   `json:"checkIn"`
	CheckOut  string   `json:"checkOut"`
	MinPrice  string   `json:"minPrice"`
	MaxPrice  string   `json:"maxPrice"`
	Amenities []string `json:"amenities"`
}

// HasAmenity reports whether a is part of the selection.
func (f SearchFilters) HasAmenity(a string) bool {
	for _, x := range f.Amenities {
		if x == a {
			return true
		}
	}
	return false
}

// ToggleAmenity returns a copy of f with a added or removed.
func (f SearchFilters) ToggleAmenity(a string) SearchFilters {
	a = strings.TrimSpace(a)
	if a == "" {
		return f
	}
	next := make([]string, 0, len(f.Amenities)+1)
	found := false
	for _, x := range f.Amenities {
		if x == a {
			found = true
			continue
		}
		next = append(next, x)
	}
	if !found {
		next = append(next, a)
	}
	f.Amenities = next
	return f
}

// Amenities offered as filter chips.
var Amenities = []string{"Free Wi‑Fi", "Pool", "Breakfast", "Gym", "Parking", "Pet Friendly", "Kitchenette"}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark; anything unknown counts as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type APIState string

const (
	APIUnknown APIState = "unknown"
	APIOK      APIState = "ok"
	APIDown    APIState = "down"
)

type APIStatus struct {
	State   APIState `json:"state"`
	Message string   `json:"message"`
}
