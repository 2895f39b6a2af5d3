package mockdata

import (
	"math"
	"strconv"
	"strings"

	"hotel_finder/internal/domain"
)

// Filter applies f to the dataset. Query is a case-insensitive substring of name or
// location, price bounds are inclusive and ignored unless finite, and every selected
// amenity must be present. Order is preserved.
func Filter(f domain.SearchFilters) []domain.Hotel {
	q := strings.ToLower(strings.TrimSpace(f.Q))
	lo, hasLo := parseBound(f.MinPrice)
	hi, hasHi := parseBound(f.MaxPrice)

	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if q != "" && !strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.Location), q) {
			continue
		}
		if hasLo && h.PricePerNight < lo {
			continue
		}
		if hasHi && h.PricePerNight > hi {
			continue
		}
		if !hasAll(h.Amenities, f.Amenities) {
			continue
		}
		out = append(out, clone(h))
	}
	return out
}

func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func hasAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
