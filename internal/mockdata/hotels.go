// Package mockdata is the fixed hotel list served when the backend is unavailable.
package mockdata

import "hotel_finder/internal/domain"

var hotels = []domain.Hotel{
	{
		ID:            "htl_001",
		Name:          "Azure Bay Hotel",
		Location:      "San Diego, CA",
		PricePerNight: 189,
		Rating:        4.6,
		ReviewCount:   842,
		Amenities:     []string{"Free Wi‑Fi", "Pool", "Breakfast", "Gym"},
		Photos: []string{
			"https://images.unsplash.com/photo-1501117716987-c8e1ecb210ff?auto=format&fit=crop&w=1200&q=70",
			"https://images.unsplash.com/photo-1445019980597-93fa8acb246c?auto=format&fit=crop&w=1200&q=70",
		},
		Description: "Coastal comfort with modern rooms, walkable access to the waterfront, and a bright pool deck.",
	},
	{
		ID:            "htl_002",
		Name:          "Cedar & Stone Suites",
		Location:      "Denver, CO",
		PricePerNight: 149,
		Rating:        4.3,
		ReviewCount:   410,
		Amenities:     []string{"Free Wi‑Fi", "Kitchenette", "Parking"},
		Photos: []string{
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=1200&q=70",
			"https://images.unsplash.com/photo-1560067174-8943bd5d6b3b?auto=format&fit=crop&w=1200&q=70",
		},
		Description: "Spacious suites with kitchenettes, ideal for longer stays. Easy access to downtown and trails.",
	},
	{
		ID:            "htl_003",
		Name:          "Riverside Grand",
		Location:      "Austin, TX",
		PricePerNight: 219,
		Rating:        4.7,
		ReviewCount:   1250,
		Amenities:     []string{"Pool", "Breakfast", "Pet Friendly", "Gym"},
		Photos: []string{
			"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?auto=format&fit=crop&w=1200&q=70",
			"https://images.unsplash.com/photo-1551887373-6b21b4c9c5c9?auto=format&fit=crop&w=1200&q=70",
		},
		Description: "Upscale downtown stay with river views, rooftop pool, and quick access to food and music venues.",
	},
}

// Hotels returns a copy of the dataset in its fixed order.
func Hotels() []domain.Hotel {
	out := make([]domain.Hotel, len(hotels))
	for i, h := range hotels {
		out[i] = clone(h)
	}
	return out
}

// FindByID looks a hotel up by identifier.
func FindByID(id domain.HotelID) (domain.Hotel, bool) {
	for _, h := range hotels {
		if h.ID == id {
			return clone(h), true
		}
	}
	return domain.Hotel{}, false
}

// copy slices so callers can't reach into the package-level records
func clone(h domain.Hotel) domain.Hotel {
	h.Amenities = append([]string(nil), h.Amenities...)
	h.Photos = append([]string(nil), h.Photos...)
	return h
}
