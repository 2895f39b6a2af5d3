package hotelapi

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"hotel_finder/internal/domain"
)

// Shape tags which of the accepted response layouts a body used.
type Shape string

const (
	ShapeList    Shape = "list"    // [ {...}, ... ]
	ShapeResults Shape = "results" // {"results": [...]}
	ShapeItems   Shape = "items"   // {"items": [...]}
	ShapeUnknown Shape = "unknown" // any other JSON value; normalizes to no hotels

	ShapeHotel  Shape = "hotel"  // {"hotel": {...}}
	ShapeResult Shape = "result" // {"result": {...}}
	ShapeBare   Shape = "bare"   // {...}
)

var jsonNull = []byte("null")

// SearchEnvelope is every search response layout the backend may send.
type SearchEnvelope struct {
	Shape  Shape
	Source string
	Hotels []domain.Hotel
}

func (e *SearchEnvelope) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return domain.Unparseable(nil, "search")
	}
	*e = SearchEnvelope{Shape: ShapeUnknown}
	switch b[0] {
	case '[':
		if err := json.Unmarshal(b, &e.Hotels); err != nil {
			return domain.Unparseable(err, "search")
		}
		e.Shape = ShapeList
	case '{':
		var obj struct {
			Source  json.RawMessage `json:"source"`
			Results json.RawMessage `json:"results"`
			Items   json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return domain.Unparseable(err, "search")
		}
		e.Source = stringOrEmpty(obj.Source)
		for _, c := range []struct {
			raw   json.RawMessage
			shape Shape
		}{{obj.Results, ShapeResults}, {obj.Items, ShapeItems}} {
			if !isArray(c.raw) {
				continue
			}
			if err := json.Unmarshal(c.raw, &e.Hotels); err != nil {
				return domain.Unparseable(err, "search")
			}
			e.Shape = c.shape
			break
		}
	default:
		if !json.Valid(b) {
			return domain.Unparseable(errors.New("invalid JSON"), "search")
		}
	}
	return nil
}

// Normalize returns the hotel list regardless of layout; never nil.
func (e SearchEnvelope) Normalize() []domain.Hotel {
	if e.Hotels == nil {
		return []domain.Hotel{}
	}
	return e.Hotels
}

// HotelEnvelope is every detail response layout the backend may send.
type HotelEnvelope struct {
	Shape  Shape
	Source string
	Hotel  domain.Hotel
}

func (e *HotelEnvelope) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return domain.Unparseable(nil, "hotel")
	}
	if b[0] != '{' {
		return domain.Unparseable(errors.New("expected a JSON object"), "hotel")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return domain.Unparseable(err, "hotel")
	}
	*e = HotelEnvelope{Source: stringOrEmpty(obj["source"])}

	inner, shape := b, ShapeBare
	if raw := obj["hotel"]; isObject(raw) {
		inner, shape = raw, ShapeHotel
	} else if raw := obj["result"]; isObject(raw) {
		inner, shape = raw, ShapeResult
	}
	if err := json.Unmarshal(inner, &e.Hotel); err != nil {
		return domain.Unparseable(err, "hotel")
	}
	e.Shape = shape
	return nil
}

// Unwrap returns the hotel whichever envelope carried it.
func (e HotelEnvelope) Unwrap() domain.Hotel { return e.Hotel }

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func stringOrEmpty(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
