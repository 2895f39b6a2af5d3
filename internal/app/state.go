package app

import "hotel_finder/internal/domain"

// State is everything one visitor sees. It is loaded at the start of every action
// and written back once the action has finished.
type State struct {
	Theme     domain.Theme         `json:"theme"`
	APIStatus domain.APIStatus     `json:"apiStatus"`
	Filters   domain.SearchFilters `json:"filters"`
	Results   []domain.Hotel       `json:"results"`
	Source    string               `json:"source,omitempty"`
	Searched  bool                 `json:"searched"`
	Selected  *domain.Hotel        `json:"selected,omitempty"`
	Booking   BookingModal         `json:"booking"`
	Error     string               `json:"error,omitempty"`
}

func NewState() State {
	return State{
		Theme:     domain.ThemeLight,
		APIStatus: domain.APIStatus{State: domain.APIUnknown},
		Booking:   NewBookingModal(),
	}
}

// ApplyResults replaces the result list and drops the current selection.
func (s *State) ApplyResults(res domain.SearchResult) {
	s.Results = res.Results
	if s.Results == nil {
		s.Results = []domain.Hotel{}
	}
	s.Source = res.Source
	s.Searched = true
	s.ClearSelection()
}

func (s *State) Select(h domain.Hotel) {
	s.Selected = &h
	s.Booking.Close()
}

func (s *State) ClearSelection() {
	s.Selected = nil
	s.Booking.Close()
}

// Reset empties filters and results.
func (s *State) Reset() {
	s.Filters = domain.SearchFilters{}
	s.Results = nil
	s.Source = ""
	s.Searched = false
	s.Error = ""
	s.ClearSelection()
}

func (s *State) ToggleTheme() { s.Theme = s.Theme.Toggle() }
