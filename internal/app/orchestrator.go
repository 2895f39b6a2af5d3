package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"hotel_finder/internal/domain"
)

const (
	healthyMessage  = "Healthy"
	mockModeMessage = "Using mock data (backend hotel endpoints not available)"
)

// App drives the search, select and book flow for every session.
type App struct {
	api   domain.HotelAPI
	store domain.Cache
	ttl   time.Duration

	inflight singleflight.Group
}

func New(api domain.HotelAPI, store domain.Cache, ttl time.Duration) *App {
	return &App{api: api, store: store, ttl: ttl}
}

func sessionKey(sid string) string { return "session:" + sid }

// State returns the stored state of sid, or a fresh one when none is stored or
// the stored one cannot be decoded.
func (a *App) State(ctx context.Context, sid string) (State, error) {
	st := NewState()
	ok, err := a.store.Get(ctx, sessionKey(sid), &st)
	if errors.Is(err, domain.ErrEmptyOrUnparseable) {
		// unreadable leftovers (e.g. an older layout) start over
		log.Warn().Err(err).Str("session", sid).Msg("dropping unreadable session")
		if err := a.store.Del(ctx, sessionKey(sid)); err != nil {
			return State{}, errors.Wrapf(err, "drop session %s", sid)
		}
		return NewState(), nil
	}
	if err != nil {
		return State{}, errors.Wrapf(err, "load session %s", sid)
	}
	if !ok {
		return NewState(), nil
	}
	return st, nil
}

func (a *App) save(ctx context.Context, sid string, st State) error {
	if err := a.store.Set(ctx, sessionKey(sid), st, int(a.ttl.Seconds())); err != nil {
		return errors.Wrapf(err, "save session %s", sid)
	}
	return nil
}

// update loads, mutates and saves the state of sid.
func (a *App) update(ctx context.Context, sid string, fn func(*State) error) (State, error) {
	st, err := a.State(ctx, sid)
	if err != nil {
		return State{}, err
	}
	if err := fn(&st); err != nil {
		return State{}, err
	}
	return st, a.save(ctx, sid, st)
}

// sharedTimeout bounds a shared action once it no longer follows its caller.
const sharedTimeout = 30 * time.Second

// shared runs fn once for concurrent identical actions of one session. The work
// runs detached from ctx, since the caller that started it may leave while others
// still wait on the result.
func (a *App) shared(ctx context.Context, sid, op string, args []string, fn func(context.Context, *State) error) (State, error) {
	key := fmt.Sprintf("%s|%s|%s", sid, op, strings.Join(args, "\x1f"))
	ch := a.inflight.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedTimeout)
		defer cancel()
		return a.update(fctx, sid, func(st *State) error { return fn(fctx, st) })
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return State{}, res.Err
		}
		return res.Val.(State), nil
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
}

// Mount probes the backend the first time a session is seen. A probe whose
// context is cancelled before it resolves is discarded.
func (a *App) Mount(ctx context.Context, sid string) (State, error) {
	st, err := a.State(ctx, sid)
	if err != nil {
		return State{}, err
	}
	if st.APIStatus.State != domain.APIUnknown && st.APIStatus.State != "" {
		return st, nil
	}
	status, ok := a.probe(ctx)
	if !ok {
		log.Debug().Str("session", sid).Msg("health probe abandoned")
		return st, nil
	}
	st.APIStatus = status
	return st, a.save(ctx, sid, st)
}

func (a *App) probe(ctx context.Context) (domain.APIStatus, bool) {
	data, err := a.api.HealthCheck(ctx)
	if ctx.Err() != nil {
		return domain.APIStatus{}, false
	}
	if err != nil {
		log.Info().Err(err).Msg("backend health check failed, using mock data")
		return domain.APIStatus{State: domain.APIDown, Message: mockModeMessage}, true
	}
	msg := healthyMessage
	if m, ok := data["message"].(string); ok && m != "" {
		msg = m
	}
	return domain.APIStatus{State: domain.APIOK, Message: msg}, true
}

// Search runs f, replaces the results and clears any selection.
func (a *App) Search(ctx context.Context, sid string, f domain.SearchFilters) (State, error) {
	f = cleanFilters(f)
	args := []string{f.Q, f.CheckIn, f.CheckOut, f.MinPrice, f.MaxPrice, strings.Join(f.Amenities, ",")}
	return a.shared(ctx, sid, "search", args, func(ctx context.Context, st *State) error {
		st.Filters = f
		st.Error = ""
		res, err := a.api.SearchHotels(ctx, f)
		if err != nil {
			st.Error = userMessage(err, "Search failed.")
			return nil
		}
		st.ApplyResults(res)
		return nil
	})
}

// ToggleAmenity keeps what the user typed in f and flips amenity.
func (a *App) ToggleAmenity(ctx context.Context, sid string, f domain.SearchFilters, amenity string) (State, error) {
	return a.update(ctx, sid, func(st *State) error {
		st.Filters = cleanFilters(f).ToggleAmenity(amenity)
		return nil
	})
}

func (a *App) Reset(ctx context.Context, sid string) (State, error) {
	return a.update(ctx, sid, func(st *State) error {
		st.Reset()
		return nil
	})
}

func (a *App) ToggleTheme(ctx context.Context, sid string) (State, error) {
	return a.update(ctx, sid, func(st *State) error {
		st.ToggleTheme()
		return nil
	})
}

// SelectHotel loads the detail of id. A lookup failure is shown to the user and
// leaves no hotel selected.
func (a *App) SelectHotel(ctx context.Context, sid string, id domain.HotelID) (State, error) {
	return a.shared(ctx, sid, "select", []string{string(id)}, func(ctx context.Context, st *State) error {
		st.Error = ""
		res, err := a.api.GetHotelByID(ctx, id)
		if err != nil {
			st.Error = userMessage(err, "Failed to load hotel details.")
			st.ClearSelection()
			return nil
		}
		st.Select(res.Hotel)
		return nil
	})
}

func (a *App) ClearSelection(ctx context.Context, sid string) (State, error) {
	return a.update(ctx, sid, func(st *State) error {
		st.ClearSelection()
		return nil
	})
}

// OpenBooking shows the booking modal for the selected hotel.
func (a *App) OpenBooking(ctx context.Context, sid string) (State, error) {
	return a.update(ctx, sid, func(st *State) error {
		if st.Selected == nil {
			st.Error = "Select a hotel before booking."
			return nil
		}
		st.Booking.Reopen(st.Filters)
		return nil
	})
}

func (a *App) CloseBooking(ctx context.Context, sid string) (State, error) {
	return a.update(ctx, sid, func(st *State) error {
		st.Booking.Close()
		return nil
	})
}

// SubmitBooking validates form locally and only then calls the backend.
func (a *App) SubmitBooking(ctx context.Context, sid string, form BookingForm) (State, error) {
	args := []string{form.FullName, form.Email, fmt.Sprint(form.Guests), form.CheckIn, form.CheckOut}
	return a.shared(ctx, sid, "book", args, func(ctx context.Context, st *State) error {
		req, err := st.Booking.Begin(st.Selected, form)
		if errors.Is(err, errAlreadyConfirmed) {
			return nil
		}
		if err != nil {
			log.Debug().Str("session", sid).Str("reason", err.Error()).Msg("booking rejected")
			return nil
		}
		conf, err := a.api.CreateBooking(ctx, req)
		st.Booking.Complete(conf, err)
		if err == nil {
			log.Info().Str("booking", conf.BookingID).Str("source", conf.Source).
				Str("hotel", string(req.HotelID)).Msg("booking confirmed")
		}
		return nil
	})
}

func cleanFilters(f domain.SearchFilters) domain.SearchFilters {
	f.Q = strings.TrimSpace(f.Q)
	f.CheckIn = strings.TrimSpace(f.CheckIn)
	f.CheckOut = strings.TrimSpace(f.CheckOut)
	f.MinPrice = strings.TrimSpace(f.MinPrice)
	f.MaxPrice = strings.TrimSpace(f.MaxPrice)
	seen := make(map[string]bool, len(f.Amenities))
	out := make([]string, 0, len(f.Amenities))
	for _, am := range f.Amenities {
		if am = strings.TrimSpace(am); am != "" && !seen[am] {
			seen[am] = true
			out = append(out, am)
		}
	}
	f.Amenities = out
	return f
}

func userMessage(err error, def string) string {
	if err == nil || err.Error() == "" {
		return def
	}
	return err.Error()
}
