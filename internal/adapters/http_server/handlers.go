package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_finder/internal/adapters/hotelapi"
	"hotel_finder/internal/adapters/views"
	"hotel_finder/internal/app"
	"hotel_finder/internal/domain"
)

type Handlers struct {
	App          *app.App
	SecureCookie bool
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Group(func(r chi.Router) {
		r.Use(Session(h.SecureCookie))
		r.Get("/", h.page)
		r.Post("/search", h.search)
		r.Post("/filters/amenity", h.toggleAmenity)
		r.Post("/reset", h.reset)
		r.Post("/theme", h.toggleTheme)
		r.Post("/hotels/{id}/select", h.selectHotel)
		r.Post("/detail/close", h.closeDetail)
		r.Post("/booking/open", h.openBooking)
		r.Post("/booking/close", h.closeBooking)
		r.Post("/booking", h.submitBooking)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := c.Render(r.Context(), w); err != nil {
		log.Error().Err(err).Msg("render page failed")
	}
}

// done finishes a state-changing action: back to the page, or a 500 when the
// session could not be loaded or saved.
func done(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		log.Warn().Err(err).Str("session", SessionID(r.Context())).Msg("session store failed")
		writeProblem(w, http.StatusInternalServerError, "Session unavailable", "please retry in a moment")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	// same-origin health probe from our own client: answer it instead of recursing
	if r.UserAgent() == hotelapi.UserAgent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	st, err := h.App.Mount(r.Context(), SessionID(r.Context()))
	if err != nil {
		log.Warn().Err(err).Msg("session store failed")
		writeProblem(w, http.StatusInternalServerError, "Session unavailable", "please retry in a moment")
		return
	}
	render(w, r, views.Page(st))
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.Search(r.Context(), SessionID(r.Context()), filtersFromForm(r))
	done(w, r, err)
}

func (h *Handlers) toggleAmenity(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.ToggleAmenity(r.Context(), SessionID(r.Context()), filtersFromForm(r), r.PostFormValue("amenity"))
	done(w, r, err)
}

func (h *Handlers) reset(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.Reset(r.Context(), SessionID(r.Context()))
	done(w, r, err)
}

func (h *Handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.ToggleTheme(r.Context(), SessionID(r.Context()))
	done(w, r, err)
}

func (h *Handlers) selectHotel(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id is required")
		return
	}
	_, err := h.App.SelectHotel(r.Context(), SessionID(r.Context()), domain.HotelID(id))
	done(w, r, err)
}

func (h *Handlers) closeDetail(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.ClearSelection(r.Context(), SessionID(r.Context()))
	done(w, r, err)
}

func (h *Handlers) openBooking(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.OpenBooking(r.Context(), SessionID(r.Context()))
	done(w, r, err)
}

func (h *Handlers) closeBooking(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.CloseBooking(r.Context(), SessionID(r.Context()))
	done(w, r, err)
}

func (h *Handlers) submitBooking(w http.ResponseWriter, r *http.Request) {
	_, err := h.App.SubmitBooking(r.Context(), SessionID(r.Context()), bookingFromForm(r))
	done(w, r, err)
}

func filtersFromForm(r *http.Request) domain.SearchFilters {
	_ = r.ParseForm()
	return domain.SearchFilters{
		Q:         r.PostForm.Get("q"),
		CheckIn:   r.PostForm.Get("checkIn"),
		CheckOut:  r.PostForm.Get("checkOut"),
		MinPrice:  r.PostForm.Get("minPrice"),
		MaxPrice:  r.PostForm.Get("maxPrice"),
		Amenities: r.PostForm["amenities"],
	}
}

// an unparseable guest count becomes 0 and fails validation
func bookingFromForm(r *http.Request) app.BookingForm {
	_ = r.ParseForm()
	guests, _ := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("guests")))
	return app.BookingForm{
		FullName: r.PostForm.Get("fullName"),
		Email:    r.PostForm.Get("email"),
		Guests:   guests,
		CheckIn:  r.PostForm.Get("checkIn"),
		CheckOut: r.PostForm.Get("checkOut"),
	}
}
