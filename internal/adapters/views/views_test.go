package views_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"hotel_finder/internal/adapters/views"
	"hotel_finder/internal/app"
	"hotel_finder/internal/domain"
	"hotel_finder/internal/mockdata"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHotelCard(t *testing.T) {
	h, _ := mockdata.FindByID("htl_001")
	out := render(t, views.HotelCard(h))
	require.Contains(t, out, `action="/hotels/htl_001/select"`)
	require.Contains(t, out, "Azure Bay Hotel")
	require.Contains(t, out, "$189")
	require.Contains(t, out, "4.6 (842)")
	require.Contains(t, out, templ.EscapeString(h.Photos[0]))
	require.Equal(t, 4, bytes.Count([]byte(out), []byte(`class="chip"`)))
}

func TestHotelCard_MissingOptionalFields(t *testing.T) {
	out := render(t, views.HotelCard(domain.Hotel{ID: "x", Name: `<b>"Odd" & Co</b>`, PricePerNight: 99.5}))
	require.Contains(t, out, "No photo")
	require.NotContains(t, out, "hotel-card__amenities")
	require.Contains(t, out, "&lt;b&gt;&#34;Odd&#34; &amp; Co&lt;/b&gt;")
	require.Contains(t, out, "$99.50")
}

func TestPhotoURLsAreSanitized(t *testing.T) {
	h := domain.Hotel{ID: "x", Name: "Evil", Photos: []string{"javascript:alert(1)", "https://img.example/a.jpg", "data:text/html,boom"}}
	for _, out := range []string{render(t, views.HotelCard(h)), render(t, views.HotelDetail(h))} {
		require.NotContains(t, out, "javascript:")
		require.NotContains(t, out, "data:text/html")
		require.Contains(t, out, `src="about:invalid#TemplFailedSanitizationURL"`)
	}
	require.Contains(t, render(t, views.HotelDetail(h)), `src="https://img.example/a.jpg"`)
}

func TestNavbar(t *testing.T) {
	inner := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte(`<span id="slot">slot</span>`))
		return err
	})
	out := render(t, views.Navbar("Hotel Finder", inner))
	require.Contains(t, out, `<div class="navbar__title">Hotel Finder</div>`)
	require.Contains(t, out, `<span id="slot">slot</span>`)
}

func TestPage_ThemeAndStatus(t *testing.T) {
	st := app.NewState()
	out := render(t, views.Page(st))
	require.Contains(t, out, `data-theme="light"`)
	require.Contains(t, out, "API: Mock")
	require.Contains(t, out, "Search for hotels")
	require.NotContains(t, out, `role="dialog"`)

	st.ToggleTheme()
	st.APIStatus = domain.APIStatus{State: domain.APIOK, Message: "Healthy"}
	out = render(t, views.Page(st))
	require.Contains(t, out, `data-theme="dark"`)
	require.Contains(t, out, "API: OK")

	st.ToggleTheme()
	require.Contains(t, render(t, views.Page(st)), `data-theme="light"`)
}

func TestPage_ResultsDetailAndError(t *testing.T) {
	st := app.NewState()
	st.ApplyResults(domain.SearchResult{Results: mockdata.Hotels()})
	st.Filters = domain.SearchFilters{Q: "bay", Amenities: []string{"Pool"}}
	st.Error = "Hotel not found"
	out := render(t, views.Page(st))
	require.Contains(t, out, "Cedar &amp; Stone Suites")
	require.Contains(t, out, `value="bay"`)
	require.Contains(t, out, `<input type="hidden" name="amenities" value="Pool">`)
	require.Contains(t, out, `aria-pressed="true">Pool</button>`)
	require.Contains(t, out, `role="alert">Hotel not found</div>`)

	h, _ := mockdata.FindByID("htl_003")
	st.Select(h)
	out = render(t, views.Page(st))
	require.Contains(t, out, "Back to results")
	require.Contains(t, out, "Photo gallery")
	require.NotContains(t, out, `class="results"`)

	st.ApplyResults(domain.SearchResult{Results: []domain.Hotel{}})
	require.Contains(t, render(t, views.Page(st)), "No hotels found")
}

func TestBookingModal(t *testing.T) {
	h, _ := mockdata.FindByID("htl_002")
	m := app.NewBookingModal()
	require.Empty(t, render(t, views.BookingModal(m, &h)))

	m.Reopen(domain.SearchFilters{CheckIn: "2024-01-01", CheckOut: "2024-01-03"})
	out := render(t, views.BookingModal(m, &h))
	require.Contains(t, out, `aria-label="Book Cedar &amp; Stone Suites"`)
	require.Contains(t, out, "<span>2</span>")
	require.Contains(t, out, "$298")
	require.Contains(t, out, "Book now")

	m.Form.CheckOut = ""
	_, err := m.Begin(&h, m.Form)
	require.Error(t, err)
	out = render(t, views.BookingModal(m, &h))
	require.Contains(t, out, "Please choose check-in and check-out dates.")
	require.Contains(t, out, "<span>—</span>")

	m.Complete(domain.BookingConfirmation{Source: domain.SourceMock, BookingID: "bk_12345678", Status: "confirmed"}, nil)
	out = render(t, views.BookingModal(m, &h))
	require.Contains(t, out, "Booking confirmed (mock)!")
	require.Contains(t, out, "bk_12345678")
	require.Contains(t, out, ">Done</button>")
	require.NotContains(t, out, "Book now")
}
