package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	server "hotel_finder/internal/adapters/http_server"
	"hotel_finder/internal/adapters/hotelapi"
	"hotel_finder/internal/adapters/memstore"
	"hotel_finder/internal/app"
)

// newFrontend serves the app against backend; "" means same-origin, i.e. the
// front end's own listener, which answers the health probe and 404s every hotel
// endpoint, so data always comes from the mock set.
func newFrontend(t *testing.T, backend string) (*httptest.Server, *http.Client) {
	t.Helper()
	ts := httptest.NewUnstartedServer(nil)
	if backend == "" {
		backend = "http://" + ts.Listener.Addr().String()
	}
	api, err := hotelapi.New(backend, 1000, 2*time.Second)
	require.NoError(t, err)

	srv := server.New(5 * time.Second)
	srv.MountHandlers(&server.Handlers{App: app.New(api, memstore.New(), time.Hour)})
	ts.Config.Handler = srv.Mux()
	ts.Start()
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func get(t *testing.T, c *http.Client, u string) string {
	t.Helper()
	res, err := c.Get(u)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

// post submits a form and follows the 303 back to the page.
func post(t *testing.T, c *http.Client, u string, form url.Values) string {
	t.Helper()
	res, err := c.PostForm(u, form)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "/", res.Request.URL.Path)
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHealthz(t *testing.T) {
	ts, c := newFrontend(t, "")
	res, err := c.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPage_SetsSessionCookie(t *testing.T) {
	ts, c := newFrontend(t, "")
	res, err := c.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	var found bool
	for _, ck := range res.Cookies() {
		if ck.Name == "hf_session" {
			found = true
			require.True(t, ck.HttpOnly)
		}
	}
	require.True(t, found)
	b, _ := io.ReadAll(res.Body)
	require.Contains(t, string(b), "Hotel Finder")
	// same-origin: the probe reaches this server and is answered directly
	require.Contains(t, string(b), "API: OK")
}

func TestPage_SelfProbeIsAnswered(t *testing.T) {
	ts, _ := newFrontend(t, "")
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", hotelapi.UserAgent)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestHostHeaderDoesNotPickTheBackend(t *testing.T) {
	var hits int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = io.WriteString(w, `[{"id":"int_1","name":"Internal Admin Inn","pricePerNight":1}]`)
	}))
	defer internal.Close()
	ts, c := newFrontend(t, "")

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/search", strings.NewReader(url.Values{"q": {""}}.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Host = strings.TrimPrefix(internal.URL, "http://")
	res, err := c.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Zero(t, atomic.LoadInt32(&hits))
	require.NotContains(t, string(b), "Internal Admin Inn")
	require.Contains(t, string(b), "Azure Bay Hotel")
}

func TestSearchSelectBookFlow_MockBackend(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	ts, c := newFrontend(t, down.URL)

	page := get(t, c, ts.URL+"/")
	require.Contains(t, page, "API: Mock")

	page = post(t, c, ts.URL+"/search", url.Values{"q": {"austin"}, "checkIn": {"2024-01-01"}, "checkOut": {"2024-01-03"}})
	require.Contains(t, page, "Riverside Grand")
	require.NotContains(t, page, "Azure Bay Hotel")

	page = post(t, c, ts.URL+"/hotels/htl_003/select", nil)
	require.Contains(t, page, "Back to results")
	require.Contains(t, page, "per night")

	page = post(t, c, ts.URL+"/booking/open", nil)
	require.Contains(t, page, `role="dialog"`)
	require.Contains(t, page, "$438")

	page = post(t, c, ts.URL+"/booking", url.Values{"fullName": {"Jane Doe"}, "email": {"jane@example.com"},
		"guests": {"2"}, "checkIn": {"2024-01-03"}, "checkOut": {"2024-01-01"}})
	require.Contains(t, page, "Check-out must be after check-in.")

	page = post(t, c, ts.URL+"/booking", url.Values{"fullName": {"Jane Doe"}, "email": {"jane@example.com"},
		"guests": {"2"}, "checkIn": {"2024-01-01"}, "checkOut": {"2024-01-03"}})
	require.Contains(t, page, "Booking confirmed (mock)!")

	page = post(t, c, ts.URL+"/booking/close", nil)
	require.NotContains(t, page, `role="dialog"`)

	page = post(t, c, ts.URL+"/detail/close", nil)
	require.Contains(t, page, `class="results"`)

	page = post(t, c, ts.URL+"/reset", nil)
	require.Contains(t, page, "Search for hotels")
}

func TestSelectUnknownHotelShowsError(t *testing.T) {
	ts, c := newFrontend(t, "")
	page := post(t, c, ts.URL+"/hotels/htl_nope/select", nil)
	require.Contains(t, page, `role="alert">Hotel not found</div>`)
	require.NotContains(t, page, "Back to results")
}

func TestAmenityToggleKeepsTypedFilters(t *testing.T) {
	ts, c := newFrontend(t, "")
	page := post(t, c, ts.URL+"/filters/amenity", url.Values{"q": {"denver"}, "amenity": {"Parking"}})
	require.Contains(t, page, `value="denver"`)
	require.Contains(t, page, `aria-pressed="true">Parking</button>`)

	page = post(t, c, ts.URL+"/filters/amenity", url.Values{"q": {"denver"}, "amenities": {"Parking"}, "amenity": {"Parking"}})
	require.Contains(t, page, `aria-pressed="false">Parking</button>`)
}

func TestThemeToggle(t *testing.T) {
	ts, c := newFrontend(t, "")
	require.Contains(t, get(t, c, ts.URL+"/"), `data-theme="light"`)
	require.Contains(t, post(t, c, ts.URL+"/theme", nil), `data-theme="dark"`)
	require.Contains(t, post(t, c, ts.URL+"/theme", nil), `data-theme="light"`)
}

func TestSessionsAreIsolated(t *testing.T) {
	ts, c1 := newFrontend(t, "")
	post(t, c1, ts.URL+"/theme", nil)

	jar, _ := cookiejar.New(nil)
	c2 := &http.Client{Jar: jar}
	require.Contains(t, get(t, c2, ts.URL+"/"), `data-theme="light"`)
	require.Contains(t, get(t, c1, ts.URL+"/"), `data-theme="dark"`)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string, any) (bool, error) { return false, errors.New("redis down") }
func (failingStore) Set(context.Context, string, any, int) error    { return errors.New("redis down") }
func (failingStore) Del(context.Context, string) error              { return nil }

func TestStoreFailureIsProblemJSON(t *testing.T) {
	api, err := hotelapi.New("http://127.0.0.1:1", 1000, time.Second)
	require.NoError(t, err)
	srv := server.New(5 * time.Second)
	srv.MountHandlers(&server.Handlers{App: app.New(api, failingStore{}, time.Hour)})

	rr := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader("")))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}
