// Package hotelapi talks to the hotel backend and substitutes mock data whenever a
// call cannot be completed.
package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"hotel_finder/internal/adapters/observability"
	"hotel_finder/internal/domain"
	"hotel_finder/internal/mockdata"
)

const (
	maxBody      = 4 << 20
	endpointRoot = "health"
)

// UserAgent identifies requests made by this client. When the backend is the
// front end's own origin, its health probe arrives there with this agent.
const UserAgent = "hotel-finder/1.0"

type Client struct {
	base *url.URL
	hc   *http.Client
	rl   *rate.Limiter
	now  func() time.Time
}

// New builds a client for the absolute base URL. Same-origin deployments pass the
// front end's own configured origin; the base never comes from a request.
func New(base string, rps int, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, errors.Wrapf(err, "parse base URL %q", base)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("base URL %q must be absolute", base)
	}
	if rps <= 0 {
		rps = 20
	}
	return &Client{
		base: u,
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		now:  time.Now,
	}, nil
}

// ---- Public API ----

func (c *Client) HealthCheck(ctx context.Context) (map[string]any, error) {
	body, err := c.do(ctx, http.MethodGet, endpointRoot, c.buildURL(nil, nil), nil)
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) {
			return nil, &domain.HealthCheckError{Status: se.Status, Cause: err}
		}
		return nil, &domain.HealthCheckError{Cause: err}
	}
	var out map[string]any
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &out) != nil {
		return nil, nil
	}
	return out, nil
}

// SearchHotels never fails: any backend problem yields the filtered mock list.
func (c *Client) SearchHotels(ctx context.Context, f domain.SearchFilters) (domain.SearchResult, error) {
	var env SearchEnvelope
	err := c.getJSON(ctx, "search", []string{"hotels"}, searchParams(f), &env)
	if err != nil {
		fallback("search", err)
		return domain.SearchResult{Source: domain.SourceMock, Results: mockdata.Filter(f)}, nil
	}
	return domain.SearchResult{Source: env.Source, Results: env.Normalize()}, nil
}

// GetHotelByID falls back to the mock dataset and fails only when the id is
// unknown there too.
func (c *Client) GetHotelByID(ctx context.Context, id domain.HotelID) (domain.HotelResult, error) {
	var env HotelEnvelope
	err := c.getJSON(ctx, "hotel", []string{"hotels", url.PathEscape(string(id))}, nil, &env)
	if err == nil {
		return domain.HotelResult{Source: env.Source, Hotel: env.Unwrap()}, nil
	}
	fallback("hotel", err)
	h, ok := mockdata.FindByID(id)
	if !ok {
		return domain.HotelResult{}, errors.WithSecondaryError(domain.NewNotFound(string(id)), err)
	}
	return domain.HotelResult{Source: domain.SourceMock, Hotel: h}, nil
}

// CreateBooking never fails: an unreachable backend yields a mock confirmation.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
	conf, err := c.postBooking(ctx, req)
	if err != nil {
		fallback("booking", err)
		return mockdata.Confirm(req, c.now()), nil
	}
	if conf.BookingRequest == (domain.BookingRequest{}) {
		conf.BookingRequest = req
	}
	return conf, nil
}

// ---- Internals ----

func (c *Client) postBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
	var out domain.BookingConfirmation
	u := c.buildURL([]string{"bookings"}, nil)
	payload, err := json.Marshal(req)
	if err != nil {
		return out, errors.Wrap(err, "encode booking")
	}
	body, err := c.do(ctx, http.MethodPost, "booking", u, payload)
	if err != nil {
		return out, err
	}
	return out, decode(body, &out, "booking")
}

func (c *Client) getJSON(ctx context.Context, endpoint string, path []string, q url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, endpoint, c.buildURL(path, q), nil)
	if err != nil {
		return err
	}
	return decode(body, out, endpoint)
}

// do performs one request, with client-side rate limiting, and returns the body of
// a 2xx response. Everything else is an ErrNetworkOrStatus.
func (c *Client) do(ctx context.Context, method, endpoint, rawURL string, payload []byte) ([]byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, domain.NetworkError(err, "rate limiter")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, domain.NetworkError(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("backend", endpoint, 0, time.Since(start))
		return nil, domain.NetworkError(err, method+" "+endpoint)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("backend", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, domain.NewStatusError(resp.StatusCode, strings.TrimSpace(string(b)))
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, domain.NetworkError(err, "read body")
	}
	return b, nil
}

func decode(body []byte, out any, op string) error {
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), jsonNull) {
		return domain.Unparseable(nil, op)
	}
	if err := json.Unmarshal(body, out); err != nil {
		if errors.Is(err, domain.ErrEmptyOrUnparseable) {
			return err
		}
		return domain.Unparseable(err, op)
	}
	return nil
}

func (c *Client) buildURL(path []string, q url.Values) string {
	u := c.base.JoinPath(path...)
	if len(path) == 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func searchParams(f domain.SearchFilters) url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}
	set("q", f.Q)
	set("checkIn", f.CheckIn)
	set("checkOut", f.CheckOut)
	set("minPrice", f.MinPrice)
	set("maxPrice", f.MaxPrice)
	set("amenities", strings.Join(f.Amenities, ","))
	return q
}

func fallback(endpoint string, err error) {
	observability.ObserveFallback(endpoint)
	log.Debug().Err(err).Str("endpoint", endpoint).Msg("backend unavailable, serving mock data")
}
