//go:build integration || !unit

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"hotel_finder/internal/adapters/hotelapi"
	redisad "hotel_finder/internal/adapters/redis"
	"hotel_finder/internal/app"
	"hotel_finder/internal/domain"
)

func startRedis(t *testing.T) *redisad.Cache {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	cache := redisad.New(fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp")), "", 0)
	t.Cleanup(func() { _ = cache.Close() })
	if err := pool.Retry(func() error { return cache.Ping(context.Background()) }); err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	return cache
}

// Full flow against real redis with an unreachable backend: every call falls back.
func TestSessionFlow_RealRedis_MockBackend(t *testing.T) {
	cache := startRedis(t)

	api, err := hotelapi.New("http://127.0.0.1:1", 100, time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	a := app.New(api, cache, time.Minute)
	ctx := context.Background()
	const sid = "0b7f3a52-8d1e-4c55-9a51-5e3b1f0f2a10"

	st, err := a.Mount(ctx, sid)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if st.APIStatus.State != domain.APIDown {
		t.Fatalf("expected down status, got %+v", st.APIStatus)
	}

	if _, err := a.Search(ctx, sid, domain.SearchFilters{Amenities: []string{"Pool"}}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, err := a.SelectHotel(ctx, sid, "htl_001"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := a.OpenBooking(ctx, sid); err != nil {
		t.Fatalf("open booking: %v", err)
	}
	if _, err := a.SubmitBooking(ctx, sid, app.BookingForm{FullName: "Jane Doe", Email: "jane@example.com",
		Guests: 2, CheckIn: "2024-01-01", CheckOut: "2024-01-03"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// read back what redis holds
	st, err = a.State(ctx, sid)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(st.Results) != 2 || st.Source != domain.SourceMock {
		t.Fatalf("unexpected results: %+v", st.Results)
	}
	if st.Selected == nil || st.Selected.ID != "htl_001" {
		t.Fatalf("unexpected selection: %+v", st.Selected)
	}
	c := st.Booking.Confirmation
	if st.Booking.Status != app.BookingSuccess || c == nil || c.Status != domain.BookingConfirmed || c.Source != domain.SourceMock {
		t.Fatalf("unexpected booking: %+v", st.Booking)
	}
}
