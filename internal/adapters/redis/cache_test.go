package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	redisad "hotel_finder/internal/adapters/redis"
	"hotel_finder/internal/domain"
)

type payload struct {
	Theme string   `json:"theme"`
	IDs   []string `json:"ids"`
}

func TestCache_RoundTripAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	var got payload
	ok, err := c.Get(ctx, "session:abc", &got)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "session:abc", payload{Theme: "dark", IDs: []string{"htl_001"}}, 60))
	ok, err = c.Get(ctx, "session:abc", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, payload{Theme: "dark", IDs: []string{"htl_001"}}, got)
	require.Equal(t, 60*time.Second, mr.TTL("session:abc"))

	mr.FastForward(61 * time.Second)
	ok, err = c.Get(ctx, "session:abc", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCache_Del(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Theme: "light"}, 60))
	require.NoError(t, c.Del(ctx, "k"))
	require.False(t, mr.Exists("k"))
}

func TestCache_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	c := redisad.New(mr.Addr(), "", 0)
	mr.Close()

	var got payload
	_, err = c.Get(context.Background(), "k", &got)
	require.Error(t, err)
}

func TestCache_UndecodableValueIsMarked(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, mr.Set("session:abc", "{broken"))

	var got payload
	ok, err := c.Get(context.Background(), "session:abc", &got)
	require.False(t, ok)
	require.True(t, errors.Is(err, domain.ErrEmptyOrUnparseable))
}
