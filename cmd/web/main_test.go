package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"hotel_finder/internal/adapters/memstore"
	redisad "hotel_finder/internal/adapters/redis"
	"hotel_finder/internal/shared"
)

func TestSessionStore_Memory(t *testing.T) {
	store, closeStore := sessionStore(context.Background(), shared.Config{SessionStore: "memory"})
	require.IsType(t, &memstore.Store{}, store)
	require.NoError(t, closeStore())
}

func TestSessionStore_RedisIsClosedOnShutdown(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, closeStore := sessionStore(ctx, shared.Config{SessionStore: "redis", RedisAddr: mr.Addr()})
	cache, ok := store.(*redisad.Cache)
	require.True(t, ok)
	require.NoError(t, cache.Ping(ctx))

	require.NoError(t, closeStore())
	require.Error(t, cache.Ping(ctx))
}
