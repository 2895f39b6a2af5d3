// Package memstore keeps JSON values in process memory. It backs sessions when
// SESSION_STORE=memory, which is handy for demos without redis.
package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"hotel_finder/internal/adapters/observability"
	"hotel_finder/internal/domain"
)

type entry struct {
	val     []byte
	expires time.Time // zero: never
}

type Store struct {
	mu  sync.Mutex
	m   map[string]entry
	now func() time.Time
}

func New() *Store {
	return &Store{m: map[string]entry{}, now: time.Now}
}

func (s *Store) Get(_ context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	e, ok := s.m[key]
	if ok && !e.expires.IsZero() && !s.now().Before(e.expires) {
		delete(s.m, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	if err := json.Unmarshal(e.val, dst); err != nil {
		return false, domain.Unparseable(err, "memory get "+key)
	}
	return true, nil
}

func (s *Store) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	e := entry{val: b}
	if ttlSec > 0 {
		e.expires = s.now().Add(time.Duration(ttlSec) * time.Second)
	}
	s.mu.Lock()
	s.m[key] = e
	s.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
