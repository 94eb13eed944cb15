// Package memory implements db.Store in process memory. Used for local
// development and tests; session state then survives only as long as the
// process, which is acceptable for an advisory UX cache.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/palsson-archive/leit/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

type entry struct {
	data    []byte
	expires time.Time // zero = no expiry
}

// Store is an in-memory key-value store with lazy expiry.
type Store struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

// NewStore creates an empty memory store.
func NewStore() *Store {
	return &Store{items: make(map[string]entry), now: time.Now}
}

// WithClock overrides the time source. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately; the store is always ready.
func (s *Store) WaitForReady(_ context.Context, _ time.Duration) error { return nil }

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, db.ErrKeyNotFound
	}
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil, db.ErrKeyNotFound
	}

	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out, nil
}

// Set stores a value without expiry.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.put(key, value, time.Time{})
	return nil
}

// SetWithTTL stores a value that expires after ttl.
func (s *Store) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.put(key, value, s.now().Add(ttl))
	return nil
}

// Del removes a key.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) put(key string, value []byte, expires time.Time) {
	data := make([]byte, len(value))
	copy(data, value)

	s.mu.Lock()
	s.items[key] = entry{data: data, expires: expires}
	s.mu.Unlock()
}
