package memorykv

import (
	"context"
	"sync"
	"time"

	"github.com/samber/mo"

	"sentrybot/clients"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiration
}

// MemoryKeyValueStore is an in-process implementation of the
// clients.KeyValueStore interface. Expired entries are dropped lazily on
// read - there is no background scavenging pass.
type MemoryKeyValueStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

var _ clients.KeyValueStore = (*MemoryKeyValueStore)(nil)

// NewMemoryKeyValueStore creates a store using the wall clock
func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return NewMemoryKeyValueStoreWithClock(time.Now)
}

// NewMemoryKeyValueStoreWithClock creates a store with an injected clock so
// tests can control expiration
func NewMemoryKeyValueStoreWithClock(now func() time.Time) *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (s *MemoryKeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		stored.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = stored
	return nil
}

func (s *MemoryKeyValueStore) Get(ctx context.Context, key string) (mo.Option[[]byte], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.entries[key]
	if !ok {
		return mo.None[[]byte](), nil
	}
	if !stored.expiresAt.IsZero() && !s.now().Before(stored.expiresAt) {
		delete(s.entries, key)
		return mo.None[[]byte](), nil
	}
	return mo.Some(append([]byte(nil), stored.value...)), nil
}

func (s *MemoryKeyValueStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
