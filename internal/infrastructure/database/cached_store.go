package database

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"eventify/internal/ports/output"
)

var _ output.Store = (*CachedStore)(nil)

type cachedValue struct {
	value string
	found bool
}

// CachedStore fronts another Store with a TTL read cache. Writes go through
// to the inner store and then refresh the cached entry, so a single process
// always reads its own writes; other writers become visible after ttl.
type CachedStore struct {
	inner output.Store
	cache *gocache.Cache

	// mu orders cache fills against writes. gen counts writes; a miss only
	// fills the cache when no write finished while it read the inner store.
	mu  sync.Mutex
	gen uint64
}

func NewCachedStore(inner output.Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := s.cache.Get(key); ok {
		if cv, ok := v.(cachedValue); ok {
			return cv.value, cv.found, nil
		}
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	value, found, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache.SetDefault(key, cachedValue{value: value, found: found})
	}
	s.mu.Unlock()
	return value, found, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	err := s.inner.Set(ctx, key, value)
	s.afterWrite(key, value, err)
	return err
}

func (s *CachedStore) Update(ctx context.Context, key string, fn output.UpdateFunc) error {
	var written string
	err := s.inner.Update(ctx, key, func(current string, found bool) (string, error) {
		next, err := fn(current, found)
		written = next
		return next, err
	})
	s.afterWrite(key, written, err)
	return err
}

// afterWrite caches the written value, or drops the entry when the write
// failed and the inner state is unknown.
func (s *CachedStore) afterWrite(key, value string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if err != nil {
		s.cache.Delete(key)
		return
	}
	s.cache.SetDefault(key, cachedValue{value: value, found: true})
}

func (s *CachedStore) Close() error {
	s.cache.Flush()
	return s.inner.Close()
}
