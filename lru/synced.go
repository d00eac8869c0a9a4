package lru

import "sync"

// Synced wraps a [Cache] with a mutex so it can be shared between goroutines.
// Every call holds the lock for its whole duration, including Get, which
// reorders entries.
//
// The [WithOnEvict] callback runs after the lock is released, so it may call
// back into the same Synced cache. Callbacks from different goroutines can run
// concurrently.
type Synced[K comparable, V any] struct {
	mu      sync.Mutex
	cache   *Cache[K, V]
	onEvict OnEvict[K, V]
	evicted []listValue[K, V]
}

// NewSynced returns a mutex-guarded cache. It panics if capacity is not positive.
func NewSynced[K comparable, V any](capacity int, options ...Option[K, V]) *Synced[K, V] {
	s := &Synced[K, V]{cache: New(capacity, options...)}

	// Queue evictions under the lock and hand them to the caller's callback in Put.
	if s.cache.onEvict != nil {
		s.onEvict = s.cache.onEvict
		s.cache.onEvict = func(key K, value V) {
			s.evicted = append(s.evicted, listValue[K, V]{key: key, val: value})
		}
	}

	return s
}

func (s *Synced[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Get(key)
}

func (s *Synced[K, V]) Peek(key K) (V, bool) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Peek(key)
}

func (s *Synced[K, V]) Put(key K, value V) {
	s.mu.Lock()
	s.cache.Put(key, value)
	evicted := s.evicted
	s.evicted = nil
	s.mu.Unlock()

	for _, v := range evicted {
		s.onEvict(v.key, v.val)
	}
}

func (s *Synced[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Remove(key)
}

func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Len()
}

func (s *Synced[K, V]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Synced[K, V]) Cap() int {
	return s.cache.Cap()
}

func (s *Synced[K, V]) EvictionCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.EvictionCount()
}

// Keys returns a snapshot of the keys from most to least recently used.
func (s *Synced[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Keys()
}
