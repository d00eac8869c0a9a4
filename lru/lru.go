package lru

import (
	"github.com/rs/zerolog"

	"go.expect.digital/recency/internal/list"
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

type listValue[K comparable, V any] struct {
	key K
	val V
}

// Cache is a fixed-capacity least recently used cache.
//
// Cache is not safe for concurrent use. Use [Synced] or guard every call
// with a lock.
type Cache[K comparable, V any] struct {
	n         int
	evictions uint64
	onEvict   OnEvict[K, V]
	log       zerolog.Logger
	cache     *list.List[listValue[K, V]]
	lookup    map[K]int
}

// New returns an empty cache holding at most capacity entries.
// It panics if capacity is not positive.
func New[K comparable, V any](capacity int, options ...Option[K, V]) *Cache[K, V] {
	if capacity <= 0 {
		panic("lru: capacity must be positive")
	}

	c := &Cache[K, V]{
		n:      capacity,
		log:    zerolog.Nop(),
		cache:  list.New[listValue[K, V]](capacity),
		lookup: make(map[K]int, capacity),
	}

	for _, f := range options {
		f(c)
	}

	return c
}

// Cap returns the max number of entries the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.n
}

// Len returns the number of entries stored in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.lookup)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.lookup) == 0
}

// EvictionCount returns the number of capacity evictions since construction.
func (c *Cache[K, V]) EvictionCount() uint64 {
	return c.evictions
}

// Get returns the value associated with the key and marks the entry as most
// recently used. On a miss it returns the zero value and false.
func (c *Cache[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	i, ok := c.lookup[key]
	if !ok {
		return zeroValue[V](), false
	}

	c.cache.MoveToFront(i)

	return c.cache.Value(i).val, true
}

// Peek returns the value associated with the key without touching recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) { //nolint:ireturn
	i, ok := c.lookup[key]
	if !ok {
		return zeroValue[V](), false
	}

	return c.cache.Value(i).val, true
}

// Contains reports whether the key is in the cache without touching recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.lookup[key]

	return ok
}

// Put stores the value under key and marks it as most recently used.
// When a new key arrives at a full cache, the least recently used entry is
// evicted first.
func (c *Cache[K, V]) Put(key K, value V) {
	// If the key already exists, update the value in place and move it to the front.
	if i, ok := c.lookup[key]; ok {
		c.cache.Value(i).val = value
		c.cache.MoveToFront(i)

		return
	}

	var (
		evicted listValue[K, V]
		full    = len(c.lookup) >= c.n
	)

	if full {
		evicted = c.evict()
	}

	c.lookup[key] = c.cache.PushFront(listValue[K, V]{key: key, val: value})

	// The callback runs once the cache is back within capacity, so it may
	// write to the cache itself.
	if full && c.onEvict != nil {
		c.onEvict(evicted.key, evicted.val)
	}
}

// Remove deletes the key from the cache. It reports whether the key was
// present. Removal is not counted as an eviction.
func (c *Cache[K, V]) Remove(key K) bool {
	i, ok := c.lookup[key]
	if !ok {
		return false
	}

	c.cache.Remove(i)
	delete(c.lookup, key)

	return true
}

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.lookup))

	for i, ok := c.cache.Front(); ok; i, ok = c.cache.Next(i) {
		keys = append(keys, c.cache.Value(i).key)
	}

	return keys
}

// evict removes the least recently used entry and returns it.
func (c *Cache[K, V]) evict() listValue[K, V] {
	i, _ := c.cache.Back()

	v := c.cache.Remove(i)
	delete(c.lookup, v.key)
	c.evictions++

	c.log.Debug().
		Interface("key", v.key).
		Uint64("evictions", c.evictions).
		Msg("evicted least recently used entry")

	return v
}

type Option[K comparable, V any] func(*Cache[K, V])

type OnEvict[K comparable, V any] func(key K, value V)

// WithOnEvict sets a function to be called after evicting an entry because
// the cache was full. It is called when the new entry is already stored, and
// it may use the cache. Explicit [Cache.Remove] does not call it.
//
// A callback that inserts a new key on every eviction never returns.
func WithOnEvict[K comparable, V any](onEvict OnEvict[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = onEvict
	}
}

// WithLogger sets the logger used to report evictions at debug level.
func WithLogger[K comparable, V any](log zerolog.Logger) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.log = log
	}
}
