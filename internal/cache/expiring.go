// Package cache provides a bounded, time-expiring key/value cache safe for
// concurrent use.
package cache

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

// DefaultCapacity bounds the number of entries kept when no capacity is given.
const DefaultCapacity = 10000

type entry[V any] struct {
	value   V
	expires time.Time
}

// Expiring is an LRU cache whose entries expire a fixed duration after they
// were last written. Expired entries are never returned and are dropped on
// access; the capacity bound evicts least recently used entries.
type Expiring[K comparable, V any] struct {
	lru *lru.Cache
	now func() time.Time
	ttl time.Duration
	mu  sync.Mutex
}

// Option configures an Expiring cache.
type Option func(*options)

type options struct {
	now      func() time.Time
	capacity int
}

// WithClock sets the time source. Tests use it to move time forward.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithCapacity sets the maximum number of entries.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New creates a cache whose entries live for ttl.
func New[K comparable, V any](ttl time.Duration, opts ...Option) *Expiring[K, V] {
	o := options{
		now:      time.Now,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}

	return &Expiring[K, V]{
		lru: lru.New(o.capacity),
		now: o.now,
		ttl: ttl,
	}
}

// TTL returns the lifetime of an entry.
func (c *Expiring[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value for key if present and not expired.
func (c *Expiring[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.get(key, c.now())
}

// Set stores value for key, resetting its expiry.
func (c *Expiring[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value, c.now())
}

// Compute atomically reads the current value for key and lets fn decide the
// new one. fn receives the live value (found is false when absent or
// expired); when fn returns store=true the result is written with a fresh
// expiry. Compute reports whether a value was stored.
func (c *Expiring[K, V]) Compute(key K, fn func(current V, found bool) (next V, store bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	current, found := c.get(key, now)
	next, store := fn(current, found)
	if store {
		c.set(key, next, now)
	}
	return store
}

// Delete removes key.
func (c *Expiring[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(key)
}

// Len returns the number of stored entries, including ones that expired but
// were not accessed since.
func (c *Expiring[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

func (c *Expiring[K, V]) get(key K, now time.Time) (V, bool) {
	var zero V

	raw, ok := c.lru.Get(key)
	if !ok {
		return zero, false
	}
	e := raw.(entry[V])
	if !now.Before(e.expires) {
		c.lru.Remove(key)
		return zero, false
	}
	return e.value, true
}

func (c *Expiring[K, V]) set(key K, value V, now time.Time) {
	c.lru.Add(key, entry[V]{value: value, expires: now.Add(c.ttl)})
}
