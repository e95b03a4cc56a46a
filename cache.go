package main

import (
	"sync"
	"time"
)

// ttlEntry pairs a cached value with the time it was stored.
type ttlEntry struct {
	value    any
	storedAt time.Time
}

// ttlCache is a small in-process cache where expiry marks staleness rather
// than eviction: Get honors the TTL, GetStale returns entries of any age so
// callers can fall back to old data when a refresh fails. The clock is
// injected so tests can move time without sleeping.
type ttlCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]ttlEntry
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]ttlEntry),
	}
}

// Get returns the value for key if it is present and still fresh.
func (c *ttlCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.value, true
}

// GetStale returns the value for key regardless of age.
func (c *ttlCache) GetStale(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key, timestamped with the injected clock.
func (c *ttlCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = ttlEntry{value: value, storedAt: c.now()}
}
