package main

import (
	"testing"
	"time"
)

func TestTTLCache_FreshnessTracksInjectedClock(t *testing.T) {
	cache := newTTLCache(10 * time.Minute)
	clock := time.Unix(1_700_000_000, 0)
	cache.now = func() time.Time { return clock }

	cache.Set("key", "value")

	if v, ok := cache.Get("key"); !ok || v != "value" {
		t.Fatalf("Expected fresh hit, got %v, %v", v, ok)
	}

	clock = clock.Add(9 * time.Minute)
	if _, ok := cache.Get("key"); !ok {
		t.Error("Entry should still be fresh at 9 minutes")
	}

	clock = clock.Add(2 * time.Minute)
	if _, ok := cache.Get("key"); ok {
		t.Error("Entry should be stale past the TTL")
	}
	if v, ok := cache.GetStale("key"); !ok || v != "value" {
		t.Error("GetStale should return expired entries")
	}
}

func TestTTLCache_MissingKey(t *testing.T) {
	cache := newTTLCache(time.Minute)
	if _, ok := cache.Get("absent"); ok {
		t.Error("Get on a missing key should miss")
	}
	if _, ok := cache.GetStale("absent"); ok {
		t.Error("GetStale on a missing key should miss")
	}
}

func TestTTLCache_SetRefreshesTimestamp(t *testing.T) {
	cache := newTTLCache(time.Minute)
	clock := time.Unix(1_700_000_000, 0)
	cache.now = func() time.Time { return clock }

	cache.Set("key", 1)
	clock = clock.Add(50 * time.Second)
	cache.Set("key", 2)
	clock = clock.Add(30 * time.Second)

	v, ok := cache.Get("key")
	if !ok {
		t.Fatal("Rewritten entry should be fresh 30s after the second Set")
	}
	if v != 2 {
		t.Errorf("Expected latest value 2, got %v", v)
	}
}
