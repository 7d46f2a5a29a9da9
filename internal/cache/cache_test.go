// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package cache

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](ttl time.Duration) (*Cache[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := newCache[V](ttl, time.Hour, clock.Now)
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[string](time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[int](100 * time.Millisecond)
	defer c.Close()

	c.Set("key1", 42)
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	clock.Advance(150 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if stats := c.GetStats(); stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[string](time.Minute)
	defer c.Close()

	c.SetWithTTL("short", "x", time.Second)
	c.Set("long", "y")

	clock.Advance(2 * time.Second)

	if _, ok := c.Get("short"); ok {
		t.Error("short entry should have expired")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("long entry should still be cached")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[string](time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Delete("key1")
	if _, ok := c.Get("key1"); ok {
		t.Error("Expected key1 to be deleted")
	}

	c.Clear()
	for _, key := range []string{"key2", "key3"} {
		if _, ok := c.Get(key); ok {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
	if stats := c.GetStats(); stats.TotalKeys != 0 || stats.Evictions != 3 {
		t.Errorf("stats = %+v, want 0 keys and 3 evictions", stats)
	}
}

func TestCacheCleanup(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[string](time.Minute)
	defer c.Close()

	c.Set("a", "1")
	c.SetWithTTL("b", "2", time.Hour)
	clock.Advance(2 * time.Minute)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if !stats.LastCleanup.Equal(clock.Now()) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, clock.Now())
	}
}

func TestCacheHitRate(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[string](time.Minute)
	defer c.Close()

	if c.HitRate() != 0 {
		t.Errorf("empty cache hit rate = %v, want 0", c.HitRate())
	}

	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	if rate := c.HitRate(); rate != 75.0 {
		t.Errorf("HitRate() = %v, want 75", rate)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	t.Parallel()

	c := New[string](time.Minute)
	c.Close()
	c.Close()
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[int](time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := GenerateKey("coord", n%5)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if stats := c.GetStats(); stats.TotalKeys != 5 {
		t.Errorf("TotalKeys = %d, want 5", stats.TotalKeys)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	k1 := GenerateKey("coord2address", params{37.5665, 126.9780})
	k2 := GenerateKey("coord2address", params{37.5665, 126.9780})
	k3 := GenerateKey("coord2address", params{35.1796, 129.0756})

	if k1 != k2 {
		t.Error("identical params should produce identical keys")
	}
	if k1 == k3 {
		t.Error("different params should produce different keys")
	}
	if !strings.HasPrefix(k1, "coord2address:") {
		t.Errorf("key should be prefixed with method: %s", k1)
	}
}
