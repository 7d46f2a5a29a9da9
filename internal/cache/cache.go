// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// DefaultCleanupInterval is how often expired entries are swept.
const DefaultCleanupInterval = 5 * time.Minute

// Entry represents a cached item with expiration
type Entry[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a thread-safe in-memory cache with TTL support.
//
// The background sweep runs until Close is called.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	stats   Stats
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache whose entries live for ttl and starts the cleanup sweep.
//
//	c := cache.New[places.Coordinates](10 * time.Minute)
//	defer c.Close()
//	c.Set(cache.GenerateKey("address", addr), coords)
func New[V any](ttl time.Duration) *Cache[V] {
	return newCache[V](ttl, DefaultCleanupInterval, time.Now)
}

func newCache[V any](ttl, cleanupInterval time.Duration, now func() time.Time) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		now:     now,
		stop:    make(chan struct{}),
		stats: Stats{
			LastCleanup: now(),
		},
	}

	go c.cleanupLoop(cleanupInterval)

	return c
}

// Get retrieves a value, treating expired entries as misses and removing them.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.record(func(s *Stats) { s.Misses++ })
		return zero, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.record(func(s *Stats) {
			s.Misses++
			s.Evictions++
		})
		return zero, false
	}

	c.record(func(s *Stats) { s.Hits++ })
	return entry.Data, true
}

// Set stores a value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{
		Data:      value,
		ExpiresAt: c.now().Add(ttl),
	}
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes a specific cache entry by key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.stats.Evictions++
		c.stats.TotalKeys = int64(len(c.entries))
	}
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]Entry[V])
	c.stats.TotalKeys = 0
}

// GetStats returns a snapshot of current cache statistics.
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background sweep. It is safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) record(update func(*Stats)) {
	c.mu.Lock()
	update(&c.stats)
	c.mu.Unlock()
}

// cleanupLoop periodically removes expired entries
func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[V]) cleanup() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
}

// GenerateKey creates a cache key from the method name and parameters
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
