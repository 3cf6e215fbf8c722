// Package cache holds the caller-side cache of remote game snapshots.
// Only the remote fetches are cached; store reads stay fresh on every
// call, so registrations are never served stale.
package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/pentarch/dombot/internal/common/clock"
	"github.com/pentarch/dombot/internal/services/server"
)

// Config holds configuration for the snapshot cache
type Config struct {
	// TTL is how long an entry stays fresh
	TTL time.Duration

	// Clock supplies the current time
	Clock clock.Clock
}

// Cache is a TTL cache of remote snapshots keyed by server alias
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[string]*server.CacheEntry
}

// New creates a new snapshot cache
func New(cfg *Config) (*Cache, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &Cache{
		ttl:     cfg.TTL,
		clock:   cfg.Clock,
		entries: make(map[string]*server.CacheEntry),
	}, nil
}

// Get returns the cached entry for an alias while it is still fresh
func (c *Cache) Get(alias string) (*server.CacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[alias]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.clock.Now().Sub(entry.FetchedAt) > c.ttl {
		c.Invalidate(alias)
		return nil, false
	}

	return entry, true
}

// Put stores an entry for an alias
func (c *Cache) Put(alias string, entry *server.CacheEntry) {
	if entry == nil {
		return
	}

	c.mu.Lock()
	c.entries[alias] = entry
	c.mu.Unlock()
}

// Invalidate drops the entry for an alias
func (c *Cache) Invalidate(alias string) {
	c.mu.Lock()
	delete(c.entries, alias)
	c.mu.Unlock()
}
