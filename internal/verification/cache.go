package verification

import (
	"sync"
	"time"
)

type cacheEntry struct {
	business  *Business
	expiresAt time.Time
}

// Cache is an in-memory store for registry lookups. Entries expire after the
// configured TTL (90 days by default, matching the POPIA retention window).
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached record for a registration number, or nil if absent
// or expired. Expired entries are evicted on read.
func (c *Cache) Get(regNumber string) *Business {
	c.mu.RLock()
	entry, ok := c.entries[regNumber]
	c.mu.RUnlock()
	if !ok {
		return nil
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, regNumber)
		c.mu.Unlock()
		return nil
	}
	return entry.business
}

func (c *Cache) Set(regNumber string, business *Business) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[regNumber] = cacheEntry{
		business:  business,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
