package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching with expiry
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves tokens from the cache. The returned slice is a copy.
func (c *MemoryCache) Get(key string) ([]string, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	tokens, ok := val.([]string)
	if !ok {
		return nil, false
	}
	return cloneTokens(tokens), true
}

// Set stores tokens with the given TTL; zero uses the cache default
func (c *MemoryCache) Set(key string, tokens []string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, cloneTokens(tokens), ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// Len returns the number of cached entries, expired ones included
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}

// cloneTokens keeps nil as nil so "no matches" survives a round trip
func cloneTokens(tokens []string) []string {
	if tokens == nil {
		return nil
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
