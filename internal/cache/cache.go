package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache memoizes extraction results for the lifetime of the process
type Cache interface {
	Get(key string) ([]string, bool)
	Set(key string, tokens []string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a text
func CacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "headcount:v1:" + hex.EncodeToString(hash[:])
}
