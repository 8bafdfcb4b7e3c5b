package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for response caching (activity feeds and
// LLM parse results)
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a versioned cache key from an arbitrary identifier
// (a catalog request URL, an LLM prompt, a query string).
func Key(id string) string {
	hash := sha256.Sum256([]byte(id))
	return "alpinequery:v1:" + hex.EncodeToString(hash[:])
}
