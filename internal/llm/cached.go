package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mzurbriggen/alpinequery/internal/cache"
	"github.com/mzurbriggen/alpinequery/internal/model"
)

// DefaultParseTTL is how long a cached parse result stays valid
const DefaultParseTTL = 24 * time.Hour

// Cached wraps a Provider with response caching so repeated queries (batch
// evaluation runs, interactive retries) do not spend provider budget.
type Cached struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
}

// NewCached creates a caching wrapper around a provider
func NewCached(inner Provider, c cache.Cache, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultParseTTL
	}
	return &Cached{inner: inner, cache: c, ttl: ttl}
}

// Name returns the wrapped provider's name
func (c *Cached) Name() string {
	return c.inner.Name()
}

// IsAvailable delegates to the wrapped provider
func (c *Cached) IsAvailable(ctx context.Context) bool {
	return c.inner.IsAvailable(ctx)
}

// Parse serves a cached result when one exists, otherwise delegates and
// caches the successful response. Errors are never cached.
func (c *Cached) Parse(ctx context.Context, query string) (*model.ActivityFilters, error) {
	key := cache.Key("llm:" + c.inner.Name() + ":" + query)
	if data, found := c.cache.Get(key); found {
		var filters model.ActivityFilters
		if json.Unmarshal(data, &filters) == nil {
			return &filters, nil
		}
	}

	filters, err := c.inner.Parse(ctx, query)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(filters); err == nil {
		_ = c.cache.Set(key, data, c.ttl)
	}
	return filters, nil
}
