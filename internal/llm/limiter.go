package llm

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/mzurbriggen/alpinequery/internal/model"
)

// RateLimited wraps a Provider with a token-bucket rate limit so batch
// evaluation runs stay inside the provider's request budget.
type RateLimited struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimited creates a rate-limited wrapper allowing requestsPerMinute
// sustained calls with the given burst.
func NewRateLimited(inner Provider, requestsPerMinute float64, burst int) *RateLimited {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(requestsPerMinute/60), burst),
	}
}

// Name returns the wrapped provider's name
func (r *RateLimited) Name() string {
	return r.inner.Name()
}

// IsAvailable delegates to the wrapped provider without consuming budget
func (r *RateLimited) IsAvailable(ctx context.Context) bool {
	return r.inner.IsAvailable(ctx)
}

// Parse waits for rate-limit clearance, then delegates
func (r *RateLimited) Parse(ctx context.Context, query string) (*model.ActivityFilters, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Parse(ctx, query)
}
