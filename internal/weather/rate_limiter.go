package weather

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with a client-side token bucket.
// A call that cannot get a token within maxWait fails with KindRateLimit
// and never reaches the provider.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	maxWait  time.Duration
	name     string
}

var _ Provider = (*RateLimitedProvider)(nil)

// NewRateLimitedProvider allows rps requests per second with the given burst.
// rps can be fractional for less than one request per second.
func NewRateLimitedProvider(provider Provider, rps float64, burst int, maxWait time.Duration) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		maxWait:  maxWait,
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

func (r *RateLimitedProvider) Name() string { return r.name }

// Current waits for a token, bounded by maxWait, then forwards to the provider.
func (r *RateLimitedProvider) Current(ctx context.Context, q Query) (*Observation, error) {
	waitCtx := ctx
	if r.maxWait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, r.maxWait)
		defer cancel()
	}
	if err := r.limiter.Wait(waitCtx); err != nil {
		return nil, rateLimitError(0, fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return r.provider.Current(ctx, q)
}
