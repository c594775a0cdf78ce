package breakdown

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited shares one token bucket across all provider calls.
type RateLimited struct {
	next    Generator
	limiter *rate.Limiter
}

func NewRateLimited(next Generator, rps float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Generate waits for a token. A wait that would outlive ctx fails fast with ErrRateLimited.
func (r *RateLimited) Generate(ctx context.Context, req Request) ([]Draft, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return r.next.Generate(ctx, req)
}
