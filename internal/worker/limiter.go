package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter caps how many inputs per second a batch starts, so a large run
// over a shared volume does not saturate it. A nil Limiter never waits.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter returns a limiter for perSecond inputs with the given burst, or
// nil when perSecond is not positive
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until the next input may start or ctx is done
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}
