// Package retry provides a bounded-retry decorator for external calls.
package retry

import (
	"context"
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// Policy bounds the retry loop. Delay before retry n is
// InitialDelay * 2^(n-1), capped at MaxDelay.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultPolicy matches the visual-quote pipeline budget.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond, MaxDelay: 10 * time.Second}
}

// Delay returns the backoff before retry attempt n (1-indexed).
func (p Policy) Delay(attempt int) time.Duration {
	d := time.Duration(float64(p.InitialDelay) * math.Pow(2, float64(attempt-1)))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Do invokes fn up to p.MaxAttempts times, sleeping the policy delay between
// attempts. The first nil result wins. After the last failure the last error
// is returned, wrapped with the attempt count, so the caller's terminal
// failure handling runs exactly once.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(p.Delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return errors.Wrapf(lastErr, "failed after %d attempts", attempts)
}
