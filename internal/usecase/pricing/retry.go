package pricing

import (
	"context"
	"math/rand/v2"
	"time"

	"lifepass-admin/internal/pkg/errs"
)

// RetryPolicy retries transport failures of the pricing authority.
// Business rejections and any other error are returned on the first attempt.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// ExponentialBackoff doubles base per attempt up to maxWait and adds up to 20% jitter.
func ExponentialBackoff(base, maxWait time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		wait := time.Duration(1<<attempt) * base
		if maxWait > 0 && wait > maxWait {
			wait = maxWait
		}
		if j := int64(wait / 5); j > 0 {
			wait += time.Duration(rand.Int64N(j))
		}
		return wait
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, or attempts run out.
// Waiting between attempts stops early when ctx is done.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.MaxAttempts, 1)
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = fn()
		if err == nil || !errs.Is(err, errs.ErrPricingUnavailable) {
			return err
		}
		if attempt == attempts-1 {
			break
		}
		var wait time.Duration
		if p.Backoff != nil {
			wait = p.Backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return errs.Wrap(err, "retry abandoned")
		case <-time.After(wait):
		}
	}
	return errs.Wrapf(err, "gave up after %d attempts", attempts)
}
