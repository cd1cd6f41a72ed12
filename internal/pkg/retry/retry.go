package retry

import (
	"context"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy describes how an operation is repeated
type Policy struct {
	// Attempts is the total number of calls, including the first one
	Attempts int

	// Backoff is the wait before the second attempt
	Backoff time.Duration

	// Multiplier grows the wait after every failed attempt; values <= 1 keep it constant
	Multiplier float64

	// Retryable decides whether an error is worth another attempt. Nil retries every error.
	Retryable func(error) bool

	// OnRetry is called before each wait
	OnRetry func(attempt int, err error, wait time.Duration)
}

func (p Policy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.Backoff
	b.RandomizationFactor = 0
	b.Multiplier = 1
	if p.Multiplier > 1 {
		b.Multiplier = p.Multiplier
	}
	// Never capped within the attempt budget
	b.MaxInterval = time.Duration(float64(p.Backoff) * math.Pow(b.Multiplier, float64(p.Attempts)))
	b.Reset()
	return b
}

// Do calls fn until it succeeds, the policy is exhausted, the error is not
// retryable or ctx is done. The last error from fn is returned as is.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		attempt int
		lastErr error
	)
	operation := func() (struct{}, error) {
		attempt++
		lastErr = fn(ctx)
		if lastErr != nil && p.Retryable != nil && !p.Retryable(lastErr) {
			return struct{}{}, backoff.Permanent(lastErr)
		}
		return struct{}{}, lastErr
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(p.backOff()),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithMaxElapsedTime(0),
	}
	if p.OnRetry != nil {
		opts = append(opts, backoff.WithNotify(func(err error, wait time.Duration) {
			p.OnRetry(attempt, err, wait)
		}))
	}

	if _, err := backoff.Retry(ctx, operation, opts...); err != nil {
		// Retry unwraps permanent errors and reports ctx.Err on cancellation;
		// callers match on the error fn returned.
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}
