// Package resilience wraps flaky external calls, package-registry
// installs mostly, with bounded exponential retry.
package resilience

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy defines retry behavior for one operation.
type Policy struct {
	// MaxRetries is the number of retry attempts after the initial call.
	MaxRetries int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// UseJitter adds randomness to delays so parallel runs do not hit
	// the registry in lockstep.
	UseJitter bool
}

// InstallPolicy is tuned for package-registry transients: short
// outages and rate limiting resolve within seconds, anything longer
// is better surfaced to the user.
func InstallPolicy() Policy {
	return Policy{
		MaxRetries: 2,
		BaseDelay:  2 * time.Second,
		MaxDelay:   15 * time.Second,
		UseJitter:  true,
	}
}

// permanentError marks failures retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Retry gives up immediately instead of
// burning attempts on a failure that cannot succeed.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Retry runs fn until it succeeds, the policy is exhausted, the error
// is permanent, or the context ends. Returns the last error.
func Retry(ctx context.Context, policy Policy, fn func() error) error {
	var lastErr error
	maxAttempts := policy.MaxRetries + 1

	for attempt := range maxAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}

		if attempt < maxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(Backoff(attempt, policy)):
			}
		}
	}
	return lastErr
}

// Backoff returns the delay before the retry following the given
// attempt: BaseDelay doubled per attempt, capped at MaxDelay, with
// optional jitter between 0.5x and 1.5x.
func Backoff(attempt int, policy Policy) time.Duration {
	base := policy.BaseDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	maxDelay := policy.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}

	delay := base
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if policy.UseJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// retryable reports whether another attempt could help.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var perm *permanentError
	return !errors.As(err, &perm)
}
