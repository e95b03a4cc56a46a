package main

import (
	"context"
	"time"
)

// retryPolicy retries an operation when retryable reports the error as
// transient. The delay doubles after every failed attempt, starting at
// baseDelay. sleep is injectable so tests can count and skip the waits.
type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
	retryable   func(error) bool
	sleep       func(ctx context.Context, d time.Duration) error
}

func newRetryPolicy(maxAttempts int, baseDelay time.Duration, retryable func(error) bool) *retryPolicy {
	return &retryPolicy{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		retryable:   retryable,
		sleep:       sleepCtx,
	}
}

// do runs fn until it succeeds, a non-retryable error occurs, attempts run
// out, or ctx is done. It never sleeps after the final attempt.
func (p *retryPolicy) do(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !p.retryable(err) || attempt == p.maxAttempts-1 {
			return err
		}
		delay := p.baseDelay << uint(attempt)
		if sleepErr := p.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
