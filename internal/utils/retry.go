package utils

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryPolicy describes a bounded retry with a fixed pause between attempts.
type RetryPolicy struct {
	// Count is the total number of attempts, including the first one.
	Count int64
	// Delay is the fixed pause between consecutive attempts.
	Delay time.Duration
}

// Retry invokes op up to policy.Count times, waiting policy.Delay between
// attempts. The first successful result is returned immediately and earlier
// failures are discarded. If every attempt fails, the ordered list of all
// encountered errors is returned. A panicking op counts as a failed attempt.
// Cancelling the context stops further attempts; the context error is
// recorded as the final entry.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(context.Context) (T, error)) (T, []error) {
	var (
		zero T
		errs []error
	)

	if policy.Count <= 0 {
		policy.Count = 1
	}

	for attempt := int64(1); attempt <= policy.Count; attempt++ {
		result, err := runAttempt(ctx, op)
		if err == nil {
			return result, nil
		}

		errs = append(errs, err)

		if attempt == policy.Count {
			break
		}

		if sleepErr := sleepWithContext(ctx, policy.Delay); sleepErr != nil {
			errs = append(errs, sleepErr)
			break
		}
	}

	return zero, errs
}

// runAttempt executes one attempt of op, converting a panic into an error.
func runAttempt[T any](ctx context.Context, op func(context.Context) (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()

	return op(ctx)
}

// sleepWithContext pauses for the given duration or until the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// JoinRetryErrors collapses the error list returned by Retry into a single
// error suitable for wrapping with %w.
func JoinRetryErrors(errs []error) error {
	return errors.Join(errs...)
}
