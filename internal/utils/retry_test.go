package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0

	result, errs := Retry(context.Background(), RetryPolicy{Count: 3, Delay: time.Millisecond},
		func(_ context.Context) (string, error) {
			attempts++
			return "ok", nil
		})

	assert.Empty(t, errs)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	attempts := 0

	result, errs := Retry(context.Background(), RetryPolicy{Count: 3, Delay: time.Millisecond},
		func(_ context.Context) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("transient")
			}

			return 42, nil
		})

	assert.Empty(t, errs)
	assert.Equal(t, 42, result)
	// No further attempts after the first success.
	assert.Equal(t, 3, attempts)
}

func TestRetryStopsOnFirstSuccess(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, errs := Retry(context.Background(), RetryPolicy{Count: 5, Delay: time.Millisecond},
		func(_ context.Context) (string, error) {
			attempts++
			if attempts == 2 {
				return "done", nil
			}

			return "", errors.New("boom")
		})

	assert.Empty(t, errs)
	assert.Equal(t, 2, attempts)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, errs := Retry(context.Background(), RetryPolicy{Count: 3, Delay: time.Millisecond},
		func(_ context.Context) (struct{}, error) {
			attempts++
			return struct{}{}, errors.New("always fails")
		})

	assert.Equal(t, 3, attempts)
	require.Len(t, errs, 3)

	for _, err := range errs {
		assert.ErrorContains(t, err, "always fails")
	}
}

func TestRetryCollectsErrorsInOrder(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, errs := Retry(context.Background(), RetryPolicy{Count: 3, Delay: 0},
		func(_ context.Context) (struct{}, error) {
			attempts++
			return struct{}{}, errors.New("attempt " + string(rune('0'+attempts)))
		})

	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], "attempt 1")
	assert.EqualError(t, errs[1], "attempt 2")
	assert.EqualError(t, errs[2], "attempt 3")
}

func TestRetryRecoversFromPanic(t *testing.T) {
	t.Parallel()

	attempts := 0

	result, errs := Retry(context.Background(), RetryPolicy{Count: 2, Delay: 0},
		func(_ context.Context) (string, error) {
			attempts++
			if attempts == 1 {
				panic("synchronous throw")
			}

			return "recovered", nil
		})

	assert.Empty(t, errs)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 2, attempts)
}

func TestRetryPanicCountsAsFailedAttempt(t *testing.T) {
	t.Parallel()

	_, errs := Retry(context.Background(), RetryPolicy{Count: 2, Delay: 0},
		func(_ context.Context) (struct{}, error) {
			panic("boom")
		})

	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "operation panicked")
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0

	_, errs := Retry(ctx, RetryPolicy{Count: 5, Delay: time.Minute},
		func(_ context.Context) (struct{}, error) {
			attempts++

			cancel()

			return struct{}{}, errors.New("fail then cancel")
		})

	// One real attempt, then the context error cuts the delay short.
	assert.Equal(t, 1, attempts)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[1], context.Canceled)
}

func TestRetryZeroCountTreatedAsOne(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, errs := Retry(context.Background(), RetryPolicy{},
		func(_ context.Context) (struct{}, error) {
			attempts++
			return struct{}{}, errors.New("once")
		})

	assert.Equal(t, 1, attempts)
	assert.Len(t, errs, 1)
}

func TestJoinRetryErrors(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")

	joined := JoinRetryErrors([]error{first, second})
	require.Error(t, joined)
	assert.ErrorIs(t, joined, first)
	assert.ErrorIs(t, joined, second)

	assert.NoError(t, JoinRetryErrors(nil))
}
