package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastRetry(3), func() (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestRetry_SucceedsAfterRetry(t *testing.T) {
	calls := 0
	var retried []int
	cfg := fastRetry(3)
	cfg.OnRetry = func(attempt int, _ error, _ time.Duration) { retried = append(retried, attempt) }

	got, err := Retry(context.Background(), cfg, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("connection refused")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Len(t, retried, 2)
}

func TestRetry_ReturnsLastResultWithError(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastRetry(2), func() (int, error) {
		calls++
		return calls, errors.New("still failing")
	})
	require.Error(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, calls)
}

func TestRetry_RetryIfStopsEarly(t *testing.T) {
	permanent := errors.New("bad request")
	cfg := fastRetry(5)
	cfg.RetryIf = func(err error) bool { return !errors.Is(err, permanent) }

	calls := 0
	_, err := Retry(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, permanent
	})
	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := Retry(ctx, fastRetry(3), func() (int, error) {
		calls++
		return 0, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestCalculateBackoff_Capped(t *testing.T) {
	cfg := RetryConfig{InitialBackoff: time.Second, MaxBackoff: 3 * time.Second, BackoffFactor: 2}
	assert.Equal(t, time.Second, calculateBackoff(1, cfg))
	assert.Equal(t, 2*time.Second, calculateBackoff(2, cfg))
	assert.Equal(t, 3*time.Second, calculateBackoff(5, cfg), "capped at MaxBackoff")
}
