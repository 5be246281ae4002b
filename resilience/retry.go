package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
	// InitialBackoff is the delay before the second attempt.
	InitialBackoff time.Duration `yaml:"initial_backoff" mapstructure:"initial_backoff"`
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration `yaml:"max_backoff" mapstructure:"max_backoff"`
	// BackoffFactor is the multiplier for exponential backoff.
	BackoffFactor float64 `yaml:"backoff_factor" mapstructure:"backoff_factor"`
	// Jitter adds randomness to backoff (0.0 to 1.0).
	Jitter float64 `yaml:"jitter" mapstructure:"jitter"`
	// RetryIf determines if an error should be retried.
	RetryIf func(error) bool `yaml:"-" mapstructure:"-"`
	// OnRetry is called before each retry.
	OnRetry func(attempt int, err error, backoff time.Duration) `yaml:"-" mapstructure:"-"`
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.1,
		RetryIf:        DefaultRetryIf,
	}
}

// DefaultRetryIf retries all errors except context cancellation.
func DefaultRetryIf(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *RetryConfig) applyDefaults() {
	d := DefaultRetryConfig()
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = d.InitialBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = d.MaxBackoff
	}
	if c.BackoffFactor <= 0 {
		c.BackoffFactor = d.BackoffFactor
	}
	if c.RetryIf == nil {
		c.RetryIf = DefaultRetryIf
	}
}

// Retry executes fn until it succeeds, RetryIf rejects the error, or the
// attempts are exhausted. The last result is returned alongside the last
// error, so callers can still inspect a response that carried an error.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	cfg.applyDefaults()

	var (
		last    T
		lastErr error
	)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		last, lastErr = fn()
		if lastErr == nil || !cfg.RetryIf(lastErr) || attempt == cfg.MaxAttempts {
			return last, lastErr
		}

		backoff := calculateBackoff(attempt, cfg)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, ctx.Err()
		case <-timer.C:
		}
	}
	return last, lastErr
}

// calculateBackoff returns initial * factor^(attempt-1) with jitter, capped at MaxBackoff.
func calculateBackoff(attempt int, cfg RetryConfig) time.Duration {
	backoff := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffFactor, float64(attempt-1))
	if cfg.Jitter > 0 {
		backoff += (rand.Float64()*2 - 1) * backoff * cfg.Jitter
	}
	if backoff > float64(cfg.MaxBackoff) {
		backoff = float64(cfg.MaxBackoff)
	}
	if backoff < 0 {
		backoff = float64(cfg.InitialBackoff)
	}
	return time.Duration(backoff)
}
