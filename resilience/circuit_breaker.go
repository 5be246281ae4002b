package resilience

import (
	"errors"
	"sync"
	"time"
)

// State represents the circuit breaker state.
type State int

const (
	// StateClosed allows requests to pass through.
	StateClosed State = iota
	// StateOpen blocks all requests.
	StateOpen
	// StateHalfOpen allows limited requests to test recovery.
	StateHalfOpen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned by Execute while the circuit is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig configures a circuit breaker.
type CircuitBreakerConfig struct {
	// Name identifies this circuit breaker, usually the endpoint name.
	Name string `yaml:"name" mapstructure:"name"`
	// MaxFailures is the number of consecutive failures before opening.
	MaxFailures int `yaml:"max_failures" mapstructure:"max_failures"`
	// Timeout is how long the circuit stays open before a trial request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// HalfOpenMaxCalls is the number of trial calls allowed while half-open.
	HalfOpenMaxCalls int `yaml:"half_open_max_calls" mapstructure:"half_open_max_calls"`
	// OnStateChange is called when state changes.
	OnStateChange func(name string, from, to State) `yaml:"-" mapstructure:"-"`
}

// DefaultCircuitBreakerConfig returns sensible defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxFailures:      5,
		Timeout:          30 * time.Second,
		HalfOpenMaxCalls: 1,
	}
}

// CircuitBreaker fails fast after repeated failures and probes for recovery
// after Timeout.
type CircuitBreaker struct {
	config CircuitBreakerConfig

	mu            sync.Mutex
	state         State
	failures      int
	successes     int
	halfOpenCalls int
	openedAt      time.Time
	now           func() time.Time
}

// NewCircuitBreaker creates a new circuit breaker.
func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	d := DefaultCircuitBreakerConfig(config.Name)
	if config.MaxFailures <= 0 {
		config.MaxFailures = d.MaxFailures
	}
	if config.Timeout <= 0 {
		config.Timeout = d.Timeout
	}
	if config.HalfOpenMaxCalls <= 0 {
		config.HalfOpenMaxCalls = d.HalfOpenMaxCalls
	}
	return &CircuitBreaker{config: config, now: time.Now}
}

// Execute runs fn through the circuit breaker.
// Returns ErrCircuitOpen without calling fn if the circuit is open.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}
	err := fn()
	cb.record(err)
	return err
}

// State returns the current circuit breaker state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.current()
}

// Reset closes the circuit and clears all counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.transition(StateClosed)
	cb.failures = 0
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.current() {
	case StateClosed:
		return true
	case StateHalfOpen:
		if cb.halfOpenCalls < cb.config.HalfOpenMaxCalls {
			cb.halfOpenCalls++
			return true
		}
	}
	return false
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.current()
	if err == nil {
		switch state {
		case StateClosed:
			cb.failures = 0
		case StateHalfOpen:
			cb.successes++
			if cb.successes >= cb.config.HalfOpenMaxCalls {
				cb.transition(StateClosed)
			}
		}
		return
	}

	cb.failures++
	if state == StateHalfOpen || cb.failures >= cb.config.MaxFailures {
		cb.openedAt = cb.now()
		cb.transition(StateOpen)
	}
}

// current resolves the open → half-open transition once Timeout has elapsed.
func (cb *CircuitBreaker) current() State {
	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.config.Timeout {
		cb.transition(StateHalfOpen)
	}
	return cb.state
}

func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	cb.successes = 0
	cb.halfOpenCalls = 0
	if to == StateClosed {
		cb.failures = 0
	}
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}
