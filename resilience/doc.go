// Package resilience provides the opt-in retry and circuit breaker used by
// the HTTP transport. Neither is enabled by default: endpoint clients make
// exactly one attempt per verb call unless the transport config asks for more.
//
//	transport:
//	  retry:
//	    max_attempts: 3
//	    initial_backoff: 100ms
//	  circuit_breaker:
//	    max_failures: 5
//	    timeout: 30s
package resilience
