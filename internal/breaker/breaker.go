// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package breaker wraps sony/gobreaker with the logging and Prometheus
// instrumentation shared by every upstream client.
//
// Settings:
//   - 3 concurrent requests in half-open state
//   - counts reset every minute while closed
//   - 2 minute wait before moving from open to half-open
//   - opens at a failure rate of 60% or more over at least 10 requests
package breaker

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Default settings.
const (
	DefaultMaxRequests  = 3
	DefaultInterval     = time.Minute
	DefaultTimeout      = 2 * time.Minute
	DefaultMinRequests  = 10
	DefaultFailureRatio = 0.6
)

// ErrOpen is returned when a call is rejected because the breaker is open
// or the half-open probe budget is used up.
var ErrOpen = errors.New("circuit breaker open")

// Settings tune a Breaker. Zero values fall back to the defaults.
type Settings struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64

	// IsSuccessful reports whether an error should count as a success, for
	// example a 404 from an otherwise healthy upstream. Nil counts every
	// non-nil error as a failure.
	IsSuccessful func(err error) bool
}

// Breaker guards calls returning T.
type Breaker[T any] struct {
	cb   *gobreaker.CircuitBreaker[T]
	name string
}

// New creates a breaker and initialises its state metrics.
func New[T any](s Settings) *Breaker[T] {
	if s.MaxRequests == 0 {
		s.MaxRequests = DefaultMaxRequests
	}
	if s.Interval == 0 {
		s.Interval = DefaultInterval
	}
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}
	if s.MinRequests == 0 {
		s.MinRequests = DefaultMinRequests
	}
	if s.FailureRatio == 0 {
		s.FailureRatio = DefaultFailureRatio
	}

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	minRequests := s.MinRequests
	ratio := s.FailureRatio

	settings := gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio < ratio {
				return false
			}
			logging.Warn().
				Str("breaker", s.Name).
				Uint32("failures", counts.TotalFailures).
				Float64("failure_rate", failureRatio*100).
				Msg("[CIRCUIT BREAKER] Opening circuit")
			return true
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := StateString(from), StateString(to)
			logging.Info().
				Str("breaker", name).
				Str("from", fromStr).
				Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	}
	if s.IsSuccessful != nil {
		settings.IsSuccessful = s.IsSuccessful
	}

	return &Breaker[T]{
		cb:   gobreaker.NewCircuitBreaker[T](settings),
		name: s.Name,
	}
}

// Execute runs fn through the breaker. Rejections are reported as ErrOpen
// wrapped around the gobreaker error.
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	result, err := b.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Warn().Str("breaker", b.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		var zero T
		return zero, errors.Join(ErrOpen, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	counts := b.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	return result, err
}

// Name returns the breaker name used in logs and metrics.
func (b *Breaker[T]) Name() string {
	return b.name
}

// State returns the current state as a string.
func (b *Breaker[T]) State() string {
	return StateString(b.cb.State())
}

// StateString converts a gobreaker state for logs and health output.
func StateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
