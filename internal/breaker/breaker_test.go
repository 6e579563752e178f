// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package breaker

import (
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

var errUpstream = errors.New("upstream failed")

func TestBreaker_PassesResults(t *testing.T) {
	b := New[int](Settings{Name: "test-pass"})

	got, err := b.Execute(func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Execute() = %d, want 42", got)
	}

	_, err = b.Execute(func() (int, error) { return 0, errUpstream })
	if !errors.Is(err, errUpstream) {
		t.Errorf("Execute() error = %v, want %v", err, errUpstream)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestBreaker_OpensAfterFailureRatio(t *testing.T) {
	b := New[string](Settings{Name: "test-open", Timeout: time.Hour})

	for i := 0; i < DefaultMinRequests; i++ {
		_, _ = b.Execute(func() (string, error) { return "", errUpstream })
	}

	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	called := false
	_, err := b.Execute(func() (string, error) {
		called = true
		return "ok", nil
	})
	if called {
		t.Error("Execute() ran fn while open")
	}
	if !errors.Is(err, ErrOpen) {
		t.Errorf("Execute() error = %v, want ErrOpen", err)
	}
}

func TestBreaker_StaysClosedBelowMinRequests(t *testing.T) {
	b := New[int](Settings{Name: "test-min"})

	for i := 0; i < DefaultMinRequests-1; i++ {
		_, _ = b.Execute(func() (int, error) { return 0, errUpstream })
	}

	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestBreaker_IsSuccessfulIgnoresErrors(t *testing.T) {
	errNotFound := errors.New("not found")
	b := New[int](Settings{
		Name:         "test-success",
		IsSuccessful: func(err error) bool { return err == nil || errors.Is(err, errNotFound) },
	})

	for i := 0; i < DefaultMinRequests*2; i++ {
		_, err := b.Execute(func() (int, error) { return 0, errNotFound })
		if !errors.Is(err, errNotFound) {
			t.Fatalf("Execute() error = %v, want %v", err, errNotFound)
		}
	}

	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		want  string
	}{
		{gobreaker.StateClosed, "closed"},
		{gobreaker.StateHalfOpen, "half-open"},
		{gobreaker.StateOpen, "open"},
		{gobreaker.State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := StateString(tt.state); got != tt.want {
			t.Errorf("StateString(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
