// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/logging"
)

func testLogger() *slog.Logger {
	return slog.New(logging.NewSlogHandler(logging.NewTestLogger(io.Discard)))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	tree, err := NewSupervisorTree(testLogger(), TreeConfig{
		FailureBackoff:  100 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}

	dataSvc := NewMockService("mock-data")
	apiSvc := NewMockService("mock-api")
	tree.AddDataService(dataSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	if dataSvc.StartCount() < 1 {
		t.Error("data service was not started")
	}
	if apiSvc.StartCount() < 1 {
		t.Error("api service was not started")
	}
	if apiSvc.StopCount() != apiSvc.StartCount() {
		t.Errorf("api service stopped %d times, started %d", apiSvc.StopCount(), apiSvc.StartCount())
	}
}

func TestSupervisorTreeFailureIsolation(t *testing.T) {
	tree, _ := NewSupervisorTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failing := NewMockService("failing-data")
	failing.SetFailCount(2)
	stable := NewMockService("stable-api")

	tree.AddDataService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	errCh := tree.ServeBackground(ctx)
	time.Sleep(200 * time.Millisecond)

	if failing.StartCount() < 3 {
		t.Errorf("failing service started %d times, want at least 3", failing.StartCount())
	}
	if stable.StartCount() != 1 {
		t.Errorf("api service started %d times, want 1", stable.StartCount())
	}

	cancel()
	<-errCh
}

func TestSupervisorTreeDoNotRestart(t *testing.T) {
	tree, _ := NewSupervisorTree(testLogger(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})

	once := NewMockService("one-shot")
	once.SetError(suture.ErrDoNotRestart)
	tree.AddDataService(once)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	errCh := tree.ServeBackground(ctx)
	time.Sleep(100 * time.Millisecond)

	if got := once.StartCount(); got != 1 {
		t.Errorf("one-shot service started %d times, want 1", got)
	}

	cancel()
	<-errCh
}
