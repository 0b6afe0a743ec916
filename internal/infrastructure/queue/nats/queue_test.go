package nats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/resilience"
)

func newTestExecutor() *resilience.Executor {
	return resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: 1 * time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})
}

func TestPublishPathRetriesTransientErrors(t *testing.T) {
	exec := newTestExecutor()

	attempts := 0
	err := exec.Execute(context.Background(), "nats.publish", func(context.Context) error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("nats publish: %w", nats.ErrTimeout)
		}
		return nil
	}, classifyNATSError)

	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestPublishPathDoesNotRetryPermanentErrors(t *testing.T) {
	exec := newTestExecutor()

	attempts := 0
	permanent := errors.New("invalid subject")
	err := exec.Execute(context.Background(), "nats.publish", func(context.Context) error {
		attempts++
		return permanent
	}, classifyNATSError)

	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}

func TestClassifyNATSError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		retryable bool
		record    bool
	}{
		{"no servers", nats.ErrNoServers, true, true},
		{"timeout", nats.ErrTimeout, true, true},
		{"connection closed", nats.ErrConnectionClosed, true, true},
		{"disconnected", nats.ErrDisconnected, true, true},
		{"wrapped timeout", fmt.Errorf("nats publish: %w", nats.ErrTimeout), true, true},
		{"canceled", context.Canceled, false, false},
		{"generic", errors.New("boom"), false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			class := classifyNATSError(tc.err)
			if class.Retryable != tc.retryable {
				t.Fatalf("retryable = %v, want %v", class.Retryable, tc.retryable)
			}
			if class.RecordFailure != tc.record {
				t.Fatalf("record failure = %v, want %v", class.RecordFailure, tc.record)
			}
		})
	}
}

func TestWrapTemporaryIfNeeded(t *testing.T) {
	if err := wrapTemporaryIfNeeded(nil); err != nil {
		t.Fatalf("expected nil passthrough, got %v", err)
	}

	wrapped := wrapTemporaryIfNeeded(fmt.Errorf("nats publish: %w", nats.ErrTimeout))
	if !domain.IsKind(wrapped, domain.ErrTemporary) {
		t.Fatalf("expected temporary kind, got %v", wrapped)
	}

	permanent := errors.New("bad payload")
	if err := wrapTemporaryIfNeeded(permanent); !errors.Is(err, permanent) || domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("expected permanent error untouched, got %v", err)
	}
}
