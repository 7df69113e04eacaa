package llm_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atstailor/resume-tailor/internal/llm"
)

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := llm.Retry(context.Background(), 3, func() (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected ok, got %q", result)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := llm.Retry(context.Background(), 3, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if result != 42 {
		t.Fatalf("expected 42, got %d", result)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("permanent failure")
	calls := 0
	_, err := llm.Retry(context.Background(), 2, func() (string, error) {
		calls++
		return "", sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if !strings.Contains(err.Error(), "after 2 attempts") {
		t.Fatalf("expected attempt count in error, got %v", err)
	}
}

func TestRetry_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := llm.Retry(ctx, 5, func() (string, error) {
		calls++
		cancel()
		return "", errors.New("fail")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call before cancellation stopped retries, got %d", calls)
	}
}
