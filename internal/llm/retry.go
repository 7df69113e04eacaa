package llm

import (
	"context"
	"fmt"
	"time"
)

// Retry calls fn up to attempts times with linearly increasing backoff.
// It stops early if ctx is done between attempts.
func Retry[T any](ctx context.Context, attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		wait := time.Duration(500*(i+1)) * time.Millisecond
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, fmt.Errorf("after %d attempts: %w", i+1, lastErr)
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
