// Package llm wraps the external large-language-model completion API behind a
// small interface so services and tests do not depend on a concrete provider.
package llm

import "context"

// Client sends a single synchronous completion request and returns the raw
// response text. Implementations must honor ctx cancellation.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
