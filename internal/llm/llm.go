package llm

import (
	"context"
	"errors"
	"fmt"
)

// Request carries one completion call: a fixed system instruction for the
// task, the user prompt, and per-task sampling parameters.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Client issues a single synchronous completion call and returns the raw
// completion text. Implementations must not retry on their own; the caller
// decides whether a failure is surfaced or substituted.
type Client interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}

// ErrNotConfigured is returned when no access credential is present.
// Callers surface it as a distinct "feature disabled" signal instead of
// treating it like a transport failure.
var ErrNotConfigured = errors.New("llm: api key not configured")

// ErrEmptyCompletion is returned when the service answered but produced no
// usable text.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// StatusError reports a transport/HTTP failure from the generation service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("llm: request failed: %d", e.Code)
	}
	return fmt.Sprintf("llm: request failed: %d: %s", e.Code, e.Body)
}
