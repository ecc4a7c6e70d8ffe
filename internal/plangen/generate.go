package plangen

import (
	"context"
	"errors"

	"moti/internal/llm"
)

// complete issues the single generation call for a task, tagging the context
// and applying the task's fixed sampling parameters.
func complete(ctx context.Context, client llm.Client, task Task, prompt string) (string, error) {
	ctx = llm.WithTask(ctx, string(task))
	s := task.Sampling()
	return client.Complete(ctx, llm.Request{
		System:      task.SystemInstruction(),
		Prompt:      prompt,
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	})
}

// substitutable reports whether a failure may be replaced by a static
// fallback: transport failures, unparseable output, and shape failures
// qualify. A missing credential never does: that state is surfaced as
// "feature disabled", not papered over. Context cancellation propagates.
func substitutable(err error) bool {
	if err == nil || errors.Is(err, llm.ErrNotConfigured) {
		return false
	}
	var statusErr *llm.StatusError
	return errors.As(err, &statusErr) ||
		errors.Is(err, llm.ErrEmptyCompletion) ||
		errors.Is(err, ErrMalformedOutput) ||
		errors.Is(err, ErrValidation)
}
