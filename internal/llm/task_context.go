package llm

import (
	"context"
	"strings"
)

type ctxKeyTask struct{}

// WithTask tags a context with the generation task identifier (questions,
// follow-up, overview, timeline, plan, summary). Clients use it for request
// logging; the fake client uses it to select a canned payload.
func WithTask(ctx context.Context, task string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKeyTask{}, strings.ToLower(strings.TrimSpace(task)))
}

func TaskFrom(ctx context.Context) string {
	if ctx != nil {
		if v := ctx.Value(ctxKeyTask{}); v != nil {
			if task, ok := v.(string); ok {
				return task
			}
		}
	}
	return ""
}
