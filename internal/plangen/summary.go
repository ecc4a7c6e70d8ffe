package plangen

import (
	"context"
	"strings"

	"moti/internal/llm"
)

// Summary produces the short machine-generated restatement of a goal.
// Gating: parse and shape failures are surfaced, and the model's too-vague
// sentinel becomes ErrGoalTooVague rather than a fabricated summary.
type Summary struct {
	LLM llm.Client
}

func (s *Summary) Run(ctx context.Context, goal string) (string, error) {
	if strings.TrimSpace(goal) == "" {
		return "", ErrInvalidInput
	}
	text, err := complete(ctx, s.LLM, TaskSummary, summaryPrompt(goal))
	if err != nil {
		return "", err
	}
	return parseSummary(Normalize(text))
}
