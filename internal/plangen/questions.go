package plangen

import (
	"context"
	"strings"

	"moti/internal/llm"
)

// InitialQuestionCount is the fixed size of the primary question batch.
const InitialQuestionCount = 5

// Questions generates the five primary clarification questions for a goal.
// This task gates forward progress: failures are surfaced, never substituted.
type Questions struct {
	LLM llm.Client
}

func (q *Questions) Run(ctx context.Context, goal string) ([]string, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, ErrInvalidInput
	}
	text, err := complete(ctx, q.LLM, TaskQuestions, questionsPrompt(goal))
	if err != nil {
		return nil, err
	}
	return parseQuestions(Normalize(text), InitialQuestionCount)
}
