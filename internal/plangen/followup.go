package plangen

import (
	"context"
	"log"
	"strings"

	"moti/internal/llm"
)

// FollowUpQuestionCount is the fixed size of each follow-up batch.
const FollowUpQuestionCount = 3

// FollowUp generates the three-question batch for the secondary or tertiary
// elicitation phase. Non-gating: any recoverable failure yields the static
// batch for the requested phase so the elicitation flow is never blocked.
type FollowUp struct {
	LLM llm.Client
}

func (f *FollowUp) Run(ctx context.Context, goal string, answers AnswerSet, phase string) ([]string, error) {
	if strings.TrimSpace(goal) == "" || len(answers) == 0 {
		return nil, ErrInvalidInput
	}
	if phase != "secondary" && phase != "tertiary" {
		return nil, ErrInvalidInput
	}

	text, err := complete(ctx, f.LLM, TaskFollowUp, followUpPrompt(goal, answers, phase))
	if err == nil {
		if questions, perr := parseQuestions(Normalize(text), FollowUpQuestionCount); perr == nil {
			return questions, nil
		} else {
			err = perr
		}
	}
	if substitutable(err) {
		log.Printf("follow-up (%s): substituting fallback: %v", phase, err)
		return fallbackFollowUp(phase), nil
	}
	return nil, err
}
