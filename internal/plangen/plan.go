package plangen

import (
	"context"
	"log"
	"strings"

	"moti/internal/llm"
)

// PlanGen generates the full three-phase plan. Non-gating: recoverable
// failures yield the static plan, which marks itself with fallback:true so
// a consumer can flag it as non-personalized.
type PlanGen struct {
	LLM llm.Client
}

func (p *PlanGen) Run(ctx context.Context, goal string, extra map[string]string) (*Plan, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, ErrInvalidInput
	}

	text, err := complete(ctx, p.LLM, TaskPlan, planPrompt(goal, extra))
	if err == nil {
		if plan, perr := parsePlan(Normalize(text)); perr == nil {
			return plan, nil
		} else {
			err = perr
		}
	}
	if substitutable(err) {
		log.Printf("plan: substituting fallback: %v", err)
		return fallbackPlan(goal), nil
	}
	return nil, err
}
