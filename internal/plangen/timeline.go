package plangen

import (
	"context"
	"log"
	"strings"

	"moti/internal/llm"
)

// Timeline estimates week counts for a goal given the answers and the
// approved overview. Non-gating: recoverable failures yield the static
// 8/4/16 estimate. Calibration runs only on validated model output; the
// fallback is already expressed in calibrated terms.
type Timeline struct {
	LLM        llm.Client
	Calibrator TimelineCalibrator
}

func (t *Timeline) Run(ctx context.Context, goal string, answers AnswerSet, overview *Overview) (*TimelineEstimate, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, ErrInvalidInput
	}

	text, err := complete(ctx, t.LLM, TaskTimeline, timelinePrompt(goal, answers, overview))
	if err == nil {
		if estimate, perr := parseTimeline(Normalize(text)); perr == nil {
			calibrated := t.Calibrator.Calibrate(*estimate)
			return &calibrated, nil
		} else {
			err = perr
		}
	}
	if substitutable(err) {
		log.Printf("timeline: substituting fallback: %v", err)
		return fallbackTimeline(), nil
	}
	return nil, err
}
