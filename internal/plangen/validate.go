package plangen

import (
	"fmt"
	"math"
	"strings"

	"moti/internal/util/jsonutil"
)

// Per-task shape checks over normalized completion text. Parse failures are
// ErrMalformedOutput; parsed-but-wrong values are ErrValidation. Content is
// returned unchanged on success; the only numeric repair lives in the
// timeline calibrator, which runs after validation.

func parseQuestions(text string, want int) ([]string, error) {
	var questions []string
	if err := jsonutil.Unmarshal([]byte(text), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(questions) != want {
		return nil, fmt.Errorf("%w: want %d questions, got %d", ErrValidation, want, len(questions))
	}
	for i, q := range questions {
		if strings.TrimSpace(q) == "" {
			return nil, fmt.Errorf("%w: question %d is empty", ErrValidation, i+1)
		}
	}
	return questions, nil
}

func parseOverview(text string) (*Overview, error) {
	var overview Overview
	if err := jsonutil.Unmarshal([]byte(text), &overview); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(overview.Steps) == 0 {
		return nil, fmt.Errorf("%w: overview has no steps", ErrValidation)
	}
	for i, step := range overview.Steps {
		if strings.TrimSpace(step.Title) == "" || strings.TrimSpace(step.Description) == "" {
			return nil, fmt.Errorf("%w: step %d is missing title or description", ErrValidation, i+1)
		}
	}
	return &overview, nil
}

// timelineWire tolerates fractional week counts; models occasionally emit
// 7.5 despite being asked for integers.
type timelineWire struct {
	SuggestedWeeks *float64 `json:"suggested_weeks"`
	MinimumWeeks   *float64 `json:"minimum_weeks"`
	MaximumWeeks   *float64 `json:"maximum_weeks"`
	Reasoning      string   `json:"reasoning"`
}

func parseTimeline(text string) (*TimelineEstimate, error) {
	var wire timelineWire
	if err := jsonutil.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if wire.SuggestedWeeks == nil || wire.MinimumWeeks == nil || wire.MaximumWeeks == nil {
		return nil, fmt.Errorf("%w: timeline is missing a week field", ErrValidation)
	}
	if strings.TrimSpace(wire.Reasoning) == "" {
		return nil, fmt.Errorf("%w: timeline has no reasoning", ErrValidation)
	}
	return &TimelineEstimate{
		SuggestedWeeks: int(math.Round(*wire.SuggestedWeeks)),
		MinimumWeeks:   int(math.Round(*wire.MinimumWeeks)),
		MaximumWeeks:   int(math.Round(*wire.MaximumWeeks)),
		Reasoning:      wire.Reasoning,
	}, nil
}

func parsePlan(text string) (*Plan, error) {
	var plan Plan
	if err := jsonutil.Unmarshal([]byte(text), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(plan.Phases) == 0 {
		return nil, fmt.Errorf("%w: plan has no phases", ErrValidation)
	}
	for i, phase := range plan.Phases {
		if strings.TrimSpace(phase.Title) == "" || strings.TrimSpace(phase.Description) == "" {
			return nil, fmt.Errorf("%w: phase %d is missing title or description", ErrValidation, i+1)
		}
		if phase.Tasks == nil {
			return nil, fmt.Errorf("%w: phase %d has no tasks array", ErrValidation, i+1)
		}
		for j, task := range phase.Tasks {
			if strings.TrimSpace(task.Title) == "" || strings.TrimSpace(task.Description) == "" {
				return nil, fmt.Errorf("%w: phase %d task %d is missing title or description", ErrValidation, i+1, j+1)
			}
			if task.Subtasks == nil {
				return nil, fmt.Errorf("%w: phase %d task %d has no subtasks array", ErrValidation, i+1, j+1)
			}
		}
	}
	if strings.TrimSpace(plan.EstimatedTimeline) == "" || strings.TrimSpace(plan.MinimumTimeline) == "" {
		return nil, fmt.Errorf("%w: plan is missing timeline fields", ErrValidation)
	}
	return &plan, nil
}

// summaryWire accepts both the success shape {"summary": "..."} and the
// too-vague sentinel {"error": 400} (the sentinel value's type varies).
type summaryWire struct {
	Summary string `json:"summary"`
	Error   any    `json:"error"`
}

func parseSummary(text string) (string, error) {
	var wire summaryWire
	if err := jsonutil.Unmarshal([]byte(text), &wire); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if wire.Error != nil {
		return "", ErrGoalTooVague
	}
	if strings.TrimSpace(wire.Summary) == "" {
		return "", fmt.Errorf("%w: no summary returned", ErrValidation)
	}
	return wire.Summary, nil
}
