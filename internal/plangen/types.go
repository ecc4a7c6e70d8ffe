package plangen

// AnswerSet maps question text to the user's answer. Skipped questions are
// absent, never present with an empty value.
type AnswerSet map[string]string

// NonEmpty returns a copy holding only entries with non-blank answers.
func (a AnswerSet) NonEmpty() AnswerSet {
	out := make(AnswerSet, len(a))
	for q, ans := range a {
		if ans != "" {
			out[q] = ans
		}
	}
	return out
}

// Step is one high-level overview step.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Overview is the 4-6 step strategic outline shown before timeline selection.
type Overview struct {
	Steps []Step `json:"steps"`
}

// TimelineEstimate is the validated week-count estimate. The invariant
// MinimumWeeks <= SuggestedWeeks <= MaximumWeeks is enforced by repair,
// not rejection.
type TimelineEstimate struct {
	SuggestedWeeks int    `json:"suggested_weeks"`
	MinimumWeeks   int    `json:"minimum_weeks"`
	MaximumWeeks   int    `json:"maximum_weeks"`
	Reasoning      string `json:"reasoning"`
}

// PlanTask is one actionable task inside a plan phase.
type PlanTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
}

// PlanPhase groups 4-5 tasks under one phase of the plan.
type PlanPhase struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tasks       []PlanTask `json:"tasks"`
}

// Plan is the full three-phase action plan.
type Plan struct {
	Summary           string      `json:"summary"`
	Phases            []PlanPhase `json:"phases"`
	EstimatedTimeline string      `json:"estimated_timeline"`
	MinimumTimeline   string      `json:"minimum_timeline"`

	// Fallback marks a hand-authored substitute so a consumer can flag the
	// plan as non-personalized.
	Fallback bool `json:"fallback,omitempty"`
}
