package plangen

// Task identifies one generation task. Each task carries its own sampling
// parameters and system instruction; formatting-strict tasks run cooler than
// the creative follow-up task.
type Task string

const (
	TaskQuestions Task = "questions"
	TaskFollowUp  Task = "follow-up"
	TaskOverview  Task = "overview"
	TaskTimeline  Task = "timeline"
	TaskPlan      Task = "plan"
	TaskSummary   Task = "summary"
)

// Sampling holds the fixed per-task sampling parameters.
type Sampling struct {
	Temperature float32
	MaxTokens   int
}

func (t Task) Sampling() Sampling {
	switch t {
	case TaskQuestions:
		return Sampling{Temperature: 0.3, MaxTokens: 500}
	case TaskFollowUp:
		return Sampling{Temperature: 0.7, MaxTokens: 500}
	case TaskOverview:
		return Sampling{Temperature: 0.4, MaxTokens: 1000}
	case TaskTimeline:
		return Sampling{Temperature: 0.3, MaxTokens: 500}
	case TaskPlan:
		return Sampling{Temperature: 0.3, MaxTokens: 2000}
	case TaskSummary:
		return Sampling{Temperature: 0.2, MaxTokens: 100}
	default:
		return Sampling{Temperature: 0.3, MaxTokens: 500}
	}
}

func (t Task) SystemInstruction() string {
	switch t {
	case TaskQuestions:
		return "You are an expert project clarification specialist. Always respond with ONLY valid JSON in the exact format requested - a JSON array of exactly 5 questions."
	case TaskFollowUp:
		return "You are a helpful assistant that generates targeted follow-up questions. Always respond with ONLY a valid JSON array of exactly 3 questions."
	case TaskOverview:
		return "You are a helpful assistant that creates clear, high-level overviews of what needs to be done to achieve goals. Always respond with ONLY valid JSON in the exact format requested."
	case TaskTimeline:
		return "You are a helpful assistant that provides realistic timeline estimates for goals. Always respond with ONLY valid JSON in the exact format requested."
	case TaskPlan:
		return "You are a helpful assistant that creates structured, actionable plans. You MUST respond with ONLY valid JSON in the exact format requested. Do not include any markdown formatting, explanations, or additional text outside the JSON object."
	case TaskSummary:
		return "You are a helpful assistant that summarizes goals in simple, clear language. Always respond with ONLY valid JSON in the exact format requested."
	default:
		return ""
	}
}

// Gating reports whether a task must surface failures instead of
// substituting a fallback. Gating tasks decide forward progress; fabricated
// content there would let the flow proceed on nothing.
func (t Task) Gating() bool {
	return t == TaskQuestions || t == TaskSummary
}
