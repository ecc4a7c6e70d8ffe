package plangen

import "fmt"

// Hand-authored substitutes, one per non-gating task. Used whenever the
// service is unreachable, the output cannot be parsed, or validation fails.
// questions and summary have no fallback: those tasks gate forward progress
// and must surface their failures.

func fallbackFollowUp(phase string) []string {
	if phase == "secondary" {
		return []string{
			"What specific challenges do you anticipate facing?",
			"What resources or support do you currently have available?",
			"How will you measure success along the way?",
		}
	}
	return []string{
		"What would you do if you encountered a major setback?",
		"How will you maintain motivation during difficult periods?",
		"What would make this plan fail, and how can we prevent that?",
	}
}

func fallbackOverview() *Overview {
	return &Overview{
		Steps: []Step{
			{
				Title:       "Plan and prepare",
				Description: "Every successful goal starts with proper planning. This step helps you understand exactly what you're working toward, what resources you'll need, and what obstacles you might face. Without planning, you're likely to waste time and energy on the wrong activities.",
			},
			{
				Title:       "Build foundational skills",
				Description: "Most goals require developing new abilities or strengthening existing ones. This step ensures you have the core competencies needed to succeed. It's like building a strong foundation before constructing a house - everything else depends on getting this right.",
			},
			{
				Title:       "Take consistent action",
				Description: "Goals are achieved through regular, sustained effort rather than sporadic bursts of activity. This step focuses on creating habits and routines that move you forward every day, even when motivation is low. Consistency beats intensity over the long term.",
			},
			{
				Title:       "Monitor and adjust",
				Description: "Success rarely follows a straight line. This step involves regularly checking your progress, celebrating wins, and making course corrections when needed. It helps you stay on track and adapt to changing circumstances without losing momentum.",
			},
		},
	}
}

func fallbackTimeline() *TimelineEstimate {
	return &TimelineEstimate{
		SuggestedWeeks: 8,
		MinimumWeeks:   4,
		MaximumWeeks:   16,
		Reasoning:      "Based on typical goal complexity, this timeline allows for steady progress while maintaining a sustainable pace.",
	}
}

func fallbackPlan(goal string) *Plan {
	return &Plan{
		Summary: fmt.Sprintf("Create an actionable plan for: %s", goal),
		Phases: []PlanPhase{
			{
				Title:       "Planning & Preparation",
				Description: "Set up the foundation for success",
				Tasks: []PlanTask{
					{
						Title:       "Define specific objectives",
						Description: "Break down your goal into measurable outcomes",
						Subtasks: []string{
							"Write down your specific goal",
							"Set measurable success criteria",
							"Identify potential obstacles",
							"Create accountability measures",
						},
					},
					{
						Title:       "Gather necessary resources",
						Description: "Collect tools, information, and support needed",
						Subtasks: []string{
							"Research best practices",
							"Identify required tools/materials",
							"Find mentors or support groups",
							"Set up your workspace",
						},
					},
				},
			},
			{
				Title:       "Initial Action",
				Description: "Take the first concrete steps",
				Tasks: []PlanTask{
					{
						Title:       "Start with small wins",
						Description: "Build momentum with achievable early tasks",
						Subtasks: []string{
							"Complete one small task today",
							"Track your progress",
							"Celebrate small victories",
							"Adjust approach based on results",
						},
					},
				},
			},
			{
				Title:       "Sustained Progress",
				Description: "Maintain consistent effort toward your goal",
				Tasks: []PlanTask{
					{
						Title:       "Develop consistent habits",
						Description: "Create routines that support your goal",
						Subtasks: []string{
							"Set daily/weekly schedules",
							"Track your consistency",
							"Review and adjust regularly",
							"Stay accountable to your plan",
						},
					},
				},
			},
		},
		EstimatedTimeline: "4-8 weeks",
		MinimumTimeline:   "2-3 weeks",
		Fallback:          true,
	}
}
