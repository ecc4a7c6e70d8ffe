package plangen

import (
	"fmt"
	"sort"
	"strings"
)

// Prompt builders. Every prompt embeds the goal, a rendered Q/A block per
// non-empty answer, an explicit output-shape block, and per-task authoring
// guidance. The shape block is never omitted: each prompt must be answerable
// with a single JSON value and nothing else.

// formatAnswers renders an AnswerSet as "Q: ...\nA: ..." blocks. Keys are
// sorted so the same answers always produce the same prompt.
func formatAnswers(answers AnswerSet) string {
	if len(answers) == 0 {
		return ""
	}
	questions := make([]string, 0, len(answers))
	for q := range answers {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	var b strings.Builder
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s", q, answers[q])
	}
	return b.String()
}

// formatSteps renders overview steps as a numbered title list.
func formatSteps(overview *Overview) string {
	if overview == nil || len(overview.Steps) == 0 {
		return ""
	}
	var b strings.Builder
	for i, step := range overview.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step.Title)
	}
	return b.String()
}

// formatContext renders a free-form key/value context map as "key: value"
// lines, dropping empty values. Keys are sorted for determinism.
func formatContext(context map[string]string) string {
	if len(context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(context))
	for k, v := range context {
		if strings.TrimSpace(v) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", k, context[k])
	}
	return b.String()
}

func questionsPrompt(goal string) string {
	return fmt.Sprintf(`You are an expert project clarification specialist with deep domain knowledge across multiple fields.

GOAL: %q

Your primary objective is to transform this potentially vague goal into a crystal-clear, well-defined objective with specific requirements and scope.

ANALYSIS FRAMEWORK:
1. GOAL SPECIFICATION: What exactly does the user want to create/achieve?
2. SCOPE DEFINITION: What are the boundaries, requirements, and constraints?
3. CONTEXT GATHERING: What's the specific situation, environment, or use case?
4. SUCCESS CRITERIA: What does "done" and "successful" look like?
5. RESOURCE BASELINE: What do they currently have access to?

Generate exactly 5 questions that will clarify:
- The specific type/style/version of what they want
- Key requirements and must-haves vs nice-to-haves
- The context and intended use case
- Success criteria and quality standards
- Available resources and starting point

Each question should be:
- Focused on defining WHAT they want, not HOW to achieve it
- Specific enough to eliminate ambiguity
- Practical and relevant to planning
- Designed to prevent scope creep

RESPONSE FORMAT: JSON array of exactly 5 questions
["question 1", "question 2", "question 3", "question 4", "question 5"]

- make sure each question begets no more than one response. Dont ask two things in one question.
- DONT include a bracketed list of examples in your questions.
- Word your questions in dialogue-like human language.
DOMAIN-SPECIFIC PATTERNS:

CREATIVE PROJECTS:
- Style/aesthetic preferences
- Intended use (personal, display, gift, etc.)
- Materials/medium preferences
- Size/scale requirements
- Quality/complexity level

EVENTS/PLANNING:
- Occasion and context
- Number of people/scale
- Venue type and location
- Budget range or constraints
- Style/theme/atmosphere

SKILL LEARNING:
- Specific skill level target
- Primary use case/application
- Learning format preferences
- Time commitment available
- Current experience level

BUSINESS/CAREER:
- Specific industry/role/company
- Timeline and urgency
- Success metrics
- Current situation/starting point
- Key requirements/deal-breakers

HEALTH/FITNESS:
- Specific measurable outcomes
- Medical considerations
- Lifestyle integration needs
- Activity preferences
- Current baseline

FINANCIAL:
- Specific amount/timeline
- Purpose/use case
- Risk tolerance
- Current situation`, goal)
}

func followUpPrompt(goal string, answers AnswerSet, phase string) string {
	answersContext := formatAnswers(answers)
	if phase == "secondary" {
		return fmt.Sprintf(`Based on this goal and the user's previous answers, generate 3 specific follow-up questions that will help create a more detailed and personalized plan.

Goal: %s

Previous Answers:
%s

Generate 3 secondary questions that:
- Dig deeper into specific aspects mentioned in their answers
- Help understand their constraints, preferences, or specific situation
- Are more targeted than general questions
- Will help create a more personalized plan

Respond with ONLY a JSON array of 3 questions:
["question 1", "question 2", "question 3"]`, goal, answersContext)
	}
	return fmt.Sprintf(`Based on this goal and all previous answers, generate 3 final deep-dive questions that will help create the most comprehensive and foolproof plan possible.

Goal: %s

All Previous Answers:
%s

Generate 3 tertiary questions that:
- Address potential obstacles or edge cases
- Explore advanced strategies or optimizations
- Help anticipate and plan for challenges
- Will make the final plan as thorough and foolproof as possible

Respond with ONLY a JSON array of 3 questions:
["question 1", "question 2", "question 3"]`, goal, answersContext)
}

func overviewPrompt(goal string, answers AnswerSet) string {
	return fmt.Sprintf(`Based on this goal and the user's context, identify the MAIN, general steps needed to achieve this goal. Use simple, clear language that anyone can understand.

Goal: %s

User Context:
%s

Generate 4-6 main steps that cover the essential areas needed to achieve this goal. For each step, provide:
1. A clear, short and simple title (what needs to be done)
2. A brief but concise description of WHY this step is necessary and important

Respond with ONLY valid JSON in this format:
{
  "steps": [
    {
      "title": "Simple, clear step title",
      "description": "Detailed explanation of why this step is necessary, what it accomplishes, and why it's important for achieving the goal. This should be 2-3 sentences that help the user understand the reasoning behind this step."
    }
  ]
}

Make the steps:
- High-level and strategic (not detailed tasks)
- In logical order
- Cover the main areas needed for success
- Use simple, motivating language
- Focus on the "what" and "why", not the "how"`, goal, formatAnswers(answers.NonEmpty()))
}

func timelinePrompt(goal string, answers AnswerSet, overview *Overview) string {
	return fmt.Sprintf(`Based on this goal, user context, and planned steps, estimate realistic timeline requirements.

Goal: %s

User Context:
%s

Planned Steps:
%s

Provide a realistic timeline estimate considering:
- The complexity of the goal
- The user's available time and experience level
- The steps required
- A sustainable pace that prevents burnout

Respond with ONLY valid JSON in this format:
{
  "suggested_weeks": 8,
  "minimum_weeks": 4,
  "maximum_weeks": 16,
  "reasoning": "Brief explanation of why this timeline makes sense based on the goal complexity and user's situation"
}

Guidelines:
- suggested_weeks: Your recommended timeline for sustainable progress
- minimum_weeks: Absolute minimum if working very intensively (5-7 hours/day)
- maximum_weeks: Upper bound for a very relaxed pace (1-2 hours/day)
- reasoning: 1-2 sentences explaining the timeline rationale
- Consider the user's experience level and available time
- Be realistic but encouraging`, goal, formatAnswers(answers.NonEmpty()), formatSteps(overview))
}

func planPrompt(goal string, context map[string]string) string {
	return fmt.Sprintf(`You are a goal planning assistant. You MUST respond with ONLY valid JSON in the exact format specified below.

Goal: %s
Additional Context: %s

IMPORTANT: Your response must be ONLY the JSON object below, with no additional text, explanations, or markdown formatting.

{
  "summary": "Brief summary of what the user wants to achieve",
  "phases": [
    {
      "title": "Phase name",
      "description": "Why this phase is important",
      "tasks": [
        {
          "title": "Task name",
          "description": "What to do",
          "subtasks": ["subtask 1", "subtask 2", "subtask 3"]
        }
      ]
    }
  ],
  "estimated_timeline": "X weeks/months",
  "minimum_timeline": "Y weeks/months"
}

Requirements:
- Create exactly 3 phases
- Each phase must have 4-5 tasks
- Each task must have 3-4 actionable subtasks
- Be specific and actionable, not vague
- Provide realistic timelines
- Response must be valid JSON only`, goal, formatContext(context))
}

func summaryPrompt(goal string) string {
	return fmt.Sprintf(`Summarize the following goal in simple, clear language that anyone can understand. Make it concise and easy to grasp, using everyday words.

Goal: %s

Respond with ONLY valid JSON in this format:
{
  "summary": "A simple summary of the goal"
}

If you cannot summarize the goal because it is too vague or unclear, respond with ONLY this JSON:
{
  "error": 400
}`, goal)
}
