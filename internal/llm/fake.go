package llm

import (
	"context"
)

// FakeClient returns deterministic per-task payloads for offline use and
// tests. The payload is selected by the task tag on the context.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Complete(ctx context.Context, req Request) (string, error) {
	switch TaskFrom(ctx) {
	case "questions":
		return `["What exactly do you want to have built or achieved when this is done?",
"Which requirements are must-haves, and which are nice-to-haves?",
"In what situation or context will you use the result?",
"How will you know the outcome is good enough?",
"What resources, skills, or materials do you already have?"]`, nil
	case "follow-up":
		return `["What specific challenges do you anticipate facing?",
"What resources or support do you currently have available?",
"How will you measure success along the way?"]`, nil
	case "overview":
		return `{"steps":[
{"title":"Clarify the target","description":"Pin down what finished looks like so effort goes to the right places."},
{"title":"Build the basics","description":"Develop the core skills and materials the goal depends on."},
{"title":"Work in steady increments","description":"Regular sessions compound; sporadic pushes do not."},
{"title":"Review and adjust","description":"Check progress against the target and correct course early."}]}`, nil
	case "timeline":
		return `{"suggested_weeks":8,"minimum_weeks":4,"maximum_weeks":16,"reasoning":"A steady pace covers the planned steps without burnout."}`, nil
	case "plan":
		return `{"summary":"A staged plan toward the stated goal.",
"phases":[
{"title":"Foundation","description":"Set up what everything else depends on.","tasks":[
{"title":"Define outcomes","description":"Make the goal measurable.","subtasks":["Write the goal down","Set success criteria","List known obstacles"]},
{"title":"Gather resources","description":"Collect tools and references.","subtasks":["Research approaches","List required materials","Prepare a workspace"]},
{"title":"Schedule the work","description":"Reserve recurring time.","subtasks":["Pick weekly slots","Set reminders","Tell someone for accountability"]},
{"title":"Baseline check","description":"Record the starting point.","subtasks":["Note current ability","Capture metrics","Save reference samples"]}]},
{"title":"Execution","description":"Do the core work in increments.","tasks":[
{"title":"First milestone","description":"Produce an early end-to-end result.","subtasks":["Pick a small scope","Finish it","Review the result"]},
{"title":"Iterate","description":"Repeat with rising difficulty.","subtasks":["Plan the next increment","Execute","Compare against criteria"]},
{"title":"Get feedback","description":"Outside eyes catch blind spots.","subtasks":["Share progress","Collect comments","Fold fixes into the plan"]},
{"title":"Track progress","description":"Keep the record honest.","subtasks":["Log each session","Review weekly","Adjust pace"]}]},
{"title":"Consolidation","description":"Lock in the result.","tasks":[
{"title":"Polish","description":"Close remaining gaps.","subtasks":["List defects","Fix the worst first","Re-test"]},
{"title":"Make it stick","description":"Turn the push into a habit.","subtasks":["Set a maintenance routine","Schedule check-ins","Plan the next goal"]},
{"title":"Review the journey","description":"Learn from what happened.","subtasks":["Compare plan vs. actual","Note surprises","Write down lessons"]},
{"title":"Celebrate","description":"Mark the finish.","subtasks":["Share the result","Thank supporters","Rest"]}]}],
"estimated_timeline":"8 weeks","minimum_timeline":"4 weeks"}`, nil
	case "summary":
		return `{"summary":"A short, plain-language restatement of the goal."}`, nil
	default:
		return "{}", nil
	}
}
