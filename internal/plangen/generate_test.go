package plangen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"moti/internal/llm"
)

// scriptedClient returns a fixed completion (or error) and records the call.
type scriptedClient struct {
	text  string
	err   error
	calls int
	task  string
	req   llm.Request
}

func (c *scriptedClient) Name() string { return "scripted" }
func (c *scriptedClient) Close() error { return nil }
func (c *scriptedClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	c.calls++
	c.task = llm.TaskFrom(ctx)
	c.req = req
	return c.text, c.err
}

func TestQuestions_ReturnsExactlyFive(t *testing.T) {
	client := &scriptedClient{text: `["q1","q2","q3","q4","q5"]`}
	questions := &Questions{LLM: client}

	got, err := questions.Run(context.Background(), "learn to paint")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("want 5 questions, got %d", len(got))
	}
	if client.task != "questions" {
		t.Fatalf("task tag = %q", client.task)
	}
	if client.req.Temperature != 0.3 || client.req.MaxTokens != 500 {
		t.Fatalf("unexpected sampling: %+v", client.req)
	}
}

func TestQuestions_EmptyGoalIsInvalidInput(t *testing.T) {
	questions := &Questions{LLM: &scriptedClient{}}
	if _, err := questions.Run(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestQuestions_NeverSubstitutes(t *testing.T) {
	client := &scriptedClient{text: "I'd rather chat about something else."}
	questions := &Questions{LLM: client}
	if _, err := questions.Run(context.Background(), "goal"); !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("gating task must surface parse failure, got %v", err)
	}

	client = &scriptedClient{err: &llm.StatusError{Code: 500}}
	questions = &Questions{LLM: client}
	var statusErr *llm.StatusError
	if _, err := questions.Run(context.Background(), "goal"); !errors.As(err, &statusErr) {
		t.Fatalf("gating task must surface transport failure, got %v", err)
	}
}

func TestFollowUp_ExtractsFencedArray(t *testing.T) {
	client := &scriptedClient{text: "```json\n[\"a\",\"b\",\"c\"]\n```"}
	followUp := &FollowUp{LLM: client}

	got, err := followUp.Run(context.Background(), "goal", AnswerSet{"q": "a"}, "secondary")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 3 || got[0] != "a" {
		t.Fatalf("unexpected questions: %v", got)
	}
}

func TestFollowUp_FallsBackOnProse(t *testing.T) {
	client := &scriptedClient{text: "no json here"}
	followUp := &FollowUp{LLM: client}

	got, err := followUp.Run(context.Background(), "goal", AnswerSet{"q": "a"}, "tertiary")
	if err != nil {
		t.Fatalf("non-gating task must not fail: %v", err)
	}
	want := fallbackFollowUp("tertiary")
	if len(got) != 3 || got[0] != want[0] {
		t.Fatalf("expected tertiary fallback, got %v", got)
	}
}

func TestFollowUp_NotConfiguredSurfaces(t *testing.T) {
	followUp := &FollowUp{LLM: &scriptedClient{err: llm.ErrNotConfigured}}
	if _, err := followUp.Run(context.Background(), "goal", AnswerSet{"q": "a"}, "secondary"); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("missing credential must never be faked, got %v", err)
	}
}

func TestFollowUp_RejectsUnknownPhase(t *testing.T) {
	followUp := &FollowUp{LLM: &scriptedClient{}}
	if _, err := followUp.Run(context.Background(), "goal", AnswerSet{"q": "a"}, "quaternary"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestOverview_FallsBackOnUnparseableProse(t *testing.T) {
	client := &scriptedClient{text: "Achieving goals is a journey of a thousand steps..."}
	overview := NewOverviewGen(client, 8)

	got, err := overview.Run(context.Background(), "goal", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got.Steps) != 4 || got.Steps[0].Title != "Plan and prepare" {
		t.Fatalf("expected the 4-step default overview, got %+v", got)
	}
}

func TestOverview_MemoizesPerGoalAndAnswers(t *testing.T) {
	client := &scriptedClient{text: `{"steps":[{"title":"T","description":"D"}]}`}
	overview := NewOverviewGen(client, 8)
	answers := AnswerSet{"q": "a"}

	first, err := overview.Run(context.Background(), "goal", answers)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := overview.Run(context.Background(), "goal", answers)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected one generation call, got %d", client.calls)
	}
	if first != second {
		t.Fatal("expected the cached overview instance")
	}

	// Changing an answer is a new combination.
	if _, err := overview.Run(context.Background(), "goal", AnswerSet{"q": "b"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected a fresh generation call, got %d", client.calls)
	}
}

func TestOverview_DoesNotCacheFallback(t *testing.T) {
	client := &scriptedClient{text: "not json"}
	overview := NewOverviewGen(client, 8)

	if _, err := overview.Run(context.Background(), "goal", nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := overview.Run(context.Background(), "goal", nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("fallback must not be cached; got %d calls", client.calls)
	}
}

func TestTimeline_CalibratesValidatedOutput(t *testing.T) {
	client := &scriptedClient{text: `{"suggested_weeks":24,"minimum_weeks":12,"maximum_weeks":48,"reasoning":"r"}`}
	timeline := &Timeline{LLM: client, Calibrator: TimelineCalibrator{Compression: 4}}

	got, err := timeline.Run(context.Background(), "goal", nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.SuggestedWeeks != 6 || got.MinimumWeeks != 3 || got.MaximumWeeks != 12 {
		t.Fatalf("unexpected calibrated estimate: %+v", got)
	}
}

func TestTimeline_InvariantHoldsOnEveryPath(t *testing.T) {
	// Disordered model output is repaired, not rejected.
	client := &scriptedClient{text: `{"suggested_weeks":6,"minimum_weeks":9,"maximum_weeks":2,"reasoning":"r"}`}
	timeline := &Timeline{LLM: client, Calibrator: TimelineCalibrator{Compression: 1}}
	got, err := timeline.Run(context.Background(), "goal", nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !(got.MinimumWeeks <= got.SuggestedWeeks && got.SuggestedWeeks <= got.MaximumWeeks) {
		t.Fatalf("invariant violated: %+v", got)
	}

	// Fallback path.
	timeline = &Timeline{LLM: &scriptedClient{err: &llm.StatusError{Code: 503}}, Calibrator: TimelineCalibrator{Compression: 4}}
	got, err = timeline.Run(context.Background(), "goal", nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !(got.MinimumWeeks <= got.SuggestedWeeks && got.SuggestedWeeks <= got.MaximumWeeks) {
		t.Fatalf("invariant violated on fallback: %+v", got)
	}
}

func TestPlan_FallbackCarriesMarkerAndTimelines(t *testing.T) {
	plan := &PlanGen{LLM: &scriptedClient{err: &llm.StatusError{Code: 502}}}
	got, err := plan.Run(context.Background(), "run a marathon", map[string]string{"timeline": "2 weeks"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !got.Fallback {
		t.Fatal("fallback plan must mark itself")
	}
	if got.EstimatedTimeline == "" || got.MinimumTimeline == "" {
		t.Fatalf("timeline fields must be non-empty: %+v", got)
	}
	if !strings.Contains(got.Summary, "run a marathon") {
		t.Fatalf("fallback summary should restate the goal: %q", got.Summary)
	}
}

func TestPlan_ContextAppearsInPrompt(t *testing.T) {
	client := &scriptedClient{err: &llm.StatusError{Code: 500}}
	plan := &PlanGen{LLM: client}
	_, err := plan.Run(context.Background(), "goal", map[string]string{"timeline": "2 weeks", "intensity": "Moderate pace"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(client.req.Prompt, "timeline: 2 weeks") || !strings.Contains(client.req.Prompt, "intensity: Moderate pace") {
		t.Fatal("plan prompt must carry the context lines")
	}
}

func TestSummary_TooVagueSentinel(t *testing.T) {
	summary := &Summary{LLM: &scriptedClient{text: `{"error":400}`}}
	if _, err := summary.Run(context.Background(), "do stuff"); !errors.Is(err, ErrGoalTooVague) {
		t.Fatalf("want ErrGoalTooVague, got %v", err)
	}
}

func TestSummary_ParseFailureSurfaces(t *testing.T) {
	summary := &Summary{LLM: &scriptedClient{text: "plain prose"}}
	if _, err := summary.Run(context.Background(), "goal"); !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("want ErrMalformedOutput, got %v", err)
	}
}
