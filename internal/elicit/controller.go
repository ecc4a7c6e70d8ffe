// Package elicit models the multi-round clarification flow as an explicit
// state machine, independent of any rendering or transport concern.
//
// Rounds run primary (5 questions) -> secondary (3) -> tertiary (3). After
// the last question of the primary and secondary batches the user chooses
// between proceeding to plan generation and requesting the next batch;
// tertiary's only exit is plan-ready.
package elicit

import (
	"errors"
	"fmt"
	"strings"
)

// Phase is one elicitation round.
type Phase string

const (
	PhasePrimary   Phase = "primary"
	PhaseSecondary Phase = "secondary"
	PhaseTertiary  Phase = "tertiary"
)

// Kind tags the state variant.
type Kind string

const (
	// KindAsking: a question from the current batch is on screen.
	KindAsking Kind = "asking"
	// KindAwaitingChoice: the batch is exhausted; the user picks between
	// plan-ready and the next round.
	KindAwaitingChoice Kind = "awaiting-choice"
	// KindPlanReady: terminal; elicitation is over.
	KindPlanReady Kind = "plan-ready"
)

// TotalQuestions is the fixed denominator for progress: 5 primary +
// 3 secondary + 3 tertiary, regardless of skips.
const TotalQuestions = 11

var (
	ErrTerminal      = errors.New("elicit: no transitions from plan-ready")
	ErrBadEvent      = errors.New("elicit: event not valid in current state")
	ErrEmptyAnswer   = errors.New("elicit: answer is empty")
	ErrAtBatchStart  = errors.New("elicit: already at first question of batch")
	ErrBadBatch      = errors.New("elicit: question batch has wrong size")
	ErrNoMoreRounds  = errors.New("elicit: tertiary is the final round")
	ErrBatchRequired = errors.New("elicit: next-phase batch is required")
)

// State is the full controller state. Values are treated as immutable;
// Transition returns a new State. Answers maps question text to answer and
// never contains entries for skipped questions.
type State struct {
	Kind    Kind
	Phase   Phase
	Index   int
	Batch   []string
	Answers map[string]string
}

// Event is one user action or completed generation result.
type Event interface{ isEvent() }

// Answer records a non-empty answer for the current question.
type Answer struct{ Text string }

// Skip advances past the current question without recording anything.
type Skip struct{}

// Back moves one question back within the current batch.
type Back struct{}

// Proceed opts into plan-ready at a choice point, keeping whatever answers
// exist so far.
type Proceed struct{}

// NextRound enters the next phase with a freshly generated question batch.
type NextRound struct{ Batch []string }

func (Answer) isEvent()    {}
func (Skip) isEvent()      {}
func (Back) isEvent()      {}
func (Proceed) isEvent()   {}
func (NextRound) isEvent() {}

// New returns the initial state for a primary question batch, which must
// contain exactly 5 questions.
func New(primary []string) (State, error) {
	if len(primary) != 5 {
		return State{}, fmt.Errorf("%w: want 5 primary questions, got %d", ErrBadBatch, len(primary))
	}
	return State{
		Kind:    KindAsking,
		Phase:   PhasePrimary,
		Batch:   primary,
		Answers: map[string]string{},
	}, nil
}

// Transition applies one event. Invalid (state, event) pairs return an error
// and the unchanged state.
func Transition(s State, ev Event) (State, error) {
	if s.Kind == KindPlanReady {
		return s, ErrTerminal
	}
	switch e := ev.(type) {
	case Answer:
		if s.Kind != KindAsking {
			return s, ErrBadEvent
		}
		text := strings.TrimSpace(e.Text)
		if text == "" {
			return s, ErrEmptyAnswer
		}
		next := s.withAnswer(s.Batch[s.Index], text)
		return next.advance(), nil
	case Skip:
		if s.Kind != KindAsking {
			return s, ErrBadEvent
		}
		return s.advance(), nil
	case Back:
		if s.Kind != KindAsking {
			return s, ErrBadEvent
		}
		if s.Index == 0 {
			return s, ErrAtBatchStart
		}
		s.Index--
		return s, nil
	case Proceed:
		if s.Kind != KindAwaitingChoice {
			return s, ErrBadEvent
		}
		s.Kind = KindPlanReady
		s.Batch = nil
		s.Index = 0
		return s, nil
	case NextRound:
		if s.Kind != KindAwaitingChoice {
			return s, ErrBadEvent
		}
		if s.Phase == PhaseTertiary {
			return s, ErrNoMoreRounds
		}
		if len(e.Batch) == 0 {
			return s, ErrBatchRequired
		}
		if len(e.Batch) != 3 {
			return s, fmt.Errorf("%w: want 3 follow-up questions, got %d", ErrBadBatch, len(e.Batch))
		}
		s.Phase = nextPhase(s.Phase)
		s.Kind = KindAsking
		s.Batch = e.Batch
		s.Index = 0
		return s, nil
	default:
		return s, ErrBadEvent
	}
}

// advance moves past the current question: within the batch it bumps the
// index; at the batch end primary/secondary reach the choice point and
// tertiary goes straight to plan-ready.
func (s State) advance() State {
	if s.Index < len(s.Batch)-1 {
		s.Index++
		return s
	}
	if s.Phase == PhaseTertiary {
		s.Kind = KindPlanReady
		s.Batch = nil
		s.Index = 0
		return s
	}
	s.Kind = KindAwaitingChoice
	return s
}

func (s State) withAnswer(question, answer string) State {
	answers := make(map[string]string, len(s.Answers)+1)
	for q, a := range s.Answers {
		answers[q] = a
	}
	answers[question] = answer
	s.Answers = answers
	return s
}

func nextPhase(p Phase) Phase {
	switch p {
	case PhasePrimary:
		return PhaseSecondary
	case PhaseSecondary:
		return PhaseTertiary
	default:
		return PhaseTertiary
	}
}

// Question returns the question currently on screen.
func (s State) Question() (string, bool) {
	if s.Kind != KindAsking || s.Index >= len(s.Batch) {
		return "", false
	}
	return s.Batch[s.Index], true
}

// Progress is the percentage of the fixed 11-question total that has been
// answered. It is monotonically non-decreasing and reaches 100 exactly when
// the controller is plan-ready.
func (s State) Progress() float64 {
	if s.Kind == KindPlanReady {
		return 100
	}
	return float64(len(s.Answers)) / TotalQuestions * 100
}

// Done reports whether elicitation has finished.
func (s State) Done() bool { return s.Kind == KindPlanReady }

// StatusText names the plan depth reached by the current phase.
func (s State) StatusText() string {
	switch s.Phase {
	case PhaseSecondary:
		return "Specific Plan"
	case PhaseTertiary:
		return "Foolproof Plan"
	default:
		return "General Plan"
	}
}
