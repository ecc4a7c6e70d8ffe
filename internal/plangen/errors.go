package plangen

import "errors"

var (
	// ErrInvalidInput reports a missing or empty goal (or other required
	// request field). Always surfaced, never retried.
	ErrInvalidInput = errors.New("plangen: invalid input")

	// ErrMalformedOutput reports completion text that could not be parsed
	// into the expected JSON value.
	ErrMalformedOutput = errors.New("plangen: malformed model output")

	// ErrValidation reports a parsed value that does not match the task's
	// required shape.
	ErrValidation = errors.New("plangen: output failed shape validation")

	// ErrGoalTooVague is returned by the summary task when the service
	// reports it cannot summarize the goal.
	ErrGoalTooVague = errors.New("plangen: goal too vague to summarize")
)
