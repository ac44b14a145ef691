package flow

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formkit"
)

var (
	ErrNilForm     = errors.New("flow requires a form")
	ErrNoSteps     = errors.New("flow requires at least one step")
	ErrInvalidStep = errors.New("invalid step")
	ErrUnknownStep = errors.New("unknown step")
	ErrNotVisited  = errors.New("step not visited yet")
	ErrLastStep    = errors.New("already at the last step")
	ErrNotAtEnd    = errors.New("flow has not reached the last step")
)

// ErrStepBlocked indicates error-severity validation findings stopped the flow
// from leaving a step. Messages carries everything the pass produced, warnings
// and infos included.
type ErrStepBlocked struct {
	Step     string
	Messages formkit.Messages
}

func (e *ErrStepBlocked) Error() string {
	return fmt.Sprintf("step '%s' blocked by %d validation finding(s)", e.Step, len(e.Messages))
}

// ErrStepRejected indicates the step's guard vetoed leaving it.
type ErrStepRejected struct {
	Step string
}

func (e *ErrStepRejected) Error() string {
	return fmt.Sprintf("step '%s' rejected by its guard", e.Step)
}

func IsStepBlocked(err error) bool {
	var e *ErrStepBlocked
	return errors.As(err, &e)
}

func IsStepRejected(err error) bool {
	var e *ErrStepRejected
	return errors.As(err, &e)
}
