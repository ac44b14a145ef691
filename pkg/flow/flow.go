package flow

import (
	"fmt"

	"github.com/dmitrymomot/formkit"
)

// Guard evaluates whether the flow may leave a step once its fields validate.
type Guard func(f *formkit.Form) bool

// Step names a stage of the flow and the form fields it owns. Fields may be
// referenced by name, key, or id; an empty Fields list means the step gates on
// its guard alone.
type Step struct {
	Name   string
	Fields []string
	Guard  Guard
}

// Flow walks a form through an ordered sequence of steps. The first step is
// current, and visited, from the start.
type Flow struct {
	form    *formkit.Form
	steps   []Step
	index   int
	visited map[int]bool
}

// New builds a flow over f. Step names must be unique and non-empty, and every
// listed field must already be registered on the form.
func New(f *formkit.Form, steps ...Step) (*Flow, error) {
	if f == nil {
		return nil, ErrNilForm
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.Name == "" {
			return nil, fmt.Errorf("%w: step %d has no name", ErrInvalidStep, i)
		}
		if seen[step.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidStep, step.Name)
		}
		seen[step.Name] = true
		for _, field := range step.Fields {
			if _, ok := f.Canonical(field); !ok {
				return nil, fmt.Errorf("%w: step %q references unregistered field %q", ErrInvalidStep, step.Name, field)
			}
		}
	}

	return &Flow{
		form:    f,
		steps:   steps,
		visited: map[int]bool{0: true},
	}, nil
}

// Current returns the step the flow is on.
func (w *Flow) Current() Step {
	return w.steps[w.index]
}

// Index returns the zero-based position of the current step.
func (w *Flow) Index() int {
	return w.index
}

// Steps returns the step names in order.
func (w *Flow) Steps() []string {
	names := make([]string, len(w.steps))
	for i, step := range w.steps {
		names[i] = step.Name
	}
	return names
}

// Next validates the current step's fields and advances past it. Error
// findings return ErrStepBlocked, a guard veto returns ErrStepRejected, and
// warnings or infos pass through. The step reached is marked visited.
func (w *Flow) Next() error {
	if w.index == len(w.steps)-1 {
		return ErrLastStep
	}
	if err := w.leave(w.steps[w.index]); err != nil {
		return err
	}
	w.index++
	w.visited[w.index] = true
	return nil
}

// CanNext reports whether Next would advance right now.
func (w *Flow) CanNext() bool {
	if w.index == len(w.steps)-1 {
		return false
	}
	return w.leave(w.steps[w.index]) == nil
}

// Back returns to the previous step. It never validates; on the first step it
// does nothing.
func (w *Flow) Back() {
	if w.index > 0 {
		w.index--
	}
}

// Jump moves directly to a previously visited step, in either direction,
// without validating. Unvisited steps must be reached through Next.
func (w *Flow) Jump(name string) error {
	for i, step := range w.steps {
		if step.Name != name {
			continue
		}
		if !w.visited[i] {
			return fmt.Errorf("%w: %s", ErrNotVisited, name)
		}
		w.index = i
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownStep, name)
}

// Finish validates the whole form from the last step and commits it, the same
// outcome as Form.Save. The last step's guard is consulted after validation.
func (w *Flow) Finish() error {
	if w.index != len(w.steps)-1 {
		return ErrNotAtEnd
	}
	step := w.steps[w.index]
	if msgs := w.form.Validate(); msgs.HasErrors() {
		return &ErrStepBlocked{Step: step.Name, Messages: msgs}
	}
	if step.Guard != nil && !step.Guard(w.form) {
		return &ErrStepRejected{Step: step.Name}
	}
	w.form.ForceSave()
	return nil
}

// Reset returns the flow to its first step and forgets visit history. Form
// data is untouched.
func (w *Flow) Reset() {
	w.index = 0
	w.visited = map[int]bool{0: true}
}

// leave runs the step's field checks and guard, the gate for moving forward.
func (w *Flow) leave(step Step) error {
	var msgs formkit.Messages
	for _, field := range step.Fields {
		msgs = append(msgs, w.form.ValidateField(field)...)
	}
	if msgs.HasErrors() {
		return &ErrStepBlocked{Step: step.Name, Messages: msgs}
	}
	if step.Guard != nil && !step.Guard(w.form) {
		return &ErrStepRejected{Step: step.Name}
	}
	return nil
}
