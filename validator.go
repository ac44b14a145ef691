package formkit

import "fmt"

// Validator checks one field value and returns at most one finding. Nil means
// the value passed.
type Validator func(value any, f *Form) *Message

// BatchValidator checks one field value and appends any number of findings
// to out.
type BatchValidator func(value any, f *Form, out *Messages)

// FormValidator checks the whole form after every field validator has run,
// typically for cross-field rules. Findings it emits keep the Field they set;
// a blank Field marks a form-scope finding.
type FormValidator func(f *Form, out *Messages)

// Typed adapts a strongly typed check to a Validator. An absent (nil) field
// value presents as the zero T; any other dynamic type panics, since binding
// a check to a field of the wrong type is a wiring bug.
func Typed[T any](check func(value T, f *Form) *Message) Validator {
	return func(value any, f *Form) *Message {
		return check(typedValue[T](value), f)
	}
}

// TypedBatch adapts a strongly typed accumulating check to a BatchValidator.
func TypedBatch[T any](check func(value T, f *Form, out *Messages)) BatchValidator {
	return func(value any, f *Form, out *Messages) {
		check(typedValue[T](value), f, out)
	}
}

func typedValue[T any](value any) T {
	if value == nil {
		var zero T
		return zero
	}
	v, ok := value.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("formkit: validator expects %T, field holds %T", zero, value))
	}
	return v
}

// AddValidator registers a direct validator for the field. Within a field,
// validators run in registration order; across fields, in field registration
// order. A non-blank label becomes the field's friendly name unless one is
// already set. Unknown field references and nil validators panic.
func (f *Form) AddValidator(field, label string, v Validator) {
	if v == nil {
		panic("formkit: nil validator")
	}
	f.addCheck(field, label, func(value any, form *Form, out *Messages) {
		out.Add(v(value, form))
	})
}

// AddBatchValidator registers an accumulating validator for the field.
func (f *Form) AddBatchValidator(field, label string, v BatchValidator) {
	if v == nil {
		panic("formkit: nil validator")
	}
	f.addCheck(field, label, v)
}

func (f *Form) addCheck(field, label string, check BatchValidator) {
	fld := f.mustField(field)
	if label != "" {
		f.setLabelIfBlank(fld.name, label)
	}
	fld.checks = append(fld.checks, check)
}

// AddFormValidator registers a store-wide check run after all field
// validators.
func (f *Form) AddFormValidator(v FormValidator) {
	if v == nil {
		panic("formkit: nil validator")
	}
	f.formValidators = append(f.formValidators, v)
}

// Validate clears the accumulated messages and rebuilds them: every field's
// validators run in registration order, then the form validators. Findings
// with a blank Field emitted by field validators are stamped with the owning
// field. The result is also retained for the message queries and Save.
func (f *Form) Validate() Messages {
	f.messages = nil
	for _, name := range f.order {
		f.runChecks(f.fields[name], &f.messages)
	}
	for _, check := range f.formValidators {
		check(f, &f.messages)
	}
	f.log.Debug("form validated",
		"messages", len(f.messages),
		"errors", len(f.messages.Filter(SeverityError)))
	return f.Messages()
}

// ValidateField runs only the named field's validators and returns the
// findings. The form's accumulated messages are not touched.
func (f *Form) ValidateField(name string) Messages {
	fld := f.mustField(name)
	var out Messages
	f.runChecks(fld, &out)
	return out
}

func (f *Form) runChecks(fld *field, out *Messages) {
	if len(fld.checks) == 0 {
		return
	}
	value := fld.slot.value()
	for _, check := range fld.checks {
		start := len(*out)
		check(value, f, out)
		for i := start; i < len(*out); i++ {
			if (*out)[i].Field == "" {
				(*out)[i].Field = fld.name
			}
		}
	}
}

// Invalidate drops the accumulated messages without running validators.
func (f *Form) Invalidate() {
	f.messages = nil
}

// Messages returns a copy of the findings accumulated by the last Validate.
func (f *Form) Messages() Messages {
	out := make(Messages, len(f.messages))
	copy(out, f.messages)
	return out
}

// HasErrors reports whether the accumulated messages contain an error.
func (f *Form) HasErrors() bool { return f.messages.HasErrors() }

// HasWarnings reports whether the accumulated messages contain a warning.
func (f *Form) HasWarnings() bool { return f.messages.HasWarnings() }

// HasInfos reports whether the accumulated messages contain an info.
func (f *Form) HasInfos() bool { return f.messages.HasInfos() }

// NoErrors reports the absence of error findings.
func (f *Form) NoErrors() bool { return !f.HasErrors() }

// NoWarnings reports the absence of warning findings.
func (f *Form) NoWarnings() bool { return !f.HasWarnings() }

// NoInfos reports the absence of info findings.
func (f *Form) NoInfos() bool { return !f.HasInfos() }

// ValidateOnChange re-validates the field whenever its editable value
// changes and delivers the findings through the form's dispatcher. The
// returned cancel detaches the subscription.
func (f *Form) ValidateOnChange(name string, fn func(Messages)) (cancel func()) {
	if fn == nil {
		panic("formkit: nil change callback")
	}
	fld := f.mustField(name)
	return fld.slot.watch(func() {
		msgs := f.ValidateField(fld.name)
		f.dispatch(func() { fn(msgs) })
	})
}
