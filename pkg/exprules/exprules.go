package exprules

import (
	"time"

	"github.com/dmitrymomot/formkit"
)

// Engine compiles a boolean expression into a reusable program.
type Engine interface {
	Compile(expression string) (Program, error)
}

// Program is a compiled expression ready for repeated evaluation.
type Program interface {
	Eval(env map[string]any) (bool, error)
}

// Error builds a validator that emits an error-severity message when the
// expression evaluates to false. Compilation happens once, up front.
func Error(engine Engine, expression, text string) (formkit.Validator, error) {
	return build(engine, expression, text, formkit.SeverityError)
}

// Warn builds a validator that emits a warning-severity message when the
// expression evaluates to false.
func Warn(engine Engine, expression, text string) (formkit.Validator, error) {
	return build(engine, expression, text, formkit.SeverityWarning)
}

// Info builds a validator that emits an info-severity message when the
// expression evaluates to false.
func Info(engine Engine, expression, text string) (formkit.Validator, error) {
	return build(engine, expression, text, formkit.SeverityInfo)
}

func build(engine Engine, expression, text string, severity formkit.Severity) (formkit.Validator, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	program, err := engine.Compile(expression)
	if err != nil {
		return nil, err
	}
	return func(value any, f *formkit.Form) *formkit.Message {
		ok, err := program.Eval(Env(value, f))
		if err != nil {
			// Evaluation failures must not pass silently, so they are
			// reported as error findings regardless of the rule's severity.
			return formkit.NewError("%{field} could not be checked: %{error}").
				WithCode("validation.expression").
				WithValues(map[string]any{"expression": expression, "error": err.Error()})
		}
		if ok {
			return nil
		}
		m := &formkit.Message{Severity: severity, Text: text}
		return m.WithCode("validation.expression").
			WithValues(map[string]any{"expression": expression})
	}, nil
}

// Env assembles the evaluation environment for a field value: the value
// itself, a snapshot of every field's editable value, and the current time.
func Env(value any, f *formkit.Form) map[string]any {
	fields := map[string]any{}
	if f != nil {
		for _, name := range f.Fields() {
			fields[name] = f.Value(name)
		}
	}
	return map[string]any{
		"value":  value,
		"fields": fields,
		"now":    time.Now(),
	}
}
