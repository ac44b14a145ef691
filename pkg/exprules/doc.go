// Package exprules builds formkit validators from boolean expressions, so
// validation rules can live in configuration instead of code.
//
// Two engines are provided: Expr, backed by github.com/expr-lang/expr, and
// CEL, backed by github.com/google/cel-go. Both compile an expression once
// and evaluate it per validation pass against an environment of three names:
//
//   - value: the field's editable value
//   - fields: map of every field's editable value by canonical name
//   - now: the current time
//
// An expression that evaluates to true passes; false emits the constructor's
// message. Compilation failures are returned as errors; evaluation failures
// at validation time surface as error-severity findings, keeping validation
// an outcome rather than a thrown failure.
//
// # Usage
//
//	adult, err := exprules.Error(exprules.Expr(), "value >= 18", "%{field} must be an adult age")
//	if err != nil {
//		return err
//	}
//	f.AddValidator("age", "Age", adult)
//
//	matching, err := exprules.Error(exprules.CEL(), "value == fields.password", "passwords must match")
//	if err != nil {
//		return err
//	}
//	f.AddValidator("confirm", "Confirmation", matching)
//
// The Expr engine tolerates unknown names (they resolve to nil); the CEL
// engine declares exactly the three environment names and rejects others at
// compile time.
package exprules
