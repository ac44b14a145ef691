// Package rules provides ready-made validator constructors for formkit
// fields, grouped by value family: strings, numbers, formats, choices,
// collections, and booleans.
//
// Every constructor returns a formkit.Validator closure over its parameters.
// Findings carry %{name} placeholder templates plus a Values map, so
// Form.Format can render friendly text at query time while the stored
// message stays machine-readable through its Code.
//
// # Usage
//
//	f := formkit.New()
//	f.Add("email", "")
//	f.Add("age", 0)
//	f.AddValidator("email", "Email", rules.Required())
//	f.AddValidator("email", "", rules.Email())
//	f.AddValidator("age", "Age", rules.Between(18, 120))
//
// # Decorators
//
// AsWarning, AsInfo, WithCode, and Optional wrap any validator, including
// custom ones:
//
//	f.AddValidator("website", "Website", rules.Optional(rules.URL()))
//	f.AddValidator("nickname", "Nickname", rules.AsWarning(rules.MaxLen(12)))
//
// The package is stateless; constructors can be shared across forms and
// goroutines.
package rules
