package rules

import "github.com/dmitrymomot/formkit"

// MustBeTrue fails unless the value is true. Typical for consent checkboxes.
func MustBeTrue() formkit.Validator {
	return formkit.Typed(func(value bool, _ *formkit.Form) *formkit.Message {
		if !value {
			return formkit.NewError("%{field} must be accepted").
				WithCode("validation.accepted")
		}
		return nil
	})
}
