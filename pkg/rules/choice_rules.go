package rules

import "github.com/dmitrymomot/formkit"

// OneOf fails when the value is not among the allowed ones.
func OneOf[T comparable](allowed ...T) formkit.Validator {
	return formkit.Typed(func(value T, _ *formkit.Form) *formkit.Message {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return formkit.NewError("%{field} must be one of: %{allowed}").
			WithCode("validation.one_of").
			WithValues(map[string]any{"allowed": allowed})
	})
}

// NoneOf fails when the value matches one of the forbidden ones.
func NoneOf[T comparable](forbidden ...T) formkit.Validator {
	return formkit.Typed(func(value T, _ *formkit.Form) *formkit.Message {
		for _, f := range forbidden {
			if value == f {
				return formkit.NewError("%{field} must not be one of: %{forbidden}").
					WithCode("validation.none_of").
					WithValues(map[string]any{"forbidden": forbidden})
			}
		}
		return nil
	})
}
