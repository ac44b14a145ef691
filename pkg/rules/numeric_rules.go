package rules

import "github.com/dmitrymomot/formkit"

// Numeric covers the built-in number types accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MinNum fails when the value is below min.
func MinNum[T Numeric](min T) formkit.Validator {
	return formkit.Typed(func(value T, _ *formkit.Form) *formkit.Message {
		if value < min {
			return formkit.NewError("%{field} must be at least %{min}").
				WithCode("validation.min").
				WithValues(map[string]any{"min": min})
		}
		return nil
	})
}

// MaxNum fails when the value is above max.
func MaxNum[T Numeric](max T) formkit.Validator {
	return formkit.Typed(func(value T, _ *formkit.Form) *formkit.Message {
		if value > max {
			return formkit.NewError("%{field} must be at most %{max}").
				WithCode("validation.max").
				WithValues(map[string]any{"max": max})
		}
		return nil
	})
}

// Between fails when the value falls outside the inclusive [min, max] range.
func Between[T Numeric](min, max T) formkit.Validator {
	return formkit.Typed(func(value T, _ *formkit.Form) *formkit.Message {
		if value < min || value > max {
			return formkit.NewError("%{field} must be between %{min} and %{max}").
				WithCode("validation.between").
				WithValues(map[string]any{"min": min, "max": max})
		}
		return nil
	})
}

// Positive fails when the value is zero or negative.
func Positive[T Numeric]() formkit.Validator {
	return formkit.Typed(func(value T, _ *formkit.Form) *formkit.Message {
		var zero T
		if value <= zero {
			return formkit.NewError("%{field} must be positive").
				WithCode("validation.positive")
		}
		return nil
	})
}
