package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit"
)

// Required fails when the string is empty or whitespace-only.
func Required() formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if strings.TrimSpace(value) == "" {
			return formkit.NewError("%{field} is required").
				WithCode("validation.required")
		}
		return nil
	})
}

// MinLen fails when the string is shorter than min characters. Lengths count
// runes, not bytes.
func MinLen(min int) formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if utf8.RuneCountInString(value) < min {
			return formkit.NewError("%{field} must be at least %{min} characters long").
				WithCode("validation.min_length").
				WithValues(map[string]any{"min": min})
		}
		return nil
	})
}

// MaxLen fails when the string is longer than max characters.
func MaxLen(max int) formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if utf8.RuneCountInString(value) > max {
			return formkit.NewError("%{field} must be at most %{max} characters long").
				WithCode("validation.max_length").
				WithValues(map[string]any{"max": max})
		}
		return nil
	})
}

// Len fails when the string is not exactly n characters long.
func Len(n int) formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if utf8.RuneCountInString(value) != n {
			return formkit.NewError("%{field} must be exactly %{length} characters long").
				WithCode("validation.exact_length").
				WithValues(map[string]any{"length": n})
		}
		return nil
	})
}

// Match fails when the string does not match the pattern. An invalid pattern
// panics at construction time.
func Match(pattern string) formkit.Validator {
	re := regexp.MustCompile(pattern)
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if !re.MatchString(value) {
			return formkit.NewError("%{field} has an invalid format").
				WithCode("validation.pattern").
				WithValues(map[string]any{"pattern": pattern})
		}
		return nil
	})
}
