package rules

import (
	"strings"

	"github.com/dmitrymomot/formkit"
)

// AsWarning downgrades a validator's findings to warning severity, so they
// inform without blocking Save.
func AsWarning(v formkit.Validator) formkit.Validator {
	return remap(v, formkit.SeverityWarning)
}

// AsInfo downgrades a validator's findings to info severity.
func AsInfo(v formkit.Validator) formkit.Validator {
	return remap(v, formkit.SeverityInfo)
}

func remap(v formkit.Validator, severity formkit.Severity) formkit.Validator {
	return func(value any, f *formkit.Form) *formkit.Message {
		m := v(value, f)
		if m != nil {
			m.Severity = severity
		}
		return m
	}
}

// WithCode overrides the code on a validator's findings.
func WithCode(v formkit.Validator, code string) formkit.Validator {
	return func(value any, f *formkit.Form) *formkit.Message {
		m := v(value, f)
		if m != nil {
			m.Code = code
		}
		return m
	}
}

// Optional passes empty values through untouched and defers to the wrapped
// validator otherwise. Empty covers nil, blank strings, and empty
// collections.
func Optional(v formkit.Validator) formkit.Validator {
	return func(value any, f *formkit.Form) *formkit.Message {
		if isEmpty(value) {
			return nil
		}
		return v(value, f)
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
