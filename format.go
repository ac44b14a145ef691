package formkit

import (
	"fmt"
	"regexp"
)

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// SetLabel assigns a friendly name to a field reference, overwriting any
// previous one. An empty label clears the entry so Label falls back again.
// References need not be registered fields.
func (f *Form) SetLabel(name, label string) {
	key := f.labelKey(name)
	if label == "" {
		delete(f.labels, key)
		return
	}
	f.labels[key] = label
}

// SetLabels merges a batch of friendly names, overwriting existing entries.
func (f *Form) SetLabels(labels map[string]string) {
	for name, label := range labels {
		f.SetLabel(name, label)
	}
}

// setLabelIfBlank records a label only when none exists yet. Validator
// registration uses it, so the first non-blank label offered for a field
// wins.
func (f *Form) setLabelIfBlank(name, label string) {
	key := f.labelKey(name)
	if _, ok := f.labels[key]; !ok {
		f.labels[key] = label
	}
}

// labelKey stores labels under the canonical name when the reference
// resolves, so a label set via an alias is found via the key and vice versa.
func (f *Form) labelKey(name string) string {
	if canonical, ok := f.Canonical(name); ok {
		return canonical
	}
	return name
}

// Label returns the friendly name for a field reference: the explicit label
// when set, then the fallback derivation, then the reference itself. Pure
// and idempotent.
func (f *Form) Label(name string) string {
	if label, ok := f.labels[f.labelKey(name)]; ok {
		return label
	}
	if f.labelFallback != nil {
		if label := f.labelFallback(name); label != "" {
			return label
		}
	}
	return name
}

// Format renders a message's text at query time. Placeholders in the %{name}
// form resolve from the message's Values first, then as field references:
// %{field} names the owning field, any other placeholder matching a
// registered field or label substitutes that field's friendly name.
// Unresolved placeholders stay in place. The stored message is not modified.
func (f *Form) Format(m Message) string {
	return paramRegex.ReplaceAllStringFunc(m.Text, func(match string) string {
		// Extract parameter name
		name := match[2 : len(match)-1]
		if v, ok := m.Values[name]; ok {
			return fmt.Sprintf("%v", v)
		}
		if name == "field" {
			if m.Field == "" {
				return match
			}
			return f.Label(m.Field)
		}
		if f.Has(name) {
			return f.Label(name)
		}
		if label, ok := f.labels[name]; ok {
			return label
		}
		// Keep original placeholder if parameter not found
		return match
	})
}
