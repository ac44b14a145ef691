package labels

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordBoundaryRegex = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Humanize derives a display label from a raw field name: camelCase,
// snake_case, and kebab-case all become spaced Title Case. Identifier keys
// drop their "#id" suffix and dotted references label their leaf segment.
// Names that reduce to nothing are returned unchanged. Suitable as a
// formkit.WithLabelFallback derivation.
func Humanize(field string) string {
	s := field
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	s = wordBoundaryRegex.ReplaceAllString(s, "$1 $2")
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return field
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}
