package normalize

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts a string to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts a string to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Squish trims the string and collapses every internal whitespace run into a
// single space.
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl removes control characters, keeping printable text and
// ordinary whitespace.
func StripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaxRunes truncates the string to at most n characters.
func MaxRunes(n int) func(string) string {
	return func(s string) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	}
}
