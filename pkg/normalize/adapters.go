package normalize

import "github.com/dmitrymomot/formkit"

// Strings adapts a string pipeline to a formkit.Normalizer. Values of any
// other type pass through untouched, so the adapter is safe on mixed fields.
func Strings(transforms ...func(string) string) formkit.Normalizer {
	pipeline := Compose(transforms...)
	return func(v any) any {
		if s, ok := v.(string); ok {
			return pipeline(s)
		}
		return v
	}
}

// Numbers adapts a numeric pipeline to a formkit.Normalizer for values of
// type T. Other types pass through untouched.
func Numbers[T Numeric](transforms ...func(T) T) formkit.Normalizer {
	pipeline := Compose(transforms...)
	return func(v any) any {
		if n, ok := v.(T); ok {
			return pipeline(n)
		}
		return v
	}
}
