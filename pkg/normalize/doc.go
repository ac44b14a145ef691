// Package normalize provides input normalization pipelines for formkit
// fields: small value transforms, generic composition helpers, and adapters
// that turn a pipeline into a formkit.Normalizer.
//
// Transforms without parameters are plain func(T) T values; parameterized
// ones are constructors returning such a func, so both compose the same way.
//
// # Usage
//
//	f := formkit.New()
//	f.Add("email", "", formkit.WithNormalizers(
//		normalize.Strings(normalize.Trim, normalize.Lower),
//	))
//	f.Add("quantity", 1, formkit.WithNormalizers(
//		normalize.Numbers(normalize.Clamp(1, 99)),
//	))
//
// Normalizers run on values entering the editable layer through Add, Set,
// and SetItems; collection fields normalize each item.
package normalize
