package binder

import "errors"

// Common binding errors
var (
	ErrNotStructPointer = errors.New("target must be a non-nil struct pointer")
	ErrUnsupportedType  = errors.New("unsupported field type")
	ErrUnknownField     = errors.New("unknown field")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrInvalidValue     = errors.New("invalid value")
)
