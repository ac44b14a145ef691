package exprules

import "errors"

var (
	// ErrNilEngine is returned when a validator constructor receives a nil engine.
	ErrNilEngine = errors.New("expression engine is nil")
	// ErrEmptyExpression is returned when an empty expression is compiled.
	ErrEmptyExpression = errors.New("expression must not be empty")
	// ErrCompile wraps engine-specific compilation failures.
	ErrCompile = errors.New("failed to compile expression")
)
