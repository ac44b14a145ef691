package labels

import "errors"

var (
	ErrLoadCancelled = errors.New("loading labels cancelled")
	ErrFileRead      = errors.New("failed to read label catalog")
	ErrDirRead       = errors.New("failed to read label directory")
	ErrParse         = errors.New("failed to parse label catalog")
)
