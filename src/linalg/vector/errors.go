package vector

import (
	"errors"
)

var (
	ErrInvalidInput                = errors.New("invalid input")
	ErrDimensionMismatch           = errors.New("vectors must have equal dimension")
	ErrCannotNormalizeZeroVector   = errors.New("cannot normalize the zero vector")
	ErrNoUniqueParallelComponent   = errors.New("no unique parallel component")
	ErrNoUniqueOrthogonalComponent = errors.New("no unique orthogonal component")
)
