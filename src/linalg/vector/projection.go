package vector

import (
	"errors"
	"fmt"
)

// ComponentParallelTo returns the projection of v onto the direction of
// basis. When basis is the zero vector the target direction is undefined
// and the projection has no unique parallel component; that case fails
// with ErrNoUniqueParallelComponent rather than leaking the underlying
// normalization error.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	if len(v.coords) != len(basis.coords) {
		return Vector{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.coords), len(basis.coords))
	}
	unit, err := basis.Normalized()
	if err != nil {
		if errors.Is(err, ErrCannotNormalizeZeroVector) {
			return Vector{}, ErrNoUniqueParallelComponent
		}
		return Vector{}, err
	}
	weight, err := v.Dot(unit)
	if err != nil {
		return Vector{}, err
	}
	return unit.Scale(weight), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis, the
// part of v perpendicular to the basis direction. A zero basis fails with
// ErrNoUniqueOrthogonalComponent for the same reason as the parallel case.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	parallel, err := v.ComponentParallelTo(basis)
	if err != nil {
		if errors.Is(err, ErrNoUniqueParallelComponent) {
			return Vector{}, ErrNoUniqueOrthogonalComponent
		}
		return Vector{}, err
	}
	return v.Sub(parallel)
}
