package vector

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AngleWith returns the angle between v and u in radians, computed as the
// arccosine of the dot product of their normalizations. The cosine is
// rounded to a few decimal places first so float64 noise cannot push it
// outside the acos domain. Fails with ErrCannotNormalizeZeroVector when
// either vector is zero: the angle to a directionless vector is undefined.
func (v Vector) AngleWith(u Vector) (decimal.Decimal, error) {
	if len(v.coords) != len(u.coords) {
		return decimal.Decimal{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.coords), len(u.coords))
	}
	nv, err := v.Normalized()
	if err != nil {
		return decimal.Decimal{}, err
	}
	nu, err := u.Normalized()
	if err != nil {
		return decimal.Decimal{}, err
	}
	cos, err := nv.Dot(nu)
	if err != nil {
		return decimal.Decimal{}, err
	}
	theta := math.Acos(cos.Round(cosinePlaces).InexactFloat64())
	return decimal.NewFromFloat(theta), nil
}

// AngleWithDegrees is AngleWith converted to degrees.
func (v Vector) AngleWithDegrees(u Vector) (decimal.Decimal, error) {
	theta, err := v.AngleWith(u)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromFloat(theta.InexactFloat64() * 180 / math.Pi), nil
}

// IsParallelTo reports whether v and u point along the same line. The zero
// vector is parallel to everything; otherwise the angle between them must
// be within DefaultTolerance of 0 or pi.
func (v Vector) IsParallelTo(u Vector) (bool, error) {
	return v.IsParallelToWithin(u, DefaultTolerance)
}

// IsParallelToWithin is IsParallelTo with an explicit angular tolerance.
func (v Vector) IsParallelToWithin(u Vector, tol decimal.Decimal) (bool, error) {
	if len(v.coords) != len(u.coords) {
		return false, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.coords), len(u.coords))
	}
	if v.IsZeroWithin(tol) || u.IsZeroWithin(tol) {
		return true, nil
	}
	theta, err := v.AngleWith(u)
	if err != nil {
		return false, err
	}
	pi := decimal.NewFromFloat(math.Pi)
	return theta.Abs().Cmp(tol) < 0 || pi.Sub(theta).Abs().Cmp(tol) < 0, nil
}

// IsOrthogonalTo reports whether the dot product of v and u is zero within
// DefaultTolerance.
func (v Vector) IsOrthogonalTo(u Vector) (bool, error) {
	return v.IsOrthogonalToWithin(u, DefaultTolerance)
}

// IsOrthogonalToWithin is IsOrthogonalTo with an explicit tolerance.
func (v Vector) IsOrthogonalToWithin(u Vector, tol decimal.Decimal) (bool, error) {
	dot, err := v.Dot(u)
	if err != nil {
		return false, err
	}
	return dot.Abs().Cmp(tol) < 0, nil
}
