// Package vector implements an immutable, arbitrary-dimension Euclidean
// vector over exact decimal coordinates.
//
// Coordinates are stored as decimal values rather than float64 so that
// chained arithmetic does not accumulate binary round-off; the only inexact
// steps in the package are the transcendental calls in Magnitude and
// AngleWith, which go through float64 and convert back.
package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Vector is an ordered, fixed-length tuple of decimal coordinates. The zero
// value is not usable; construct with New, NewFromFloats or NewFromStrings.
// A Vector is never mutated after construction, so instances are safe to
// share across goroutines.
type Vector struct {
	coords []decimal.Decimal
}

// New builds a Vector from decimal coordinates. At least one coordinate is
// required: a dimensionless vector has no magnitude and every derived
// operation on it would be degenerate.
func New(coords ...decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%w: vector needs at least one coordinate", ErrInvalidInput)
	}
	c := make([]decimal.Decimal, len(coords))
	copy(c, coords)
	return Vector{coords: c}, nil
}

// NewFromFloats builds a Vector from float64 coordinates, converting each
// through its shortest exact decimal representation. NaN and infinite
// inputs are rejected.
func NewFromFloats(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%w: vector needs at least one coordinate", ErrInvalidInput)
	}
	c := make([]decimal.Decimal, len(coords))
	for i, f := range coords {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Vector{}, fmt.Errorf("%w: coordinate %d is not a finite number", ErrInvalidInput, i)
		}
		c[i] = decimal.NewFromFloat(f)
	}
	return Vector{coords: c}, nil
}

// NewFromStrings builds a Vector from decimal literals such as "8.218".
// This path carries no float conversion at all and reproduces reference
// data bit for bit.
func NewFromStrings(coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%w: vector needs at least one coordinate", ErrInvalidInput)
	}
	c := make([]decimal.Decimal, len(coords))
	for i, s := range coords {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: coordinate %d: %q is not a number", ErrInvalidInput, i, s)
		}
		c[i] = d
	}
	return Vector{coords: c}, nil
}

// Dim returns the number of dimensions.
func (v Vector) Dim() int {
	return len(v.coords)
}

// Coordinates returns a copy of the coordinate tuple.
func (v Vector) Coordinates() []decimal.Decimal {
	c := make([]decimal.Decimal, len(v.coords))
	copy(c, v.coords)
	return c
}

// String renders the vector as "[c0, c1, ..., cn]" with each coordinate in
// its natural decimal form.
func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal reports whether u has the same dimension and exactly equal
// coordinates. Equality is exact decimal equality, not tolerance-based.
func (v Vector) Equal(u Vector) bool {
	if len(v.coords) != len(u.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(u.coords[i]) {
			return false
		}
	}
	return true
}

// Add returns the elementwise sum of v and u.
func (v Vector) Add(u Vector) (Vector, error) {
	if len(v.coords) != len(u.coords) {
		return Vector{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.coords), len(u.coords))
	}
	c := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		c[i] = v.coords[i].Add(u.coords[i])
	}
	return Vector{coords: c}, nil
}

// Sub returns the elementwise difference of v and u.
func (v Vector) Sub(u Vector) (Vector, error) {
	if len(v.coords) != len(u.coords) {
		return Vector{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.coords), len(u.coords))
	}
	c := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		c[i] = v.coords[i].Sub(u.coords[i])
	}
	return Vector{coords: c}, nil
}

// AddScalar adds s to every coordinate.
func (v Vector) AddScalar(s decimal.Decimal) Vector {
	c := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		c[i] = v.coords[i].Add(s)
	}
	return Vector{coords: c}
}

// SubScalar subtracts s from every coordinate.
func (v Vector) SubScalar(s decimal.Decimal) Vector {
	c := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		c[i] = v.coords[i].Sub(s)
	}
	return Vector{coords: c}
}

// Scale multiplies every coordinate by s.
func (v Vector) Scale(s decimal.Decimal) Vector {
	c := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		c[i] = v.coords[i].Mul(s)
	}
	return Vector{coords: c}
}

// Neg returns the vector with every coordinate negated.
func (v Vector) Neg() Vector {
	c := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		c[i] = v.coords[i].Neg()
	}
	return Vector{coords: c}
}

// Dot returns the sum of elementwise products of v and u.
func (v Vector) Dot(u Vector) (decimal.Decimal, error) {
	if len(v.coords) != len(u.coords) {
		return decimal.Decimal{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.coords), len(u.coords))
	}
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(u.coords[i]))
	}
	return sum, nil
}

// Magnitude returns the Euclidean norm. The sum of squares is exact; the
// square root is taken in float64, the same precision loss the decimal
// representation cannot avoid for irrational roots.
func (v Vector) Magnitude() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range v.coords {
		sum = sum.Add(c.Mul(c))
	}
	return decimal.NewFromFloat(math.Sqrt(sum.InexactFloat64()))
}

// IsZero reports whether the magnitude is below DefaultTolerance.
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(DefaultTolerance)
}

// IsZeroWithin reports whether the magnitude is strictly below tol.
func (v Vector) IsZeroWithin(tol decimal.Decimal) bool {
	return v.Magnitude().Cmp(tol) < 0
}

// Normalized returns the unit vector in the direction of v. Fails with
// ErrCannotNormalizeZeroVector when the magnitude is exactly zero, since a
// zero vector has no direction.
func (v Vector) Normalized() (Vector, error) {
	mag := v.Magnitude()
	if mag.IsZero() {
		return Vector{}, ErrCannotNormalizeZeroVector
	}
	return v.Scale(one.Div(mag)), nil
}
