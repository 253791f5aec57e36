package vector

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cross returns the cross product of two 3-dimensional vectors. Any other
// dimension fails with ErrDimensionMismatch: the binary cross product only
// exists in three dimensions.
func Cross(a, b Vector) (Vector, error) {
	if len(a.coords) != 3 || len(b.coords) != 3 {
		return Vector{}, fmt.Errorf("%w: cross product requires two 3-dimensional vectors, got %d and %d",
			ErrDimensionMismatch, len(a.coords), len(b.coords))
	}
	v, w := a.coords, b.coords
	return Vector{coords: []decimal.Decimal{
		v[1].Mul(w[2]).Sub(w[1].Mul(v[2])),
		v[0].Mul(w[2]).Sub(w[0].Mul(v[2])).Neg(),
		v[0].Mul(w[1]).Sub(w[0].Mul(v[1])),
	}}, nil
}
