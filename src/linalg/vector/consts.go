package vector

import (
	"github.com/shopspring/decimal"
)

// cosinePlaces is how far the cosine of an angle is rounded before acos.
// Normalized dot products can land marginally outside [-1, 1] because the
// square root in Magnitude goes through float64; rounding snaps them back
// inside the acos domain.
const cosinePlaces = 3

var (
	// DefaultTolerance is the threshold below which a magnitude or dot
	// product is treated as zero. 1e-10.
	DefaultTolerance = decimal.New(1, -10)

	one = decimal.New(1, 0)
)
