package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCross(t *testing.T) {
	for idx, tc := range []struct {
		a, b, want Vector
	}{
		{vec("1", "0", "0"), vec("0", "1", "0"), vec("0", "0", "1")},
		{vec("8.462", "7.893", "-8.187"), vec("6.984", "-5.975", "4.778"),
			vec("-11.204571", "-97.609444", "-105.685162")},
	} {
		t.Run(fmt.Sprintf("%d/%sx%s", idx, tc.a, tc.b), func(t *testing.T) {
			got, err := Cross(tc.a, tc.b)
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got))

			// anticommutative
			flipped, err := Cross(tc.b, tc.a)
			require.NoError(t, err)
			require.True(t, got.Neg().Equal(flipped))

			// orthogonal to both operands, exactly: the product uses only
			// decimal multiplication and subtraction
			for _, operand := range []Vector{tc.a, tc.b} {
				dot, err := got.Dot(operand)
				require.NoError(t, err)
				require.True(t, dot.IsZero())
			}
		})
	}
}

func TestCrossWithSelfIsZero(t *testing.T) {
	v := vec("8.462", "7.893", "-8.187")
	got, err := Cross(v, v)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestCrossRequiresThreeDimensions(t *testing.T) {
	for idx, tc := range []struct {
		a, b Vector
	}{
		{vec("1", "2"), vec("3", "4")},
		{vec("1", "2", "3"), vec("3", "4")},
		{vec("1", "2"), vec("3", "4", "5")},
		{vec("1", "2", "3", "4"), vec("5", "6", "7", "8")},
	} {
		t.Run(fmt.Sprintf("%d/%dx%d", idx, tc.a.Dim(), tc.b.Dim()), func(t *testing.T) {
			_, err := Cross(tc.a, tc.b)
			require.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
}
