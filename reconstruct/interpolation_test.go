package reconstruct

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/shamirecon/rational"
	"go.dedis.ch/shamirecon/types"
)

// evalPoly evaluates the polynomial with the given coefficients
// (constant term first) at x, using Horner's method.
func evalPoly(coeffs []*big.Int, x *big.Int) *big.Int {
	value := new(big.Int).Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		value.Mul(value, x)
		value.Add(value, coeffs[i])
	}
	return value
}

// samplePoly returns the points (x, f(x)) for the given x-coordinates.
func samplePoly(coeffs []*big.Int, xs ...int64) []types.Point {
	points := make([]types.Point, len(xs))
	for i, x := range xs {
		bigX := big.NewInt(x)
		points[i] = types.NewPoint(bigX, evalPoly(coeffs, bigX))
	}
	return points
}

// the line y = 2x + 1 through (1,3) and (2,5) has constant term 1
func Test_interpolation_line(t *testing.T) {
	points := []types.Point{
		types.NewPoint(big.NewInt(1), big.NewInt(3)),
		types.NewPoint(big.NewInt(2), big.NewInt(5)),
	}

	secret, err := LagrangeAtZero(points)
	require.NoError(t, err)
	require.Equal(t, int64(1), secret.Int64())
}

// a single point is a degree-0 polynomial, f(0) is the y value itself
func Test_interpolation_single_point(t *testing.T) {
	points := []types.Point{
		types.NewPoint(big.NewInt(7), big.NewInt(42)),
	}

	secret, err := LagrangeAtZero(points)
	require.NoError(t, err)
	require.Equal(t, int64(42), secret.Int64())
}

// sampling a random integer polynomial at k distinct points and
// interpolating back must recover the exact constant term, for degrees up
// to 6 and coefficients well past int64 range
func Test_interpolation_recovers_constant_term(t *testing.T) {
	rng := rand.New(rand.NewSource(438))

	for degree := 0; degree <= 6; degree++ {
		for iter := 0; iter < 20; iter++ {
			coeffs := make([]*big.Int, degree+1)
			for i := range coeffs {
				coeff := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 128))
				if rng.Intn(2) == 0 {
					coeff.Neg(coeff)
				}
				coeffs[i] = coeff
			}

			xs := make([]int64, degree+1)
			for i := range xs {
				xs[i] = int64(i + 1)
			}

			secret, err := LagrangeAtZero(samplePoly(coeffs, xs...))
			require.NoError(t, err)
			require.Equal(t, 0, secret.Cmp(coeffs[0]))
		}
	}
}

// point order must not change the result
func Test_interpolation_order_independent(t *testing.T) {
	coeffs := []*big.Int{big.NewInt(17), big.NewInt(-4), big.NewInt(9)}

	forward := samplePoly(coeffs, 1, 2, 3)
	backward := samplePoly(coeffs, 3, 2, 1)

	a, err := LagrangeAtZero(forward)
	require.NoError(t, err)
	b, err := LagrangeAtZero(backward)
	require.NoError(t, err)

	require.Equal(t, 0, a.Cmp(b))
}

// points not lying on one low-degree polynomial leave a denominator != 1
func Test_interpolation_inconsistent_points(t *testing.T) {
	// the quadratic through (1,1), (2,2), (4,5) has f(0) = 1/3
	points := []types.Point{
		types.NewPoint(big.NewInt(1), big.NewInt(1)),
		types.NewPoint(big.NewInt(2), big.NewInt(2)),
		types.NewPoint(big.NewInt(4), big.NewInt(5)),
	}

	_, err := LagrangeAtZero(points)
	require.ErrorIs(t, err, rational.ErrNonIntegerResult)
}

// duplicate x-values fed directly to the interpolator surface as a
// division by zero, not as a corrupted subset
func Test_interpolation_duplicate_x(t *testing.T) {
	points := []types.Point{
		types.NewPoint(big.NewInt(1), big.NewInt(3)),
		types.NewPoint(big.NewInt(1), big.NewInt(5)),
	}

	_, err := LagrangeAtZero(points)
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func Test_interpolation_no_points(t *testing.T) {
	_, err := LagrangeAtZero(nil)
	require.Error(t, err)
}
