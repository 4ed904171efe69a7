package reconstruct

import (
	"math/big"

	"go.dedis.ch/shamirecon/rational"
	"go.dedis.ch/shamirecon/types"
	"golang.org/x/xerrors"
)

// LagrangeAtZero evaluates at x = 0 the unique degree-(k-1) polynomial
// passing through the k given points, in exact rational arithmetic:
//
//	f(0) = sum_j [ y_j * prod_{i != j} ( -x_i / (x_j - x_i) ) ]
//
// The points need not be sorted but their x-values must be pairwise
// distinct. When the points all lie on one polynomial of degree < k the
// result is an exact integer; otherwise the accumulated total keeps a
// denominator != 1 and the call fails with rational.ErrNonIntegerResult,
// which is how an inconsistent subset announces itself.
func LagrangeAtZero(points []types.Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, xerrors.New("interpolation needs at least one point")
	}

	total := rational.New(big.NewInt(0))

	for j, pj := range points {
		term := rational.New(pj.Y)

		for i, pi := range points {
			if i == j {
				continue
			}

			num := new(big.Int).Neg(pi.X)
			den := new(big.Int).Sub(pj.X, pi.X)

			basis, err := rational.NewFrac(num, den)
			if err != nil {
				// only possible with duplicate x-values
				return nil, xerrors.Errorf("lagrange basis for x = %s: %w", pj.X, err)
			}
			term = term.Mul(basis)
		}

		total = total.Add(term)
	}

	return total.AsInt()
}
