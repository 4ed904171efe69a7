package rational

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// test that construction always reduces to lowest terms with a positive
// denominator, for a spread of random inputs
func Test_rational_normalization(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		num := big.NewInt(rng.Int63n(2000) - 1000)
		den := big.NewInt(rng.Int63n(2000) - 1000)
		if den.Sign() == 0 {
			den = big.NewInt(7)
		}

		r, err := NewFrac(num, den)
		require.NoError(t, err)

		require.Equal(t, 1, r.Den().Sign())

		gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.Num()), r.Den())
		require.Equal(t, 0, gcd.Cmp(big.NewInt(1)))
	}
}

func Test_rational_normalization_examples(t *testing.T) {
	// 6/4 -> 3/2
	r, err := NewFrac(big.NewInt(6), big.NewInt(4))
	require.NoError(t, err)
	require.Equal(t, "3/2", r.String())

	// 3/-6 -> -1/2, sign moves to the numerator
	r, err = NewFrac(big.NewInt(3), big.NewInt(-6))
	require.NoError(t, err)
	require.Equal(t, "-1/2", r.String())

	// 0/-5 -> 0/1
	r, err = NewFrac(big.NewInt(0), big.NewInt(-5))
	require.NoError(t, err)
	require.Equal(t, int64(0), r.Num().Int64())
	require.Equal(t, int64(1), r.Den().Int64())
}

func Test_rational_zero_denominator(t *testing.T) {
	_, err := NewFrac(big.NewInt(1), big.NewInt(0))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func Test_rational_addition(t *testing.T) {
	// 1/2 + 1/3 = 5/6
	a, err := NewFrac(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	b, err := NewFrac(big.NewInt(1), big.NewInt(3))
	require.NoError(t, err)

	sum := a.Add(b)
	require.Equal(t, "5/6", sum.String())

	// commutative
	require.Equal(t, sum.String(), b.Add(a).String())

	// a + (-a) = 0/1
	neg := New(big.NewInt(-1)).Mul(a)
	zero := a.Add(neg)
	require.Equal(t, int64(0), zero.Num().Int64())
	require.Equal(t, int64(1), zero.Den().Int64())
}

func Test_rational_multiplication(t *testing.T) {
	// 2/3 * 9/4 = 3/2
	a, err := NewFrac(big.NewInt(2), big.NewInt(3))
	require.NoError(t, err)
	b, err := NewFrac(big.NewInt(9), big.NewInt(4))
	require.NoError(t, err)

	prod := a.Mul(b)
	require.Equal(t, "3/2", prod.String())

	// commutative
	require.Equal(t, prod.String(), b.Mul(a).String())
}

// test associativity of both operations over random triples
func Test_rational_laws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randRat := func() Rational {
		num := big.NewInt(rng.Int63n(200) - 100)
		den := big.NewInt(rng.Int63n(99) + 1)
		r, err := NewFrac(num, den)
		require.NoError(t, err)
		return r
	}

	for i := 0; i < 100; i++ {
		a, b, c := randRat(), randRat(), randRat()

		require.Equal(t, a.Add(b).Add(c).String(), a.Add(b.Add(c)).String())
		require.Equal(t, a.Mul(b).Mul(c).String(), a.Mul(b.Mul(c)).String())
	}
}

func Test_rational_as_int(t *testing.T) {
	// 8/4 reduces to the integer 2
	r, err := NewFrac(big.NewInt(8), big.NewInt(4))
	require.NoError(t, err)

	n, err := r.AsInt()
	require.NoError(t, err)
	require.Equal(t, int64(2), n.Int64())

	// 1/2 is not an integer; the error carries the denominator
	r, err = NewFrac(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)

	_, err = r.AsInt()
	require.ErrorIs(t, err, ErrNonIntegerResult)

	var nie *NonIntegerError
	require.True(t, errors.As(err, &nie))
	require.Equal(t, int64(2), nie.Denominator.Int64())
}

// operations must not mutate their operands
func Test_rational_immutability(t *testing.T) {
	a, err := NewFrac(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	b, err := NewFrac(big.NewInt(1), big.NewInt(3))
	require.NoError(t, err)

	_ = a.Add(b)
	_ = a.Mul(b)

	require.Equal(t, "1/2", a.String())
	require.Equal(t, "1/3", b.String())
}
