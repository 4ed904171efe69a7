package rational

import (
	"fmt"
	"math/big"

	"golang.org/x/xerrors"
)

// ErrDivisionByZero is returned when a rational is constructed with a zero
// denominator.
var ErrDivisionByZero = xerrors.New("rational: denominator cannot be zero")

// ErrNonIntegerResult is the sentinel matched by errors.Is when AsInt is
// called on a rational whose denominator is not 1.
var ErrNonIntegerResult = xerrors.New("rational: result is not an integer")

// NonIntegerError carries the offending denominator for diagnostics.
// It matches ErrNonIntegerResult under errors.Is.
type NonIntegerError struct {
	Denominator *big.Int
}

func (e *NonIntegerError) Error() string {
	return fmt.Sprintf("rational: result is not an integer, denominator was %s", e.Denominator)
}

func (e *NonIntegerError) Is(target error) bool {
	return target == ErrNonIntegerResult
}

// Rational is an arbitrary-precision fraction, always stored in lowest terms
// with a strictly positive denominator. The sign lives on the numerator.
// Values are immutable: every operation returns a new Rational and never
// touches its operands.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New builds the rational num/1.
func New(num *big.Int) Rational {
	return Rational{
		num: new(big.Int).Set(num),
		den: big.NewInt(1),
	}
}

// NewFrac builds the rational num/den in normalized form.
// It fails with ErrDivisionByZero when den is zero.
func NewFrac(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// normalize reduces num/den by their gcd and flips signs so the denominator
// is positive. den must be non-zero. gcd(0, den) = |den|, so a zero
// numerator degenerates to 0/1.
func normalize(num, den *big.Int) Rational {
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	num.Quo(num, gcd)
	den.Quo(den, gcd)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Rational{num: num, den: den}
}

// Add returns r + other via cross-multiplication, renormalized.
func (r Rational) Add(other Rational) Rational {
	num := new(big.Int).Mul(r.num, other.den)
	num.Add(num, new(big.Int).Mul(other.num, r.den))
	den := new(big.Int).Mul(r.den, other.den)
	return normalize(num, den)
}

// Mul returns r * other, renormalized.
func (r Rational) Mul(other Rational) Rational {
	num := new(big.Int).Mul(r.num, other.num)
	den := new(big.Int).Mul(r.den, other.den)
	return normalize(num, den)
}

// AsInt returns the numerator when the rational reduces to an integer.
// Otherwise it fails with a NonIntegerError holding the denominator.
func (r Rational) AsInt() (*big.Int, error) {
	if r.den.Cmp(big.NewInt(1)) != 0 {
		return nil, &NonIntegerError{Denominator: new(big.Int).Set(r.den)}
	}
	return new(big.Int).Set(r.num), nil
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.num)
}

// Den returns a copy of the denominator.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.den)
}

func (r Rational) String() string {
	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}
	return fmt.Sprintf("%s/%s", r.num, r.den)
}
