package types

import "math/big"

// Point is one share: an (x, y) pair purportedly lying on the
// secret-encoding polynomial. Coordinates are arbitrary precision.
type Point struct {
	X *big.Int
	Y *big.Int
}

// ShareSet is the full collection of candidate shares plus the threshold k,
// the minimum number of shares needed to pin down the polynomial. It is
// built once by NewShareSet and read-only afterwards.
type ShareSet struct {
	K      int
	Points []Point
}
