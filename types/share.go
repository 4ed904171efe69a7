package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

// ErrInvalidThreshold is returned when a share set is built with k < 1.
var ErrInvalidThreshold = xerrors.New("threshold must be at least 1")

// ErrDuplicateShare is returned when two shares carry the same x label.
// Interpolation is undefined on such a set, so it is rejected up front
// instead of surfacing later as a division by zero.
var ErrDuplicateShare = xerrors.New("duplicate share x-coordinate")

// NewPoint builds an immutable share point, copying both coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// NewShareSet validates and freezes a collection of candidate shares.
// The threshold must be at least 1 and all x labels must be distinct.
func NewShareSet(k int, points []Point) (*ShareSet, error) {
	if k < 1 {
		return nil, xerrors.Errorf("share set with k = %d: %w", k, ErrInvalidThreshold)
	}

	seen := map[string]struct{}{}
	for _, point := range points {
		label := point.X.String()
		if _, ok := seen[label]; ok {
			return nil, xerrors.Errorf("share set with x = %s twice: %w", label, ErrDuplicateShare)
		}
		seen[label] = struct{}{}
	}

	copied := make([]Point, len(points))
	for i, point := range points {
		copied[i] = NewPoint(point.X, point.Y)
	}

	return &ShareSet{K: k, Points: copied}, nil
}

// Fingerprint returns a hex Keccak-256 digest identifying the share set by
// content. Used as the result-store key and as a log tag.
func (ss *ShareSet) Fingerprint() string {
	data := []byte(fmt.Sprintf("k=%d", ss.K))
	for _, point := range ss.Points {
		data = append(data, []byte(fmt.Sprintf("|%s:%s", point.X, point.Y))...)
	}
	return crypto.Keccak256Hash(data).Hex()
}

// String implements fmt.Stringer.
func (ss *ShareSet) String() string {
	return fmt.Sprintf("{share set: %d shares, k = %d}", len(ss.Points), ss.K)
}
