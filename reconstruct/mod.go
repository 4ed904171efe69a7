package reconstruct

import (
	"golang.org/x/xerrors"
)

// ErrInsufficientShares is returned when fewer shares are available than the
// threshold k. No interpolation is attempted in that case.
var ErrInsufficientShares = xerrors.New("not enough shares to reconstruct")

// ErrNoConsistentSecret is returned when every size-k combination of the
// shares was internally inconsistent, so no secret could be extracted.
var ErrNoConsistentSecret = xerrors.New("no consistent secret could be extracted")

// Reconstructor turns a possibly corrupted share set into a single
// best-guess secret by majority vote over all size-k share combinations.
type Reconstructor struct {
	workers int
}

// NewReconstructor creates a reconstructor. workers is the number of
// goroutines interpolating combinations; values below 2 select the
// sequential path. Both paths return identical results.
func NewReconstructor(workers int) *Reconstructor {
	if workers < 1 {
		workers = 1
	}
	return &Reconstructor{workers: workers}
}
