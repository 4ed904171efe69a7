package reconstruct

import "go.dedis.ch/shamirecon/types"

// forEachCombination visits every size-k subset of points exactly once, in
// lexicographic order of the original indices, preserving relative order
// inside each subset. Each delivered combination is an independent snapshot
// the consumer may keep. k = 0 yields exactly one empty combination; k
// larger than len(points) yields none. Returning an error from fn stops the
// enumeration and propagates the error.
func forEachCombination(points []types.Point, k int, fn func(combo []types.Point) error) error {
	if k < 0 || k > len(points) {
		return nil
	}

	current := make([]types.Point, 0, k)

	var recurse func(start int) error
	recurse = func(start int) error {
		if len(current) == k {
			snapshot := make([]types.Point, k)
			copy(snapshot, current)
			return fn(snapshot)
		}

		// the bound prunes branches that can no longer reach size k
		for i := start; i <= len(points)-(k-len(current)); i++ {
			current = append(current, points[i])
			if err := recurse(i + 1); err != nil {
				return err
			}
			current = current[:len(current)-1]
		}
		return nil
	}

	return recurse(0)
}
