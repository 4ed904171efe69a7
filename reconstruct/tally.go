package reconstruct

import "math/big"

// candidate is one potential secret with its vote count and the smallest
// combination index that produced it.
type candidate struct {
	secret *big.Int
	count  int
	first  int
}

// voteTally counts how often each candidate secret shows up across the
// size-k combinations of one reconstruction run. It lives and dies inside a
// single Recover call. Keys are the decimal text of the secret.
type voteTally struct {
	table map[string]*candidate
}

func newVoteTally() *voteTally {
	return &voteTally{
		table: map[string]*candidate{},
	}
}

// add records one vote for secret, cast by the combination with the given
// enumeration index.
func (t *voteTally) add(secret *big.Int, idx int) {
	key := secret.Text(10)

	entry, ok := t.table[key]
	if !ok {
		t.table[key] = &candidate{secret: secret, count: 1, first: idx}
		return
	}

	entry.count++
	if idx < entry.first {
		entry.first = idx
	}
}

func (t *voteTally) size() int {
	return len(t.table)
}

// winner returns the candidate with the strictly highest count. Ties are
// broken deterministically in favour of the candidate first produced by the
// earliest combination, so the result never depends on map iteration order.
func (t *voteTally) winner() (*big.Int, bool) {
	var best *candidate
	for _, entry := range t.table {
		if best == nil || entry.count > best.count ||
			(entry.count == best.count && entry.first < best.first) {
			best = entry
		}
	}
	if best == nil {
		return nil, false
	}
	return best.secret, true
}
