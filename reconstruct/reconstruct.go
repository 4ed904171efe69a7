package reconstruct

import (
	"errors"
	"math/big"
	"sync"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/shamirecon/rational"
	"go.dedis.ch/shamirecon/types"
	"golang.org/x/xerrors"
)

// Recover reconstructs the secret encoded by the share set. Every size-k
// combination of the candidate shares is interpolated; combinations that do
// not reduce to an integer are drawn from a corrupted mix and dropped; the
// integer produced by the most combinations wins. Genuine shares all lie on
// one polynomial, so they agree across exponentially more combinations than
// any forged share can take part in, and the true secret dominates the tally
// whenever corrupted shares are a minority.
func (r *Reconstructor) Recover(ss *types.ShareSet) (*big.Int, error) {
	runID := xid.New().String()

	if len(ss.Points) < ss.K {
		return nil, xerrors.Errorf("have %d shares, need %d: %w",
			len(ss.Points), ss.K, ErrInsufficientShares)
	}

	log.Info().Msgf("[%s] reconstructing %s, fingerprint %s, workers: %d",
		runID, ss, ss.Fingerprint(), r.workers)

	tally := newVoteTally()

	var err error
	if r.workers > 1 {
		err = r.tallyParallel(ss, tally)
	} else {
		err = r.tallySequential(ss, tally)
	}
	if err != nil {
		return nil, err
	}

	secret, ok := tally.winner()
	if !ok {
		return nil, xerrors.Errorf("all size-%d combinations were inconsistent: %w",
			ss.K, ErrNoConsistentSecret)
	}

	log.Info().Msgf("[%s] secret recovered, %d candidate(s) in the tally",
		runID, tally.size())

	return secret, nil
}

// tallySequential interpolates every combination in enumeration order on the
// calling goroutine.
func (r *Reconstructor) tallySequential(ss *types.ShareSet, tally *voteTally) error {
	idx := 0
	return forEachCombination(ss.Points, ss.K, func(combo []types.Point) error {
		comboIdx := idx
		idx++

		secret, err := LagrangeAtZero(combo)
		if err != nil {
			if errors.Is(err, rational.ErrNonIntegerResult) {
				// inconsistent subset, drop it and move on
				return nil
			}
			return err
		}

		tally.add(secret, comboIdx)
		return nil
	})
}

type comboJob struct {
	idx    int
	points []types.Point
}

type comboVote struct {
	idx    int
	secret *big.Int
	err    error
}

// tallyParallel fans combinations out over a worker pool. Points are
// immutable so the workers share them without locking; the tally is fed from
// this goroutine only. Tie-breaking keys on enumeration indices carried with
// each vote, so the outcome matches the sequential path regardless of
// arrival order.
func (r *Reconstructor) tallyParallel(ss *types.ShareSet, tally *voteTally) error {
	jobs := make(chan comboJob, r.workers)
	votes := make(chan comboVote, r.workers)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				secret, err := LagrangeAtZero(job.points)
				votes <- comboVote{idx: job.idx, secret: secret, err: err}
			}
		}()
	}

	go func() {
		idx := 0
		// the consumer never errors, enumeration always completes
		_ = forEachCombination(ss.Points, ss.K, func(combo []types.Point) error {
			jobs <- comboJob{idx: idx, points: combo}
			idx++
			return nil
		})
		close(jobs)
		wg.Wait()
		close(votes)
	}()

	var firstErr error
	for vote := range votes {
		if vote.err != nil {
			if errors.Is(vote.err, rational.ErrNonIntegerResult) {
				continue
			}
			if firstErr == nil {
				firstErr = vote.err
			}
			continue
		}
		tally.add(vote.secret, vote.idx)
	}

	return firstErr
}
