package cmd

import (
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"go.dedis.ch/shamirecon/reconstruct"
	"go.dedis.ch/shamirecon/shareio"
	"go.dedis.ch/shamirecon/storage"
	"go.dedis.ch/shamirecon/types"
)

// Solver bundles the reconstructor with the session result store. It backs
// the one-shot solve command, the interactive CLI and the HTTP daemon.
type Solver struct {
	conf  Config
	recon *reconstruct.Reconstructor
	store *storage.BasicResultStore
}

func NewSolver(conf Config) *Solver {
	return &Solver{
		conf:  conf,
		recon: reconstruct.NewReconstructor(conf.Workers),
		store: storage.NewResultStore(),
	}
}

// SolveFile reconstructs the secret from the share document at path.
func (s *Solver) SolveFile(path string) (*big.Int, error) {
	ss, err := shareio.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return s.solve(path, ss)
}

// SolveDocument reconstructs the secret from a raw share document, tagging
// the stored result with the given source label.
func (s *Solver) SolveDocument(source string, data []byte) (*big.Int, error) {
	ss, err := shareio.Parse(data)
	if err != nil {
		return nil, err
	}
	return s.solve(source, ss)
}

func (s *Solver) solve(source string, ss *types.ShareSet) (*big.Int, error) {
	secret, err := s.recon.Recover(ss)
	if err != nil {
		return nil, err
	}

	s.store.Put(ss.Fingerprint(), storage.Result{
		Source:      source,
		Fingerprint: ss.Fingerprint(),
		Shares:      len(ss.Points),
		K:           ss.K,
		Secret:      secret.Text(10),
	})

	return secret, nil
}

// ForResults visits the session's stored results in stable order.
func (s *Solver) ForResults(action func(key string, res storage.Result) error) error {
	return s.store.For(action)
}

// -----------------------------------------------------------------------------
// Start CMD

// StartCMD runs the interactive prompt loop until the user exits.
func StartCMD(conf Config) {
	solver := NewSolver(conf)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println()
		os.Exit(0)
	}()

	performActions(solver)
}
