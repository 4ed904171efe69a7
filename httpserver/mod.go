// Package httpserver exposes the solver over JSON HTTP for the daemon mode.
//
//	// reconstruct a secret from a share document
//	curl -X POST --data-binary @testcase1.json http://127.0.0.1:8080/reconstruct
//
//	// list the results of this session
//	curl http://127.0.0.1:8080/results
package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/shamirecon/reconstruct"
	"go.dedis.ch/shamirecon/shareio"
	"go.dedis.ch/shamirecon/storage"
)

// Solver is what the HTTP surface needs from the reconstruction stack.
type Solver interface {
	SolveDocument(source string, data []byte) (*big.Int, error)
	ForResults(action func(key string, res storage.Result) error) error
}

// SecretReply is the body of a successful reconstruction.
type SecretReply struct {
	Secret string `json:"Secret"`
}

// ErrorReply is the body of a failed request.
type ErrorReply struct {
	Error string `json:"Error"`
}

// Handler builds the HTTP routes for the given solver.
func Handler(solver Solver) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/reconstruct", reconstructHandler(solver))
	mux.HandleFunc("/results", resultsHandler(solver))
	return mux
}

// Start listens on addr and serves reconstruction requests until the
// process exits.
func Start(addr string, solver Solver) error {
	log.Info().Msgf("reconstruction daemon listening on %s", addr)
	return http.ListenAndServe(addr, Handler(solver))
}

func reconstructHandler(solver Solver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "use POST with a share document body", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		secret, err := solver.SolveDocument(r.RemoteAddr, body)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		writeJSON(w, http.StatusOK, SecretReply{Secret: secret.Text(10)})
	}
}

func resultsHandler(solver Solver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "use GET", http.StatusMethodNotAllowed)
			return
		}

		results := []storage.Result{}
		err := solver.ForResults(func(key string, res storage.Result) error {
			results = append(results, res)
			return nil
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

// statusFor maps the solver's error taxonomy onto HTTP statuses: malformed
// documents are the client's fault, share sets the solver cannot work with
// are unprocessable, anything else is a server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, shareio.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, reconstruct.ErrInsufficientShares),
		errors.Is(err, reconstruct.ErrNoConsistentSecret):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	data, err := json.Marshal(body)
	if err != nil {
		log.Error().Msgf("marshal http reply: %s", err)
		return
	}
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorReply{Error: err.Error()})
}
