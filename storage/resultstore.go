package storage

import (
	"sort"
	"sync"
)

// Result is one finished reconstruction, kept around so the CLI and the
// HTTP surface can list past runs of the session.
type Result struct {
	Source      string `json:"Source"`
	Fingerprint string `json:"Fingerprint"`
	Shares      int    `json:"Shares"`
	K           int    `json:"K"`
	Secret      string `json:"Secret"`
}

// ResultStore keeps reconstruction results keyed by share-set fingerprint.
type ResultStore interface {
	Get(key string) (Result, bool)
	Put(key string, res Result)
	For(func(key string, res Result) error) error
	Len() int
}

// BasicResultStore is an in-memory ResultStore, safe for concurrent use by
// the CLI loop and the HTTP handlers.
type BasicResultStore struct {
	mu    sync.RWMutex
	store map[string]Result
}

func NewResultStore() *BasicResultStore {
	return &BasicResultStore{
		store: map[string]Result{},
	}
}

func (rs *BasicResultStore) Get(key string) (Result, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	res, ok := rs.store[key]
	return res, ok
}

func (rs *BasicResultStore) Put(key string, res Result) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.store[key] = res
}

// For visits results in sorted key order so listings are stable.
func (rs *BasicResultStore) For(action func(key string, res Result) error) error {
	rs.mu.RLock()
	keys := make([]string, 0, len(rs.store))
	for key := range rs.store {
		keys = append(keys, key)
	}
	rs.mu.RUnlock()

	sort.Strings(keys)

	for _, key := range keys {
		res, ok := rs.Get(key)
		if !ok {
			continue
		}
		if err := action(key, res); err != nil {
			return err
		}
	}
	return nil
}

func (rs *BasicResultStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return len(rs.store)
}
