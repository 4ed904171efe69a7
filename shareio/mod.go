// Package shareio decodes share documents into validated share sets.
//
// A share document is a JSON object with a "keys" header naming the share
// count n and the threshold k, plus one entry per share. The entry key is
// the decimal x-coordinate; the entry value holds the y-coordinate as a
// string in the given radix:
//
//	{
//	    "keys": {"n": 4, "k": 3},
//	    "1": {"base": "10", "value": "4"},
//	    "2": {"base": "2",  "value": "111"},
//	    ...
//	}
//
// The decoder owns the radix handling, so the core only ever sees plain
// integers. Anything wrong with the document is reported as
// ErrMalformedInput before the core is invoked.
package shareio

import (
	"encoding/json"
	"math/big"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/shamirecon/types"
	"golang.org/x/xerrors"
)

// ErrMalformedInput is the category for every share-document decoding
// failure: bad JSON, missing header, bad radix, undecodable values,
// duplicate x labels.
var ErrMalformedInput = xerrors.New("malformed share document")

type keysHeader struct {
	N int `json:"n"`
	K int `json:"k"`
}

type shareEntry struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// ParseFile reads and decodes the share document at path.
func ParseFile(path string) (*types.ShareSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("read share document %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a share document into a validated share set. Shares are
// ordered by ascending x-coordinate so the same document always produces
// the same share set.
func Parse(data []byte) (*types.ShareSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, xerrors.Errorf("invalid JSON: %v: %w", err, ErrMalformedInput)
	}

	headerRaw, ok := raw["keys"]
	if !ok {
		return nil, xerrors.Errorf("missing \"keys\" header: %w", ErrMalformedInput)
	}

	var header keysHeader
	if err := json.Unmarshal(headerRaw, &header); err != nil {
		return nil, xerrors.Errorf("invalid \"keys\" header: %v: %w", err, ErrMalformedInput)
	}

	points := make([]types.Point, 0, len(raw)-1)
	for key, entryRaw := range raw {
		if key == "keys" {
			continue
		}

		x, ok := new(big.Int).SetString(key, 10)
		if !ok {
			return nil, xerrors.Errorf("entry key %q is not a decimal integer: %w",
				key, ErrMalformedInput)
		}

		var entry shareEntry
		if err := json.Unmarshal(entryRaw, &entry); err != nil {
			return nil, xerrors.Errorf("invalid entry for x = %s: %v: %w",
				key, err, ErrMalformedInput)
		}

		base, err := strconv.Atoi(entry.Base)
		if err != nil || base < 2 || base > 36 {
			return nil, xerrors.Errorf("entry for x = %s has unusable base %q: %w",
				key, entry.Base, ErrMalformedInput)
		}

		y, ok := new(big.Int).SetString(entry.Value, base)
		if !ok {
			return nil, xerrors.Errorf("entry for x = %s: %q is not a base-%d integer: %w",
				key, entry.Value, base, ErrMalformedInput)
		}

		points = append(points, types.NewPoint(x, y))
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].X.Cmp(points[j].X) < 0
	})

	if header.N != 0 && header.N != len(points) {
		// n is advisory, the selector works off the shares it actually has
		log.Warn().Msgf("share document announces n = %d but carries %d shares",
			header.N, len(points))
	}

	ss, err := types.NewShareSet(header.K, points)
	if err != nil {
		return nil, xerrors.Errorf("share document: %v: %w", err, ErrMalformedInput)
	}

	return ss, nil
}
