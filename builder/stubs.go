// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// stubs.go - stub expansion, shuffling and pairing shared by the
// configuration model and RandomRegular.

package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/confgraph/core"
	"github.com/katalvlaran/confgraph/degree"
)

// expandStubs lists node i exactly seq[i] times, in ascending node order.
// Complexity: O(n + Σseq) time and space.
func expandStubs(seq degree.Sequence) []int {
	stubs := make([]int, 0, seq.Sum())
	for i := 0; i < seq.Len(); i++ {
		for k := 0; k < seq.At(i); k++ {
			stubs = append(stubs, i)
		}
	}

	return stubs
}

// shuffleStubs applies a uniform Fisher–Yates permutation in place.
func shuffleStubs(rng *rand.Rand, stubs []int) {
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
}

// pairingAllowed reports whether pairing consecutive stubs respects the loop
// and multi-edge policies, without touching any graph.
func pairingAllowed(stubs []int, allowLoops, allowMulti bool) bool {
	var seen map[[2]int]struct{}
	if !allowMulti {
		seen = make(map[[2]int]struct{}, len(stubs)/2)
	}
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if !allowLoops && u == v {
			return false
		}
		if !allowMulti {
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				return false
			}
			seen[key] = struct{}{}
		}
	}

	return true
}

// addNodes adds idFn(0..n-1) and fails if the scheme maps two indices to
// the same ID. Returns the IDs by index.
func addNodes(g *core.Graph, n int, idFn IDFn, method string) ([]string, error) {
	ids := make([]string, n)
	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id := idFn(i)
		if j, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s: ID scheme maps nodes %d and %d to %q: %w",
				method, j, i, id, ErrConstructFailed)
		}
		seen[id] = i
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addPairs inserts one edge per consecutive stub pair.
func addPairs(g *core.Graph, ids []string, stubs []int, method string) error {
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := ids[stubs[i]], ids[stubs[i+1]]
		if _, err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
		}
	}

	return nil
}
