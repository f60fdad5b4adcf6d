// SPDX-License-Identifier: MIT
// Package: confgraph/degree
//
// sequence.go - immutable degree sequence.

package degree

import (
	"strconv"
	"strings"
)

// Sequence is an ordered, immutable list of target degrees.
// The zero value is an empty sequence.
type Sequence struct {
	values    []int
	sum       int
	corrected bool
}

// NewSequence copies values into a Sequence.
// Complexity: O(n).
func NewSequence(values ...int) Sequence {
	cp := make([]int, len(values))
	copy(cp, values)

	return fromOwned(cp)
}

// Regular returns n copies of d.
func Regular(n, d int) Sequence {
	if n < 0 {
		n = 0
	}
	vals := make([]int, n)
	for i := range vals {
		vals[i] = d
	}

	return fromOwned(vals)
}

// fromOwned takes ownership of vals without copying.
func fromOwned(vals []int) Sequence {
	s := Sequence{values: vals}
	for _, v := range vals {
		s.sum += v
	}

	return s
}

// Len returns the number of nodes.
func (s Sequence) Len() int { return len(s.values) }

// At returns the target degree of node i. It panics if i is out of range.
func (s Sequence) At(i int) int { return s.values[i] }

// Sum returns the total number of stubs.
func (s Sequence) Sum() int { return s.sum }

// ParityCorrected reports whether the sampler bumped the last entry to make
// the sum even. Always false for sequences built with NewSequence or Regular.
func (s Sequence) ParityCorrected() bool { return s.corrected }

// Even reports whether Sum is even, i.e. whether the stubs can be paired.
func (s Sequence) Even() bool { return s.sum%2 == 0 }

// Max returns the largest entry, or 0 for an empty sequence.
func (s Sequence) Max() int {
	m := 0
	for _, v := range s.values {
		if v > m {
			m = v
		}
	}

	return m
}

// Values returns a copy of the entries.
func (s Sequence) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)

	return out
}

// String renders the sequence as "[d0 d1 ...]".
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}
