// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// permutation.go — a bijection on {0..len-1}.
//
// Invariant: the backing slice is always a permutation of 0..len-1; every
// mutator (Swap, Shuffle, Reset) preserves it.

package assign

import (
	"fmt"
	"math/rand"
)

// Permutation maps an index to an index, bijectively.
type Permutation struct {
	p []int
}

// NewPermutation returns the identity permutation of size n (n ≥ 0).
func NewPermutation(n int) *Permutation {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &Permutation{p: p}
}

// Len returns the domain size.
func (pm *Permutation) Len() int { return len(pm.p) }

// At returns the image of i. Callers guarantee 0 ≤ i < Len().
func (pm *Permutation) At(i int) int { return pm.p[i] }

// Values returns a copy of the mapping.
func (pm *Permutation) Values() []int {
	out := make([]int, len(pm.p))
	copy(out, pm.p)
	return out
}

// Swap exchanges the images of i and j.
func (pm *Permutation) Swap(i, j int) error {
	n := len(pm.p)
	if i < 0 || j < 0 || i >= n || j >= n {
		return fmt.Errorf("Permutation.Swap(%d,%d) with len %d: %w", i, j, n, ErrIndexOutOfRange)
	}
	pm.p[i], pm.p[j] = pm.p[j], pm.p[i]
	return nil
}

// Shuffle replaces the mapping with a uniformly random permutation
// (Fisher–Yates over the full domain).
func (pm *Permutation) Shuffle(rng *rand.Rand) {
	shuffleInts(pm.p, rng)
}

// Reset restores the identity mapping.
func (pm *Permutation) Reset() {
	for i := range pm.p {
		pm.p[i] = i
	}
}

// IsIdentity reports whether every index maps to itself.
func (pm *Permutation) IsIdentity() bool {
	for i, v := range pm.p {
		if i != v {
			return false
		}
	}
	return true
}
