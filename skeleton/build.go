// SPDX-License-Identifier: MIT
// Package: kmnpairs/skeleton
//
// build.go — cyclic skeleton construction.
//
// Contract:
//   • New(k,m,n): 1 ≤ k ≤ m, p = ⌈k·n/m⌉ with 1 ≤ p ≤ n, m·p − k·n ≤ n.
//   • NewMNP(m,n,p): 1 ≤ p ≤ n ≤ m, k = ⌊p·m/n⌋.
//   • Emits p·m pairs in step order; identical inputs give identical output.
//   • Returns only sentinel-wrapped errors; never panics.
//
// Complexity:
//   • Time: O(p·m). Space: O(p·m) for the returned slice.

package skeleton

import "fmt"

// Skeleton is the unpermuted pair set together with the parameters it was
// built for.
type Skeleton struct {
	Params
	Pairs []Pair
}

// New builds the cyclic skeleton for (k, m, n).
func New(k, m, n int) (Skeleton, error) {
	prm := Params{K: k, M: m, N: n}
	if err := prm.Validate(); err != nil {
		return Skeleton{}, fmt.Errorf("%s: %w", methodNew, err)
	}
	return Skeleton{Params: prm, Pairs: cyclic(m, n, prm.P())}, nil
}

// NewMNP builds the cyclic skeleton for (m, n, p), for callers that know the
// desired left degree rather than the minimal right degree.
func NewMNP(m, n, p int) (Skeleton, error) {
	prm, err := ParamsMNP(m, n, p)
	if err != nil {
		return Skeleton{}, err
	}
	return Skeleton{Params: prm, Pairs: cyclic(m, n, p)}, nil
}

// Build builds the skeleton for already validated parameters.
func Build(prm Params) (Skeleton, error) {
	return New(prm.K, prm.M, prm.N)
}

// cyclic walks s = 0..p·m-1 and emits (s mod m, (s+offset) mod n); offset
// starts at n−1 and advances whenever s is a common multiple of m and n.
// Callers guarantee m, n ≥ 1 and 1 ≤ p ≤ n.
func cyclic(m, n, p int) []Pair {
	total := p * m
	out := make([]Pair, total)
	offset := n - 1
	for s := 0; s < total; s++ {
		if s%m == 0 && s%n == 0 {
			offset = (offset + 1) % n
		}
		out[s] = Pair{L: Left(s % m), R: Right((s + offset) % n)}
	}
	return out
}
