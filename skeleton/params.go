// SPDX-License-Identifier: MIT
// Package: kmnpairs/skeleton
//
// params.go — the (k, m, n) parameter triple and its derived quantities.
//
// p is never stored: it is recomputed from (k, m, n) on every call so that
// the three inputs stay the single source of truth.

package skeleton

import "fmt"

// Method tags used to prefix wrapped errors.
const (
	methodParams = "Params"
	methodNew    = "New"
	methodNewMNP = "NewMNP"
)

// Params is the parameter triple of a balanced assignment.
//
//	K — minimal right degree,
//	M — size of the left set,
//	N — size of the right set.
type Params struct {
	K int `json:"k" yaml:"k"`
	M int `json:"m" yaml:"m"`
	N int `json:"n" yaml:"n"`
}

// DivCeil returns ⌈a/b⌉ for a ≥ 0, b > 0.
func DivCeil(a, b int) int {
	return (a + b - 1) / b
}

// P returns the common left degree ⌈k·n/m⌉. It returns 0 when M ≤ 0.
func (prm Params) P() int {
	if prm.M <= 0 {
		return 0
	}
	return DivCeil(prm.K*prm.N, prm.M)
}

// Size returns the number of pairs p·m.
func (prm Params) Size() int { return prm.P() * prm.M }

// Excess returns m·p − k·n, the number of right indices of degree k+1.
func (prm Params) Excess() int { return prm.M*prm.P() - prm.K*prm.N }

// Validate checks 1 ≤ k ≤ m, 1 ≤ p ≤ n and m·p − k·n ≤ n.
// Complexity: O(1).
func (prm Params) Validate() error {
	if prm.M < 1 || prm.N < 1 {
		return fmt.Errorf("%s: m=%d, n=%d (each must be ≥ 1): %w", methodParams, prm.M, prm.N, ErrBadParams)
	}
	if prm.K < 1 || prm.K > prm.M {
		return fmt.Errorf("%s: k=%d outside [1,%d]: %w", methodParams, prm.K, prm.M, ErrBadParams)
	}
	p := prm.P()
	if p < 1 || p > prm.N {
		return fmt.Errorf("%s: p=%d outside [1,%d]: %w", methodParams, p, prm.N, ErrBadParams)
	}
	if ex := prm.Excess(); ex > prm.N {
		return fmt.Errorf("%s: (k,m,n)=(%d,%d,%d) needs %d right ids of degree k+1 but n=%d: %w",
			methodParams, prm.K, prm.M, prm.N, ex, prm.N, ErrDegreeInfeasible)
	}
	return nil
}

// ParamsMNP derives Params from (m, n, p) with k = ⌊p·m/n⌋.
// It requires 1 ≤ p ≤ n ≤ m; under that constraint ⌈k·n/m⌉ == p.
// Complexity: O(1).
func ParamsMNP(m, n, p int) (Params, error) {
	if !(1 <= p && p <= n && n <= m) {
		return Params{}, fmt.Errorf("%s: (m,n,p)=(%d,%d,%d) must satisfy 1 ≤ p ≤ n ≤ m: %w",
			methodNewMNP, m, n, p, ErrBadParams)
	}
	prm := Params{K: p * m / n, M: m, N: n}
	if err := prm.Validate(); err != nil {
		return Params{}, fmt.Errorf("%s: %w", methodNewMNP, err)
	}
	return prm, nil
}
