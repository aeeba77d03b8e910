// SPDX-License-Identifier: MIT
// Package: kmnpairs/skeleton
//
// errors.go — sentinel errors for the skeleton package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w, never by rewording the sentinel.
//   • Builders never panic on caller input.

package skeleton

import "errors"

// ErrBadParams indicates that k, m, n (or p) violate 1 ≤ k ≤ m, 1 ≤ p ≤ n,
// or the (m,n,p) entry point's 1 ≤ p ≤ n ≤ m.
// Usage: if errors.Is(err, ErrBadParams) { /* ask for other parameters */ }.
var ErrBadParams = errors.New("skeleton: bad parameters")

// ErrDegreeInfeasible indicates that p·m pairs cannot be spread over n right
// indices with degrees in {k, k+1}, i.e. m·p − k·n > n.
// Usage: if errors.Is(err, ErrDegreeInfeasible) { /* lower k or raise n */ }.
var ErrDegreeInfeasible = errors.New("skeleton: degree sequence infeasible")
