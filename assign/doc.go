// SPDX-License-Identifier: MIT

// Package assign owns a balanced bipartite assignment: a skeleton from
// package skeleton, a left and a right Permutation, a forbidden-pair set
// and the best-seen backup.
//
// The realized pairs are (left[l], right[r]) for every skeleton pair
// (l, r). Every left id has exactly p partners and every right id k or k+1.
// The engine keeps those degrees while trying to avoid forbidden pairs:
//
//   - Search: randomized repair (Permute, Swap, BackSwap) over one side,
//     the other, or a per-trial percentage mix, with a trial budget.
//   - BreakSkeleton: deterministic switching reduction to a fixed point;
//     the only operation that can produce a non-isomorphic skeleton.
//   - Feasible / SolveFlow: exact zero-forbidden check and construction
//     through a lower-bounded circulation (package flow).
//
// Validation is explicit. Validate returns every structural violation at
// once; CheckForbidden returns advisory warnings and never fails.
//
// Determinism: every randomized operation takes a *rand.Rand (nil falls
// back to Engine.Rand). Identical seeds give identical runs.
//
// Concurrency: an Engine is not safe for concurrent use. Independent
// engines may run in parallel; see package multistart.
//
// Errors: sentinels (ErrIndexOutOfRange, ErrDuplicateForbidden,
// ErrInvalidAssignment, ErrNoBackup, ErrBadSubset, ErrSwitchRejected,
// ErrBadSnapshot, ErrUnknownStrategy) wrapped with call context; branch
// with errors.Is.
package assign
