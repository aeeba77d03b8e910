// SPDX-License-Identifier: MIT
// Package: kmnpairs/skeleton
//
// Package skeleton builds the fixed pair set ("skeleton") of a balanced
// bipartite assignment and provides small, allocation-conscious helpers
// over pair lists.
//
// For integer parameters k, m, n with 1 ≤ k ≤ m, let p = ⌈k·n/m⌉. The
// skeleton P ⊂ {0..m-1}×{0..n-1} has exactly p·m pairs such that:
//
//   - every left index appears exactly p times,
//   - every right index appears k or k+1 times,
//   - exactly m·p − k·n right indices appear k+1 times.
//
// Construction is the deterministic cyclic walk: step s (0 ≤ s < p·m) emits
// (s mod m, (s+offset) mod n), where offset starts at n−1 and advances by one
// (mod n) whenever s is a common multiple of m and n. Within one lcm(m,n)
// block the walk never repeats a pair, and the offset shift moves every later
// block onto a fresh residue class, so no left index meets the same right
// index twice while p ≤ n.
//
// Quick example (k=1, m=3, n=4 ⇒ p=2):
//
//	L0─R0  L1─R1  L2─R2
//	L0─R3  L1─R0  L2─R1
//
// gives left degrees [2,2,2] and right degrees [2,2,1,1].
//
// Identifiers are strongly typed: Left and Right never mix, and Pair always
// stores a (Left, Right) couple in the unpermuted index space.
//
// Errors:
//
//	ErrBadParams        - k, m, n or p outside their admissible ranges.
//	ErrDegreeInfeasible - the right-degree sequence {k, k+1} cannot absorb p·m.
package skeleton
