// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// rng.go — deterministic RNG helpers shared by the repair strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical repair runs across platforms.
//   - Explicit capability: every randomized operation receives its *rand.Rand;
//     there is no package-level source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use DeriveRNG to give each
//     independent engine its own stream.
package assign

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand. seed==0 maps to defaultRNGSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed
// (SplitMix64 finalizer).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG returns an independent deterministic stream for (parent, stream).
func DeriveRNG(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = NewRNG(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
