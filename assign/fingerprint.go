// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign

package assign

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Fingerprint hashes the realized pair multiset (order-independent) with
// xxh3, seeded by (k, m, n). Equal assignments give equal fingerprints;
// different ones collide with negligible probability.
func (e *Engine) Fingerprint() uint64 {
	return FingerprintPairs(e.kmn, e.RealizedPairs())
}

// FingerprintPairs is Fingerprint over an explicit pair list.
func FingerprintPairs(prm skeleton.Params, pairs []skeleton.Pair) uint64 {
	sorted := skeleton.Sorted(pairs)
	buf := make([]byte, 16*len(sorted))
	for i, pr := range sorted {
		binary.LittleEndian.PutUint64(buf[16*i:], uint64(pr.L))
		binary.LittleEndian.PutUint64(buf[16*i+8:], uint64(pr.R))
	}
	seed := uint64(prm.K)<<42 ^ uint64(prm.M)<<21 ^ uint64(prm.N)
	return xxh3.HashSeed(buf, seed)
}
