// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// snapshot.go — exchange shapes: the assignment snapshot and LeftRight.
//
// Wire format:
//
//	{"k":1,"m":3,"n":4,"assignments":[[0,0],[1,1],...],"forbidden":[[0,1]]}
//
// Loading rebuilds the skeleton directly from "assignments" with identity
// permutations, bypassing the cyclic constructor, and does NOT validate the
// structure; callers run Validate afterwards.

package assign

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Snapshot is the persisted form of an Engine.
type Snapshot struct {
	K           int             `json:"k"`
	M           int             `json:"m"`
	N           int             `json:"n"`
	Assignments []skeleton.Pair `json:"assignments"`
	Forbidden   []skeleton.Pair `json:"forbidden"`
}

// Params returns the snapshot's (k, m, n).
func (s Snapshot) Params() skeleton.Params {
	return skeleton.Params{K: s.K, M: s.M, N: s.N}
}

// Snapshot captures (k, m, n), the realized pairs and the forbidden set.
// The backup is not part of it.
func (e *Engine) Snapshot() Snapshot {
	forbidden := e.Forbidden()
	if forbidden == nil {
		forbidden = []skeleton.Pair{}
	}
	return Snapshot{
		K:           e.kmn.K,
		M:           e.kmn.M,
		N:           e.kmn.N,
		Assignments: e.RealizedPairs(),
		Forbidden:   forbidden,
	}
}

// FromSnapshot rebuilds an Engine from s. It fails with ErrBadSnapshot when
// m or n is not positive, when an id is out of range, or when the forbidden
// list holds duplicates. Structural validity is not checked.
func FromSnapshot(s Snapshot, opts ...Option) (*Engine, error) {
	if s.M < 1 || s.N < 1 {
		return nil, fmt.Errorf("FromSnapshot: m=%d, n=%d: %w", s.M, s.N, ErrBadSnapshot)
	}
	e := newEngine(s.Params(), slices.Clone(s.Assignments), opts...)
	if err := e.checkPairsInRange("assignments", s.Assignments); err != nil {
		return nil, fmt.Errorf("FromSnapshot: %w: %w", ErrBadSnapshot, err)
	}
	if err := e.checkPairsInRange("forbidden", s.Forbidden); err != nil {
		return nil, fmt.Errorf("FromSnapshot: %w: %w", ErrBadSnapshot, err)
	}
	forbidden := skeleton.Sorted(s.Forbidden)
	for i := 1; i < len(forbidden); i++ {
		if forbidden[i] == forbidden[i-1] {
			return nil, fmt.Errorf("FromSnapshot: forbidden %v: %w: %w", forbidden[i], ErrBadSnapshot, ErrDuplicateForbidden)
		}
	}
	e.forbidden = forbidden
	return e, nil
}

// DecodeSnapshot reads one JSON snapshot from r.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("DecodeSnapshot: %w", err)
	}
	return s, nil
}

// Encode writes s as indented JSON.
func (s Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("Snapshot.Encode: %w", err)
	}
	return nil
}

// LeftRight is the generic "left ids / right ids" shape. It reports one
// neighborhood, carries one ordering (Left holds the single ranker id) or
// names a forbidden cross product.
type LeftRight struct {
	Left  []skeleton.Left  `json:"left"`
	Right []skeleton.Right `json:"right"`
}

// NeighborhoodsByLeft returns, for every left id, its sorted right partners.
func (e *Engine) NeighborhoodsByLeft() []LeftRight {
	pairs := e.RealizedPairs()
	out := make([]LeftRight, e.kmn.M)
	for l := range out {
		out[l] = LeftRight{
			Left:  []skeleton.Left{skeleton.Left(l)},
			Right: skeleton.RightNeighbors(pairs, skeleton.Left(l)),
		}
	}
	return out
}

// NeighborhoodsByRight returns, for every right id, its sorted left partners.
func (e *Engine) NeighborhoodsByRight() []LeftRight {
	pairs := e.RealizedPairs()
	out := make([]LeftRight, e.kmn.N)
	for r := range out {
		out[r] = LeftRight{
			Left:  skeleton.LeftNeighbors(pairs, skeleton.Right(r)),
			Right: []skeleton.Right{skeleton.Right(r)},
		}
	}
	return out
}
