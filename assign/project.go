// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// project.go — projection of an Engine onto a subset of left or right ids.
//
// The projected Engine is built fresh from the reduced sizes and the
// caller's parameter; it is never a filtered copy. Forbidden pairs whose
// kept-side id survives are carried over, with that id renumbered and the
// other side's id unchanged.

package assign

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Param chooses how the projected Engine is parameterized.
type Param struct {
	byP   bool
	value int
}

// ByK builds the projection with New(k, m', n').
func ByK(k int) Param { return Param{value: k} }

// ByP builds the projection with NewMNP(m', n', p).
func ByP(p int) Param { return Param{byP: true, value: p} }

func (pm Param) String() string {
	if pm.byP {
		return fmt.Sprintf("p=%d", pm.value)
	}
	return fmt.Sprintf("k=%d", pm.value)
}

func (pm Param) build(m, n int, opts ...Option) (*Engine, error) {
	if pm.byP {
		return NewMNP(m, n, pm.value, opts...)
	}
	return New(pm.value, m, n, opts...)
}

// ProjectLeft returns a fresh Engine over the left ids in ids (renumbered
// 0..len(ids)-1 in ascending order) and all n right ids. remap[old] is the
// new id of a kept left id, or -1. ids need not be sorted.
func (e *Engine) ProjectLeft(ids []skeleton.Left, by Param) (*Engine, []int, error) {
	raw := make([]int, len(ids))
	for i, l := range ids {
		raw[i] = int(l)
	}
	remap, err := subsetRemap("ProjectLeft", raw, e.kmn.M)
	if err != nil {
		return nil, nil, err
	}
	out, err := by.build(len(raw), e.kmn.N, WithLogger(e.log), WithRand(e.rng))
	if err != nil {
		return nil, nil, fmt.Errorf("ProjectLeft(%s): %w", by, err)
	}
	for _, pr := range e.forbidden {
		if nl := remap[pr.L]; nl >= 0 {
			out.forbidden = append(out.forbidden, skeleton.Pair{L: skeleton.Left(nl), R: pr.R})
		}
	}
	e.log.Debug("projected left", "kept", len(raw), "by", by, "forbidden", len(out.forbidden))
	return out, remap, nil
}

// ProjectRight is the right-side counterpart of ProjectLeft.
func (e *Engine) ProjectRight(ids []skeleton.Right, by Param) (*Engine, []int, error) {
	raw := make([]int, len(ids))
	for i, r := range ids {
		raw[i] = int(r)
	}
	remap, err := subsetRemap("ProjectRight", raw, e.kmn.N)
	if err != nil {
		return nil, nil, err
	}
	out, err := by.build(e.kmn.M, len(raw), WithLogger(e.log), WithRand(e.rng))
	if err != nil {
		return nil, nil, fmt.Errorf("ProjectRight(%s): %w", by, err)
	}
	for _, pr := range e.forbidden {
		if nr := remap[pr.R]; nr >= 0 {
			out.forbidden = append(out.forbidden, skeleton.Pair{L: pr.L, R: skeleton.Right(nr)})
		}
	}
	e.log.Debug("projected right", "kept", len(raw), "by", by, "forbidden", len(out.forbidden))
	return out, remap, nil
}

// subsetRemap sorts ids in place, rejects empty, out-of-range or duplicate
// subsets and returns the old→new id map over 0..size-1.
func subsetRemap(method string, ids []int, size int) ([]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: empty subset: %w", method, ErrBadSubset)
	}
	slices.Sort(ids)
	for i, id := range ids {
		if id < 0 || id >= size {
			return nil, fmt.Errorf("%s: id %d not in [0,%d): %w", method, id, size, ErrBadSubset)
		}
		if i > 0 && ids[i-1] == id {
			return nil, fmt.Errorf("%s: duplicate id %d: %w", method, id, ErrBadSubset)
		}
	}
	remap := make([]int, size)
	for i := range remap {
		remap[i] = -1
	}
	for i, id := range ids {
		remap[id] = i
	}
	return remap, nil
}
