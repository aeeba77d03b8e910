// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank
//
// reduce.go — restricting a Ranking to a subset of rankers or items.
//
// The engine is projected (see assign.Engine.ProjectLeft), labels follow
// their owners through the id remap and every ordering is dropped: the
// reduced assignment is rebuilt from scratch so old orderings no longer
// match.

package rank

import (
	"fmt"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

// ReduceRankers keeps only the rankers in ids, renumbered in ascending
// order, with a fresh assignment sized by `by`.
func (r *Ranking) ReduceRankers(ids []skeleton.Left, by assign.Param) (*Ranking, error) {
	eng, remap, err := r.eng.ProjectLeft(ids, by)
	if err != nil {
		return nil, fmt.Errorf("ReduceRankers: %w", err)
	}
	out := r.reduced(eng)
	for i := range out.ranked {
		out.ranked[i].info = r.ranked[i].info
	}
	for old, nu := range remap {
		if nu >= 0 {
			out.rankers[nu].info = r.rankers[old].info
		}
	}
	return out, nil
}

// ReduceRanked keeps only the items in ids, renumbered in ascending
// order, with a fresh assignment sized by `by`.
func (r *Ranking) ReduceRanked(ids []skeleton.Right, by assign.Param) (*Ranking, error) {
	eng, remap, err := r.eng.ProjectRight(ids, by)
	if err != nil {
		return nil, fmt.Errorf("ReduceRanked: %w", err)
	}
	out := r.reduced(eng)
	for i := range out.rankers {
		out.rankers[i].info = r.rankers[i].info
	}
	for old, nu := range remap {
		if nu >= 0 {
			out.ranked[nu].info = r.ranked[old].info
		}
	}
	return out, nil
}

func (r *Ranking) reduced(eng *assign.Engine) *Ranking {
	return &Ranking{
		eng:     eng,
		rankers: make([]ranker, eng.M()),
		ranked:  make([]ranked, eng.N()),
		log:     r.log,
	}
}
