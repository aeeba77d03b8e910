// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank
//
// orderings.go — setting, testing and simulating rankers' orderings.

package rank

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

// TestRanking reports whether order is a valid ordering for ranker l: its
// sorted ids must equal the ranker's assigned items.
func (r *Ranking) TestRanking(l skeleton.Left, order []skeleton.Right) error {
	assigned, err := r.AssignedToRanker(l)
	if err != nil {
		return err
	}
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	if !slices.Equal(sorted, assigned) {
		return fmt.Errorf("ranker %d: got %v, assigned %v: %w", l, order, assigned, ErrInvalidRanking)
	}
	return nil
}

// SetRanking stores order, best first, for ranker l. An empty order
// clears the ranking.
func (r *Ranking) SetRanking(l skeleton.Left, order []skeleton.Right) error {
	if err := r.checkRanker(l); err != nil {
		return fmt.Errorf("SetRanking: %w", err)
	}
	if len(order) == 0 {
		r.rankers[l].order = nil
		return nil
	}
	if err := r.TestRanking(l, order); err != nil {
		return fmt.Errorf("SetRanking: %w", err)
	}
	r.rankers[l].order = slices.Clone(order)
	return nil
}

// SetRankingFrom stores lr.Right as the ordering of the single ranker in
// lr.Left.
func (r *Ranking) SetRankingFrom(lr assign.LeftRight) error {
	if len(lr.Left) != 1 {
		return fmt.Errorf("SetRankingFrom: got %d rankers: %w", len(lr.Left), ErrBadLeftRight)
	}
	return r.SetRanking(lr.Left[0], lr.Right)
}

// ClearRanking unsets the ordering of ranker l.
func (r *Ranking) ClearRanking(l skeleton.Left) error {
	return r.SetRanking(l, nil)
}

// Ranking returns a copy of ranker l's ordering; ok is false when unset.
func (r *Ranking) Ranking(l skeleton.Left) (order []skeleton.Right, ok bool) {
	if r.checkRanker(l) != nil || r.rankers[l].order == nil {
		return nil, false
	}
	return slices.Clone(r.rankers[l].order), true
}

// CheckRankings re-tests every ranker's ordering against the current
// assignment and joins one error per unset or invalid ranker.
func (r *Ranking) CheckRankings() error {
	var errs []error
	for l := range r.rankers {
		if err := r.checkOrdering(skeleton.Left(l)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Ranking) checkOrdering(l skeleton.Left) error {
	order := r.rankers[l].order
	if order == nil {
		return fmt.Errorf("ranker %d: %w", l, ErrMissingRanking)
	}
	return r.TestRanking(l, order)
}

// ScoredItem is one item with the score a ranker gave it; higher is better.
type ScoredItem struct {
	Ranked skeleton.Right
	Score  float64
}

// SetRankingByScores orders ranker l's items by descending score. scores
// must cover exactly the assigned items. Equal scores keep input order.
func (r *Ranking) SetRankingByScores(l skeleton.Left, scores []ScoredItem) error {
	assigned, err := r.AssignedToRanker(l)
	if err != nil {
		return fmt.Errorf("SetRankingByScores: %w", err)
	}
	ids := make([]skeleton.Right, len(scores))
	for i, s := range scores {
		ids[i] = s.Ranked
	}
	slices.Sort(ids)
	if !slices.Equal(ids, assigned) {
		return fmt.Errorf("SetRankingByScores: ranker %d: %w", l, ErrBadScores)
	}

	sorted := slices.Clone(scores)
	slices.SortStableFunc(sorted, func(a, b ScoredItem) int { return cmp.Compare(b.Score, a.Score) })
	order := make([]skeleton.Right, len(sorted))
	for i, s := range sorted {
		order[i] = s.Ranked
	}
	r.rankers[l].order = order
	return nil
}

// SimulateRankings gives every ranker an ordering drawn from noisy
// observations of score: each assigned item is seen as
// score(item) + maxDev*u with u uniform in [-1, 1).
func (r *Ranking) SimulateRankings(rng *rand.Rand, maxDev float64, score func(skeleton.Right) float64) error {
	if rng == nil {
		rng = r.eng.Rand()
	}
	for l := range r.rankers {
		id := skeleton.Left(l)
		assigned, err := r.AssignedToRanker(id)
		if err != nil {
			return err
		}
		observed := make([]ScoredItem, len(assigned))
		for i, x := range assigned {
			observed[i] = ScoredItem{Ranked: x, Score: score(x) + maxDev*(2*rng.Float64()-1)}
		}
		if err := r.SetRankingByScores(id, observed); err != nil {
			return err
		}
	}
	return nil
}
