// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank
//
// aggregate.go — per-item scores and grouped standings.
//
// A ranker with p items gives p points to its first item, p-1 to the next,
// down to 1. An item's average over its k rankers decides the standings;
// averages closer than Epsilon share a position.

package rank

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// RankerScore is the score one ranker gave an item. Dummy marks the
// neutral (p+1)/2 used for rankers without a valid ordering.
type RankerScore struct {
	Ranker skeleton.Left `json:"ranker"`
	Score  float64       `json:"score"`
	Dummy  bool          `json:"dummy,omitempty"`
}

// ItemScores collects the scores of one ranked item.
type ItemScores struct {
	Ranked skeleton.Right `json:"ranked"`
	Scores []RankerScore  `json:"scores"`
	Avg    float64        `json:"avg"`
}

// RankedAvg is one member of a Position.
type RankedAvg struct {
	Ranked skeleton.Right `json:"ranked"`
	Avg    float64        `json:"avg"`
}

// Position is a group of items with equal averages. After is the number
// of items standing strictly ahead of it.
type Position struct {
	After   int         `json:"after"`
	Members []RankedAvg `json:"members"`
}

// Ranked returns the ids of the position's members.
func (p Position) Ranked() []skeleton.Right {
	out := make([]skeleton.Right, len(p.Members))
	for i, m := range p.Members {
		out[i] = m.Ranked
	}
	return out
}

// WarningKind classifies what Force let through.
type WarningKind int

const (
	// WarnDummyScores: a ranker had no valid ordering; its items got dummy scores.
	WarnDummyScores WarningKind = iota
	// WarnAssignedMismatch: an item's contributors differ from its assigned rankers.
	WarnAssignedMismatch
)

func (w WarningKind) String() string {
	switch w {
	case WarnDummyScores:
		return "dummy-scores"
	case WarnAssignedMismatch:
		return "assigned-mismatch"
	}
	return fmt.Sprintf("WarningKind(%d)", int(w))
}

// Warning is a problem tolerated by a forced aggregation. ID is a ranker
// id for WarnDummyScores and a ranked id for WarnAssignedMismatch.
type Warning struct {
	Kind    WarningKind
	ID      int
	Message string
}

func (w Warning) String() string { return w.Kind.String() + ": " + w.Message }

// Epsilon is the tolerance under which two averages are equal:
// 1/(k*m*n*p*10000), far below the smallest gap two distinct averages
// can have.
func Epsilon(prm skeleton.Params) float64 {
	return 1 / (float64(prm.K) * float64(prm.M) * float64(prm.N) * float64(prm.P()) * 10000)
}

// CollectedScores scores every item and sorts them by descending average;
// equal averages keep ascending item id.
//
// The assignment must validate. Without force, any unset or invalid
// ordering is an error. With force, such rankers give the dummy score
// (p+1)/2 to each of their assigned items and a Warning is returned.
func (r *Ranking) CollectedScores(force bool) ([]ItemScores, []Warning, error) {
	if err := r.Check(); err != nil {
		return nil, nil, fmt.Errorf("CollectedScores: %w", err)
	}
	if !force {
		if err := r.CheckRankings(); err != nil {
			return nil, nil, fmt.Errorf("CollectedScores: %w", err)
		}
	}

	p := r.eng.P()
	dummy := float64(p+1) / 2
	items := make([]ItemScores, len(r.ranked))
	for x := range items {
		items[x].Ranked = skeleton.Right(x)
	}

	var warns []Warning
	for l := range r.rankers {
		id := skeleton.Left(l)
		if err := r.checkOrdering(id); err != nil {
			assigned, aerr := r.AssignedToRanker(id)
			if aerr != nil {
				return nil, nil, fmt.Errorf("CollectedScores: %w", aerr)
			}
			for _, x := range assigned {
				items[x].Scores = append(items[x].Scores, RankerScore{Ranker: id, Score: dummy, Dummy: true})
			}
			w := Warning{Kind: WarnDummyScores, ID: l, Message: err.Error()}
			r.log.Warn("dummy scores", "ranker", l, "score", dummy, "err", err)
			warns = append(warns, w)
			continue
		}
		for i, x := range r.rankers[l].order {
			items[x].Scores = append(items[x].Scores, RankerScore{Ranker: id, Score: float64(p - i)})
		}
	}

	for x := range items {
		it := &items[x]
		contributors := make([]skeleton.Left, len(it.Scores))
		sum := 0.0
		for i, s := range it.Scores {
			contributors[i] = s.Ranker
			sum += s.Score
		}
		if len(it.Scores) > 0 {
			it.Avg = sum / float64(len(it.Scores))
		}

		assigned, err := r.AssignedToRanked(it.Ranked)
		if err != nil {
			return nil, nil, fmt.Errorf("CollectedScores: %w", err)
		}
		slices.Sort(contributors)
		if !slices.Equal(contributors, assigned) {
			err := fmt.Errorf("ranked %d: contributors %v, assigned %v: %w", x, contributors, assigned, ErrAssignedMismatch)
			if !force {
				return nil, nil, fmt.Errorf("CollectedScores: %w", err)
			}
			r.log.Warn("assigned mismatch", "ranked", x, "err", err)
			warns = append(warns, Warning{Kind: WarnAssignedMismatch, ID: x, Message: err.Error()})
		}
	}

	slices.SortStableFunc(items, func(a, b ItemScores) int { return cmp.Compare(b.Avg, a.Avg) })
	return items, warns, nil
}

// Results groups CollectedScores into positions. A new position starts
// when an average falls more than Epsilon below the first average of the
// current position.
func (r *Ranking) Results(force bool) ([]Position, []Warning, error) {
	items, warns, err := r.CollectedScores(force)
	if err != nil {
		return nil, nil, err
	}
	return Group(items, Epsilon(r.eng.Params()), float64(r.eng.P())), warns, nil
}

// Group splits items, sorted by descending average, into positions.
// top is an upper bound on every average.
func Group(items []ItemScores, eps, top float64) []Position {
	var out []Position
	base := top + eps + 1
	for i, it := range items {
		if it.Avg < base-eps {
			out = append(out, Position{After: i})
			base = it.Avg
		}
		last := &out[len(out)-1]
		last.Members = append(last.Members, RankedAvg{Ranked: it.Ranked, Avg: it.Avg})
	}
	return out
}
