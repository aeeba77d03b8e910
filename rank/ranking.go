// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank
//
// ranking.go — the Ranking type, labels and assignment queries.
//
// A Ranking wraps an *assign.Engine with m rankers (left ids) and n ranked
// items (right ids). Orderings are checked against the engine's realized
// pairs when set and again before every aggregation, because the engine may
// have changed in between.

package rank

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

type ranker struct {
	info  *string
	order []skeleton.Right // nil = unset
}

type ranked struct {
	info *string
}

// Ranking aggregates rankers' private orderings into standings.
// Not safe for concurrent use.
type Ranking struct {
	eng     *assign.Engine
	rankers []ranker
	ranked  []ranked
	log     Logger
}

// New wraps eng. Rankers start unset; labels default to decimal ids.
func New(eng *assign.Engine, opts ...Option) (*Ranking, error) {
	if eng == nil {
		return nil, fmt.Errorf("rank.New: %w", ErrNoAssignments)
	}
	cfg := newRankingConfig(opts...)
	r := &Ranking{
		eng:     eng,
		rankers: make([]ranker, eng.M()),
		ranked:  make([]ranked, eng.N()),
		log:     cfg.logger,
	}
	if cfg.defaultLabels {
		for i := range r.rankers {
			r.rankers[i].info = label(i)
		}
		for i := range r.ranked {
			r.ranked[i].info = label(i)
		}
	}
	return r, nil
}

func label(i int) *string {
	s := strconv.Itoa(i)
	return &s
}

// Engine returns the wrapped engine. Mutating it may invalidate orderings.
func (r *Ranking) Engine() *assign.Engine { return r.eng }

// M returns the number of rankers.
func (r *Ranking) M() int { return len(r.rankers) }

// N returns the number of ranked items.
func (r *Ranking) N() int { return len(r.ranked) }

func (r *Ranking) checkRanker(l skeleton.Left) error {
	if l < 0 || int(l) >= len(r.rankers) {
		return fmt.Errorf("ranker %d not in [0,%d): %w", l, len(r.rankers), assign.ErrIndexOutOfRange)
	}
	return nil
}

func (r *Ranking) checkRanked(x skeleton.Right) error {
	if x < 0 || int(x) >= len(r.ranked) {
		return fmt.Errorf("ranked %d not in [0,%d): %w", x, len(r.ranked), assign.ErrIndexOutOfRange)
	}
	return nil
}

// RankerInfo returns the label of ranker l, if any.
func (r *Ranking) RankerInfo(l skeleton.Left) (string, bool) {
	if r.checkRanker(l) != nil || r.rankers[l].info == nil {
		return "", false
	}
	return *r.rankers[l].info, true
}

// SetRankerInfo labels ranker l.
func (r *Ranking) SetRankerInfo(l skeleton.Left, info string) error {
	if err := r.checkRanker(l); err != nil {
		return fmt.Errorf("SetRankerInfo: %w", err)
	}
	r.rankers[l].info = &info
	return nil
}

// ClearRankerInfo removes the label of ranker l.
func (r *Ranking) ClearRankerInfo(l skeleton.Left) error {
	if err := r.checkRanker(l); err != nil {
		return fmt.Errorf("ClearRankerInfo: %w", err)
	}
	r.rankers[l].info = nil
	return nil
}

// RankedInfo returns the label of item x, if any.
func (r *Ranking) RankedInfo(x skeleton.Right) (string, bool) {
	if r.checkRanked(x) != nil || r.ranked[x].info == nil {
		return "", false
	}
	return *r.ranked[x].info, true
}

// SetRankedInfo labels item x.
func (r *Ranking) SetRankedInfo(x skeleton.Right, info string) error {
	if err := r.checkRanked(x); err != nil {
		return fmt.Errorf("SetRankedInfo: %w", err)
	}
	r.ranked[x].info = &info
	return nil
}

// ClearRankedInfo removes the label of item x.
func (r *Ranking) ClearRankedInfo(x skeleton.Right) error {
	if err := r.checkRanked(x); err != nil {
		return fmt.Errorf("ClearRankedInfo: %w", err)
	}
	r.ranked[x].info = nil
	return nil
}

// AssignedToRanker returns the sorted items assigned to ranker l.
// l == m is out of range.
func (r *Ranking) AssignedToRanker(l skeleton.Left) ([]skeleton.Right, error) {
	out, err := r.eng.AssignedToLeft(l)
	if err != nil {
		return nil, fmt.Errorf("AssignedToRanker: %w", err)
	}
	return out, nil
}

// AssignedToRanked returns the sorted rankers assigned to item x.
// x == n is out of range.
func (r *Ranking) AssignedToRanked(x skeleton.Right) ([]skeleton.Left, error) {
	out, err := r.eng.AssignedToRight(x)
	if err != nil {
		return nil, fmt.Errorf("AssignedToRanked: %w", err)
	}
	return out, nil
}

// Check runs the engine's structural validation.
func (r *Ranking) Check() error {
	if err := r.eng.Validate(); err != nil {
		return fmt.Errorf("Ranking.Check: %w", err)
	}
	return nil
}

// Warnings returns the engine's advisory forbidden-set warnings. Run it
// after Check.
func (r *Ranking) Warnings() []assign.Warning {
	return r.eng.CheckForbidden()
}
