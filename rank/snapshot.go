// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank
//
// snapshot.go — the persisted form of a Ranking.
//
// Wire format:
//
//	{"assignments_data": {...assign.Snapshot...},
//	 "rankers": [{"info": "Ann", "ranking": [3, 2]}, {"info": null, "ranking": null}],
//	 "ranked":  [{"info": "0"}, ...]}
//
// Orderings are restored verbatim. They are re-tested by every aggregation.

package rank

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Snapshot is the JSON form of a Ranking.
type Snapshot struct {
	AssignmentsData *assign.Snapshot `json:"assignments_data"`
	Rankers         []RankerSnapshot `json:"rankers"`
	Ranked          []RankedSnapshot `json:"ranked"`
}

// RankerSnapshot is one ranker's label and ordering; nil means absent.
type RankerSnapshot struct {
	Info    *string          `json:"info"`
	Ranking []skeleton.Right `json:"ranking"`
}

// RankedSnapshot is one item's label.
type RankedSnapshot struct {
	Info *string `json:"info"`
}

// Snapshot captures the engine, labels and orderings.
func (r *Ranking) Snapshot() Snapshot {
	eng := r.eng.Snapshot()
	s := Snapshot{
		AssignmentsData: &eng,
		Rankers:         make([]RankerSnapshot, len(r.rankers)),
		Ranked:          make([]RankedSnapshot, len(r.ranked)),
	}
	for i, rk := range r.rankers {
		s.Rankers[i] = RankerSnapshot{Info: rk.info, Ranking: slices.Clone(rk.order)}
	}
	for i, rd := range r.ranked {
		s.Ranked[i] = RankedSnapshot{Info: rd.info}
	}
	return s
}

// FromSnapshot rebuilds a Ranking. A missing assignments_data is
// ErrNoAssignments; label vectors whose length differs from m or n are
// assign.ErrBadSnapshot.
func FromSnapshot(s Snapshot, opts ...Option) (*Ranking, error) {
	if s.AssignmentsData == nil {
		return nil, fmt.Errorf("rank.FromSnapshot: %w", ErrNoAssignments)
	}
	cfg := newRankingConfig(opts...)
	eng, err := assign.FromSnapshot(*s.AssignmentsData, assign.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("rank.FromSnapshot: %w", err)
	}
	if len(s.Rankers) != eng.M() || len(s.Ranked) != eng.N() {
		return nil, fmt.Errorf("rank.FromSnapshot: %d rankers, %d ranked for m=%d, n=%d: %w",
			len(s.Rankers), len(s.Ranked), eng.M(), eng.N(), assign.ErrBadSnapshot)
	}
	r := &Ranking{
		eng:     eng,
		rankers: make([]ranker, eng.M()),
		ranked:  make([]ranked, eng.N()),
		log:     cfg.logger,
	}
	for i, rk := range s.Rankers {
		r.rankers[i] = ranker{info: rk.Info, order: slices.Clone(rk.Ranking)}
		if len(rk.Ranking) == 0 {
			r.rankers[i].order = nil
		}
	}
	for i, rd := range s.Ranked {
		r.ranked[i].info = rd.Info
	}
	return r, nil
}

// DecodeSnapshot reads one JSON ranking snapshot from rd.
func DecodeSnapshot(rd io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(rd).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("rank.DecodeSnapshot: %w", err)
	}
	return s, nil
}

// Encode writes s as indented JSON.
func (s Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("rank.Snapshot.Encode: %w", err)
	}
	return nil
}
