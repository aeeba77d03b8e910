// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// feasible.go — exact zero-forbidden feasibility via max-flow.
//
// A zero-forbidden assignment is a subgraph of the allowed pairs with every
// left degree p and every right degree in {k, k+1}. With lower bounds:
//
//	S  → left   [p, p]
//	left → right [0, 1]   for every allowed pair
//	right → T   [k, k+1]
//	T  → S      [0, ∞)
//
// The usual S'/T' reduction turns this circulation into one max-flow that
// must saturate m·p + n·k units.

package assign

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kmnpairs/flow"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

// flowModel is the reduction network plus the ids of its left→right edges.
type flowModel struct {
	nw     *flow.Network
	src    int // S'
	dst    int // T'
	demand int64
	edges  map[int]skeleton.Pair // forward edge id → allowed pair
}

func (e *Engine) buildFlowModel() (*flowModel, error) {
	if err := e.kmn.Validate(); err != nil {
		return nil, err
	}
	k, m, n, p := e.kmn.K, e.kmn.M, e.kmn.N, e.P()
	s, t := 0, m+n+1
	sp, tp := m+n+2, m+n+3
	left := func(l int) int { return 1 + l }
	right := func(r int) int { return 1 + m + r }

	fm := &flowModel{
		nw:     flow.NewNetwork(m + n + 4),
		src:    sp,
		dst:    tp,
		demand: int64(m*p + n*k),
		edges:  make(map[int]skeleton.Pair),
	}
	add := func(u, v int, c int64) int {
		id, err := fm.nw.AddEdge(u, v, c)
		if err != nil {
			// vertices and capacities are in range by construction
			panic(fmt.Sprintf("assign: flow model: %v", err))
		}
		return id
	}

	fset := skeleton.NewSet(e.forbidden)
	for l := 0; l < m; l++ {
		add(sp, left(l), int64(p))
		for r := 0; r < n; r++ {
			pr := skeleton.Pair{L: skeleton.Left(l), R: skeleton.Right(r)}
			if fset.Has(pr) {
				continue
			}
			fm.edges[add(left(l), right(r), 1)] = pr
		}
	}
	add(s, tp, int64(m*p))
	for r := 0; r < n; r++ {
		add(right(r), t, 1)
		add(right(r), tp, int64(k))
	}
	add(sp, t, int64(n*k))
	add(t, s, int64(m*p))
	return fm, nil
}

func (fm *flowModel) solve(ctx context.Context) (bool, error) {
	got, err := flow.Dinic(fm.nw, fm.src, fm.dst, flow.FlowOptions{Ctx: ctx})
	if err != nil {
		return false, err
	}
	return got == fm.demand, nil
}

// Feasible reports whether some assignment for (k, m, n) avoids every
// forbidden pair. It is exact, unlike CheckForbidden.
// Complexity: one Dinic run on O(m + n) vertices and O(m·n) edges.
func (e *Engine) Feasible(ctx context.Context) (bool, error) {
	fm, err := e.buildFlowModel()
	if err != nil {
		return false, fmt.Errorf("Feasible: %w", err)
	}
	ok, err := fm.solve(ctx)
	if err != nil {
		return false, fmt.Errorf("Feasible: %w", err)
	}
	e.log.Debug("feasibility", "feasible", ok, "forbidden", len(e.forbidden))
	return ok, nil
}

// SolveFlow installs a zero-forbidden assignment read off the max-flow
// when one exists, and reports whether it did. The engine is unchanged
// when the answer is false.
func (e *Engine) SolveFlow(ctx context.Context) (bool, error) {
	fm, err := e.buildFlowModel()
	if err != nil {
		return false, fmt.Errorf("SolveFlow: %w", err)
	}
	ok, err := fm.solve(ctx)
	if err != nil {
		return false, fmt.Errorf("SolveFlow: %w", err)
	}
	if !ok {
		return false, nil
	}
	pairs := make([]skeleton.Pair, 0, e.kmn.Size())
	for id, pr := range fm.edges {
		if fm.nw.Flow(id) > 0 {
			pairs = append(pairs, pr)
		}
	}
	skeleton.SortByLeft(pairs)
	if err := ValidatePairs(e.kmn, pairs); err != nil {
		return false, fmt.Errorf("SolveFlow: %w", err)
	}
	e.skel = pairs
	e.left.Reset()
	e.right.Reset()
	e.log.Info("flow solution installed", "pairs", len(pairs))
	return true, nil
}
