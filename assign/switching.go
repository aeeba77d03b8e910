// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// switching.go — the fixed-point switching reduction ("skeleton breaking").
//
// A switch replaces (l1,r1), (l2,r2) by (l1,r2), (l2,r1) when l1≠l2, r1≠r2
// and neither cross pair is already an edge. Degrees are unchanged by
// construction. Each pass runs two phases:
//
//	A: forbidden × forbidden; accepted when at least one result is allowed.
//	B: for forbidden pairs with no phase-A switch in this pass,
//	   forbidden × allowed; accepted only when both results are allowed.
//
// Every accepted switch lowers the forbidden count by at least one, so the
// loop terminates; a pass without reductions is the fixed point.

package assign

import (
	"fmt"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// SwitchResult reports one BreakSkeleton run.
type SwitchResult struct {
	Before   int // forbidden pairs realized before
	After    int // forbidden pairs realized after
	Switches int // accepted cross-switches
	Passes   int // passes including the final empty one
}

// SwitchPairs runs the switching reduction on a copy of pairs, which must
// pass ValidatePairs for prm. The input slice is not modified.
func SwitchPairs(prm skeleton.Params, pairs, forbidden []skeleton.Pair) ([]skeleton.Pair, SwitchResult, error) {
	if err := ValidatePairs(prm, pairs); err != nil {
		return nil, SwitchResult{}, fmt.Errorf("SwitchPairs: input: %w", err)
	}
	sw := newSwitcher(prm, pairs, forbidden)
	res := sw.run()
	return sw.pairs, res, nil
}

// BreakSkeleton runs the switching reduction on the realized pairs. The
// result is re-validated; on failure the previous skeleton is kept and
// ErrSwitchRejected is returned. On success the result becomes the new
// skeleton with identity permutations.
func (e *Engine) BreakSkeleton() (SwitchResult, error) {
	out, res, err := SwitchPairs(e.kmn, e.RealizedPairs(), e.forbidden)
	if err != nil {
		return SwitchResult{}, fmt.Errorf("BreakSkeleton: %w", err)
	}
	if verr := ValidatePairs(e.kmn, out); verr != nil {
		e.log.Warn("switching result rejected", "err", verr)
		return res, fmt.Errorf("BreakSkeleton: %w: %w", ErrSwitchRejected, verr)
	}
	e.skel = out
	e.left.Reset()
	e.right.Reset()
	e.log.Info("skeleton broken", "before", res.Before, "after", res.After, "switches", res.Switches, "passes", res.Passes)
	return res, nil
}

// switcher holds the working pair list and both neighbor indexes.
type switcher struct {
	pairs     []skeleton.Pair
	forbidden skeleton.Set
	leftNbrs  [][]skeleton.Right
	rightNbrs [][]skeleton.Left
}

func newSwitcher(prm skeleton.Params, pairs, forbidden []skeleton.Pair) *switcher {
	sw := &switcher{
		pairs:     append([]skeleton.Pair(nil), pairs...),
		forbidden: skeleton.NewSet(forbidden),
		leftNbrs:  make([][]skeleton.Right, prm.M),
		rightNbrs: make([][]skeleton.Left, prm.N),
	}
	for _, pr := range sw.pairs {
		sw.leftNbrs[pr.L] = append(sw.leftNbrs[pr.L], pr.R)
		sw.rightNbrs[pr.R] = append(sw.rightNbrs[pr.R], pr.L)
	}
	return sw
}

func (sw *switcher) isForbidden(i int) bool { return sw.forbidden.Has(sw.pairs[i]) }

func (sw *switcher) count() int {
	c := 0
	for i := range sw.pairs {
		if sw.isForbidden(i) {
			c++
		}
	}
	return c
}

func (sw *switcher) run() SwitchResult {
	res := SwitchResult{Before: sw.count()}
	for {
		res.Passes++
		n := sw.pass()
		res.Switches += n
		if n == 0 {
			break
		}
	}
	res.After = sw.count()
	return res
}

// pass performs one A+B sweep and returns the number of accepted switches.
func (sw *switcher) pass() int {
	var fidx []int
	for i := range sw.pairs {
		if sw.isForbidden(i) {
			fidx = append(fidx, i)
		}
	}
	if len(fidx) == 0 {
		return 0
	}

	reduced := 0
	switched := make(map[int]bool)
	for a, i := range fidx {
		if !sw.isForbidden(i) {
			continue
		}
		for _, j := range fidx[a+1:] {
			if !sw.isForbidden(j) {
				continue
			}
			if sw.try(i, j, sw.atLeastOneAllowed) {
				switched[i], switched[j] = true, true
				reduced++
				break
			}
		}
	}

	for _, i := range fidx {
		if switched[i] || !sw.isForbidden(i) {
			continue
		}
		for j := range sw.pairs {
			if j == i || sw.isForbidden(j) {
				continue
			}
			if sw.try(i, j, sw.bothAllowed) {
				reduced++
				break
			}
		}
	}
	return reduced
}

func (sw *switcher) atLeastOneAllowed(c1, c2 skeleton.Pair) bool {
	return !sw.forbidden.Has(c1) || !sw.forbidden.Has(c2)
}

func (sw *switcher) bothAllowed(c1, c2 skeleton.Pair) bool {
	return !sw.forbidden.Has(c1) && !sw.forbidden.Has(c2)
}

// try performs the cross-switch of positions i and j when it is simple and
// accepted, and reports whether it did.
func (sw *switcher) try(i, j int, accept func(c1, c2 skeleton.Pair) bool) bool {
	p1, p2 := sw.pairs[i], sw.pairs[j]
	if p1.L == p2.L || p1.R == p2.R {
		return false
	}
	c1 := skeleton.Pair{L: p1.L, R: p2.R}
	c2 := skeleton.Pair{L: p2.L, R: p1.R}
	if sw.hasEdge(c1) || sw.hasEdge(c2) {
		return false
	}
	if !accept(c1, c2) {
		return false
	}
	replaceRight(sw.leftNbrs[p1.L], p1.R, p2.R)
	replaceRight(sw.leftNbrs[p2.L], p2.R, p1.R)
	replaceLeft(sw.rightNbrs[p1.R], p1.L, p2.L)
	replaceLeft(sw.rightNbrs[p2.R], p2.L, p1.L)
	sw.pairs[i], sw.pairs[j] = c1, c2
	return true
}

func (sw *switcher) hasEdge(pr skeleton.Pair) bool {
	for _, r := range sw.leftNbrs[pr.L] {
		if r == pr.R {
			return true
		}
	}
	return false
}

// replaceRight and replaceLeft panic when old is missing: the neighbor
// indexes are out of sync with the pair list, which is a bug here.
func replaceRight(list []skeleton.Right, old, repl skeleton.Right) {
	for i, r := range list {
		if r == old {
			list[i] = repl
			return
		}
	}
	panic(fmt.Sprintf("assign: switching bookkeeping lost right %d", old))
}

func replaceLeft(list []skeleton.Left, old, repl skeleton.Left) {
	for i, l := range list {
		if l == old {
			list[i] = repl
			return
		}
	}
	panic(fmt.Sprintf("assign: switching bookkeeping lost left %d", old))
}
