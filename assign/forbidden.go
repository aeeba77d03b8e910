// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// forbidden.go — forbidden-pair bookkeeping.
//
// The forbidden set lives in realized-id space, is kept sorted by
// (left, right) and never holds duplicates. It changes only through the
// explicit Add*/Remove* methods below.

package assign

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// AddForbidden inserts (l, r). It fails with ErrIndexOutOfRange or
// ErrDuplicateForbidden and leaves the set unchanged on failure.
// Complexity: O(|F|) for the sorted insert.
func (e *Engine) AddForbidden(l skeleton.Left, r skeleton.Right) error {
	pr := skeleton.Pair{L: l, R: r}
	if err := e.checkPair(pr); err != nil {
		return fmt.Errorf("AddForbidden%v: %w", pr, err)
	}
	pos, found := slices.BinarySearchFunc(e.forbidden, pr, comparePairs)
	if found {
		return fmt.Errorf("AddForbidden%v: %w", pr, ErrDuplicateForbidden)
	}
	e.forbidden = slices.Insert(e.forbidden, pos, pr)
	return nil
}

// AddForbiddenCross adds every pair of lr.Left × lr.Right. Failures do not
// stop the remaining pairs; they are returned joined. The count of pairs
// actually added is returned in any case.
func (e *Engine) AddForbiddenCross(lr LeftRight) (int, error) {
	var errs []error
	added := 0
	for _, pr := range skeleton.CrossProduct(lr.Left, lr.Right) {
		if err := e.AddForbidden(pr.L, pr.R); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

// AddRandomForbidden draws count uniform pairs and adds the new ones.
func (e *Engine) AddRandomForbidden(rng *rand.Rand, count int) int {
	return e.addRandom(count, func() skeleton.Pair {
		return skeleton.Pair{L: skeleton.Left(rng.Intn(e.kmn.M)), R: skeleton.Right(rng.Intn(e.kmn.N))}
	})
}

// AddRandomForbiddenLeft draws count random right ids for the fixed left l.
func (e *Engine) AddRandomForbiddenLeft(rng *rand.Rand, count int, l skeleton.Left) (int, error) {
	if err := e.checkLeft(l); err != nil {
		return 0, fmt.Errorf("AddRandomForbiddenLeft: %w", err)
	}
	return e.addRandom(count, func() skeleton.Pair {
		return skeleton.Pair{L: l, R: skeleton.Right(rng.Intn(e.kmn.N))}
	}), nil
}

// AddRandomForbiddenRight draws count random left ids for the fixed right r.
func (e *Engine) AddRandomForbiddenRight(rng *rand.Rand, count int, r skeleton.Right) (int, error) {
	if err := e.checkRight(r); err != nil {
		return 0, fmt.Errorf("AddRandomForbiddenRight: %w", err)
	}
	return e.addRandom(count, func() skeleton.Pair {
		return skeleton.Pair{L: skeleton.Left(rng.Intn(e.kmn.M)), R: r}
	}), nil
}

func (e *Engine) addRandom(count int, draw func() skeleton.Pair) int {
	added := 0
	for i := 0; i < count; i++ {
		pr := draw()
		if err := e.AddForbidden(pr.L, pr.R); err != nil {
			e.log.Debug("random forbidden skipped", "pair", pr, "err", err)
			continue
		}
		added++
	}
	return added
}

// RemoveForbiddenWhere extracts and returns every forbidden pair matching pred.
func (e *Engine) RemoveForbiddenWhere(pred func(skeleton.Pair) bool) []skeleton.Pair {
	var removed []skeleton.Pair
	kept := e.forbidden[:0]
	for _, pr := range e.forbidden {
		if pred(pr) {
			removed = append(removed, pr)
			continue
		}
		kept = append(kept, pr)
	}
	e.forbidden = kept
	return removed
}

// RemoveForbidden removes the exact pair (l, r), if present.
func (e *Engine) RemoveForbidden(l skeleton.Left, r skeleton.Right) []skeleton.Pair {
	return e.RemoveForbiddenWhere(func(pr skeleton.Pair) bool { return pr.L == l && pr.R == r })
}

// RemoveForbiddenLeft removes every forbidden pair with left id l.
func (e *Engine) RemoveForbiddenLeft(l skeleton.Left) []skeleton.Pair {
	return e.RemoveForbiddenWhere(func(pr skeleton.Pair) bool { return pr.L == l })
}

// RemoveForbiddenRight removes every forbidden pair with right id r.
func (e *Engine) RemoveForbiddenRight(r skeleton.Right) []skeleton.Pair {
	return e.RemoveForbiddenWhere(func(pr skeleton.Pair) bool { return pr.R == r })
}

// Forbidden returns a copy of the forbidden set, sorted by (left, right).
func (e *Engine) Forbidden() []skeleton.Pair { return slices.Clone(e.forbidden) }

// ForbiddenByRight returns a copy of the forbidden set sorted by (right, left).
func (e *Engine) ForbiddenByRight() []skeleton.Pair {
	out := slices.Clone(e.forbidden)
	skeleton.SortByRight(out)
	return out
}

// ForbiddenUsed counts realized pairs that are forbidden.
func (e *Engine) ForbiddenUsed() int {
	return skeleton.IntersectionSize(e.RealizedPairs(), e.forbidden)
}

// ForbiddenInRealized lists the realized pairs that are forbidden, in
// realized order.
func (e *Engine) ForbiddenInRealized() []skeleton.Pair {
	fset := skeleton.NewSet(e.forbidden)
	var out []skeleton.Pair
	for _, pr := range e.RealizedPairs() {
		if fset.Has(pr) {
			out = append(out, pr)
		}
	}
	return out
}

// forbiddenDegrees counts forbidden pairs per left and per right id.
func (e *Engine) forbiddenDegrees() (left, right []int) {
	return skeleton.Degrees(e.forbidden, e.kmn.M, e.kmn.N)
}

func comparePairs(a, b skeleton.Pair) int {
	if a.L != b.L {
		return int(a.L) - int(b.L)
	}
	return int(a.R) - int(b.R)
}
