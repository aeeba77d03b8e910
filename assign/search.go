// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// search.go — randomized repair: one control loop, three strategies.
//
// Loop contract:
//  1. Refresh the backup: the current realized pairs replace it only when
//     they collide with strictly fewer forbidden pairs, both counts taken
//     against the current forbidden set. fMin is the smaller count.
//  2. Per trial: pick a side, apply the strategy action, recount; a lower
//     count updates fMin and the backup; zero stops the run.
//  3. Return (leftTrials, rightTrials, fMin).
//
// The backup's forbidden count is never cached; it is recomputed at every
// comparison because the forbidden set may have changed since capture.

package assign

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Strategy selects the per-trial action of Search.
type Strategy int

const (
	// Permute re-shuffles the chosen permutation over its full domain.
	Permute Strategy = iota
	// Swap sweeps the realized pairs once; every forbidden one swaps its
	// endpoint on the chosen side with a random index of that domain.
	Swap
	// BackSwap restores the backup, then performs one Swap sweep.
	BackSwap
)

var strategyNames = [...]string{"permute", "swap", "backswap"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy accepts the lower-case names printed by String.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// Side is one half of the bipartition.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type selectorKind int

const (
	selLeft selectorKind = iota
	selRight
	selLeftPercent
)

// Selector decides which side a trial acts on.
type Selector struct {
	kind    selectorKind
	percent int
}

// SelectLeft always acts on the left permutation.
func SelectLeft() Selector { return Selector{kind: selLeft} }

// SelectRight always acts on the right permutation.
func SelectRight() Selector { return Selector{kind: selRight} }

// SelectLeftPercent acts on the left side with probability x% per trial,
// from one independent roll per trial. x is clamped to [0,100].
func SelectLeftPercent(x int) Selector {
	return Selector{kind: selLeftPercent, percent: min(max(x, 0), 100)}
}

func (s Selector) String() string {
	switch s.kind {
	case selLeft:
		return "left"
	case selRight:
		return "right"
	default:
		return fmt.Sprintf("left%d%%", s.percent)
	}
}

// ParseSelector accepts the forms printed by String: "left", "right" and
// "leftN%" with 0 <= N <= 100.
func ParseSelector(name string) (Selector, error) {
	switch strings.ToLower(name) {
	case "left":
		return SelectLeft(), nil
	case "right":
		return SelectRight(), nil
	}
	rest, ok := strings.CutPrefix(strings.ToLower(name), "left")
	if digits, pct := strings.CutSuffix(rest, "%"); ok && pct {
		if x, err := strconv.Atoi(digits); err == nil && x >= 0 && x <= 100 {
			return SelectLeftPercent(x), nil
		}
	}
	return Selector{}, fmt.Errorf("ParseSelector(%q): %w", name, ErrUnknownStrategy)
}

func (s Selector) pick(rng *rand.Rand) Side {
	switch s.kind {
	case selLeft:
		return SideLeft
	case selRight:
		return SideRight
	default:
		if rng.Intn(100) < s.percent {
			return SideLeft
		}
		return SideRight
	}
}

// SearchResult reports one Search run.
type SearchResult struct {
	LeftTrials  int
	RightTrials int
	// Forbidden is the best (lowest) collision count seen, i.e. the
	// backup's count when the run ended.
	Forbidden int
}

// Search runs up to maxTrials trials of strategy, choosing the side per trial
// with sel. rng == nil uses Engine.Rand. The current pairs are left as the
// last trial produced them; the best ones are in Backup.
func (e *Engine) Search(strategy Strategy, sel Selector, maxTrials int, rng *rand.Rand) (SearchResult, error) {
	if strategy < Permute || strategy > BackSwap {
		return SearchResult{}, fmt.Errorf("Search: %w", ErrUnknownStrategy)
	}
	if rng == nil {
		rng = e.rng
	}

	var res SearchResult
	res.Forbidden = e.refreshBackup()
	e.log.Debug("search start", "strategy", strategy, "side", sel, "max", maxTrials, "forbidden", res.Forbidden)
	if res.Forbidden == 0 {
		return res, nil
	}

	for t := 0; t < maxTrials; t++ {
		side := sel.pick(rng)
		switch strategy {
		case Permute:
			if side == SideLeft {
				e.left.Shuffle(rng)
			} else {
				e.right.Shuffle(rng)
			}
		case Swap:
			e.swapForbidden(side, rng)
		case BackSwap:
			e.installBackup()
			e.swapForbidden(side, rng)
		}
		if side == SideLeft {
			res.LeftTrials++
		} else {
			res.RightTrials++
		}

		current := e.RealizedPairs()
		f := skeleton.IntersectionSize(current, e.forbidden)
		if f < res.Forbidden {
			res.Forbidden = f
			e.backup = current
			e.log.Debug("search improved", "trial", t, "forbidden", f)
		}
		if f == 0 {
			break
		}
	}

	e.log.Info("search done",
		"strategy", strategy, "left", res.LeftTrials, "right", res.RightTrials, "forbidden", res.Forbidden)
	return res, nil
}

// refreshBackup captures the current pairs when there is no backup or they
// are strictly better, and returns the resulting best count.
func (e *Engine) refreshBackup() int {
	current := e.RealizedPairs()
	fc := skeleton.IntersectionSize(current, e.forbidden)
	if e.backup == nil {
		e.backup = current
		return fc
	}
	fb := skeleton.IntersectionSize(e.backup, e.forbidden)
	if fc < fb {
		e.backup = current
		return fc
	}
	return fb
}

// swapForbidden performs one sequential sweep over the skeleton: each pair
// whose realization is currently forbidden swaps the permutation entry at
// its skeleton index on side with a random index. Later pairs see the
// effect of earlier swaps.
func (e *Engine) swapForbidden(side Side, rng *rand.Rand) {
	fset := skeleton.NewSet(e.forbidden)
	for _, pr := range e.skel {
		if !fset.Has(e.realize(pr)) {
			continue
		}
		if side == SideLeft {
			_ = e.left.Swap(int(pr.L), rng.Intn(e.kmn.M))
		} else {
			_ = e.right.Swap(int(pr.R), rng.Intn(e.kmn.N))
		}
	}
}

// installBackup makes the backup the realized pairs. Backup pairs were
// captured from this engine, so their ids are always in range.
func (e *Engine) installBackup() {
	e.skel = slices.Clone(e.backup)
	e.left.Reset()
	e.right.Reset()
}

// Backup returns a copy of the best-seen pairs.
func (e *Engine) Backup() ([]skeleton.Pair, error) {
	if e.backup == nil {
		return nil, fmt.Errorf("Backup: %w", ErrNoBackup)
	}
	return slices.Clone(e.backup), nil
}

// BackupForbidden recounts the backup's collisions against the current
// forbidden set.
func (e *Engine) BackupForbidden() (int, error) {
	if e.backup == nil {
		return 0, fmt.Errorf("BackupForbidden: %w", ErrNoBackup)
	}
	return skeleton.IntersectionSize(e.backup, e.forbidden), nil
}

// RestoreBackup installs the backup as the realized pairs. When the pairs
// being replaced collide strictly less than the backup, they become the
// new backup so nothing better is lost.
func (e *Engine) RestoreBackup() error {
	if e.backup == nil {
		return fmt.Errorf("RestoreBackup: %w", ErrNoBackup)
	}
	current := e.RealizedPairs()
	restored := e.backup
	if skeleton.IntersectionSize(current, e.forbidden) < skeleton.IntersectionSize(restored, e.forbidden) {
		e.backup = current
	}
	e.skel = slices.Clone(restored)
	e.left.Reset()
	e.right.Reset()
	return nil
}

// ClearBackup drops the backup.
func (e *Engine) ClearBackup() { e.backup = nil }
