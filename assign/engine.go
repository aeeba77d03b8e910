// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// engine.go — the Engine type, constructors and realization.
//
// State: (k, m, n, skeleton, left permutation, right permutation,
// forbidden set, backup). p is always recomputed from (k, m, n).
//
// Concurrency: an Engine is NOT safe for concurrent use. Every mutating
// method reads and writes the skeleton, permutations, forbidden set and
// backup without a narrower atomicity boundary than the whole call; hosts
// serialize access or give each goroutine its own Engine.

package assign

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Engine owns a skeleton, two permutations, the forbidden set and the
// best-seen backup.
type Engine struct {
	kmn       skeleton.Params
	skel      []skeleton.Pair // unpermuted pairs
	left      *Permutation    // domain m
	right     *Permutation    // domain n
	forbidden []skeleton.Pair // realized-id space, sorted, unique
	backup    []skeleton.Pair // nil until first capture

	log Logger
	rng *rand.Rand
}

// New builds an Engine over the cyclic skeleton for (k, m, n) with identity
// permutations and an empty forbidden set.
func New(k, m, n int, opts ...Option) (*Engine, error) {
	s, err := skeleton.New(k, m, n)
	if err != nil {
		return nil, fmt.Errorf("assign.New: %w", err)
	}
	return newEngine(s.Params, s.Pairs, opts...), nil
}

// NewMNP builds an Engine from (m, n, p) with k = ⌊p·m/n⌋.
func NewMNP(m, n, p int, opts ...Option) (*Engine, error) {
	s, err := skeleton.NewMNP(m, n, p)
	if err != nil {
		return nil, fmt.Errorf("assign.NewMNP: %w", err)
	}
	return newEngine(s.Params, s.Pairs, opts...), nil
}

func newEngine(prm skeleton.Params, pairs []skeleton.Pair, opts ...Option) *Engine {
	cfg := newEngineConfig(opts...)
	return &Engine{
		kmn:   prm,
		skel:  pairs,
		left:  NewPermutation(prm.M),
		right: NewPermutation(prm.N),
		log:   cfg.logger,
		rng:   cfg.rng,
	}
}

// Params returns (k, m, n).
func (e *Engine) Params() skeleton.Params { return e.kmn }

// K returns the minimal right degree.
func (e *Engine) K() int { return e.kmn.K }

// M returns the size of the left set.
func (e *Engine) M() int { return e.kmn.M }

// N returns the size of the right set.
func (e *Engine) N() int { return e.kmn.N }

// P returns ⌈k·n/m⌉, recomputed on every call.
func (e *Engine) P() int { return e.kmn.P() }

// Rand returns the engine's configured RNG (see WithRand / WithSeed).
func (e *Engine) Rand() *rand.Rand { return e.rng }

// Logger returns the engine's logger.
func (e *Engine) Logger() Logger { return e.log }

// LeftPermutation exposes a copy of the left mapping.
func (e *Engine) LeftPermutation() []int { return e.left.Values() }

// RightPermutation exposes a copy of the right mapping.
func (e *Engine) RightPermutation() []int { return e.right.Values() }

// Skeleton returns a copy of the unpermuted pairs.
func (e *Engine) Skeleton() []skeleton.Pair { return slices.Clone(e.skel) }

// realize maps one skeleton pair through both permutations.
func (e *Engine) realize(pr skeleton.Pair) skeleton.Pair {
	return skeleton.Pair{
		L: skeleton.Left(e.left.At(int(pr.L))),
		R: skeleton.Right(e.right.At(int(pr.R))),
	}
}

// RealizedPairs maps every skeleton pair through both permutations.
// Complexity: O(p·m).
func (e *Engine) RealizedPairs() []skeleton.Pair {
	out := make([]skeleton.Pair, len(e.skel))
	for i, pr := range e.skel {
		out[i] = e.realize(pr)
	}
	return out
}

// ReplaceRealizedPairs installs pairs as the new skeleton and resets both
// permutations to identity, so RealizedPairs() == pairs afterwards.
// Callers are responsible for structural validity; ids must be in range.
func (e *Engine) ReplaceRealizedPairs(pairs []skeleton.Pair) error {
	if err := e.checkPairsInRange("ReplaceRealizedPairs", pairs); err != nil {
		return err
	}
	e.skel = slices.Clone(pairs)
	e.left.Reset()
	e.right.Reset()
	return nil
}

func (e *Engine) checkPairsInRange(method string, pairs []skeleton.Pair) error {
	for i, pr := range pairs {
		if err := e.checkPair(pr); err != nil {
			return fmt.Errorf("%s: pair #%d %v: %w", method, i, pr, err)
		}
	}
	return nil
}

func (e *Engine) checkLeft(l skeleton.Left) error {
	if l < 0 || int(l) >= e.kmn.M {
		return fmt.Errorf("left %d not in [0,%d): %w", l, e.kmn.M, ErrIndexOutOfRange)
	}
	return nil
}

func (e *Engine) checkRight(r skeleton.Right) error {
	if r < 0 || int(r) >= e.kmn.N {
		return fmt.Errorf("right %d not in [0,%d): %w", r, e.kmn.N, ErrIndexOutOfRange)
	}
	return nil
}

func (e *Engine) checkPair(pr skeleton.Pair) error {
	if err := e.checkLeft(pr.L); err != nil {
		return err
	}
	return e.checkRight(pr.R)
}

// SwapLeft exchanges the images of skeleton left indices i and j.
func (e *Engine) SwapLeft(i, j int) error { return e.left.Swap(i, j) }

// SwapRight exchanges the images of skeleton right indices i and j.
func (e *Engine) SwapRight(i, j int) error { return e.right.Swap(i, j) }

// ShuffleLeft re-draws the left permutation uniformly at random.
func (e *Engine) ShuffleLeft(rng *rand.Rand) { e.left.Shuffle(rng) }

// ShuffleRight re-draws the right permutation uniformly at random.
func (e *Engine) ShuffleRight(rng *rand.Rand) { e.right.Shuffle(rng) }

// GroupByLeft reorders the skeleton so that realized pairs come out sorted
// by (left, right). The realized multiset is unchanged.
func (e *Engine) GroupByLeft() {
	slices.SortStableFunc(e.skel, func(a, b skeleton.Pair) int {
		ra, rb := e.realize(a), e.realize(b)
		if ra.L != rb.L {
			return int(ra.L) - int(rb.L)
		}
		return int(ra.R) - int(rb.R)
	})
}

// GroupByRight reorders the skeleton so that realized pairs come out sorted
// by (right, left).
func (e *Engine) GroupByRight() {
	slices.SortStableFunc(e.skel, func(a, b skeleton.Pair) int {
		ra, rb := e.realize(a), e.realize(b)
		if ra.R != rb.R {
			return int(ra.R) - int(rb.R)
		}
		return int(ra.L) - int(rb.L)
	})
}

// AssignedToLeft returns the sorted right ids realized with l.
func (e *Engine) AssignedToLeft(l skeleton.Left) ([]skeleton.Right, error) {
	if err := e.checkLeft(l); err != nil {
		return nil, fmt.Errorf("AssignedToLeft: %w", err)
	}
	return skeleton.RightNeighbors(e.RealizedPairs(), l), nil
}

// AssignedToRight returns the sorted left ids realized with r.
func (e *Engine) AssignedToRight(r skeleton.Right) ([]skeleton.Left, error) {
	if err := e.checkRight(r); err != nil {
		return nil, fmt.Errorf("AssignedToRight: %w", err)
	}
	return skeleton.LeftNeighbors(e.RealizedPairs(), r), nil
}

// Clone returns an independent deep copy sharing only the logger and RNG.
func (e *Engine) Clone() *Engine {
	out := &Engine{
		kmn:       e.kmn,
		skel:      slices.Clone(e.skel),
		left:      &Permutation{p: e.left.Values()},
		right:     &Permutation{p: e.right.Values()},
		forbidden: slices.Clone(e.forbidden),
		log:       e.log,
		rng:       e.rng,
	}
	if e.backup != nil {
		out.backup = slices.Clone(e.backup)
	}
	return out
}

// String dumps the realized pairs (forbidden ones marked with "!!!") and the
// forbidden set.
func (e *Engine) String() string {
	var b strings.Builder
	fset := skeleton.NewSet(e.forbidden)
	fmt.Fprintf(&b, "Assignments (k,m,n,p) = (%d,%d,%d,%d):\n  [\n", e.kmn.K, e.kmn.M, e.kmn.N, e.P())
	used := 0
	for _, pr := range e.RealizedPairs() {
		mark := ""
		if fset.Has(pr) {
			used++
			mark = " !!!"
		}
		fmt.Fprintf(&b, "    %d %d%s\n", pr.L, pr.R, mark)
	}
	fmt.Fprintf(&b, "  ]\nForbidden (%d / %d used):\n  [\n", len(e.forbidden), used)
	for _, pr := range e.forbidden {
		fmt.Fprintf(&b, "    %d %d\n", pr.L, pr.R)
	}
	b.WriteString("  ]\n")
	return b.String()
}
