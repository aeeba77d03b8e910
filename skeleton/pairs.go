// SPDX-License-Identifier: MIT
// Package: kmnpairs/skeleton
//
// pairs.go — read-only helpers over pair lists.
//
// All helpers treat their inputs as immutable and return fresh slices.
// Ids outside [0,m) or [0,n) are skipped by the degree helpers so that
// validation code can count them separately.

package skeleton

import (
	"slices"
	"sort"
)

// Degrees returns per-left and per-right occurrence counts of pairs.
// Out-of-range ids are ignored.
// Complexity: O(len(pairs) + m + n).
func Degrees(pairs []Pair, m, n int) (left, right []int) {
	left = make([]int, m)
	right = make([]int, n)
	for _, pr := range pairs {
		if pr.L >= 0 && int(pr.L) < m {
			left[pr.L]++
		}
		if pr.R >= 0 && int(pr.R) < n {
			right[pr.R]++
		}
	}
	return left, right
}

// RightNeighbors returns the sorted right ids paired with l (duplicates kept).
func RightNeighbors(pairs []Pair, l Left) []Right {
	out := make([]Right, 0)
	for _, pr := range pairs {
		if pr.L == l {
			out = append(out, pr.R)
		}
	}
	slices.Sort(out)
	return out
}

// LeftNeighbors returns the sorted left ids paired with r (duplicates kept).
func LeftNeighbors(pairs []Pair, r Right) []Left {
	out := make([]Left, 0)
	for _, pr := range pairs {
		if pr.R == r {
			out = append(out, pr.L)
		}
	}
	slices.Sort(out)
	return out
}

// SortByLeft sorts pairs in place by (left, right).
func SortByLeft(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Less(pairs[j]) })
}

// SortByRight sorts pairs in place by (right, left).
func SortByRight(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].R != pairs[j].R {
			return pairs[i].R < pairs[j].R
		}
		return pairs[i].L < pairs[j].L
	})
}

// Sorted returns a (left, right)-sorted copy of pairs.
func Sorted(pairs []Pair) []Pair {
	out := slices.Clone(pairs)
	SortByLeft(out)
	return out
}

// CrossProduct returns every (l, r) with l in left and r in right, left-major.
func CrossProduct(left []Left, right []Right) []Pair {
	out := make([]Pair, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, Pair{L: l, R: r})
		}
	}
	return out
}

// Set is a membership index over pairs.
type Set map[Pair]struct{}

// NewSet indexes pairs.
func NewSet(pairs []Pair) Set {
	s := make(Set, len(pairs))
	for _, pr := range pairs {
		s[pr] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(pr Pair) bool {
	_, ok := s[pr]
	return ok
}

// IntersectionSize counts entries of pairs (with multiplicity) that belong
// to set. Complexity: O(len(pairs) + len(set)).
func IntersectionSize(pairs, set []Pair) int {
	if len(pairs) == 0 || len(set) == 0 {
		return 0
	}
	idx := NewSet(set)
	count := 0
	for _, pr := range pairs {
		if idx.Has(pr) {
			count++
		}
	}
	return count
}
