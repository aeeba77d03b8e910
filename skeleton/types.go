// SPDX-License-Identifier: MIT
// Package: kmnpairs/skeleton
//
// types.go — strongly typed identifiers and the Pair value.

package skeleton

import (
	"encoding/json"
	"fmt"
)

// Left identifies an element of the left set {0..m-1}.
type Left int

// String renders the id as "L_<i>".
func (l Left) String() string { return fmt.Sprintf("L_%d", int(l)) }

// Right identifies an element of the right set {0..n-1}.
type Right int

// String renders the id as "R_<j>".
func (r Right) String() string { return fmt.Sprintf("R_%d", int(r)) }

// Pair is an ordered (left, right) couple. Pairs are plain values and are
// never mutated in place by this module.
//
// On the wire a Pair is a two-element JSON array [left, right].
type Pair struct {
	L Left
	R Right
}

// P is a shorthand constructor for Pair{L: Left(l), R: Right(r)}.
func P(l, r int) Pair { return Pair{L: Left(l), R: Right(r)} }

// String renders the pair as "(L_i, R_j)".
func (p Pair) String() string { return fmt.Sprintf("(%s, %s)", p.L, p.R) }

// Less orders pairs by (left, right).
func (p Pair) Less(q Pair) bool {
	if p.L != q.L {
		return p.L < q.L
	}
	return p.R < q.R
}

// MarshalJSON encodes the pair as [left, right].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{int(p.L), int(p.R)})
}

// UnmarshalJSON decodes a [left, right] array. Any other shape is rejected.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("skeleton: pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("skeleton: pair must have 2 elements, got %d", len(raw))
	}
	p.L, p.R = Left(raw[0]), Right(raw[1])
	return nil
}
