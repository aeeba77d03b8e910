// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank
//
// errors.go — sentinel errors for the rank package.
//
// Callers branch with errors.Is. Multi-ranker checks return errors.Join of
// per-ranker errors, each wrapping the same sentinel.

package rank

import "errors"

// ErrInvalidRanking indicates an ordering whose sorted ids differ from the
// ranker's assigned ids.
var ErrInvalidRanking = errors.New("rank: ordering does not match assigned items")

// ErrMissingRanking indicates a ranker without an ordering.
var ErrMissingRanking = errors.New("rank: ranking not set")

// ErrAssignedMismatch indicates that the rankers contributing to an item
// differ from the item's assigned rankers.
var ErrAssignedMismatch = errors.New("rank: contributing rankers differ from assigned rankers")

// ErrNoAssignments indicates a Ranking built without an assignment engine.
var ErrNoAssignments = errors.New("rank: no assignments")

// ErrBadLeftRight indicates a LeftRight ordering whose Left does not hold
// exactly one ranker id.
var ErrBadLeftRight = errors.New("rank: left must hold exactly one ranker id")

// ErrBadScores indicates ranker scores that do not cover exactly the
// ranker's assigned items.
var ErrBadScores = errors.New("rank: scores do not match assigned items")
