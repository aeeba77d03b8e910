// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"
)

// ErrVertexOutOfRange is returned for a vertex outside 0..n-1.
var ErrVertexOutOfRange = errors.New("flow: vertex out of range")

// ErrNegativeCapacity is returned when an edge is added with capacity < 0.
var ErrNegativeCapacity = errors.New("flow: negative capacity")

// ErrSourceIsSink is returned when source == sink.
var ErrSourceIsSink = errors.New("flow: source equals sink")

// EdgeError carries the offending edge of an AddEdge failure.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is(err, ErrNegativeCapacity) match.
func (e EdgeError) Unwrap() error { return ErrNegativeCapacity }

// FlowOptions configures all max-flow algorithms.
//   - Ctx: checked between augmentations (nil means context.Background()).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations
//     (0 = only when the blocking flow is exhausted).
type FlowOptions struct {
	Ctx                  context.Context
	LevelRebuildInterval int
}

// DefaultOptions returns options with a background context.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Algorithm is the common signature of Dinic, EdmondsKarp and FordFulkerson.
type Algorithm func(nw *Network, source, sink int, opts FlowOptions) (int64, error)
