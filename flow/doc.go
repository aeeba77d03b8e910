// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow algorithms on a compact, int-indexed
// residual network. It backs the feasibility check of package assign: the
// question "is there a zero-forbidden assignment for (k, m, n, F)?" is a
// circulation with lower bounds, which reduces to one max-flow.
//
// Algorithms:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search for any augmenting path.
//
//   - Time:   O(E · F), F = value of the maximum flow.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Dinic
//
//   - Method: level graph plus blocking flows.
//
//   - Time:   O(E · √V) on unit-capacity networks.
//
// # Network
//
// Vertices are 0..n-1. AddEdge stores a forward edge and its zero-capacity
// reverse twin side by side (ids e and e^1), so Flow(e) is always
// original(e) − residual(e). Running an algorithm mutates the residual
// capacities; a second run on the same network finds no further flow.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// Errors:
//
//	ErrVertexOutOfRange, ErrNegativeCapacity, ErrSourceIsSink, or ctx.Err().
package flow
