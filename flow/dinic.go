// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows) and leaves the residual
// capacities in nw.
//
// Steps:
//  1. Normalize options and validate terminals.
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to build levels over edges with residual > 0.
//     c. DFS blocking-flow pushes along level+1 edges, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(nw *Network, source, sink int, opts FlowOptions) (int64, error) {
	opts.normalize()
	ctx := opts.Ctx
	if err := nw.checkTerminals(source, sink); err != nil {
		return 0, err
	}

	var maxFlow int64
	augmentCount := 0
	level := make([]int, nw.Order())
	iter := make([]int, nw.Order())
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}
		if !nw.buildLevels(source, sink, level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := nw.dinicPush(ctx, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
	return maxFlow, nil
}

// buildLevels fills level with BFS distances from source (-1 = unreachable)
// and reports whether sink is reachable.
func (nw *Network) buildLevels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, id := range nw.adj[u] {
			v := nw.to[id]
			if nw.cap[id] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level[sink] >= 0
}

// dinicPush sends up to available units from u to sink along the level
// graph and returns the amount actually sent.
func (nw *Network) dinicPush(ctx context.Context, level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	if ctx.Err() != nil {
		return 0
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		id := nw.adj[u][iter[u]]
		v := nw.to[id]
		if nw.cap[id] <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := min(available, nw.cap[id])
		if pushed := nw.dinicPush(ctx, level, iter, v, sink, send); pushed > 0 {
			nw.push(id, pushed)
			return pushed
		}
	}
	return 0
}
