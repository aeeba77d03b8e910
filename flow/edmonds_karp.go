// SPDX-License-Identifier: MIT

package flow

import "math"

// EdmondsKarp computes the maximum flow from source to sink using
// BFS shortest augmenting paths, leaving the residual capacities in nw.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (int64, error) {
	opts.normalize()
	ctx := opts.Ctx
	if err := nw.checkTerminals(source, sink); err != nil {
		return 0, err
	}

	var maxFlow int64
	parent := make([]int, nw.Order()) // edge id used to reach v
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}
		bottle := nw.bfsAugmentingPath(source, sink, parent)
		if bottle == 0 {
			break
		}
		for v := sink; v != source; {
			id := parent[v]
			nw.push(id, bottle)
			v = nw.to[id^1]
		}
		maxFlow += bottle
	}
	return maxFlow, nil
}

// bfsAugmentingPath records in parent the edge reaching each vertex on a
// fewest-edges path and returns its bottleneck (0 when none exists).
func (nw *Network) bfsAugmentingPath(source, sink int, parent []int) int64 {
	for i := range parent {
		parent[i] = -1
	}
	bottle := make([]int64, nw.Order())
	bottle[source] = math.MaxInt64
	visited := make([]bool, nw.Order())
	visited[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, id := range nw.adj[u] {
			v := nw.to[id]
			if visited[v] || nw.cap[id] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = id
			bottle[v] = min(bottle[u], nw.cap[id])
			if v == sink {
				return bottle[v]
			}
			queue = append(queue, v)
		}
	}
	return 0
}
