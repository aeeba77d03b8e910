// SPDX-License-Identifier: MIT

package flow

import "math"

// FordFulkerson computes the maximum flow from source to sink using
// iterative DFS augmenting paths, leaving the residual capacities in nw.
//
// Complexity:
//
//	Time:   O(E · F) where F = maxFlow.
//	Memory: O(V + E) for the DFS stack.
//
// Suitable for small integral networks; prefer Dinic for the rest.
func FordFulkerson(nw *Network, source, sink int, opts FlowOptions) (int64, error) {
	opts.normalize()
	ctx := opts.Ctx
	if err := nw.checkTerminals(source, sink); err != nil {
		return 0, err
	}

	var maxFlow int64
	parent := make([]int, nw.Order())
	visited := make([]bool, nw.Order())
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}
		for i := range parent {
			parent[i] = -1
			visited[i] = false
		}
		visited[source] = true
		stack := []int{source}
		for len(stack) > 0 && !visited[sink] {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, id := range nw.adj[u] {
				v := nw.to[id]
				if visited[v] || nw.cap[id] <= 0 {
					continue
				}
				visited[v] = true
				parent[v] = id
				stack = append(stack, v)
			}
		}
		if !visited[sink] {
			break
		}
		bottle := int64(math.MaxInt64)
		for v := sink; v != source; v = nw.to[parent[v]^1] {
			bottle = min(bottle, nw.cap[parent[v]])
		}
		for v := sink; v != source; v = nw.to[parent[v]^1] {
			nw.push(parent[v], bottle)
		}
		maxFlow += bottle
	}
	return maxFlow, nil
}
