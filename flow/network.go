// SPDX-License-Identifier: MIT

package flow

import "fmt"

// Network is a directed capacity network over vertices 0..n-1.
// Not safe for concurrent use.
type Network struct {
	adj  [][]int // vertex → edge ids leaving it (forward and reverse)
	to   []int
	cap  []int64 // residual capacity
	orig []int64 // capacity at AddEdge time (0 for reverse twins)
}

// NewNetwork allocates an empty network with n vertices (n < 0 is treated as 0).
func NewNetwork(n int) *Network {
	if n < 0 {
		n = 0
	}
	return &Network{adj: make([][]int, n)}
}

// Order returns the number of vertices.
func (nw *Network) Order() int { return len(nw.adj) }

// Size returns the number of forward edges.
func (nw *Network) Size() int { return len(nw.to) / 2 }

// AddEdge adds u→v with capacity c and returns the forward edge id.
// Parallel edges are kept separate.
func (nw *Network) AddEdge(u, v int, c int64) (int, error) {
	if err := nw.checkVertex(u); err != nil {
		return -1, err
	}
	if err := nw.checkVertex(v); err != nil {
		return -1, err
	}
	if c < 0 {
		return -1, EdgeError{From: u, To: v, Cap: c}
	}
	id := len(nw.to)
	nw.to = append(nw.to, v, u)
	nw.cap = append(nw.cap, c, 0)
	nw.orig = append(nw.orig, c, 0)
	nw.adj[u] = append(nw.adj[u], id)
	nw.adj[v] = append(nw.adj[v], id+1)
	return id, nil
}

// Flow returns the flow currently routed through forward edge id.
func (nw *Network) Flow(id int) int64 {
	if id < 0 || id >= len(nw.to) || id%2 != 0 {
		return 0
	}
	return nw.orig[id] - nw.cap[id]
}

// Residual returns the remaining capacity of edge id (forward or reverse).
func (nw *Network) Residual(id int) int64 {
	if id < 0 || id >= len(nw.to) {
		return 0
	}
	return nw.cap[id]
}

// Reset restores every edge to its original capacity.
func (nw *Network) Reset() {
	copy(nw.cap, nw.orig)
}

func (nw *Network) checkVertex(v int) error {
	if v < 0 || v >= len(nw.adj) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, len(nw.adj), ErrVertexOutOfRange)
	}
	return nil
}

func (nw *Network) checkTerminals(source, sink int) error {
	if err := nw.checkVertex(source); err != nil {
		return err
	}
	if err := nw.checkVertex(sink); err != nil {
		return err
	}
	if source == sink {
		return ErrSourceIsSink
	}
	return nil
}

// push moves f units along edge id and its twin.
func (nw *Network) push(id int, f int64) {
	nw.cap[id] -= f
	nw.cap[id^1] += f
}
