package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/flow"
)

// TestEdmondsKarpAntiParallel covers u→v and v→u both carrying capacity.
func TestEdmondsKarpAntiParallel(t *testing.T) {
	nw := flow.NewNetwork(4)
	_, _ = nw.AddEdge(0, 1, 10)
	_, _ = nw.AddEdge(0, 2, 10)
	_, _ = nw.AddEdge(1, 2, 2)
	_, _ = nw.AddEdge(2, 1, 6)
	_, _ = nw.AddEdge(1, 3, 4)
	_, _ = nw.AddEdge(2, 3, 10)

	mf, err := flow.EdmondsKarp(nw, 0, 3, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(14), mf)
}

// TestFlowConservation checks that every inner vertex forwards what it receives.
func TestFlowConservation(t *testing.T) {
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			nw := flow.NewNetwork(5)
			type e struct{ u, v, id int }
			var es []e
			add := func(u, v int, c int64) {
				id, err := nw.AddEdge(u, v, c)
				require.NoError(t, err)
				es = append(es, e{u, v, id})
			}
			add(0, 1, 3)
			add(0, 2, 2)
			add(1, 2, 1)
			add(1, 3, 3)
			add(2, 3, 1)
			add(2, 4, 2)
			add(3, 4, 4)

			mf, err := alg(nw, 0, 4, flow.DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, int64(5), mf)

			balance := make([]int64, 5)
			for _, x := range es {
				f := nw.Flow(x.id)
				require.GreaterOrEqual(t, f, int64(0))
				balance[x.u] -= f
				balance[x.v] += f
			}
			require.Equal(t, -mf, balance[0])
			require.Equal(t, mf, balance[4])
			for v := 1; v <= 3; v++ {
				require.Zero(t, balance[v], "vertex %d", v)
			}
		})
	}
}

func TestFordFulkersonCancelled(t *testing.T) {
	nw := flow.NewNetwork(2)
	_, _ = nw.AddEdge(0, 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.FordFulkerson(nw, 0, 1, flow.FlowOptions{Ctx: ctx})
	require.ErrorIs(t, err, context.Canceled)
}
