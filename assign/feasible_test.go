package assign_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

func TestFeasible_Clean(t *testing.T) {
	ok, err := small(t).Feasible(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFeasible_StarvedLeft(t *testing.T) {
	e := small(t)
	_, err := e.AddForbiddenCross(assign.LeftRight{Left: []skeleton.Left{0}, Right: []skeleton.Right{0, 1, 2}})
	require.NoError(t, err)
	before := e.RealizedPairs()

	ok, err := e.Feasible(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.SolveFlow(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, e.RealizedPairs())
}

func TestSolveFlow(t *testing.T) {
	e := small(t)
	for _, pr := range []skeleton.Pair{skeleton.P(0, 0), skeleton.P(1, 1), skeleton.P(2, 2)} {
		require.NoError(t, e.AddForbidden(pr.L, pr.R))
	}
	ok, err := e.SolveFlow(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, e.ForbiddenUsed())
	require.NoError(t, e.Validate())
}

// Feasible and the randomized search must never disagree about a
// zero-forbidden result that search actually found.
func TestFeasible_AgreesWithSearch(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		e, err := assign.New(2, 4, 5)
		require.NoError(t, err)
		rng := assign.NewRNG(seed)
		e.AddRandomForbidden(rng, 4+int(seed%6))

		feasible, err := e.Feasible(context.Background())
		require.NoError(t, err)

		res, err := e.Clone().Search(assign.Permute, assign.SelectLeftPercent(50), 300, rng)
		require.NoError(t, err)
		if res.Forbidden == 0 {
			assert.True(t, feasible, "seed %d: search found zero but flow says infeasible", seed)
		}

		solved, err := e.SolveFlow(context.Background())
		require.NoError(t, err)
		assert.Equal(t, feasible, solved, "seed %d", seed)
		if solved {
			assert.Zero(t, e.ForbiddenUsed())
			require.NoError(t, e.Validate())
		}
	}
}

func TestFeasible_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := small(t).Feasible(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFeasible_BadParams(t *testing.T) {
	e, err := assign.FromSnapshot(assign.Snapshot{K: 0, M: 3, N: 4})
	require.NoError(t, err)
	_, err = e.Feasible(context.Background())
	assert.ErrorIs(t, err, skeleton.ErrBadParams)
}
