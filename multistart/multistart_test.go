package multistart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/multistart"
)

func base(t *testing.T) assign.Snapshot {
	t.Helper()
	e, err := assign.New(2, 8, 6)
	require.NoError(t, err)
	e.AddRandomForbidden(assign.NewRNG(42), 10)
	return e.Snapshot()
}

func config(runs, workers int) multistart.Config {
	return multistart.Config{
		Runs:      runs,
		Workers:   workers,
		Seed:      7,
		Strategy:  assign.Permute,
		Selector:  assign.SelectLeftPercent(50),
		MaxTrials: 200,
		Shuffle:   true,
	}
}

func TestRun(t *testing.T) {
	rep, err := multistart.Run(context.Background(), base(t), config(8, 3))
	require.NoError(t, err)
	require.Len(t, rep.Runs, 8)
	require.NotNil(t, rep.Engine)

	for i, r := range rep.Runs {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, assign.DeriveSeed(7, uint64(i)), r.Seed)
		assert.Equal(t, r.Search.Forbidden, r.Forbidden, "best pairs installed")
		assert.GreaterOrEqual(t, r.Forbidden, rep.Runs[rep.Best].Forbidden)
	}
	for _, r := range rep.Runs[:rep.Best] {
		assert.Greater(t, r.Forbidden, rep.Runs[rep.Best].Forbidden, "ties go to the lowest index")
	}
	assert.Equal(t, rep.Runs[rep.Best].Forbidden, rep.Engine.ForbiddenUsed())
	assert.Equal(t, rep.Runs[rep.Best].Fingerprint, rep.Engine.Fingerprint())
	require.NoError(t, rep.Engine.Validate())
	assert.GreaterOrEqual(t, rep.Distinct, 1)
	assert.LessOrEqual(t, rep.Distinct, 8)
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	b := base(t)
	one, err := multistart.Run(context.Background(), b, config(6, 1))
	require.NoError(t, err)
	many, err := multistart.Run(context.Background(), b, config(6, 6))
	require.NoError(t, err)
	assert.Equal(t, one.Runs, many.Runs)
	assert.Equal(t, one.Best, many.Best)
	assert.Equal(t, one.Distinct, many.Distinct)
}

func TestRun_Switch(t *testing.T) {
	cfg := config(4, 2)
	cfg.Switch = true
	cfg.MaxTrials = 20
	rep, err := multistart.Run(context.Background(), base(t), cfg)
	require.NoError(t, err)
	for _, r := range rep.Runs {
		assert.LessOrEqual(t, r.Forbidden, r.Search.Forbidden, "switching never adds collisions")
	}
	require.NoError(t, rep.Engine.Validate())
}

func TestRun_Errors(t *testing.T) {
	_, err := multistart.Run(context.Background(), base(t), config(0, 1))
	assert.ErrorIs(t, err, multistart.ErrNoRuns)

	bad := base(t)
	bad.M = 0
	_, err = multistart.Run(context.Background(), bad, config(2, 1))
	assert.ErrorIs(t, err, assign.ErrBadSnapshot)

	cfg := config(2, 1)
	cfg.Strategy = assign.Strategy(42)
	_, err = multistart.Run(context.Background(), base(t), cfg)
	assert.ErrorIs(t, err, assign.ErrUnknownStrategy)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := multistart.Run(ctx, base(t), config(4, 2))
	assert.ErrorIs(t, err, context.Canceled)
}
