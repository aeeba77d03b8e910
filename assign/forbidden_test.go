package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

func TestAddForbidden_Duplicate(t *testing.T) {
	e := small(t)
	require.NoError(t, e.AddForbidden(0, 1))
	err := e.AddForbidden(0, 1)
	require.ErrorIs(t, err, assign.ErrDuplicateForbidden)
	assert.Len(t, e.Forbidden(), 1)
}

func TestAddForbidden_OutOfRange(t *testing.T) {
	e := small(t)
	for _, pr := range []skeleton.Pair{skeleton.P(3, 0), skeleton.P(0, 4), skeleton.P(-1, 0), skeleton.P(0, -1)} {
		err := e.AddForbidden(pr.L, pr.R)
		assert.ErrorIs(t, err, assign.ErrIndexOutOfRange, "pair %v", pr)
	}
	assert.Empty(t, e.Forbidden())
}

func TestForbidden_Sorted(t *testing.T) {
	e := small(t)
	require.NoError(t, e.AddForbidden(2, 1))
	require.NoError(t, e.AddForbidden(0, 3))
	require.NoError(t, e.AddForbidden(0, 1))

	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 1), skeleton.P(0, 3), skeleton.P(2, 1)}, e.Forbidden())
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 1), skeleton.P(2, 1), skeleton.P(0, 3)}, e.ForbiddenByRight())
}

func TestAddForbiddenCross(t *testing.T) {
	e := small(t)
	added, err := e.AddForbiddenCross(assign.LeftRight{
		Left:  []skeleton.Left{0, 1},
		Right: []skeleton.Right{1, 5},
	})
	assert.Equal(t, 2, added)
	require.ErrorIs(t, err, assign.ErrIndexOutOfRange)
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 1), skeleton.P(1, 1)}, e.Forbidden())

	added, err = e.AddForbiddenCross(assign.LeftRight{Left: []skeleton.Left{0}, Right: []skeleton.Right{1, 2}})
	assert.Equal(t, 1, added)
	assert.ErrorIs(t, err, assign.ErrDuplicateForbidden)
}

func TestRemoveForbidden(t *testing.T) {
	e := small(t)
	_, err := e.AddForbiddenCross(assign.LeftRight{
		Left:  []skeleton.Left{0, 1, 2},
		Right: []skeleton.Right{0, 1},
	})
	require.NoError(t, err)

	got := e.RemoveForbidden(1, 1)
	assert.Equal(t, []skeleton.Pair{skeleton.P(1, 1)}, got)
	assert.Empty(t, e.RemoveForbidden(1, 1))

	got = e.RemoveForbiddenLeft(0)
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 0), skeleton.P(0, 1)}, got)

	got = e.RemoveForbiddenRight(0)
	assert.Equal(t, []skeleton.Pair{skeleton.P(1, 0), skeleton.P(2, 0)}, got)

	assert.Equal(t, []skeleton.Pair{skeleton.P(2, 1)}, e.Forbidden())

	got = e.RemoveForbiddenWhere(func(skeleton.Pair) bool { return true })
	assert.Len(t, got, 1)
	assert.Empty(t, e.Forbidden())
}

func TestForbiddenUsed(t *testing.T) {
	e := small(t)
	require.NoError(t, e.AddForbidden(0, 0))
	require.NoError(t, e.AddForbidden(0, 1))
	require.NoError(t, e.AddForbidden(2, 1))

	assert.Equal(t, 2, e.ForbiddenUsed())
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 0), skeleton.P(2, 1)}, e.ForbiddenInRealized())
}

func TestAddRandomForbidden(t *testing.T) {
	e := small(t)
	rng := assign.NewRNG(3)
	added := e.AddRandomForbidden(rng, 20)
	assert.LessOrEqual(t, added, 12)
	assert.Len(t, e.Forbidden(), added)
	assert.Equal(t, skeleton.Sorted(e.Forbidden()), e.Forbidden())

	added, err := e.AddRandomForbiddenLeft(rng, 10, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, added, 4)

	e2 := small(t)
	added, err = e2.AddRandomForbiddenRight(rng, 10, 3)
	require.NoError(t, err)
	for _, pr := range e2.Forbidden() {
		assert.Equal(t, skeleton.Right(3), pr.R)
	}
	assert.Len(t, e2.Forbidden(), added)

	_, err = e.AddRandomForbiddenLeft(rng, 1, 3)
	assert.ErrorIs(t, err, assign.ErrIndexOutOfRange)
	_, err = e.AddRandomForbiddenRight(rng, 1, 4)
	assert.ErrorIs(t, err, assign.ErrIndexOutOfRange)
}

func TestAddRandomForbidden_Deterministic(t *testing.T) {
	a, b := small(t), small(t)
	a.AddRandomForbidden(assign.NewRNG(9), 5)
	b.AddRandomForbidden(assign.NewRNG(9), 5)
	assert.Equal(t, a.Forbidden(), b.Forbidden())
}
