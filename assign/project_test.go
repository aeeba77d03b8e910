package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

func projectFixture(t *testing.T) *assign.Engine {
	t.Helper()
	e := small(t)
	for _, pr := range []skeleton.Pair{skeleton.P(0, 1), skeleton.P(1, 2), skeleton.P(2, 3), skeleton.P(1, 0)} {
		require.NoError(t, e.AddForbidden(pr.L, pr.R))
	}
	return e
}

func TestProjectLeft_ConcreteScenario(t *testing.T) {
	e := projectFixture(t)

	out, remap, err := e.ProjectLeft([]skeleton.Left{2, 1}, assign.ByK(1))
	require.NoError(t, err)
	assert.Equal(t, skeleton.Params{K: 1, M: 2, N: 4}, out.Params())
	assert.Equal(t, 2, out.P())
	assert.Equal(t, []int{-1, 0, 1}, remap)
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 0), skeleton.P(0, 2), skeleton.P(1, 3)}, out.Forbidden())
	require.NoError(t, out.Validate())

	assert.Len(t, e.Forbidden(), 4, "source engine untouched")
}

func TestProjectRight(t *testing.T) {
	e := projectFixture(t)

	out, remap, err := e.ProjectRight([]skeleton.Right{3, 0}, assign.ByK(1))
	require.NoError(t, err)
	assert.Equal(t, skeleton.Params{K: 1, M: 3, N: 2}, out.Params())
	assert.Equal(t, []int{0, -1, -1, 1}, remap)
	assert.Equal(t, []skeleton.Pair{skeleton.P(1, 0), skeleton.P(2, 1)}, out.Forbidden())
	require.NoError(t, out.Validate())
}

func TestProject_ByP(t *testing.T) {
	e := projectFixture(t)
	out, _, err := e.ProjectRight([]skeleton.Right{0, 1, 2}, assign.ByP(2))
	require.NoError(t, err)
	assert.Equal(t, 2, out.K())
	assert.Equal(t, 2, out.P())

	_, _, err = e.ProjectLeft([]skeleton.Left{0, 1, 2}, assign.ByP(2)) // n=4 > m'=3
	assert.ErrorIs(t, err, skeleton.ErrBadParams)

	assert.Equal(t, "p=2", assign.ByP(2).String())
	assert.Equal(t, "k=1", assign.ByK(1).String())
}

func TestProject_BadSubset(t *testing.T) {
	e := projectFixture(t)
	cases := map[string][]skeleton.Left{
		"empty":     {},
		"duplicate": {1, 1},
		"boundary":  {0, 3},
		"negative":  {-1, 0},
	}
	for name, ids := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := e.ProjectLeft(ids, assign.ByK(1))
			assert.ErrorIs(t, err, assign.ErrBadSubset)
		})
	}

	_, _, err := e.ProjectRight([]skeleton.Right{4}, assign.ByK(1))
	assert.ErrorIs(t, err, assign.ErrBadSubset)
}

func TestProject_BadParams(t *testing.T) {
	e := projectFixture(t)
	_, _, err := e.ProjectLeft([]skeleton.Left{0}, assign.ByK(2))
	assert.ErrorIs(t, err, skeleton.ErrBadParams)
}
