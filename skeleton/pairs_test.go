package skeleton_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

func TestNeighbors(t *testing.T) {
	s, err := skeleton.New(1, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, []skeleton.Right{0, 3}, skeleton.RightNeighbors(s.Pairs, 0))
	assert.Equal(t, []skeleton.Right{1, 2}, skeleton.RightNeighbors(s.Pairs, 2))
	assert.Equal(t, []skeleton.Left{0, 1}, skeleton.LeftNeighbors(s.Pairs, 0))
	assert.Equal(t, []skeleton.Left{2}, skeleton.LeftNeighbors(s.Pairs, 2))
	assert.Empty(t, skeleton.RightNeighbors(s.Pairs, 9))
}

func TestSortByLeftAndRight(t *testing.T) {
	pairs := []skeleton.Pair{skeleton.P(1, 0), skeleton.P(0, 2), skeleton.P(0, 1), skeleton.P(1, 1)}

	byLeft := skeleton.Sorted(pairs)
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 1), skeleton.P(0, 2), skeleton.P(1, 0), skeleton.P(1, 1)}, byLeft)
	assert.Equal(t, skeleton.P(1, 0), pairs[0], "Sorted must not touch its input")

	skeleton.SortByRight(pairs)
	assert.Equal(t, []skeleton.Pair{skeleton.P(1, 0), skeleton.P(0, 1), skeleton.P(1, 1), skeleton.P(0, 2)}, pairs)
}

func TestCrossProductAndIntersection(t *testing.T) {
	cp := skeleton.CrossProduct([]skeleton.Left{0, 2}, []skeleton.Right{1, 3})
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 1), skeleton.P(0, 3), skeleton.P(2, 1), skeleton.P(2, 3)}, cp)

	pairs := []skeleton.Pair{skeleton.P(0, 1), skeleton.P(0, 1), skeleton.P(1, 1)}
	assert.Equal(t, 2, skeleton.IntersectionSize(pairs, cp), "multiplicity counts")
	assert.Zero(t, skeleton.IntersectionSize(pairs, nil))
}

func TestPairJSON(t *testing.T) {
	raw, err := json.Marshal([]skeleton.Pair{skeleton.P(0, 1), skeleton.P(2, 3)})
	require.NoError(t, err)
	assert.JSONEq(t, `[[0,1],[2,3]]`, string(raw))

	var back []skeleton.Pair
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, []skeleton.Pair{skeleton.P(0, 1), skeleton.P(2, 3)}, back)

	var bad skeleton.Pair
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"l":1}`), &bad))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "(L_1, R_2)", skeleton.P(1, 2).String())
	assert.Equal(t, 6, skeleton.Params{K: 1, M: 3, N: 4}.Size())
	assert.Equal(t, 2, skeleton.Params{K: 1, M: 3, N: 4}.Excess())
}
