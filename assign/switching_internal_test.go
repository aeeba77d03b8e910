package assign

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

func TestReplaceNeighborPanicsOnLostEntry(t *testing.T) {
	require.Panics(t, func() {
		replaceRight([]skeleton.Right{0, 1}, 5, 2)
	})
	require.Panics(t, func() {
		replaceLeft([]skeleton.Left{3}, 1, 2)
	})

	rs := []skeleton.Right{0, 1}
	replaceRight(rs, 1, 4)
	require.Equal(t, []skeleton.Right{0, 4}, rs)
}

func TestSwitcherKeepsIndexesInSync(t *testing.T) {
	e, err := New(3, 12, 10)
	require.NoError(t, err)
	e.AddRandomForbidden(NewRNG(4), 40)

	sw := newSwitcher(e.kmn, e.RealizedPairs(), e.forbidden)
	sw.run()

	left, right := skeleton.Degrees(sw.pairs, e.kmn.M, e.kmn.N)
	for l, nb := range sw.leftNbrs {
		require.Len(t, nb, left[l])
		require.ElementsMatch(t, skeleton.RightNeighbors(sw.pairs, skeleton.Left(l)), nb)
	}
	for r, nb := range sw.rightNbrs {
		require.Len(t, nb, right[r])
		require.ElementsMatch(t, skeleton.LeftNeighbors(sw.pairs, skeleton.Right(r)), nb)
	}
}
