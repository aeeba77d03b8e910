// Package skeleton_test verifies the cyclic construction and its degree
// guarantees for every admissible small parameter triple.
package skeleton_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// checkDegrees asserts the structural guarantees of a skeleton.
func checkDegrees(t *testing.T, s skeleton.Skeleton) {
	t.Helper()
	k, m, n, p := s.K, s.M, s.N, s.P()

	require.Len(t, s.Pairs, p*m, "size must be p*m")

	left, right := skeleton.Degrees(s.Pairs, m, n)
	for l, d := range left {
		assert.Equal(t, p, d, "left %d degree", l)
	}
	plusOne := 0
	for r, d := range right {
		assert.True(t, d == k || d == k+1, "right %d degree %d not in {%d,%d}", r, d, k, k+1)
		if d == k+1 {
			plusOne++
		}
	}
	assert.Equal(t, m*p-k*n, plusOne, "count of right ids with degree k+1")

	seen := make(map[skeleton.Pair]bool, len(s.Pairs))
	for _, pr := range s.Pairs {
		assert.False(t, seen[pr], "duplicate pair %v", pr)
		seen[pr] = true
	}
}

func TestNew_ConcreteScenario(t *testing.T) {
	s, err := skeleton.New(1, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 2, s.P())

	want := []skeleton.Pair{
		skeleton.P(0, 0), skeleton.P(1, 1), skeleton.P(2, 2),
		skeleton.P(0, 3), skeleton.P(1, 0), skeleton.P(2, 1),
	}
	assert.Equal(t, want, s.Pairs)

	left, right := skeleton.Degrees(s.Pairs, 3, 4)
	assert.Equal(t, []int{2, 2, 2}, left)
	assert.Equal(t, []int{2, 2, 1, 1}, right)
	checkDegrees(t, s)
}

func TestNew_AllSmallParams(t *testing.T) {
	t.Parallel()
	for m := 1; m <= 12; m++ {
		for n := 1; n <= 12; n++ {
			for k := 1; k <= m; k++ {
				name := fmt.Sprintf("k=%d,m=%d,n=%d", k, m, n)
				s, err := skeleton.New(k, m, n)
				if err != nil {
					// Only the m > n corner can be infeasible.
					require.Greater(t, m, n, name)
					require.True(t, errors.Is(err, skeleton.ErrDegreeInfeasible) ||
						errors.Is(err, skeleton.ErrBadParams), name)
					continue
				}
				t.Run(name, func(t *testing.T) { checkDegrees(t, s) })
			}
		}
	}
}

func TestNewMNP_AllSmallParams(t *testing.T) {
	t.Parallel()
	for m := 1; m <= 12; m++ {
		for n := 1; n <= m; n++ {
			for p := 1; p <= n; p++ {
				s, err := skeleton.NewMNP(m, n, p)
				require.NoError(t, err, "m=%d n=%d p=%d", m, n, p)
				assert.Equal(t, p, s.P(), "p must round-trip through k")
				assert.Equal(t, p*m/n, s.K)
				checkDegrees(t, s)
			}
		}
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		k, m, n int
		want    error
	}{
		{"k zero", 0, 3, 4, skeleton.ErrBadParams},
		{"k above m", 4, 3, 4, skeleton.ErrBadParams},
		{"m zero", 1, 0, 4, skeleton.ErrBadParams},
		{"n zero", 1, 3, 0, skeleton.ErrBadParams},
		{"excess above n", 1, 5, 2, skeleton.ErrDegreeInfeasible},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := skeleton.New(tc.k, tc.m, tc.n)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewMNP_Errors(t *testing.T) {
	for _, tc := range []struct{ m, n, p int }{
		{3, 4, 1}, // n > m
		{4, 3, 0}, // p < 1
		{4, 3, 4}, // p > n
	} {
		_, err := skeleton.NewMNP(tc.m, tc.n, tc.p)
		assert.ErrorIs(t, err, skeleton.ErrBadParams, "%+v", tc)
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := skeleton.New(3, 7, 11)
	require.NoError(t, err)
	b, err := skeleton.New(3, 7, 11)
	require.NoError(t, err)
	assert.Equal(t, a.Pairs, b.Pairs)
}
