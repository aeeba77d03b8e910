package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/internal/report"
	"github.com/katalvlaran/kmnpairs/multistart"
	"github.com/katalvlaran/kmnpairs/rank"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", report.Truncate("short", 10))
	got := report.Truncate(strings.Repeat("論文", 20), 9)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 9)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestPlace(t *testing.T) {
	assert.Equal(t, "1", report.Place(rank.Position{After: 0, Members: []rank.RankedAvg{{Ranked: 3}}}))
	assert.Equal(t, "3-4", report.Place(rank.Position{After: 2, Members: []rank.RankedAvg{{Ranked: 0}, {Ranked: 1}}}))
}

func TestStandings(t *testing.T) {
	e, err := assign.New(1, 3, 4)
	require.NoError(t, err)
	require.NoError(t, e.SwapRight(0, 2))
	r, err := rank.New(e)
	require.NoError(t, err)
	require.NoError(t, r.SetRanking(0, []skeleton.Right{3, 2}))
	require.NoError(t, r.SetRanking(1, []skeleton.Right{1, 2}))
	require.NoError(t, r.SetRanking(2, []skeleton.Right{0, 1}))
	require.NoError(t, r.SetRankedInfo(3, "Quantum pancakes"))
	require.NoError(t, r.ClearRankedInfo(0))

	items, _, err := r.CollectedScores(false)
	require.NoError(t, err)
	positions, _, err := r.Results(false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Standings(&buf, r, positions, items))
	out := buf.String()
	for _, want := range []string{"Place", "Quantum pancakes", "R_0", "1-2", "2.000", "1.500"} {
		assert.Contains(t, out, want)
	}
}

func TestRuns(t *testing.T) {
	rep := multistart.Report{
		Runs: []multistart.RunResult{
			{Index: 0, Forbidden: 2, Fingerprint: 0xabc},
			{Index: 1, Forbidden: 0, Fingerprint: 0xdef, Search: assign.SearchResult{LeftTrials: 4, RightTrials: 5}},
		},
		Best:     1,
		Distinct: 2,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Runs(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "0000000000000def")
	assert.Contains(t, out, "2 runs, 2 distinct assignments")
}
