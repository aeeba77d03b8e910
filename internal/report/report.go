// Package report renders driver output tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/kmnpairs/multistart"
	"github.com/katalvlaran/kmnpairs/rank"
)

// MaxLabelWidth bounds label cells, in terminal columns.
const MaxLabelWidth = 28

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Truncate shortens s to at most width display columns, marking the cut
// with an ellipsis. Wide runes count double.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// Place formats a position's rank: "3" alone, "3-5" when shared.
func Place(p rank.Position) string {
	first := p.After + 1
	if len(p.Members) <= 1 {
		return strconv.Itoa(first)
	}
	return fmt.Sprintf("%d-%d", first, p.After+len(p.Members))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col >= 2:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

// Standings writes one row per ranked item: place, label, average score
// and the number of reviews it got.
func Standings(w io.Writer, r *rank.Ranking, positions []rank.Position, items []rank.ItemScores) error {
	reviews := make(map[int]int, len(items))
	for _, it := range items {
		reviews[int(it.Ranked)] = len(it.Scores)
	}
	t := newTable("Place", "Item", "Avg", "Reviews")
	for _, p := range positions {
		place := Place(p)
		for _, m := range p.Members {
			label, ok := r.RankedInfo(m.Ranked)
			if !ok {
				label = m.Ranked.String()
			}
			t.Row(place, Truncate(label, MaxLabelWidth), strconv.FormatFloat(m.Avg, 'f', 3, 64), strconv.Itoa(reviews[int(m.Ranked)]))
		}
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Runs writes one row per multistart run, marking the best.
func Runs(w io.Writer, rep multistart.Report) error {
	t := newTable("Run", "Best", "Forbidden", "Trials L/R", "Switches", "Fingerprint")
	for _, r := range rep.Runs {
		best := ""
		if r.Index == rep.Best {
			best = "*"
		}
		t.Row(
			strconv.Itoa(r.Index),
			best,
			strconv.Itoa(r.Forbidden),
			fmt.Sprintf("%d/%d", r.Search.LeftTrials, r.Search.RightTrials),
			strconv.Itoa(r.Switch.Switches),
			fmt.Sprintf("%016x", r.Fingerprint),
		)
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d runs, %d distinct assignments\n", len(rep.Runs), rep.Distinct)
	return err
}
