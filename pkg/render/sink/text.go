package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PeterMinin/grid-strategy/pkg/grid"
)

// DefaultTextWidth is the terminal width assumed when none is given.
const DefaultTextWidth = 72

const minUnitWidth = 3

// RenderText draws the layout as rows of bordered boxes for a terminal.
// width is the total number of columns available; each column unit gets an
// equal share of it, never less than three characters.
func RenderText(l grid.Layout, labels []string, width int) string {
	if width <= 0 {
		width = DefaultTextWidth
	}
	unit := max(minUnitWidth, width/max(1, l.Dimensions.Cols))

	byRow := make([][]int, l.Dimensions.Rows)
	for i, p := range l.Placements {
		byRow[p.Row] = append(byRow[p.Row], i)
	}

	rows := make([]string, 0, len(byRow))
	for _, idxs := range byRow {
		var parts []string
		col := 0
		for _, i := range idxs {
			p := l.Placements[i]
			if gap := p.Span.Start - col; gap > 0 {
				parts = append(parts, filler(gap*unit))
			}
			parts = append(parts, textBox(i, labelAt(labels, i), p.Span.Width()*unit))
			col = p.Span.End
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func textBox(i int, label string, outer int) string {
	c := PaletteColor(i)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Hex())).
		Width(max(1, outer-2)).
		MaxWidth(outer).
		Align(lipgloss.Center).
		Render(label)
}

// filler pads a row with blank cells three lines tall so JoinHorizontal keeps
// boxes aligned to their column units.
func filler(w int) string {
	line := strings.Repeat(" ", w)
	return strings.Join([]string{line, line, line}, "\n")
}
