// Package render draws grids and candidate listings for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
)

var (
	givenStyle  = lipgloss.NewStyle().Bold(true)
	vacantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

// Board renders a bordered 9x9 view of the grid with box separators.
func Board(g *grid.Grid) string {
	var b strings.Builder
	rule := frameStyle.Render("+-------+-------+-------+")
	for r := 1; r <= grid.Size; r++ {
		if (r-1)%grid.BoxSize == 0 {
			b.WriteString(rule)
			b.WriteByte('\n')
		}
		for c := 1; c <= grid.Size; c++ {
			if (c-1)%grid.BoxSize == 0 {
				b.WriteString(frameStyle.Render("| "))
			}
			if v := g.Occupant(r, c); v != 0 {
				b.WriteString(givenStyle.Render(fmt.Sprintf("%d ", v)))
			} else {
				b.WriteString(vacantStyle.Render(". "))
			}
		}
		b.WriteString(frameStyle.Render("|"))
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteByte('\n')
	return b.String()
}

// BoardFlat renders a flat 81-digit sequence.
func BoardFlat(flat string) (string, error) {
	g, err := grid.Decode(flat)
	if err != nil {
		return "", err
	}
	return Board(g), nil
}

// Candidates lists every vacancy of a deduction with its remaining symbols,
// in row-major order.
func Candidates(d *ports.Deduction) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d open cells", len(d.Vacancies))))
	b.WriteByte('\n')
	for _, at := range d.Vacancies {
		set := d.Candidates[at]
		parts := make([]string, 0, set.Size())
		for _, v := range set.Symbols() {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
		fmt.Fprintf(&b, "(%d,%d): %s\n", at.Row, at.Col, strings.Join(parts, " "))
	}
	return b.String()
}

// Summary is a one-line report of a deduction outcome.
func Summary(d *ports.Deduction, stats ports.Stats) string {
	return fmt.Sprintf("%s after %d steps in %s",
		titleStyle.Render(d.Status.String()), d.Steps, stats.Duration)
}
