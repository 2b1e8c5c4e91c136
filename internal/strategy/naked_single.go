package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// NakedSingle fires when a vacant cell has eight exclusions: the one
// remaining candidate must be the occupant.
type NakedSingle struct {
	g *grid.Grid
}

func NewNakedSingle(g *grid.Grid) *NakedSingle { return &NakedSingle{g: g} }

func (s *NakedSingle) Name() string { return "naked-single" }

func (s *NakedSingle) Apply(r, c int) domain.Symbol {
	cell := s.g.Cell(r, c)
	if cell.Occupied() || cell.Excluded().Size() != grid.Size-1 {
		return 0
	}
	v, _ := cell.Candidates().Single()
	return v
}
