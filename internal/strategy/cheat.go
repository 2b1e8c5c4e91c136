package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// Cheat reads the occupant of a vacant cell straight from the oracle solution
// attached to the grid. Installed last and only on request, it guarantees
// forward progress when the deductive strategies run dry.
type Cheat struct {
	g *grid.Grid
}

func NewCheat(g *grid.Grid) *Cheat { return &Cheat{g: g} }

func (s *Cheat) Name() string { return "cheat" }

func (s *Cheat) Apply(r, c int) domain.Symbol {
	if s.g.Cell(r, c).Occupied() {
		return 0
	}
	sol, ok := s.g.Solution()
	if !ok {
		return 0
	}
	return domain.Symbol(sol[grid.Index(r, c)] - '0')
}
