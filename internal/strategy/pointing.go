package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// Pointing detects pairs and triples locked inside a box: when a symbol's
// candidates within a box all sit on one row (or column), the symbol is
// excluded from that row (column) outside the box.
type Pointing struct {
	g *grid.Grid
}

func NewPointing(g *grid.Grid) *Pointing { return &Pointing{g: g} }

func (s *Pointing) Name() string { return "pointing" }

func (s *Pointing) Apply() {
	for v := domain.MinSymbol; v <= domain.MaxSymbol; v++ {
		for br := 1; br <= grid.BoxSize; br++ {
			for bc := 1; bc <= grid.BoxSize; bc++ {
				s.handleBox(v, br, bc)
			}
		}
	}
}

func (s *Pointing) handleBox(v domain.Symbol, br, bc int) {
	occ := positions(s.g, boxCells(br, bc), v)
	if len(occ) < 2 || len(occ) > grid.BoxSize {
		return
	}
	sameRow, sameCol := true, true
	for _, cc := range occ[1:] {
		sameRow = sameRow && cc.Row == occ[0].Row
		sameCol = sameCol && cc.Col == occ[0].Col
	}
	switch {
	case sameRow:
		c1, c2, c3 := boxColumns(bc)
		s.g.ExcludeFromRow(v, occ[0].Row, c1, c2, c3)
	case sameCol:
		r1, r2, r3 := boxRows(br)
		s.g.ExcludeFromColumn(v, occ[0].Col, r1, r2, r3)
	}
}
