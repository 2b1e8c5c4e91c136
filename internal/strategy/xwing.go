package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// XWing looks for a symbol confined to exactly two cells in each of two rows,
// with the four cells aligned on the same two columns. The symbol must land
// on one diagonal of that rectangle, so it is excluded from the two columns
// everywhere else. The column-based pass is the transpose.
type XWing struct {
	g *grid.Grid
}

func NewXWing(g *grid.Grid) *XWing { return &XWing{g: g} }

func (s *XWing) Name() string { return "x-wing" }

func (s *XWing) Apply() {
	s.applyToColumns()
	s.applyToRows()
}

func (s *XWing) applyToRows() {
	for v := domain.MinSymbol; v <= domain.MaxSymbol; v++ {
		var pairs [][]domain.CellCoord
		for r := 1; r <= grid.Size; r++ {
			cells := s.candidatesInRow(v, r)
			if len(cells) == 2 {
				pairs = append(pairs, cells)
			}
		}
		for k := 0; k < len(pairs); k++ {
			for l := k + 1; l < len(pairs); l++ {
				a, b := pairs[k], pairs[l]
				if a[0].Col != b[0].Col || a[1].Col != b[1].Col {
					continue
				}
				s.g.ExcludeFromColumn(v, a[0].Col, a[0].Row, b[0].Row)
				s.g.ExcludeFromColumn(v, a[1].Col, a[0].Row, b[0].Row)
			}
		}
	}
}

func (s *XWing) applyToColumns() {
	for v := domain.MinSymbol; v <= domain.MaxSymbol; v++ {
		var pairs [][]domain.CellCoord
		for c := 1; c <= grid.Size; c++ {
			cells := s.candidatesInColumn(v, c)
			if len(cells) == 2 {
				pairs = append(pairs, cells)
			}
		}
		for k := 0; k < len(pairs); k++ {
			for l := k + 1; l < len(pairs); l++ {
				a, b := pairs[k], pairs[l]
				if a[0].Row != b[0].Row || a[1].Row != b[1].Row {
					continue
				}
				s.g.ExcludeFromRow(v, a[0].Row, a[0].Col, b[0].Col)
				s.g.ExcludeFromRow(v, a[1].Row, a[0].Col, b[0].Col)
			}
		}
	}
}

func (s *XWing) candidatesInRow(v domain.Symbol, r int) []domain.CellCoord {
	var out []domain.CellCoord
	for c := 1; c <= grid.Size; c++ {
		if s.g.Candidates(r, c).Has(v) {
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out
}

func (s *XWing) candidatesInColumn(v domain.Symbol, c int) []domain.CellCoord {
	var out []domain.CellCoord
	for r := 1; r <= grid.Size; r++ {
		if s.g.Candidates(r, c).Has(v) {
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out
}
