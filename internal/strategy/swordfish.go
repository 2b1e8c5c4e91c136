package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// Swordfish extends X-Wing to triples: three columns in which a symbol
// appears as a candidate two or three times each, covered by exactly three
// rows, lock the symbol to those column cells and exclude it from the rest of
// the rows. The row-based pass is the transpose.
type Swordfish struct {
	g *grid.Grid
}

func NewSwordfish(g *grid.Grid) *Swordfish { return &Swordfish{g: g} }

func (s *Swordfish) Name() string { return "swordfish" }

func (s *Swordfish) Apply() {
	s.applyToColumns()
	s.applyToRows()
}

func (s *Swordfish) applyToColumns() {
	for v := domain.MinSymbol; v <= domain.MaxSymbol; v++ {
		var cols []int
		for c := 1; c <= grid.Size; c++ {
			n := s.countInColumn(v, c)
			if n >= 2 && n <= grid.BoxSize {
				cols = append(cols, c)
			}
		}
		for a := 0; a < len(cols); a++ {
			for b := a + 1; b < len(cols); b++ {
				for d := b + 1; d < len(cols); d++ {
					rows := s.coveringRows(v, cols[a], cols[b], cols[d])
					if len(rows) != grid.BoxSize {
						continue
					}
					for _, r := range rows {
						s.g.ExcludeFromRow(v, r, cols[a], cols[b], cols[d])
					}
				}
			}
		}
	}
}

func (s *Swordfish) applyToRows() {
	for v := domain.MinSymbol; v <= domain.MaxSymbol; v++ {
		var rows []int
		for r := 1; r <= grid.Size; r++ {
			n := s.countInRow(v, r)
			if n >= 2 && n <= grid.BoxSize {
				rows = append(rows, r)
			}
		}
		for a := 0; a < len(rows); a++ {
			for b := a + 1; b < len(rows); b++ {
				for d := b + 1; d < len(rows); d++ {
					cols := s.coveringColumns(v, rows[a], rows[b], rows[d])
					if len(cols) != grid.BoxSize {
						continue
					}
					for _, c := range cols {
						s.g.ExcludeFromColumn(v, c, rows[a], rows[b], rows[d])
					}
				}
			}
		}
	}
}

func (s *Swordfish) countInColumn(v domain.Symbol, c int) int {
	n := 0
	for r := 1; r <= grid.Size; r++ {
		if s.g.Candidates(r, c).Has(v) {
			n++
		}
	}
	return n
}

func (s *Swordfish) countInRow(v domain.Symbol, r int) int {
	n := 0
	for c := 1; c <= grid.Size; c++ {
		if s.g.Candidates(r, c).Has(v) {
			n++
		}
	}
	return n
}

// coveringRows lists the rows in which v is a candidate within any of the
// three columns.
func (s *Swordfish) coveringRows(v domain.Symbol, c1, c2, c3 int) []int {
	var out []int
	for r := 1; r <= grid.Size; r++ {
		if s.g.Candidates(r, c1).Has(v) || s.g.Candidates(r, c2).Has(v) || s.g.Candidates(r, c3).Has(v) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Swordfish) coveringColumns(v domain.Symbol, r1, r2, r3 int) []int {
	var out []int
	for c := 1; c <= grid.Size; c++ {
		if s.g.Candidates(r1, c).Has(v) || s.g.Candidates(r2, c).Has(v) || s.g.Candidates(r3, c).Has(v) {
			out = append(out, c)
		}
	}
	return out
}
