package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// HiddenPairs finds two symbols whose candidate positions within a row,
// column, or box coincide on exactly two cells. Those cells must hold the
// pair, so every other symbol is excluded from them.
type HiddenPairs struct {
	g *grid.Grid
}

func NewHiddenPairs(g *grid.Grid) *HiddenPairs { return &HiddenPairs{g: g} }

func (s *HiddenPairs) Name() string { return "hidden-pairs" }

func (s *HiddenPairs) Apply() {
	for _, unit := range allUnits() {
		for n1 := domain.MinSymbol; n1 < domain.MaxSymbol; n1++ {
			p1 := positions(s.g, unit, n1)
			if len(p1) != 2 {
				continue
			}
			for n2 := n1 + 1; n2 <= domain.MaxSymbol; n2++ {
				p2 := positions(s.g, unit, n2)
				if !sameCells(p1, p2) {
					continue
				}
				keep := domain.SymbolSet(0).With(n1).With(n2)
				excludeOthers(s.g, p1, keep)
			}
		}
	}
}

// HiddenTriples is the three-symbol form: three symbols jointly confined to
// exactly three cells of a unit clear every other candidate from those cells.
type HiddenTriples struct {
	g *grid.Grid
}

func NewHiddenTriples(g *grid.Grid) *HiddenTriples { return &HiddenTriples{g: g} }

func (s *HiddenTriples) Name() string { return "hidden-triples" }

func (s *HiddenTriples) Apply() {
	for _, unit := range allUnits() {
		for n1 := domain.MinSymbol; n1 <= domain.MaxSymbol-2; n1++ {
			p1 := positions(s.g, unit, n1)
			if len(p1) == 0 || len(p1) > 3 {
				continue
			}
			for n2 := n1 + 1; n2 <= domain.MaxSymbol-1; n2++ {
				p2 := positions(s.g, unit, n2)
				if len(p2) == 0 || len(p2) > 3 {
					continue
				}
				for n3 := n2 + 1; n3 <= domain.MaxSymbol; n3++ {
					p3 := positions(s.g, unit, n3)
					if len(p3) == 0 || len(p3) > 3 {
						continue
					}
					union := unionCells(p1, p2, p3)
					if len(union) != 3 {
						continue
					}
					keep := domain.SymbolSet(0).With(n1).With(n2).With(n3)
					excludeOthers(s.g, union, keep)
				}
			}
		}
	}
}

// positions lists the unit cells where v is a candidate.
func positions(g *grid.Grid, unit []domain.CellCoord, v domain.Symbol) []domain.CellCoord {
	var out []domain.CellCoord
	for _, cc := range unit {
		if g.Candidates(cc.Row, cc.Col).Has(v) {
			out = append(out, cc)
		}
	}
	return out
}

func sameCells(a, b []domain.CellCoord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func unionCells(lists ...[]domain.CellCoord) []domain.CellCoord {
	var out []domain.CellCoord
	for _, list := range lists {
		for _, cc := range list {
			if !coordListHas(out, cc) {
				out = append(out, cc)
			}
		}
	}
	return out
}

func coordListHas(list []domain.CellCoord, cc domain.CellCoord) bool {
	for _, m := range list {
		if m == cc {
			return true
		}
	}
	return false
}

// excludeOthers removes every symbol outside keep from the given cells.
func excludeOthers(g *grid.Grid, cells []domain.CellCoord, keep domain.SymbolSet) {
	for _, cc := range cells {
		for v := domain.MinSymbol; v <= domain.MaxSymbol; v++ {
			if !keep.Has(v) {
				g.Exclude(v, cc.Row, cc.Col)
			}
		}
	}
}
