package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// DeepCheck tests every candidate of the target cell against the other
// vacancies of a region: a candidate that is excluded in all of them has
// nowhere else to go and must occupy the target.
type DeepCheck struct {
	g *grid.Grid
}

func NewDeepCheck(g *grid.Grid) *DeepCheck { return &DeepCheck{g: g} }

func (s *DeepCheck) Name() string { return "deep-check" }

func (s *DeepCheck) Apply(r, c int) domain.Symbol {
	if s.g.Cell(r, c).Occupied() {
		return 0
	}
	return applyRegions(s, r, c)
}

func (s *DeepCheck) applyToBox(r, c int) domain.Symbol {
	br, bc := grid.BoxOf(r, c)
	others := s.g.VacanciesInBox(br, bc, domain.CellCoord{Row: r, Col: c})
	return s.forced(r, c, others)
}

func (s *DeepCheck) applyToRow(r, c int) domain.Symbol {
	return s.forced(r, c, s.g.VacanciesInRow(r, c))
}

func (s *DeepCheck) applyToColumn(r, c int) domain.Symbol {
	return s.forced(r, c, s.g.VacanciesInColumn(c, r))
}

// forced returns the first candidate of (r, c) that every other vacancy in
// the region excludes.
func (s *DeepCheck) forced(r, c int, others []domain.CellCoord) domain.Symbol {
	for _, v := range s.g.Candidates(r, c).Symbols() {
		blocked := false
		for _, o := range others {
			if !s.g.Influencers(o.Row, o.Col).Has(v) {
				blocked = true
				break
			}
		}
		if !blocked {
			return v
		}
	}
	return 0
}
