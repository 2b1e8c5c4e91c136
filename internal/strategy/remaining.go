package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// RemainingInfluencer intersects the exclusion sets of all other vacancies in
// a region. A symbol excluded in every one of them cannot occupy any other
// vacancy, so it is forced onto the target cell.
type RemainingInfluencer struct {
	g *grid.Grid
}

func NewRemainingInfluencer(g *grid.Grid) *RemainingInfluencer {
	return &RemainingInfluencer{g: g}
}

func (s *RemainingInfluencer) Name() string { return "remaining-influencer" }

func (s *RemainingInfluencer) Apply(r, c int) domain.Symbol {
	if s.g.Cell(r, c).Occupied() {
		return 0
	}
	return applyRegions(s, r, c)
}

func (s *RemainingInfluencer) applyToBox(r, c int) domain.Symbol {
	br, bc := grid.BoxOf(r, c)
	return s.common(r, c, s.g.VacanciesInBox(br, bc, domain.CellCoord{Row: r, Col: c}))
}

func (s *RemainingInfluencer) applyToRow(r, c int) domain.Symbol {
	return s.common(r, c, s.g.VacanciesInRow(r, c))
}

func (s *RemainingInfluencer) applyToColumn(r, c int) domain.Symbol {
	return s.common(r, c, s.g.VacanciesInColumn(c, r))
}

func (s *RemainingInfluencer) common(r, c int, others []domain.CellCoord) domain.Symbol {
	if len(others) == 0 {
		return 0
	}
	total := domain.FullSet
	for _, o := range others {
		total &= s.g.Influencers(o.Row, o.Col)
	}
	v, ok := total.Single()
	if !ok {
		return 0
	}
	// A region in which the surviving symbol is not even a candidate of the
	// target is contradictory; abstain and let conformance checking catch it.
	if !s.g.Candidates(r, c).Has(v) {
		return 0
	}
	return v
}
