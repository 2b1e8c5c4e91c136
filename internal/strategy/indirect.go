package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// IndirectInfluencers finds locked candidates in a box's row or column
// segment: when the union of the segment's vacant-cell candidates is exactly
// as large as the number of vacant cells, those symbols are bound to the
// segment and can be excluded from the rest of the full row or column.
type IndirectInfluencers struct {
	g *grid.Grid
}

func NewIndirectInfluencers(g *grid.Grid) *IndirectInfluencers {
	return &IndirectInfluencers{g: g}
}

func (s *IndirectInfluencers) Name() string { return "indirect-influencers" }

func (s *IndirectInfluencers) Apply() {
	for br := 1; br <= grid.BoxSize; br++ {
		for bc := 1; bc <= grid.BoxSize; bc++ {
			for seg := 1; seg <= grid.BoxSize; seg++ {
				s.lockRowSegment(br, bc, seg)
				s.lockColSegment(br, bc, seg)
			}
		}
	}
}

func (s *IndirectInfluencers) lockRowSegment(br, bc, i int) {
	var union domain.SymbolSet
	vacant := 0
	for j := 1; j <= grid.BoxSize; j++ {
		r, c := grid.BoxCell(br, bc, i, j)
		cell := s.g.Cell(r, c)
		if cell.Occupied() {
			continue
		}
		vacant++
		union |= cell.Candidates()
	}
	if vacant == 0 || union.Size() != vacant {
		return
	}
	row := (br-1)*grid.BoxSize + i
	c1, c2, c3 := boxColumns(bc)
	for _, v := range union.Symbols() {
		s.g.ExcludeFromRow(v, row, c1, c2, c3)
	}
}

func (s *IndirectInfluencers) lockColSegment(br, bc, j int) {
	var union domain.SymbolSet
	vacant := 0
	for i := 1; i <= grid.BoxSize; i++ {
		r, c := grid.BoxCell(br, bc, i, j)
		cell := s.g.Cell(r, c)
		if cell.Occupied() {
			continue
		}
		vacant++
		union |= cell.Candidates()
	}
	if vacant == 0 || union.Size() != vacant {
		return
	}
	col := (bc-1)*grid.BoxSize + j
	r1, r2, r3 := boxRows(br)
	for _, v := range union.Symbols() {
		s.g.ExcludeFromColumn(v, col, r1, r2, r3)
	}
}

func boxColumns(bc int) (int, int, int) {
	base := (bc - 1) * grid.BoxSize
	return base + 1, base + 2, base + 3
}

func boxRows(br int) (int, int, int) {
	base := (br - 1) * grid.BoxSize
	return base + 1, base + 2, base + 3
}
