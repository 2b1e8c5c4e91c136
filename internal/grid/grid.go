// Package grid owns the 81-cell board state: coordinate mapping, candidate
// bookkeeping, exclusion propagation, and rule conformance. All exported
// coordinates are 1-based (rows/cols in 1..9, boxes in 1..3); the flat index
// into the cell array is an internal detail of the encoding.
package grid

import (
	"errors"
	"fmt"

	"svw.info/sudoku-logic/internal/domain"
)

const (
	Size    = 9  // symbols per row/column/box
	BoxSize = 3  // box edge length
	Cells   = 81 // Size * Size
)

var ErrOccupied = errors.New("cell already occupied")

// ConflictError reports a conformance violation: placing Symbol produced a
// duplicate in the row, column, or box of At.
type ConflictError struct {
	At     domain.CellCoord
	Symbol domain.Symbol
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %d duplicated at (%d,%d)", e.Symbol, e.At.Row, e.At.Col)
}

// Grid is the single mutable board resource. It is mutated only through Place
// and the Exclude* operations; a vacant cell's exclusion set grows
// monotonically within one solving session.
type Grid struct {
	cells    [Cells]domain.Cell
	solution string // attached oracle solution, empty when absent
}

// New returns an all-vacant grid with no exclusions.
func New() *Grid { return &Grid{} }

// Clone returns an independent deep copy, oracle included.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// ---- coordinate maps ----

// Index maps 1-based (row, col) to the flat index 0..80.
func Index(r, c int) int { return (r-1)*Size + c - 1 }

// Coord is the inverse of Index.
func Coord(idx int) (int, int) { return idx/Size + 1, idx%Size + 1 }

// BoxOf maps a cell to its 1-based box coordinate (1..3, 1..3).
func BoxOf(r, c int) (int, int) { return (r-1)/BoxSize + 1, (c-1)/BoxSize + 1 }

// BoxCell maps a box-relative coordinate (i, j in 1..3) inside box (br, bc)
// to the absolute (row, col).
func BoxCell(br, bc, i, j int) (int, int) {
	return (br-1)*BoxSize + i, (bc-1)*BoxSize + j
}

// ---- cell access ----

func (g *Grid) Cell(r, c int) domain.Cell { return g.cells[Index(r, c)] }

// Occupant returns the value at (r, c), or 0 when vacant.
func (g *Grid) Occupant(r, c int) domain.Symbol { return g.cells[Index(r, c)].Value() }

// Candidates returns 1..9 minus the exclusions of (r, c); empty when occupied.
func (g *Grid) Candidates(r, c int) domain.SymbolSet { return g.cells[Index(r, c)].Candidates() }

// Influencers returns the excluded-symbol set of (r, c); empty when occupied.
func (g *Grid) Influencers(r, c int) domain.SymbolSet { return g.cells[Index(r, c)].Excluded() }

// ---- vacancies ----

// Vacancies lists all vacant cells in row-major order.
func (g *Grid) Vacancies() []domain.CellCoord {
	var out []domain.CellCoord
	for idx := range g.cells {
		if !g.cells[idx].Occupied() {
			r, c := Coord(idx)
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out
}

// VacanciesInRow lists vacant cells of row r, skipping column skipCol
// (pass 0 to skip nothing).
func (g *Grid) VacanciesInRow(r, skipCol int) []domain.CellCoord {
	var out []domain.CellCoord
	for c := 1; c <= Size; c++ {
		if c == skipCol || g.Cell(r, c).Occupied() {
			continue
		}
		out = append(out, domain.CellCoord{Row: r, Col: c})
	}
	return out
}

// VacanciesInColumn lists vacant cells of column c, skipping row skipRow.
func (g *Grid) VacanciesInColumn(c, skipRow int) []domain.CellCoord {
	var out []domain.CellCoord
	for r := 1; r <= Size; r++ {
		if r == skipRow || g.Cell(r, c).Occupied() {
			continue
		}
		out = append(out, domain.CellCoord{Row: r, Col: c})
	}
	return out
}

// VacanciesInBox lists vacant cells of box (br, bc) in absolute coordinates,
// skipping the named cell (Row 0 to skip nothing).
func (g *Grid) VacanciesInBox(br, bc int, skip domain.CellCoord) []domain.CellCoord {
	var out []domain.CellCoord
	for i := 1; i <= BoxSize; i++ {
		for j := 1; j <= BoxSize; j++ {
			r, c := BoxCell(br, bc, i, j)
			if (r == skip.Row && c == skip.Col) || g.Cell(r, c).Occupied() {
				continue
			}
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out
}

// FirstVacancy returns the first vacant cell in row-major order.
func (g *Grid) FirstVacancy() (domain.CellCoord, bool) {
	for idx := range g.cells {
		if !g.cells[idx].Occupied() {
			r, c := Coord(idx)
			return domain.CellCoord{Row: r, Col: c}, true
		}
	}
	return domain.CellCoord{}, false
}

// Complete reports whether every cell is occupied.
func (g *Grid) Complete() bool {
	_, vacant := g.FirstVacancy()
	return !vacant
}

// ---- exclusion primitive and propagation ----

// Exclude adds v to the exclusion set of (r, c). It is the elimination
// primitive every strategy calls: occupied cells and already-excluded symbols
// are untouched. Reports whether new information was recorded.
func (g *Grid) Exclude(v domain.Symbol, r, c int) bool {
	return g.cells[Index(r, c)].Exclude(v)
}

// ExcludeFromRow excludes v from every vacant cell of row r whose column is
// not listed in except.
func (g *Grid) ExcludeFromRow(v domain.Symbol, r int, except ...int) {
	for c := 1; c <= Size; c++ {
		if intIn(c, except) {
			continue
		}
		g.Exclude(v, r, c)
	}
}

// ExcludeFromColumn excludes v from every vacant cell of column c whose row
// is not listed in except.
func (g *Grid) ExcludeFromColumn(v domain.Symbol, c int, except ...int) {
	for r := 1; r <= Size; r++ {
		if intIn(r, except) {
			continue
		}
		g.Exclude(v, r, c)
	}
}

// ExcludeFromBox excludes v from every vacant cell of box (br, bc) except the
// listed absolute coordinates.
func (g *Grid) ExcludeFromBox(v domain.Symbol, br, bc int, except ...domain.CellCoord) {
	for i := 1; i <= BoxSize; i++ {
		for j := 1; j <= BoxSize; j++ {
			r, c := BoxCell(br, bc, i, j)
			if coordIn(domain.CellCoord{Row: r, Col: c}, except) {
				continue
			}
			g.Exclude(v, r, c)
		}
	}
}

// propagate spreads a committed symbol as an exclusion across the row,
// column, and box of the placement, leaving the placed cell alone.
func (g *Grid) propagate(v domain.Symbol, r, c int) {
	g.ExcludeFromRow(v, r, c)
	g.ExcludeFromColumn(v, c, r)
	br, bc := BoxOf(r, c)
	g.ExcludeFromBox(v, br, bc, domain.CellCoord{Row: r, Col: c})
}

// ---- conformance ----

// Conflict scans rows, columns, and boxes for duplicate occupants and returns
// the location of the first offender found.
func (g *Grid) Conflict() (domain.CellCoord, domain.Symbol, bool) {
	for r := 1; r <= Size; r++ {
		var seen domain.SymbolSet
		for c := 1; c <= Size; c++ {
			if at, v, ok := dupe(&seen, g.Occupant(r, c), r, c); ok {
				return at, v, true
			}
		}
	}
	for c := 1; c <= Size; c++ {
		var seen domain.SymbolSet
		for r := 1; r <= Size; r++ {
			if at, v, ok := dupe(&seen, g.Occupant(r, c), r, c); ok {
				return at, v, true
			}
		}
	}
	for br := 1; br <= BoxSize; br++ {
		for bc := 1; bc <= BoxSize; bc++ {
			var seen domain.SymbolSet
			for i := 1; i <= BoxSize; i++ {
				for j := 1; j <= BoxSize; j++ {
					r, c := BoxCell(br, bc, i, j)
					if at, v, ok := dupe(&seen, g.Occupant(r, c), r, c); ok {
						return at, v, true
					}
				}
			}
		}
	}
	return domain.CellCoord{}, 0, false
}

// Conforms reports whether no region holds a duplicate value.
func (g *Grid) Conforms() bool {
	_, _, bad := g.Conflict()
	return !bad
}

// Place commits v at the vacant cell (r, c): write, re-check conformance,
// roll back on a duplicate, then propagate the new exclusion to the cell's
// row, column, and box. A conflict should not happen with sound strategies;
// it is defended against, not expected.
func (g *Grid) Place(v domain.Symbol, r, c int) error {
	cell := &g.cells[Index(r, c)]
	if cell.Occupied() {
		return fmt.Errorf("place %d at (%d,%d): %w", v, r, c, ErrOccupied)
	}
	prior := cell.Excluded()
	cell.Occupy(v)
	if at, dup, bad := g.Conflict(); bad {
		cell.Clear(prior)
		return &ConflictError{At: at, Symbol: dup}
	}
	g.propagate(v, r, c)
	return nil
}

// ---- oracle solution ----

// AttachSolution stores a fully solved flat sequence for the cheat strategy.
func (g *Grid) AttachSolution(s string) error {
	if err := ValidateFlat(s); err != nil {
		return err
	}
	g.solution = s
	return nil
}

// Solution returns the attached oracle, if any.
func (g *Grid) Solution() (string, bool) { return g.solution, g.solution != "" }

// ---- snapshots ----

// Snapshot is an opaque copyable value of the full cell state, handed to the
// persistence collaborator. The oracle solution is deliberately not part of it.
type Snapshot [Cells]domain.Cell

func (g *Grid) Snapshot() Snapshot { return g.cells }

func (g *Grid) Restore(s Snapshot) { g.cells = s }

// ---- helpers ----

func dupe(seen *domain.SymbolSet, v domain.Symbol, r, c int) (domain.CellCoord, domain.Symbol, bool) {
	if v == 0 {
		return domain.CellCoord{}, 0, false
	}
	if seen.Has(v) {
		return domain.CellCoord{Row: r, Col: c}, v, true
	}
	*seen = seen.With(v)
	return domain.CellCoord{}, 0, false
}

func intIn(n int, list []int) bool {
	for _, m := range list {
		if m == n {
			return true
		}
	}
	return false
}

func coordIn(cc domain.CellCoord, list []domain.CellCoord) bool {
	for _, m := range list {
		if m == cc {
			return true
		}
	}
	return false
}
