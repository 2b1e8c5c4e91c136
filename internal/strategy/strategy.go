// Package strategy holds the deduction strategies: value-inference strategies
// that name a definite occupant for one vacant cell, and eliminators that
// prune candidate sets across the whole grid. Strategies are bound to the
// grid they operate on at construction and never own board state.
package strategy

import (
	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// ValueStrategy infers the occupant of the vacant cell (r, c).
// A zero return means "no decision".
type ValueStrategy interface {
	Name() string
	Apply(r, c int) domain.Symbol
}

// Eliminator scans the grid and records exclusions through the grid's
// elimination primitive. Re-running with no new information changes nothing.
type Eliminator interface {
	Name() string
	Apply()
}

// regionApplier is the default value-inference composition: try the cell's
// box, then its row, then its column, stopping at the first hit. Concrete
// strategies that do not fit the per-region shape implement Apply directly.
type regionApplier interface {
	applyToBox(r, c int) domain.Symbol
	applyToRow(r, c int) domain.Symbol
	applyToColumn(r, c int) domain.Symbol
}

func applyRegions(a regionApplier, r, c int) domain.Symbol {
	if v := a.applyToBox(r, c); v != 0 {
		return v
	}
	if v := a.applyToRow(r, c); v != 0 {
		return v
	}
	return a.applyToColumn(r, c)
}

// DefaultValues returns the value-inference chain in evaluation order.
// The cheat oracle is appended only when requested.
func DefaultValues(g *grid.Grid, cheat bool) []ValueStrategy {
	vs := []ValueStrategy{
		NewDeepCheck(g),
		NewNakedSingle(g),
		NewRemainingInfluencer(g),
	}
	if cheat {
		vs = append(vs, NewCheat(g))
	}
	return vs
}

// DefaultEliminators returns the candidate-elimination set in evaluation order.
func DefaultEliminators(g *grid.Grid) []Eliminator {
	return []Eliminator{
		NewXWing(g),
		NewSwordfish(g),
		NewHiddenPairs(g),
		NewHiddenTriples(g),
		NewPointing(g),
		NewIndirectInfluencers(g),
	}
}

// ---- unit enumeration shared by the pattern detectors ----

func rowCells(r int) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, grid.Size)
	for c := 1; c <= grid.Size; c++ {
		out = append(out, domain.CellCoord{Row: r, Col: c})
	}
	return out
}

func colCells(c int) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, grid.Size)
	for r := 1; r <= grid.Size; r++ {
		out = append(out, domain.CellCoord{Row: r, Col: c})
	}
	return out
}

func boxCells(br, bc int) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, grid.Size)
	for i := 1; i <= grid.BoxSize; i++ {
		for j := 1; j <= grid.BoxSize; j++ {
			r, c := grid.BoxCell(br, bc, i, j)
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out
}

// allUnits yields every row, column, and box as a cell list.
func allUnits() [][]domain.CellCoord {
	units := make([][]domain.CellCoord, 0, 27)
	for r := 1; r <= grid.Size; r++ {
		units = append(units, rowCells(r))
	}
	for c := 1; c <= grid.Size; c++ {
		units = append(units, colCells(c))
	}
	for br := 1; br <= grid.BoxSize; br++ {
		for bc := 1; bc <= grid.BoxSize; bc++ {
			units = append(units, boxCells(br, bc))
		}
	}
	return units
}
