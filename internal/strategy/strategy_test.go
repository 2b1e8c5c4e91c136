package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

func mustPlace(t *testing.T, g *grid.Grid, v domain.Symbol, r, c int) {
	t.Helper()
	require.NoError(t, g.Place(v, r, c))
}

func TestDefaultValuesOrder(t *testing.T) {
	g := grid.New()

	names := func(vs []ValueStrategy) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = v.Name()
		}
		return out
	}

	assert.Equal(t,
		[]string{"deep-check", "naked-single", "remaining-influencer"},
		names(DefaultValues(g, false)))
	assert.Equal(t,
		[]string{"deep-check", "naked-single", "remaining-influencer", "cheat"},
		names(DefaultValues(g, true)))
}

func TestDefaultEliminatorsComplete(t *testing.T) {
	g := grid.New()
	var names []string
	for _, e := range DefaultEliminators(g) {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"x-wing", "swordfish", "hidden-pairs", "hidden-triples",
		"pointing", "indirect-influencers",
	}, names)
}

func TestAllUnitsEnumeration(t *testing.T) {
	units := allUnits()
	require.Len(t, units, 27)
	for _, unit := range units {
		assert.Len(t, unit, grid.Size)
	}
}

// Eliminators must be idempotent: a second run on an unchanged grid records
// no new exclusions.
func TestEliminatorsIdempotent(t *testing.T) {
	g := grid.New()
	mustPlace(t, g, 1, 2, 1)
	mustPlace(t, g, 2, 2, 2)
	mustPlace(t, g, 3, 2, 3)
	mustPlace(t, g, 4, 3, 1)
	mustPlace(t, g, 6, 3, 2)
	mustPlace(t, g, 7, 3, 3)

	elims := DefaultEliminators(g)
	for _, e := range elims {
		e.Apply()
	}
	snapshot := exclusionState(g)
	for _, e := range elims {
		e.Apply()
	}
	assert.Equal(t, snapshot, exclusionState(g))
}

func exclusionState(g *grid.Grid) map[domain.CellCoord]domain.SymbolSet {
	out := make(map[domain.CellCoord]domain.SymbolSet)
	for r := 1; r <= grid.Size; r++ {
		for c := 1; c <= grid.Size; c++ {
			out[domain.CellCoord{Row: r, Col: c}] = g.Influencers(r, c)
		}
	}
	return out
}
