package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// Columns 1, 4, and 7 each keep 9 as a candidate only in rows 2, 5, and 8.
// The three columns are covered by exactly three rows, so 9 is cleared from
// those rows outside the pattern columns.
func TestSwordfishClearsCoveredRows(t *testing.T) {
	g := grid.New()
	fill := []struct {
		v    domain.Symbol
		r, c int
	}{
		{1, 1, 1}, {2, 3, 1}, {3, 4, 1}, {4, 6, 1}, {5, 7, 1}, {6, 9, 1},
		{2, 1, 4}, {3, 3, 4}, {4, 4, 4}, {5, 6, 4}, {6, 7, 4}, {1, 9, 4},
		{3, 1, 7}, {4, 3, 7}, {5, 4, 7}, {6, 6, 7}, {1, 7, 7}, {2, 9, 7},
	}
	for _, f := range fill {
		mustPlace(t, g, f.v, f.r, f.c)
	}

	assert.True(t, g.Candidates(2, 2).Has(9))

	NewSwordfish(g).Apply()

	// cleared from the covered rows outside columns 1, 4, 7
	assert.False(t, g.Candidates(2, 2).Has(9))
	assert.False(t, g.Candidates(5, 9).Has(9))
	assert.False(t, g.Candidates(8, 6).Has(9))
	// the pattern cells keep their candidate
	assert.True(t, g.Candidates(2, 1).Has(9))
	assert.True(t, g.Candidates(5, 4).Has(9))
	assert.True(t, g.Candidates(8, 7).Has(9))
	// uncovered rows are untouched
	assert.True(t, g.Candidates(1, 2).Has(9))
}

func TestSwordfishNeedsExactCover(t *testing.T) {
	g := grid.New()
	// only two columns confine the symbol; no triple can form
	fill := []struct {
		v    domain.Symbol
		r, c int
	}{
		{1, 1, 1}, {2, 3, 1}, {3, 4, 1}, {4, 6, 1}, {5, 7, 1}, {6, 9, 1},
		{2, 1, 4}, {3, 3, 4}, {4, 4, 4}, {5, 6, 4}, {6, 7, 4}, {1, 9, 4},
	}
	for _, f := range fill {
		mustPlace(t, g, f.v, f.r, f.c)
	}

	NewSwordfish(g).Apply()
	assert.True(t, g.Candidates(2, 2).Has(9))
}
