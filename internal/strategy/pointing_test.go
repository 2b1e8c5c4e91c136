package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/sudoku-logic/internal/grid"
)

// Rows 2 and 3 of box 1 are occupied, so the 5-candidates of the box sit on
// row 1 columns 1..3 alone. The symbol is then locked to that segment and
// vanishes from the rest of row 1.
func TestPointingLocksSymbolToRow(t *testing.T) {
	g := grid.New()
	mustPlace(t, g, 1, 2, 1)
	mustPlace(t, g, 2, 2, 2)
	mustPlace(t, g, 3, 2, 3)
	mustPlace(t, g, 4, 3, 1)
	mustPlace(t, g, 6, 3, 2)
	mustPlace(t, g, 7, 3, 3)

	assert.True(t, g.Candidates(1, 5).Has(5))

	NewPointing(g).Apply()

	assert.False(t, g.Candidates(1, 5).Has(5))
	assert.False(t, g.Candidates(1, 9).Has(5))
	// inside the box the candidates survive
	assert.True(t, g.Candidates(1, 1).Has(5))
	assert.True(t, g.Candidates(1, 2).Has(5))
}

func TestPointingIgnoresSpreadCandidates(t *testing.T) {
	g := grid.New()
	mustPlace(t, g, 1, 2, 1)

	NewPointing(g).Apply()

	// 5 is still possible in several rows of box 1; nothing outside changes
	assert.True(t, g.Candidates(1, 5).Has(5))
	assert.True(t, g.Candidates(3, 8).Has(5))
}
