package strategy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

func TestCheatReadsOracle(t *testing.T) {
	sol := "534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"

	g := grid.New()
	require.NoError(t, g.AttachSolution(sol))

	s := NewCheat(g)
	assert.Equal(t, domain.Symbol(5), s.Apply(1, 1))
	assert.Equal(t, domain.Symbol(9), s.Apply(9, 9))
	assert.Equal(t, domain.Symbol(9), s.Apply(4, 3))
}

func TestCheatWithoutOracle(t *testing.T) {
	g := grid.New()
	s := NewCheat(g)
	assert.Equal(t, domain.Symbol(0), s.Apply(1, 1))
}

func TestCheatSkipsOccupiedCells(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.AttachSolution(strings.Repeat("1", grid.Cells)))
	mustPlace(t, g, 2, 1, 1)

	s := NewCheat(g)
	assert.Equal(t, domain.Symbol(0), s.Apply(1, 1))
}
