package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/solver"
)

func countClues(flat string) int {
	n := 0
	for i := 0; i < len(flat); i++ {
		if flat[i] != '0' {
			n++
		}
	}
	return n
}

func TestGenerateProducesUniquePuzzle(t *testing.T) {
	gen := NewUniqueGenerator(solver.NewBacktracking())
	p, stats, err := gen.Generate(context.Background(), 42, domain.Medium)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, domain.Medium, p.Difficulty)
	assert.GreaterOrEqual(t, countClues(p.Clues), domain.Medium.ClueFloor())
	assert.Greater(t, stats.Nodes, 0)

	// the solution is a complete conformant grid
	sol, err := grid.Decode(p.Solution)
	require.NoError(t, err)
	assert.True(t, sol.Complete())
	assert.True(t, sol.Conforms())

	// every clue agrees with the solution
	for i := 0; i < grid.Cells; i++ {
		if p.Clues[i] != '0' {
			assert.Equal(t, p.Solution[i], p.Clues[i], "clue at index %d", i)
		}
	}

	// a second engine certifies uniqueness
	n, _, err := solver.NewDLX().CountSolutions(context.Background(), p.Clues, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	gen := NewUniqueGenerator(solver.NewBacktracking())

	a, _, err := gen.Generate(context.Background(), 7, domain.Easy)
	require.NoError(t, err)
	b, _, err := gen.Generate(context.Background(), 7, domain.Easy)
	require.NoError(t, err)

	assert.Equal(t, a.Clues, b.Clues)
	assert.Equal(t, a.Solution, b.Solution)
	assert.NotEqual(t, a.ID, b.ID, "every puzzle gets its own identity")
}

func TestGenerateHonorsClueFloor(t *testing.T) {
	gen := NewUniqueGenerator(solver.NewBacktracking())

	easy, _, err := gen.Generate(context.Background(), 3, domain.Easy)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countClues(easy.Clues), domain.Easy.ClueFloor())

	expert, _, err := gen.Generate(context.Background(), 3, domain.Expert)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countClues(expert.Clues), domain.Expert.ClueFloor())
}

func TestGenerateMinCluesOverride(t *testing.T) {
	gen := &UniqueGenerator{Search: solver.NewBacktracking(), MinClues: 30}

	p, _, err := gen.Generate(context.Background(), 5, domain.Expert)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countClues(p.Clues), 30)

	n, _, err := solver.NewBacktracking().CountSolutions(context.Background(), p.Clues, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGenerateHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := NewUniqueGenerator(solver.NewBacktracking())
	_, _, err := gen.Generate(ctx, 1, domain.Medium)
	assert.ErrorIs(t, err, context.Canceled)
}
