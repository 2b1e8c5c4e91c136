package solver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
	"svw.info/sudoku-logic/internal/strategy"
)

func TestDeduceSolvesSamplePuzzle(t *testing.T) {
	o := NewOrchestrator(NewBacktracking(), false, nil)
	ded, stats, err := o.Deduce(context.Background(), samplePuzzle)
	require.NoError(t, err)

	assert.Equal(t, ports.Solved, ded.Status)
	assert.Equal(t, sampleSolution, ded.Grid.Encode())
	assert.Equal(t, 51, ded.Steps, "one commit per vacancy")
	assert.Equal(t, ded.Steps, stats.Nodes)
	assert.Empty(t, ded.Vacancies)
}

func TestDeduceStuckOnSparseGrid(t *testing.T) {
	sparse := "1" + strings.Repeat("0", grid.Cells-1)

	o := NewOrchestrator(NewBacktracking(), false, nil)
	ded, _, err := o.Deduce(context.Background(), sparse)
	require.NoError(t, err)

	assert.Equal(t, ports.Stuck, ded.Status)
	assert.Equal(t, 0, ded.Steps)
	assert.Len(t, ded.Vacancies, grid.Cells-1)

	// candidate sets accompany the vacancies for continuation
	at := domain.CellCoord{Row: 1, Col: 2}
	require.Contains(t, ded.Candidates, at)
	assert.False(t, ded.Candidates[at].Has(1), "influenced by the given")
	assert.True(t, ded.Candidates[at].Has(2))
}

func TestDeduceCheatSolvesAnything(t *testing.T) {
	empty := strings.Repeat("0", grid.Cells)

	o := NewOrchestrator(NewBacktracking(), true, nil)
	ded, _, err := o.Deduce(context.Background(), empty)
	require.NoError(t, err)

	assert.Equal(t, ports.Solved, ded.Status)
	assert.True(t, ded.Grid.Complete())
	assert.True(t, ded.Grid.Conforms())
	assert.Equal(t, grid.Cells, ded.Steps)
}

func TestDeduceRejectsMalformedInput(t *testing.T) {
	o := NewOrchestrator(NewBacktracking(), false, nil)
	_, _, err := o.Deduce(context.Background(), "bogus")
	assert.ErrorIs(t, err, grid.ErrBadLength)
}

func TestDeduceRejectsConflictingGivens(t *testing.T) {
	conflicting := "55" + strings.Repeat("0", grid.Cells-2)
	o := NewOrchestrator(NewBacktracking(), false, nil)
	_, _, err := o.Deduce(context.Background(), conflicting)
	assert.Error(t, err)
}

func TestDeduceHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator(NewBacktracking(), false, nil)
	_, _, err := o.Deduce(ctx, samplePuzzle)
	assert.ErrorIs(t, err, context.Canceled)
}

// An empty strategy chain cannot make progress; the loop must terminate in
// Stuck instead of spinning.
func TestDeduceCustomStrategyChain(t *testing.T) {
	o := NewOrchestrator(NewBacktracking(), false, nil)
	o.Values = func(g *grid.Grid) []strategy.ValueStrategy { return nil }
	o.Eliminators = func(g *grid.Grid) []strategy.Eliminator { return nil }

	ded, _, err := o.Deduce(context.Background(), samplePuzzle)
	require.NoError(t, err)
	assert.Equal(t, ports.Stuck, ded.Status)
	assert.Equal(t, 0, ded.Steps)
	assert.Equal(t, samplePuzzle, ded.Grid.Encode())
}
