package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
)

const samplePuzzle = "530070000" +
	"600195000" +
	"098000060" +
	"800060003" +
	"400803001" +
	"700020006" +
	"060000280" +
	"000419005" +
	"000080079"

func TestBoardLayout(t *testing.T) {
	g, err := grid.Decode(samplePuzzle)
	require.NoError(t, err)

	out := Board(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 13, "9 cell rows plus 4 separator rules")
	assert.Contains(t, lines[1], "5 3 .")
	assert.Contains(t, out, "+-------+")
}

func TestBoardFlatRejectsMalformedInput(t *testing.T) {
	_, err := BoardFlat("nope")
	assert.ErrorIs(t, err, grid.ErrBadLength)
}

func TestCandidatesListing(t *testing.T) {
	at := domain.CellCoord{Row: 3, Col: 4}
	d := &ports.Deduction{
		Status:    ports.Stuck,
		Vacancies: []domain.CellCoord{at},
		Candidates: map[domain.CellCoord]domain.SymbolSet{
			at: domain.SymbolSet(0).With(2).With(7),
		},
	}

	out := Candidates(d)
	assert.Contains(t, out, "1 open cells")
	assert.Contains(t, out, "(3,4): 2 7")
}

func TestSummary(t *testing.T) {
	d := &ports.Deduction{Status: ports.Solved, Steps: 51}
	out := Summary(d, ports.Stats{})
	assert.Contains(t, out, "solved")
	assert.Contains(t, out, "51 steps")
}
