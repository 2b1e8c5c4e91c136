package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
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

func TestValidateFlat(t *testing.T) {
	assert.NoError(t, ValidateFlat(samplePuzzle))
	assert.NoError(t, ValidateFlat(strings.Repeat("0", Cells)))

	assert.ErrorIs(t, ValidateFlat("123"), ErrBadLength)
	assert.ErrorIs(t, ValidateFlat(samplePuzzle+"0"), ErrBadLength)

	bad := "x" + samplePuzzle[1:]
	assert.ErrorIs(t, ValidateFlat(bad), ErrBadSymbol)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	g, err := Decode(samplePuzzle)
	require.NoError(t, err)
	assert.Equal(t, samplePuzzle, g.Encode())
	assert.True(t, g.Conforms())
	assert.False(t, g.Complete())
}

func TestDecodePropagatesGivens(t *testing.T) {
	g, err := Decode(samplePuzzle)
	require.NoError(t, err)

	// (1,3) sees 5, 3, 7 in its row, 8 in its column, and 5, 3, 6, 9, 8 in
	// its box, leaving exactly {1, 2, 4}
	want := domain.SymbolSet(0).With(1).With(2).With(4)
	assert.Equal(t, want, g.Candidates(1, 3))
}

func TestDecodeRejectsConflictingGivens(t *testing.T) {
	conflicting := "55" + strings.Repeat("0", Cells-2)
	_, err := Decode(conflicting)
	require.Error(t, err)

	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := Decode("short")
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestEncodeEmptyGrid(t *testing.T) {
	assert.Equal(t, strings.Repeat("0", Cells), New().Encode())
}
