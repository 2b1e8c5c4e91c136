package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/generator"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/infrastructure/storage"
	"svw.info/sudoku-logic/internal/ports"
	"svw.info/sudoku-logic/internal/solver"
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

func testService(t *testing.T) *Service {
	t.Helper()
	search := solver.NewBacktracking()
	return NewService(
		solver.NewOrchestrator(search, false, nil),
		search,
		generator.NewUniqueGenerator(search),
		storage.NewFS(t.TempDir()),
		storage.NewMemory(),
	)
}

func TestServiceGuardsMissingDependencies(t *testing.T) {
	var empty Service
	ctx := context.Background()

	_, _, err := empty.Deduce(ctx, samplePuzzle)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = empty.SearchFirst(ctx, samplePuzzle)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = empty.Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, errNotConfigured)
	assert.ErrorIs(t, empty.Save(ctx, nil), errNotConfigured)
	_, err = empty.Load(ctx, "id")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = empty.List(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
	assert.ErrorIs(t, empty.Snapshot("n", samplePuzzle), errNotConfigured)
	_, err = empty.RestoreSnapshot("n")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = empty.SnapshotNames()
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestServiceDeduce(t *testing.T) {
	svc := testService(t)
	ded, _, err := svc.Deduce(context.Background(), samplePuzzle)
	require.NoError(t, err)
	assert.Equal(t, ports.Solved, ded.Status)
}

func TestServiceValidate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	ok, conflicts, err := svc.Validate(ctx, samplePuzzle)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)

	conflicting := "55" + strings.Repeat("0", grid.Cells-2)
	ok, conflicts, err = svc.Validate(ctx, conflicting)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conflicts)

	_, _, err = svc.Validate(ctx, "short")
	assert.Error(t, err)
}

func TestServiceSnapshotRoundTrip(t *testing.T) {
	svc := testService(t)

	require.NoError(t, svc.Snapshot("opening", samplePuzzle))

	names, err := svc.SnapshotNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"opening"}, names)

	flat, err := svc.RestoreSnapshot("opening")
	require.NoError(t, err)
	assert.Equal(t, samplePuzzle, flat)

	_, err = svc.RestoreSnapshot("missing")
	assert.Error(t, err)
}
