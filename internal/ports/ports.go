package ports

import (
	"context"
	"time"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Status is the terminal state of a deduction run.
type Status int

const (
	Running Status = iota
	Solved         // every cell occupied, board conformant
	Stuck          // a full pass produced no commit
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	default:
		return "running"
	}
}

// Deduction is the outcome of a deduction run. On Stuck it carries the
// partial grid, the remaining vacancies, and their candidate sets for manual
// or exhaustive-search continuation.
type Deduction struct {
	Status     Status
	Grid       *grid.Grid
	Steps      int
	Vacancies  []domain.CellCoord
	Candidates map[domain.CellCoord]domain.SymbolSet
}

// Deducer runs the strategy-driven solving loop on a flat 81-digit sequence.
type Deducer interface {
	Deduce(ctx context.Context, flat string) (*Deduction, Stats, error)
}

// Searcher is the exhaustive backtracking engine over the flat encoding.
type Searcher interface {
	// FirstSolution stops at the first complete sequence.
	FirstSolution(ctx context.Context, flat string) (string, Stats, error)
	// CountSolutions enumerates completions, stopping early at limit
	// (limit <= 0 means unbounded).
	CountSolutions(ctx context.Context, flat string, limit int) (int, Stats, error)
}

// Generator creates new puzzles with a unique solution.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// PuzzleStore persists and retrieves puzzles as JSON.
type PuzzleStore interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

// SnapshotStore keeps named copies of in-progress grid states. It is an
// injectable collaborator, not process-global state.
type SnapshotStore interface {
	Persist(name string, s grid.Snapshot) error
	Restore(name string) (grid.Snapshot, error)
	Names() []string
}
