package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
)

// Service is the facade the adapters talk to.
type Service struct {
	Deducer   ports.Deducer
	Search    ports.Searcher
	Generator ports.Generator
	Puzzles   ports.PuzzleStore
	Snapshots ports.SnapshotStore
}

func NewService(d ports.Deducer, se ports.Searcher, g ports.Generator, ps ports.PuzzleStore, ss ports.SnapshotStore) *Service {
	return &Service{Deducer: d, Search: se, Generator: g, Puzzles: ps, Snapshots: ss}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Deduce runs the strategy loop on a flat sequence.
func (u *Service) Deduce(ctx context.Context, flat string) (*ports.Deduction, ports.Stats, error) {
	if u.Deducer == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Deducer.Deduce(ctx, flat)
}

// Search runs the exhaustive engine directly, bypassing deduction.
func (u *Service) SearchFirst(ctx context.Context, flat string) (string, ports.Stats, error) {
	if u.Search == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	return u.Search.FirstSolution(ctx, flat)
}

// Validate checks a flat sequence for well-formedness and rule conformance.
func (u *Service) Validate(ctx context.Context, flat string) (bool, []domain.CellCoord, error) {
	g, err := grid.Decode(flat)
	if err != nil {
		var conflict *grid.ConflictError
		if errors.As(err, &conflict) {
			return false, []domain.CellCoord{conflict.At}, nil
		}
		return false, nil, err
	}
	if at, _, bad := g.Conflict(); bad {
		return false, []domain.CellCoord{at}, nil
	}
	return true, nil, nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

// Puzzle persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Puzzles == nil {
		return errNotConfigured
	}
	return u.Puzzles.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.List(ctx)
}

// Grid snapshots
func (u *Service) Snapshot(name, flat string) error {
	if u.Snapshots == nil {
		return errNotConfigured
	}
	g, err := grid.Decode(flat)
	if err != nil {
		return err
	}
	return u.Snapshots.Persist(name, g.Snapshot())
}

func (u *Service) RestoreSnapshot(name string) (string, error) {
	if u.Snapshots == nil {
		return "", errNotConfigured
	}
	s, err := u.Snapshots.Restore(name)
	if err != nil {
		return "", err
	}
	g := grid.New()
	g.Restore(s)
	return g.Encode(), nil
}

func (u *Service) SnapshotNames() ([]string, error) {
	if u.Snapshots == nil {
		return nil, errNotConfigured
	}
	return u.Snapshots.Names(), nil
}
