// Package solver contains the deduction orchestrator and the exhaustive
// search engines used as its fallback oracle and as the generator's
// solution-counting backend.
package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
)

// ErrNoSolution is the normal negative result of an exhausted search.
var ErrNoSolution = errors.New("no solution")

// Backtracking is a recursive Searcher over the flat 81-digit encoding. It
// mutates a single byte buffer in place and backtracks on return instead of
// rebuilding the sequence per call.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// peers reports whether positions i and j share a row, column, or box.
func peers(i, j int) bool {
	if i/grid.Size == j/grid.Size || i%grid.Size == j%grid.Size {
		return true
	}
	return (i/grid.Size)/grid.BoxSize == (j/grid.Size)/grid.BoxSize &&
		(i%grid.Size)/grid.BoxSize == (j%grid.Size)/grid.BoxSize
}

// allowed reports whether digit v can sit at pos without duplicating a peer.
func allowed(buf []byte, pos int, v byte) bool {
	for j := 0; j < grid.Cells; j++ {
		if j != pos && buf[j] == v && peers(pos, j) {
			return false
		}
	}
	return true
}

func firstHole(buf []byte) int {
	for i := range buf {
		if buf[i] == '0' {
			return i
		}
	}
	return -1
}

// FirstSolution stops at the first complete sequence reachable from flat.
func (s *Backtracking) FirstSolution(ctx context.Context, flat string) (string, ports.Stats, error) {
	start := time.Now()
	if err := grid.ValidateFlat(flat); err != nil {
		return "", ports.Stats{}, err
	}
	buf := []byte(flat)
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		pos := firstHole(buf)
		if pos < 0 {
			return true
		}
		for v := byte('1'); v <= '9'; v++ {
			nodes++
			if allowed(buf, pos, v) {
				buf[pos] = v
				if dfs() {
					return true
				}
				buf[pos] = '0'
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return "", st, err
		}
		return "", st, ErrNoSolution
	}
	return string(buf), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// CountSolutions enumerates completions of flat, stopping early once limit
// is reached (limit <= 0 enumerates everything).
func (s *Backtracking) CountSolutions(ctx context.Context, flat string, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if err := grid.ValidateFlat(flat); err != nil {
		return 0, ports.Stats{}, err
	}
	buf := []byte(flat)
	nodes := 0
	count := 0
	var dfs func() bool // true = stop enumerating
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		pos := firstHole(buf)
		if pos < 0 {
			count++
			return limit > 0 && count >= limit
		}
		for v := byte('1'); v <= '9'; v++ {
			nodes++
			if allowed(buf, pos, v) {
				buf[pos] = v
				if dfs() {
					buf[pos] = '0'
					return true
				}
				buf[pos] = '0'
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
