// Package generator constructs puzzles with a unique solution: a randomized
// full-grid fill followed by clue carving that re-verifies uniqueness through
// the exhaustive search engine after every removal.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
)

// retryBudget bounds consecutive restores during carving; the result is a
// sparse puzzle, not a proof of minimal clue count.
const retryBudget = 4

// UniqueGenerator creates puzzles whose uniqueness is certified by a Searcher.
// MinClues, when positive, overrides the difficulty's clue floor.
type UniqueGenerator struct {
	Search   ports.Searcher
	MinClues int
}

func NewUniqueGenerator(s ports.Searcher) *UniqueGenerator {
	return &UniqueGenerator{Search: s}
}

// Generate builds a puzzle from seed with at least difficulty.ClueFloor()
// givens and exactly one solution.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	full := emptyFlat()
	if !fillRandom(ctx, rng, full, 0) {
		// an empty board always fills unless the context fired
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Duration: time.Since(start)}, errors.New("could not construct a full grid")
	}
	solution := string(full)

	// 2) carve clues while uniqueness holds
	puz := []byte(solution)
	positions := rng.Perm(grid.Cells)
	floor := diff.ClueFloor()
	if g.MinClues > 0 {
		floor = g.MinClues
	}
	nodes := 0
	misses := 0

	for _, pos := range positions {
		if ctx.Err() != nil {
			break
		}
		if misses >= retryBudget || clues(puz) <= floor {
			break
		}
		if puz[pos] == '0' {
			continue
		}
		old := puz[pos]
		puz[pos] = '0'
		// count on a copy so a failed branch cannot touch our buffer
		n, st, err := g.Search.CountSolutions(ctx, string(puz), 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			puz[pos] = old
			misses++
			continue
		}
		misses = 0
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Clues:      string(puz),
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func emptyFlat() []byte {
	buf := make([]byte, grid.Cells)
	for i := range buf {
		buf[i] = '0'
	}
	return buf
}

func clues(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b != '0' {
			n++
		}
	}
	return n
}

// fillRandom completes the buffer from pos onward, trying symbols in a fresh
// random order per cell and backtracking on dead ends.
func fillRandom(ctx context.Context, rng *rand.Rand, buf []byte, pos int) bool {
	if ctx.Err() != nil {
		return false
	}
	if pos == grid.Cells {
		return true
	}
	if buf[pos] != '0' {
		return fillRandom(ctx, rng, buf, pos+1)
	}
	order := [grid.Size]byte{'1', '2', '3', '4', '5', '6', '7', '8', '9'}
	rng.Shuffle(grid.Size, func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, v := range order {
		if legal(buf, pos, v) {
			buf[pos] = v
			if fillRandom(ctx, rng, buf, pos+1) {
				return true
			}
			buf[pos] = '0'
		}
	}
	return false
}

// legal mirrors the row/col/box duplicate checks locally for the fill.
func legal(buf []byte, pos int, v byte) bool {
	r, c := pos/grid.Size, pos%grid.Size
	for i := 0; i < grid.Size; i++ {
		if buf[r*grid.Size+i] == v || buf[i*grid.Size+c] == v {
			return false
		}
	}
	br, bc := (r/grid.BoxSize)*grid.BoxSize, (c/grid.BoxSize)*grid.BoxSize
	for dr := 0; dr < grid.BoxSize; dr++ {
		for dc := 0; dc < grid.BoxSize; dc++ {
			if buf[(br+dr)*grid.Size+bc+dc] == v {
				return false
			}
		}
	}
	return true
}
