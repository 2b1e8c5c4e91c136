package grid

import (
	"errors"
	"fmt"

	"svw.info/sudoku-logic/internal/domain"
)

var (
	ErrBadLength = errors.New("flat sequence must be 81 characters")
	ErrBadSymbol = errors.New("flat sequence may only contain '0'..'9'")
)

// ValidateFlat checks the flat 81-digit encoding without touching any grid:
// exact length, characters '0'..'9' only.
func ValidateFlat(s string) error {
	if len(s) != Cells {
		return fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q at index %d", ErrBadSymbol, s[i], i)
		}
	}
	return nil
}

// Decode loads a flat sequence into a fresh grid, committing every given so
// that exclusions are propagated as if the clues had been placed one by one.
// The input is validated before any cell is written.
func Decode(s string) (*Grid, error) {
	if err := ValidateFlat(s); err != nil {
		return nil, err
	}
	g := New()
	for idx := 0; idx < Cells; idx++ {
		v := s[idx] - '0'
		if v == 0 {
			continue
		}
		r, c := Coord(idx)
		if err := g.Place(domain.Symbol(v), r, c); err != nil {
			return nil, fmt.Errorf("decode cell (%d,%d): %w", r, c, err)
		}
	}
	return g, nil
}

// Encode renders the grid as the flat 81-digit sequence, '0' for vacancies.
func (g *Grid) Encode() string {
	buf := make([]byte, Cells)
	for idx := range g.cells {
		buf[idx] = byte('0' + g.cells[idx].Value())
	}
	return string(buf)
}
