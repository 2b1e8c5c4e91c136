// Package gridio reads and writes the semicolon-separated CSV board format:
// 9 rows of 9 integer fields, row order matching the flat encoding.
package gridio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"svw.info/sudoku-logic/internal/grid"
)

// ReadCSV parses a board into the flat 81-digit encoding.
func ReadCSV(r io.Reader) (string, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = grid.Size
	cr.TrimLeadingSpace = true

	buf := make([]byte, 0, grid.Cells)
	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("row %d: %w", rows+1, err)
		}
		rows++
		if rows > grid.Size {
			return "", fmt.Errorf("expected %d rows, got more", grid.Size)
		}
		for i, field := range rec {
			n, err := strconv.Atoi(field)
			if err != nil || n < 0 || n > grid.Size {
				return "", fmt.Errorf("row %d field %d: invalid value %q", rows, i+1, field)
			}
			buf = append(buf, byte('0'+n))
		}
	}
	if rows != grid.Size {
		return "", fmt.Errorf("expected %d rows, got %d", grid.Size, rows)
	}
	flat := string(buf)
	if err := grid.ValidateFlat(flat); err != nil {
		return "", err
	}
	return flat, nil
}

// WriteCSV renders a flat sequence in the ';'-separated format.
func WriteCSV(w io.Writer, flat string) error {
	if err := grid.ValidateFlat(flat); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	rec := make([]string, grid.Size)
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			rec[c] = string(flat[r*grid.Size+c])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
