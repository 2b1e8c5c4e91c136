package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
)

// DLX is an Algorithm X / Dancing Links Searcher over the flat encoding.
// Exact-cover mapping: 324 columns (constraints), 729 rows ((pos, v) choices).
// Columns: 0..80   -> position occupied
//          81..161 -> row r has symbol v
//          162..242-> col c has symbol v
//          243..323-> box b has symbol v, b = (r/3)*3 + (c/3)
//
// It trades the plain engine's simplicity for much better behavior on sparse
// boards, and is selectable via the CLI's --engine flag.
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

const (
	dlxCols   = 4 * grid.Cells              // 324
	dlxRows   = grid.Cells * grid.Size      // 729
	colCell   = 0
	colRowNum = grid.Cells
	colColNum = 2 * grid.Cells
	colBoxNum = 3 * grid.Cells
)

// node/column structures (classic dancing links)
type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // 0..728 identifies the (pos, v) choice
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool // whether this constraint column is currently uncovered
}

type dlxMatrix struct {
	cols      [dlxCols]*dlxColumn
	rowHead   [dlxRows]*dlxNode
	chosen    [grid.Cells]*dlxNode
	chosenLen int
	nodes     int
	activeCnt int
}

func newDLXMatrix() *dlxMatrix {
	d := &dlxMatrix{}
	for i := 0; i < dlxCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = dlxCols

	for pos := 0; pos < grid.Cells; pos++ {
		for v := 1; v <= grid.Size; v++ {
			row := choiceIndex(pos, v)
			var first, prev *dlxNode
			for _, colID := range choiceColumns(pos, v) {
				col := d.cols[colID]
				n := &dlxNode{col: col, rowIdx: row}
				// vertical insert at the bottom of the column
				n.down = &col.dlxNode
				n.up = col.dlxNode.up
				col.dlxNode.up.down = n
				col.dlxNode.up = n
				col.size++
				// horizontal ring for the 4 nodes of the choice
				if first == nil {
					first = n
					n.left = n
					n.right = n
				} else {
					n.left = prev
					n.right = prev.right
					prev.right.left = n
					prev.right = n
				}
				prev = n
			}
			d.rowHead[row] = first
		}
	}
	return d
}

func choiceIndex(pos, v int) int { return pos*grid.Size + v - 1 }

func choiceColumns(pos, v int) [4]int {
	r, c := pos/grid.Size, pos%grid.Size
	box := (r/grid.BoxSize)*grid.BoxSize + c/grid.BoxSize
	return [4]int{
		colCell + pos,
		colRowNum + r*grid.Size + v - 1,
		colColNum + c*grid.Size + v - 1,
		colBoxNum + box*grid.Size + v - 1,
	}
}

func decodeChoice(row int) (pos, v int) { return row / grid.Size, row%grid.Size + 1 }

func (d *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if !c.active {
			continue
		}
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search enumerates exact covers; it stops once limit covers are found
// (limit <= 0 keeps going) and returns true when the caller should unwind.
func (d *dlxMatrix) search(ctx context.Context, k, limit int, found *int, emit func()) bool {
	if ctx.Err() != nil {
		return true
	}
	if d.activeCnt == 0 {
		d.chosenLen = k
		*found++
		if emit != nil {
			emit()
		}
		return limit > 0 && *found >= limit
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.chosen[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		stop := d.search(ctx, k+1, limit, found, emit)
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
		if stop {
			d.uncover(c)
			return true
		}
	}
	d.uncover(c)
	return false
}

// applyGivens covers the columns of every clue in the flat sequence.
func (d *dlxMatrix) applyGivens(flat string) error {
	for pos := 0; pos < grid.Cells; pos++ {
		v := int(flat[pos] - '0')
		if v == 0 {
			continue
		}
		head := d.rowHead[choiceIndex(pos, v)]
		if head == nil {
			return fmt.Errorf("no choice row for clue %d at %d", v, pos)
		}
		for j := head; ; j = j.right {
			if !j.col.active {
				return errors.New("contradictory givens")
			}
			d.cover(j.col)
			if j.right == head {
				break
			}
		}
	}
	return nil
}

// FirstSolution stops at the first exact cover and overlays it on the givens.
func (s *DLX) FirstSolution(ctx context.Context, flat string) (string, ports.Stats, error) {
	start := time.Now()
	if err := grid.ValidateFlat(flat); err != nil {
		return "", ports.Stats{}, err
	}
	d := newDLXMatrix()
	if err := d.applyGivens(flat); err != nil {
		return "", ports.Stats{Duration: time.Since(start)}, err
	}
	out := []byte(flat)
	found := 0
	d.search(ctx, 0, 1, &found, func() {
		for i := 0; i < d.chosenLen; i++ {
			pos, v := decodeChoice(d.chosen[i].rowIdx)
			out[pos] = byte('0' + v)
		}
	})
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return "", st, err
	}
	if found < 1 {
		return "", st, ErrNoSolution
	}
	return string(out), st, nil
}

// CountSolutions enumerates exact covers up to limit.
func (s *DLX) CountSolutions(ctx context.Context, flat string, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if err := grid.ValidateFlat(flat); err != nil {
		return 0, ports.Stats{}, err
	}
	d := newDLXMatrix()
	if err := d.applyGivens(flat); err != nil {
		return 0, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	d.search(ctx, 0, limit, &found, nil)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return found, st, err
	}
	return found, st, nil
}
