package domain

// Symbol is a digit placed on the board. Zero means "no symbol".
type Symbol uint8

// Symbols run 1..9 on the standard board.
const (
	MinSymbol Symbol = 1
	MaxSymbol Symbol = 9
)

// SymbolSet is a bitmask over the symbols 1..9.
type SymbolSet uint16

// FullSet contains every symbol 1..9.
const FullSet SymbolSet = 0x3FE // bits 1..9

func (s SymbolSet) Has(v Symbol) bool { return s&(1<<v) != 0 }

func (s SymbolSet) With(v Symbol) SymbolSet { return s | 1<<v }

func (s SymbolSet) Without(v Symbol) SymbolSet { return s &^ (1 << v) }

// Size returns the number of symbols in the set.
func (s SymbolSet) Size() int {
	n := 0
	for v := MinSymbol; v <= MaxSymbol; v++ {
		if s.Has(v) {
			n++
		}
	}
	return n
}

// Symbols lists the members in ascending order.
func (s SymbolSet) Symbols() []Symbol {
	out := make([]Symbol, 0, 9)
	for v := MinSymbol; v <= MaxSymbol; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Single returns the sole member of a one-element set.
func (s SymbolSet) Single() (Symbol, bool) {
	if s.Size() != 1 {
		return 0, false
	}
	return s.Symbols()[0], true
}

// Cell is one position on the board: either occupied by a value, or vacant
// with a set of excluded symbols (the cell's influencers). An occupied cell
// never tracks exclusions, which keeps the two states from mixing.
type Cell struct {
	value    Symbol
	excluded SymbolSet
}

// Vacant returns an empty cell with no exclusions.
func Vacant() Cell { return Cell{} }

// OccupiedBy returns a cell holding v.
func OccupiedBy(v Symbol) Cell { return Cell{value: v} }

func (c Cell) Occupied() bool { return c.value != 0 }

// Value returns the occupant, or 0 for a vacant cell.
func (c Cell) Value() Symbol { return c.value }

// Excluded returns the influencer set of a vacant cell; empty when occupied.
func (c Cell) Excluded() SymbolSet {
	if c.value != 0 {
		return 0
	}
	return c.excluded
}

// Candidates returns 1..9 minus the exclusions; empty when occupied.
func (c Cell) Candidates() SymbolSet {
	if c.value != 0 {
		return 0
	}
	return FullSet &^ c.excluded
}

// Exclude marks v invalid for a vacant cell. Reports whether the exclusion
// was new; occupied cells and repeated exclusions are no-ops.
func (c *Cell) Exclude(v Symbol) bool {
	if c.value != 0 || c.excluded.Has(v) {
		return false
	}
	c.excluded = c.excluded.With(v)
	return true
}

// Occupy fills the cell with v and drops its exclusions.
func (c *Cell) Occupy(v Symbol) {
	c.value = v
	c.excluded = 0
}

// Clear reverts the cell to vacant with the given exclusions. Used by the
// commit rollback path.
func (c *Cell) Clear(excluded SymbolSet) {
	c.value = 0
	c.excluded = excluded
}
