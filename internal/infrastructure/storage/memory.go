package storage

import (
	"fmt"
	"sort"

	"svw.info/sudoku-logic/internal/grid"
)

// Memory is a named snapshot store for in-progress grids. Snapshots are
// plain values, so storing and restoring copy the full cell state; callers
// cannot alias the stored data. The zero value is not usable; construct
// with NewMemory and inject it where needed.
type Memory struct {
	states map[string]grid.Snapshot
}

func NewMemory() *Memory {
	return &Memory{states: make(map[string]grid.Snapshot)}
}

func (m *Memory) Persist(name string, s grid.Snapshot) error {
	if name == "" {
		return fmt.Errorf("snapshot name must not be empty")
	}
	m.states[name] = s
	return nil
}

func (m *Memory) Restore(name string) (grid.Snapshot, error) {
	s, ok := m.states[name]
	if !ok {
		return grid.Snapshot{}, fmt.Errorf("no snapshot named %q", name)
	}
	return s, nil
}

func (m *Memory) Names() []string {
	out := make([]string, 0, len(m.states))
	for name := range m.states {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
