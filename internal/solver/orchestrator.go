package solver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/ports"
	"svw.info/sudoku-logic/internal/strategy"
)

// Orchestrator drives the deduction loop: scan all cells row-major, ask the
// value-inference chain for a placeable symbol, commit, then re-run every
// eliminator. A full pass without a commit terminates in Stuck.
type Orchestrator struct {
	search ports.Searcher
	cheat  bool
	logger *slog.Logger

	// Values and Eliminators build the strategy sets for a freshly loaded
	// grid. Overridable for tests and custom chains; nil picks the defaults.
	Values      func(g *grid.Grid) []strategy.ValueStrategy
	Eliminators func(g *grid.Grid) []strategy.Eliminator
}

// NewOrchestrator wires a deduction solver. search is consulted only when
// cheating is enabled, to precompute the oracle solution.
func NewOrchestrator(search ports.Searcher, cheat bool, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{search: search, cheat: cheat, logger: logger}
}

// Deduce loads the flat sequence and runs strategies until the grid is
// solved or no strategy makes progress.
func (o *Orchestrator) Deduce(ctx context.Context, flat string) (*ports.Deduction, ports.Stats, error) {
	start := time.Now()
	g, err := grid.Decode(flat)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if o.cheat {
		if err := o.attachOracle(ctx, g, flat); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
	}

	values := o.valueChain(g)
	elims := o.eliminatorChain(g)
	steps := 0

	for !g.Complete() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: steps, Duration: time.Since(start)}, err
		}
		commits := 0
		for r := 1; r <= grid.Size; r++ {
			for c := 1; c <= grid.Size; c++ {
				if g.Cell(r, c).Occupied() {
					continue
				}
				v, name := o.infer(values, r, c)
				if v == 0 {
					continue
				}
				if err := g.Place(v, r, c); err != nil {
					// A conflicting decision means an unsound strategy or a
					// contradictory board. The write is already rolled back;
					// record and move on.
					var conflict *grid.ConflictError
					if errors.As(err, &conflict) {
						o.logger.Error("conflict rolled back",
							"strategy", name, "value", int(v), "row", r, "col", c,
							"dupRow", conflict.At.Row, "dupCol", conflict.At.Col)
						continue
					}
					return nil, ports.Stats{Nodes: steps, Duration: time.Since(start)}, err
				}
				o.logger.Debug("placed", "strategy", name, "value", int(v), "row", r, "col", c)
				steps++
				commits++
				for _, e := range elims {
					e.Apply()
				}
			}
		}
		if commits == 0 {
			o.logger.Info("stuck", "steps", steps, "vacancies", len(g.Vacancies()))
			return stuck(g, steps), ports.Stats{Nodes: steps, Duration: time.Since(start)}, nil
		}
	}

	o.logger.Info("solved", "steps", steps)
	return &ports.Deduction{Status: ports.Solved, Grid: g, Steps: steps},
		ports.Stats{Nodes: steps, Duration: time.Since(start)}, nil
}

func (o *Orchestrator) attachOracle(ctx context.Context, g *grid.Grid, flat string) error {
	sol, st, err := o.search.FirstSolution(ctx, flat)
	if err != nil {
		return err
	}
	o.logger.Debug("oracle attached", "nodes", st.Nodes, "dur", st.Duration)
	return g.AttachSolution(sol)
}

func (o *Orchestrator) valueChain(g *grid.Grid) []strategy.ValueStrategy {
	if o.Values != nil {
		return o.Values(g)
	}
	return strategy.DefaultValues(g, o.cheat)
}

func (o *Orchestrator) eliminatorChain(g *grid.Grid) []strategy.Eliminator {
	if o.Eliminators != nil {
		return o.Eliminators(g)
	}
	return strategy.DefaultEliminators(g)
}

// infer queries the value chain in installed order; first non-zero wins.
func (o *Orchestrator) infer(values []strategy.ValueStrategy, r, c int) (domain.Symbol, string) {
	for _, vs := range values {
		if v := vs.Apply(r, c); v != 0 {
			return v, vs.Name()
		}
	}
	return 0, ""
}

func stuck(g *grid.Grid, steps int) *ports.Deduction {
	vac := g.Vacancies()
	cands := make(map[domain.CellCoord]domain.SymbolSet, len(vac))
	for _, cc := range vac {
		cands[cc] = g.Candidates(cc.Row, cc.Col)
	}
	return &ports.Deduction{
		Status:     ports.Stuck,
		Grid:       g,
		Steps:      steps,
		Vacancies:  vac,
		Candidates: cands,
	}
}
