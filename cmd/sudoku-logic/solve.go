package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-logic/internal/gridio"
	"svw.info/sudoku-logic/internal/ports"
	"svw.info/sudoku-logic/internal/render"
	"svw.info/sudoku-logic/internal/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		csvPath string
		search  bool
		outCSV  string
	)

	cmd := &cobra.Command{
		Use:   "solve [sequence]",
		Short: "Solve a puzzle given as an 81-digit sequence or a CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flat, err := readPuzzle(args, csvPath)
			if err != nil {
				return err
			}

			engine := a.searcher()
			if search {
				sol, stats, err := engine.FirstSolution(cmd.Context(), flat)
				if err != nil {
					return err
				}
				return emit(cmd, sol, outCSV,
					fmt.Sprintf("searched %d nodes in %s", stats.Nodes, stats.Duration))
			}

			orc := solver.NewOrchestrator(engine, a.cfg.Cheat, a.logger)
			ded, stats, err := orc.Deduce(cmd.Context(), flat)
			if err != nil {
				return err
			}
			if ded.Status == ports.Stuck {
				fmt.Fprint(cmd.OutOrStdout(), render.Board(ded.Grid))
				fmt.Fprint(cmd.OutOrStdout(), render.Candidates(ded))
				fmt.Fprintln(cmd.OutOrStdout(), render.Summary(ded, stats))
				return errors.New("deduction stuck; retry with --search")
			}
			return emit(cmd, ded.Grid.Encode(), outCSV, render.Summary(ded, stats))
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "read the puzzle from a ';'-separated CSV file")
	cmd.Flags().StringVar(&outCSV, "out", "", "write the solution to a CSV file")
	cmd.Flags().BoolVar(&search, "search", false, "skip deduction and run the exhaustive engine")
	return cmd
}

func readPuzzle(args []string, csvPath string) (string, error) {
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return gridio.ReadCSV(f)
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", errors.New("pass an 81-digit sequence or --csv FILE")
}

func emit(cmd *cobra.Command, flat, outCSV, summary string) error {
	board, err := render.BoardFlat(flat)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), board)
	fmt.Fprintln(cmd.OutOrStdout(), summary)
	if outCSV == "" {
		return nil
	}
	f, err := os.Create(outCSV)
	if err != nil {
		return err
	}
	defer f.Close()
	return gridio.WriteCSV(f, flat)
}
