package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/generator"
	"svw.info/sudoku-logic/internal/gridio"
	"svw.info/sudoku-logic/internal/infrastructure/storage"
	"svw.info/sudoku-logic/internal/render"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		difficulty string
		seed       int64
		save       bool
		outCSV     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			gen := &generator.UniqueGenerator{Search: a.searcher(), MinClues: a.cfg.MinClues}
			p, stats, err := gen.Generate(cmd.Context(), seed, domain.ParseDifficulty(difficulty))
			if err != nil {
				return err
			}

			board, err := render.BoardFlat(p.Clues)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), board)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  seed=%d  clues=%d  %s\n",
				p.Difficulty, p.Seed, clueCount(p.Clues), stats.Duration)

			if save {
				if err := storage.NewFS(a.cfg.DataDir).Save(cmd.Context(), p); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", p.ID)
			}
			if outCSV != "" {
				f, err := os.Create(outCSV)
				if err != nil {
					return err
				}
				defer f.Close()
				return gridio.WriteCSV(f, p.Clues)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy, medium, hard or expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().BoolVar(&save, "save", false, "save the puzzle to the data directory")
	cmd.Flags().StringVar(&outCSV, "out", "", "write the clues to a CSV file")
	return cmd
}

func clueCount(flat string) int {
	n := 0
	for i := 0; i < len(flat); i++ {
		if flat[i] != '0' {
			n++
		}
	}
	return n
}
