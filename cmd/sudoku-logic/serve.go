package main

import (
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-logic/internal/adapters/http"
	"svw.info/sudoku-logic/internal/generator"
	"svw.info/sudoku-logic/internal/infrastructure/storage"
	"svw.info/sudoku-logic/internal/solver"
	"svw.info/sudoku-logic/internal/usecase"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Addr
			}
			search := a.searcher()
			svc := usecase.NewService(
				solver.NewOrchestrator(search, a.cfg.Cheat, a.logger),
				search,
				&generator.UniqueGenerator{Search: search, MinClues: a.cfg.MinClues},
				storage.NewFS(a.cfg.DataDir),
				storage.NewMemory(),
			)
			a.logger.Info("listening", "addr", addr, "engine", a.cfg.Engine)
			return httpadapter.NewHandler(svc, a.logger).Router().Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
