package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-logic/internal/config"
	"svw.info/sudoku-logic/internal/ports"
	"svw.info/sudoku-logic/internal/solver"
)

const defaultConfigPath = "sudoku-logic.yaml"

type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		cfgPath  string
		logLevel string
		engine   string
		dataDir  string
		cheat    bool
	)

	root := &cobra.Command{
		Use:           "sudoku-logic",
		Short:         "Deductive and exhaustive 9x9 constraint-grid toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("engine") {
				cfg.Engine = engine
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("cheat") {
				cfg.Cheat = cheat
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.LogLevel)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", defaultConfigPath, "YAML config file")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&engine, "engine", "backtrack", "search engine: backtrack or dlx")
	pf.StringVar(&dataDir, "data-dir", "./puzzles", "puzzle store directory")
	pf.BoolVar(&cheat, "cheat", false, "enable the oracle strategy")

	root.AddCommand(newServeCmd(a), newSolveCmd(a), newGenerateCmd(a))
	return root
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

// searcher picks the configured exhaustive engine.
func (a *app) searcher() ports.Searcher {
	if a.cfg.Engine == "dlx" {
		return solver.NewDLX()
	}
	return solver.NewBacktracking()
}
