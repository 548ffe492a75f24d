package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/games/termtris"
	"github.com/vovakirdan/termtris/internal/platform/trace"
	"github.com/vovakirdan/termtris/internal/registry"
)

var (
	flagTraceKeys  string
	flagTraceTicks int
)

var traceCmd = &cobra.Command{
	Use:   "trace [game]",
	Short: "Run a game headless and log every drawn cell",
	Long: `Run a game without a terminal. Every non-empty cell the game draws and
every frame refresh is logged to stdout.

--keys is consumed one character per tick using the normal key bindings
(a, d, w, z, s, space, p, r). Any other character is an idle tick and q
stops the run. Combine with --seed for a reproducible trace.

Examples:
  termtris trace --ticks 10
  termtris trace termtris_debug --keys "aaw.s" --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagTraceKeys, "keys", "", "Input, one key per tick")
	traceCmd.Flags().IntVar(&flagTraceTicks, "ticks", 60, "Number of ticks to run")
}

func runTrace(cmd *cobra.Command, args []string) {
	gameID := "termtris_debug"
	if len(args) > 0 {
		gameID = args[0]
	}
	requireGame(gameID)
	loadConfig(cmd)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	board, ok := game.(trace.Board)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q cannot be traced\n", gameID)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		Level:  log.DebugLevel,
		Prefix: "trace",
	})

	res, err := trace.Run(board, trace.Options{
		Keys:   flagTraceKeys,
		Ticks:  flagTraceTicks,
		Seed:   seed(),
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("done",
		"ticks", res.State.Tick,
		"pieces", res.State.Pieces,
		"points", res.Points,
		"refreshes", res.Refreshes,
	)
	if g, ok := game.(*termtris.Game); ok {
		snap := g.Snapshot()
		logger.Info("final",
			"state", snap.State,
			"filled", snap.Filled,
			"spawned_overlap", snap.SpawnedOverlap,
		)
		if snap.HasActive {
			logger.Info("active", "shape", snap.Active, "cells", snap.Cells)
		}
	}
}
