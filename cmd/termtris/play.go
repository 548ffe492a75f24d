package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/core"
	platformterm "github.com/vovakirdan/termtris/internal/platform/term"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game variant (default: termtris).

Controls:
  Left/A      - Move left
  Right/D     - Move right
  Up/W        - Rotate clockwise
  Z           - Rotate anticlockwise
  Down/S/Space - Hard drop
  P           - Pause
  R           - Restart
  Q/Esc       - Quit

Backends:
  tui    - Bubble Tea, redraws the whole frame with a key help line
  tcell  - Raw terminal, redraws only the cells that changed

Examples:
  termtris play
  termtris play termtris_debug
  termtris play --backend tcell --sound
  termtris play --seed 42 --config ./wide.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Renderer: tui or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Click when a piece locks (tcell backend)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "termtris"
	if len(args) > 0 {
		gameID = args[0]
	}
	requireGame(gameID)
	cfg := loadConfig(cmd)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	switch flagBackend {
	case "tui":
		runErr = playTUI(game, store, cfg.Timing.FPS)
	case "tcell":
		runErr = playTcell(game, store, cfg.Timing.FPS)
	default:
		runErr = fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func playTUI(game registry.Game, store *storage.Store, fps int) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, store, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     seed(),
	})
}

func playTcell(game registry.Game, store *storage.Store, fps int) error {
	board, ok := game.(platformterm.Board)
	if !ok {
		return fmt.Errorf("game %q cannot run on the tcell backend", game.ID())
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "termtris",
	})

	opts := platformterm.Options{
		FPS:    fps,
		Seed:   seed(),
		Logger: logger,
		Store:  store,
	}
	if flagSound {
		opts.Clicker = platformterm.NewClicker()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := platformterm.Play(ctx, board, opts); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
