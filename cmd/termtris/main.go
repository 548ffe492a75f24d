// termtris is a falling-block game for the terminal.
//
// Usage:
//
//	termtris play [game]       - Play a game (default: termtris)
//	termtris list              - List available game variants
//	termtris serve             - Start SSH server for remote play
//	termtris trace [game]      - Run headless and log every drawn cell
//	termtris sessions <game>   - Show recent sessions for a game
//	termtris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default from config: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.termtris/sessions.db)
//	--config <path>  - Load configuration from a YAML file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/games/termtris"
	"github.com/vovakirdan/termtris/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "Termtris - falling blocks in your terminal",
	Long: `Termtris drops the seven classic shapes onto a bordered board in your
terminal. Pieces fall on a frame counter; move and rotate them until they land.

Available commands:
  play      - Play a game
  list      - Show all game variants
  serve     - Start SSH server for remote play
  trace     - Run without a terminal and log what would be drawn
  sessions  - View session history
  config    - Print the effective configuration

Examples:
  termtris play
  termtris play termtris_debug
  termtris play --backend tcell --sound
  termtris serve --ssh :2222
  termtris trace --keys "aaws" --ticks 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (overrides timing.fps)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termtris/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration, applies flag overrides, and hands
// it to the game package. Invalid settings end the process.
func loadConfig(cmd *cobra.Command) config.TermtrisConfig {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cmd.Flags().Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	termtris.SetConfig(cfg)
	return cfg
}

// seed returns the --seed flag, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// requireGame exits unless id is a registered game.
func requireGame(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'termtris list' to see available games.")
		os.Exit(1)
	}
}
