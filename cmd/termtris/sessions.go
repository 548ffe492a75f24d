package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagSessionsLimit int
	flagSessionsClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <game>",
	Short: "Show recent sessions for a game",
	Long: `Display the most recent sessions and totals for the specified game.

Examples:
  termtris sessions termtris
  termtris sessions termtris_debug --limit 25
  termtris sessions termtris --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagSessionsClear, "clear", false, "Delete the game's session history")
}

func runSessions(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSessionsClear {
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			return
		}
		fmt.Printf("Cleared session history for %s.\n", title)
		return
	}

	sessions, err := store.RecentSessions(gameID, flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	fmt.Printf("Sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'termtris play %s' to record one.\n", gameID)
		return
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "Date", "Pieces", "Ticks", "Time", "Seed")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "----", "------", "-----", "----", "----")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-6d  %-8d  %-8s  %d\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Pieces, s.Ticks, s.Duration, s.Seed)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Sessions: %d  Pieces: %d  Most pieces: %d  Time played: %s\n",
		stats.Sessions, stats.TotalPieces, stats.MostPieces, stats.TotalTime)
}
