package termtris

import "github.com/vovakirdan/termtris/internal/tetris"

// StateType names what the game is doing.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
	StateInvalid     StateType = "invalid_config"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick            uint64
	Mode            string
	Seed            int64
	Pieces          int
	Filled          int
	HasActive       bool
	Active          tetris.ShapeKind // Meaningful only when HasActive
	Cells           []tetris.Coord   // Active piece, row-major
	SpawnedOverlap  bool             // Latest piece spawned onto settled cells
	FramesUntilDrop int
	State           StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateInvalid
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:            g.tick,
		Mode:            string(g.mode),
		Seed:            g.seed,
		Pieces:          g.pieces,
		FramesUntilDrop: g.framesUntilDrop,
		SpawnedOverlap:  g.overlap,
		State:           state,
	}
	if g.field == nil {
		return snap
	}
	snap.Filled = g.field.FilledCount()
	if pc := g.field.Active(); pc != nil {
		snap.HasActive = true
		snap.Active = pc.Kind()
		snap.Cells = pc.Positions().Sorted()
	}
	return snap
}
