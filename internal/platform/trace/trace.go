// Package trace runs a game without a terminal and logs every cell it would
// draw.
package trace

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/tetris"
)

// screenLimit is large enough that no valid board is reported as too small.
const screenLimit = 1 << 12

// Sink logs non-empty cells and refreshes at debug level.
type Sink struct {
	logger    *log.Logger
	points    int
	refreshes int
}

// NewSink creates a sink writing to logger.
func NewSink(logger *log.Logger) *Sink {
	return &Sink{logger: logger}
}

// SetPoint logs one cell. Empty cells are skipped.
func (s *Sink) SetPoint(x, y int, sym tetris.Symbol) {
	if sym == tetris.Empty {
		return
	}
	s.points++
	s.logger.Debug("point", "x", x, "y", y, "symbol", string(sym.Rune()))
}

// Refresh logs the end of a frame.
func (s *Sink) Refresh() {
	s.refreshes++
	s.logger.Debug("refresh")
}

// Board is a game that exposes its field and per-frame changes.
type Board interface {
	registry.Game
	Field() *tetris.Field
	LastDiff() tetris.Diff
	Err() error
}

// Options configures Run.
type Options struct {
	// Keys are consumed one per tick. Characters bound to no action are
	// idle ticks.
	Keys   string
	Ticks  int
	Seed   int64
	Logger *log.Logger
}

// Result summarizes a traced run.
type Result struct {
	State     core.GameState
	Points    int
	Refreshes int
}

// Run resets game, draws the empty field, and then steps it Ticks times,
// flushing each frame's changes to the log. A quit key ends the run early.
func Run(game Board, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  screenLimit,
		ScreenH:  screenLimit,
		TickRate: 60,
		Seed:     opts.Seed,
	})
	if err := game.Err(); err != nil {
		return Result{}, err
	}

	sink := NewSink(logger)
	fd := game.Field()
	fd.Draw(sink)
	renderer := tetris.NewDiffRenderer(fd.Columns(), fd.Rows())

	keys := []rune(opts.Keys)
	state := game.State()
	for i := 0; i < opts.Ticks; i++ {
		in := core.NewInputFrame()
		if i < len(keys) {
			a := core.ActionForKey(string(keys[i]))
			if a == core.ActionQuit {
				logger.Debug("quit", "tick", state.Tick)
				break
			}
			if a != core.ActionNone {
				in.Set(a)
			}
		}

		state = game.Step(in).State
		renderer.Queue(game.LastDiff())
		renderer.Flush(sink)
	}

	return Result{State: state, Points: sink.points, Refreshes: sink.refreshes}, nil
}
