// Package termtris adapts the tetris field to the registry.Game interface:
// gravity on a frame counter, one movement per tick, and a bordered board.
package termtris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/tetris"
)

// Mode selects the gravity schedule.
type Mode string

const (
	ModeNormal Mode = "normal"
	// ModeDebug drops the piece on every frame.
	ModeDebug Mode = "debug"
)

const hudHeight = 1

// Package-level configuration shared by every instance the registry creates.
var settings = config.DefaultTermtrisConfig()

// SetConfig sets the board and timing used by games created afterwards.
func SetConfig(cfg config.TermtrisConfig) {
	settings = cfg
}

// Game implements termtris on top of a tetris.Field.
type Game struct {
	mode Mode
	cfg  config.TermtrisConfig
	rng  *rand.Rand
	seed int64

	field           *tetris.Field
	fallSpeed       int
	framesUntilDrop int
	lastDiff        tetris.Diff
	err             error

	tick   uint64
	pieces int
	locked bool
	paused bool
	// overlap is set when the latest piece spawned onto settled cells.
	overlap bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the configured fall speed.
func New() *Game {
	return &Game{mode: ModeNormal, cfg: settings}
}

// NewDebug creates a game whose piece drops every frame.
func NewDebug() *Game {
	return &Game{mode: ModeDebug, cfg: settings}
}

func init() {
	registry.Register("termtris", func() registry.Game {
		return New()
	})
	registry.Register("termtris_debug", func() registry.Game {
		return NewDebug()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDebug {
		return "termtris_debug"
	}
	return "termtris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDebug {
		return "Termtris (Debug)"
	}
	return "Termtris"
}

// Reset builds an empty board. Invalid board settings leave the game
// stopped with Err set.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.pieces = 0
	g.locked = false
	g.paused = false
	g.overlap = false
	g.lastDiff = tetris.Diff{}
	// Zero spawns on the first frame.
	g.framesUntilDrop = 0

	g.fallSpeed = g.cfg.Timing.FallSpeed
	if g.mode == ModeDebug {
		g.fallSpeed = 0
	}

	board := g.cfg.Board
	g.field, g.err = tetris.New(board.Columns, board.Rows,
		tetris.WithGap(board.Gap),
		tetris.WithRand(g.rng),
	)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !core.NewRect(0, hudHeight, w, h-hudHeight).Fits(g.boardWidth(), g.boardHeight())
}

// boardWidth is the field plus its border.
func (g *Game) boardWidth() int { return g.cfg.Board.Columns + 2 }

func (g *Game) boardHeight() int { return g.cfg.Board.Rows + 2 }

// Step advances the game by one frame: gravity first, then at most one
// movement, then a commit of the piece into the grid.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.locked = false
	g.lastDiff = tetris.Diff{}

	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.applyGravity()
	g.applyInput(input)
	g.lastDiff = g.field.Commit()

	return core.StepResult{State: g.State()}
}

func (g *Game) applyGravity() {
	if g.framesUntilDrop > 0 {
		g.framesUntilDrop--
		return
	}
	g.framesUntilDrop = g.fallSpeed
	if g.field.CanDrop() {
		g.field.Drop()
		return
	}
	if g.field.Active() != nil {
		g.locked = true
	}
	g.field.SpawnPiece()
	g.pieces++
	g.overlap = g.field.Overlaps()
}

// applyInput performs the first movement found in the frame. Remaining
// actions are ignored, as a terminal delivers one key per frame.
func (g *Game) applyInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		g.field.MoveLeft()
	case input.Has(core.ActionRight):
		g.field.MoveRight()
	case input.Has(core.ActionRotateCW):
		g.field.RotateClockwise()
	case input.Has(core.ActionRotateCCW):
		g.field.RotateAnticlockwise()
	case input.Has(core.ActionHardDrop):
		g.field.HardDrop()
	}
}

// Field exposes the board for platform renderers.
func (g *Game) Field() *tetris.Field {
	return g.field
}

// LastDiff returns the cells changed by the most recent Step.
func (g *Game) LastDiff() tetris.Diff {
	return g.lastDiff
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Seed returns the seed the current board was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, g.err.Error(), core.ColorRed)
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need %dx%d", g.boardWidth(), g.boardHeight()+hudHeight), core.ColorDefault)
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	board := area.CenterIn(g.boardWidth(), g.boardHeight())
	sink := &screenSink{
		dst:    dst,
		x0:     board.X + 1,
		y0:     board.Y + 1,
		active: g.activeCells(),
	}
	g.field.DrawBorder(sink)
	g.field.Draw(sink)

	if g.paused {
		dst.DrawTextCentered(board.Y+board.H/2, " Paused ", core.ColorRed)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Pieces: %d  Board: %dx%d", g.Title(), g.pieces,
		g.cfg.Board.Columns, g.cfg.Board.Rows)
	dst.DrawTextColored(0, 0, hud, core.ColorYellow)
}

func (g *Game) activeCells() tetris.CoordSet {
	if pc := g.field.Active(); pc != nil {
		return pc.Positions()
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:   g.tick,
		Pieces: g.pieces,
		Locked: g.locked,
		Paused: g.paused,
	}
}

// screenSink draws field cells into a core.Screen at an offset.
type screenSink struct {
	dst    *core.Screen
	x0, y0 int
	active tetris.CoordSet
}

func (s *screenSink) SetPoint(x, y int, sym tetris.Symbol) {
	color := core.ColorDefault
	switch sym {
	case tetris.Border:
		color = core.ColorGray
	case tetris.Filled:
		color = core.ColorBlue
		if s.active.Has(tetris.C(x, y)) {
			color = core.ColorCyan
		}
	}
	s.dst.SetColored(s.x0+x, s.y0+y, sym.Rune(), color)
}

// Refresh is a no-op; the platform presents the whole screen.
func (s *screenSink) Refresh() {}
