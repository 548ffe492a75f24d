package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/storage"
	"github.com/vovakirdan/termtris/internal/tetris"
)

// Board is a game that exposes its field and per-frame changes.
type Board interface {
	registry.Game
	registry.Resizer
	Field() *tetris.Field
	LastDiff() tetris.Diff
}

// seeded is implemented by games that reseed themselves on restart.
type seeded interface {
	Seed() int64
}

// Options configures a Driver.
type Options struct {
	FPS     int
	Seed    int64
	Clicker *Clicker       // nil for no sound
	Logger  *log.Logger    // nil discards warnings
	Store   *storage.Store // nil keeps no session history
}

// Driver runs a Board at a fixed frame rate on a tcell screen.
type Driver struct {
	screen   tcell.Screen
	game     Board
	opts     Options
	renderer *tetris.DiffRenderer
	sink     *Sink

	state      core.GameState
	prevActive []tetris.Coord
	tooSmall   bool
	started    time.Time
}

// NewDriver creates a driver. The game is reset on Run.
func NewDriver(screen tcell.Screen, game Board, opts Options) *Driver {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	return &Driver{
		screen: screen,
		game:   game,
		opts:   opts,
	}
}

// Run plays until the quit key or ctx is done and returns the final state.
func (d *Driver) Run(ctx context.Context) (core.GameState, error) {
	d.start()

	input := NewInput(d.screen)
	defer input.Close()

	ticker := time.NewTicker(time.Second / time.Duration(d.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.saveSession()
			return d.state, ctx.Err()
		case <-ticker.C:
			if quit := d.frame(input.Read()); quit {
				return d.state, nil
			}
		}
	}
}

// start resets the game to the current screen size and draws everything.
func (d *Driver) start() {
	w, h := d.screen.Size()
	d.game.Reset(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: d.opts.FPS,
		Seed:     d.opts.Seed,
	})
	d.state = d.game.State()
	d.started = time.Now()
	d.layout()
	d.redraw()
}

// frame advances the game by one step and redraws what changed.
// It reports whether the player asked to quit.
func (d *Driver) frame(f Frame) bool {
	if f.Action == core.ActionQuit {
		d.saveSession()
		return true
	}
	if f.Resized {
		d.screen.Sync()
		d.layout()
		d.redraw()
	}

	in := core.NewInputFrame()
	if f.Action != core.ActionNone {
		in.Set(f.Action)
	}
	if f.Action == core.ActionRestart {
		d.saveSession()
		d.started = time.Now()
	}
	prev := d.state
	d.state = d.game.Step(in).State

	if f.Action == core.ActionRestart {
		d.redraw()
		return false
	}
	if d.tooSmall {
		return false
	}

	if d.state.Locked {
		if d.opts.Clicker != nil {
			d.opts.Clicker.Click()
		}
		// Repaint the landed piece in the settled style.
		d.renderer.Queue(tetris.Diff{Drawn: d.prevActive})
	}
	d.renderer.Queue(d.game.LastDiff())

	hudChanged := prev.Pieces != d.state.Pieces || prev.Paused != d.state.Paused
	if hudChanged {
		d.drawHUD()
	}
	d.trackActive()
	if n := d.renderer.Flush(d.sink); n == 0 && hudChanged {
		d.screen.Show()
	}
	return false
}

// saveSession stores a summary of the board being left. Boards on which no
// piece spawned are not recorded.
func (d *Driver) saveSession() {
	if d.opts.Store == nil || d.state.Pieces == 0 {
		return
	}
	seed := d.opts.Seed
	if s, ok := d.game.(seeded); ok {
		seed = s.Seed()
	}
	_, err := d.opts.Store.SaveSession(storage.Session{
		GameID:   d.game.ID(),
		Seed:     seed,
		Pieces:   d.state.Pieces,
		Ticks:    d.state.Tick,
		Duration: time.Since(d.started),
	})
	if err != nil && d.opts.Logger != nil {
		d.opts.Logger.Warn("could not save session", "error", err)
	}
}

// layout centers the bordered field below the HUD line.
func (d *Driver) layout() {
	w, h := d.screen.Size()
	d.game.Resize(w, h)

	fd := d.game.Field()
	if fd == nil {
		d.tooSmall = true
		return
	}
	bw, bh := fd.Columns()+2, fd.Rows()+2
	area := core.NewRect(0, 1, w, h-1)
	d.tooSmall = !area.Fits(bw, bh)

	board := area.CenterIn(bw, bh)
	d.sink = NewSink(d.screen, board.X+1, board.Y+1)
	d.renderer = tetris.NewDiffRenderer(fd.Columns(), fd.Rows())
}

// redraw paints the whole screen from the field.
func (d *Driver) redraw() {
	d.screen.Clear()
	fd := d.game.Field()

	if d.tooSmall {
		if fd == nil {
			drawText(d.screen, 0, 0, "invalid board", styleWarn)
		} else {
			drawText(d.screen, 0, 0, "Window too small", styleWarn)
			drawText(d.screen, 0, 1, fmt.Sprintf("Need %dx%d", fd.Columns()+2, fd.Rows()+3), styleHUD)
		}
		d.screen.Show()
		return
	}

	d.renderer.Reset()
	d.drawHUD()
	d.trackActive()
	fd.DrawBorder(d.sink)
	fd.Draw(d.sink)
}

func (d *Driver) trackActive() {
	d.prevActive = nil
	var active tetris.CoordSet
	if pc := d.game.Field().Active(); pc != nil {
		active = pc.Positions()
		d.prevActive = active.Sorted()
	}
	d.sink.SetActive(active)
}

func (d *Driver) drawHUD() {
	w, _ := d.screen.Size()
	for x := 0; x < w; x++ {
		d.screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}
	hud := fmt.Sprintf(" %s  Pieces: %d", d.game.Title(), d.state.Pieces)
	drawText(d.screen, 0, 0, hud, styleHUD)
	if d.state.Paused {
		drawText(d.screen, len(hud)+2, 0, "Paused", styleWarn)
	}
}

// Play opens the terminal, runs game on it, and restores the terminal.
// Audio failures are logged and play continues silently.
func Play(ctx context.Context, game Board, opts Options) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if opts.Clicker != nil {
		if err := opts.Clicker.Initialize(); err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("audio unavailable, playing silently", "error", err)
			}
			opts.Clicker = nil
		} else {
			defer opts.Clicker.Close()
		}
	}

	return NewDriver(screen, game, opts).Run(ctx)
}
