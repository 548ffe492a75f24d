package tetris

import (
	"math/rand"
	"time"
)

// Symbol is the content of one field cell.
type Symbol uint8

const (
	Empty Symbol = iota
	Filled
	// Border is never stored; CellAt returns it for positions off the grid.
	Border
)

// Rune returns the character used to draw the symbol.
func (s Symbol) Rune() rune {
	switch s {
	case Filled:
		return '■'
	case Border:
		return '#'
	default:
		return ' '
	}
}

func (s Symbol) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Filled:
		return "Filled"
	case Border:
		return "Border"
	default:
		return "Unknown"
	}
}

// Sink receives drawn cells. SetPoint is called once per cell, Refresh once
// per frame after all points are set.
type Sink interface {
	SetPoint(x, y int, s Symbol)
	Refresh()
}

// Option customizes a Field.
type Option func(*Field)

// WithGap sets the minimum distance between a spawned piece's anchor and
// either side wall.
func WithGap(gap int) Option {
	return func(fd *Field) { fd.gap = gap }
}

// WithRand sets the random source used to choose shapes and spawn columns.
func WithRand(rng *rand.Rand) Option {
	return func(fd *Field) { fd.rng = rng }
}

// Field is the playing grid and the piece currently falling through it.
// It is not safe for concurrent use.
type Field struct {
	columns int
	rows    int
	gap     int
	rng     *rand.Rand

	cells  [][]Symbol // [y][x]
	active *Piece

	// drawn is where the active piece was written by the last Commit.
	// Those cells read Filled but belong to the piece, not the settled stack.
	drawn CoordSet
}

// New creates an empty field. It fails with *ConfigurationError when the
// board cannot spawn every catalog shape.
func New(columns, rows int, opts ...Option) (*Field, error) {
	fd := &Field{
		columns: columns,
		rows:    rows,
		drawn:   make(CoordSet),
	}
	for _, opt := range opts {
		opt(fd)
	}
	if err := CheckSpawnable(columns, rows, fd.gap); err != nil {
		return nil, err
	}
	if fd.rng == nil {
		fd.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	fd.cells = make([][]Symbol, rows)
	for y := range fd.cells {
		fd.cells[y] = make([]Symbol, columns)
	}
	return fd, nil
}

// Columns returns the grid width.
func (fd *Field) Columns() int { return fd.columns }

// Rows returns the grid height.
func (fd *Field) Rows() int { return fd.rows }

// Active returns the falling piece, or nil before the first spawn.
func (fd *Field) Active() *Piece { return fd.active }

// InBounds reports whether c is a grid cell.
func (fd *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < fd.columns && c.Y >= 0 && c.Y < fd.rows
}

// CellAt returns the symbol at c, or Border when c is off the grid.
func (fd *Field) CellAt(c Coord) Symbol {
	if !fd.InBounds(c) {
		return Border
	}
	return fd.cells[c.Y][c.X]
}

// SetCell writes one grid cell. Off-grid writes are ignored.
func (fd *Field) SetCell(c Coord, s Symbol) {
	if !fd.InBounds(c) {
		return
	}
	fd.cells[c.Y][c.X] = s
}

// SpawnPiece replaces the active piece with a random new one on row 0.
// Whatever the old piece last committed stays on the grid.
func (fd *Field) SpawnPiece() {
	pc, err := SpawnPiece(fd.rng, fd.columns, fd.gap)
	if err != nil {
		// New already rejected boards where any shape fails to spawn.
		panic(err)
	}
	fd.place(pc)
}

// SpawnShape is SpawnPiece with a chosen shape.
func (fd *Field) SpawnShape(kind ShapeKind) {
	pc, err := SpawnShape(kind, fd.rng, fd.columns, fd.gap)
	if err != nil {
		panic(err)
	}
	fd.place(pc)
}

// Place makes pc the active piece as-is.
func (fd *Field) Place(pc *Piece) {
	fd.place(pc)
}

func (fd *Field) place(pc *Piece) {
	fd.active = pc
	fd.drawn = make(CoordSet)
}

// Overlaps reports whether the active piece sits on settled cells, which
// happens when a piece spawns into a full top row.
func (fd *Field) Overlaps() bool {
	if fd.active == nil {
		return false
	}
	for c := range fd.active.positions {
		if !fd.free(c) {
			return true
		}
	}
	return false
}

// free reports whether the active piece may occupy c.
func (fd *Field) free(c Coord) bool {
	return fd.CellAt(c) == Empty || fd.drawn.Has(c)
}

func (fd *Field) edgeClear(edge CoordSet, step func(Coord) Coord) bool {
	for c := range edge {
		if !fd.free(step(c)) {
			return false
		}
	}
	return true
}

// CanDrop reports whether the active piece can move one row down.
func (fd *Field) CanDrop() bool {
	if fd.active == nil {
		return false
	}
	return fd.edgeClear(fd.active.below, Coord.Below)
}

// CanMoveLeft reports whether the active piece can move one column left.
func (fd *Field) CanMoveLeft() bool {
	if fd.active == nil {
		return false
	}
	return fd.edgeClear(fd.active.left, Coord.LeftOf)
}

// CanMoveRight reports whether the active piece can move one column right.
func (fd *Field) CanMoveRight() bool {
	if fd.active == nil {
		return false
	}
	return fd.edgeClear(fd.active.right, Coord.RightOf)
}

// CanRotateClockwise reports whether the active piece has a pivot and every
// rotated cell is free.
func (fd *Field) CanRotateClockwise() bool {
	if fd.active == nil || !fd.active.hasPivot {
		return false
	}
	return fd.fits(fd.active.ClockwiseCells())
}

// CanRotateAnticlockwise is CanRotateClockwise for the opposite turn.
func (fd *Field) CanRotateAnticlockwise() bool {
	if fd.active == nil || !fd.active.hasPivot {
		return false
	}
	return fd.fits(fd.active.AnticlockwiseCells())
}

func (fd *Field) fits(cells CoordSet) bool {
	for c := range cells {
		if fd.active.positions.Has(c) {
			continue
		}
		if !fd.free(c) {
			return false
		}
	}
	return true
}

// Drop moves the active piece down when CanDrop allows it.
func (fd *Field) Drop() bool {
	if !fd.CanDrop() {
		return false
	}
	fd.active.MoveDown()
	return true
}

// HardDrop drops the active piece until it rests and returns the rows fallen.
func (fd *Field) HardDrop() int {
	n := 0
	for fd.Drop() {
		n++
	}
	return n
}

// MoveLeft moves the active piece left when CanMoveLeft allows it.
func (fd *Field) MoveLeft() bool {
	if !fd.CanMoveLeft() {
		return false
	}
	fd.active.MoveLeft()
	return true
}

// MoveRight moves the active piece right when CanMoveRight allows it.
func (fd *Field) MoveRight() bool {
	if !fd.CanMoveRight() {
		return false
	}
	fd.active.MoveRight()
	return true
}

// RotateClockwise rotates the active piece when CanRotateClockwise allows it.
func (fd *Field) RotateClockwise() bool {
	if !fd.CanRotateClockwise() {
		return false
	}
	fd.active.RotateClockwise()
	return true
}

// RotateAnticlockwise rotates the active piece when CanRotateAnticlockwise
// allows it.
func (fd *Field) RotateAnticlockwise() bool {
	if !fd.CanRotateAnticlockwise() {
		return false
	}
	fd.active.RotateAnticlockwise()
	return true
}

// Commit writes the active piece into the grid. Cells the piece has left are
// erased, its current cells are filled, and the cells whose symbol actually
// changed are returned so a renderer can redraw only those.
//
// The erase set is the pre-move snapshot plus everything the previous Commit
// drew, so several moves between commits never leave stale cells behind.
func (fd *Field) Commit() Diff {
	if fd.active == nil {
		return Diff{}
	}
	pc := fd.active

	erase := fd.drawn.Clone()
	for c := range pc.old {
		erase.Add(c)
	}
	var diff Diff
	for _, c := range erase.Sorted() {
		if pc.positions.Has(c) {
			continue
		}
		if fd.CellAt(c) == Filled {
			diff.Erased = append(diff.Erased, c)
		}
		fd.SetCell(c, Empty)
	}
	pc.ClearOld()

	for _, c := range pc.positions.Sorted() {
		if fd.CellAt(c) == Empty {
			diff.Drawn = append(diff.Drawn, c)
		}
		fd.SetCell(c, Filled)
	}
	fd.drawn = pc.positions.Clone()
	return diff
}

// Draw sends every grid cell to sink in row-major order, then refreshes.
func (fd *Field) Draw(sink Sink) {
	for y := 0; y < fd.rows; y++ {
		for x := 0; x < fd.columns; x++ {
			sink.SetPoint(x, y, fd.cells[y][x])
		}
	}
	sink.Refresh()
}

// DrawBorder sends the ring of Border cells around the grid (x in
// [-1, columns], y in [-1, rows]), then refreshes.
func (fd *Field) DrawBorder(sink Sink) {
	for x := -1; x <= fd.columns; x++ {
		sink.SetPoint(x, -1, Border)
		sink.SetPoint(x, fd.rows, Border)
	}
	for y := 0; y < fd.rows; y++ {
		sink.SetPoint(-1, y, Border)
		sink.SetPoint(fd.columns, y, Border)
	}
	sink.Refresh()
}

// FilledCount returns the number of Filled grid cells.
func (fd *Field) FilledCount() int {
	n := 0
	for _, row := range fd.cells {
		for _, s := range row {
			if s == Filled {
				n++
			}
		}
	}
	return n
}
