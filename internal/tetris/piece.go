package tetris

import "math/rand"

// Piece is the falling block. It tracks the cells it occupies, an optional
// pivot, and for each direction the subset of cells that face outward. Only
// those edge cells can collide when the piece moves in that direction.
type Piece struct {
	kind      ShapeKind
	positions CoordSet
	pivot     Coord
	hasPivot  bool

	left  CoordSet
	right CoordSet
	below CoordSet
	above CoordSet

	// old holds the cells occupied just before the latest move or rotation.
	// Each mutation overwrites it; Field clears it on commit.
	old CoordSet
}

// NewPiece materializes shape kind with its top-left corner at anchor.
func NewPiece(kind ShapeKind, anchor Coord) *Piece {
	shape := Catalog[kind]
	pc := &Piece{
		kind:      kind,
		positions: make(CoordSet, shape.CellCount()),
		old:       make(CoordSet),
	}
	for y, row := range shape.Cells {
		for x, cell := range row {
			if !cell.Occupied() {
				continue
			}
			pos := anchor.Add(Coord{X: x, Y: y})
			pc.positions.Add(pos)
			if cell == CellPivot {
				pc.pivot = pos
				pc.hasPivot = true
			}
		}
	}
	pc.computeBoundaries()
	return pc
}

// SpawnPiece picks a shape uniformly at random and spawns it on row 0.
func SpawnPiece(rng *rand.Rand, columns, gap int) (*Piece, error) {
	return SpawnShape(ShapeKind(rng.Intn(ShapeCount)), rng, columns, gap)
}

// SpawnShape spawns the given shape on row 0 at a random legal column.
func SpawnShape(kind ShapeKind, rng *rand.Rand, columns, gap int) (*Piece, error) {
	lo, hi, ok := anchorRange(Catalog[kind], columns, gap)
	if !ok {
		return nil, &ConfigurationError{
			Columns: columns, Gap: gap,
			Reason: "no spawn column for shape " + Catalog[kind].Name,
		}
	}
	x := lo + rng.Intn(hi-lo+1)
	return NewPiece(kind, Coord{X: x, Y: 0}), nil
}

// Kind returns the piece's shape.
func (pc *Piece) Kind() ShapeKind { return pc.kind }

// Positions returns the occupied cells. The set must not be modified.
func (pc *Piece) Positions() CoordSet { return pc.positions }

// OldPositions returns the pre-move snapshot. The set must not be modified.
func (pc *Piece) OldPositions() CoordSet { return pc.old }

// LeftPositions returns the cells with no piece cell to their left.
func (pc *Piece) LeftPositions() CoordSet { return pc.left }

// RightPositions returns the cells with no piece cell to their right.
func (pc *Piece) RightPositions() CoordSet { return pc.right }

// BelowPositions returns the cells with no piece cell beneath them.
func (pc *Piece) BelowPositions() CoordSet { return pc.below }

// AbovePositions returns the cells with no piece cell above them.
func (pc *Piece) AbovePositions() CoordSet { return pc.above }

// Pivot returns the rotation centre, if the shape has one.
func (pc *Piece) Pivot() (Coord, bool) { return pc.pivot, pc.hasPivot }

// MoveDown shifts the piece one row down.
func (pc *Piece) MoveDown() { pc.shift(Coord.Below) }

// MoveLeft shifts the piece one column left.
func (pc *Piece) MoveLeft() { pc.shift(Coord.LeftOf) }

// MoveRight shifts the piece one column right.
func (pc *Piece) MoveRight() { pc.shift(Coord.RightOf) }

// RotateClockwise turns the piece a quarter turn about its pivot.
// Shapes without a pivot are left untouched, snapshot included.
func (pc *Piece) RotateClockwise() {
	if !pc.hasPivot {
		return
	}
	pc.snapshot()
	pivot := pc.pivot
	pc.positions = pc.positions.Map(func(c Coord) Coord {
		return c.RotateClockwiseAbout(pivot)
	})
	pc.computeBoundaries()
}

// RotateAnticlockwise undoes RotateClockwise.
func (pc *Piece) RotateAnticlockwise() {
	if !pc.hasPivot {
		return
	}
	pc.snapshot()
	pivot := pc.pivot
	pc.positions = pc.positions.Map(func(c Coord) Coord {
		return c.RotateAnticlockwiseAbout(pivot)
	})
	pc.computeBoundaries()
}

// ClockwiseCells returns where the piece would sit after RotateClockwise.
func (pc *Piece) ClockwiseCells() CoordSet {
	if !pc.hasPivot {
		return pc.positions.Clone()
	}
	pivot := pc.pivot
	return pc.positions.Map(func(c Coord) Coord { return c.RotateClockwiseAbout(pivot) })
}

// AnticlockwiseCells returns where the piece would sit after RotateAnticlockwise.
func (pc *Piece) AnticlockwiseCells() CoordSet {
	if !pc.hasPivot {
		return pc.positions.Clone()
	}
	pivot := pc.pivot
	return pc.positions.Map(func(c Coord) Coord { return c.RotateAnticlockwiseAbout(pivot) })
}

// ClearOld drops the pre-move snapshot once it has been rendered.
func (pc *Piece) ClearOld() {
	pc.old = make(CoordSet)
}

func (pc *Piece) shift(step func(Coord) Coord) {
	pc.snapshot()
	pc.positions = pc.positions.Map(step)
	if pc.hasPivot {
		pc.pivot = step(pc.pivot)
	}
	pc.computeBoundaries()
}

func (pc *Piece) snapshot() {
	pc.old = pc.positions.Clone()
}

// computeBoundaries rebuilds the edge subsets from the current positions.
// A cell can be in several subsets; every cell of a tetromino lands in at
// least one.
func (pc *Piece) computeBoundaries() {
	pc.left = make(CoordSet)
	pc.right = make(CoordSet)
	pc.below = make(CoordSet)
	pc.above = make(CoordSet)
	for c := range pc.positions {
		if !pc.positions.Has(c.LeftOf()) {
			pc.left.Add(c)
		}
		if !pc.positions.Has(c.RightOf()) {
			pc.right.Add(c)
		}
		if !pc.positions.Has(c.Below()) {
			pc.below.Add(c)
		}
		if !pc.positions.Has(c.Above()) {
			pc.above.Add(c)
		}
	}
}
