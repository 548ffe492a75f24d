package tetris

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
	s    Symbol
}

// recordingSink remembers every call made by a draw.
type recordingSink struct {
	points    []point
	refreshes int
}

func (r *recordingSink) SetPoint(x, y int, s Symbol) {
	r.points = append(r.points, point{x, y, s})
}

func (r *recordingSink) Refresh() {
	r.refreshes++
}

func newTestField(t *testing.T, columns, rows int, opts ...Option) *Field {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	fd, err := New(columns, rows, opts...)
	require.NoError(t, err)
	return fd
}

func TestNewRejectsUnspawnableBoards(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		gap           int
	}{
		{"zero width", 0, 10, 0},
		{"negative height", 10, -1, 0},
		{"narrower than I", 3, 10, 0},
		{"shorter than two rows", 10, 1, 0},
		{"gap eats the board", 10, 20, 5},
		{"negative gap", 10, 20, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.columns, tc.rows, WithGap(tc.gap))
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tc.columns, cfgErr.Columns)
		})
	}
}

func TestCellAtReturnsBorderOffGrid(t *testing.T) {
	fd := newTestField(t, 10, 20)

	assert.Equal(t, Empty, fd.CellAt(C(0, 0)))
	assert.Equal(t, Empty, fd.CellAt(C(9, 19)))
	for _, c := range []Coord{C(-1, 0), C(10, 0), C(0, -1), C(0, 20), C(-5, -5)} {
		assert.Equal(t, Border, fd.CellAt(c), "cell %v", c)
	}

	fd.SetCell(C(3, 4), Filled)
	assert.Equal(t, Filled, fd.CellAt(C(3, 4)))

	// Off-grid writes are dropped.
	fd.SetCell(C(-1, 4), Filled)
	assert.Equal(t, 1, fd.FilledCount())
}

func TestNoActivePiece(t *testing.T) {
	fd := newTestField(t, 10, 20)

	assert.Nil(t, fd.Active())
	assert.False(t, fd.CanDrop())
	assert.False(t, fd.CanMoveLeft())
	assert.False(t, fd.CanMoveRight())
	assert.False(t, fd.CanRotateClockwise())
	assert.False(t, fd.Drop())
	assert.True(t, fd.Commit().IsZero())
}

func TestFreshPieceCanDrop(t *testing.T) {
	fd := newTestField(t, 10, 20, WithGap(2))
	for range 50 {
		fd.SpawnPiece()
		assert.True(t, fd.CanDrop())
	}
}

func TestIPieceFallsToFloor(t *testing.T) {
	const rows = 20
	fd := newTestField(t, 10, rows, WithGap(4))
	fd.SpawnShape(ShapeI)

	drops := 0
	for fd.CanDrop() {
		require.True(t, fd.Drop())
		drops++
	}

	assert.Equal(t, rows-1, drops)
	for c := range fd.Active().Positions() {
		assert.Equal(t, rows-1, c.Y)
	}
	for c := range fd.Active().BelowPositions() {
		assert.Equal(t, rows, c.Below().Y)
	}
	assert.False(t, fd.CanDrop())
	assert.False(t, fd.Drop())
}

func TestPieceLandsOnSettledCells(t *testing.T) {
	const rows = 12
	fd := newTestField(t, 10, rows)
	fd.Place(NewPiece(ShapeO, C(0, rows-2)))
	fd.Commit()

	fd.Place(NewPiece(ShapeO, C(0, 0)))
	fallen := fd.HardDrop()

	assert.Equal(t, rows-4, fallen)
	assert.False(t, fd.CanDrop())
	for c := range fd.Active().BelowPositions() {
		assert.Equal(t, rows-3, c.Y)
	}
}

func TestWallsBlockSidewaysMoves(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.Place(NewPiece(ShapeO, C(0, 5)))
	before := fd.Active().Positions().Clone()

	assert.False(t, fd.CanMoveLeft())
	assert.False(t, fd.MoveLeft())
	assert.True(t, before.Equal(fd.Active().Positions()))
	assert.Equal(t, 0, fd.Active().OldPositions().Len())

	fd.Place(NewPiece(ShapeO, C(8, 5)))
	assert.False(t, fd.MoveRight())
	assert.True(t, fd.MoveLeft())
}

func TestSettledCellsBlockSidewaysMoves(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.SetCell(C(2, 6), Filled)
	fd.Place(NewPiece(ShapeO, C(3, 5)))

	assert.False(t, fd.CanMoveLeft())
	assert.True(t, fd.CanMoveRight())
}

func TestRotationIsGated(t *testing.T) {
	fd := newTestField(t, 10, 20)

	// A T on row 0 would rotate a cell above the grid.
	fd.Place(NewPiece(ShapeT, C(0, 0)))
	assert.False(t, fd.CanRotateClockwise())
	assert.False(t, fd.RotateClockwise())

	fd.Drop()
	assert.True(t, fd.RotateClockwise())
	assert.True(t, NewCoordSet(C(1, 1), C(0, 0), C(0, 1), C(0, 2)).Equal(fd.Active().Positions()))
	assert.True(t, fd.RotateAnticlockwise())

	fd.Place(NewPiece(ShapeO, C(4, 4)))
	assert.False(t, fd.RotateClockwise())
}

func TestCommitWritesAndErases(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.Place(NewPiece(ShapeL, C(3, 0)))
	fd.Commit()

	fd.Drop()
	fd.MoveLeft()
	positions := fd.Active().Positions().Clone()
	old := fd.Active().OldPositions().Clone()

	diff := fd.Commit()

	for c := range positions {
		assert.Equal(t, Filled, fd.CellAt(c), "cell %v", c)
	}
	for c := range old {
		if !positions.Has(c) {
			assert.Equal(t, Empty, fd.CellAt(c), "cell %v", c)
		}
	}
	assert.Equal(t, 0, fd.Active().OldPositions().Len())
	assert.Equal(t, 4, fd.FilledCount())

	// (4,1) was already drawn by the first commit, (5,2) was never drawn.
	assert.Equal(t, []Coord{C(5, 0), C(3, 1), C(5, 1)}, diff.Erased)
	assert.Equal(t, []Coord{C(2, 2), C(3, 2), C(4, 2)}, diff.Drawn)
}

func TestCommitWithoutMovementChangesNothing(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.Place(NewPiece(ShapeZ, C(2, 0)))

	first := fd.Commit()
	assert.Len(t, first.Drawn, 4)
	assert.Empty(t, first.Erased)

	assert.True(t, fd.Commit().IsZero())
}

func TestHardDropLeavesNoGhost(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.Place(NewPiece(ShapeJ, C(4, 0)))
	fd.Commit()

	fd.HardDrop()
	diff := fd.Commit()

	assert.Equal(t, 4, fd.FilledCount())
	assert.Len(t, diff.Erased, 4)
	for _, c := range diff.Erased {
		assert.Less(t, c.Y, 2)
	}
}

func TestCommittedPieceDoesNotBlockItself(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.Place(NewPiece(ShapeI, C(4, 3)))
	fd.Commit()
	start := fd.Active().Positions().Clone()

	require.True(t, fd.MoveLeft())
	require.True(t, fd.MoveRight())
	assert.True(t, start.Equal(fd.Active().Positions()))

	require.True(t, fd.RotateClockwise())
	fd.Commit()
	assert.Equal(t, 4, fd.FilledCount())
}

func TestOverlappingCommitsLastWriteWins(t *testing.T) {
	const rows = 8
	fd := newTestField(t, 10, rows)
	fd.Place(NewPiece(ShapeO, C(2, rows-2)))
	fd.Commit()

	fd.Place(NewPiece(ShapeO, C(2, rows-2)))
	assert.True(t, fd.Overlaps())
	assert.False(t, fd.CanDrop())

	assert.NotPanics(t, func() { fd.Commit() })
	assert.Equal(t, 4, fd.FilledCount())
	for c := range fd.Active().Positions() {
		assert.Equal(t, Filled, fd.CellAt(c))
	}
}

func TestSpawnedPieceKeepsPreviousCells(t *testing.T) {
	fd := newTestField(t, 10, 20)
	fd.SpawnShape(ShapeT)
	fd.HardDrop()
	fd.Commit()

	fd.SpawnPiece()
	fd.Commit()
	fd.Drop()
	fd.Commit()

	assert.Equal(t, 8, fd.FilledCount())
}

func TestDrawVisitsGridRowMajor(t *testing.T) {
	fd := newTestField(t, 4, 3)
	fd.SetCell(C(1, 2), Filled)
	sink := &recordingSink{}

	fd.Draw(sink)

	require.Len(t, sink.points, 12)
	assert.Equal(t, 1, sink.refreshes)
	for i, pt := range sink.points {
		assert.Equal(t, i%4, pt.x)
		assert.Equal(t, i/4, pt.y)
	}
	assert.Equal(t, point{1, 2, Filled}, sink.points[9])
}

func TestDrawBorderRing(t *testing.T) {
	fd := newTestField(t, 4, 3)
	sink := &recordingSink{}

	fd.DrawBorder(sink)

	assert.Len(t, sink.points, 2*(4+2)+2*3)
	for _, pt := range sink.points {
		assert.Equal(t, Border, pt.s)
		assert.Equal(t, Border, fd.CellAt(C(pt.x, pt.y)))
	}
}

func TestSymbolRunes(t *testing.T) {
	assert.Equal(t, ' ', Empty.Rune())
	assert.Equal(t, '■', Filled.Rune())
	assert.Equal(t, '#', Border.Rune())
	assert.Equal(t, "Border", Border.String())
}
