package tetris

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKinds() []ShapeKind {
	kinds := make([]ShapeKind, 0, ShapeCount)
	for k := range ShapeCount {
		kinds = append(kinds, ShapeKind(k))
	}
	return kinds
}

func TestCatalog(t *testing.T) {
	names := ""
	for _, k := range allKinds() {
		shape := Catalog[k]
		names += shape.Name
		assert.Equal(t, 4, shape.CellCount(), "shape %s", shape.Name)
		assert.Equal(t, k != ShapeO, shape.HasPivot(), "shape %s", shape.Name)
	}
	assert.Equal(t, "IJLOSTZ", names)
	assert.Equal(t, 4, Catalog[ShapeI].Width())
	assert.Equal(t, 1, Catalog[ShapeI].Height())
	assert.Equal(t, 2, Catalog[ShapeO].Width())
}

func TestNewPieceMaterializesShape(t *testing.T) {
	pc := NewPiece(ShapeT, C(3, 0))

	assert.True(t, NewCoordSet(C(4, 0), C(3, 1), C(4, 1), C(5, 1)).Equal(pc.Positions()))
	pivot, ok := pc.Pivot()
	require.True(t, ok)
	assert.Equal(t, C(4, 0), pivot)
	assert.Equal(t, 0, pc.OldPositions().Len())
	assert.Equal(t, ShapeT, pc.Kind())
}

func TestMoveThenMoveBackRestoresPositions(t *testing.T) {
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			pc := NewPiece(k, C(5, 5))
			start := pc.Positions().Clone()

			pc.MoveLeft()
			assert.False(t, start.Equal(pc.Positions()))
			pc.MoveRight()
			assert.True(t, start.Equal(pc.Positions()))

			pc.MoveRight()
			pc.MoveLeft()
			assert.True(t, start.Equal(pc.Positions()))
		})
	}
}

func TestMoveDownShiftsEveryCell(t *testing.T) {
	pc := NewPiece(ShapeS, C(2, 2))
	before := pc.Positions().Clone()

	pc.MoveDown()

	assert.True(t, before.Map(Coord.Below).Equal(pc.Positions()))
	assert.True(t, before.Equal(pc.OldPositions()))
	pivot, _ := pc.Pivot()
	assert.Equal(t, C(3, 3), pivot)
}

func TestSnapshotIsReplacedNotAccumulated(t *testing.T) {
	pc := NewPiece(ShapeL, C(4, 4))
	pc.MoveDown()
	afterFirst := pc.Positions().Clone()
	pc.MoveLeft()

	assert.True(t, afterFirst.Equal(pc.OldPositions()))
	assert.Equal(t, 4, pc.OldPositions().Len())
}

func TestFourClockwiseRotationsRestorePositions(t *testing.T) {
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			pc := NewPiece(k, C(6, 6))
			start := pc.Positions().Clone()
			for range 4 {
				pc.RotateClockwise()
				assert.Equal(t, 4, pc.Positions().Len())
			}
			assert.True(t, start.Equal(pc.Positions()))
		})
	}
}

func TestAnticlockwiseIsInverse(t *testing.T) {
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			pc := NewPiece(k, C(6, 6))
			start := pc.Positions().Clone()

			pc.RotateAnticlockwise()
			pc.RotateClockwise()
			assert.True(t, start.Equal(pc.Positions()))

			pc.RotateClockwise()
			pc.RotateAnticlockwise()
			assert.True(t, start.Equal(pc.Positions()))
		})
	}
}

func TestRotateWithoutPivotIsNoop(t *testing.T) {
	pc := NewPiece(ShapeO, C(3, 3))
	pc.MoveDown()
	positions := pc.Positions().Clone()
	old := pc.OldPositions().Clone()

	pc.RotateClockwise()
	pc.RotateAnticlockwise()

	assert.True(t, positions.Equal(pc.Positions()))
	assert.True(t, old.Equal(pc.OldPositions()))
	_, ok := pc.Pivot()
	assert.False(t, ok)
}

func TestSquareBoundaries(t *testing.T) {
	for _, anchor := range []Coord{C(0, 0), C(7, 3), C(-2, 11)} {
		pc := NewPiece(ShapeO, anchor)

		assert.Equal(t, 2, pc.LeftPositions().Len())
		assert.Equal(t, 2, pc.RightPositions().Len())
		assert.Equal(t, 2, pc.BelowPositions().Len())
		assert.Equal(t, 2, pc.AbovePositions().Len())

		assert.True(t, NewCoordSet(anchor, anchor.Below()).Equal(pc.LeftPositions()))
		assert.True(t, NewCoordSet(anchor.Below(), anchor.Below().RightOf()).Equal(pc.BelowPositions()))
		assert.True(t, NewCoordSet(anchor, anchor.RightOf()).Equal(pc.AbovePositions()))
	}
}

func TestBoundariesCoverEveryCell(t *testing.T) {
	for _, k := range allKinds() {
		pc := NewPiece(k, C(4, 4))
		for range 4 {
			for c := range pc.Positions() {
				covered := pc.LeftPositions().Has(c) || pc.RightPositions().Has(c) ||
					pc.BelowPositions().Has(c) || pc.AbovePositions().Has(c)
				assert.True(t, covered, "shape %s cell %v not on any edge", k, c)
			}
			for c := range pc.BelowPositions() {
				assert.False(t, pc.Positions().Has(c.Below()))
			}
			pc.RotateClockwise()
		}
	}
}

func TestBoundariesRecomputedAfterRotation(t *testing.T) {
	pc := NewPiece(ShapeI, C(3, 5))
	assert.Equal(t, 4, pc.BelowPositions().Len())
	assert.Equal(t, 1, pc.LeftPositions().Len())

	pc.RotateClockwise()

	assert.True(t, NewCoordSet(C(5, 3), C(5, 4), C(5, 5), C(5, 6)).Equal(pc.Positions()))
	assert.True(t, NewCoordSet(C(5, 6)).Equal(pc.BelowPositions()))
	assert.True(t, NewCoordSet(C(5, 3)).Equal(pc.AbovePositions()))
	assert.Equal(t, 4, pc.LeftPositions().Len())
	assert.Equal(t, 4, pc.RightPositions().Len())
}

func TestSpawnShapeStaysInAnchorRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for range 200 {
		pc, err := SpawnShape(ShapeI, rng, 10, 4)
		require.NoError(t, err)
		minX := 100
		for c := range pc.Positions() {
			minX = min(minX, c.X)
			assert.Equal(t, 0, c.Y)
			assert.Less(t, c.X, 10)
		}
		seen[minX] = true
	}
	assert.Equal(t, map[int]bool{4: true, 5: true}, seen)
}

func TestSpawnPieceCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := map[ShapeKind]int{}
	for range 700 {
		pc, err := SpawnPiece(rng, 25, 4)
		require.NoError(t, err)
		seen[pc.Kind()]++
	}
	assert.Len(t, seen, ShapeCount)
}

func TestSpawnShapeConfigurationError(t *testing.T) {
	_, err := SpawnShape(ShapeI, rand.New(rand.NewSource(1)), 5, 2)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 5, cfgErr.Columns)
	assert.Equal(t, 2, cfgErr.Gap)
}
