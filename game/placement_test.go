package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackerStartsWithOneActiveCube(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)

	require.Len(t, tr.Slots(), 1)
	assert.False(t, tr.Active().Solid)
	assert.Equal(t, tube.Start, tr.ActivePosition())
	assert.Empty(t, tr.Placed())
}

func TestLateralBounds(t *testing.T) {
	tube := DefaultTube()

	tests := []struct {
		name   string
		start  mgl32.Vec3
		dx, dy float32
	}{
		{"left from left wall", mgl32.Vec3{-0.4, 0, 1.9}, -0.2, 0},
		{"right from right wall", mgl32.Vec3{0.4, 0, 1.9}, 0.2, 0},
		{"down from bottom wall", mgl32.Vec3{0, -0.4, 1.9}, 0, -0.2},
		{"up from top wall", mgl32.Vec3{0, 0.4, 1.9}, 0, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tube)
			tr.MoveActive(tt.start)

			assert.False(t, tr.TryLateral(tt.dx, tt.dy))
			assert.Equal(t, tt.start, tr.ActivePosition())
		})
	}
}

func TestLateralMoveBlockedByNeighbour(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{0, 0, 0.2})
	tr.MoveActive(mgl32.Vec3{0, -0.2, 0.2})

	assert.False(t, tr.TryLateral(0, 0.2))
	assert.Equal(t, mgl32.Vec3{0, -0.2, 0.2}, tr.ActivePosition())

	assert.True(t, tr.TryLateral(0.2, 0), "the free neighbour is still reachable")
	assert.InDelta(t, 0.2, tr.ActivePosition().X(), 1e-6)
}

func TestStepIn(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{0, 0, 0.1})

	tr.MoveActive(mgl32.Vec3{0, 0, 0.5})
	require.True(t, tr.TryStepIn())
	assert.InDelta(t, 0.3, tr.ActivePosition().Z(), 1e-6)

	assert.False(t, tr.TryStepIn(), "the cube below blocks")
	assert.InDelta(t, 0.3, tr.ActivePosition().Z(), 1e-6)
}

func TestDropToFloor(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{0, 0, 0.2})
	place(tr, mgl32.Vec3{0, 0, 0.4})
	tr.MoveActive(mgl32.Vec3{0, 0, 1.9})

	require.True(t, tr.TryDrop())
	assert.InDelta(t, 0.6, tr.ActivePosition().Z(), 1e-6)
}

func TestDropIntoEmptyColumn(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)

	require.True(t, tr.TryDrop())
	assert.InDelta(t, 0.1, tr.ActivePosition().Z(), 1e-6)
}

func TestSettleLocksOnce(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	tr.MoveActive(mgl32.Vec3{0, 0, 0.1})

	assert.Equal(t, OutcomeLocked, tr.Settle())
	require.Len(t, tr.Slots(), 2)
	assert.True(t, tr.Slots()[0].Solid)
	assert.Equal(t, mgl32.Vec3{0, 0, 0.1}, tr.Slots()[0].Position)
	assert.Equal(t, tube.Model(mgl32.Vec3{0, 0, 0.1}), tr.Slots()[0].Model)
	assert.False(t, tr.Active().Solid)
	assert.Equal(t, tube.Start, tr.ActivePosition())

	assert.Equal(t, OutcomeFalling, tr.Settle())
	assert.Len(t, tr.Slots(), 2)
	assert.Equal(t, 1, tr.SolidCount())
}

func TestSettleOnTopOfAnotherCube(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{0.2, 0.2, 0.1})

	tr.MoveActive(mgl32.Vec3{0.2, 0.2, 0.5})
	assert.Equal(t, OutcomeFalling, tr.Settle())

	tr.MoveActive(mgl32.Vec3{0.2, 0.2, 0.3})
	assert.Equal(t, OutcomeLocked, tr.Settle())
	assert.Equal(t, 2, tr.SolidCount())
}

func TestSettleNeverLocksAtTheMouth(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{0, 0, 1.7})
	tr.MoveActive(mgl32.Vec3{0, 0, 1.9})

	assert.Equal(t, OutcomeFalling, tr.Settle())
}

func TestFilledColumnDiscardsPlacement(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{0, 0, 1.9})
	tr.MoveActive(mgl32.Vec3{0, 0, 1.7})

	assert.Equal(t, OutcomeDiscarded, tr.Settle())
	assert.Equal(t, 1, tr.SolidCount())
	assert.Len(t, tr.Slots(), 2)
	assert.Equal(t, tube.Start, tr.ActivePosition())
	assert.False(t, tr.Active().Solid)
}

func TestSettleDiscardsCubeInOccupiedCell(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)
	place(tr, mgl32.Vec3{-0.4, -0.4, 1.7})

	tr.MoveActive(mgl32.Vec3{-0.4, -0.4, 1.6999999})
	require.False(t, tube.ColumnFilled(tr.ActivePosition(), tr.Placed()))

	assert.Equal(t, OutcomeDiscarded, tr.Settle())
	assert.Equal(t, 1, tr.SolidCount())
	assert.Equal(t, tube.Start, tr.ActivePosition())
}

func TestStackedColumnDiscardsOverflow(t *testing.T) {
	tube := DefaultTube()
	tr := NewTracker(tube)

	for i := 0; i < tube.Depth-1; i++ {
		require.True(t, tr.TryDrop(), "drop %d", i)
		require.Equal(t, OutcomeLocked, tr.Settle(), "lock %d", i)
	}
	require.Equal(t, tube.Depth-1, tr.SolidCount())
	assert.InDelta(t, 1.7, tr.Placed()[tube.Depth-2].Z(), 1e-4)

	assert.False(t, tr.TryDrop(), "the top row blocks the drop")
	assert.False(t, tr.TryStepIn())

	tr.Fall()
	assert.Equal(t, OutcomeDiscarded, tr.Settle())
	assert.Equal(t, tube.Depth-1, tr.SolidCount())
	assert.Len(t, tr.Slots(), tube.Depth)
	assert.Equal(t, tube.Start, tr.ActivePosition())
}
