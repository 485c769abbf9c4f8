package tiles

import (
	"testing"

	"github.com/automoto/notmarioland/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyRing [NumColors]int

func (k keyRing) HasKey(c Color) bool { return k[c] > 0 }

func TestParseNames(t *testing.T) {
	for k := Empty; k < kindCount; k++ {
		if k == Door || k == SecretDoor {
			continue
		}
		t.Run(Name(k), func(t *testing.T) {
			got, ok := Parse(Name(k))
			require.True(t, ok)
			assert.Equal(t, k, got.Kind)
		})
	}

	door, ok := Parse("door")
	require.True(t, ok)
	assert.True(t, door.IsDoorPlaceholder())

	spikes, ok := Parse("spike")
	require.True(t, ok)
	assert.Equal(t, Spikes, spikes.Kind)

	_, ok = Parse("lava")
	assert.False(t, ok)
}

func TestKeyAndLockColors(t *testing.T) {
	c, ok := Of(KeyCyan).KeyColor()
	require.True(t, ok)
	assert.Equal(t, Cyan, c)

	c, ok = Of(LockMagenta).LockColor()
	require.True(t, ok)
	assert.Equal(t, Magenta, c)

	_, ok = Of(Wall).KeyColor()
	assert.False(t, ok)
}

func TestLauncher(t *testing.T) {
	dir, slow, ok := Of(SlowSawLauncherUp).Launcher()
	require.True(t, ok)
	assert.True(t, slow)
	assert.Equal(t, gamemath.Up, dir)

	dir, slow, ok = Of(SawLauncherLeft).Launcher()
	require.True(t, ok)
	assert.False(t, slow)
	assert.Equal(t, gamemath.Left, dir)
}

func TestLockSolidity(t *testing.T) {
	cell := gamemath.TileBox(1, 0)
	box := cell.Offset(-10, 0)
	lock := Of(LockRed)

	var keys keyRing
	assert.True(t, lock.IsSolid(box, box, cell, gamemath.Right, keys))
	keys[Red] = 1
	assert.False(t, lock.IsSolid(box, box, cell, gamemath.Right, keys))
	keys[Red] = 0
	keys[Blue] = 3
	assert.True(t, lock.IsSolid(box, box, cell, gamemath.Right, keys))
}

// The blocking rule of each one-way orientation: a tile named after a
// direction lets movers travel that way and stops movers coming the other
// way that started clear of the tile.
func TestOneWaySolidity(t *testing.T) {
	ts := gamemath.TileSize
	cell := gamemath.TileBox(1, 1)

	above := gamemath.AABB{X: ts, Y: 0, W: ts, H: ts}
	below := gamemath.AABB{X: ts, Y: 2 * ts, W: ts, H: ts}
	leftOf := gamemath.AABB{X: 0, Y: ts, W: ts, H: ts}
	rightOf := gamemath.AABB{X: 2 * ts, Y: ts, W: ts, H: ts}

	tests := []struct {
		name   string
		kind   Kind
		before gamemath.AABB
		dir    gamemath.Direction
		want   bool
	}{
		{"up lands from above", OneWayUp, above, gamemath.Down, true},
		{"up passes from below", OneWayUp, below, gamemath.Up, false},
		{"up ignores sideways", OneWayUp, leftOf, gamemath.Right, false},
		{"down blocks from below", OneWayDown, below, gamemath.Up, true},
		{"down passes from above", OneWayDown, above, gamemath.Down, false},
		{"left blocks from left", OneWayLeft, leftOf, gamemath.Right, true},
		{"left passes from right", OneWayLeft, rightOf, gamemath.Left, false},
		{"right blocks from right", OneWayRight, rightOf, gamemath.Left, true},
		{"right passes from left", OneWayRight, leftOf, gamemath.Right, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			after := tt.before.Offset(dx*100, dy*100)
			assert.Equal(t, tt.want, Of(tt.kind).IsSolid(tt.before, after, cell, tt.dir, nil))
		})
	}

	t.Run("already overlapping is not blocked", func(t *testing.T) {
		inside := cell.Offset(0, -100)
		assert.False(t, Of(OneWayUp).IsSolid(inside, inside.Offset(0, 50), cell, gamemath.Down, nil))
	})
}

func TestPlainSolidity(t *testing.T) {
	box := gamemath.TileBox(0, 0)
	assert.True(t, Of(Wall3).IsSolid(box, box, box, gamemath.Down, nil))
	assert.True(t, Of(SawLauncherDown).IsSolid(box, box, box, gamemath.Down, nil))
	assert.False(t, Of(BackWall).IsSolid(box, box, box, gamemath.Down, nil))
	assert.False(t, NewDoor(2, false).IsSolid(box, box, box, gamemath.Down, nil))
	assert.False(t, Of(Spikes).IsSolid(box, box, box, gamemath.Down, nil))
	assert.False(t, Of(Wall4).Wallslideable())
	assert.True(t, Of(Wall).Wallslideable())
}

func TestGrid(t *testing.T) {
	g := NewGrid(2, 3, 4)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())

	g.Set(1, 2, 3, Of(Goal))
	g.Set(1, 9, 9, Of(Goal))
	assert.Equal(t, Of(Goal), g.At(1, 2, 3))
	assert.Equal(t, Tile{}, g.At(1, 9, 9))
	assert.Equal(t, 1, g.Count(Tile.IsGoal))

	c := g.Clone()
	c.Set(1, 2, 3, Tile{})
	assert.Equal(t, Of(Goal), g.At(1, 2, 3))
	assert.Equal(t, "door(4)", NewDoor(4, false).String())
}
