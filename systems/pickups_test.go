package systems

import (
	"testing"

	"github.com/automoto/notmarioland/collision"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
	"github.com/stretchr/testify/assert"
)

const levelIndex = 3

func TestCollectKeys(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		check    func(t *testing.T, gs *state.GlobalState, grid tiles.Grid)
		recorded bool
	}{
		{
			name: "key",
			row:  ".k.",
			check: func(t *testing.T, gs *state.GlobalState, grid tiles.Grid) {
				assert.Equal(t, 1, gs.Keys[tiles.Red])
				assert.True(t, grid.At(0, 0, 1).IsEmpty())
			},
			recorded: true,
		},
		{
			name: "secret",
			row:  ".S.",
			check: func(t *testing.T, gs *state.GlobalState, grid tiles.Grid) {
				assert.Equal(t, 1, gs.Secrets)
				assert.True(t, grid.At(0, 0, 1).IsEmpty())
			},
			recorded: true,
		},
		{
			name: "jump arrow",
			row:  ".j.",
			check: func(t *testing.T, gs *state.GlobalState, grid tiles.Grid) {
				assert.Equal(t, 1, gs.Jumps)
				assert.Equal(t, tiles.JumpArrowOutline, grid.At(0, 0, 1).Kind)
				assert.Equal(t, []state.ArrowCell{{Row: 0, Col: 1}}, gs.SpentArrows)
			},
		},
		{
			name: "ice cube",
			row:  ".i.",
			check: func(t *testing.T, gs *state.GlobalState, grid tiles.Grid) {
				assert.True(t, gs.Modifiers.Slippery)
				assert.True(t, grid.At(0, 0, 1).IsEmpty())
			},
		},
		{
			name: "vanish",
			row:  ".v.",
			check: func(t *testing.T, gs *state.GlobalState, grid tiles.Grid) {
				assert.True(t, gs.Modifiers.Invisible)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := gridFrom(t, tt.row)
			gs := state.New()

			CollectKeys(gamemath.AABB{X: ts + 100, Y: 0, W: ts, H: ts}, grid, levelIndex, gs)
			tt.check(t, gs, grid)

			override, ok := gs.Changed(state.TileKey{Level: levelIndex, Row: 0, Col: 1})
			assert.Equal(t, tt.recorded, ok)
			if ok {
				assert.True(t, override.IsEmpty())
			}
		})
	}
}

func TestCollectKeysIsConserved(t *testing.T) {
	grid := gridFrom(t, "kk")
	gs := state.New()
	box := gamemath.AABB{X: 100, Y: 0, W: ts, H: ts}

	CollectKeys(box, grid, levelIndex, gs)
	CollectKeys(box, grid, levelIndex, gs)

	assert.Equal(t, 2, gs.Keys[tiles.Red])
	assert.Len(t, gs.ChangedTiles, 2)
}

func TestCollectDoorsFloodFill(t *testing.T) {
	grid := gridFrom(t,
		"LLLLL.L",
		"......B",
	)
	gs := state.New()
	gs.Keys[tiles.Red] = 1

	CollectDoors(gamemath.TileBox(0, 0), grid, levelIndex, gs)

	assert.Equal(t, 0, gs.Keys[tiles.Red])
	for col := 0; col < 5; col++ {
		assert.True(t, grid.At(0, 0, col).IsEmpty(), "col %d", col)
		_, ok := gs.Changed(state.TileKey{Level: levelIndex, Row: 0, Col: col})
		assert.True(t, ok, "col %d recorded", col)
	}
	assert.Equal(t, tiles.LockRed, grid.At(0, 0, 6).Kind, "disconnected lock stays")
	assert.Equal(t, tiles.LockBlue, grid.At(0, 1, 6).Kind)
	assert.Len(t, gs.ChangedTiles, 5)
}

func TestCollectDoorsNeedsKey(t *testing.T) {
	grid := gridFrom(t, "LL")
	gs := state.New()
	gs.Keys[tiles.Blue] = 2

	CollectDoors(gamemath.TileBox(0, 0), grid, levelIndex, gs)

	assert.Equal(t, tiles.LockRed, grid.At(0, 0, 0).Kind)
	assert.Equal(t, 2, gs.Keys[tiles.Blue])
	assert.Empty(t, gs.ChangedTiles)
}

func TestFloodClearStopsAtDifferentTiles(t *testing.T) {
	grid := gridFrom(t,
		"LBL",
		"LBL",
		"LLL",
	)
	gs := state.New()

	n := FloodClear(grid, collision.Cell{Row: 0, Col: 0}, levelIndex, gs)

	assert.Equal(t, 7, n)
	assert.Equal(t, tiles.LockBlue, grid.At(0, 0, 1).Kind)
	assert.Equal(t, tiles.LockBlue, grid.At(0, 1, 1).Kind)
}

func TestFloodClearLargeRegion(t *testing.T) {
	grid := tiles.NewGrid(1, 200, 200)
	grid.Each(func(layer, row, col int, _ tiles.Tile) {
		grid.Set(layer, row, col, tiles.Of(tiles.LockGreen))
	})
	gs := state.New()

	n := FloodClear(grid, collision.Cell{Row: 100, Col: 100}, levelIndex, gs)

	assert.Equal(t, 200*200, n)
	assert.Zero(t, grid.Count(func(t tiles.Tile) bool { return !t.IsEmpty() }))
}
