package systems

import (
	"github.com/automoto/notmarioland/collision"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
	"github.com/zyedidia/generic/mapset"
)

// CollectKeys picks up every key, secret, jump arrow and modifier pickup
// the box overlaps in level.
func CollectKeys(box gamemath.AABB, grid tiles.Grid, level int, gs *state.GlobalState) {
	collision.EachCell(box, grid, func(c collision.Cell, t tiles.Tile) bool {
		key := state.TileKey{Level: level, Layer: c.Layer, Row: c.Row, Col: c.Col}
		if color, ok := t.KeyColor(); ok {
			gs.Keys[color]++
			clearCell(grid, key, gs)
			return false
		}
		switch t.Kind {
		case tiles.Secret:
			gs.Secrets++
			clearCell(grid, key, gs)
		case tiles.JumpArrow:
			gs.Jumps++
			grid.Set(c.Layer, c.Row, c.Col, tiles.Of(tiles.JumpArrowOutline))
			gs.PushArrow(state.ArrowCell{Layer: c.Layer, Row: c.Row, Col: c.Col})
		case tiles.IceCube:
			gs.Modifiers.Slippery = true
			grid.Set(c.Layer, c.Row, c.Col, tiles.Tile{})
		case tiles.Vanish:
			gs.Modifiers.Invisible = true
			grid.Set(c.Layer, c.Row, c.Col, tiles.Tile{})
		}
		return false
	})
}

// CollectDoors opens every lock the box overlaps while a matching key is
// held. One key clears the whole connected run of identical lock tiles.
func CollectDoors(box gamemath.AABB, grid tiles.Grid, level int, gs *state.GlobalState) {
	collision.EachCell(box, grid, func(c collision.Cell, t tiles.Tile) bool {
		color, ok := t.LockColor()
		if !ok || gs.Keys[color] < 1 {
			return false
		}
		gs.Keys[color]--
		FloodClear(grid, c, level, gs)
		return false
	})
}

// FloodClear empties the 4-connected region of tiles equal to the start
// cell within its layer, recording each cleared cell.
func FloodClear(grid tiles.Grid, start collision.Cell, level int, gs *state.GlobalState) int {
	target := grid.At(start.Layer, start.Row, start.Col)
	if target.IsEmpty() {
		return 0
	}

	visited := mapset.New[collision.Cell]()
	stack := []collision.Cell{start}
	cleared := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(c) {
			continue
		}
		visited.Put(c)
		if !grid.InBounds(c.Col, c.Row) || grid.At(c.Layer, c.Row, c.Col) != target {
			continue
		}
		clearCell(grid, state.TileKey{Level: level, Layer: c.Layer, Row: c.Row, Col: c.Col}, gs)
		cleared++
		for _, d := range gamemath.Directions {
			dx, dy := d.Delta()
			stack = append(stack, collision.Cell{Layer: c.Layer, Row: c.Row + dy, Col: c.Col + dx})
		}
	}
	return cleared
}

func clearCell(grid tiles.Grid, key state.TileKey, gs *state.GlobalState) {
	grid.Set(key.Layer, key.Row, key.Col, tiles.Tile{})
	gs.Record(key, tiles.Tile{})
}
