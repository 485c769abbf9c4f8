// Package collision implements the tile-grid scan shared by solidity,
// hazard, goal, pickup and wall-slide checks.
package collision

import (
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/tiles"
)

// Predicate is evaluated for one tile. cell is the tile's box.
type Predicate func(t tiles.Tile, cell gamemath.AABB) bool

// Cell addresses one tile in a grid layer.
type Cell struct {
	Layer, Row, Col int
}

// samples returns the offsets at which a span of length size starting at
// origin is sampled: one per tile stride, plus the far edge when the span
// does not end on a tile boundary.
func samples(origin, size int) []int {
	var out []int
	if (origin+size)%gamemath.TileSize != 0 {
		for d := 0; d <= size; d += gamemath.TileSize {
			out = append(out, d)
		}
		if size%gamemath.TileSize != 0 {
			out = append(out, size)
		}
		return out
	}
	for d := 0; d < size; d += gamemath.TileSize {
		out = append(out, d)
	}
	return out
}

// EachCell calls fn for every in-bounds cell of every layer that box
// overlaps. Returning true from fn stops the scan and is returned.
func EachCell(box gamemath.AABB, grid tiles.Grid, fn func(c Cell, t tiles.Tile) bool) bool {
	for _, dx := range samples(box.X, box.W) {
		for _, dy := range samples(box.Y, box.H) {
			col := gamemath.TileOf(box.X + dx)
			row := gamemath.TileOf(box.Y + dy)
			if !grid.InBounds(col, row) {
				continue
			}
			for l := range grid {
				if fn(Cell{Layer: l, Row: row, Col: col}, grid[l][row][col]) {
					return true
				}
			}
		}
	}
	return false
}

// CheckTilemap reports whether any tile the box overlaps satisfies pred.
func CheckTilemap(box gamemath.AABB, grid tiles.Grid, pred Predicate) bool {
	return EachCell(box, grid, func(c Cell, t tiles.Tile) bool {
		return pred(t, gamemath.TileBox(c.Col, c.Row))
	})
}

// Solid builds the predicate used to resolve a move from before to after.
func Solid(before, after gamemath.AABB, dir gamemath.Direction, keys tiles.KeyHolder) Predicate {
	return func(t tiles.Tile, cell gamemath.AABB) bool {
		return t.IsSolid(before, after, cell, dir, keys)
	}
}

// Lethal matches hazard tiles.
func Lethal(t tiles.Tile, _ gamemath.AABB) bool {
	return t.IsLethal()
}

// Goal matches the win tile.
func Goal(t tiles.Tile, _ gamemath.AABB) bool {
	return t.IsGoal()
}

// Kind matches a single tile kind.
func Kind(k tiles.Kind) Predicate {
	return func(t tiles.Tile, _ gamemath.AABB) bool {
		return t.Kind == k
	}
}
