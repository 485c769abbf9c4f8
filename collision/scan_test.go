package collision

import (
	"testing"

	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/tiles"
	"github.com/stretchr/testify/assert"
)

const ts = gamemath.TileSize

// gridFrom builds a single-layer grid from rows where '#' is a wall and
// '^' spikes.
func gridFrom(rows ...string) tiles.Grid {
	g := tiles.NewGrid(1, len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case '#':
				g[0][r][c] = tiles.Of(tiles.Wall)
			case '^':
				g[0][r][c] = tiles.Of(tiles.Spikes)
			}
		}
	}
	return g
}

func TestSamples(t *testing.T) {
	assert.Equal(t, []int{0}, samples(0, ts))
	assert.Equal(t, []int{0, ts}, samples(10, ts))
	assert.Equal(t, []int{0, ts / 2}, samples(ts-10, ts/2))
	assert.Equal(t, []int{0, ts}, samples(0, 2*ts))
}

func TestCheckTilemap(t *testing.T) {
	g := gridFrom(
		"....",
		".#..",
		"....",
	)
	solid := func(t tiles.Tile, _ gamemath.AABB) bool { return t.Kind == tiles.Wall }

	tests := []struct {
		name string
		box  gamemath.AABB
		want bool
	}{
		{"aligned on wall", gamemath.TileBox(1, 1), true},
		{"aligned next to wall", gamemath.TileBox(0, 1), false},
		{"aligned above wall", gamemath.TileBox(1, 0), false},
		{"one unit into wall from left", gamemath.TileBox(0, 1).Offset(1, 0), true},
		{"one unit into wall from above", gamemath.TileBox(1, 0).Offset(0, 1), true},
		{"diagonal overlap", gamemath.TileBox(0, 0).Offset(1, 1), true},
		{"small box inside free cell", gamemath.AABB{X: 10, Y: 10, W: 100, H: 100}, false},
		{"small box crossing into wall", gamemath.AABB{X: ts - 50, Y: ts + 10, W: 100, H: 100}, true},
		{"out of bounds is not solid", gamemath.TileBox(10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckTilemap(tt.box, g, solid))
		})
	}
}

func TestCheckTilemapAllLayers(t *testing.T) {
	g := tiles.NewGrid(3, 1, 1)
	g[2][0][0] = tiles.Of(tiles.Spikes)

	assert.True(t, CheckTilemap(gamemath.TileBox(0, 0), g, Lethal))
	assert.False(t, CheckTilemap(gamemath.TileBox(0, 0), g, Goal))
}

func TestEachCellVisitsOverlap(t *testing.T) {
	g := tiles.NewGrid(1, 3, 3)
	var seen []Cell
	EachCell(gamemath.TileBox(0, 0).Offset(ts/2, ts/2), g, func(c Cell, _ tiles.Tile) bool {
		seen = append(seen, c)
		return false
	})
	assert.ElementsMatch(t, []Cell{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1},
	}, seen)
}

func TestSolidPredicate(t *testing.T) {
	g := gridFrom("#")
	before := gamemath.TileBox(0, 0).Offset(-ts, 0)
	after := before.Offset(10, 0)
	assert.True(t, CheckTilemap(after, g, Solid(before, after, gamemath.Right, nil)))
	assert.False(t, CheckTilemap(after, g, Kind(tiles.Goal)))
}
