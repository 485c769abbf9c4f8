package leveldata

import (
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
)

// Overlay supplies per-run tile overrides.
type Overlay interface {
	Changed(k state.TileKey) (tiles.Tile, bool)
}

// Resolve returns the playable grid of the level stored at index: door
// placeholders carry their targets, spawn and anchor markers are cleared
// and overrides from overlay are applied. overlay may be nil.
func (l *LevelRaw) Resolve(index int, overlay Overlay) tiles.Grid {
	g := l.Layers.Clone()
	door := 0
	g.Each(func(layer, row, col int, t tiles.Tile) {
		switch t.Kind {
		case tiles.DoorGeneric, tiles.SecretDoorGeneric:
			target := -1
			if door < len(l.Doors) {
				target = l.Doors[door].Index
			}
			door++
			g[layer][row][col] = tiles.NewDoor(target, t.Kind == tiles.SecretDoorGeneric)
		case tiles.PlayerSpawn, tiles.ExitAnchor:
			g[layer][row][col] = tiles.Tile{}
		}
		if overlay == nil {
			return
		}
		if o, ok := overlay.Changed(state.TileKey{Level: index, Layer: layer, Row: row, Col: col}); ok {
			g[layer][row][col] = o
		}
	})
	return g
}
