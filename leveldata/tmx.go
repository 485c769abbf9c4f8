package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/tiles"
	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a level authored in Tiled. Every tile layer becomes a grid
// layer; tileset tiles name their tile kind with a "tile" property. Map
// properties carry the same keys as the text format, with doors given as a
// comma separated "doors" list.
func LoadTMX(fsys fs.FS, tmxPath string) (*LevelRaw, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &LoadError{Path: tmxPath, Msg: "load TMX", Err: err}
	}

	raw := &LevelRaw{
		Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		File: tmxPath,
	}

	layers := make([][][]tiles.Tile, 0, len(levelMap.Layers))
	for _, layer := range levelMap.Layers {
		grid := make([][]tiles.Tile, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			grid[y] = make([]tiles.Tile, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[i]
				if tile.IsNil() {
					continue
				}

				var name string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					name = tilesetTile.Properties.GetString("tile")
				}
				t, ok := tiles.Parse(name)
				if !ok {
					return nil, loadErr(tmxPath, 0, "layer %q tile at %d,%d has unknown tile %q", layer.Name, x, y, name)
				}
				grid[y][x] = t
			}
		}
		layers = append(layers, grid)
	}
	raw.Layers = normalise(layers)

	if props := levelMap.Properties; props != nil {
		if name := props.GetString("name"); name != "" {
			raw.Name = name
		}
		keys := []string{"theme", "slippery", "uncapped", "nowalljump", "forcejump", "invisible", "timescale"}
		for _, d := range gamemath.Directions {
			keys = append(keys, d.String())
		}
		for _, key := range keys {
			value := props.GetString(key)
			if value == "" {
				continue
			}
			if err := setProperty(raw, key, value); err != nil {
				return nil, &LoadError{Path: tmxPath, Msg: fmt.Sprintf("property %q", key), Err: err}
			}
		}
		if doors := props.GetString("doors"); doors != "" {
			for _, d := range strings.Split(doors, ",") {
				if err := setProperty(raw, "door", strings.TrimSpace(d)); err != nil {
					return nil, &LoadError{Path: tmxPath, Msg: "property \"doors\"", Err: err}
				}
			}
		}
	}

	if err := finalize(raw); err != nil {
		return nil, err
	}
	return raw, nil
}
