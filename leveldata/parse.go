package leveldata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/tiles"
)

const separator = "==="

// section is a block of lines between separators. line is the 1-based file
// line of the first entry.
type section struct {
	line  int
	lines []string
}

// splitSections normalises line endings, trims the document and splits it
// on separator lines.
func splitSections(text string) []section {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	trimmed := strings.TrimLeft(text, " \t\n")
	// Reported line numbers count the blank lines dropped by the trim.
	first := 1 + strings.Count(text[:len(text)-len(trimmed)], "\n")
	text = strings.TrimSpace(trimmed)
	if text == "" {
		return nil
	}

	cur := section{line: first}
	var out []section
	for i, l := range strings.Split(text, "\n") {
		if strings.TrimRight(l, " \t") == separator {
			out = append(out, cur)
			cur = section{line: first + i + 1}
			continue
		}
		cur.lines = append(cur.lines, l)
	}
	return append(out, cur)
}

// splitPair splits "key: value" on the first colon.
func splitPair(line string) (string, string, bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

func parseRef(v string) (Ref, error) {
	if v == "" {
		return Ref{}, fmt.Errorf("empty reference")
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return Ref{}, fmt.Errorf("negative index %d", n)
		}
		return Ref{Name: v, Index: n, Set: true}, nil
	}
	return Ref{Name: v, Index: -1, Set: true}, nil
}

func parseFlag(v string) (bool, error) {
	if v == "" {
		return true, nil
	}
	return strconv.ParseBool(v)
}

// ParseLevel reads a level in the text format. path is used for error
// messages and recorded as the level's file.
func ParseLevel(r io.Reader, path string) (*LevelRaw, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: path, Msg: "read level", Err: err}
	}

	sections := splitSections(string(data))
	if len(sections) < 4 {
		return nil, loadErr(path, 0, "expected name, tile map, properties and at least one layer, found %d sections", len(sections))
	}

	raw := &LevelRaw{File: path}
	raw.Name = strings.TrimSpace(strings.Join(sections[0].lines, " "))

	charMap, err := parseCharMap(sections[1], path)
	if err != nil {
		return nil, err
	}
	if err := parseProperties(raw, sections[2], path); err != nil {
		return nil, err
	}

	layers := make([][][]tiles.Tile, 0, len(sections)-3)
	for _, s := range sections[3:] {
		var layer [][]tiles.Tile
		for _, l := range s.lines {
			row := make([]tiles.Tile, 0, len(l))
			for _, ch := range l {
				row = append(row, charMap[ch])
			}
			layer = append(layer, row)
		}
		layers = append(layers, layer)
	}
	raw.Layers = normalise(layers)

	if err := finalize(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func parseCharMap(s section, path string) (map[rune]tiles.Tile, error) {
	m := make(map[rune]tiles.Tile, len(s.lines))
	for i, l := range s.lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		key, name, ok := splitPair(l)
		if !ok {
			return nil, loadErr(path, s.line+i, "tile mapping %q has no ':'", l)
		}
		ch := ' '
		for _, r := range key {
			ch = r
			break
		}
		t, ok := tiles.Parse(name)
		if !ok {
			return nil, loadErr(path, s.line+i, "unknown tile %q", name)
		}
		m[ch] = t
	}
	return m, nil
}

func parseProperties(raw *LevelRaw, s section, path string) error {
	for i, l := range s.lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		line := s.line + i
		key, value, ok := splitPair(l)
		if !ok {
			return loadErr(path, line, "property %q has no ':'", l)
		}
		if err := setProperty(raw, key, value); err != nil {
			return &LoadError{Path: path, Line: line, Msg: fmt.Sprintf("property %q", key), Err: err}
		}
	}
	return nil
}

// setProperty applies one key-value entry. Unknown keys are ignored.
func setProperty(raw *LevelRaw, key, value string) error {
	var err error
	switch key {
	case "left", "right", "up", "down":
		var d gamemath.Direction
		for _, dir := range gamemath.Directions {
			if dir.String() == key {
				d = dir
			}
		}
		raw.Exits[d], err = parseRef(value)
	case "door":
		var ref Ref
		if ref, err = parseRef(value); err == nil {
			raw.Doors = append(raw.Doors, ref)
		}
	case "theme":
		raw.Theme, err = parseRef(value)
	case "slippery":
		raw.Modifiers.Slippery, err = parseFlag(value)
	case "uncapped":
		raw.Modifiers.Uncapped, err = parseFlag(value)
	case "nowalljump":
		raw.Modifiers.NoWallJump, err = parseFlag(value)
	case "forcejump":
		raw.Modifiers.ForceJump, err = parseFlag(value)
	case "invisible":
		raw.Modifiers.Invisible, err = parseFlag(value)
	case "timescale":
		var n int
		if n, err = strconv.Atoi(value); err == nil && n < 1 {
			err = fmt.Errorf("must be at least 1")
		}
		raw.Modifiers.TimeScale = n
	}
	return err
}

// normalise pads ragged rows and layers with empty tiles so every layer has
// the same dimensions.
func normalise(layers [][][]tiles.Tile) tiles.Grid {
	rows, cols := 0, 0
	for _, layer := range layers {
		rows = max(rows, len(layer))
		for _, row := range layer {
			cols = max(cols, len(row))
		}
	}

	g := tiles.NewGrid(len(layers), rows, cols)
	for l, layer := range layers {
		for r, row := range layer {
			copy(g[l][r], row)
		}
	}
	return g
}

// finalize validates a parsed level and derives its spawn, side offsets and
// secret count.
func finalize(raw *LevelRaw) error {
	if raw.Modifiers.TimeScale == 0 {
		raw.Modifiers.TimeScale = 1
	}
	if raw.Layers.Width() == 0 || raw.Layers.Height() == 0 {
		return loadErr(raw.File, 0, "level has no tiles")
	}

	w, h := raw.Width(), raw.Height()
	doors := 0
	var err error
	raw.Layers.Each(func(_, row, col int, t tiles.Tile) {
		if err != nil {
			return
		}
		switch {
		case t.IsDoorPlaceholder():
			doors++
		case t.Kind == tiles.Secret:
			raw.Secrets++
		case t.Kind == tiles.PlayerSpawn:
			if !raw.Spawn.OK {
				raw.Spawn = Spawn{Col: col, Row: row, OK: true}
			}
		case t.Kind == tiles.ExitAnchor:
			var side gamemath.Direction
			value := col * gamemath.TileSize
			switch {
			case col == 0:
				side, value = gamemath.Left, row*gamemath.TileSize
			case col == w-1:
				side, value = gamemath.Right, row*gamemath.TileSize
			case row == 0:
				side = gamemath.Up
			case row == h-1:
				side = gamemath.Down
			default:
				// Anchors inside the level mark nothing.
				return
			}
			if raw.Offsets[side].OK {
				err = loadErr(raw.File, 0, "more than one exit anchor on the %s edge", side)
				return
			}
			raw.Offsets[side] = Offset{Value: value, OK: true}
		}
	})
	if err != nil {
		return err
	}

	if doors != len(raw.Doors) {
		return loadErr(raw.File, 0, "%d door tiles but %d door entries", doors, len(raw.Doors))
	}
	if !raw.Spawn.OK {
		return loadErr(raw.File, 0, "level has no player tile")
	}
	return nil
}
