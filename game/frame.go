package game

import (
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/level"
	"github.com/automoto/notmarioland/leveldata"
	"github.com/automoto/notmarioland/tiles"
)

// HUD is the run summary shown on screen.
type HUD struct {
	Keys        [tiles.NumColors]int
	Secrets     int
	SecretTotal int
	Deaths      int
	Timer       int
	Jumps       int
}

// Neighbour is a level drawn around the current one.
type Neighbour struct {
	leveldata.Placement
	Tiles tiles.Grid
}

// Frame is everything a renderer needs for one frame. It shares tile grids
// with the session and must not be modified.
type Frame struct {
	Level      int
	Name       string
	Tiles      tiles.Grid
	Neighbours []Neighbour
	Objects    []level.ObjectView

	// Theme is nil for the default theme. ThemeOffset is the origin of
	// the level that declared it, relative to the current level.
	Theme       *leveldata.Theme
	ThemeOffset leveldata.Placement

	HUD        HUD
	Mode       Mode
	Transition Transition

	Binocular bool
	Invisible bool
}

// Frame returns a snapshot of the session for drawing.
func (s *Session) Frame() Frame {
	l := s.Level
	f := Frame{
		Level:      l.Index,
		Name:       l.Raw.Name,
		Tiles:      l.Tiles,
		Neighbours: s.neighbours,
		Objects:    l.Objects(),
		HUD: HUD{
			Keys:        s.State.Keys,
			Secrets:     s.State.Secrets,
			SecretTotal: s.Levels.SecretCount,
			Deaths:      s.State.Deaths,
			Timer:       s.State.Timer,
			Jumps:       s.State.Jumps,
		},
		Mode:       s.mode,
		Transition: s.transition,
		Binocular:  l.Binocular(),
		Invisible:  s.State.Modifiers.Invisible,
	}
	if idx, offset, ok := s.Levels.FindTheme(l.Index); ok {
		f.Theme = s.Levels.Theme(idx)
		f.ThemeOffset = offset
	}
	return f
}

// buildNeighbours resolves the levels reachable from the current one that
// fall within a screen of its edges.
func (s *Session) buildNeighbours() []Neighbour {
	l := s.Level
	mx := gamemath.ScreenWidth * gamemath.PixelSize
	my := gamemath.ScreenHeight * gamemath.PixelSize
	view := gamemath.AABB{
		X: -mx,
		Y: -my,
		W: l.PixelWidth() + 2*mx,
		H: l.PixelHeight() + 2*my,
	}

	var out []Neighbour
	for _, p := range s.Levels.Walk(l.Index) {
		if p.Index == l.Index {
			continue
		}
		raw := s.Levels.Level(p.Index)
		box := gamemath.AABB{
			X: p.X,
			Y: p.Y,
			W: raw.Width() * gamemath.TileSize,
			H: raw.Height() * gamemath.TileSize,
		}
		if !box.Intersects(view) {
			continue
		}
		out = append(out, Neighbour{Placement: p, Tiles: raw.Resolve(p.Index, s.State)})
	}
	return out
}
