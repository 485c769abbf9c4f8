// Package leveldata parses level, levelset and theme files and answers
// questions about the screen graph. It has no dependencies on ebitengine,
// donburi, or resolv. Pure data only.
package leveldata

import (
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
)

// Ref is a reference to a level or theme, written either as an index or a
// name. Index is -1 until resolved.
type Ref struct {
	Name  string
	Index int
	Set   bool
}

// Offset is a side offset along a screen edge, in sub-pixel units.
type Offset struct {
	Value int
	OK    bool
}

// Spawn is the player marker cell.
type Spawn struct {
	Col, Row int
	OK       bool
}

// LevelRaw is the immutable layout of one screen.
type LevelRaw struct {
	Name      string
	File      string
	Layers    tiles.Grid
	Exits     [4]Ref // indexed by gamemath.Direction
	Doors     []Ref  // matched positionally to door placeholders in read order
	Theme     Ref
	Modifiers state.Modifiers
	Offsets   [4]Offset // indexed by gamemath.Direction
	Spawn     Spawn
	Secrets   int
}

// Width returns the level width in tiles.
func (l *LevelRaw) Width() int { return l.Layers.Width() }

// Height returns the level height in tiles.
func (l *LevelRaw) Height() int { return l.Layers.Height() }

// Exit returns the neighbouring level index on a side.
func (l *LevelRaw) Exit(d gamemath.Direction) (int, bool) {
	e := l.Exits[d]
	if !e.Set || e.Index < 0 {
		return 0, false
	}
	return e.Index, true
}

// BGLayer is a parallax background layer. Offsets and factors use the
// tile as unit.
type BGLayer struct {
	Image   string
	OffX    int
	OffY    int
	ParaX   int
	ParaY   int
	ScrollX int
	ScrollY int
	ModX    int
	ModY    int
}

// Theme is a visual theme: background layers and wall textures keyed by
// slot name (wall_1 .. back_wall_4).
type Theme struct {
	Name     string
	BG       []BGLayer
	Textures map[string]string
}

// Levelset is an ordered collection of levels and themes. A nil theme entry
// is the default theme.
type Levelset struct {
	Name        string
	Dir         string
	Levels      []*LevelRaw
	Themes      []*Theme
	SecretCount int

	byName map[string]int
}

// Level returns the level at index i.
func (ls *Levelset) Level(i int) *LevelRaw {
	if i < 0 || i >= len(ls.Levels) {
		return nil
	}
	return ls.Levels[i]
}

// Index looks a level up by file base-name or display name.
func (ls *Levelset) Index(name string) (int, bool) {
	i, ok := ls.byName[name]
	return i, ok
}

// Theme returns the theme at index i, or nil for the default theme.
func (ls *Levelset) Theme(i int) *Theme {
	if i < 0 || i >= len(ls.Themes) {
		return nil
	}
	return ls.Themes[i]
}
