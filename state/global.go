// Package state holds the cross-screen run state shared by every level.
package state

import (
	"github.com/automoto/notmarioland/tiles"
)

// TileKey addresses one cell of one level.
type TileKey struct {
	Level, Layer, Row, Col int
}

// ArrowCell addresses a jump arrow on the active screen.
type ArrowCell struct {
	Layer, Row, Col int
}

// Modifiers tune player physics and presentation.
type Modifiers struct {
	Slippery   bool
	Uncapped   bool
	NoWallJump bool
	ForceJump  bool
	Invisible  bool
	TimeScale  int
}

// DefaultModifiers returns the neutral bundle.
func DefaultModifiers() Modifiers {
	return Modifiers{TimeScale: 1}
}

// GlobalState is the run state owned by the session and passed explicitly
// into every update.
type GlobalState struct {
	ChangedTiles map[TileKey]tiles.Tile
	Keys         [tiles.NumColors]int
	Timer        int
	Secrets      int
	Deaths       int
	Jumps        int
	SpentArrows  []ArrowCell
	Modifiers    Modifiers
}

func New() *GlobalState {
	return &GlobalState{
		ChangedTiles: make(map[TileKey]tiles.Tile),
		Modifiers:    DefaultModifiers(),
	}
}

// HasKey implements tiles.KeyHolder.
func (gs *GlobalState) HasKey(c tiles.Color) bool {
	return gs.Keys[c] > 0
}

// Record stores a permanent tile override.
func (gs *GlobalState) Record(k TileKey, t tiles.Tile) {
	gs.ChangedTiles[k] = t
}

// Changed returns the override for a cell, if any.
func (gs *GlobalState) Changed(k TileKey) (tiles.Tile, bool) {
	t, ok := gs.ChangedTiles[k]
	return t, ok
}

// PushArrow enqueues a collected jump arrow.
func (gs *GlobalState) PushArrow(c ArrowCell) {
	gs.SpentArrows = append(gs.SpentArrows, c)
}

// PopArrow releases the oldest collected jump arrow.
func (gs *GlobalState) PopArrow() (ArrowCell, bool) {
	if len(gs.SpentArrows) == 0 {
		return ArrowCell{}, false
	}
	c := gs.SpentArrows[0]
	gs.SpentArrows = gs.SpentArrows[1:]
	return c, true
}

// ArrowInFlight reports whether c is still queued.
func (gs *GlobalState) ArrowInFlight(c ArrowCell) bool {
	for _, a := range gs.SpentArrows {
		if a == c {
			return true
		}
	}
	return false
}

// EnterScreen clears the per-screen jump economy and applies the level's
// modifier defaults.
func (gs *GlobalState) EnterScreen(defaults Modifiers) {
	gs.Jumps = 0
	gs.SpentArrows = nil
	if defaults.TimeScale < 1 {
		defaults.TimeScale = 1
	}
	gs.Modifiers = defaults
}

// Reset clears the run.
func (gs *GlobalState) Reset() {
	*gs = *New()
}
