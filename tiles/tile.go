package tiles

import (
	"fmt"

	"github.com/automoto/notmarioland/gamemath"
)

// Kind identifies a tile variant.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	Wall2
	Wall3
	Wall4
	BackWall
	BackWall2
	BackWall3
	BackWall4
	DoorGeneric
	SecretDoorGeneric
	Door
	SecretDoor
	PlayerSpawn
	ExitAnchor
	Spikes
	OneWayUp
	OneWayDown
	OneWayLeft
	OneWayRight
	KeyRed
	KeyYellow
	KeyGreen
	KeyCyan
	KeyBlue
	KeyMagenta
	LockRed
	LockYellow
	LockGreen
	LockCyan
	LockBlue
	LockMagenta
	SawLauncherLeft
	SawLauncherRight
	SawLauncherUp
	SawLauncherDown
	SlowSawLauncherLeft
	SlowSawLauncherRight
	SlowSawLauncherUp
	SlowSawLauncherDown
	Secret
	Goal
	JumpArrow
	JumpArrowOutline
	Binocular
	IceCube
	Vanish

	kindCount
)

// Color is a key/lock colour.
type Color uint8

const (
	Red Color = iota
	Yellow
	Green
	Cyan
	Blue
	Magenta

	NumColors = 6
)

var colorNames = [NumColors]string{"red", "yellow", "green", "cyan", "blue", "magenta"}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", c)
}

// Tile is a single grid cell. Door is the target level index and is only
// meaningful for Door and SecretDoor.
type Tile struct {
	Kind Kind
	Door int
}

// Of returns a tile of the given kind.
func Of(k Kind) Tile {
	return Tile{Kind: k}
}

// NewDoor returns a resolved door leading to level index target.
func NewDoor(target int, secret bool) Tile {
	if secret {
		return Tile{Kind: SecretDoor, Door: target}
	}
	return Tile{Kind: Door, Door: target}
}

// KeyHolder answers whether at least one key of a colour is held.
type KeyHolder interface {
	HasKey(c Color) bool
}

func (t Tile) IsEmpty() bool { return t.Kind == Empty }

// KeyColor returns the colour of a key tile.
func (t Tile) KeyColor() (Color, bool) {
	if t.Kind >= KeyRed && t.Kind <= KeyMagenta {
		return Color(t.Kind - KeyRed), true
	}
	return 0, false
}

// LockColor returns the colour of a lock tile.
func (t Tile) LockColor() (Color, bool) {
	if t.Kind >= LockRed && t.Kind <= LockMagenta {
		return Color(t.Kind - LockRed), true
	}
	return 0, false
}

// Launcher returns the firing direction of a saw launcher and whether it is
// the slow variant.
func (t Tile) Launcher() (dir gamemath.Direction, slow, ok bool) {
	switch {
	case t.Kind >= SawLauncherLeft && t.Kind <= SawLauncherDown:
		return gamemath.Direction(t.Kind - SawLauncherLeft), false, true
	case t.Kind >= SlowSawLauncherLeft && t.Kind <= SlowSawLauncherDown:
		return gamemath.Direction(t.Kind - SlowSawLauncherLeft), true, true
	}
	return gamemath.NoDirection, false, false
}

// IsDoor reports whether the tile is a resolved door of either kind.
func (t Tile) IsDoor() bool {
	return t.Kind == Door || t.Kind == SecretDoor
}

// IsDoorPlaceholder reports whether the tile is an unresolved raw door.
func (t Tile) IsDoorPlaceholder() bool {
	return t.Kind == DoorGeneric || t.Kind == SecretDoorGeneric
}

func (t Tile) IsLethal() bool { return t.Kind == Spikes }
func (t Tile) IsGoal() bool   { return t.Kind == Goal }

// IsSolid evaluates the tile against a move from before to after in
// direction dir. cell is the box of the tile itself.
func (t Tile) IsSolid(before, after, cell gamemath.AABB, dir gamemath.Direction, keys KeyHolder) bool {
	switch t.Kind {
	case Wall, Wall2, Wall3, Wall4,
		SawLauncherLeft, SawLauncherRight, SawLauncherUp, SawLauncherDown,
		SlowSawLauncherLeft, SlowSawLauncherRight, SlowSawLauncherUp, SlowSawLauncherDown:
		return true
	case LockRed, LockYellow, LockGreen, LockCyan, LockBlue, LockMagenta:
		c, _ := t.LockColor()
		return keys == nil || !keys.HasKey(c)
	case OneWayUp:
		return dir == gamemath.Down && before.Bottom() <= cell.Y && after.Intersects(cell)
	case OneWayDown:
		return dir == gamemath.Up && before.Y >= cell.Bottom() && after.Intersects(cell)
	case OneWayLeft:
		return dir == gamemath.Right && before.Right() <= cell.X && after.Intersects(cell)
	case OneWayRight:
		return dir == gamemath.Left && before.X >= cell.Right() && after.Intersects(cell)
	}
	return false
}

// Wallslideable reports whether a solid tile may be slid down. Wall4 is the
// smooth wall.
func (t Tile) Wallslideable() bool {
	switch t.Kind {
	case Wall4, OneWayUp, OneWayDown, OneWayLeft, OneWayRight:
		return false
	}
	return true
}

func (t Tile) String() string {
	name := Name(t.Kind)
	if t.IsDoor() {
		return fmt.Sprintf("%s(%d)", name, t.Door)
	}
	return name
}
