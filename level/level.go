// Package level holds the live state of the screen the player is on: the
// resolved tile grid and the ordered entity list.
package level

import (
	"fmt"

	"github.com/automoto/notmarioland/components"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/input"
	"github.com/automoto/notmarioland/leveldata"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/systems"
	"github.com/automoto/notmarioland/systems/factory"
	"github.com/automoto/notmarioland/tiles"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectKind discriminates the entities a level holds.
type ObjectKind uint8

const (
	PlayerObject ObjectKind = iota
	SawObject
	LauncherObject
	ArrowRespawnObject
)

func (k ObjectKind) String() string {
	switch k {
	case PlayerObject:
		return "player"
	case SawObject:
		return "saw"
	case LauncherObject:
		return "launcher"
	case ArrowRespawnObject:
		return "arrow-respawn"
	}
	return "unknown"
}

// ObjectView is a read-only snapshot of one entity for drawing.
type ObjectView struct {
	Kind ObjectKind
	Box  gamemath.AABB
}

// Level is one live screen.
type Level struct {
	Index int
	Raw   *leveldata.LevelRaw
	Tiles tiles.Grid

	world   donburi.World
	space   *resolv.Space
	player  donburi.Entity
	objects []donburi.Entity
}

// New builds the live state of level index from its raw data. Cells with an
// entry in overlay take the recorded tile. overlay may be nil. The loader
// rejects levels without a player tile, so New panics on one.
func New(raw *leveldata.LevelRaw, index int, overlay leveldata.Overlay) *Level {
	l := &Level{
		Index: index,
		Raw:   raw,
		Tiles: raw.Resolve(index, overlay),
		world: donburi.NewWorld(),
	}
	l.space = components.Space.Get(factory.CreateSpace(l.world, l.Tiles.Width(), l.Tiles.Height())).Space

	if !raw.Spawn.OK {
		panic(fmt.Sprintf("level %d %q has no player tile", index, raw.Name))
	}
	x, y := raw.Spawn.Col*gamemath.TileSize, raw.Spawn.Row*gamemath.TileSize
	l.player = factory.CreatePlayer(l.world, l.space, x, y).Entity()
	l.objects = append(l.objects, l.player)

	l.Tiles.Each(func(layer, row, col int, t tiles.Tile) {
		if dir, slow, ok := t.Launcher(); ok {
			l.objects = append(l.objects, factory.CreateSawLauncher(l.world, col, row, dir, slow).Entity())
		}
		if t.Kind == tiles.JumpArrow {
			cell := state.ArrowCell{Layer: layer, Row: row, Col: col}
			l.objects = append(l.objects, factory.CreateArrowRespawn(l.world, cell).Entity())
		}
	})
	return l
}

// Player returns the player entry. Every level has exactly one.
func (l *Level) Player() *donburi.Entry {
	if !l.world.Valid(l.player) {
		panic(fmt.Sprintf("level %d has no player", l.Index))
	}
	return l.world.Entry(l.player)
}

// PlayerBody returns the player's body.
func (l *Level) PlayerBody() *components.BodyData {
	return components.Body.Get(l.Player())
}

// PlayerState returns the player's movement state.
func (l *Level) PlayerState() *components.PlayerData {
	return components.Player.Get(l.Player())
}

// PixelWidth returns the level width in sub-pixel units.
func (l *Level) PixelWidth() int { return l.Tiles.Width() * gamemath.TileSize }

// PixelHeight returns the level height in sub-pixel units.
func (l *Level) PixelHeight() int { return l.Tiles.Height() * gamemath.TileSize }

// Update advances every entity one tick in list order. Saws spawned or
// expired during the pass are applied after it.
func (l *Level) Update(in input.Snapshot, gs *state.GlobalState) {
	var spawns []systems.SawSpawn
	var expired []donburi.Entity

	for _, ent := range l.objects {
		e := l.world.Entry(ent)
		switch l.kindOf(e) {
		case PlayerObject:
			systems.UpdatePlayer(e, in, l.Tiles, gs)
		case SawObject:
			systems.UpdateSaw(e, l.Tiles, gs)
			if components.Saw.Get(e).Expired {
				expired = append(expired, ent)
			}
		case LauncherObject:
			if s, ok := systems.UpdateLauncher(e, gs); ok {
				spawns = append(spawns, s)
			}
		case ArrowRespawnObject:
			systems.UpdateArrowRespawn(e, l.Tiles, gs)
		}
	}

	for _, ent := range expired {
		l.remove(ent)
	}
	for _, s := range spawns {
		saw := factory.CreateSaw(l.world, l.space, s.X, s.Y, s.SpeedX, s.SpeedY)
		l.objects = append(l.objects, saw.Entity())
	}

	systems.UpdateObjects(l.world)
}

func (l *Level) kindOf(e *donburi.Entry) ObjectKind {
	switch {
	case e.HasComponent(components.Player):
		return PlayerObject
	case e.HasComponent(components.Saw):
		return SawObject
	case e.HasComponent(components.Launcher):
		return LauncherObject
	}
	return ArrowRespawnObject
}

func (l *Level) remove(ent donburi.Entity) {
	e := l.world.Entry(ent)
	if e.HasComponent(components.Object) {
		l.space.Remove(components.Object.Get(e).Object)
	}
	l.world.Remove(ent)
	for i, o := range l.objects {
		if o == ent {
			l.objects = append(l.objects[:i], l.objects[i+1:]...)
			break
		}
	}
}

// Objects returns a drawing snapshot of every entity in list order.
func (l *Level) Objects() []ObjectView {
	views := make([]ObjectView, 0, len(l.objects))
	for _, ent := range l.objects {
		e := l.world.Entry(ent)
		views = append(views, ObjectView{
			Kind: l.kindOf(e),
			Box:  components.Body.Get(e).Box(),
		})
	}
	return views
}

// CollectKeys applies key, secret and pickup tiles under the player.
func (l *Level) CollectKeys(gs *state.GlobalState) {
	systems.CollectKeys(l.PlayerBody().Box(), l.Tiles, l.Index, gs)
}

// CollectDoors opens locks under the player.
func (l *Level) CollectDoors(gs *state.GlobalState) {
	systems.CollectDoors(l.PlayerBody().Box(), l.Tiles, l.Index, gs)
}

// PlayerDies reports whether the player touches a hazard.
func (l *Level) PlayerDies() bool {
	return systems.PlayerDies(l.world, l.Player(), l.Tiles)
}

// ReachedGoal reports whether the player touches the win tile.
func (l *Level) ReachedGoal() bool {
	return systems.ReachedGoal(l.PlayerBody().Box(), l.Tiles)
}

// DoorUnderPlayer returns the door the player stands in front of.
func (l *Level) DoorUnderPlayer() (tiles.Tile, bool) {
	return systems.DoorAt(l.PlayerBody().Box(), l.Tiles)
}

// Binocular reports whether the player overlaps a binocular tile.
func (l *Level) Binocular() bool {
	return systems.Overlaps(l.PlayerBody().Box(), l.Tiles, tiles.Binocular)
}

// FindDoor returns the cell of the first door in read order leading to
// target.
func (l *Level) FindDoor(target int) (col, row int, ok bool) {
	for _, layer := range l.Tiles {
		for r, cells := range layer {
			for c, t := range cells {
				if t.IsDoor() && t.Door == target {
					return c, r, true
				}
			}
		}
	}
	return 0, 0, false
}

// PlacePlayer moves the player's top-left corner to x, y.
func (l *Level) PlacePlayer(x, y int) {
	body := l.PlayerBody()
	body.X, body.Y = x, y
	components.Object.Get(l.Player()).Place(body.Box())
}
