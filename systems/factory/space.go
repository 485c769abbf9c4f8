package factory

import (
	"github.com/automoto/notmarioland/archetypes"
	"github.com/automoto/notmarioland/components"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the broadphase space for a level of cols x rows
// tiles, with a one tile margin on every side.
func CreateSpace(world donburi.World, cols, rows int) *donburi.Entry {
	space := archetypes.Space.Spawn(world)
	spaceData := resolv.NewSpace(
		(cols+2)*gamemath.TileSize,
		(rows+2)*gamemath.TileSize,
		gamemath.TileSize,
		gamemath.TileSize,
	)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

func newObject(space *resolv.Space, e *donburi.Entry, box gamemath.AABB, tags ...string) *resolv.Object {
	obj := resolv.NewObject(
		float64(box.X+components.SpaceMargin),
		float64(box.Y+components.SpaceMargin),
		float64(box.W),
		float64(box.H),
		tags...,
	)
	obj.Data = e.Entity()
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}
