package systems

import (
	"github.com/automoto/notmarioland/collision"
	"github.com/automoto/notmarioland/components"
	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/tags"
	"github.com/automoto/notmarioland/tiles"
	"github.com/yohamta/donburi"
)

// PlayerDies reports whether the player touches a lethal tile or a saw.
func PlayerDies(world donburi.World, player *donburi.Entry, grid tiles.Grid) bool {
	box := components.Body.Get(player).Box()
	if collision.CheckTilemap(box, grid, collision.Lethal) {
		return true
	}
	return TouchingSaw(world, player)
}

// TouchingSaw runs the broadphase for hazards near the player and checks
// each candidate against the saw's inset box.
func TouchingSaw(world donburi.World, player *donburi.Entry) bool {
	obj := components.Object.Get(player)
	check := obj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return false
	}
	box := components.Body.Get(player).Box()
	for _, other := range check.ObjectsByTags(tags.ResolvHazard) {
		ent, ok := other.Data.(donburi.Entity)
		if !ok || !world.Valid(ent) {
			continue
		}
		hazard := world.Entry(ent)
		if !hazard.HasComponent(components.Saw) {
			continue
		}
		if box.Intersects(components.Body.Get(hazard).Box().Shrink(cfg.Hazards.SawMargin)) {
			return true
		}
	}
	return false
}

// ReachedGoal reports whether the box overlaps the win tile.
func ReachedGoal(box gamemath.AABB, grid tiles.Grid) bool {
	return collision.CheckTilemap(box, grid, collision.Goal)
}

// DoorAt returns the first door tile the box overlaps.
func DoorAt(box gamemath.AABB, grid tiles.Grid) (tiles.Tile, bool) {
	var door tiles.Tile
	found := collision.EachCell(box, grid, func(_ collision.Cell, t tiles.Tile) bool {
		if t.IsDoor() {
			door = t
			return true
		}
		return false
	})
	return door, found
}

// Overlaps reports whether the box touches any tile of kind k.
func Overlaps(box gamemath.AABB, grid tiles.Grid, k tiles.Kind) bool {
	return collision.CheckTilemap(box, grid, collision.Kind(k))
}
