package systems

import (
	"github.com/automoto/notmarioland/components"
	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
	"github.com/yohamta/donburi"
)

// SawSpawn describes a saw requested by a launcher.
type SawSpawn struct {
	X, Y           int
	SpeedX, SpeedY int
}

// UpdateObjects syncs every broadphase object with its body.
func UpdateObjects(world donburi.World) {
	components.Object.Each(world, func(e *donburi.Entry) {
		components.Object.Get(e).Place(components.Body.Get(e).Box())
	})
}

// UpdateSaw moves a saw along x then y. Hitting a solid tile or leaving
// the level marks it expired.
func UpdateSaw(e *donburi.Entry, grid tiles.Grid, gs *state.GlobalState) {
	saw := components.Saw.Get(e)
	body := components.Body.Get(e)
	box := func() gamemath.AABB { return body.Box() }

	if _, hit := moveAxis(&body.X, body.SpeedX, box, gamemath.HorizontalDir(body.SpeedX), grid, gs); hit {
		saw.Expired = true
		return
	}
	if _, hit := moveAxis(&body.Y, body.SpeedY, box, gamemath.VerticalDir(body.SpeedY), grid, gs); hit {
		saw.Expired = true
		return
	}

	bounds := gamemath.AABB{
		W: grid.Width() * gamemath.TileSize,
		H: grid.Height() * gamemath.TileSize,
	}
	if !body.Box().Intersects(bounds) {
		saw.Expired = true
	}
}

// UpdateLauncher requests a saw in the cell next to the launcher once per
// period of the run timer.
func UpdateLauncher(e *donburi.Entry, gs *state.GlobalState) (SawSpawn, bool) {
	l := components.Launcher.Get(e)
	if l.Period <= 0 || gs.Timer%l.Period != 0 {
		return SawSpawn{}, false
	}
	dx, dy := l.Dir.Delta()
	return SawSpawn{
		X:      (l.Col + dx) * gamemath.TileSize,
		Y:      (l.Row + dy) * gamemath.TileSize,
		SpeedX: dx * l.Speed,
		SpeedY: dy * l.Speed,
	}, true
}

// UpdateArrowRespawn restores a collected jump arrow once it has been both
// spent and absent for the cooldown.
func UpdateArrowRespawn(e *donburi.Entry, grid tiles.Grid, gs *state.GlobalState) {
	a := components.ArrowRespawn.Get(e)
	c := a.Cell
	if grid.At(c.Layer, c.Row, c.Col).Kind == tiles.JumpArrow || gs.ArrowInFlight(c) {
		a.Counter = 0
		return
	}
	a.Counter++
	if a.Counter >= cfg.Pickups.ArrowCooldown {
		grid.Set(c.Layer, c.Row, c.Col, tiles.Of(tiles.JumpArrow))
		a.Counter = 0
	}
}
