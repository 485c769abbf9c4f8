package factory

import (
	"github.com/automoto/notmarioland/archetypes"
	"github.com/automoto/notmarioland/components"
	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSaw spawns a one tile saw at x, y moving at speedX, speedY.
func CreateSaw(world donburi.World, space *resolv.Space, x, y, speedX, speedY int) *donburi.Entry {
	saw := archetypes.Saw.Spawn(world)

	components.Body.SetValue(saw, components.BodyData{
		X:      x,
		Y:      y,
		W:      gamemath.TileSize,
		H:      gamemath.TileSize,
		SpeedX: speedX,
		SpeedY: speedY,
	})
	components.Saw.SetValue(saw, components.SawData{})

	newObject(space, saw, components.Body.Get(saw).Box(), tags.ResolvHazard)

	return saw
}

// CreateSawLauncher spawns the emitter for a launcher tile. The tile itself
// stays in the grid and keeps the launcher solid.
func CreateSawLauncher(world donburi.World, col, row int, dir gamemath.Direction, slow bool) *donburi.Entry {
	launcher := archetypes.SawLauncher.Spawn(world)

	period, speed := cfg.Hazards.FastPeriod, cfg.Hazards.FastSawSpeed
	if slow {
		period, speed = cfg.Hazards.SlowPeriod, cfg.Hazards.SlowSawSpeed
	}
	box := gamemath.TileBox(col, row)
	components.Body.SetValue(launcher, components.BodyData{X: box.X, Y: box.Y, W: box.W, H: box.H})
	components.Launcher.SetValue(launcher, components.LauncherData{
		Dir:    dir,
		Slow:   slow,
		Col:    col,
		Row:    row,
		Period: period,
		Speed:  speed,
	})

	return launcher
}

// CreateArrowRespawn spawns the watcher that restores a collected jump
// arrow.
func CreateArrowRespawn(world donburi.World, cell state.ArrowCell) *donburi.Entry {
	arrow := archetypes.ArrowRespawn.Spawn(world)

	box := gamemath.TileBox(cell.Col, cell.Row)
	components.Body.SetValue(arrow, components.BodyData{X: box.X, Y: box.Y, W: box.W, H: box.H})
	components.ArrowRespawn.SetValue(arrow, components.ArrowRespawnData{Cell: cell})

	return arrow
}
