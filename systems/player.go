package systems

import (
	"github.com/automoto/notmarioland/collision"
	"github.com/automoto/notmarioland/components"
	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/input"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances the player state machine by one tick: horizontal
// input, gravity, horizontal resolution, wall slide, jumps, coyote time and
// vertical resolution, in that order.
func UpdatePlayer(e *donburi.Entry, in input.Snapshot, grid tiles.Grid, gs *state.GlobalState) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	mods := gs.Modifiers

	left, right := in.IsDown(input.Left), in.IsDown(input.Right)
	jumpPressed := in.IsPressed(input.Jump)

	player.FreezeTimer--
	handleHorizontalInput(player, body, left, right, mods)
	applyGravity(player, body, in)

	if !mods.Uncapped {
		body.SpeedX = gamemath.ClampSpeed(body.SpeedX, cfg.Player.SpeedCap)
		body.SpeedY = gamemath.ClampSpeed(body.SpeedY, cfg.Player.SpeedCap)
	}
	if player.Grounded {
		body.SpeedY = min(body.SpeedY, cfg.Player.GroundFallCap)
	}

	resolveHorizontal(player, body, left, right, grid, gs)

	jumped := false
	if player.WallSliding != 0 {
		jumped = handleWallSlide(player, body, in, jumpPressed)
	}
	if !jumped {
		handleJump(player, body, in, jumpPressed, gs)
	}

	if player.WallSliding == 0 {
		player.AirTicks++
		if in.IsDown(input.Down) {
			player.AirTicks += cfg.Player.FastFallAirTicks
		}
	}
	if player.AirTicks > cfg.Player.CoyoteTicks {
		player.Grounded = false
	}

	resolveVertical(player, body, grid, gs)
}

func handleHorizontalInput(player *components.PlayerData, body *components.BodyData, left, right bool, mods state.Modifiers) {
	if player.FreezeTimer <= 0 {
		accel := horizontalAccel(player, mods)
		switch {
		case left && !right:
			if player.WallSliding > 0 {
				player.WallSliding = 0
			}
			body.SpeedX = accelerate(body.SpeedX, -1, accel)
		case right && !left:
			if player.WallSliding < 0 {
				player.WallSliding = 0
			}
			body.SpeedX = accelerate(body.SpeedX, 1, accel)
		}
	}

	if !left && !right && player.FreezeTimer <= 0 {
		num := cfg.Player.ReleaseDecayNum
		if mods.Slippery {
			num = cfg.Player.SlipperyDecayNum
		}
		body.SpeedX = gamemath.ApplyDecay(body.SpeedX, num, cfg.Player.DecayDen)
		player.AnimTimer = 0
		// Keep pressing into the wall so the slide holds without input.
		if player.WallSliding != 0 {
			body.SpeedX = player.WallSliding
		}
		return
	}
	player.AnimTimer += gamemath.Abs(body.SpeedX) / cfg.Player.Accel
}

func horizontalAccel(player *components.PlayerData, mods state.Modifiers) int {
	switch {
	case player.Grounded && mods.Slippery:
		return cfg.Player.Accel / cfg.Player.SlipperyAccelDiv
	case player.Grounded, player.WallSliding != 0:
		return cfg.Player.Accel
	}
	return cfg.Player.Accel * cfg.Player.AirAccelNum / cfg.Player.AirAccelDen
}

// accelerate pushes speed toward dir. Above the cap it decays toward the
// cap instead of snapping to it.
func accelerate(speed, dir, accel int) int {
	limit := cfg.Player.MaxSpeed
	if speed*dir > limit {
		speed -= dir * cfg.Player.OverspeedDecay
		if speed*dir < limit {
			speed = dir * limit
		}
		return speed
	}
	speed += dir * accel
	if speed*dir > limit {
		speed = dir * limit
	}
	return speed
}

func applyGravity(player *components.PlayerData, body *components.BodyData, in input.Snapshot) {
	switch {
	case in.IsDown(input.Down):
		body.SpeedY += cfg.Player.FastFallGravity
	case in.IsDown(input.Jump):
		body.SpeedY += cfg.Player.HoldGravity
	default:
		player.FreezeTimer -= cfg.Player.HangFreezeDrain
		body.SpeedY += cfg.Player.Gravity
	}
}

func resolveHorizontal(player *components.PlayerData, body *components.BodyData, left, right bool, grid tiles.Grid, gs *state.GlobalState) {
	dir := gamemath.HorizontalDir(body.SpeedX)
	moved, hit := moveAxis(&body.X, body.SpeedX, func() gamemath.AABB { return body.Box() }, dir, grid, gs)
	if hit {
		player.FreezeTimer = 0
		pushing := (body.SpeedX < 0 && left) || (body.SpeedX > 0 && right)
		if pushing && canWallslide(body, dir, grid, gs) {
			player.WallSliding = gamemath.Sign(body.SpeedX)
		}
		if gs.Modifiers.NoWallJump {
			body.SpeedX = -body.SpeedX / 2
		} else {
			body.SpeedX = 0
		}
		return
	}
	if moved && player.WallSliding != 0 {
		// Ran off the end of the wall.
		body.SpeedX = -gamemath.Sign(body.SpeedX) * cfg.Player.SlideSeparation
		player.WallSliding = 0
	}
}

// canWallslide reports whether the wall one step ahead accepts a slide.
func canWallslide(body *components.BodyData, dir gamemath.Direction, grid tiles.Grid, gs *state.GlobalState) bool {
	if gs.Modifiers.NoWallJump {
		return false
	}
	before := body.Box()
	dx, _ := dir.Delta()
	after := before.Offset(dx, 0)
	blocked := false
	touched := collision.CheckTilemap(after, grid, func(t tiles.Tile, cell gamemath.AABB) bool {
		if !t.IsSolid(before, after, cell, dir, gs) {
			return false
		}
		if !t.Wallslideable() {
			blocked = true
		}
		return true
	})
	return touched && !blocked
}

func handleWallSlide(player *components.PlayerData, body *components.BodyData, in input.Snapshot, jumpPressed bool) bool {
	body.SpeedX = -player.WallSliding
	if in.IsDown(input.Down) {
		body.SpeedY = min(body.SpeedY, cfg.Player.SlideFastCap)
	} else {
		body.SpeedY = min(body.SpeedY, cfg.Player.SlideCap)
	}

	if jumpPressed && !player.Grounded && player.AirTicks >= cfg.Player.WallJumpMinAir {
		player.FreezeTimer = cfg.Player.WallJumpFreeze
		body.SpeedX = -player.WallSliding * cfg.Player.WallJumpSpeedX
		body.SpeedY = -cfg.Player.WallJumpSpeedY
		player.WallSliding = 0
		return true
	}
	return false
}

func handleJump(player *components.PlayerData, body *components.BodyData, in input.Snapshot, jumpPressed bool, gs *state.GlobalState) {
	switch {
	case player.Grounded && (jumpPressed || gs.Modifiers.ForceJump):
		player.Grounded = false
	case jumpPressed && gs.Jumps > 0 && player.FreezeTimer <= 0 && player.WallSliding == 0:
		gs.Jumps--
		gs.PopArrow()
	default:
		return
	}
	body.SpeedY = -cfg.Player.JumpSpeed
	if in.IsDown(input.Up) {
		body.SpeedX = body.SpeedX * cfg.Player.DirectionalJumpNum / cfg.Player.DirectionalJumpDen
	}
}

func resolveVertical(player *components.PlayerData, body *components.BodyData, grid tiles.Grid, gs *state.GlobalState) {
	dir := gamemath.VerticalDir(body.SpeedY)
	_, hit := moveAxis(&body.Y, body.SpeedY, func() gamemath.AABB { return body.Box() }, dir, grid, gs)
	if !hit {
		return
	}
	if body.SpeedY > 0 {
		player.Grounded = true
		body.SpeedY = cfg.Player.LandingSpeed
		player.AirTicks = 0
	} else {
		body.SpeedY = cfg.Player.CeilingSpeed
	}
	player.WallSliding = 0
}

// moveAxis moves *pos by vel: first to the nearest tile boundary crossed,
// then by the remainder. If the final box overlaps a solid tile the
// remainder is undone. box reads the mover's current box. It reports
// whether the mover ended somewhere new and whether it hit something.
func moveAxis(pos *int, vel int, box func() gamemath.AABB, dir gamemath.Direction, grid tiles.Grid, keys tiles.KeyHolder) (moved, hit bool) {
	if vel == 0 {
		return false, false
	}
	start := *pos
	origin := box()
	snapped, remaining := gamemath.SnapToBoundary(start, vel)
	*pos = snapped
	atBoundary := box()
	*pos += remaining
	after := box()

	if collision.CheckTilemap(after, grid, collision.Solid(atBoundary, after, dir, keys)) {
		*pos = snapped
		// A full tile step from an aligned start lands on a boundary that
		// was never checked.
		if snapped != start && collision.CheckTilemap(atBoundary, grid, collision.Solid(origin, atBoundary, dir, keys)) {
			*pos = start
		}
		return *pos != start, true
	}
	return *pos != start, false
}
