package factory

import (
	"github.com/automoto/notmarioland/archetypes"
	"github.com/automoto/notmarioland/components"
	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its top-left corner at x, y.
func CreatePlayer(world donburi.World, space *resolv.Space, x, y int) *donburi.Entry {
	player := archetypes.Player.Spawn(world)

	components.Body.SetValue(player, components.BodyData{
		X: x,
		Y: y,
		W: cfg.Player.CollisionWidth,
		H: cfg.Player.CollisionHeight,
	})
	components.Player.SetValue(player, components.PlayerData{})

	newObject(space, player, components.Body.Get(player).Box(), "character", tags.ResolvPlayer)

	return player
}
