package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Saw          = donburi.NewTag().SetName("Saw")
	SawLauncher  = donburi.NewTag().SetName("SawLauncher")
	ArrowRespawn = donburi.NewTag().SetName("ArrowRespawn")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer = "Player"
	ResolvHazard = "hazard"
)
