package components

import (
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/state"
	"github.com/yohamta/donburi"
)

type SawData struct {
	Expired bool
}

var Saw = donburi.NewComponentType[SawData]()

// LauncherData is a stationary saw emitter on a launcher tile.
type LauncherData struct {
	Dir    gamemath.Direction
	Slow   bool
	Col    int
	Row    int
	Period int
	Speed  int
}

var Launcher = donburi.NewComponentType[LauncherData]()

// ArrowRespawnData watches one jump arrow cell.
type ArrowRespawnData struct {
	Cell    state.ArrowCell
	Counter int
}

var ArrowRespawn = donburi.NewComponentType[ArrowRespawnData]()
