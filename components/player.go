package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Grounded    bool
	WallSliding int // -1 or 1 while sliding, 0 otherwise
	FreezeTimer int // input lockout after jumps and wall impacts
	AirTicks    int // ticks since last landing
	AnimTimer   int
}

var Player = donburi.NewComponentType[PlayerData]()
