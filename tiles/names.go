package tiles

import "fmt"

var kindNames = [kindCount]string{
	Empty:                "empty",
	Wall:                 "wall",
	Wall2:                "wall2",
	Wall3:                "wall3",
	Wall4:                "wall4",
	BackWall:             "backwall",
	BackWall2:            "backwall2",
	BackWall3:            "backwall3",
	BackWall4:            "backwall4",
	DoorGeneric:          "door",
	SecretDoorGeneric:    "secretdoor",
	Door:                 "door",
	SecretDoor:           "secretdoor",
	PlayerSpawn:          "player",
	ExitAnchor:           "exit_anchor",
	Spikes:               "spikes",
	OneWayUp:             "oneway_up",
	OneWayDown:           "oneway_down",
	OneWayLeft:           "oneway_left",
	OneWayRight:          "oneway_right",
	KeyRed:               "redkey",
	KeyYellow:            "yellowkey",
	KeyGreen:             "greenkey",
	KeyCyan:              "cyankey",
	KeyBlue:              "bluekey",
	KeyMagenta:           "magentakey",
	LockRed:              "redlock",
	LockYellow:           "yellowlock",
	LockGreen:            "greenlock",
	LockCyan:             "cyanlock",
	LockBlue:             "bluelock",
	LockMagenta:          "magentalock",
	SawLauncherLeft:      "sawlauncherleft",
	SawLauncherRight:     "sawlauncherright",
	SawLauncherUp:        "sawlauncherup",
	SawLauncherDown:      "sawlauncherdown",
	SlowSawLauncherLeft:  "slowsawlauncherleft",
	SlowSawLauncherRight: "slowsawlauncherright",
	SlowSawLauncherUp:    "slowsawlauncherup",
	SlowSawLauncherDown:  "slowsawlauncherdown",
	Secret:               "secret",
	Goal:                 "goal",
	JumpArrow:            "jumparrow",
	JumpArrowOutline:     "jumparrowoutline",
	Binocular:            "binocular",
	IceCube:              "icecube",
	Vanish:               "vanish",
}

// aliases accepted by Parse in addition to the canonical names.
var aliases = map[string]Kind{
	"spike":      Spikes,
	"exitanchor": ExitAnchor,
	"ice":        IceCube,
}

// Name returns the canonical level-file name of a kind.
func Name(k Kind) string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Parse maps a level-file tile name to its raw tile. Door names yield the
// unresolved placeholders.
func Parse(name string) (Tile, bool) {
	switch name {
	case "door":
		return Of(DoorGeneric), true
	case "secretdoor":
		return Of(SecretDoorGeneric), true
	}
	if k, ok := aliases[name]; ok {
		return Of(k), true
	}
	for k, n := range kindNames {
		if n == name && Kind(k) != Door && Kind(k) != SecretDoor {
			return Of(Kind(k)), true
		}
	}
	return Tile{}, false
}
