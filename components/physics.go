package components

import (
	"github.com/automoto/notmarioland/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the fixed-point box and velocity of a moving or placed
// entity, in sub-pixel units.
type BodyData struct {
	X, Y   int
	W, H   int
	SpeedX int
	SpeedY int
}

// Box returns the entity's bounding box.
func (b *BodyData) Box() gamemath.AABB {
	return gamemath.AABB{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

var Body = donburi.NewComponentType[BodyData]()
