package components

import (
	"github.com/automoto/notmarioland/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceMargin offsets level coordinates inside the resolv space so bodies
// hanging off the top or left edge still register in a cell.
const SpaceMargin = gamemath.TileSize

// ObjectData links an entity to its broadphase object in the level space.
type ObjectData struct {
	*resolv.Object
}

// Place moves the broadphase object to match box.
func (o ObjectData) Place(box gamemath.AABB) {
	o.X = float64(box.X + SpaceMargin)
	o.Y = float64(box.Y + SpaceMargin)
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
