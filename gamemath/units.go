package gamemath

// Fixed-point scale. Every simulation coordinate and velocity is an integer
// in sub-pixel units.
const (
	PixelSize  = 256
	TilePixels = 16
	TileSize   = TilePixels * PixelSize

	MaxPlayerSpeed = TileSize * 3 / 16
	PlayerAccel    = TileSize / 16

	ScreenWidth  = 640
	ScreenHeight = 368
)

// ToPixels converts sub-pixel units to whole pixels, truncating.
func ToPixels(v int) int {
	return v / PixelSize
}

// TileOf returns the tile coordinate containing v. Coordinates left of or
// above the origin map to negative tiles.
func TileOf(v int) int {
	return FloorDiv(v, TileSize)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
