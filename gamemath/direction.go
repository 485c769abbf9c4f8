package gamemath

// Direction is one of the four cardinal directions. The values index
// per-side arrays.
type Direction int8

const (
	Left Direction = iota
	Right
	Up
	Down

	NoDirection Direction = -1
)

// Directions lists the cardinal directions in walk order.
var Directions = [4]Direction{Left, Right, Up, Down}

func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return NoDirection
}

// Delta returns the unit step of the direction in tile coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Horizontal reports whether the direction lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// HorizontalDir returns the direction of travel for a horizontal velocity.
func HorizontalDir(v int) Direction {
	switch {
	case v < 0:
		return Left
	case v > 0:
		return Right
	}
	return NoDirection
}

// VerticalDir returns the direction of travel for a vertical velocity.
func VerticalDir(v int) Direction {
	switch {
	case v < 0:
		return Up
	case v > 0:
		return Down
	}
	return NoDirection
}
