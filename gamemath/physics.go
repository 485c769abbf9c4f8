package gamemath

// ApplyDecay scales speed by num/den, rounding toward zero.
func ApplyDecay(speed, num, den int) int {
	return speed * num / den
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max int) int {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SnapToBoundary moves pos toward pos+vel, stopping at the first tile
// boundary crossed. It returns the snapped position and the displacement
// still to apply. When no boundary is crossed the position is unchanged
// and the whole velocity remains.
func SnapToBoundary(pos, vel int) (snapped, remaining int) {
	if TileOf(pos+vel) == TileOf(pos) {
		return pos, vel
	}
	if vel < 0 {
		snapped = TileOf(pos) * TileSize
	} else {
		snapped = (TileOf(pos) + 1) * TileSize
	}
	return snapped, pos + vel - snapped
}
