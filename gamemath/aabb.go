package gamemath

// AABB is an axis-aligned box in sub-pixel units. The box covers
// [X, X+W) horizontally and [Y, Y+H) vertically.
type AABB struct {
	X, Y, W, H int
}

func (a AABB) Right() int  { return a.X + a.W }
func (a AABB) Bottom() int { return a.Y + a.H }

// Center returns the box midpoint.
func (a AABB) Center() (int, int) {
	return a.X + a.W/2, a.Y + a.H/2
}

// Intersects reports whether the two boxes overlap by a non-zero area.
func (a AABB) Intersects(b AABB) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Shrink returns the box inset by margin on every side. Boxes smaller than
// twice the margin collapse to their center.
func (a AABB) Shrink(margin int) AABB {
	if a.W <= 2*margin || a.H <= 2*margin {
		cx, cy := a.Center()
		return AABB{X: cx, Y: cy}
	}
	return AABB{
		X: a.X + margin,
		Y: a.Y + margin,
		W: a.W - 2*margin,
		H: a.H - 2*margin,
	}
}

// Offset returns the box translated by dx, dy.
func (a AABB) Offset(dx, dy int) AABB {
	a.X += dx
	a.Y += dy
	return a
}

// TileBox returns the box of the tile cell at col, row.
func TileBox(col, row int) AABB {
	return AABB{X: col * TileSize, Y: row * TileSize, W: TileSize, H: TileSize}
}
