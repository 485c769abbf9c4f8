package tiles

// Grid is a stack of equally sized layers indexed [layer][row][col].
type Grid [][][]Tile

// NewGrid returns a grid of empty tiles.
func NewGrid(layers, rows, cols int) Grid {
	g := make(Grid, layers)
	for l := range g {
		g[l] = make([][]Tile, rows)
		for r := range g[l] {
			g[l][r] = make([]Tile, cols)
		}
	}
	return g
}

// Width returns the column count of the first layer.
func (g Grid) Width() int {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0
	}
	return len(g[0][0])
}

// Height returns the row count of the first layer.
func (g Grid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether col, row addresses a cell.
func (g Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Width() && row < g.Height()
}

// Set writes a tile, ignoring out-of-range coordinates.
func (g Grid) Set(layer, row, col int, t Tile) {
	if layer < 0 || layer >= len(g) || !g.InBounds(col, row) {
		return
	}
	g[layer][row][col] = t
}

// At returns the tile at a cell or Empty when out of range.
func (g Grid) At(layer, row, col int) Tile {
	if layer < 0 || layer >= len(g) || !g.InBounds(col, row) {
		return Tile{}
	}
	return g[layer][row][col]
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for l := range g {
		out[l] = make([][]Tile, len(g[l]))
		for r := range g[l] {
			out[l][r] = append([]Tile(nil), g[l][r]...)
		}
	}
	return out
}

// Each calls fn for every cell in read order: layer, row, column.
func (g Grid) Each(fn func(layer, row, col int, t Tile)) {
	for l := range g {
		for r := range g[l] {
			for c, t := range g[l][r] {
				fn(l, r, c, t)
			}
		}
	}
}

// Count returns how many cells satisfy pred.
func (g Grid) Count(pred func(Tile) bool) int {
	n := 0
	g.Each(func(_, _, _ int, t Tile) {
		if pred(t) {
			n++
		}
	})
	return n
}
