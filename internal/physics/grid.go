package physics

import "math"

// Grid is a uniform bucket grid for broad-phase overlap queries.
// Rectangles are inserted into every cell they cover, so a query only
// visits items near the query rectangle. Anything outside the grid is
// clamped into the border cells.
type Grid struct {
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       [][]int // Item indices per cell, reused between passes
}

// NewGrid creates a grid covering a width x height area.
func NewGrid(width, height, cellSize float64) *Grid {
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)
	return &Grid{
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Reset removes all items without releasing cell memory.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds the item with the given index covering r.
func (g *Grid) Insert(r Rect, index int) {
	c0, r0, c1, r1 := g.cellRange(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			i := row*g.cols + col
			g.cells[i] = append(g.cells[i], index)
		}
	}
}

// Query calls fn for every item inserted into a cell that r touches.
// An item spanning several cells may be reported more than once;
// candidates still need an exact Overlaps check.
func (g *Grid) Query(r Rect, fn func(index int)) {
	c0, r0, c1, r1 := g.cellRange(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, index := range g.cells[row*g.cols+col] {
				fn(index)
			}
		}
	}
}

// cellRange returns the inclusive cell span covered by r.
func (g *Grid) cellRange(r Rect) (c0, r0, c1, r1 int) {
	c0, r0 = g.posToCell(r.X, r.Y)
	c1, r1 = g.posToCell(r.Right(), r.Bottom())
	return c0, r0, c1, r1
}

// posToCell converts coordinates to cell coordinates, clamped to the grid.
func (g *Grid) posToCell(x, y float64) (col, row int) {
	col = min(max(int(math.Floor(x*g.invCellSize)), 0), g.cols-1)
	row = min(max(int(math.Floor(y*g.invCellSize)), 0), g.rows-1)
	return col, row
}
