// Package grid treats a block of text lines as a map that repeats
// horizontally forever, and slides a cursor down it along fixed slopes.
//
//   - Rows must all have the same length (ErrNonRectangular).
//   - Horizontal positions wrap modulo Width; vertical motion stops at Height.
package grid

// New constructs a Grid from non-empty, equal-length lines.
// It copies the input so later mutation of lines has no effect.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(lines))
	w := len([]rune(lines[0]))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = row
	}

	return &Grid{Width: w, Height: len(cells), cells: cells}, nil
}

// InBounds reports whether row y lies within the grid.
// Every column is in bounds because the map repeats horizontally.
func (g *Grid) InBounds(y int) bool {
	return y >= 0 && y < g.Height
}

// At returns the cell at (x, y), wrapping x modulo Width.
// The caller must ensure InBounds(y).
func (g *Grid) At(x, y int) rune {
	x %= g.Width
	if x < 0 {
		x += g.Width
	}
	return g.cells[y][x]
}

// NewToboggan returns a cursor at the origin that moves by slope.
func NewToboggan(slope Slope) *Toboggan {
	return &Toboggan{slope: slope}
}

// Slide advances the cursor by one slope step, wrapping X into [0, width).
func (t *Toboggan) Slide(width int) {
	t.X = (t.X + t.slope.Right) % width
	t.Y += t.slope.Down
}

// CountHits slides from the origin along slope until the cursor leaves the
// bottom of the grid, counting visited cells equal to marker. The origin
// cell is included.
// Complexity: O(Height / slope.Down).
func (g *Grid) CountHits(slope Slope, marker rune) (int, error) {
	if err := slope.Validate(); err != nil {
		return 0, err
	}
	hits := 0
	for t := NewToboggan(slope); g.InBounds(t.Y); t.Slide(g.Width) {
		if g.At(t.X, t.Y) == marker {
			hits++
		}
	}

	return hits, nil
}
