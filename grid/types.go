// Package grid defines core types, options, and sentinel errors
// for the toboggan map.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSlope indicates a slope that would never move down the map.
	ErrBadSlope = errors.New("grid: slope must move right >= 0 and down > 0")
)

// DefaultMarker is the cell value counted as a tree.
const DefaultMarker = '#'

// Slope is a fixed per-step movement: Right columns, Down rows.
type Slope struct {
	Right int
	Down  int
}

// String renders the slope as "right,down".
func (s Slope) String() string {
	return fmt.Sprintf("%d,%d", s.Right, s.Down)
}

// Validate reports ErrBadSlope for slopes that never descend.
func (s Slope) Validate() error {
	if s.Right < 0 || s.Down <= 0 {
		return fmt.Errorf("%w: %s", ErrBadSlope, s)
	}
	return nil
}

// DefaultSlopes are the five slopes whose tree counts are multiplied together.
func DefaultSlopes() []Slope {
	return []Slope{
		{Right: 1, Down: 1},
		{Right: 3, Down: 1},
		{Right: 5, Down: 1},
		{Right: 7, Down: 1},
		{Right: 1, Down: 2},
	}
}

// Grid is a rectangular rune matrix that repeats infinitely to the right.
// It is immutable once built.
type Grid struct {
	Width, Height int
	cells         [][]rune
}

// Toboggan is a cursor sliding down a Grid with a fixed Slope.
// X is kept in [0, width) by Slide.
type Toboggan struct {
	X, Y  int
	slope Slope
}
