// Package day05 decodes binary space partitioned boarding passes.
//
// A pass is ten characters: seven of F/B select a row in [0,127] by
// repeatedly halving the range (F keeps the lower half), then three of L/R
// select a column in [0,7] the same way (L keeps the lower half).
// The seat ID is row*8 + column.
package day05

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/input"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Binary Boarding"

const (
	rowChars = 7
	colChars = 3
)

var (
	// ErrPassLength indicates a pass that is not exactly ten characters.
	ErrPassLength = errors.New("day05: boarding pass must be 10 characters")

	// ErrPassChar indicates a character outside F/B (row) or L/R (column).
	ErrPassChar = errors.New("day05: invalid boarding pass character")

	// ErrNoSeats indicates an input without any boarding pass.
	ErrNoSeats = errors.New("day05: no boarding passes")

	// ErrSeatNotFound indicates no single-seat gap among the IDs.
	ErrSeatNotFound = errors.New("day05: no free seat between two taken seats")
)

// Seat is a decoded boarding pass.
type Seat struct {
	Row    int
	Column int
}

// ID returns row*8 + column.
func (s Seat) ID() int { return s.Row*8 + s.Column }

// Decode turns a boarding pass into its seat.
func Decode(pass string) (Seat, error) {
	if len(pass) != rowChars+colChars {
		return Seat{}, fmt.Errorf("%w: %q", ErrPassLength, pass)
	}
	row, err := partition(pass[:rowChars], 'F', 'B')
	if err != nil {
		return Seat{}, err
	}
	col, err := partition(pass[rowChars:], 'L', 'R')
	if err != nil {
		return Seat{}, err
	}

	return Seat{Row: row, Column: col}, nil
}

// partition halves [0, 2^len(code)-1] once per character, keeping the lower
// half on lower and the upper half on upper, and returns the remaining value.
func partition(code string, lower, upper byte) (int, error) {
	lo, hi := 0, 1<<len(code)-1
	for i := 0; i < len(code); i++ {
		mid := (lo + hi) / 2
		switch code[i] {
		case lower:
			hi = mid
		case upper:
			lo = mid + 1
		default:
			return 0, fmt.Errorf("%w: %q in %q", ErrPassChar, code[i], code)
		}
	}

	return lo, nil
}

// Highest returns the largest ID in ids, or ErrNoSeats.
func Highest(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNoSeats
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if id > best {
			best = id
		}
	}

	return best, nil
}

// MissingSeat sorts a copy of ids and returns the first ID whose neighbours
// on both sides are taken while it is not.
func MissingSeat(ids []int) (int, error) {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 2 {
			return sorted[i-1] + 1, nil
		}
	}

	return 0, ErrSeatNotFound
}

// Solve prints the highest seat ID and the free seat.
func Solve(_ context.Context, req *solver.Request) error {
	seats, err := input.ParseAll(req.Lines(), Decode)
	if err != nil {
		return err
	}
	ids := make([]int, len(seats))
	for i, s := range seats {
		ids[i] = s.ID()
	}
	req.Log.Debug("passes decoded", zap.Int("count", len(ids)))

	high, err := Highest(ids)
	if err != nil {
		return err
	}
	req.Printf("The highest seat ID is %d.\n", high)

	mine, err := MissingSeat(ids)
	if err != nil {
		return err
	}
	req.Printf("My seat ID is %d.\n", mine)

	return nil
}
