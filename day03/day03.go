// Package day03 counts the trees hit while sledding down a repeating map.
package day03

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/grid"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Toboggan Trajectory"

// Trees returns the tree count for each slope, in order.
func Trees(g *grid.Grid, slopes []grid.Slope, marker rune) ([]int, error) {
	counts := make([]int, 0, len(slopes))
	for _, s := range slopes {
		n, err := g.CountHits(s, marker)
		if err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}

	return counts, nil
}

// Product multiplies counts together. An empty slice yields 1.
func Product(counts []int) int {
	p := 1
	for _, c := range counts {
		p *= c
	}

	return p
}

// Solve prints the tree count per configured slope and their product.
func Solve(_ context.Context, req *solver.Request) error {
	g, err := grid.New(req.Lines())
	if err != nil {
		return fmt.Errorf("day03: %w", err)
	}
	req.Log.Debug("map loaded", zap.Int("width", g.Width), zap.Int("height", g.Height))

	counts, err := Trees(g, req.Params.Slopes, req.Params.Marker())
	if err != nil {
		return fmt.Errorf("day03: %w", err)
	}
	for i, s := range req.Params.Slopes {
		req.Printf("%s Found %d trees\n", s, counts[i])
	}
	req.Printf("Answer = %d\n", Product(counts))

	return nil
}
