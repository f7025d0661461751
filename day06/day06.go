// Package day06 tallies customs declaration answers per travel group.
//
// A group is a blank-line separated block; each line is one person's
// answers, one lowercase letter per "yes". Two tallies exist per group:
// Everyone counts letters on every line, Anyone counts letters on any line.
// Both are reported; the configured group mode picks the headline sum.
package day06

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/config"
	"github.com/katalvlaran/advent2020/input"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Custom Customs"

// tally counts, per answer character, how many lines in group contain it.
// Repeats within one line count once.
func tally(group []string) map[rune]int {
	counts := make(map[rune]int)
	for _, line := range group {
		seen := make(map[rune]struct{}, len(line))
		for _, r := range strings.TrimSpace(line) {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			counts[r]++
		}
	}

	return counts
}

// Everyone returns how many characters appear on every line of group.
func Everyone(group []string) int {
	n := 0
	for _, c := range tally(group) {
		if c == len(group) {
			n++
		}
	}

	return n
}

// Anyone returns how many distinct characters appear anywhere in group.
func Anyone(group []string) int {
	return len(tally(group))
}

// Solve prints both group sums and the headline sum for the configured mode.
func Solve(_ context.Context, req *solver.Request) error {
	groups := req.Groups()
	for i, g := range groups {
		req.Log.Debug("group",
			zap.Int("index", i),
			zap.Int("size", len(g)),
			zap.Int("everyone", Everyone(g)),
			zap.Int("anyone", Anyone(g)),
		)
	}

	everyone := input.Sum(groups, Everyone)
	anyone := input.Sum(groups, Anyone)
	req.Printf("Questions answered by everyone in a group: %d\n", everyone)
	req.Printf("Questions answered by anyone in a group: %d\n", anyone)

	headline := everyone
	if req.Params.GroupMode == config.GroupAnyone {
		headline = anyone
	}
	req.Printf("Sum of questions are %d\n", headline)

	return nil
}
