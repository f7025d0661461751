// Package day01 finds the expense entries that sum to a target value.
package day01

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/input"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Report Repair"

// ErrNoSolution is returned when no combination of entries reaches the target.
var ErrNoSolution = errors.New("day01: no entries sum to target")

// ParseEntries converts each non-blank line into an integer.
func ParseEntries(lines []string) ([]int, error) {
	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			trimmed = append(trimmed, s)
		}
	}

	return input.ParseAll(trimmed, strconv.Atoi)
}

// FindPair returns two entries (at distinct indexes) that sum to target.
// The pair whose second element appears earliest in nums wins.
func FindPair(nums []int, target int) (a, b int, ok bool) {
	seen := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		if _, hit := seen[target-n]; hit {
			return target - n, n, true
		}
		seen[n] = struct{}{}
	}

	return 0, 0, false
}

// FindTriple returns three entries (at distinct indexes) that sum to target,
// in ascending order.
func FindTriple(nums []int, target int) (a, b, c int, ok bool) {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)
	for i := 0; i < len(sorted)-2; i++ {
		lo, hi := i+1, len(sorted)-1
		for lo < hi {
			switch sum := sorted[i] + sorted[lo] + sorted[hi]; {
			case sum == target:
				return sorted[i], sorted[lo], sorted[hi], true
			case sum < target:
				lo++
			default:
				hi--
			}
		}
	}

	return 0, 0, 0, false
}

// Solve prints the products of the matching pair and triple.
func Solve(_ context.Context, req *solver.Request) error {
	nums, err := ParseEntries(req.Lines())
	if err != nil {
		return err
	}
	target := req.Params.ExpenseTarget
	req.Log.Debug("entries parsed", zap.Int("count", len(nums)))

	a, b, ok := FindPair(nums, target)
	if !ok {
		return fmt.Errorf("%w: pair for %d", ErrNoSolution, target)
	}
	req.Printf("Found 2 numbers! %d + %d = %d\n", a, b, target)
	req.Printf("Answer = %d\n", a*b)

	x, y, z, ok := FindTriple(nums, target)
	if !ok {
		return fmt.Errorf("%w: triple for %d", ErrNoSolution, target)
	}
	req.Printf("Found 3 numbers! %d + %d + %d = %d\n", x, y, z, target)
	req.Printf("Answer = %d\n", x*y*z)

	return nil
}
