// Package day02 checks passwords against the corporate policy they were
// stored with.
//
// Each input line has the form "low-high c: password". Two readings of the
// policy exist:
//
//   - CountPolicy: c occurs between low and high times (inclusive).
//   - PositionPolicy: exactly one of the 1-indexed positions low and high
//     holds c. A password shorter than high is invalid under this reading.
package day02

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/input"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Password Philosophy"

var (
	// ErrMalformedRecord indicates a line that does not match "low-high c: password".
	ErrMalformedRecord = errors.New("day02: malformed password record")

	// ErrBadBounds indicates bounds that are not positive or are out of order.
	ErrBadBounds = errors.New("day02: policy bounds must satisfy 1 <= low <= high")
)

// Record is one parsed password line.
type Record struct {
	Low      int
	High     int
	Char     byte
	Password string
}

// ParseRecord parses "low-high c: password".
func ParseRecord(line string) (Record, error) {
	policy, password, ok := strings.Cut(line, ": ")
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	bounds, char, ok := strings.Cut(policy, " ")
	if !ok || len(char) != 1 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	lowStr, highStr, ok := strings.Cut(bounds, "-")
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	low, err := strconv.Atoi(lowStr)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, line, err)
	}
	high, err := strconv.Atoi(highStr)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, line, err)
	}
	if low < 1 || high < low {
		return Record{}, fmt.Errorf("%w: %d-%d", ErrBadBounds, low, high)
	}

	return Record{Low: low, High: high, Char: char[0], Password: password}, nil
}

// CountPolicy reports whether Char occurs between Low and High times.
func CountPolicy(r Record) bool {
	n := strings.Count(r.Password, string(r.Char))
	return n >= r.Low && n <= r.High
}

// PositionPolicy reports whether exactly one of positions Low and High
// (1-indexed) holds Char. Passwords too short to have position High fail.
func PositionPolicy(r Record) bool {
	if r.High > len(r.Password) {
		return false
	}
	return (r.Password[r.Low-1] == r.Char) != (r.Password[r.High-1] == r.Char)
}

// Solve prints how many passwords satisfy each policy.
func Solve(_ context.Context, req *solver.Request) error {
	records, err := input.ParseAll(req.Lines(), ParseRecord)
	if err != nil {
		return err
	}
	req.Log.Debug("records parsed", zap.Int("count", len(records)))

	req.Printf("Found %d valid passwords (count policy)\n", input.CountIf(records, CountPolicy))
	req.Printf("Found %d valid passwords (position policy)\n", input.CountIf(records, PositionPolicy))

	return nil
}
