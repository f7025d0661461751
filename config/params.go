package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent2020/grid"
)

// Group answer modes for day 6.
const (
	GroupEveryone = "everyone" // characters answered by every line in a group
	GroupAnyone   = "anyone"   // characters answered by at least one line
)

// ErrInvalidParams wraps every Params validation failure.
var ErrInvalidParams = errors.New("config: invalid puzzle parameters")

// Params are the tunable puzzle constants. Zero-config runs use DefaultParams.
//
// Example YAML:
//
//	expense_target: 2020
//	slopes:
//	  - {right: 3, down: 1}
//	tree_marker: "#"
//	bag_colour: shiny gold
//	group_mode: everyone
type Params struct {
	ExpenseTarget int          `yaml:"expense_target"`
	Slopes        []grid.Slope `yaml:"slopes"`
	TreeMarker    string       `yaml:"tree_marker"`
	BagColour     string       `yaml:"bag_colour"`
	GroupMode     string       `yaml:"group_mode"`
}

// DefaultParams returns the constants the puzzles are defined with.
func DefaultParams() Params {
	return Params{
		ExpenseTarget: 2020,
		Slopes:        grid.DefaultSlopes(),
		TreeMarker:    string(grid.DefaultMarker),
		BagColour:     "shiny gold",
		GroupMode:     GroupEveryone,
	}
}

// LoadParams reads a YAML file and overlays it on DefaultParams.
// Unknown keys are rejected. An empty path returns the defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("%w: %s: %v", ErrInvalidParams, path, err)
	}

	return p, p.Validate()
}

// Validate checks every field and reports the first problem found.
func (p Params) Validate() error {
	if p.ExpenseTarget <= 0 {
		return fmt.Errorf("%w: expense_target must be positive, got %d", ErrInvalidParams, p.ExpenseTarget)
	}
	if len(p.Slopes) == 0 {
		return fmt.Errorf("%w: at least one slope is required", ErrInvalidParams)
	}
	for _, s := range p.Slopes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	}
	if utf8.RuneCountInString(p.TreeMarker) != 1 {
		return fmt.Errorf("%w: tree_marker must be a single character, got %q", ErrInvalidParams, p.TreeMarker)
	}
	if p.BagColour == "" {
		return fmt.Errorf("%w: bag_colour must not be empty", ErrInvalidParams)
	}
	switch p.GroupMode {
	case GroupEveryone, GroupAnyone:
	default:
		return fmt.Errorf("%w: group_mode must be %q or %q, got %q", ErrInvalidParams, GroupEveryone, GroupAnyone, p.GroupMode)
	}

	return nil
}

// Marker returns TreeMarker as a rune. Call after Validate.
func (p Params) Marker() rune {
	r, _ := utf8.DecodeRuneInString(p.TreeMarker)
	return r
}
