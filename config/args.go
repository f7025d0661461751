// Package config parses the command-line arguments and the optional YAML
// file of puzzle parameters.
package config

import (
	"errors"
	"strconv"
)

// DefaultDay is used when the day argument is not a number.
const DefaultDay = 1

// Argument-count errors. The messages are shown to the user verbatim.
var (
	ErrMissingArgs = errors.New("Day and filename arguments required")
	ErrTooManyArgs = errors.New("Too many arguments")
	ErrEmptyInput  = errors.New("filename must not be empty")
)

// Args is the parsed positional command line: which day to run and on what file.
type Args struct {
	Day      int
	Filename string
}

// ParseArgs validates and extracts `<day> <filename>` from args (program name
// already stripped). A day that does not parse as an integer falls back to
// DefaultDay.
func ParseArgs(args []string) (Args, error) {
	switch {
	case len(args) < 2:
		return Args{}, ErrMissingArgs
	case len(args) > 2:
		return Args{}, ErrTooManyArgs
	case args[1] == "":
		return Args{}, ErrEmptyInput
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		day = DefaultDay
	}

	return Args{Day: day, Filename: args[1]}, nil
}
