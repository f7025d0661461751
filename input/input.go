// Package input reads puzzle files and splits them into the shapes the
// solvers consume: whole content, lines, or blank-line separated groups.
//
// It also provides the small generic pipeline every day follows:
// parse each record, then reduce the parsed records to an answer.
package input

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a puzzle file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input: file is not valid UTF-8")

// ReadContent returns the whole file as a string with CRLF normalized to LF.
// Missing or unreadable files surface the underlying *fs.PathError.
func ReadContent(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	return strings.ReplaceAll(string(raw), "\r\n", "\n"), nil
}

// ReadLines returns the file split into lines (see Lines).
func ReadLines(path string) ([]string, error) {
	content, err := ReadContent(path)
	if err != nil {
		return nil, err
	}

	return Lines(content), nil
}

// Lines splits content on '\n' and drops trailing empty lines, so a final
// newline does not produce a phantom record. Interior empty lines are kept.
func Lines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Groups splits content into groups separated by one or more blank lines.
// Each group is the list of its non-empty lines.
func Groups(content string) [][]string {
	var (
		groups  [][]string
		current []string
	)
	for _, line := range Lines(content) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}
