// Package advent2020 solves the first eight puzzles of the 2020 Advent of
// Code calendar from the command line.
//
// Each day is a small, pure parse-and-count routine. The shared pieces
// underneath them are general enough to stand on their own:
//
//	config/  — positional argument parsing and YAML puzzle parameters
//	input/   — file reading, line/group splitting, generic parse/count/sum helpers
//	core/    — directed, weighted, thread-safe string-keyed Graph
//	bfs/     — iterative breadth-first walk, forward or backward, with hooks
//	dfs/     — iterative topological sort with cycle detection
//	grid/    — horizontally repeating rune map and a sliding cursor
//	solver/  — day → handler dispatch, coded errors, per-run Request
//	day01/ … day08/ — the puzzles themselves
//	cmd/advent/     — cobra CLI: `advent <day> <filename>`, `advent --list`
//
// Day 7 is where the graph packages earn their keep: bag rules become
// weighted edges outer → inner, "who can hold X" is a backward BFS, and
// "what does X hold" is a reverse topological fold, so cyclic rules are
// reported instead of recursing forever.
//
//	go install github.com/katalvlaran/advent2020/cmd/advent@latest
//	advent 7 input.txt --config params.yaml
package advent2020
