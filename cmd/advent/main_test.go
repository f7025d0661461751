package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	code := run(context.Background(), args, &out)
	return out.String(), code
}

func TestRun_ArgumentErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"None", nil, "Problem parsing arguments: Day and filename arguments required\n"},
		{"OnlyDay", []string{"5"}, "Problem parsing arguments: Day and filename arguments required\n"},
		{"TooMany", []string{"5", "a", "b"}, "Problem parsing arguments: Too many arguments\n"},
		{"ListWithArgs", []string{"--list", "5"}, "Problem parsing arguments: Too many arguments\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := execute(t, tc.args...)
			assert.Equal(t, 1, code)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRun_Day5(t *testing.T) {
	path := writeFile(t, "passes.txt", "FFFBBBFRRR\nFFFBBBFRRL\nFFFBBBFRLL\n")
	out, code := execute(t, "5", path)
	require.Equal(t, 0, code, out)
	assert.Equal(t, "Advent 2020\n===========\n\nRunning Day 5\n"+
		"The highest seat ID is 119.\nMy seat ID is 117.\n", out)

	again, _ := execute(t, "5", path)
	assert.Equal(t, out, again)
}

func TestRun_NonNumericDayFallsBackToDayOne(t *testing.T) {
	path := writeFile(t, "report.txt", "1721\n979\n366\n299\n675\n1456\n")
	for _, day := range []string{"first", "days", "help"} {
		t.Run(day, func(t *testing.T) {
			out, code := execute(t, day, path)
			require.Equal(t, 0, code, out)
			assert.Contains(t, out, "Running Day 1\nFound 2 numbers! 1721 + 299 = 2020\nAnswer = 514579\n")
		})
	}
}

func TestRun_UnknownDay(t *testing.T) {
	for _, day := range []string{"25", "-1", "0"} {
		t.Run(day, func(t *testing.T) {
			out, code := execute(t, day, "whatever.txt")
			assert.Equal(t, 0, code)
			assert.True(t, strings.HasSuffix(out,
				"Unrecognised day: "+day+"\nCurrent supported days: [1, 2, 3, 4, 5, 6, 7, 8]\n"), out)
		})
	}

	out, code := execute(t, "--verbose", "-1", "whatever.txt")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Unrecognised day: -1\n")
}

func TestRun_ApplicationErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	out, code := execute(t, "3", missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Application error: ")
	assert.Contains(t, out, "missing.txt")

	bad := writeFile(t, "bad.txt", "12\nnot-a-number\n")
	out, code = execute(t, "1", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Application error: ")
	assert.Contains(t, out, "not-a-number")
}

func TestRun_ConfigFlag(t *testing.T) {
	rules := writeFile(t, "rules.txt", strings.Join([]string{
		"bright white bags contain 1 shiny gold bag.",
		"shiny gold bags contain 2 dark olive bags.",
		"dark olive bags contain no other bags.",
	}, "\n"))
	params := writeFile(t, "params.yaml", "bag_colour: dark olive\n")

	out, code := execute(t, "7", rules, "--config", params)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Number of bags that eventually contain a dark olive bag is 2\n")
	assert.Contains(t, out, "Number of bags that a dark olive bag contains is 0\n")

	broken := writeFile(t, "broken.yaml", "bag_colour: ''\n")
	out, code = execute(t, "7", rules, "--config", broken)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Application error: ")
	assert.Contains(t, out, "bag_colour")
}

func TestRun_List(t *testing.T) {
	out, code := execute(t, "--list")
	require.Equal(t, 0, code, out)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, " 1  Report Repair", lines[0])
	assert.Equal(t, " 8  Handheld Halting", lines[7])
}
