package day08_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/advent2020/config"
	"github.com/katalvlaran/advent2020/day08"
	"github.com/katalvlaran/advent2020/solver"
)

const boot = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
`

func parse(t *testing.T, src string) day08.Program {
	t.Helper()
	p, err := day08.ParseProgram(strings.Split(strings.TrimSuffix(src, "\n"), "\n"))
	require.NoError(t, err)
	return p
}

func TestParseInstruction(t *testing.T) {
	cases := []struct {
		line string
		want day08.Instruction
	}{
		{"acc +1", day08.Instruction{Op: day08.OpAcc, Name: "acc", Arg: 1}},
		{"jmp -3", day08.Instruction{Op: day08.OpJmp, Name: "jmp", Arg: -3}},
		{"nop +0", day08.Instruction{Op: day08.OpNop, Name: "nop", Arg: 0}},
		{"hcf +7", day08.Instruction{Op: day08.OpUnknown, Name: "hcf", Arg: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := day08.ParseInstruction(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.line, got.String())
		})
	}

	for _, bad := range []string{"", "acc", "ACC +1", "acc 1x", "acc +-1", "accu +1"} {
		_, err := day08.ParseInstruction(bad)
		assert.ErrorIs(t, err, day08.ErrMalformedInstruction, bad)
	}
}

func TestMachine_Run(t *testing.T) {
	m := day08.NewMachine(parse(t, boot), nil)
	res, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, day08.Result{Acc: 5, Terminated: false}, res)

	again, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestMachine_Termination(t *testing.T) {
	res, err := day08.NewMachine(parse(t, "acc +2\njmp +2\nacc +100\nacc -1"), nil).Run()
	require.NoError(t, err)
	assert.Equal(t, day08.Result{Acc: 1, Terminated: true}, res)

	res, err = day08.NewMachine(nil, nil).Run()
	require.NoError(t, err)
	assert.True(t, res.Terminated)
}

func TestMachine_OutOfRange(t *testing.T) {
	for _, src := range []string{"jmp +5", "acc +1\njmp -2"} {
		_, err := day08.NewMachine(parse(t, src), nil).Run()
		assert.ErrorIs(t, err, day08.ErrJumpOutOfRange, src)
	}
}

func TestMachine_UnknownOpWarns(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	res, err := day08.NewMachine(parse(t, "hcf +3\nacc +2"), zap.New(obs)).Run()
	require.NoError(t, err)
	assert.Equal(t, day08.Result{Acc: 2, Terminated: true}, res)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "unknown instruction", logs.All()[0].Message)
}

func TestRepair(t *testing.T) {
	res, at, err := day08.Repair(parse(t, boot), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, at)
	assert.Equal(t, day08.Result{Acc: 8, Terminated: true}, res)

	// either swap still leaves a self-jump reachable
	_, at, err = day08.Repair(parse(t, "jmp +0\njmp -1"), nil)
	assert.ErrorIs(t, err, day08.ErrNoRepair)
	assert.Equal(t, -1, at)
}

func TestSolve(t *testing.T) {
	var out bytes.Buffer
	req := &solver.Request{Content: boot, Params: config.DefaultParams(), Out: &out, Log: zap.NewNop()}
	require.NoError(t, day08.Solve(context.Background(), req))
	assert.Equal(t, "Result = 5\nRepaired instruction 8 (jmp -4), Result = 8\n", out.String())

	out.Reset()
	req.Content = "acc +3\n"
	require.NoError(t, day08.Solve(context.Background(), req))
	assert.Equal(t, "Result = 3\nProgram terminated without repair\n", out.String())
}

func ExampleMachine_Run() {
	prog, _ := day08.ParseProgram([]string{"nop +0", "acc +1", "jmp -2"})
	res, _ := day08.NewMachine(prog, nil).Run()
	fmt.Println(res.Acc, res.Terminated)
	// Output: 1 false
}
