// Package day08 runs the handheld console's boot code.
//
// A program is a list of instructions "op ±n":
//
//	acc  add n to the accumulator, advance by one
//	jmp  advance by n
//	nop  advance by one
//
// Any other three-letter op is kept as OpUnknown and executed like nop, with
// a warning. A run stops the first time an instruction would execute twice
// (a loop) or when the program counter lands exactly one past the last
// instruction (clean termination).
package day08

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/input"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Handheld Halting"

var (
	// ErrMalformedInstruction indicates a line that is not "op ±n".
	ErrMalformedInstruction = errors.New("day08: malformed instruction")

	// ErrJumpOutOfRange indicates a jump to before the first instruction or
	// past the end of the program.
	ErrJumpOutOfRange = errors.New("day08: program counter out of range")

	// ErrNoRepair indicates no single jmp/nop swap makes the program terminate.
	ErrNoRepair = errors.New("day08: no single instruction swap terminates the program")
)

var instructionRe = regexp.MustCompile(`^([a-z]{3}) ([0-9+-]+)$`)

// Op is an instruction's operation.
type Op int

const (
	OpUnknown Op = iota
	OpAcc
	OpJmp
	OpNop
)

var opNames = map[string]Op{"acc": OpAcc, "jmp": OpJmp, "nop": OpNop}

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpAcc:
		return "acc"
	case OpJmp:
		return "jmp"
	case OpNop:
		return "nop"
	default:
		return "unknown"
	}
}

// Instruction is one parsed line. Name keeps the raw op text.
type Instruction struct {
	Op   Op
	Name string
	Arg  int
}

// String renders the instruction as it appears in source.
func (in Instruction) String() string {
	return fmt.Sprintf("%s %+d", in.Name, in.Arg)
}

// Program is a sequence of instructions addressed from 0.
type Program []Instruction

// ParseInstruction parses "op ±n".
func ParseInstruction(line string) (Instruction, error) {
	m := instructionRe.FindStringSubmatch(line)
	if m == nil {
		return Instruction{}, fmt.Errorf("%w: %q", ErrMalformedInstruction, line)
	}
	arg, err := strconv.Atoi(m[2])
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %q: %v", ErrMalformedInstruction, line, err)
	}

	return Instruction{Op: opNames[m[1]], Name: m[1], Arg: arg}, nil
}

// ParseProgram parses every line.
func ParseProgram(lines []string) (Program, error) {
	return input.ParseAll(lines, ParseInstruction)
}

// Result is the machine state when a run stops.
type Result struct {
	Acc        int
	Terminated bool // true on clean termination, false on a detected loop
}

// Machine executes a Program. It is stateless between runs.
type Machine struct {
	program Program
	log     *zap.Logger
}

// NewMachine returns a machine for program. A nil log discards warnings.
func NewMachine(program Program, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}

	return &Machine{program: program, log: log}
}

// Run executes from pc 0 until a loop or clean termination.
// Returns ErrJumpOutOfRange if pc leaves [0, len(program)].
func (m *Machine) Run() (Result, error) {
	executed := make([]bool, len(m.program))
	acc, pc := 0, 0
	for {
		if pc == len(m.program) {
			return Result{Acc: acc, Terminated: true}, nil
		}
		if pc < 0 || pc > len(m.program) {
			return Result{Acc: acc}, fmt.Errorf("%w: pc=%d len=%d", ErrJumpOutOfRange, pc, len(m.program))
		}
		if executed[pc] {
			return Result{Acc: acc}, nil
		}
		executed[pc] = true

		in := m.program[pc]
		switch in.Op {
		case OpAcc:
			acc += in.Arg
			pc++
		case OpJmp:
			pc += in.Arg
		case OpNop:
			pc++
		default:
			m.log.Warn("unknown instruction", zap.Int("pc", pc), zap.String("op", in.Name), zap.Int("arg", in.Arg))
			pc++
		}
	}
}

// Repair tries swapping each jmp for nop (and each nop for jmp), one at a
// time in program order, and returns the first variant's result that
// terminates cleanly together with the swapped index.
func Repair(program Program, log *zap.Logger) (Result, int, error) {
	variant := make(Program, len(program))
	for i, in := range program {
		var swapped Op
		switch in.Op {
		case OpJmp:
			swapped = OpNop
		case OpNop:
			swapped = OpJmp
		default:
			continue
		}
		copy(variant, program)
		variant[i] = Instruction{Op: swapped, Name: swapped.String(), Arg: in.Arg}

		res, err := NewMachine(variant, log).Run()
		if err != nil {
			// a swap that jumps off the tape is not a repair
			continue
		}
		if res.Terminated {
			return res, i, nil
		}
	}

	return Result{}, -1, ErrNoRepair
}

// Solve prints the accumulator when the program stops and, if it loops,
// the accumulator of the repaired program.
func Solve(_ context.Context, req *solver.Request) error {
	program, err := ParseProgram(req.Lines())
	if err != nil {
		return err
	}
	req.Log.Debug("program parsed", zap.Int("instructions", len(program)))

	res, err := NewMachine(program, req.Log).Run()
	if err != nil {
		return err
	}
	req.Printf("Result = %d\n", res.Acc)
	if res.Terminated {
		req.Printf("Program terminated without repair\n")
		return nil
	}

	fixed, at, err := Repair(program, req.Log)
	if err != nil {
		return err
	}
	req.Printf("Repaired instruction %d (%s), Result = %d\n", at+1, program[at], fixed.Acc)

	return nil
}
