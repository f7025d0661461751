// Package solver maps a day number to its puzzle handler, loads the puzzle
// input, and runs the handler with the configured output, logger and parameters.
//
// Failures leaving the dispatcher carry a machine-readable code
// (github.com/agilira/go-errors) so the CLI can choose its message and exit status.
package solver

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agilira/go-errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/config"
	"github.com/katalvlaran/advent2020/input"
)

// Error codes attached to dispatcher failures.
const (
	ErrCodeInvalidArgs = "ADVENT_INVALID_ARGS"
	ErrCodeIO          = "ADVENT_IO_ERROR"
	ErrCodeSolve       = "ADVENT_SOLVE_ERROR"
	ErrCodeConfig      = "ADVENT_CONFIG_ERROR"
)

// Request is everything a handler needs for one run.
type Request struct {
	Day     int
	Content string // whole input file, CRLF normalized
	Params  config.Params
	Out     io.Writer
	Log     *zap.Logger
}

// Lines returns the input split into lines.
func (r *Request) Lines() []string { return input.Lines(r.Content) }

// Groups returns the input split into blank-line separated groups.
func (r *Request) Groups() [][]string { return input.Groups(r.Content) }

// Printf writes one formatted answer line to the output.
func (r *Request) Printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

// Handler solves one day. It must be deterministic for a given Request.
type Handler func(ctx context.Context, req *Request) error

// Entry is a registered day.
type Entry struct {
	Day     int
	Title   string
	Handler Handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where answers are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		if w != nil {
			d.out = w
		}
	}
}

// WithLogger sets the diagnostic logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithParams sets the puzzle parameters (default config.DefaultParams()).
func WithParams(p config.Params) Option {
	return func(d *Dispatcher) { d.params = p }
}

// Dispatcher is the day → handler table.
type Dispatcher struct {
	entries map[int]Entry
	out     io.Writer
	log     *zap.Logger
	params  config.Params
}

// NewDispatcher returns an empty dispatcher configured by opts.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		entries: make(map[int]Entry),
		out:     os.Stdout,
		log:     zap.NewNop(),
		params:  config.DefaultParams(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Register adds a handler for day. Registering a day twice is a programming
// error and panics.
func (d *Dispatcher) Register(day int, title string, h Handler) {
	if _, ok := d.entries[day]; ok {
		panic(fmt.Sprintf("solver: duplicate handler registered for day %d", day))
	}
	d.entries[day] = Entry{Day: day, Title: title, Handler: h}
}

// Entries returns the registered days in ascending order.
func (d *Dispatcher) Entries() []Entry {
	list := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Day < list[j].Day })

	return list
}

// Run prints the banner, then either runs the handler for args.Day on
// args.Filename or, for an unknown day, prints the supported days.
// An unknown day is not an error.
func (d *Dispatcher) Run(ctx context.Context, args config.Args) error {
	fmt.Fprintln(d.out, "Advent 2020")
	fmt.Fprintln(d.out, "===========")
	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, "Running Day %d\n", args.Day)

	entry, ok := d.entries[args.Day]
	if !ok {
		d.help(args.Day)
		return nil
	}

	content, err := input.ReadContent(args.Filename)
	if err != nil {
		return errors.Wrap(err, ErrCodeIO, fmt.Sprintf("failed to read puzzle input: %v", err))
	}

	log := d.log.With(zap.Int("day", args.Day), zap.String("file", args.Filename))
	log.Debug("input loaded", zap.Int("bytes", len(content)))

	req := &Request{
		Day:     args.Day,
		Content: content,
		Params:  d.params,
		Out:     d.out,
		Log:     log,
	}
	if err := entry.Handler(ctx, req); err != nil {
		return errors.Wrap(err, ErrCodeSolve, fmt.Sprintf("day %d: %v", args.Day, err))
	}

	return nil
}

// help lists the supported days for an unrecognised day number.
func (d *Dispatcher) help(day int) {
	days := make([]string, 0, len(d.entries))
	for _, e := range d.Entries() {
		days = append(days, fmt.Sprint(e.Day))
	}
	fmt.Fprintf(d.out, "Unrecognised day: %d\n", day)
	fmt.Fprintf(d.out, "Current supported days: [%s]\n", strings.Join(days, ", "))
}
