// Command advent runs one day's puzzle solver against an input file.
//
//	advent <day> <filename> [--config params.yaml] [--verbose]
//	advent --list
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/agilira/go-errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent2020/config"
	"github.com/katalvlaran/advent2020/day01"
	"github.com/katalvlaran/advent2020/day02"
	"github.com/katalvlaran/advent2020/day03"
	"github.com/katalvlaran/advent2020/day04"
	"github.com/katalvlaran/advent2020/day05"
	"github.com/katalvlaran/advent2020/day06"
	"github.com/katalvlaran/advent2020/day07"
	"github.com/katalvlaran/advent2020/day08"
	"github.com/katalvlaran/advent2020/solver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// run executes the CLI and maps failures to the two user-facing messages.
// It returns the process exit status.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	root := newRootCmd(stdout)
	root.SetArgs(positional(root, args))
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if hasCode(err, solver.ErrCodeInvalidArgs) {
		fmt.Fprintf(stdout, "Problem parsing arguments: %v\n", cause(err))
	} else {
		fmt.Fprintf(stdout, "Application error: %v\n", cause(err))
	}

	return 1
}

// cli holds flag values and the logger shared by the commands.
type cli struct {
	stdout     io.Writer
	verbose    bool
	list       bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "advent <day> <filename>",
		Short: "Solve a 2020 advent puzzle",
		Long: `Runs the solver for <day> on the puzzle input in <filename> and prints the answers.

A non-numeric day falls back to day 1; a negative one is reported as unsupported.
Puzzle constants (expense target, slopes, tree marker, bag colour, group mode)
can be overridden with --config. --list prints the supported days.`,
		Args: func(_ *cobra.Command, args []string) error {
			if c.list {
				if len(args) > 0 {
					return errors.Wrap(config.ErrTooManyArgs, solver.ErrCodeInvalidArgs, config.ErrTooManyArgs.Error())
				}
				return nil
			}
			if _, err := config.ParseArgs(args); err != nil {
				return errors.Wrap(err, solver.ErrCodeInvalidArgs, err.Error())
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initLogger,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
		RunE: c.solve,
	}
	root.SetOut(stdout)
	root.SetErr(stdout)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.Flags().StringVarP(&c.configPath, "config", "c", "", "YAML file overriding puzzle parameters")
	root.Flags().BoolVarP(&c.list, "list", "l", false, "list the supported days and exit")

	return root
}

// positional puts every token that is not a known flag (or a flag's value)
// after "--", keeping their order. "-1" is a day, not a shorthand flag.
func positional(cmd *cobra.Command, args []string) []string {
	var flags, rest []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}
		if _, err := strconv.Atoi(a); err == nil || !strings.HasPrefix(a, "-") || a == "-" {
			rest = append(rest, a)
			continue
		}
		flags = append(flags, a)
		if f := lookupFlag(cmd, a); f != nil && f.NoOptDefVal == "" && !strings.Contains(a, "=") && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	return append(append(flags, "--"), rest...)
}

// lookupFlag resolves "--name" or "-n" against the local and persistent flags.
func lookupFlag(cmd *cobra.Command, tok string) *pflag.Flag {
	name := strings.TrimLeft(tok, "-")
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		switch {
		case strings.HasPrefix(tok, "--"):
			if f := fs.Lookup(name); f != nil {
				return f
			}
		case len(name) == 1:
			if f := fs.ShorthandLookup(name); f != nil {
				return f
			}
		}
	}

	return nil
}

// initLogger builds the stderr logger: warnings by default, debug with --verbose.
func (c *cli) initLogger(*cobra.Command, []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger

	return nil
}

func (c *cli) solve(cmd *cobra.Command, args []string) error {
	if c.list {
		for _, e := range newDispatcher().Entries() {
			fmt.Fprintf(c.stdout, "%2d  %s\n", e.Day, e.Title)
		}
		return nil
	}
	parsed, err := config.ParseArgs(args)
	if err != nil {
		return errors.Wrap(err, solver.ErrCodeInvalidArgs, err.Error())
	}
	params, err := config.LoadParams(c.configPath)
	if err != nil {
		return errors.Wrap(err, solver.ErrCodeConfig, fmt.Sprintf("failed to load parameters: %v", err))
	}
	c.logger.Debug("parameters loaded", zap.String("config", c.configPath), zap.Any("params", params))

	return newDispatcher(
		solver.WithOutput(c.stdout),
		solver.WithLogger(c.logger),
		solver.WithParams(params),
	).Run(cmd.Context(), parsed)
}

// newDispatcher registers every implemented day.
func newDispatcher(opts ...solver.Option) *solver.Dispatcher {
	d := solver.NewDispatcher(opts...)
	d.Register(1, day01.Title, day01.Solve)
	d.Register(2, day02.Title, day02.Solve)
	d.Register(3, day03.Title, day03.Solve)
	d.Register(4, day04.Title, day04.Solve)
	d.Register(5, day05.Title, day05.Solve)
	d.Register(6, day06.Title, day06.Solve)
	d.Register(7, day07.Title, day07.Solve)
	d.Register(8, day08.Title, day08.Solve)

	return d
}

// hasCode reports whether any error in the chain carries code.
func hasCode(err error, code string) bool {
	var coder errors.ErrorCoder
	return stderrors.As(err, &coder) && string(coder.ErrorCode()) == code
}

// cause strips the coded wrapper so users see the underlying message.
func cause(err error) error {
	if inner := stderrors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
