package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/QYUbit/sarsim/pkg/axlog"
	slogadapter "github.com/QYUbit/sarsim/pkg/axlog/slog_adapter"
	"github.com/QYUbit/sarsim/pkg/vector"
	"github.com/pkg/errors"
)

const usage = `usage: vecmath [flags] <command> [args]

commands:
  length v          euclidean norm
  unit v            v scaled to length 1
  orthogonal v      unit vector rotated +90°
  angle a b         angle between a and b
  heading v         angle between v and (1,0)
  bearing a b       heading from point a toward point b
  distance a b      distance between points a and b
  equal a b         approximate equality
  random low [high] integer vector in [low,high), or [0,low)

vectors are written x,y; malformed arguments exit 2, failed evaluation exits 1

flags:
`

// usageError marks a command line that cannot be evaluated as written.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{errors.Errorf(format, args...)}
}

type options struct {
	radians bool
	offset  float64
	tol     vector.Tolerance
	seed    uint64
	seedSet bool
	verbose bool
}

type command struct {
	arity int
	eval  func(opts options, vs []vector.Vector2D) string
}

func angleUnit(opts options, deg, rad float64) string {
	if opts.radians {
		return formatFloat(rad)
	}
	return formatFloat(deg)
}

var commands = map[string]command{
	"length": {1, func(_ options, vs []vector.Vector2D) string {
		return formatFloat(vs[0].Length())
	}},
	"unit": {1, func(_ options, vs []vector.Vector2D) string {
		return formatVector(vs[0].Unit())
	}},
	"orthogonal": {1, func(_ options, vs []vector.Vector2D) string {
		return formatVector(vs[0].Orthogonal())
	}},
	"angle": {2, func(opts options, vs []vector.Vector2D) string {
		return angleUnit(opts, vs[0].Angle(vs[1]), vs[0].AngleRadians(vs[1]))
	}},
	"heading": {1, func(opts options, vs []vector.Vector2D) string {
		return angleUnit(opts, vs[0].Heading(), vs[0].HeadingRadians())
	}},
	"bearing": {2, func(opts options, vs []vector.Vector2D) string {
		return angleUnit(opts,
			vs[0].RelativeHeading(vs[1], opts.offset),
			vs[0].RelativeHeadingRadians(vs[1], opts.offset))
	}},
	"distance": {2, func(_ options, vs []vector.Vector2D) string {
		return formatFloat(vs[0].Distance(vs[1]))
	}},
	"equal": {2, func(opts options, vs []vector.Vector2D) string {
		return strconv.FormatBool(vs[0].EqualWithin(vs[1], opts.tol))
	}},
}

// run executes one command line and returns the process exit status:
// 0 on success, 1 on evaluation errors and 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecmath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts options
	fs.BoolVar(&opts.radians, "radians", false, "print angles in radians")
	fs.Float64Var(&opts.offset, "offset", 0, "current heading in radians, added by bearing")
	fs.Float64Var(&opts.tol.Rel, "rtol", vector.DefaultTolerance.Rel, "relative tolerance for equal")
	fs.Float64Var(&opts.tol.Abs, "atol", vector.DefaultTolerance.Abs, "absolute tolerance for equal")
	fs.Func("seed", "seed for random; unset draws a random seed", func(s string) error {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		opts.seed, opts.seedSet = n, true
		return nil
	})
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fs)
			return 0
		}
		fmt.Fprintln(stderr, err)
		printUsage(stderr, fs)
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	var logger axlog.Logger = slogadapter.NewText(stderr, level)

	out, err := evaluate(opts, fs.Args(), logger)
	if err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			logger.Error("invalid command line", "error", err.Error())
			printUsage(stderr, fs)
			return 2
		}
		logger.Error("evaluation failed", "error", err.Error())
		return 1
	}

	fmt.Fprintln(stdout, out)
	return 0
}

func evaluate(opts options, args []string, logger axlog.Logger) (string, error) {
	if len(args) == 0 {
		return "", usageErrorf("missing command")
	}
	name, rest := args[0], args[1:]
	logger = logger.With("cmd", name)

	if name == "random" {
		return evalRandom(opts, rest, logger)
	}

	cmd, ok := commands[name]
	if !ok {
		return "", usageErrorf("unknown command %q", name)
	}
	if len(rest) != cmd.arity {
		return "", usageErrorf("%s takes %d vectors, got %d", name, cmd.arity, len(rest))
	}

	vs, err := parseVectors(rest)
	if err != nil {
		return "", &usageError{err}
	}
	logger.Debug("evaluating", "vectors", vs, "radians", opts.radians)

	return cmd.eval(opts, vs), nil
}

func evalRandom(opts options, args []string, logger axlog.Logger) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", usageErrorf("random takes 1 or 2 bounds, got %d", len(args))
	}
	bounds := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return "", &usageError{errors.Wrapf(err, "parse bound %q", a)}
		}
		bounds[i] = n
	}

	low, high := 0, bounds[0]
	if len(bounds) == 2 {
		low, high = bounds[0], bounds[1]
	}
	if high <= low {
		return "", errors.Errorf("empty range [%d, %d)", low, high)
	}

	var r *rand.Rand
	if opts.seedSet {
		r = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	logger.Debug("drawing", "low", low, "high", high, "seeded", opts.seedSet)

	return formatVector(vector.RandomFrom(r, low, high)), nil
}

func formatFloat(f float64) string {
	if f == 0 {
		// Drop the sign of negative zero.
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatVector(v vector.Vector2D) string {
	return formatFloat(v.X()) + "," + formatFloat(v.Y())
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, usage)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}
