// SPDX-License-Identifier: MIT

// Package cli implements the command-line wrappers around epg and vfa.
// Each Run* function parses argv, writes results to stdout and diagnostics
// to stderr, and returns the process exit code.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/epgsim/epg"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const msgWrongInputs = "ERROR: Wrong number of inputs."

// NewFlagSet returns a clean FlagSet with ContinueOnError writing to stderr.
func NewFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

// numericPositionals inserts "--" before the first argument that parses as a
// number, so a negative leading positional is not read as a flag. Values of
// non-boolean flags are skipped.
func numericPositionals(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			return args
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")

			return append(out, args[i:]...)
		}
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++
		}
	}

	return args
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })

	return ok && bf.IsBoolFlag()
}

// Run is the spgr-epg entry point.
//
// Positionals: FA PHI_INC TR T1 T2 (degrees, degrees, then a common time
// unit). Exactly five are required; any other count prints
// "ERROR: Wrong number of inputs." and returns ExitFailure with no number on
// stdout. A negative first value is taken as a positional, not a flag.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := NewFlagSet("spgr-epg", stderr)
	pulses := fs.Int("pulses", epg.DefaultPulses, "number of RF pulses N (>= 2)")
	strict := fs.Bool("strict", false, "reject non-finite or non-physical parameters")
	trace := fs.Bool("trace", false, "print the signal after every pulse")
	quiet := fs.Bool("quiet", false, "suppress warnings")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: spgr-epg [flags] [--] FA PHI_INC TR T1 T2")
		fs.PrintDefaults()
	}
	if err := fs.Parse(numericPositionals(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}

		return ExitUsage
	}

	pos := fs.Args()
	if len(pos) != 5 {
		_, _ = fmt.Fprintln(stderr, msgWrongInputs)

		return ExitFailure
	}
	vals, err := parseFloats(pos)
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitUsage
	}
	if *pulses < 2 {
		errorf(stderr, "-pulses=%d must be >= 2", *pulses)

		return ExitUsage
	}

	opts := []epg.Option{epg.WithPulses(*pulses)}
	if *strict {
		opts = append(opts, epg.WithValidation())
	}
	sim := epg.New(opts...)
	p := epg.Params{FlipAngle: vals[0], PhaseIncrement: vals[1], TR: vals[2], T1: vals[3], T2: vals[4]}

	var signal float64
	if *trace {
		values, err := sim.Trace(p)
		if err != nil {
			errorf(stderr, "%v", err)

			return ExitFailure
		}
		for j, v := range values {
			_, _ = fmt.Fprintf(stdout, "%d\t%f\n", j+1, v)
		}
		signal = values[len(values)-1]
	} else {
		signal, err = sim.Signal(p)
		if err != nil {
			errorf(stderr, "%v", err)

			return ExitFailure
		}
		_, _ = fmt.Fprintf(stdout, "%f\n", signal)
	}

	if math.IsNaN(signal) || math.IsInf(signal, 0) {
		warnf(stderr, *quiet, "non-finite signal %v: check TR/T1/T2 (use -strict to reject)", signal)
	}

	return ExitOK
}

// parseFloats parses every argument strictly; the first failure names the
// offending position.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: invalid number %q", i+1, a)
		}
		out[i] = v
	}

	return out, nil
}
