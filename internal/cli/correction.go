// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/epgsim/epg"
	"github.com/katalvlaran/epgsim/vfa"
)

// RunCorrection is the vfa-correction entry point. It fits the correction
// for the nominal flip angles given as positionals and prints
//
//	A: a0 a1 a2
//	B: b0 b1 b2
//
// (ascending coefficients, T1 = A(B1) + B(B1)·T1').
func RunCorrection(args []string, stdout, stderr io.Writer) int {
	def := vfa.DefaultCorrectionConfig()

	fs := NewFlagSet("vfa-correction", stderr)
	tr := fs.Float64("tr", 0, "repetition time, same unit as -t2 (required, > 0)")
	inc := fs.Float64("phase-inc", def.PhaseIncrement, "RF-spoiling phase increment (degrees)")
	t2 := fs.Float64("t2", def.T2, "T2 used in the simulations")
	pulses := fs.Int("pulses", epg.DefaultPulses, "number of RF pulses N (>= 2)")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: vfa-correction -tr TR [flags] FA1 FA2 [FA...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(numericPositionals(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}

		return ExitUsage
	}

	if *tr <= 0 {
		errorf(stderr, "-tr must be > 0")

		return ExitUsage
	}
	if *pulses < 2 {
		errorf(stderr, "-pulses=%d must be >= 2", *pulses)

		return ExitUsage
	}
	angles, err := parseFloats(fs.Args())
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitUsage
	}

	cfg := def
	cfg.PhaseIncrement = *inc
	cfg.T2 = *t2
	cfg.Simulator = epg.New(epg.WithPulses(*pulses), epg.WithValidation())

	corr, err := vfa.Fit(angles, *tr, cfg)
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitFailure
	}
	_, _ = fmt.Fprintf(stdout, "A: %s\nB: %s\n", formatPoly(corr.A), formatPoly(corr.B))

	return ExitOK
}

func formatPoly(p vfa.Polynomial) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%.9g", c)
	}

	return strings.Join(parts, " ")
}
