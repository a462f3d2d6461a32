// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/epgsim/epg"
	"github.com/katalvlaran/epgsim/vfa"
)

// RunT1Map is the vfa-t1map entry point. It fits the correction of the
// two-angle protocol given by -fa1/-fa2/-tr, then reads one voxel per line
// from stdin
//
//	S1 S2 [B1]
//
// (B1 defaults to 1; blank lines and lines starting with '#' are skipped)
// and prints the corrected T1 of each voxel, or NaN when masked.
func RunT1Map(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	def := vfa.DefaultCorrectionConfig()

	fs := NewFlagSet("vfa-t1map", stderr)
	tr := fs.Float64("tr", 0, "repetition time, same unit as -t2 (required, > 0)")
	fa1 := fs.Float64("fa1", 0, "nominal flip angle of the first acquisition (degrees, required)")
	fa2 := fs.Float64("fa2", 0, "nominal flip angle of the second acquisition (degrees, required)")
	maxT1 := fs.Float64("max-t1", vfa.DefaultMaxT1, "largest plausible T1; larger estimates print NaN")
	inc := fs.Float64("phase-inc", def.PhaseIncrement, "RF-spoiling phase increment (degrees)")
	t2 := fs.Float64("t2", def.T2, "T2 used in the calibration")
	pulses := fs.Int("pulses", epg.DefaultPulses, "number of RF pulses N (>= 2)")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: vfa-t1map -tr TR -fa1 FA1 -fa2 FA2 [flags] < voxels")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}

		return ExitUsage
	}

	switch {
	case *tr <= 0:
		errorf(stderr, "-tr must be > 0")

		return ExitUsage
	case *fa1 == 0 || *fa2 == 0:
		errorf(stderr, "-fa1 and -fa2 are required")

		return ExitUsage
	case *pulses < 2:
		errorf(stderr, "-pulses=%d must be >= 2", *pulses)

		return ExitUsage
	case fs.NArg() != 0:
		errorf(stderr, "unexpected arguments %v: voxels are read from stdin", fs.Args())

		return ExitUsage
	}

	signals, b1, err := readVoxels(stdin)
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitUsage
	}

	cfg := def
	cfg.PhaseIncrement = *inc
	cfg.T2 = *t2
	cfg.Simulator = epg.New(epg.WithPulses(*pulses), epg.WithValidation())

	angles := [2]float64{*fa1, *fa2}
	corr, err := vfa.Fit(angles[:], *tr, cfg)
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitFailure
	}
	t1, err := corr.T1Map(signals, angles, b1, *tr, vfa.T1Options{MaxT1: *maxT1})
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitFailure
	}

	w := bufio.NewWriter(stdout)
	for _, v := range t1 {
		_, _ = fmt.Fprintf(w, "%f\n", v)
	}
	if err := w.Flush(); err != nil {
		errorf(stderr, "write: %v", err)

		return ExitFailure
	}

	return ExitOK
}

// readVoxels parses "S1 S2 [B1]" lines into the per-voxel columns.
func readVoxels(r io.Reader) (signals [2][]float64, b1 []float64, err error) {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return signals, nil, fmt.Errorf("line %d: want S1 S2 [B1], got %d fields", line, len(fields))
		}
		vals := [3]float64{2: 1}
		for i, f := range fields {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return signals, nil, fmt.Errorf("line %d: invalid number %q", line, f)
			}
			vals[i] = v
		}
		signals[0] = append(signals[0], vals[0])
		signals[1] = append(signals[1], vals[1])
		b1 = append(b1, vals[2])
	}
	if err := sc.Err(); err != nil {
		return signals, nil, fmt.Errorf("read voxels: %w", err)
	}

	return signals, b1, nil
}
