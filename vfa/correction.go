// SPDX-License-Identifier: MIT

package vfa

import (
	"fmt"
	"math"

	"github.com/katalvlaran/epgsim/epg"
	"gonum.org/v1/gonum/stat"
)

// Fit calibrates the RF-spoiling correction of a VFA protocol with nominal
// flip angles flipAnglesDeg (degrees) and repetition time tr.
//
// Algorithm:
//  1. For each RF scale C and each true T1, simulate the SPGR signal S_k of
//     every nominal angle α_k scaled by C.
//  2. Fit S/α = ρ + slope·(S·α) (α nominal, radians); the apparent T1 is
//     −slope·2·TR/C².
//  3. Regress true T1 on apparent T1: T1 = A_C + B_C·T1_app.
//  4. Fit polynomials of cfg.Degree to A_C and B_C over C.
//
// Errors:
//   - ErrTooFewAngles : fewer than two flip angles.
//   - ErrDegenerateFit: fewer than two distinct flip angles or T1 values, a
//     regression that yields NaN, or too few RF scales for the polynomial
//     degree.
//   - any error of cfg.Simulator (e.g. epg.ErrInvalidParams in strict mode).
func Fit(flipAnglesDeg []float64, tr float64, cfg CorrectionConfig) (Correction, error) {
	if len(flipAnglesDeg) < 2 {
		return Correction{}, fmt.Errorf("Fit: %d flip angles: %w", len(flipAnglesDeg), ErrTooFewAngles)
	}
	if distinct(flipAnglesDeg) < 2 {
		return Correction{}, fmt.Errorf("Fit: flip angles %v: %w", flipAnglesDeg, ErrDegenerateFit)
	}
	if distinct(cfg.T1Range) < 2 {
		return Correction{}, fmt.Errorf("Fit: T1 samples %v: %w", cfg.T1Range, ErrDegenerateFit)
	}
	sim := cfg.Simulator
	if sim == nil {
		sim = epg.New()
	}

	alphas := make([]float64, len(flipAnglesDeg))
	for k, fa := range flipAnglesDeg {
		alphas[k] = fa * math.Pi / 180
	}

	a := make([]float64, len(cfg.RFScales))
	b := make([]float64, len(cfg.RFScales))
	x := make([]float64, len(flipAnglesDeg))
	y := make([]float64, len(flipAnglesDeg))
	apparent := make([]float64, len(cfg.T1Range))

	for c, scale := range cfg.RFScales {
		for i, t1 := range cfg.T1Range {
			for k, fa := range flipAnglesDeg {
				s, err := sim.Signal(epg.Params{
					FlipAngle:      fa * scale,
					PhaseIncrement: cfg.PhaseIncrement,
					TR:             tr,
					T1:             t1,
					T2:             cfg.T2,
				})
				if err != nil {
					return Correction{}, fmt.Errorf("Fit: C=%v T1=%v FA=%v: %w", scale, t1, fa, err)
				}
				x[k] = s * alphas[k]
				y[k] = s / alphas[k]
			}
			_, slope := stat.LinearRegression(x, y, nil, false)
			if math.IsNaN(slope) {
				return Correction{}, fmt.Errorf("Fit: C=%v T1=%v: NaN apparent-T1 slope: %w", scale, t1, ErrDegenerateFit)
			}
			apparent[i] = -slope * 2 * tr / (scale * scale)
		}
		a[c], b[c] = stat.LinearRegression(apparent, cfg.T1Range, nil, false)
		if math.IsNaN(a[c]) || math.IsNaN(b[c]) {
			return Correction{}, fmt.Errorf("Fit: C=%v: NaN T1 regression: %w", scale, ErrDegenerateFit)
		}
	}

	pa, err := PolyFit(cfg.RFScales, a, cfg.Degree)
	if err != nil {
		return Correction{}, fmt.Errorf("Fit: A(C): %w", err)
	}
	pb, err := PolyFit(cfg.RFScales, b, cfg.Degree)
	if err != nil {
		return Correction{}, fmt.Errorf("Fit: B(C): %w", err)
	}

	return Correction{A: pa, B: pb}, nil
}

// distinct counts the different values in xs.
func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}

	return len(seen)
}

// Apply corrects an apparent T1 measured at flip-angle scale b1.
func (c Correction) Apply(apparentT1, b1 float64) float64 {
	return c.A.Eval(b1) + c.B.Eval(b1)*apparentT1
}
