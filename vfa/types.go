// SPDX-License-Identifier: MIT

package vfa

import (
	"errors"

	"github.com/katalvlaran/epgsim/epg"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrTooFewAngles indicates fewer than two flip angles.
	ErrTooFewAngles = errors.New("vfa: at least two flip angles are required")

	// ErrLengthMismatch indicates per-voxel inputs of different lengths.
	ErrLengthMismatch = errors.New("vfa: input lengths differ")

	// ErrDegenerateFit indicates a regression with too few or collinear samples.
	ErrDegenerateFit = errors.New("vfa: degenerate fit")
)

// Defaults of the RF-spoiling calibration.
const (
	DefaultPhaseIncrement = 50.0 // degrees
	DefaultT2             = 0.08 // seconds
	DefaultDegree         = 2
	DefaultMaxT1          = 10.0 // seconds

	defaultScaleMin, defaultScaleMax = 0.7, 1.2
	defaultScaleCount                = 6
	defaultT1Min, defaultT1Max       = 0.6, 1.8
	defaultT1Count                   = 20
)

// Polynomial holds coefficients in ascending degree: p[0] + p[1]·x + ...
type Polynomial []float64

// Eval evaluates p at x (Horner). An empty polynomial evaluates to 0.
func (p Polynomial) Eval(x float64) float64 {
	var v float64
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}

	return v
}

// Correction maps an apparent T1' measured at relative flip-angle scale B1
// to T1 = A(B1) + B(B1)·T1'.
type Correction struct {
	A Polynomial
	B Polynomial
}

// CorrectionConfig parameterizes Fit. Times must share the unit of TR.
type CorrectionConfig struct {
	// PhaseIncrement is the RF-spoiling increment of the protocol, in degrees.
	PhaseIncrement float64
	// T2 is the fixed transverse relaxation used in the simulations.
	T2 float64
	// RFScales are the B1 scale factors C the polynomials are fitted over.
	RFScales []float64
	// T1Range are the true T1 values simulated for each scale.
	T1Range []float64
	// Degree of the A(C) and B(C) polynomials.
	Degree int
	// Simulator runs the SPGR trains. nil means epg.New().
	Simulator *epg.Simulator
}

// DefaultCorrectionConfig returns the calibration of the reference protocol:
// Δφ = 50°, T2 = 80 ms, C ∈ {0.7, …, 1.2}, 20 T1 values in [0.6, 1.8] s,
// quadratic polynomials, 500-pulse trains. Times are in seconds.
func DefaultCorrectionConfig() CorrectionConfig {
	return CorrectionConfig{
		PhaseIncrement: DefaultPhaseIncrement,
		T2:             DefaultT2,
		RFScales:       floats.Span(make([]float64, defaultScaleCount), defaultScaleMin, defaultScaleMax),
		T1Range:        floats.Span(make([]float64, defaultT1Count), defaultT1Min, defaultT1Max),
		Degree:         DefaultDegree,
		Simulator:      epg.New(),
	}
}

// T1Options controls the per-voxel T1 estimation.
type T1Options struct {
	// MaxT1 is the largest plausible T1; larger or negative estimates are NaN.
	MaxT1 float64
}

// DefaultT1Options returns MaxT1 = 10 s.
func DefaultT1Options() T1Options {
	return T1Options{MaxT1: DefaultMaxT1}
}
