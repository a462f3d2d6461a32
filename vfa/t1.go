// SPDX-License-Identifier: MIT

package vfa

import (
	"fmt"
	"math"
)

// ApparentT1 returns the two-point VFA estimate T1' = −TR/ln(SL) from
// signals s1, s2 acquired at effective flip angles a1, a2 (radians), where
// SL is the slope of S/sin α against S/tan α.
//
// No guard is applied: equal angles, zero signals or SL ≤ 0 give ±Inf or NaN.
func ApparentT1(s1, s2, a1, a2, tr float64) float64 {
	x1, x2 := s1/math.Tan(a1), s2/math.Tan(a2)
	y1, y2 := s1/math.Sin(a1), s2/math.Sin(a2)
	sl := (y1 - y2) / (x1 - x2)

	return -tr / math.Log(sl)
}

// T1Map estimates T1 per voxel from two VFA acquisitions.
//
// signals[0] and signals[1] are the voxel intensities at nominal angles
// flipAnglesDeg[0] and flipAnglesDeg[1]; b1 is the relative flip-angle map.
// Estimates that are negative or above opts.MaxT1 are set to NaN; NaN inputs
// stay NaN.
//
// Errors:
//   - ErrLengthMismatch: signals[0], signals[1] and b1 differ in length.
func (c Correction) T1Map(signals [2][]float64, flipAnglesDeg [2]float64, b1 []float64, tr float64, opts T1Options) ([]float64, error) {
	if len(signals[0]) != len(b1) || len(signals[1]) != len(b1) {
		return nil, fmt.Errorf("T1Map: %d/%d signals for %d B1 voxels: %w",
			len(signals[0]), len(signals[1]), len(b1), ErrLengthMismatch)
	}
	maxT1 := opts.MaxT1
	if maxT1 <= 0 {
		maxT1 = DefaultMaxT1
	}

	r0 := flipAnglesDeg[0] * math.Pi / 180
	r1 := flipAnglesDeg[1] * math.Pi / 180
	out := make([]float64, len(b1))
	for v, scale := range b1 {
		t1 := c.Apply(ApparentT1(signals[0][v], signals[1][v], r0*scale, r1*scale, tr), scale)
		if t1 < 0 || t1 > maxT1 {
			t1 = math.NaN()
		}
		out[v] = t1
	}

	return out, nil
}
