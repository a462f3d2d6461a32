// SPDX-License-Identifier: MIT

package epg

import "math"

// rotation holds the coefficients of the EPG RF transition matrix for a
// pulse of flip angle α and phase φ:
//
//	a = cos²(α/2)   b = sin²(α/2)   c = sin α    d = cos α
//	e = sin φ       f = cos φ       g = sin 2φ   h = cos 2φ
//
// plus the products hb, gb, ec, fc used by the mixing formulas.
type rotation struct {
	a, b, c, d     float64
	e, f, g, h     float64
	hb, gb, ec, fc float64
}

// newRotation derives the coefficients for flip angle alpha and phase phi,
// both in radians.
func newRotation(alpha, phi float64) rotation {
	var r rotation
	r.a = math.Cos(alpha / 2)
	r.a *= r.a
	r.b = math.Sin(alpha / 2)
	r.b *= r.b
	r.c = math.Sin(alpha)
	r.d = math.Cos(alpha)
	r.e = math.Sin(phi)
	r.f = math.Cos(phi)
	r.g = math.Sin(2.0 * phi)
	r.h = math.Cos(2.0 * phi)
	r.hb, r.gb, r.ec, r.fc = r.h*r.b, r.g*r.b, r.e*r.c, r.f*r.c

	return r
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// spoilPhase returns the quadratic RF-spoiling phase of pulse j, in radians:
// φ_j = Δφ·j(j+1)/2. The product is formed left to right; regression values
// depend on that rounding for large j.
func spoilPhase(incDeg float64, j int) float64 {
	return incDeg * math.Pi / 180.0 * float64(j) * float64(j+1) / 2
}
