// SPDX-License-Identifier: MIT

// Package vfa estimates T1 from two spoiled gradient-echo images acquired
// with variable flip angles (VFA), corrected for incomplete RF spoiling.
//
// Method (Preibisch & Deichmann, MRM 61(1), 2009):
//
//  1. Two-point VFA gives an apparent T1' from the linearized Ernst equation
//     S/sin α = E1·S/tan α + M0(1−E1), with α corrected by the B1 map.
//  2. Imperfect spoiling biases T1'. The bias is calibrated once per
//     protocol by simulating the SPGR train with package epg over a grid of
//     RF scales C (B1) and true T1, and fitting T1 = A(C) + B(C)·T1'.
//  3. A and B are quadratic polynomials of C; they are evaluated per voxel
//     at the measured B1.
//
// Usage:
//
//	corr, err := vfa.Fit([]float64{6, 32}, 0.02, vfa.DefaultCorrectionConfig())
//	t1, err := corr.T1Map([2][]float64{s6, s32}, [2]float64{6, 32}, b1, 0.02, vfa.DefaultT1Options())
//
// Fit costs len(RFScales)·len(T1Range)·len(flipAngles) EPG simulations.
package vfa
