// Package epgsim is a small, dependency-light toolkit for simulating
// spoiled gradient-echo (SPGR) MRI signals with Extended Phase Graphs and
// for using that forward model in VFA T1 mapping.
//
// 🚀 What is in the box?
//
//	epg/                 the EPG simulator: quadratic RF spoiling, coherence
//	                     ledger, per-pulse trace, optional strict validation
//	vfa/                 RF-spoiling corrected two-point VFA T1 estimation
//	                     (calibration by EPG simulation, gonum least squares)
//	cmd/spgr-epg         print the signal of one pulse train
//	cmd/vfa-correction   print the correction polynomials of a protocol
//	cmd/vfa-t1map        corrected T1 per voxel from "S1 S2 [B1]" lines
//
// ✨ Why?
//
//   - Pure Go, no cgo
//   - Deterministic and re-entrant: no package state, safe to fan out
//   - Pinned numerics: the recurrence keeps a fixed floating-point
//     evaluation order, guarded by regression tests
//
// Quick example:
//
//	s := epg.Simulate(30, 50, 10, 1000, 80) // FA°, Δφ°, TR, T1, T2
//
//	go get github.com/katalvlaran/epgsim/epg
package epgsim
