// SPDX-License-Identifier: MIT

// Package epg simulates the transverse signal of a spoiled gradient-echo
// (SPGR) pulse train with the Extended Phase Graph formalism.
//
// 🚀 What is EPG?
//
//	Instead of tracking isochromats, EPG tracks the Fourier harmonics
//	("coherence orders") of the magnetization along a dephasing gradient.
//	Each RF pulse mixes the orders k and −k with the longitudinal order k,
//	and each TR shifts every transverse order by one while T1/T2 relax them.
//	It is the standard forward model behind:
//	  • VFA / DESPOT1 T1 mapping with RF-spoiling correction
//	  • steady-state approach studies of FLASH / SPGR trains
//	  • checking the efficiency of an RF-spoiling phase increment
//
// ✨ Key features:
//   - quadratic RF-spoiling schedule φ_j = Δφ·j(j+1)/2
//   - fixed-capacity coherence ledger sized from the pulse count N
//   - pure, deterministic, re-entrant: no package state, no I/O
//   - optional strict validation of the physical parameters
//   - per-pulse trace of the approach to steady state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/epgsim/epg"
//
//	// one-shot, 500 pulses, permissive (IEEE NaN/Inf propagate)
//	s := epg.Simulate(30, 50, 10, 1000, 80)
//
//	// configured simulator
//	sim := epg.New(epg.WithPulses(200), epg.WithValidation())
//	s, err := sim.Signal(epg.Params{FlipAngle: 30, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80})
//
// Performance:
//
//   - Time:   O(N²) per call (the populated orders grow by one per pulse)
//   - Memory: O(N)
package epg
