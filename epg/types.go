// SPDX-License-Identifier: MIT

package epg

import "errors"

// Sentinel errors. Every message is prefixed with "epg: "; callers match them
// with errors.Is, the field name is added by wrapping.
var (
	// ErrInvalidParams indicates a non-physical relaxation or timing value
	// (T1 ≤ 0, T2 ≤ 0 or TR < 0). Only returned when validation is enabled.
	ErrInvalidParams = errors.New("epg: invalid pulse-train parameters")

	// ErrNonFinite indicates a NaN or ±Inf input. Only returned when
	// validation is enabled.
	ErrNonFinite = errors.New("epg: NaN or Inf parameter")
)

// Params is the immutable parameter set of one SPGR pulse train.
//
// Fields:
//   - FlipAngle     : nominal flip angle α, in degrees. Any real value.
//   - PhaseIncrement: RF-spoiling phase step Δφ, in degrees. Any real value.
//   - TR            : repetition time.
//   - T1, T2        : longitudinal and transverse relaxation times.
//
// TR, T1 and T2 only need a common time unit (ms or s).
type Params struct {
	FlipAngle      float64
	PhaseIncrement float64
	TR             float64
	T1             float64
	T2             float64
}

// Result is the outcome of one simulated train.
type Result struct {
	// Signal is |F(+1)| right after the last simulated RF pulse.
	Signal float64

	// Phase is the RF phase (radians) of the last simulated pulse.
	Phase float64

	// Ledger is the final coherence state. Its post-rotation buffer holds
	// the state the signal was read from.
	Ledger *Ledger
}
