// SPDX-License-Identifier: MIT

package epg

import "math"

// Simulator runs SPGR pulse trains of a fixed length.
//
// A Simulator holds configuration only; every call allocates its own Ledger,
// so one Simulator may be shared between goroutines.
type Simulator struct {
	opts Options
}

var defaultSimulator = New()

// New returns a Simulator configured by opts (see WithPulses, WithValidation).
func New(opts ...Option) *Simulator {
	return &Simulator{opts: gatherOptions(opts...)}
}

// Pulses returns the configured pulse count N.
func (s *Simulator) Pulses() int { return s.opts.pulses }

// Validates reports whether parameters are checked before simulating.
func (s *Simulator) Validates() bool { return s.opts.validate }

// Simulate returns the SPGR signal magnitude after a 500-pulse train with
// flip angle faDeg, RF-spoiling increment phaseIncDeg, repetition time tr and
// relaxation times t1, t2.
//
// Inputs are not validated: T1 = 0 or T2 = 0 with TR > 0 gives a zero
// relaxation factor, and 0/0 or negative relaxation times give NaN, exactly
// as IEEE arithmetic dictates.
func Simulate(faDeg, phaseIncDeg, tr, t1, t2 float64) float64 {
	res := defaultSimulator.run(Params{
		FlipAngle:      faDeg,
		PhaseIncrement: phaseIncDeg,
		TR:             tr,
		T1:             t1,
		T2:             t2,
	}, nil)

	return res.Signal
}

// Signal simulates the train described by p and returns |F(+1)| after the
// last pulse.
//
// Errors (validation enabled only):
//   - ErrNonFinite     : a parameter is NaN or ±Inf.
//   - ErrInvalidParams : T1 ≤ 0, T2 ≤ 0 or TR < 0.
func (s *Simulator) Signal(p Params) (float64, error) {
	if err := s.check(p); err != nil {
		return 0, err
	}

	return s.run(p, nil).Signal, nil
}

// Run is Signal that also returns the final ledger and RF phase.
func (s *Simulator) Run(p Params) (*Result, error) {
	if err := s.check(p); err != nil {
		return nil, err
	}
	res := s.run(p, nil)

	return &res, nil
}

// Trace returns the signal after every simulated pulse, i.e. N−1 values.
// The last value equals Signal(p).
func (s *Simulator) Trace(p Params) ([]float64, error) {
	if err := s.check(p); err != nil {
		return nil, err
	}
	out := make([]float64, 0, s.opts.pulses-1)
	s.run(p, func(_ int, v float64) { out = append(out, v) })

	return out, nil
}

func (s *Simulator) check(p Params) error {
	if !s.opts.validate {
		return nil
	}

	return p.Validate()
}

// run executes pulses j = 0..N−2. onPulse, if non-nil, receives the signal
// after each pulse.
//
// Algorithm per pulse j:
//  1. φ_j = Δφ·j(j+1)/2 and the rotation coefficients of (α, φ_j).
//  2. RF step on orders 0..j (current → post-rotation buffer).
//  3. Dephase + relax orders −j..j (post-rotation → current buffer).
//
// The result is read from the post-rotation buffer of the last pulse.
func (s *Simulator) run(p Params, onPulse func(j int, signal float64)) Result {
	n := s.opts.pulses
	e1 := math.Exp(-p.TR / p.T1)
	e2 := math.Exp(-p.TR / p.T2)
	alpha := degToRad(p.FlipAngle)

	l := NewLedger(n)
	var phi float64
	for j := 0; j < n-1; j++ {
		phi = spoilPhase(p.PhaseIncrement, j)
		l.rotate(newRotation(alpha, phi), j)
		l.evolve(e1, e2, j)
		if onPulse != nil {
			onPulse(j, l.signal())
		}
	}

	return Result{Signal: l.signal(), Phase: phi, Ledger: l}
}
