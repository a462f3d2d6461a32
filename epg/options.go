// SPDX-License-Identifier: MIT

package epg

import "strconv"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPulses is the number of RF pulses N of the train. The ledger
	// capacity (2N transverse, N longitudinal orders) is derived from it.
	DefaultPulses = 500

	// DefaultValidate keeps the permissive behavior: non-physical inputs are
	// not rejected and propagate as IEEE NaN/Inf/zero.
	DefaultValidate = false

	// minPulses is the smallest train that simulates at least one pulse.
	minPulses = 2
)

const panicPulsesInvalid = "epg: WithPulses: n must be >= "

// Option mutates Options. Options are applied in order, last writer wins.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration of a Simulator.
type Options struct {
	pulses   int  // >= minPulses; DefaultPulses
	validate bool // DefaultValidate
}

// WithPulses sets the pulse count N. The simulation runs N−1 RF pulses and
// reads the signal produced by the last one.
//
// Panics when n < 2.
func WithPulses(n int) Option {
	if n < minPulses {
		panic(panicPulsesInvalid + strconv.Itoa(minPulses))
	}

	return func(o *Options) { o.pulses = n }
}

// WithValidation makes Signal/Run/Trace reject non-finite or non-physical
// parameters with ErrNonFinite / ErrInvalidParams.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithoutValidation restores the default permissive behavior.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// gatherOptions resolves user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		pulses:   DefaultPulses,
		validate: DefaultValidate,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
