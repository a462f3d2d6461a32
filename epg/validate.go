// SPDX-License-Identifier: MIT

package epg

import (
	"fmt"
	"math"
)

// Validate checks that p describes a physical pulse train.
//
// Stages (first failure wins):
//  1. every field is finite                         → ErrNonFinite
//  2. TR ≥ 0, T1 > 0, T2 > 0                        → ErrInvalidParams
//
// The returned error wraps the sentinel and names the offending field.
// Validate is never called by the permissive path (Simulate, or a Simulator
// built without WithValidation).
func (p Params) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"FlipAngle", p.FlipAngle},
		{"PhaseIncrement", p.PhaseIncrement},
		{"TR", p.TR},
		{"T1", p.T1},
		{"T2", p.T2},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s=%v: %w", f.name, f.v, ErrNonFinite)
		}
	}

	switch {
	case p.TR < 0:
		return fmt.Errorf("TR=%v must be >= 0: %w", p.TR, ErrInvalidParams)
	case p.T1 <= 0:
		return fmt.Errorf("T1=%v must be > 0: %w", p.T1, ErrInvalidParams)
	case p.T2 <= 0:
		return fmt.Errorf("T2=%v must be > 0: %w", p.T2, ErrInvalidParams)
	}

	return nil
}
