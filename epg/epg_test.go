// SPDX-License-Identifier: MIT

package epg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/epgsim/epg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// epsRef is the tolerance against pinned double-precision values
	// (platform sin/cos may differ by an ulp, some targets fuse multiply-add).
	epsRef = 1e-9

	// epsSym is the tolerance for symmetric-input comparisons.
	epsSym = 1e-12
)

// TestSimulate_Reference pins the 500-pulse signal for representative trains.
func TestSimulate_Reference(t *testing.T) {
	cases := []struct {
		name                string
		fa, inc, tr, t1, t2 float64
		want                float64
	}{
		{"fa90_noSpoil", 90, 0, 10, 1000, 100, 0.051458712332840266},
		{"fa30_inc50", 30, 50, 10, 1000, 80, 0.031018717330511252},
		{"fa30_inc117", 30, 117, 10, 1000, 80, 0.035270949508987348},
		{"fa15_inc50_tr20", 15, 50, 20, 1000, 80, 0.095824679789872289},
		{"fa30_noSpoil", 30, 0, 10, 1000, 80, 0.096938830539862034},
		{"seconds_fa6", 6, 50, 0.02, 1.0, 0.08, 0.08238116052478732},
		{"seconds_fa32", 32, 50, 0.02, 1.0, 0.08, 0.058552431320712264},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := epg.Simulate(tc.fa, tc.inc, tc.tr, tc.t1, tc.t2)
			assert.InDelta(t, tc.want, got, epsRef)
		})
	}
}

// TestSimulate_BoundaryScenario checks FA=90, Δφ=0: a small positive signal below M0.
func TestSimulate_BoundaryScenario(t *testing.T) {
	got := epg.Simulate(90, 0, 10, 1000, 100)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}

// TestSimulate_ZeroFlipAngle verifies that no excitation never creates transverse signal.
func TestSimulate_ZeroFlipAngle(t *testing.T) {
	for _, p := range []epg.Params{
		{FlipAngle: 0, PhaseIncrement: 0, TR: 10, T1: 1000, T2: 100},
		{FlipAngle: 0, PhaseIncrement: 50, TR: 5, T1: 300, T2: 20},
		{FlipAngle: 0, PhaseIncrement: 117, TR: 0.02, T1: 1.5, T2: 0.08},
	} {
		got := epg.Simulate(p.FlipAngle, p.PhaseIncrement, p.TR, p.T1, p.T2)
		assert.Equal(t, 0.0, got, "params %+v", p)
	}
}

// TestSimulate_T2MonotonicWithoutSpoiling verifies that, without RF spoiling,
// a shorter T2 strictly lowers the signal.
func TestSimulate_T2MonotonicWithoutSpoiling(t *testing.T) {
	for _, fa := range []float64{10, 30, 90} {
		prev := math.Inf(1)
		for _, t2 := range []float64{200, 100, 80, 50, 40, 20, 10, 5} {
			got := epg.Simulate(fa, 0, 10, 1000, t2)
			assert.Less(t, got, prev, "fa=%v t2=%v", fa, t2)
			prev = got
		}
	}
}

// TestSimulate_PhasePeriodicity verifies Δφ and Δφ+360° give the same signal.
func TestSimulate_PhasePeriodicity(t *testing.T) {
	a := epg.Simulate(30, 0, 10, 1000, 80)
	b := epg.Simulate(30, 360, 10, 1000, 80)
	assert.InDelta(t, a, b, epsSym)
}

// TestSimulate_Deterministic verifies repeated calls are bit-identical.
func TestSimulate_Deterministic(t *testing.T) {
	a := epg.Simulate(27.5, 50, 7.5, 1100, 65)
	b := epg.Simulate(27.5, 50, 7.5, 1100, 65)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

// TestSimulate_Degenerate verifies degenerate relaxation times never panic
// and follow IEEE arithmetic.
func TestSimulate_Degenerate(t *testing.T) {
	// 0/0 ⇒ E1 = NaN.
	assert.NotPanics(t, func() {
		got := epg.Simulate(30, 50, 0, 0, 80)
		assert.True(t, math.IsNaN(got), "TR=T1=0 must yield NaN, got %v", got)
	})

	// exp(+huge) = +Inf, then Inf−Inf in the recovery term.
	assert.NotPanics(t, func() {
		got := epg.Simulate(30, 50, 10, -0.001, 80)
		assert.False(t, isFinite(got), "negative T1 must yield a non-finite signal, got %v", got)
	})

	// TR/0 = +Inf ⇒ E1 = exp(−Inf) = 0: full recovery every TR, still finite.
	assert.NotPanics(t, func() {
		got := epg.Simulate(30, 50, 10, 0, 80)
		assert.InDelta(t, 0.50019748136731013, got, epsRef)
	})
}

// TestSimulator_SinglePulse checks N=2: one pulse from equilibrium yields |sin α|.
func TestSimulator_SinglePulse(t *testing.T) {
	sim := epg.New(epg.WithPulses(2))
	for _, fa := range []float64{5, 30, 90, 150, -40} {
		got, err := sim.Signal(epg.Params{FlipAngle: fa, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80})
		require.NoError(t, err)
		assert.InDelta(t, math.Abs(math.Sin(fa*math.Pi/180)), got, epsSym, "fa=%v", fa)
	}
}

// TestSimulator_ShortTrains pins short trains of 3, 10 and 50 pulses.
func TestSimulator_ShortTrains(t *testing.T) {
	cases := []struct {
		n    int
		p    epg.Params
		want float64
	}{
		{3, epg.Params{FlipAngle: 30, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80}, 0.43367923664508573},
		{3, epg.Params{FlipAngle: 90, PhaseIncrement: 0, TR: 10, T1: 1000, T2: 100}, 0.0099501662508318933},
		{3, epg.Params{FlipAngle: 45, PhaseIncrement: 117, TR: 5, T1: 800, T2: 60}, 0.50129038074214138},
		{10, epg.Params{FlipAngle: 30, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80}, 0.15137295654497168},
		{10, epg.Params{FlipAngle: 90, PhaseIncrement: 0, TR: 10, T1: 1000, T2: 100}, 0.29751847224928363},
		{10, epg.Params{FlipAngle: 45, PhaseIncrement: 117, TR: 5, T1: 800, T2: 60}, 0.086641077240596234},
		{50, epg.Params{FlipAngle: 30, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80}, 0.025161774129959163},
		{50, epg.Params{FlipAngle: 90, PhaseIncrement: 0, TR: 10, T1: 1000, T2: 100}, 0.068262911735935225},
		{50, epg.Params{FlipAngle: 45, PhaseIncrement: 117, TR: 5, T1: 800, T2: 60}, 0.0075971757730253532},
	}
	for _, tc := range cases {
		got, err := epg.New(epg.WithPulses(tc.n)).Signal(tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, epsRef, "n=%d params=%+v", tc.n, tc.p)
	}
}

// TestSimulator_DefaultMatchesSimulate checks the package-level shortcut.
func TestSimulator_DefaultMatchesSimulate(t *testing.T) {
	p := epg.Params{FlipAngle: 20, PhaseIncrement: 50, TR: 8, T1: 900, T2: 70}
	sim := epg.New()
	assert.Equal(t, epg.DefaultPulses, sim.Pulses())
	assert.False(t, sim.Validates())

	got, err := sim.Signal(p)
	require.NoError(t, err)
	assert.Equal(t, epg.Simulate(p.FlipAngle, p.PhaseIncrement, p.TR, p.T1, p.T2), got)
}

// TestSimulator_Trace verifies the per-pulse trace length and its last value.
func TestSimulator_Trace(t *testing.T) {
	p := epg.Params{FlipAngle: 30, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80}
	sim := epg.New(epg.WithPulses(50))

	trace, err := sim.Trace(p)
	require.NoError(t, err)
	require.Len(t, trace, 49)

	final, err := sim.Signal(p)
	require.NoError(t, err)
	assert.Equal(t, final, trace[len(trace)-1])
	assert.InDelta(t, math.Sin(30*math.Pi/180), trace[0], epsSym, "first pulse acts on equilibrium")
}

// TestSimulator_RunLedger checks the Result surface and the ledger truncation invariant.
func TestSimulator_RunLedger(t *testing.T) {
	const n = 20
	p := epg.Params{FlipAngle: 40, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80}

	res, err := epg.New(epg.WithPulses(n)).Run(p)
	require.NoError(t, err)
	require.NotNil(t, res.Ledger)

	assert.Equal(t, n, res.Ledger.Capacity())
	assert.LessOrEqual(t, res.Ledger.Populated(), n-1, "after pulse N-2 only |k| <= N-1 is populated")

	x, y := res.Ledger.PostF(0)
	assert.Equal(t, math.Sqrt(x*x+y*y), res.Signal)

	// φ of the last pulse j=N-2.
	j := float64(n - 2)
	assert.InDelta(t, 50*math.Pi/180*j*(j+1)/2, res.Phase, epsSym)
}

// TestSimulator_Validation verifies strict mode rejects non-physical inputs
// while the permissive default never errors.
func TestSimulator_Validation(t *testing.T) {
	strict := epg.New(epg.WithPulses(10), epg.WithValidation())
	loose := epg.New(epg.WithPulses(10))

	bad := []struct {
		p   epg.Params
		err error
	}{
		{epg.Params{FlipAngle: 30, TR: 10, T1: 0, T2: 80}, epg.ErrInvalidParams},
		{epg.Params{FlipAngle: 30, TR: 10, T1: 1000, T2: -1}, epg.ErrInvalidParams},
		{epg.Params{FlipAngle: 30, TR: -1, T1: 1000, T2: 80}, epg.ErrInvalidParams},
		{epg.Params{FlipAngle: math.NaN(), TR: 10, T1: 1000, T2: 80}, epg.ErrNonFinite},
		{epg.Params{FlipAngle: 30, TR: 10, T1: math.Inf(1), T2: 80}, epg.ErrNonFinite},
	}
	for _, tc := range bad {
		_, err := strict.Signal(tc.p)
		assert.ErrorIs(t, err, tc.err, "strict %+v", tc.p)

		_, err = strict.Trace(tc.p)
		assert.ErrorIs(t, err, tc.err)

		res, err := strict.Run(tc.p)
		assert.ErrorIs(t, err, tc.err)
		assert.Nil(t, res)

		_, err = loose.Signal(tc.p)
		assert.NoError(t, err, "permissive %+v", tc.p)
	}

	_, err := strict.Signal(epg.Params{FlipAngle: 30, PhaseIncrement: 50, TR: 10, T1: 1000, T2: 80})
	assert.NoError(t, err)
}

// TestWithPulses_PanicsOnInvalid verifies option constructors reject nonsense.
func TestWithPulses_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { epg.WithPulses(1) })
	assert.Panics(t, func() { epg.WithPulses(-5) })
	assert.NotPanics(t, func() { epg.WithPulses(2) })
}

// TestOptions_LastWriterWins verifies options apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	sim := epg.New(epg.WithValidation(), epg.WithoutValidation(), epg.WithPulses(7), epg.WithPulses(9))
	assert.False(t, sim.Validates())
	assert.Equal(t, 9, sim.Pulses())
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
