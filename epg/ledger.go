// SPDX-License-Identifier: MIT

package epg

import (
	"fmt"
	"math"
)

// Ledger is the EPG coherence state of one pulse train.
//
// Layout:
//   - transverse orders k ∈ [−N, N) live at slot N+k of fx/fy (2N slots);
//   - longitudinal orders k ∈ [0, N) live at slot k of zx/zy (N slots);
//   - x/y are the real/imaginary parts of each order.
//
// Two buffers are kept: the current state (fx, fy, zx, zy) and the
// post-rotation state (pfx, pfy, pzx, pzy) written by the RF step. The RF
// step reads only the current state and the evolution step reads only the
// post-rotation state, so the ±k pair is never read after being overwritten.
//
// A Ledger is owned by a single simulation and is not safe for concurrent use.
type Ledger struct {
	n int

	fx, fy []float64
	zx, zy []float64

	pfx, pfy []float64
	pzx, pzy []float64
}

// NewLedger allocates a ledger for an n-pulse train, at equilibrium.
//
// Panics when n < 2.
func NewLedger(n int) *Ledger {
	if n < minPulses {
		panic(fmt.Sprintf("epg: NewLedger: n=%d, must be >= %d", n, minPulses))
	}
	l := &Ledger{
		n:   n,
		fx:  make([]float64, 2*n),
		fy:  make([]float64, 2*n),
		zx:  make([]float64, n),
		zy:  make([]float64, n),
		pfx: make([]float64, 2*n),
		pfy: make([]float64, 2*n),
		pzx: make([]float64, n),
		pzy: make([]float64, n),
	}
	l.zx[0] = 1

	return l
}

// Reset returns the ledger to equilibrium: every order zero except Zx(0)=1
// (M0 normalized to 1). Both buffers are cleared.
func (l *Ledger) Reset() {
	clear(l.fx)
	clear(l.fy)
	clear(l.zx)
	clear(l.zy)
	clear(l.pfx)
	clear(l.pfy)
	clear(l.pzx)
	clear(l.pzy)
	l.zx[0] = 1
}

// Capacity returns the pulse count N the ledger was sized for.
func (l *Ledger) Capacity() int { return l.n }

// tslot maps a signed transverse order to its storage slot.
func (l *Ledger) tslot(k int) int {
	if k < -l.n || k >= l.n {
		panic(fmt.Sprintf("epg: transverse order %d outside [%d, %d)", k, -l.n, l.n))
	}

	return l.n + k
}

// zslot maps a longitudinal order to its storage slot.
func (l *Ledger) zslot(k int) int {
	if k < 0 || k >= l.n {
		panic(fmt.Sprintf("epg: longitudinal order %d outside [0, %d)", k, l.n))
	}

	return k
}

// F returns the current transverse state of order k.
func (l *Ledger) F(k int) (x, y float64) {
	s := l.tslot(k)

	return l.fx[s], l.fy[s]
}

// Z returns the current longitudinal state of order k ≥ 0.
func (l *Ledger) Z(k int) (x, y float64) {
	s := l.zslot(k)

	return l.zx[s], l.zy[s]
}

// PostF returns the transverse state of order k as left by the last RF step,
// before dephasing and relaxation.
func (l *Ledger) PostF(k int) (x, y float64) {
	s := l.tslot(k)

	return l.pfx[s], l.pfy[s]
}

// Populated returns the largest |k| < N whose current transverse or
// longitudinal state is non-zero, or −1 for an all-zero ledger. Order −N is
// never written by the recurrence and is not inspected.
func (l *Ledger) Populated() int {
	for k := l.n - 1; k >= 0; k-- {
		if l.zx[k] != 0 || l.zy[k] != 0 {
			return k
		}
		if l.fx[l.n+k] != 0 || l.fy[l.n+k] != 0 || l.fx[l.n-k] != 0 || l.fy[l.n-k] != 0 {
			return k
		}
	}

	return -1
}

// Clone returns a deep copy of both buffers.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		n:   l.n,
		fx:  append([]float64(nil), l.fx...),
		fy:  append([]float64(nil), l.fy...),
		zx:  append([]float64(nil), l.zx...),
		zy:  append([]float64(nil), l.zy...),
		pfx: append([]float64(nil), l.pfx...),
		pfy: append([]float64(nil), l.pfy...),
		pzx: append([]float64(nil), l.pzx...),
		pzy: append([]float64(nil), l.pzy...),
	}
}

// rotate applies the RF rotation r of pulse j to the orders 0..j.
// For i == 0 the two slots coincide and the −k formulas are written last.
func (l *Ledger) rotate(r rotation, j int) {
	fx, fy, zx, zy := l.fx, l.fy, l.zx, l.zy
	for i := 0; i <= j; i++ {
		n, m, z := l.tslot(i), l.tslot(-i), l.zslot(i)
		l.pfx[n] = r.a*fx[n] + r.hb*fx[m] + r.gb*fy[m] + r.ec*zx[z] + r.fc*zy[z]
		l.pfy[n] = r.a*fy[n] - r.hb*fy[m] + r.gb*fx[m] - r.fc*zx[z] + r.ec*zy[z]
		l.pfx[m] = r.hb*fx[n] + r.gb*fy[n] + r.a*fx[m] + r.ec*zx[z] - r.fc*zy[z]
		l.pfy[m] = r.gb*fx[n] - r.hb*fy[n] + r.a*fy[m] - r.fc*zx[z] - r.ec*zy[z]
		l.pzx[z] = (-r.ec*fx[n] + r.fc*fy[n] - r.ec*fx[m] + r.fc*fy[m] + 2.0*r.d*zx[z]) / 2.0
		l.pzy[z] = (-r.fc*fx[n] - r.ec*fy[n] + r.fc*fx[m] + r.ec*fy[m] + 2.0*r.d*zy[z]) / 2.0
	}
}

// evolve dephases the post-rotation state of pulse j by one order and
// relaxes it into the current state. Only Zx(0) recovers toward M0=1.
func (l *Ledger) evolve(e1, e2 float64, j int) {
	for i := -j; i <= j; i++ {
		n, next := l.tslot(i), l.tslot(i+1)
		l.fx[next] = l.pfx[n] * e2
		l.fy[next] = l.pfy[n] * e2
		if i < 0 {
			continue
		}
		z := l.zslot(i)
		if i == 0 {
			l.zx[z] = l.pzx[z]*e1 + 1.0 - e1
		} else {
			l.zx[z] = l.pzx[z] * e1
		}
		l.zy[z] = l.pzy[z] * e1
	}
}

// signal returns |F(0)| of the post-rotation buffer, which becomes F(+1)
// once dephased.
func (l *Ledger) signal() float64 {
	x, y := l.PostF(0)

	return math.Sqrt(x*x + y*y)
}
