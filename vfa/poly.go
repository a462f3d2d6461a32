// SPDX-License-Identifier: MIT

package vfa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PolyFit returns the least-squares polynomial of the given degree through
// (x, y), coefficients in ascending degree.
//
// The Vandermonde system V·p = y is solved with gonum's QR-based SolveVec.
//
// Errors:
//   - ErrLengthMismatch: len(x) != len(y).
//   - ErrDegenerateFit : degree < 0, fewer than degree+1 samples, or a
//     rank-deficient system (repeated abscissae).
func PolyFit(x, y []float64, degree int) (Polynomial, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("PolyFit: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	if degree < 0 || len(x) < degree+1 {
		return nil, fmt.Errorf("PolyFit: %d samples for degree %d: %w", len(x), degree, ErrDegenerateFit)
	}

	cols := degree + 1
	v := mat.NewDense(len(x), cols, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j < cols; j++ {
			v.Set(i, j, p)
			p *= xi
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(v, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		return nil, fmt.Errorf("PolyFit: %v: %w", err, ErrDegenerateFit)
	}

	out := make(Polynomial, cols)
	for j := range out {
		out[j] = coef.AtVec(j)
	}

	return out, nil
}
