// Package distmat: single-pass input validation.
//
// Grounded on tsp/validate.go's validateDistMatrix: one deterministic
// row-major pass checking diagonal, negativity, NaN/Inf, and symmetry,
// returning the first sentinel hit rather than accumulating all violations.
package distmat

import "math"

// Validate scans m once, row-major, and returns ErrInvalidDistance on the
// first violation of: zero diagonal, finiteness, nonnegativity, or (for
// matrices that can represent asymmetry) D[i][j] == D[j][i].
//
// Condensed matrices are symmetric and zero-diagonal by construction, so
// only the diagonal/negativity/finiteness checks apply to them; the
// symmetry check is skipped as trivially satisfied.
//
// Complexity: O(n^2).
func Validate(m Matrix) error {
	n := m.Dim()
	if n <= 0 {
		return ErrDistanceShapeMismatch
	}

	_, isCondensed := m.(*Condensed)

	for i := 0; i < n; i++ {
		diag, err := m.At(i, i)
		if err != nil {
			return err
		}
		if diag != 0 {
			return ErrInvalidDistance
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) || aij < 0 {
				return ErrInvalidDistance
			}
			if isCondensed {
				continue
			}
			aji, err := m.At(j, i)
			if err != nil {
				return err
			}
			if math.IsNaN(aji) || math.IsInf(aji, 0) || aji < 0 {
				return ErrInvalidDistance
			}
			if aij != aji {
				return ErrInvalidDistance
			}
		}
	}

	return nil
}
