package raymath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Inverse returns the inverse of A. A itself is never modified.
//
// When the last column of A is all zero the matrix is taken as affine with
// the translation in row 3 and an implicit M[3][3] of 1; only the 3×3 block is
// inverted and the translation row becomes -C·A⁻¹. Any other matrix goes
// through Gauss-Jordan elimination with scaled partial pivoting.
//
// If A is singular or too ill-conditioned for float32 (a pivot below 1e-5 of
// its row's largest entry, or a non-finite result) the returned matrix equals
// A and the error wraps ErrSingular.
func (A Mat4) Inverse() (Mat4, error) {
	if A.M[0][3] == 0 && A.M[1][3] == 0 && A.M[2][3] == 0 && A.M[3][3] == 0 {
		return A.inverseAffine()
	}
	return A.inverseGeneral()
}

func (A Mat4) inverseAffine() (Mat4, error) {
	src := &A.M
	var pos, neg Real
	acc := func(t Real) {
		if t >= 0 {
			pos += t
		} else {
			neg += t
		}
	}
	acc(src[0][0] * src[1][1] * src[2][2])
	acc(src[0][1] * src[1][2] * src[2][0])
	acc(src[0][2] * src[1][0] * src[2][1])
	acc(-src[0][2] * src[1][1] * src[2][0])
	acc(-src[0][1] * src[1][0] * src[2][2])
	acc(-src[0][0] * src[1][2] * src[2][1])

	det := pos + neg
	// pos-neg is the sum of the magnitudes: a tiny ratio means the
	// determinant is mostly cancellation noise
	if det == 0 || math32.Abs(det/(pos-neg)) < detEps {
		DebugLog("Inverse: affine 3x3 block is singular: det=%g pos=%g neg=%g", det, pos, neg)
		return A, fmt.Errorf("affine inverse: det=%g: %w", det, ErrSingular)
	}
	inv := 1 / det

	var R Mat4
	dst := &R.M
	dst[0][0] = (src[1][1]*src[2][2] - src[1][2]*src[2][1]) * inv
	dst[1][0] = -(src[1][0]*src[2][2] - src[1][2]*src[2][0]) * inv
	dst[2][0] = (src[1][0]*src[2][1] - src[1][1]*src[2][0]) * inv
	dst[0][1] = -(src[0][1]*src[2][2] - src[0][2]*src[2][1]) * inv
	dst[1][1] = (src[0][0]*src[2][2] - src[0][2]*src[2][0]) * inv
	dst[2][1] = -(src[0][0]*src[2][1] - src[0][1]*src[2][0]) * inv
	dst[0][2] = (src[0][1]*src[1][2] - src[0][2]*src[1][1]) * inv
	dst[1][2] = -(src[0][0]*src[1][2] - src[0][2]*src[1][0]) * inv
	dst[2][2] = (src[0][0]*src[1][1] - src[0][1]*src[1][0]) * inv

	// -C * inverse(A)
	for c := 0; c < 3; c++ {
		dst[3][c] = -(src[3][0]*dst[0][c] + src[3][1]*dst[1][c] + src[3][2]*dst[2][c])
	}
	dst[0][3], dst[1][3], dst[2][3], dst[3][3] = 0, 0, 0, 1
	return R, nil
}

func (A Mat4) inverseGeneral() (Mat4, error) {
	m := A.M
	var p [4]int
	// largest magnitude of each input row, swapped along with the rows
	var rowScale [4]Real
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rowScale[i] = math32.Max(rowScale[i], math32.Abs(m[i][j]))
		}
	}
	for k := 0; k < 4; k++ {
		// pick the row whose k-th entry is largest relative to the rest of the row
		var best Real
		p[k] = k
		for i := k; i < 4; i++ {
			var sum Real
			for j := k; j < 4; j++ {
				sum += math32.Abs(m[i][j])
			}
			if sum > 0 {
				if t := math32.Abs(m[i][k]) / sum; t > best {
					best = t
					p[k] = i
				}
			}
		}
		if best == 0 {
			DebugLog("Inverse: matrix is singular, no pivot in column %d", k)
			return A, fmt.Errorf("general inverse: no pivot in column %d: %w", k, ErrSingular)
		}
		if p[k] != k {
			m[k], m[p[k]] = m[p[k]], m[k]
			rowScale[k], rowScale[p[k]] = rowScale[p[k]], rowScale[k]
		}
		// a pivot that is only rounding residue of its row means the rows are dependent
		if math32.Abs(m[k][k]) < pivotEps*rowScale[k] {
			DebugLog("Inverse: matrix is singular, pivot %g in column %d vs row scale %g", m[k][k], k, rowScale[k])
			return A, fmt.Errorf("general inverse: pivot %g in column %d: %w", m[k][k], k, ErrSingular)
		}

		invPivot := 1 / m[k][k]
		for j := 0; j < 4; j++ {
			if j == k {
				continue
			}
			m[k][j] = -m[k][j] * invPivot
			for i := 0; i < 4; i++ {
				if i != k {
					m[i][j] += m[i][k] * m[k][j]
				}
			}
		}
		for i := 0; i < 4; i++ {
			m[i][k] *= invPivot
		}
		m[k][k] = invPivot
	}

	// row swaps on the input become column swaps on the inverse, undone last to first
	for k := 2; k >= 0; k-- {
		if p[k] == k {
			continue
		}
		for i := 0; i < 4; i++ {
			m[i][k], m[i][p[k]] = m[i][p[k]], m[i][k]
		}
	}
	for _, row := range m {
		for _, x := range row {
			if !isFinite(x) {
				DebugLog("Inverse: non-finite result %v", m)
				return A, fmt.Errorf("general inverse: non-finite result: %w", ErrSingular)
			}
		}
	}
	return Mat4{M: m}, nil
}
