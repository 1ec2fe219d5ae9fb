// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, multiplication, conjugate transpose,
// Kronecker product, scaling and trace. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path and an At/Set fallback for any Matrix.
//   - Errors are plain sentinels wrapped via matrixErrorf with the op tag.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = complex(0, 0)

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opMul     = "Mul"
	opScale   = "Scale"
	opAdjoint = "Adjoint"
	opKron    = "Kron"
	opTrace   = "Trace"
	opMatVec  = "MatVec"
	opClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b Matrix) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] pays off on the sparse
//     projectors built from Pauli strings.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current complex128
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Scale returns alpha·M as a fresh Dense.
func Scale(m Matrix, alpha complex128) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Adjoint returns the conjugate transpose M†.
// Complexity: O(r*c).
func Adjoint(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAdjoint, err)
			}
			res.data[j*rows+i] = cmplx.Conj(v)
		}
	}

	return res, nil
}

// Kron returns the Kronecker product A ⊗ B of shape (ra·rb) × (ca·cb).
//
// Determinism:
//   - Element (i·rb + k, j·cb + l) = A[i,j]·B[k,l]; the row index of A is the
//     most significant digit of the result index.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space the same.
func Kron(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	ra, ca, rb, cb := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	res, err := NewDense(ra*rb, ca*cb)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var i, j, k, l int
	var av, bv complex128
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opKron, err)
			}
			if av == 0 {
				continue
			}
			for k = 0; k < rb; k++ {
				for l = 0; l < cb; l++ {
					if bv, err = b.At(k, l); err != nil {
						return nil, matrixErrorf(opKron, err)
					}
					res.data[(i*rb+k)*res.c+j*cb+l] = av * bv
				}
			}
		}
	}

	return res, nil
}

// Trace returns Σ M[i,i] of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < dm.r; i++ {
			sum += dm.data[i*dm.c+i]
		}

		return sum, nil
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// MatVec computes y = M·x for a column vector x of length Cols().
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	y := make([]complex128, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if x[j] == 0 {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| <= atol for every entry.
func AllClose(a, b Matrix, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opClose, err)
	}

	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opClose, err)
			}
			if cmplx.Abs(av-bv) > atol {
				return false, nil
			}
		}
	}

	return true, nil
}
