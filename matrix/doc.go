// Package matrix offers the two small linear-algebra kernels the simulators need.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with Add, Mul, Scale, Kron,
//     Adjoint and Trace. Used for reduced density matrices (vector-state
//     entropy) and stabilizer projectors (tableau → vector conversion).
//   - BitMatrix: a packed matrix over GF(2) whose rows are bitsets, with
//     in-place Gaussian elimination (Rank). Used for tableau entropy and for
//     the cut-rank cross-check of graph-state entropy.
//
// Dense matrices are meant for at most a few thousand rows: ρ_A over |A|
// qubits is 2^|A| × 2^|A|. BitMatrix scales to thousands of qubits.
//
// Errors follow the package sentinel set in errors.go; kernels wrap them with
// the operation name ("Mul: matrix: dimension mismatch") so callers branch on
// errors.Is.
package matrix
