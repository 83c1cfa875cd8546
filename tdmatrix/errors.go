// Package tdmatrix provides a minimal compressed-sparse-row (CSR) float64
// matrix together with the handful of dense-vector helpers the
// truth-discovery algorithm kernels need (element-wise products, powers,
// normalisation). It favours exactly the operations spec.md §4.D names and
// nothing more; it is not a general linear-algebra library.
//
// Errors:
//
//	ErrBadShape          - requested rows/cols are non-positive.
//	ErrDimensionMismatch - operand dimensions are incompatible.
//	ErrIndexOutOfRange   - row/col index outside matrix bounds.
package tdmatrix

import "errors"

// ErrBadShape indicates non-positive matrix dimensions were requested.
var ErrBadShape = errors.New("tdmatrix: invalid shape")

// ErrDimensionMismatch indicates incompatible operand dimensions, e.g. a
// MatVec call whose vector length does not match the matrix's column count.
var ErrDimensionMismatch = errors.New("tdmatrix: dimension mismatch")

// ErrIndexOutOfRange indicates a row or column index fell outside the
// matrix's declared bounds.
var ErrIndexOutOfRange = errors.New("tdmatrix: index out of range")
