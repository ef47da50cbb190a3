// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la defines the linear-algebra contract the ADMM engine
// consumes and a dense CPU implementation backed by gonum. A
// GPU backend satisfies the same Backend interface with cuBLAS/cuSOLVER
// calls behind it; the engine never depends on which one it got.
package la

import "gonum.org/v1/gonum/mat"

// Matrix is a dense m×n matrix in row-major layout: Data has length
// m*n and Data[i*n+j] is A[i][j].
type Matrix struct {
	Data []float64
	M, N int
}

// Backend groups the seven linear-algebra primitives the core needs:
// two directions of Gemv, Axpy, Nrm2, Syrk, Potrf and Potrs.
type Backend interface {
	// Gemv computes y = A x. len(x) must equal a.N, len(y) must equal a.M.
	Gemv(a Matrix, x, y []float64)
	// GemvT computes x = Aᵀ y. len(y) must equal a.M, len(x) must equal a.N.
	GemvT(a Matrix, y, x []float64)
	// Axpy computes y = alpha*x + y in place.
	Axpy(alpha float64, x, y []float64)
	// Nrm2 computes the Euclidean norm of x.
	Nrm2(x []float64) float64
	// Syrk computes G = I + AᵀA when wide is true (m >= n, G is n×n)
	// or G = I + AAᵀ when wide is false (m < n, G is m×m), formed via
	// one symmetric rank-k update with the identity added to the
	// diagonal in place.
	Syrk(a Matrix, wide bool) *mat.SymDense
	// Potrf factors g and returns the Cholesky factor, or an error if g
	// is not positive definite. g itself is left unchanged.
	Potrf(g *mat.SymDense) (*mat.Cholesky, error)
	// Potrs solves L Lᵀ z = r by two triangular solves and writes the
	// result into z. r and z may alias.
	Potrs(chol *mat.Cholesky, r []float64, z []float64)
}
