// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factor implements the one-time Cholesky factorization the
// ADMM engine amortizes across every iteration, and the equilibration
// that conditions A before it is formed.
package factor

import (
	"github.com/curioloop/admm/la"
	"gonum.org/v1/gonum/mat"
)

// equilIters is the number of Ruiz equilibration passes applied
// before factorization. POGS and OSQP both converge their row/column
// norms to within a few percent of 1 in this many rounds.
const equilIters = 10

// Cache holds the Cholesky factor of the graph-subspace projection
// system, built once per Solve and reused for every ADMM iteration.
// It also holds the equilibrated matrix Â = D A E and the diagonal
// scalings D, E, so that Project can be called directly with the
// caller's Gemv/GemvT without the engine needing to know equilibration
// happened.
type Cache struct {
	backend la.Backend
	a       la.Matrix // equilibrated Â = D A E
	chol    *mat.Cholesky
	wide    bool // true: m >= n, factor is n×n; false: m < n, factor is m×m

	RowScale []float64 // D, length m
	ColScale []float64 // E, length n
}

// Build equilibrates a, forms G = I + ÂᵀÂ (or I + ÂÂᵀ, whichever is
// smaller) via one symmetric rank-k update, and factors it. It
// returns a NumericalFailure-shaped error if G is not (numerically)
// positive definite.
func Build(backend la.Backend, a la.Matrix) (*Cache, error) {
	scaled, d, e := equilibrate(a, equilIters)
	wide := a.M >= a.N

	g := backend.Syrk(scaled, wide)
	chol, err := backend.Potrf(g)
	if err != nil {
		return nil, err
	}

	return &Cache{
		backend:  backend,
		a:        scaled,
		chol:     chol,
		wide:     wide,
		RowScale: d,
		ColScale: e,
	}, nil
}

// A returns the equilibrated matrix Â that every engine computation
// (prox excluded) must use, so that the whole ADMM iteration runs in
// one consistent coordinate system.
func (c *Cache) A() la.Matrix { return c.a }

// Project solves the graph-subspace projection step:
//
//	(x, y) = argmin ½‖x'-(xt+xb)‖² + ½‖y'-(yt+yb)‖²  s.t. y' = Â x'
//
// via the closed form x = (I+ÂᵀÂ)⁻¹ r when m>=n, or the
// matrix-inversion-lemma form x = r - Âᵀ(I+ÂÂᵀ)⁻¹Âr when m<n, where
// r = xt+xb+Âᵀ(yt+yb). y is then recovered as Âx.
func (c *Cache) Project(xt, xb, yt, yb, xOut, yOut []float64) {
	n, m := len(xt), len(yt)
	backend := c.backend

	sum := make([]float64, m)
	copy(sum, yt)
	backend.Axpy(1, yb, sum)

	r := make([]float64, n)
	backend.GemvT(c.a, sum, r)
	backend.Axpy(1, xt, r)
	backend.Axpy(1, xb, r)

	if c.wide {
		backend.Potrs(c.chol, r, xOut)
	} else {
		as := make([]float64, m)
		backend.Gemv(c.a, r, as)
		z := make([]float64, m)
		backend.Potrs(c.chol, as, z)
		atz := make([]float64, n)
		backend.GemvT(c.a, z, atz)
		for i := range xOut {
			xOut[i] = r[i] - atz[i]
		}
	}

	backend.Gemv(c.a, xOut, yOut)
}
