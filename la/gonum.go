// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// GonumBackend implements Backend on top of gonum.org/v1/gonum's dense
// BLAS (blas64) and the mat package's Cholesky wrapper around LAPACK
// (lapack64), the same layering the ecosystem's own mat.Cholesky uses
// internally.
type GonumBackend struct{}

func (GonumBackend) Gemv(a Matrix, x, y []float64) {
	blas64.Gemv(blas.NoTrans, 1, general(a), vector(x), 0, vector(y))
}

func (GonumBackend) GemvT(a Matrix, y, x []float64) {
	blas64.Gemv(blas.Trans, 1, general(a), vector(y), 0, vector(x))
}

func (GonumBackend) Axpy(alpha float64, x, y []float64) {
	blas64.Axpy(alpha, vector(x), vector(y))
}

func (GonumBackend) Nrm2(x []float64) float64 {
	return blas64.Nrm2(vector(x))
}

func (GonumBackend) Syrk(a Matrix, wide bool) *mat.SymDense {
	var dim int
	var trans blas.Transpose
	if wide {
		dim, trans = a.N, blas.Trans // G = AᵀA, n×n
	} else {
		dim, trans = a.M, blas.NoTrans // G = AAᵀ, m×m
	}

	g := mat.NewSymDense(dim, nil)
	sym := blas64.Symmetric{Uplo: blas.Upper, N: dim, Data: g.RawSymmetric().Data, Stride: g.RawSymmetric().Stride}
	blas64.Syrk(trans, 1, general(a), 0, sym)

	for i := 0; i < dim; i++ {
		g.SetSym(i, i, g.At(i, i)+1)
	}
	return g
}

func (GonumBackend) Potrf(g *mat.SymDense) (*mat.Cholesky, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(g); !ok {
		return nil, errors.New("la: cholesky factorization failed, matrix not positive definite")
	}
	return &chol, nil
}

func (GonumBackend) Potrs(chol *mat.Cholesky, r []float64, z []float64) {
	n := len(r)
	rv := mat.NewVecDense(n, append([]float64(nil), r...))
	var zv mat.VecDense
	if err := chol.SolveVecTo(&zv, rv); err != nil {
		// SolveVecTo only reports ill-conditioning, not singularity;
		// the factor already proved positive definite in Potrf.
		_ = err
	}
	copy(z, zv.RawVector().Data)
}

func general(a Matrix) blas64.General {
	return blas64.General{Rows: a.M, Cols: a.N, Data: a.Data, Stride: a.N}
}

func vector(x []float64) blas64.Vector {
	return blas64.Vector{N: len(x), Data: x, Inc: 1}
}
