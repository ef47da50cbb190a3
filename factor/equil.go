// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"math"

	"github.com/curioloop/admm/la"
)

// equilibrate applies Ruiz row/column equilibration to a, returning a
// scaled copy Â = D A E together with the diagonal scalings d, e (D =
// diag(d), E = diag(e)). Iterating a few rounds of "divide every row
// by the square root of its max absolute entry, then every column by
// the same" drives every row and column of Â toward unit infinity
// norm, which improves the conditioning of I + ÂᵀÂ before Cholesky
// factorization. f and g must be rescaled with prox.ScaleArg to match,
// so the transformed problem has the same optimal x, y as the original.
func equilibrate(a la.Matrix, iters int) (scaled la.Matrix, d, e []float64) {
	m, n := a.M, a.N
	data := append([]float64(nil), a.Data...)
	d = make([]float64, m)
	e = make([]float64, n)
	for i := range d {
		d[i] = 1
	}
	for j := range e {
		e[j] = 1
	}

	for iter := 0; iter < iters; iter++ {
		for i := 0; i < m; i++ {
			row := data[i*n : i*n+n]
			mx := 0.0
			for _, v := range row {
				if a := math.Abs(v); a > mx {
					mx = a
				}
			}
			if mx == 0 {
				continue
			}
			s := 1 / math.Sqrt(mx)
			for j := range row {
				row[j] *= s
			}
			d[i] *= s
		}
		for j := 0; j < n; j++ {
			mx := 0.0
			for i := 0; i < m; i++ {
				if a := math.Abs(data[i*n+j]); a > mx {
					mx = a
				}
			}
			if mx == 0 {
				continue
			}
			s := 1 / math.Sqrt(mx)
			for i := 0; i < m; i++ {
				data[i*n+j] *= s
			}
			e[j] *= s
		}
	}

	return la.Matrix{Data: data, M: m, N: n}, d, e
}
