// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"testing"
)

func TestGemvRoundTrip(t *testing.T) {
	a := Matrix{Data: []float64{1, 2, 3, 4, 5, 6}, M: 2, N: 3} // 2x3
	var b GonumBackend

	x := []float64{1, 1, 1}
	y := make([]float64, 2)
	b.Gemv(a, x, y)
	want := []float64{6, 15}
	for i := range want {
		if math.Abs(y[i]-want[i]) > 1e-12 {
			t.Fatalf("Gemv: got %v want %v", y, want)
		}
	}

	z := make([]float64, 3)
	b.GemvT(a, y, z)
	wantT := []float64{1*6 + 4*15, 2*6 + 5*15, 3*6 + 6*15}
	for i := range wantT {
		if math.Abs(z[i]-wantT[i]) > 1e-9 {
			t.Fatalf("GemvT: got %v want %v", z, wantT)
		}
	}
}

func TestAxpyNrm2(t *testing.T) {
	var b GonumBackend
	x := []float64{3, 4}
	y := []float64{0, 0}
	b.Axpy(1, x, y)
	if math.Abs(b.Nrm2(y)-5) > 1e-12 {
		t.Fatalf("Nrm2 after Axpy = %v, want 5", b.Nrm2(y))
	}
}

func TestSyrkPotrfPotrs(t *testing.T) {
	// A is 3x2, m >= n, so G = I + AᵀA is 2x2.
	a := Matrix{Data: []float64{1, 0, 0, 1, 1, 1}, M: 3, N: 2}
	var b GonumBackend

	g := b.Syrk(a, true)
	// AᵀA = [[2,1],[1,2]], G = [[3,1],[1,3]]
	if math.Abs(g.At(0, 0)-3) > 1e-9 || math.Abs(g.At(0, 1)-1) > 1e-9 {
		t.Fatalf("Syrk: got G=%v", mat2str(g))
	}

	chol, err := b.Potrf(g)
	if err != nil {
		t.Fatalf("Potrf failed: %v", err)
	}

	r := []float64{4, 5}
	z := make([]float64, 2)
	b.Potrs(chol, r, z)

	// Verify G*z == r.
	got0 := g.At(0, 0)*z[0] + g.At(0, 1)*z[1]
	got1 := g.At(1, 0)*z[0] + g.At(1, 1)*z[1]
	if math.Abs(got0-r[0]) > 1e-8 || math.Abs(got1-r[1]) > 1e-8 {
		t.Fatalf("Potrs: G*z = (%v, %v), want %v", got0, got1, r)
	}
}

func mat2str(g interface{ At(i, j int) float64 }) [2][2]float64 {
	return [2][2]float64{{g.At(0, 0), g.At(0, 1)}, {g.At(1, 0), g.At(1, 1)}}
}
