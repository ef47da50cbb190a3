// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

// ScaleArg returns the FunctionObj representing phi(s*t), i.e. h
// pre-composed with an extra scaling of its argument. Equilibration
// (see the factor package) uses this to fold a row/column scale
// directly into f and g so the ADMM engine can run entirely in the
// scaled coordinate system without special-casing any prox call.
func ScaleArg(f FunctionObj, s float64) FunctionObj {
	return FunctionObj{
		H: f.H,
		A: f.A * s,
		B: f.B,
		C: f.C,
		D: f.D * s,
		E: f.E * s * s,
	}
}
