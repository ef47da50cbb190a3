// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

// Prox evaluates prox_{phi/rho}(v) for phi(x) = c*h(a*x-b) + d*x +
// (e/2)*x^2, given the caller's penalty rho > 0. It applies the
// composition rule uniformly: complete the square on the
// affine/quadratic terms to fold them into an adjusted target and
// penalty, then invoke the base prox of h and undo the affine
// substitution.
func Prox(f FunctionObj, v, rho float64) float64 {
	rhoPrime := rho + f.E
	vPrime := (rho*v - f.D) / rhoPrime
	if f.C == 0 {
		// h drops out entirely; phi is purely affine/quadratic.
		return vPrime
	}
	lam := rhoPrime / (f.C * f.A * f.A)
	w := f.A*vPrime - f.B
	u := proxBase(f.H, w, lam)
	return (u + f.B) / f.A
}

// Eval evaluates phi(x) = c*h(a*x-b) + d*x + (e/2)*x^2. Indicator
// kinds return +Inf for infeasible x; callers that only need the
// value for diagnostic reporting should clamp it themselves.
func Eval(f FunctionObj, x float64) float64 {
	u := f.A*x - f.B
	return f.C*evalBase(f.H, u) + f.D*x + f.E/2*x*x
}
