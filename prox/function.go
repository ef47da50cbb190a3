// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import "github.com/pkg/errors"

// FunctionObj represents one scalar convex function with affine
// pre-composition and quadratic post-addition:
//
//	phi(x) = C * H(A*x - B) + D*x + (E/2)*x^2
//
// The zero value is not valid; use New to obtain the documented
// defaults (A=1, C=1, all others 0).
type FunctionObj struct {
	H          Kind
	A, B, C, D, E float64
}

// New returns a FunctionObj for the given kind with the default affine
// and quadratic parameters (a=1, b=0, c=1, d=0, e=0).
func New(h Kind) FunctionObj {
	return FunctionObj{H: h, A: 1, C: 1}
}

// Validate checks the invariants of a FunctionObj: a != 0, c >= 0, e >= 0, and
// indicator kinds carry no affine/quadratic post-processing.
func (f FunctionObj) Validate() error {
	if f.H < 0 || f.H >= numKinds {
		return errors.Errorf("prox: unknown function kind %d", f.H)
	}
	if f.A == 0 {
		return errors.New("prox: parameter a must not be zero")
	}
	if f.C < 0 {
		return errors.Errorf("prox: parameter c must be non-negative, got %g", f.C)
	}
	if f.E < 0 {
		return errors.Errorf("prox: parameter e must be non-negative, got %g", f.E)
	}
	if f.H.indicator() && (f.C != 1 || f.D != 0 || f.E != 0) {
		return errors.Errorf("prox: indicator kind %s requires c=1, d=0, e=0", f.H)
	}
	return nil
}
