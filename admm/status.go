// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package admm implements the ADMM engine and its input/output surface:
// the iterative solver for graph-form convex problems
//
//	minimize     f(y) + g(x)
//	subject to   y = A x
//
// specialized to Parikh & Boyd's graph-form splitting.
package admm

// Status reports how a Solve call terminated.
type Status int

const (
	// Solved means both primal and dual residuals fell within
	// tolerance.
	Solved Status = iota
	// MaxIterReached means the iteration cap was hit before
	// convergence; the returned x, y are the last completed iterate,
	// not necessarily feasible or optimal.
	MaxIterReached
	// NumericalFailure means the Cholesky factorization of I+AᵀA (or
	// I+AAᵀ) failed, indicating A was ill-conditioned enough that
	// rounding pushed the system to indefiniteness. The factored
	// system is built from A alone; Rho does not enter it.
	NumericalFailure
	// InvalidInput means the problem failed validation before any
	// allocation; Result.Status is set to this value and Solve also
	// returns a non-nil error describing the violation.
	InvalidInput
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case MaxIterReached:
		return "MaxIterReached"
	case NumericalFailure:
		return "NumericalFailure"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}
