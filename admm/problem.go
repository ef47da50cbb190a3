// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"github.com/pkg/errors"

	"github.com/curioloop/admm/la"
	"github.com/curioloop/admm/prox"
)

// Default parameter values.
const (
	DefaultRho     = 1.0
	DefaultMaxIter = 1000
	DefaultRelTol  = 1e-3
	DefaultAbsTol  = 1e-4
)

// WarmStart supplies an initial (X, Y) instead of the zero start of
// the minimal engine lifecycle; leaving it nil reproduces the
// zero-initialized behavior exactly.
type WarmStart struct {
	X []float64 // length n
	Y []float64 // length m
}

// Problem is the solver's input structure: the graph-form problem
// minimize f(y)+g(x) s.t. y=Ax, plus configuration.
// A, F, G and the WarmStart (if any) are read-only to Solve; X and Y
// are the caller-owned output buffers Solve writes into.
type Problem struct {
	A la.Matrix
	F []prox.FunctionObj // length m, one per row / coordinate of y
	G []prox.FunctionObj // length n, one per column / coordinate of x

	X []float64 // output, length n
	Y []float64 // output, length m

	Rho     float64
	MaxIter int
	RelTol  float64
	AbsTol  float64
	Quiet   bool
	Logger  *Logger

	// AdaptiveRho enables the residual-imbalance rho update (Boyd et
	// al. §3.4.1). Unlike generic ADMM the graph-form projection
	// factor does not depend on rho, so firing it only rescales the
	// stored scaled duals; the Cholesky factor is never rebuilt.
	// Defaults to off, so the default behavior matches the fixed-rho
	// core exactly.
	AdaptiveRho bool
	// WarmStart, if non-nil, seeds the iteration instead of zero.
	WarmStart *WarmStart

	// Backend overrides the linear-algebra implementation; nil selects
	// la.GonumBackend{}.
	Backend la.Backend
}

// withDefaults returns a copy of p with zero-valued tunables filled
// in from the documented defaults, the way lbfgsb.Problem.New
// fills in a zero Termination before validating it.
func (p Problem) withDefaults() Problem {
	if p.Rho == 0 {
		p.Rho = DefaultRho
	}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}
	if p.RelTol == 0 {
		p.RelTol = DefaultRelTol
	}
	if p.AbsTol == 0 {
		p.AbsTol = DefaultAbsTol
	}
	if p.Backend == nil {
		p.Backend = la.GonumBackend{}
	}
	return p
}

// validate checks the problem's structural invariants and the
// invalid-input taxonomy once, before any allocation.
func (p Problem) validate() error {
	switch {
	case p.A.M <= 0:
		return errors.New("admm: m must be greater than 0")
	case p.A.N <= 0:
		return errors.New("admm: n must be greater than 0")
	case len(p.A.Data) != p.A.M*p.A.N:
		return errors.Errorf("admm: A has %d entries, want m*n = %d", len(p.A.Data), p.A.M*p.A.N)
	case len(p.F) != p.A.M:
		return errors.Errorf("admm: |f| = %d, want m = %d", len(p.F), p.A.M)
	case len(p.G) != p.A.N:
		return errors.Errorf("admm: |g| = %d, want n = %d", len(p.G), p.A.N)
	case len(p.X) != p.A.N:
		return errors.Errorf("admm: output buffer x has length %d, want n = %d", len(p.X), p.A.N)
	case len(p.Y) != p.A.M:
		return errors.Errorf("admm: output buffer y has length %d, want m = %d", len(p.Y), p.A.M)
	case p.Rho <= 0:
		return errors.Errorf("admm: rho must be positive, got %g", p.Rho)
	case p.MaxIter <= 0:
		return errors.Errorf("admm: max_iter must be positive, got %d", p.MaxIter)
	}
	for i, f := range p.F {
		if err := f.Validate(); err != nil {
			return errors.Wrapf(err, "admm: f[%d]", i)
		}
	}
	for j, g := range p.G {
		if err := g.Validate(); err != nil {
			return errors.Wrapf(err, "admm: g[%d]", j)
		}
	}
	if ws := p.WarmStart; ws != nil {
		if len(ws.X) != p.A.N {
			return errors.Errorf("admm: warm start x has length %d, want n = %d", len(ws.X), p.A.N)
		}
		if len(ws.Y) != p.A.M {
			return errors.Errorf("admm: warm start y has length %d, want m = %d", len(ws.Y), p.A.M)
		}
	}
	return nil
}
