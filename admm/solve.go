// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"github.com/curioloop/admm/factor"
	"github.com/curioloop/admm/prox"
)

// Solve is the solver's public entry point: it reads
// problem.A, F, G and the tuning parameters, runs the ADMM engine to
// convergence or MaxIter, and writes the final x and y=Ax into
// problem.X and problem.Y. It never mutates problem.A, F or G.
func Solve(problem *Problem) (*Result, error) {
	p := problem.withDefaults()
	if err := p.validate(); err != nil {
		return &Result{Status: InvalidInput}, err
	}

	logger := p.Logger
	if logger == nil {
		logger = defaultLogger(p.Quiet)
	}

	cache, err := factor.Build(p.Backend, p.A)
	if err != nil {
		// A NumericalFailure is reported through Result.Status rather
		// than the error return: it is not an invalid-input
		// error. The factored system depends on A only, not on Rho.
		return &Result{Status: NumericalFailure}, nil
	}

	f := make([]prox.FunctionObj, p.A.M)
	for i, fi := range p.F {
		f[i] = prox.ScaleArg(fi, 1/cache.RowScale[i])
	}
	g := make([]prox.FunctionObj, p.A.N)
	for j, gj := range p.G {
		g[j] = prox.ScaleArg(gj, cache.ColScale[j])
	}

	e := newEngine(p, cache, f, g)
	status, iters, objective := e.run(p.MaxIter, logger)
	logger.final(status, iters)

	for j := range p.X {
		p.X[j] = e.x[j] * cache.ColScale[j]
	}
	for i := range p.Y {
		p.Y[i] = e.y[i] / cache.RowScale[i]
	}

	return &Result{Status: status, Iterations: iters, Objective: objective}, nil
}
