// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"math"

	"github.com/curioloop/admm/factor"
	"github.com/curioloop/admm/la"
	"github.com/curioloop/admm/prox"
)

// rhoAdaptMu, rhoAdaptTau are the residual-imbalance heuristic
// constants from Boyd et al., "Distributed Optimization and
// Statistical Learning via ADMM" §3.4.1, used when Problem.AdaptiveRho
// is set.
const (
	rhoAdaptMu  = 10.0
	rhoAdaptTau = 2.0
)

// engine carries the mutable iteration state of one Solve call: the
// projection-subspace iterates (x, y), the prox iterates (xt, yt for
// x̃, ỹ) and the scaled duals (xb, yb for x̄, ȳ). f, g are the
// equilibrated function lists; the engine never sees the caller's
// original A, f, g directly.
type engine struct {
	backend la.Backend
	cache   *factor.Cache
	f       []prox.FunctionObj // equilibrated, length m
	g       []prox.FunctionObj // equilibrated, length n
	m, n    int

	rho            float64
	relTol, absTol float64
	adaptive       bool

	x, y         []float64
	xt, yt       []float64
	xb, yb       []float64
	xPrev, yPrev []float64
	tmpN, tmpM   []float64
}

func newEngine(p Problem, cache *factor.Cache, f, g []prox.FunctionObj) *engine {
	m, n := p.A.M, p.A.N
	e := &engine{
		backend:  p.Backend,
		cache:    cache,
		f:        f,
		g:        g,
		m:        m,
		n:        n,
		rho:      p.Rho,
		relTol:   p.RelTol,
		absTol:   p.AbsTol,
		adaptive: p.AdaptiveRho,
		x:        make([]float64, n),
		y:        make([]float64, m),
		xt:       make([]float64, n),
		yt:       make([]float64, m),
		xb:       make([]float64, n),
		yb:       make([]float64, m),
		xPrev:    make([]float64, n),
		yPrev:    make([]float64, m),
		tmpN:     make([]float64, n),
		tmpM:     make([]float64, m),
	}
	if p.WarmStart != nil {
		for j := range e.x {
			e.x[j] = p.WarmStart.X[j] / cache.ColScale[j]
		}
		for i := range e.y {
			e.y[i] = p.WarmStart.Y[i] * cache.RowScale[i]
		}
	}
	return e
}

// proxStep is the first ADMM substep: coordinate-wise, independent, and
// safe to parallelize; no coordinate depends on another's result.
func (e *engine) proxStep() {
	for j := 0; j < e.n; j++ {
		e.xt[j] = prox.Prox(e.g[j], e.x[j]-e.xb[j], e.rho)
	}
	for i := 0; i < e.m; i++ {
		e.yt[i] = prox.Prox(e.f[i], e.y[i]-e.yb[i], e.rho)
	}
}

// dualUpdate is the third ADMM substep, the scaled-form dual ascent.
func (e *engine) dualUpdate() {
	for j := range e.xb {
		e.xb[j] += e.xt[j] - e.x[j]
	}
	for i := range e.yb {
		e.yb[i] += e.yt[i] - e.y[i]
	}
}

// residuals computes the primal/dual residuals and tolerances of the
// convergence test.
func (e *engine) residuals() (rPri, epsPri, rDual, epsDual float64) {
	diffNorm := func(dst, a, b []float64) float64 {
		copy(dst, a)
		e.backend.Axpy(-1, b, dst)
		return e.backend.Nrm2(dst)
	}

	rPri = diffNorm(e.tmpN, e.x, e.xt) + diffNorm(e.tmpM, e.y, e.yt)
	rDual = e.rho * (diffNorm(e.tmpN, e.x, e.xPrev) + diffNorm(e.tmpM, e.y, e.yPrev))

	combined := func(a, b []float64) float64 {
		na, nb := e.backend.Nrm2(a), e.backend.Nrm2(b)
		return math.Sqrt(na*na + nb*nb)
	}

	dim := math.Sqrt(float64(e.m + e.n))
	nrmXY := combined(e.x, e.y)
	nrmXtYt := combined(e.xt, e.yt)
	epsPri = dim*e.absTol + e.relTol*math.Max(nrmXY, nrmXtYt)

	nrmDual := combined(e.xb, e.yb)
	epsDual = dim*e.absTol + e.relTol*e.rho*nrmDual

	return rPri, epsPri, rDual, epsDual
}

// objective evaluates f(ỹ)+g(x̃) in the equilibrated coordinate
// system. Because f, g were built as f(t/d), g(t*e), this value is
// identical to f(y)+g(x) in the caller's original coordinates: no
// unscaling is needed just to report it.
func (e *engine) objective() float64 {
	var obj float64
	for i, fi := range e.f {
		obj += prox.Eval(fi, e.yt[i])
	}
	for j, gj := range e.g {
		obj += prox.Eval(gj, e.xt[j])
	}
	return obj
}

// maybeAdaptRho applies the residual-imbalance heuristic (Boyd et al.
// §3.4.1) when enabled. The graph-form projection system I+AᵀA has no
// ρ term, so unlike generic ADMM the stored factor stays valid; only
// the scaled dual, which is λ/ρ, needs rescaling to keep λ continuous.
func (e *engine) maybeAdaptRho(rPri, rDual float64) {
	if !e.adaptive {
		return
	}
	switch {
	case rPri > rhoAdaptMu*rDual:
		e.rescaleRho(e.rho * rhoAdaptTau)
	case rDual > rhoAdaptMu*rPri:
		e.rescaleRho(e.rho / rhoAdaptTau)
	}
}

func (e *engine) rescaleRho(newRho float64) {
	scale := e.rho / newRho
	for i := range e.xb {
		e.xb[i] *= scale
	}
	for i := range e.yb {
		e.yb[i] *= scale
	}
	e.rho = newRho
}

// run drives the three ADMM substeps in order, which must execute in
// that order every iteration, until convergence or maxIter, logging
// one line per iteration when logger allows it.
func (e *engine) run(maxIter int, logger *Logger) (status Status, iters int, objective float64) {
	logger.header()
	for iter := 1; iter <= maxIter; iter++ {
		copy(e.xPrev, e.x)
		copy(e.yPrev, e.y)

		e.proxStep()
		e.cache.Project(e.xt, e.xb, e.yt, e.yb, e.x, e.y)
		e.dualUpdate()

		rPri, epsPri, rDual, epsDual := e.residuals()
		objective = e.objective()
		logger.iteration(iter, rPri, epsPri, rDual, epsDual, objective)

		if rPri <= epsPri && rDual <= epsDual {
			return Solved, iter, objective
		}
		e.maybeAdaptRho(rPri, rDual)
	}
	return MaxIterReached, maxIter, objective
}
