// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

// Result is the outcome of a Solve call. The caller's X, Y buffers
// hold the actual solution; Result carries the termination metadata
// the input/output surface reports alongside it.
type Result struct {
	Status     Status
	Iterations int
	// Objective is f(y)+g(x) at the returned iterate, using the prox
	// (feasible) copies x̃, ỹ.
	Objective float64
}
