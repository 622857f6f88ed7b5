// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the solver glue around the spatial
// discretizations: an implicit time-stepper for the semi-discrete form
// F(H,H_t) = G(H) with bound constraints, and a matrix-free conjugate
// gradient method for symmetric linear problems.
package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/hui-aqua/p4pdes/grid"
)

// System is the semi-discrete problem F(H,H_t) = G(H) posed over one grid
// patch. Both callbacks must be pure given their inputs: the time-stepper
// invokes them an arbitrary number of times per step.
type System interface {
	IFunction(t float64, H, Hdot, F *grid.Field) error // implicit residual
	RHSFunction(t float64, H, G *grid.Field) error     // explicit source
	Bounds() (lo, hi float64)                          // per-unknown bounds enforced during the solve
}

// Solver implements the actual solver (time loop)
type Solver interface {
	Run(H *grid.Field, t0, tf, dtinit float64, verbose bool) error
}

// New returns a solver from the factory
func New(name string, p grid.Patch, sys System) (Solver, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("solver %q is not available in 'fem' database", name)
	}
	return allocator(p, sys), nil
}

// allocators holds all available solvers
var allocators = make(map[string]func(p grid.Patch, sys System) Solver)
