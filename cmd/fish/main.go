// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Solves the Poisson problem -∇²u = f on the unit square with Dirichlet
// boundary conditions from a manufactured exact solution, using the
// 5-point finite-difference discretization and the conjugate gradient
// method, and reports the discretization error.
//
// Usage (positional arguments, all optional):
//
//	fish [mx] [problem] [tol] [maxit]
//
// where problem is one of "manupoly", "manuexp" or "zero".
package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/hui-aqua/p4pdes/ana"
	"github.com/hui-aqua/p4pdes/ele/poisson"
	"github.com/hui-aqua/p4pdes/fem"
	"github.com/hui-aqua/p4pdes/grid"
)

func main() {

	// input
	mx := io.ArgToInt(0, 9)
	problem := io.ArgToString(1, "manuexp")
	tol := io.ArgToFloat(2, 1e-10)
	maxIt := io.ArgToInt(3, 10000)

	// grid and problem
	g, err := grid.New(mx, mx, 1.0, 1.0, false)
	if err != nil {
		chk.Panic("%v", err)
	}
	sol, err := ana.PoissonProblem(problem)
	if err != nil {
		chk.Panic("%v", err)
	}
	pde, err := poisson.New(g.FullPatch(), sol)
	if err != nil {
		chk.Panic("%v", err)
	}

	// solve the interior system with CG
	n := pde.NumInterior()
	b := la.NewVector(n)
	x := la.NewVector(n)
	pde.RHS(b)
	nit, err := fem.SolveCG(pde.OpApply, b, x, tol, maxIt)
	if err != nil {
		chk.Panic("%v", err)
	}

	// report errors against the exact solution
	u := pde.FieldFrom(x)
	uex := g.NewField()
	pde.Exact(uex)
	u.Axpy(-1.0, uex)
	p := g.FullPatch()
	errInf := p.NormInf(u)
	err2 := 0.0
	for k := 0; k < g.My; k++ {
		for j := 0; j < g.Mx; j++ {
			err2 += u.At(j, k) * u.At(j, k)
		}
	}
	err2h := math.Sqrt(err2) / math.Sqrt(float64((mx-1)*(mx-1)))
	io.Pf("problem %s on %d x %d grid: %d CG iterations\n", problem, mx, mx, nit)
	io.Pf("errors: |u-uexact|_inf = %.3e, |u-uexact|_h = %.3e\n", errInf, err2h)
}
