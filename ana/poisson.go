// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PoissonSolution pairs a manufactured exact solution u(x,y) of the
// Poisson problem -∇²u = f with its forcing f(x,y)
type PoissonSolution struct {
	Name string
	U    func(x, y float64) float64 // exact solution (also Dirichlet data)
	F    func(x, y float64) float64 // forcing f = -∇²u
}

// poissonDB holds all available manufactured Poisson solutions
var poissonDB = map[string]*PoissonSolution{

	// polynomial solution; its second derivatives are linear, so the
	// 5-point Laplacian reproduces it with zero truncation error
	"manupoly": {
		Name: "manupoly",
		U:    func(x, y float64) float64 { return (x - x*x) * (y*y - y) },
		F:    func(x, y float64) float64 { return 2.0*(y*y-y) - 2.0*(x-x*x) },
	},

	// -(u_xx + u_yy) = -u for this one
	"manuexp": {
		Name: "manuexp",
		U:    func(x, y float64) float64 { return -x * math.Exp(y) },
		F:    func(x, y float64) float64 { return x * math.Exp(y) },
	},

	"zero": {
		Name: "zero",
		U:    func(x, y float64) float64 { return 0.0 },
		F:    func(x, y float64) float64 { return 0.0 },
	},
}

// PoissonProblem returns a manufactured Poisson solution by name
func PoissonProblem(name string) (*PoissonSolution, error) {
	sol, ok := poissonDB[name]
	if !ok {
		return nil, chk.Err("solution %q is not available in 'poisson' database", name)
	}
	return sol, nil
}
