// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package poisson implements the node-centered finite-difference
// discretization of the Poisson problem
//
//	-∇²u = f   on (0,Lx) x (0,Ly),    u = g   on the boundary
//
// with a manufactured exact solution supplying both f and g. The residual
// is scaled by the cell area so that the operator stays symmetric:
//
//	F = 2(cx+cy)·u - cx(uW+uE) - cy(uS+uN) - hx·hy·f,   cx = hy/hx, cy = hx/hy
//
// Boundary rows are simply F = u - g.
package poisson

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/hui-aqua/p4pdes/ana"
	"github.com/hui-aqua/p4pdes/grid"
)

// Poisson implements the Dirichlet Poisson problem on a non-periodic grid
type Poisson struct {
	G   *grid.Grid
	P   grid.Patch
	Sol *ana.PoissonSolution
}

// New returns a new Poisson problem over patch p
func New(p grid.Patch, sol *ana.PoissonSolution) (o *Poisson, err error) {
	if p.G.Periodic {
		return nil, chk.Err("poisson problem requires a non-periodic grid")
	}
	return &Poisson{G: p.G, P: p, Sol: sol}, nil
}

// onBoundary tells whether node (j,k) sits on the domain boundary
func (o *Poisson) onBoundary(j, k int) bool {
	return j == 0 || j == o.G.Mx-1 || k == 0 || k == o.G.My-1
}

// Residual assembles F(u) over the owned nodes
func (o *Poisson) Residual(u, F *grid.Field) error {
	hx, hy := o.G.Dx, o.G.Dy
	cx, cy := hy/hx, hx/hy
	for k := o.P.Ys; k < o.P.Ys+o.P.Ym; k++ {
		y := o.G.Y(k)
		for j := o.P.Xs; j < o.P.Xs+o.P.Xm; j++ {
			x := o.G.X(j)
			if o.onBoundary(j, k) {
				F.Set(j, k, u.At(j, k)-o.Sol.U(x, y))
				continue
			}
			ff := 2.0*(cx+cy)*u.At(j, k) -
				cx*(u.At(j-1, k)+u.At(j+1, k)) -
				cy*(u.At(j, k-1)+u.At(j, k+1)) -
				hx*hy*o.Sol.F(x, y)
			F.Set(j, k, ff)
		}
	}
	return nil
}

// NumInterior returns the number of interior (non-Dirichlet) nodes; the
// interior nodes are numbered row by row for the Krylov form
func (o *Poisson) NumInterior() int { return (o.G.Mx - 2) * (o.G.My - 2) }

func (o *Poisson) idx(j, k int) int { return (k-1)*(o.G.Mx-2) + (j - 1) }

// OpApply computes y = A·x where A is the interior-only 5-point operator
// with homogeneous Dirichlet conditions (boundary data lives in the
// right-hand side); A is symmetric positive definite
func (o *Poisson) OpApply(x, y la.Vector) {
	hx, hy := o.G.Dx, o.G.Dy
	cx, cy := hy/hx, hx/hy
	mx, my := o.G.Mx, o.G.My
	at := func(j, k int) float64 {
		if j <= 0 || j >= mx-1 || k <= 0 || k >= my-1 {
			return 0.0
		}
		return x[o.idx(j, k)]
	}
	for k := 1; k < my-1; k++ {
		for j := 1; j < mx-1; j++ {
			y[o.idx(j, k)] = 2.0*(cx+cy)*at(j, k) -
				cx*(at(j-1, k)+at(j+1, k)) -
				cy*(at(j, k-1)+at(j, k+1))
		}
	}
}

// RHS assembles the right-hand side of the interior system, lifting the
// Dirichlet boundary data of the exact solution into b
func (o *Poisson) RHS(b la.Vector) {
	hx, hy := o.G.Dx, o.G.Dy
	cx, cy := hy/hx, hx/hy
	mx, my := o.G.Mx, o.G.My
	for k := 1; k < my-1; k++ {
		y := o.G.Y(k)
		for j := 1; j < mx-1; j++ {
			x := o.G.X(j)
			bb := hx * hy * o.Sol.F(x, y)
			if j == 1 {
				bb += cx * o.Sol.U(o.G.X(0), y)
			}
			if j == mx-2 {
				bb += cx * o.Sol.U(o.G.X(mx-1), y)
			}
			if k == 1 {
				bb += cy * o.Sol.U(x, o.G.Y(0))
			}
			if k == my-2 {
				bb += cy * o.Sol.U(x, o.G.Y(my-1))
			}
			b[o.idx(j, k)] = bb
		}
	}
}

// FieldFrom scatters the interior solution x into a full field, with the
// boundary nodes set from the Dirichlet data
func (o *Poisson) FieldFrom(x la.Vector) *grid.Field {
	u := o.G.NewField()
	for k := 0; k < o.G.My; k++ {
		y := o.G.Y(k)
		for j := 0; j < o.G.Mx; j++ {
			if o.onBoundary(j, k) {
				u.Set(j, k, o.Sol.U(o.G.X(j), y))
			} else {
				u.Set(j, k, x[o.idx(j, k)])
			}
		}
	}
	return u
}

// Exact fills u with the exact solution at the nodes
func (o *Poisson) Exact(u *grid.Field) {
	for k := 0; k < o.G.My; k++ {
		y := o.G.Y(k)
		for j := 0; j < o.G.Mx; j++ {
			u.Set(j, k, o.Sol.U(o.G.X(j), y))
		}
	}
}
