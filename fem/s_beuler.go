// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hui-aqua/p4pdes/grid"
)

// Beuler implements the backward Euler scheme for F(H,H_t) = G(H) with a
// reduced-space (active set) Newton method handling the bound constraints
// lo <= H <= hi. At each step it solves
//
//	r(H) = F(H, (H - Hold)/dt) - G(H) = 0
//
// on the inactive set, with unknowns pinned at a bound and pushed further
// outward by the residual removed from the Newton system. The Jacobian is
// assembled by finite-difference coloring when the stencil structure
// allows, otherwise by probing one unknown at a time.
type Beuler struct {

	// input
	p   grid.Patch
	sys System

	// constants
	Atol  float64 // absolute tolerance on the reduced residual norm
	Rtol  float64 // relative tolerance on the reduced residual norm
	Stol  float64 // step-size tolerance
	MaxIt int     // maximum number of Newton iterations per step
	FdEps float64 // relative perturbation for finite-difference Jacobians

	// derived
	lo, hi float64 // bounds declared by the system
}

// set factory
func init() {
	allocators["beuler"] = func(p grid.Patch, sys System) Solver {
		o := new(Beuler)
		o.p = p
		o.sys = sys
		o.Atol = 1e-9
		o.Rtol = 1e-8
		o.Stol = 1e-10
		o.MaxIt = 200
		o.FdEps = 1e-7
		o.lo, o.hi = sys.Bounds()
		return o
	}
}

// idx maps owned node (j,k) to its unknown number
func (o *Beuler) idx(j, k int) int {
	return (k-o.p.Ys)*o.p.Xm + (j - o.p.Xs)
}

// gather copies the owned nodes of field f into vector v
func (o *Beuler) gather(f *grid.Field, v la.Vector) {
	for k := o.p.Ys; k < o.p.Ys+o.p.Ym; k++ {
		for j := o.p.Xs; j < o.p.Xs+o.p.Xm; j++ {
			v[o.idx(j, k)] = f.At(j, k)
		}
	}
}

// scatter copies vector v into the owned nodes of field f
func (o *Beuler) scatter(v la.Vector, f *grid.Field) {
	for k := o.p.Ys; k < o.p.Ys+o.p.Ym; k++ {
		for j := o.p.Xs; j < o.p.Xs+o.p.Xm; j++ {
			f.Set(j, k, v[o.idx(j, k)])
		}
	}
}

// workspace for one time step
type beulerWork struct {
	H, Hdot, F, G, Hold *grid.Field
	h, r, rpert         la.Vector
}

// residual computes r(h) = F(h,(h-hold)/dt) - G(h) into r
func (o *Beuler) residual(w *beulerWork, t, dt float64, h, r la.Vector) (err error) {
	o.scatter(h, w.H)
	for k := o.p.Ys; k < o.p.Ys+o.p.Ym; k++ {
		for j := o.p.Xs; j < o.p.Xs+o.p.Xm; j++ {
			w.Hdot.Set(j, k, (w.H.At(j, k)-w.Hold.At(j, k))/dt)
		}
	}
	err = o.sys.IFunction(t, w.H, w.Hdot, w.F)
	if err != nil {
		return
	}
	err = o.sys.RHSFunction(t, w.H, w.G)
	if err != nil {
		return
	}
	for k := o.p.Ys; k < o.p.Ys+o.p.Ym; k++ {
		for j := o.p.Xs; j < o.p.Xs+o.p.Xm; j++ {
			r[o.idx(j, k)] = w.F.At(j, k) - w.G.At(j, k)
		}
	}
	return
}

// canColor tells whether the 9-color finite-difference scheme applies: the
// residual stencil is 3 x 3 so nodes three apart never interact, but the
// coloring must also be consistent across the periodic wrap
func (o *Beuler) canColor() bool {
	g := o.p.G
	full := o.p.Xs == 0 && o.p.Ys == 0 && o.p.Xm == g.Mx && o.p.Ym == g.My
	return full && g.Periodic && g.Mx%3 == 0 && g.My%3 == 0
}

// jacobian assembles the finite-difference Jacobian of the residual at h
// into the dense matrix J
func (o *Beuler) jacobian(w *beulerWork, t, dt float64, h, r la.Vector, J *mat.Dense) (err error) {
	n := o.p.NumOwned()
	J.Zero()
	if o.canColor() {
		g := o.p.G
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				copy(w.h, h)
				for k := o.p.Ys; k < o.p.Ys+o.p.Ym; k++ {
					for j := o.p.Xs; j < o.p.Xs+o.p.Xm; j++ {
						if j%3 == a && k%3 == b {
							i := o.idx(j, k)
							w.h[i] += o.FdEps * (1.0 + math.Abs(h[i]))
						}
					}
				}
				err = o.residual(w, t, dt, w.h, w.rpert)
				if err != nil {
					return
				}
				// each residual row sees exactly one perturbed node of
				// this color inside its 3 x 3 stencil
				for k := o.p.Ys; k < o.p.Ys+o.p.Ym; k++ {
					for j := o.p.Xs; j < o.p.Xs+o.p.Xm; j++ {
						for dk := -1; dk <= 1; dk++ {
							for dj := -1; dj <= 1; dj++ {
								jj := g.WrapJ(j + dj)
								kk := g.WrapK(k + dk)
								if jj%3 != a || kk%3 != b {
									continue
								}
								i := o.idx(j, k)
								c := o.idx(jj, kk)
								den := o.FdEps * (1.0 + math.Abs(h[c]))
								J.Set(i, c, (w.rpert[i]-r[i])/den)
							}
						}
					}
				}
			}
		}
		return
	}
	for c := 0; c < n; c++ {
		copy(w.h, h)
		den := o.FdEps * (1.0 + math.Abs(h[c]))
		w.h[c] += den
		err = o.residual(w, t, dt, w.h, w.rpert)
		if err != nil {
			return
		}
		for i := 0; i < n; i++ {
			J.Set(i, c, (w.rpert[i]-r[i])/den)
		}
	}
	return
}

// pinned tells whether unknown value hv with residual rv is held at a
// bound: at the bound with the residual pushing further outward
func (o *Beuler) pinned(hv, rv float64) bool {
	if hv <= o.lo && rv > 0.0 {
		return true
	}
	if hv >= o.hi && rv < 0.0 {
		return true
	}
	return false
}

// project clamps h onto the bounds
func (o *Beuler) project(h la.Vector) {
	for i := range h {
		h[i] = math.Min(math.Max(h[i], o.lo), o.hi)
	}
}

// step solves one backward Euler step, advancing h in place
func (o *Beuler) step(w *beulerWork, t, dt float64, h la.Vector, verbose bool) (nit int, err error) {
	n := o.p.NumOwned()
	J := mat.NewDense(n, n, nil)
	free := make([]int, 0, n)
	r0norm := -1.0
	for nit = 0; nit < o.MaxIt; nit++ {
		err = o.residual(w, t, dt, h, w.r)
		if err != nil {
			return
		}

		// active set and reduced residual norm
		free = free[:0]
		rnorm := 0.0
		for i := 0; i < n; i++ {
			if o.pinned(h[i], w.r[i]) {
				continue
			}
			free = append(free, i)
			rnorm = math.Max(rnorm, math.Abs(w.r[i]))
		}
		if r0norm < 0.0 {
			r0norm = rnorm
		}
		if verbose {
			io.Pf("      it=%3d  nfree=%6d  |r|=%13.7e\n", nit, len(free), rnorm)
		}
		if rnorm <= o.Atol || rnorm <= o.Rtol*r0norm {
			return
		}
		if len(free) == 0 {
			return // every unknown is pinned at a bound
		}

		// reduced Newton system
		err = o.jacobian(w, t, dt, h, w.r, J)
		if err != nil {
			return
		}
		nf := len(free)
		Jr := mat.NewDense(nf, nf, nil)
		rhs := mat.NewVecDense(nf, nil)
		for a, i := range free {
			rhs.SetVec(a, -w.r[i])
			for b, c := range free {
				Jr.Set(a, b, J.At(i, c))
			}
		}
		δ := mat.NewVecDense(nf, nil)
		err = δ.SolveVec(Jr, rhs)
		if err != nil {
			return nit, chk.Err("beuler: Newton linear solve failed: %v", err)
		}

		// update and project
		for a, i := range free {
			h[i] += δ.AtVec(a)
		}
		o.project(h)
		if floats.Norm(δ.RawVector().Data, 2) <= o.Stol*(1.0+floats.Norm(h, 2)) {
			return
		}
	}
	return nit, chk.Err("beuler: Newton did not converge in %d iterations; |r0|=%g", o.MaxIt, r0norm)
}

// Run advances the solution field H from t0 to tf with initial step dtinit
func (o *Beuler) Run(H *grid.Field, t0, tf, dtinit float64, verbose bool) (err error) {
	if dtinit <= 0.0 {
		return chk.Err("beuler: time step must be positive; dt=%g is invalid", dtinit)
	}
	g := o.p.G
	n := o.p.NumOwned()
	w := &beulerWork{
		H:     g.NewField(),
		Hdot:  g.NewField(),
		F:     g.NewField(),
		G:     g.NewField(),
		Hold:  g.NewField(),
		h:     la.NewVector(n),
		r:     la.NewVector(n),
		rpert: la.NewVector(n),
	}
	h := la.NewVector(n)
	o.gather(H, h)
	o.project(h)
	t := t0
	for istep := 0; t < tf-1e-12*(tf-t0); istep++ {
		dt := dtinit
		if t+dt > tf {
			dt = tf - t
		}
		o.scatter(h, H)
		H.CopyInto(w.Hold)
		nit, err := o.step(w, t+dt, dt, h, verbose)
		if err != nil {
			return err
		}
		t += dt
		if verbose {
			io.Pf("  step %4d: t = %13.7e  dt = %g  (%d Newton iterations)\n", istep, t, dt, nit)
		}
	}
	o.scatter(h, H)
	return
}
