// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ice implements the finite-volume-element (FVE) spatial
// discretization of the ice sheet thickness equation
//
//	H_t + div (q^x,q^y) = m
//
// on a periodic structured grid, where q is the nonsliding shallow ice
// approximation flux and m is the climatic mass balance. The
// semi-discrete form is written as F(H,H_t) = G(H): IFunction assembles
// the implicit residual F and RHSFunction the explicit source G, both
// suitable for an implicit time-stepper with the inequality constraint
// H >= 0 declared by Bounds.
package ice

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/exascience/pargo/parallel"

	"github.com/hui-aqua/p4pdes/ana"
	"github.com/hui-aqua/p4pdes/grid"
	"github.com/hui-aqua/p4pdes/mdl/cmb"
	"github.com/hui-aqua/p4pdes/mdl/sia"
	"github.com/hui-aqua/p4pdes/shp"
)

/* Each grid cell carries 4 quadrature points at which one flux component
is evaluated; q[c], c=0,1,2,3, is an x-component at "*" and a y-component
at "%":
   -------------------
  |         :         |
  |         *2        |
  |    3    :    1    |
  |....%.... ....%....|
  |         :         |
  |         *0        |
  |         :         |
  @-------------------
(j,k)

The control volume of node (j,k) is a rectangle centered on the node; its
boundary is sampled at 8 of those points, numbered s=0,...,7 in
counter-clockwise order:
   -------------------
  |         |         |
  |    ..2..|..1..    |
  |   3:    |    :0   |
k |--------- ---------|
  |   4:    |    :7   |
  |    ..5..|..6..    |
  |         |         |
   -------------------
            j
Point s lives in cell (j+je[s], k+ke[s]) and is that cell's flux value
number ce[s]. A wrong sign or offset in these tables breaks local mass
conservation. */

// local (cell-wise) coordinates of the 4 quadrature points, and the
// direction of the flux component evaluated at each
var (
	locx  = [4]float64{0.5, 0.75, 0.5, 0.25}
	locy  = [4]float64{0.25, 0.5, 0.75, 0.5}
	xdire = [4]bool{true, false, true, false}
)

// indexing of the 8 quadrature points along the control volume boundary
var (
	je = [8]int{0, 0, -1, -1, -1, -1, 0, 0}
	ke = [8]int{0, 0, 0, 0, -1, -1, -1, -1}
	ce = [8]int{0, 3, 1, 0, 2, 1, 3, 2}
)

// Ice implements the FVE discretization on one grid patch
type Ice struct {

	// basic data
	G     *grid.Grid // the (periodic) grid
	P     grid.Patch // owned sub-block
	Mdl   *sia.Model // SIA flux model
	Cmb   cmb.Model  // climatic mass balance model
	Verif bool       // verification mode: flat bed, dome source
	Dome  *ana.Dome  // exact solution; allocated in verification mode

	// configuration
	InitMagic float64 // years multiplying the CMB for the initial thickness

	// bed elevation; formed once since the analytic formula is
	// resolution-independent (zero field in verification mode)
	Bed *grid.Field

	// source strategy, selected once at construction
	source func(x, y, b, H float64) float64
}

// New returns a new FVE ice sheet element over patch p
func New(p grid.Patch, mdl *sia.Model, cmbMdl cmb.Model, verif bool) (o *Ice, err error) {
	g := p.G
	if !g.Periodic {
		return nil, chk.Err("ice element requires a periodic grid")
	}
	o = &Ice{G: g, P: p, Mdl: mdl, Cmb: cmbMdl, Verif: verif, InitMagic: 1000.0}
	o.Bed = g.NewField()
	if verif {
		o.Dome = new(ana.Dome)
		err = o.Dome.Init(utl.Params{
			&utl.P{N: "L", V: g.Lx},
			&utl.P{N: "n", V: mdl.N},
			&utl.P{N: "gamma", V: mdl.Gamma},
		})
		if err != nil {
			return nil, err
		}
		o.source = func(x, y, b, H float64) float64 { return o.Dome.CMB(x, y) }
	} else {
		FormBed(g.FullPatch(), o.Bed)
		o.source = func(x, y, b, H float64) float64 { return o.Cmb.Rate(b + H) }
	}
	return o, nil
}

// UpwindShift returns the shifted transverse local coordinate for the
// upwind thickness sample: upmin when the bed-slope component is
// non-positive and upmax otherwise, with upmin = (1-λ)/2, upmax = (1+λ)/2
func UpwindShift(gbComp, upmin, upmax float64) float64 {
	if gbComp <= 0.0 {
		return upmin
	}
	return upmax
}

// cellRange returns the cell index range [lo,hi) covering the owned nodes
// plus one halo layer, without duplicates when the patch spans the whole
// periodic direction
func cellRange(s, m, total int) (lo, hi int) {
	if m >= total {
		return 0, total
	}
	return s - 1, s + m
}

// fluxQuad evaluates the flux model at the 4 quadrature points of every
// cell touching the owned nodes, storing component c in q[c]
func (o *Ice) fluxQuad(H *grid.Field, q [4]*grid.Field) {
	upwind := o.Mdl.Lambda > 0.0
	upmin := (1.0 - o.Mdl.Lambda) * 0.5
	upmax := (1.0 + o.Mdl.Lambda) * 0.5
	jlo, jhi := cellRange(o.P.Xs, o.P.Xm, o.G.Mx)
	klo, khi := cellRange(o.P.Ys, o.P.Ym, o.G.My)
	parallel.Range(klo, khi, 0, func(ka, kb int) {
		for k := ka; k < kb; k++ {
			for j := jlo; j < jhi; j++ {
				for c := 0; c < 4; c++ {
					Hc := shp.FieldAtCellPt(H, j, k, locx[c], locy[c])
					gHx, gHy := shp.GradAtCellPt(H, j, k, locx[c], locy[c])
					gbx, gby := shp.GradAtCellPt(o.Bed, j, k, locx[c], locy[c])
					gH := sia.Grad{X: gHx, Y: gHy}
					gb := sia.Grad{X: gbx, Y: gby}
					Hup := Hc
					if upwind {
						var lxup, lyup float64
						if xdire[c] {
							lxup = UpwindShift(gb.X, upmin, upmax)
							lyup = locy[c]
						} else {
							lxup = locx[c]
							lyup = UpwindShift(gb.Y, upmin, upmax)
						}
						Hup = shp.FieldAtCellPt(H, j, k, lxup, lyup)
					}
					q[c].Set(j, k, o.Mdl.Flux(gH, gb, Hc, Hup, xdire[c]))
				}
			}
		}
	})
}

// IFunction assembles the implicit residual over the owned nodes
//
//	F[k][j] = Hdot[k][j]·dx·dy + ∮_{∂V(j,k)} q·n
//
// with the control volume boundary integral quadrature-sampled at 8
// points. Stateless: all flux values are recomputed from H on every call.
func (o *Ice) IFunction(t float64, H, Hdot, F *grid.Field) error {
	dx, dy := o.G.Dx, o.G.Dy
	coeff := [8]float64{dy / 2, dx / 2, dx / 2, -dy / 2, -dy / 2, -dx / 2, -dx / 2, dy / 2}
	var q [4]*grid.Field
	for c := 0; c < 4; c++ {
		q[c] = o.G.NewField()
	}
	o.fluxQuad(H, q)
	for k := o.P.Ys; k < o.P.Ys+o.P.Ym; k++ {
		for j := o.P.Xs; j < o.P.Xs+o.P.Xm; j++ {
			ff := Hdot.At(j, k) * dx * dy
			for s := 0; s < 8; s++ {
				ff += coeff[s] * q[ce[s]].At(j+je[s], k+ke[s])
			}
			F.Set(j, k, ff)
		}
	}
	return nil
}

// RHSFunction assembles the explicit source over the owned nodes
//
//	G[k][j] = m(x_j, y_k)·dx·dy
//
// where m is the climatic mass balance at the surface elevation b+H, or
// the exact dome mass balance in verification mode.
func (o *Ice) RHSFunction(t float64, H, G *grid.Field) error {
	darea := o.G.Dx * o.G.Dy
	for k := o.P.Ys; k < o.P.Ys+o.P.Ym; k++ {
		y := o.G.Y(k)
		for j := o.P.Xs; j < o.P.Xs+o.P.Xm; j++ {
			x := o.G.X(j)
			G.Set(j, k, o.source(x, y, o.Bed.At(j, k), H.At(j, k))*darea)
		}
	}
	return nil
}

// Bounds returns the constraint 0 <= H < +∞ enforced by the external
// bound-constrained nonlinear solver
func (o *Ice) Bounds() (lo, hi float64) {
	return 0.0, math.Inf(1)
}

// InitialThickness fills H with the initial guess: the exact dome in
// verification mode, otherwise the chop-scale-CMB heuristic
//
//	H0 = max{ M(b), 0 } · initmagic · secpera
func (o *Ice) InitialThickness(H *grid.Field) error {
	for k := o.P.Ys; k < o.P.Ys+o.P.Ym; k++ {
		y := o.G.Y(k)
		for j := o.P.Xs; j < o.P.Xs+o.P.Xm; j++ {
			x := o.G.X(j)
			if o.Verif {
				H.Set(j, k, o.Dome.Thickness(x, y))
				continue
			}
			m := o.Cmb.Rate(o.Bed.At(j, k))
			if m < 0.0 {
				m = 0.0
			}
			H.Set(j, k, m*o.InitMagic*o.Mdl.Secpera)
		}
	}
	return nil
}

// ExactThickness fills H with the exact dome thickness (verification
// mode only) for error reporting
func (o *Ice) ExactThickness(H *grid.Field) error {
	if !o.Verif {
		return chk.Err("exact thickness is only available in verification mode")
	}
	for k := o.P.Ys; k < o.P.Ys+o.P.Ym; k++ {
		y := o.G.Y(k)
		for j := o.P.Xs; j < o.P.Xs+o.P.Xm; j++ {
			H.Set(j, k, o.Dome.Thickness(o.G.X(j), y))
		}
	}
	return nil
}
