// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sia implements the regularized nonsliding shallow ice
// approximation (SIA) flux model
//
//	(q^x,q^y) = - Gamma H^{n+2} |grad s|^{n-1} grad s,    s = H + b
//
// where H is ice thickness, b is bed elevation and
// Gamma = 2 A (rho g)^n / (n+2). The model splits grad s = grad H + grad b
// so that the grad H part is a diffusive term with coefficient D while the
// grad b part becomes a pseudo-advective term W·|Hup|^{n+2} suitable for
// upwind stabilization.
package sia

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grad holds the two components of a gradient evaluated at a point
type Grad struct {
	X, Y float64
}

// Model holds the physical and regularization parameters of the SIA flux
type Model struct {
	Secpera float64 // number of seconds in a year
	Grav    float64 // acceleration of gravity [m/s²]
	Rho     float64 // ice density [kg/m³]
	N       float64 // Glen exponent; n > 1 is required
	A       float64 // ice softness [Pa⁻ⁿ 1/s]
	D0      float64 // representative value of diffusivity [m²/s]
	Eps     float64 // dimensionless regularization for less-degenerate diffusivity
	Delta   float64 // dimensionless regularization for slope
	Lambda  float64 // amount of upwinding; 0 is none and 1 is full
	Gamma   float64 // derived coefficient 2 A (rho g)^n / (n+2)
}

// Init initialises this structure. Defaults are the EISMINT I values;
// any parameter may be overridden through prms.
func (o *Model) Init(prms utl.Params) error {
	o.Secpera = 31556926.0
	o.Grav = 9.81
	o.Rho = 910.0
	o.N = 3.0
	o.A = 1.0e-16 / o.Secpera
	o.D0 = 1.0
	o.Eps = 0.001
	o.Delta = 1.0e-4
	o.Lambda = 0.25
	for _, p := range prms {
		switch p.N {
		case "secpera":
			o.Secpera = p.V
		case "g":
			o.Grav = p.V
		case "rho":
			o.Rho = p.V
		case "n":
			o.N = p.V
		case "A":
			o.A = p.V
		case "D0":
			o.D0 = p.V
		case "eps":
			o.Eps = p.V
		case "delta":
			o.Delta = p.V
		case "lambda":
			o.Lambda = p.V
		default:
			return chk.Err("sia.Model: parameter %q is unknown", p.N)
		}
	}
	if o.N <= 1.0 {
		return chk.Err("sia.Model: n = %g not allowed ... n > 1 is required", o.N)
	}
	o.Gamma = 2.0 * math.Pow(o.Rho*o.Grav, o.N) * o.A / (o.N + 2.0)
	return nil
}

// DeltaEff computes the regularized slope-dependent coefficient
//
//	δ_eff = Gamma · (|grad H + grad b|² + delta²)^((n-1)/2)
//
// which is strictly positive even at zero slope; this keeps the flux
// differentiable where the un-regularized |grad s|^{n-1} is not Lipschitz.
func (o *Model) DeltaEff(gH, gb Grad) float64 {
	sx := gH.X + gb.X
	sy := gH.Y + gb.Y
	slopesqr := sx*sx + sy*sy + o.Delta*o.Delta
	return o.Gamma * math.Pow(slopesqr, (o.N-1.0)/2.0)
}

// Diffusivity computes the regularized diffusivity
//
//	D(eps) = (1-eps) δ_eff |H|^{n+2} + eps D0
//
// so D(0) is the true degenerate diffusivity and D(1) = D0.
func (o *Model) Diffusivity(deltaEff, H float64) float64 {
	return (1.0-o.Eps)*deltaEff*math.Pow(math.Abs(H), o.N+2.0) + o.Eps*o.D0
}

// Wvec computes the pseudo-advective weight W = -δ_eff grad b, the bed
// slope part of the split gradient which multiplies |Hup|^{n+2}
func (o *Model) Wvec(deltaEff float64, gb Grad) Grad {
	return Grad{X: -deltaEff * gb.X, Y: -deltaEff * gb.Y}
}

// Flux computes one component of the SIA flux
//
//	q_dir = -D ∂H/∂dir + W_dir |Hup|^{n+2}
//
// with the diffusive part using the centrally-sampled gradient and the
// pseudo-advective part using the upwind-sampled thickness Hup. Absolute
// values keep the flux well-defined when H transiently goes slightly
// negative during the nonlinear iteration.
func (o *Model) Flux(gH, gb Grad, H, Hup float64, xdir bool) float64 {
	deltaEff := o.DeltaEff(gH, gb)
	myD := o.Diffusivity(deltaEff, H)
	myW := o.Wvec(deltaEff, gb)
	if xdir {
		return -myD*gH.X + myW.X*math.Pow(math.Abs(Hup), o.N+2.0)
	}
	return -myD*gH.Y + myW.Y*math.Pow(math.Abs(Hup), o.N+2.0)
}
