// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used for verification:
// the radially symmetric dome similarity solution of the steady shallow
// ice approximation, and manufactured solutions of the Poisson equation.
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Dome implements the closed-form radially symmetric steady state of the
// nonsliding SIA equation on a flat bed (the Bueler profile): a dome of
// margin radius R and center thickness H0, together with the compatible
// mass balance that makes it an exact steady solution.
type Dome struct {

	// parameters
	R     float64 // margin radius of the exact ice sheet [m]
	H0    float64 // center thickness of the exact ice sheet [m]
	Cx    float64 // x-coordinate of the dome center [m]
	Cy    float64 // y-coordinate of the dome center [m]
	N     float64 // Glen exponent
	Gamma float64 // SIA flux coefficient 2 A (rho g)^n / (n+2)

	// derived
	cct float64 // thickness profile scale
	ccm float64 // mass balance scale
}

// Init initialises this structure. Parameters "L" (domain length; the
// dome is centered at (L/2,L/2)), "n" and "gamma" are required; "r0" and
// "h0" override the margin radius and center thickness.
func (o *Dome) Init(prms utl.Params) error {
	o.R = 750.0e3
	o.H0 = 3600.0
	var L float64
	var hasL, hasN, hasGamma bool
	for _, p := range prms {
		switch p.N {
		case "L":
			L, hasL = p.V, true
		case "n":
			o.N, hasN = p.V, true
		case "gamma":
			o.Gamma, hasGamma = p.V, true
		case "r0":
			o.R = p.V
		case "h0":
			o.H0 = p.V
		default:
			return chk.Err("ana.Dome: parameter %q is unknown", p.N)
		}
	}
	if !hasL || !hasN || !hasGamma {
		return chk.Err("ana.Dome: parameters 'L', 'n' and 'gamma' are all required")
	}
	if o.N <= 1.0 {
		return chk.Err("ana.Dome: n = %g not allowed ... n > 1 is required", o.N)
	}
	o.Cx, o.Cy = L/2.0, L/2.0
	n := o.N
	qq := n / (2.0*n + 2.0)
	o.cct = o.H0 / math.Pow(1.0-1.0/n, qq)
	o.ccm = o.Gamma * math.Pow(o.H0, 2.0*n+2.0) / math.Pow(2.0*o.R*(1.0-1.0/n), n)
	return nil
}

// radius returns the distance from (x,y) to the dome center
func (o *Dome) radius(x, y float64) float64 {
	return math.Sqrt((x-o.Cx)*(x-o.Cx) + (y-o.Cy)*(y-o.Cy))
}

// Thickness returns the exact dome thickness at (x,y); zero outside the
// margin. The center singularity of the profile is avoided by clamping
// the radius away from zero.
func (o *Dome) Thickness(x, y float64) float64 {
	r := o.radius(x, y)
	if r > o.R-0.01 {
		return 0.0
	}
	if r < 0.01 {
		r = 0.01
	}
	n := o.N
	mm := 1.0 + 1.0/n
	qq := n / (2.0*n + 2.0)
	s := r / o.R
	tmp := mm*s - 1.0/n + math.Pow(1.0-s, mm) - math.Pow(s, mm)
	return o.cct * math.Pow(tmp, qq)
}

// CMB returns the mass balance rate [m/s] which makes the dome an exact
// steady solution; positive (accumulation) near the center and strongly
// negative (ablation) near the margin. The radius is clamped away from
// both the center and margin singularities.
func (o *Dome) CMB(x, y float64) float64 {
	r := o.radius(x, y)
	if r < 0.01 {
		r = 0.01
	}
	if r > o.R-0.01 {
		r = o.R - 0.01
	}
	n := o.N
	pp := 1.0 / n
	s := r / o.R
	tmp1 := math.Pow(s, pp) + math.Pow(1.0-s, pp) - 1.0
	tmp2 := 2.0*math.Pow(s, pp) + math.Pow(1.0-s, pp-1.0)*(1.0-2.0*s) - 1.0
	return (o.ccm / r) * math.Pow(tmp1, n-1.0) * tmp2
}
