// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Linear implements an elevation-dependent mass balance
//
//	M(s) = zgrad · (min{s, holdelev} - ela)
//
// i.e. ablation below the equilibrium line altitude, accumulation above
// it, with the rate held constant above elevation holdelev.
type Linear struct {
	Secpera  float64 // seconds per year
	Ela      float64 // equilibrium line altitude [m]
	Zgrad    float64 // vertical gradient of the mass balance [1/a]
	HoldElev float64 // hold rate constant above this elevation [m]
}

// add model to factory
func init() {
	allocators["linear"] = func() Model { return new(Linear) }
}

// Init initialises this structure
func (o *Linear) Init(prms utl.Params) error {
	o.Secpera = 31556926.0
	o.Ela = 2000.0
	o.Zgrad = 0.001
	o.HoldElev = 2250.0
	for _, p := range prms {
		switch p.N {
		case "secpera":
			o.Secpera = p.V
		case "ela":
			o.Ela = p.V
		case "zgrad":
			o.Zgrad = p.V
		case "holdelev":
			o.HoldElev = p.V
		default:
			return chk.Err("cmb.Linear: parameter %q is unknown", p.N)
		}
	}
	return nil
}

// Rate returns the mass balance [m/s] at surface elevation s [m]
func (o *Linear) Rate(s float64) float64 {
	if s > o.HoldElev {
		s = o.HoldElev
	}
	return (o.Zgrad / o.Secpera) * (s - o.Ela)
}
