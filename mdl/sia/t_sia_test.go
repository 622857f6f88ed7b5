// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sia

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_sia01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sia01. defaults and derived coefficient")

	mdl := new(Model)
	err := mdl.Init(utl.Params{})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Float64(tst, "secpera", 1e-17, mdl.Secpera, 31556926.0)
	chk.Float64(tst, "n", 1e-17, mdl.N, 3.0)
	chk.Float64(tst, "lambda", 1e-17, mdl.Lambda, 0.25)
	gamma := 2.0 * math.Pow(910.0*9.81, 3.0) * (1.0e-16 / 31556926.0) / 5.0
	chk.Float64(tst, "Gamma", 1e-25, mdl.Gamma, gamma)
	io.Pforan("Gamma = %v\n", mdl.Gamma)

	// overrides
	err = mdl.Init(utl.Params{&utl.P{N: "n", V: 2.0}, &utl.P{N: "eps", V: 0.0}})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Float64(tst, "n (override)", 1e-17, mdl.N, 2.0)
	chk.Float64(tst, "eps (override)", 1e-17, mdl.Eps, 0.0)

	// invalid input
	err = mdl.Init(utl.Params{&utl.P{N: "n", V: 1.0}})
	if err == nil {
		tst.Errorf("Init should have failed with n=1\n")
		return
	}
	io.Pforan("OK: %v\n", err)
	err = mdl.Init(utl.Params{&utl.P{N: "banana", V: 1.0}})
	if err == nil {
		tst.Errorf("Init should have failed with an unknown parameter\n")
		return
	}
	io.Pforan("OK: %v\n", err)
}

func Test_sia02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sia02. flux model properties")

	mdl := new(Model)
	err := mdl.Init(utl.Params{})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// at zero surface gradient the flux vanishes, even with thick ice
	zero := Grad{}
	chk.Float64(tst, "qx (flat)", 1e-17, mdl.Flux(zero, zero, 3000.0, 3000.0, true), 0.0)
	chk.Float64(tst, "qy (flat)", 1e-17, mdl.Flux(zero, zero, 3000.0, 3000.0, false), 0.0)

	// regularization keeps delta_eff positive at zero slope
	de := mdl.DeltaEff(zero, zero)
	if de <= 0.0 {
		tst.Errorf("DeltaEff must stay positive at zero slope: %v\n", de)
		return
	}
	chk.Float64(tst, "delta_eff (flat)", 1e-30, de, mdl.Gamma*math.Pow(mdl.Delta*mdl.Delta, 1.0))

	// with eps the diffusivity never degenerates to zero
	chk.Float64(tst, "D at H=0", 1e-17, mdl.Diffusivity(de, 0.0), mdl.Eps*mdl.D0)

	// the flux is odd in the thickness gradient on a flat bed
	gH := Grad{X: 1e-3, Y: -2e-3}
	gHm := Grad{X: -1e-3, Y: 2e-3}
	qp := mdl.Flux(gH, zero, 2000.0, 2000.0, true)
	qm := mdl.Flux(gHm, zero, 2000.0, 2000.0, true)
	chk.Float64(tst, "odd symmetry", 1e-17, qp, -qm)
	if qp >= 0.0 {
		tst.Errorf("flux must run downhill: qx = %v with positive slope\n", qp)
		return
	}

	// the pseudo-advective weight opposes the bed slope
	gb := Grad{X: 2e-3, Y: -1e-3}
	w := mdl.Wvec(de, gb)
	if w.X >= 0.0 || w.Y <= 0.0 {
		tst.Errorf("W must oppose the bed gradient: W = %v\n", w)
		return
	}
}
