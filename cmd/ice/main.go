// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Solves the time-dependent shallow ice approximation thickness equation
// on a doubly-periodic square domain, with a synthetic bed and an
// elevation-dependent climatic mass balance, or (in verification mode) a
// flat bed with the exact dome solution as both initial state and error
// reference.
//
// Usage (positional arguments, all optional):
//
//	ice [mx] [verif] [tf] [dt] [verbose]
//
// where mx is the number of nodes per direction, verif enables
// verification mode, tf is the final time [a] and dt the time step [a].
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/hui-aqua/p4pdes/ele/ice"
	"github.com/hui-aqua/p4pdes/fem"
	"github.com/hui-aqua/p4pdes/grid"
	"github.com/hui-aqua/p4pdes/mdl/cmb"
	"github.com/hui-aqua/p4pdes/mdl/sia"
)

func main() {

	// input
	mx := io.ArgToInt(0, 18)
	verif := io.ArgToBool(1, false)
	tf := io.ArgToFloat(2, 100.0) // [a]
	dt := io.ArgToFloat(3, 10.0)  // [a]
	verbose := io.ArgToBool(4, true)

	// grid: doubly periodic, 1800 km per side
	L := 1800.0e3
	g, err := grid.New(mx, mx, L, L, true)
	if err != nil {
		chk.Panic("%v", err)
	}

	// flux and mass balance models
	mdl := new(sia.Model)
	err = mdl.Init(utl.Params{})
	if err != nil {
		chk.Panic("%v", err)
	}
	cmbMdl, err := cmb.New("linear")
	if err != nil {
		chk.Panic("%v", err)
	}
	err = cmbMdl.Init(utl.Params{})
	if err != nil {
		chk.Panic("%v", err)
	}

	// discretization and solver
	p := g.FullPatch()
	sheet, err := ice.New(p, mdl, cmbMdl, verif)
	if err != nil {
		chk.Panic("%v", err)
	}
	solver, err := fem.New("beuler", p, sheet)
	if err != nil {
		chk.Panic("%v", err)
	}

	// run
	H := g.NewField()
	err = sheet.InitialThickness(H)
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("solving SIA on %d x %d grid (dx = %.3f km) to tf = %g a\n", mx, mx, g.Dx/1000.0, tf)
	err = solver.Run(H, 0.0, tf*mdl.Secpera, dt*mdl.Secpera, verbose)
	if err != nil {
		chk.Panic("%v", err)
	}

	// report
	io.Pf("done: max thickness = %.3f m\n", p.NormInf(H))
	if verif {
		Hex := g.NewField()
		err = sheet.ExactThickness(Hex)
		if err != nil {
			chk.Panic("%v", err)
		}
		H.Axpy(-1.0, Hex)
		errAv := p.NormOne(H) / float64(mx*mx)
		errInf := p.NormInf(H)
		io.Pf("errors: av |H-Hexact| = %.3f m,  |H-Hexact|_inf = %.3f m\n", errAv, errInf)
	}
}
