// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/hui-aqua/p4pdes/ele/ice"
	"github.com/hui-aqua/p4pdes/grid"
	"github.com/hui-aqua/p4pdes/mdl/cmb"
	"github.com/hui-aqua/p4pdes/mdl/sia"
)

func Test_cg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg01. small SPD system")

	// A = [4 1 0; 1 3 1; 0 1 2], x = [1 2 3], b = A x
	op := func(x, y la.Vector) {
		y[0] = 4.0*x[0] + x[1]
		y[1] = x[0] + 3.0*x[1] + x[2]
		y[2] = x[1] + 2.0*x[2]
	}
	b := la.Vector([]float64{6.0, 10.0, 8.0})
	x := la.NewVector(3)
	nit, err := SolveCG(op, b, x, 1e-12, 100)
	if err != nil {
		tst.Errorf("SolveCG failed: %v\n", err)
		return
	}
	io.Pforan("x = %v  (%d iterations)\n", x, nit)
	chk.Array(tst, "x", 1e-10, x, []float64{1.0, 2.0, 3.0})

	// an indefinite operator is detected
	bad := func(x, y la.Vector) {
		y[0] = -x[0]
		y[1] = -x[1]
		y[2] = -x[2]
	}
	x.Fill(0.0)
	_, err = SolveCG(bad, b, x, 1e-12, 100)
	if err == nil {
		tst.Errorf("SolveCG should have failed on an indefinite operator\n")
		return
	}
	io.Pforan("OK: %v\n", err)
}

// newSheet builds an ice sheet system on an mx x mx periodic grid
func newSheet(tst *testing.T, mx int, cmbName string, verif bool) (grid.Patch, *ice.Ice) {
	L := 1800.0e3
	g, err := grid.New(mx, mx, L, L, true)
	if err != nil {
		tst.Fatalf("grid.New failed: %v\n", err)
	}
	mdl := new(sia.Model)
	err = mdl.Init(utl.Params{})
	if err != nil {
		tst.Fatalf("cannot initialise sia model: %v\n", err)
	}
	cmbMdl, err := cmb.New(cmbName)
	if err != nil {
		tst.Fatalf("cmb.New failed: %v\n", err)
	}
	err = cmbMdl.Init(utl.Params{})
	if err != nil {
		tst.Fatalf("cannot initialise cmb model: %v\n", err)
	}
	p := g.FullPatch()
	sheet, err := ice.New(p, mdl, cmbMdl, verif)
	if err != nil {
		tst.Fatalf("ice.New failed: %v\n", err)
	}
	return p, sheet
}

func Test_beuler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beuler01. factory and steady state")

	_, err := New("banana", grid.Patch{}, nil)
	if err == nil {
		tst.Errorf("New should have failed with an unknown solver\n")
		return
	}
	io.Pforan("OK: %v\n", err)

	// constant thickness on a flat bed with zero mass balance is an exact
	// steady state: the first residual vanishes and Newton never moves
	p, sheet := newSheet(tst, 6, "zero", false)
	sheet.Bed.Fill(0.0)
	solver, err := New("beuler", p, sheet)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	g := p.G
	H := g.NewField()
	H.Fill(500.0)
	secpera := sheet.Mdl.Secpera
	err = solver.Run(H, 0.0, 100.0*secpera, 50.0*secpera, false)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	for k := 0; k < g.My; k++ {
		for j := 0; j < g.Mx; j++ {
			chk.Float64(tst, "H stays at 500", 1e-12, H.At(j, k), 500.0)
		}
	}
}

func Test_beuler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beuler02. bounds hold through a constrained run")

	// the chop-scale initial state is zero wherever the mass balance is
	// negative; those nodes must stay pinned at the lower bound instead of
	// going negative under ablation
	p, sheet := newSheet(tst, 12, "linear", false)
	solver, err := New("beuler", p, sheet)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	g := p.G
	H := g.NewField()
	err = sheet.InitialThickness(H)
	if err != nil {
		tst.Errorf("InitialThickness failed: %v\n", err)
		return
	}
	secpera := sheet.Mdl.Secpera
	err = solver.Run(H, 0.0, 30.0*secpera, 10.0*secpera, false)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	minH, maxH := math.Inf(1), 0.0
	for k := 0; k < g.My; k++ {
		for j := 0; j < g.Mx; j++ {
			v := H.At(j, k)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Errorf("thickness is not finite at (%d,%d): %v\n", j, k, v)
				return
			}
			minH = math.Min(minH, v)
			maxH = math.Max(maxH, v)
		}
	}
	io.Pforan("H range = [%v, %v]\n", minH, maxH)
	if minH < 0.0 {
		tst.Errorf("thickness went below the lower bound: %v\n", minH)
		return
	}
	if maxH <= 0.0 {
		tst.Errorf("all ice disappeared; the run is vacuous\n")
		return
	}
}

// domeErrors runs the verification problem and returns the average and
// maximum thickness error against the exact dome
func domeErrors(tst *testing.T, mx int) (errAv, errInf float64) {
	p, sheet := newSheet(tst, mx, "zero", true)
	solver, err := New("beuler", p, sheet)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	g := p.G
	H := g.NewField()
	err = sheet.InitialThickness(H)
	if err != nil {
		tst.Fatalf("InitialThickness failed: %v\n", err)
	}
	secpera := sheet.Mdl.Secpera
	err = solver.Run(H, 0.0, 200.0*secpera, 50.0*secpera, false)
	if err != nil {
		tst.Fatalf("Run failed: %v\n", err)
	}
	Hex := g.NewField()
	err = sheet.ExactThickness(Hex)
	if err != nil {
		tst.Fatalf("ExactThickness failed: %v\n", err)
	}
	H.Axpy(-1.0, Hex)
	errAv = p.NormOne(H) / float64(mx*mx)
	errInf = p.NormInf(H)
	io.Pforan("mx = %2d: av |H-Hexact| = %10.3f  |H-Hexact|_inf = %10.3f\n", mx, errAv, errInf)
	return
}

func Test_beuler03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beuler03. dome verification under refinement")

	if testing.Short() {
		tst.Skip("skipping verification run in short mode")
	}

	// starting from the exact dome, 200 a of implicit evolution drifts to
	// the discrete steady state; the distance to the exact dome measures
	// the spatial discretization error and must shrink under refinement
	errAv12, errInf12 := domeErrors(tst, 12)
	errAv24, errInf24 := domeErrors(tst, 24)
	if errInf24 >= errInf12 {
		tst.Errorf("refinement must reduce the maximum error: %v -> %v\n", errInf12, errInf24)
		return
	}
	if errAv24 >= errAv12 {
		tst.Errorf("refinement must reduce the average error: %v -> %v\n", errAv12, errAv24)
		return
	}
}
