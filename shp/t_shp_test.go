// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/hui-aqua/p4pdes/grid"
)

func Test_q101(tst *testing.T) {

	//verbose()
	chk.PrintTitle("q101. affine exactness of Q1 interpolation")

	// the Q1 interpolant must reproduce f(x,y) = 2 + 3x - 4y exactly,
	// in both value and gradient, at any point of any cell
	g, err := grid.New(5, 4, 2.0, 3.0, false)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	f := g.NewField()
	for k := 0; k < g.My; k++ {
		for j := 0; j < g.Mx; j++ {
			f.Set(j, k, 2.0+3.0*g.X(j)-4.0*g.Y(k))
		}
	}

	j, k := 2, 1
	for _, xi := range utl.LinSpace(0, 1, 5) {
		for _, eta := range utl.LinSpace(0, 1, 5) {
			x := g.X(j) + xi*g.Dx
			y := g.Y(k) + eta*g.Dy
			val := FieldAtCellPt(f, j, k, xi, eta)
			chk.Float64(tst, "value", 1e-13, val, 2.0+3.0*x-4.0*y)
			gradx, grady := GradAtCellPt(f, j, k, xi, eta)
			chk.Float64(tst, "gradx", 1e-13, gradx, 3.0)
			chk.Float64(tst, "grady", 1e-13, grady, -4.0)
		}
	}
}

func Test_q102(tst *testing.T) {

	//verbose()
	chk.PrintTitle("q102. corner values and periodic cells")

	g, err := grid.New(3, 3, 1.0, 1.0, true)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	f := g.NewField()
	f.Set(0, 0, 10.0)
	f.Set(1, 0, 20.0)
	f.Set(1, 1, 30.0)
	f.Set(0, 1, 40.0)

	// the interpolant hits the nodal values at the cell corners
	chk.Float64(tst, "corner 0", 1e-17, FieldAtCellPt(f, 0, 0, 0, 0), 10.0)
	chk.Float64(tst, "corner 1", 1e-17, FieldAtCellPt(f, 0, 0, 1, 0), 20.0)
	chk.Float64(tst, "corner 2", 1e-17, FieldAtCellPt(f, 0, 0, 1, 1), 30.0)
	chk.Float64(tst, "corner 3", 1e-17, FieldAtCellPt(f, 0, 0, 0, 1), 40.0)

	// the last cell wraps around to the first column/row
	f.Fill(0.0)
	f.Set(0, 0, 8.0)
	chk.Float64(tst, "wrapped corner", 1e-17, FieldAtCellPt(f, 2, 2, 1, 1), 8.0)
}
