// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements uniform structured 2D meshes with node-centered
// scalar fields. A grid may be periodic in both directions, in which case
// field indexing wraps around; the wrap stands in for the one-cell ghost
// (halo) exchange that a distributed implementation would perform before
// each residual evaluation.
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Grid holds the dimensions and spacing of a uniform mx × my node grid on
// [0,Lx] × [0,Ly]. For periodic grids the last node column/row is the
// neighbor of the first one, thus Dx = Lx/mx; for non-periodic grids the
// boundary nodes sit on the domain edges and Dx = Lx/(mx-1).
type Grid struct {
	Mx, My   int     // number of nodes in each direction
	Lx, Ly   float64 // domain lengths
	Dx, Dy   float64 // node spacings
	Periodic bool    // periodic in both directions
}

// New returns a new grid
func New(mx, my int, lx, ly float64, periodic bool) (g *Grid, err error) {
	if mx < 3 || my < 3 {
		return nil, chk.Err("grid must have at least 3 x 3 nodes; mx=%d my=%d is invalid", mx, my)
	}
	if lx <= 0 || ly <= 0 {
		return nil, chk.Err("domain lengths must be positive; Lx=%g Ly=%g is invalid", lx, ly)
	}
	g = &Grid{Mx: mx, My: my, Lx: lx, Ly: ly, Periodic: periodic}
	if periodic {
		g.Dx = lx / float64(mx)
		g.Dy = ly / float64(my)
	} else {
		g.Dx = lx / float64(mx-1)
		g.Dy = ly / float64(my-1)
	}
	return
}

// X returns the x-coordinate of node column j
func (o *Grid) X(j int) float64 { return float64(j) * o.Dx }

// Y returns the y-coordinate of node row k
func (o *Grid) Y(k int) float64 { return float64(k) * o.Dy }

// WrapJ maps a column index into [0,Mx) on periodic grids
func (o *Grid) WrapJ(j int) int {
	if !o.Periodic {
		return j
	}
	j = j % o.Mx
	if j < 0 {
		j += o.Mx
	}
	return j
}

// WrapK maps a row index into [0,My) on periodic grids
func (o *Grid) WrapK(k int) int {
	if !o.Periodic {
		return k
	}
	k = k % o.My
	if k < 0 {
		k += o.My
	}
	return k
}

// Patch is a rectangular sub-block of owned nodes: columns [Xs,Xs+Xm) and
// rows [Ys,Ys+Ym). Assembly loops are written against a patch so that the
// halo reads beyond the owned block stay explicit.
type Patch struct {
	G              *Grid
	Xs, Ys, Xm, Ym int
}

// FullPatch returns the patch owning every node of the grid
func (o *Grid) FullPatch() Patch {
	return Patch{G: o, Xs: 0, Ys: 0, Xm: o.Mx, Ym: o.My}
}

// NumOwned returns the number of owned nodes
func (o Patch) NumOwned() int { return o.Xm * o.Ym }

// Field holds one scalar per grid node, indexed V[k][j]
type Field struct {
	G *Grid
	V [][]float64
}

// NewField allocates a zeroed field on the grid
func (o *Grid) NewField() *Field {
	v := make([][]float64, o.My)
	for k := 0; k < o.My; k++ {
		v[k] = make([]float64, o.Mx)
	}
	return &Field{G: o, V: v}
}

// At returns the value at node (j,k); indices wrap on periodic grids
func (o *Field) At(j, k int) float64 {
	return o.V[o.G.WrapK(k)][o.G.WrapJ(j)]
}

// Set assigns the value at node (j,k); indices wrap on periodic grids
func (o *Field) Set(j, k int, v float64) {
	o.V[o.G.WrapK(k)][o.G.WrapJ(j)] = v
}

// Fill sets all nodes to the same value
func (o *Field) Fill(v float64) {
	for k := range o.V {
		for j := range o.V[k] {
			o.V[k][j] = v
		}
	}
}

// CopyInto copies this field's values into res
func (o *Field) CopyInto(res *Field) {
	for k := range o.V {
		copy(res.V[k], o.V[k])
	}
}

// Axpy computes o = o + α·u, node by node
func (o *Field) Axpy(α float64, u *Field) {
	for k := range o.V {
		for j := range o.V[k] {
			o.V[k][j] += α * u.V[k][j]
		}
	}
}

// NormInf returns the maximum absolute nodal value over the patch
func (o Patch) NormInf(f *Field) (res float64) {
	for k := o.Ys; k < o.Ys+o.Ym; k++ {
		for j := o.Xs; j < o.Xs+o.Xm; j++ {
			res = math.Max(res, math.Abs(f.At(j, k)))
		}
	}
	return
}

// NormOne returns the sum of absolute nodal values over the patch
func (o Patch) NormOne(f *Field) (res float64) {
	for k := o.Ys; k < o.Ys+o.Ym; k++ {
		for j := o.Xs; j < o.Xs+o.Xm; j++ {
			res += math.Abs(f.At(j, k))
		}
	}
	return
}
