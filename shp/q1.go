// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the Q1 (bilinear) shape functions used to sample
// node-centered fields and their gradients at arbitrary points inside a
// rectangular grid cell. Corner ordering is counter-clockwise from the
// lower-left node:
//
//	3 o--------o 2
//	  |        |        (ξ,η) ∈ [0,1]²
//	  |        |
//	0 o--------o 1
//
// The weights are exact for affine fields, both in value and gradient.
package shp

import "github.com/hui-aqua/p4pdes/grid"

// gradients of the Q1 weights with respect to ξ and η
var (
	gx = [4]float64{-1.0, 1.0, 1.0, -1.0}
	gy = [4]float64{-1.0, -1.0, 1.0, 1.0}
)

// FieldAtPt interpolates the corner values f at local coordinates (ξ,η)
func FieldAtPt(xi, eta float64, f [4]float64) float64 {
	x := [4]float64{1.0 - xi, xi, xi, 1.0 - xi}
	y := [4]float64{1.0 - eta, 1.0 - eta, eta, eta}
	return x[0]*y[0]*f[0] + x[1]*y[1]*f[1] + x[2]*y[2]*f[2] + x[3]*y[3]*f[3]
}

// GradAtPt computes the physical-space gradient of the Q1 interpolant of
// the corner values f at local coordinates (ξ,η); dx and dy scale the
// local derivatives to physical coordinates (chain rule)
func GradAtPt(xi, eta, dx, dy float64, f [4]float64) (gradx, grady float64) {
	x := [4]float64{1.0 - xi, xi, xi, 1.0 - xi}
	y := [4]float64{1.0 - eta, 1.0 - eta, eta, eta}
	gradx = gx[0]*y[0]*f[0] + gx[1]*y[1]*f[1] + gx[2]*y[2]*f[2] + gx[3]*y[3]*f[3]
	grady = x[0]*gy[0]*f[0] + x[1]*gy[1]*f[1] + x[2]*gy[2]*f[2] + x[3]*gy[3]*f[3]
	gradx /= dx
	grady /= dy
	return
}

// cellCorners gathers the 4 corner values of cell (j,k); reads beyond the
// owned block resolve through the field's halo (periodic wrap)
func cellCorners(f *grid.Field, j, k int) [4]float64 {
	return [4]float64{f.At(j, k), f.At(j+1, k), f.At(j+1, k+1), f.At(j, k+1)}
}

// FieldAtCellPt interpolates field f at local coordinates (ξ,η) of cell (j,k)
func FieldAtCellPt(f *grid.Field, j, k int, xi, eta float64) float64 {
	return FieldAtPt(xi, eta, cellCorners(f, j, k))
}

// GradAtCellPt computes the gradient of field f at local coordinates (ξ,η)
// of cell (j,k)
func GradAtCellPt(f *grid.Field, j, k int, xi, eta float64) (gradx, grady float64) {
	return GradAtPt(xi, eta, f.G.Dx, f.G.Dy, cellCorners(f, j, k))
}
