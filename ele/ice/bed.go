// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ice

import (
	"math"

	"github.com/hui-aqua/p4pdes/grid"
)

// hand-tuned frequencies and coefficients giving a vaguely-random looking
// bed; the formula is analytic in (x,y,L) so every grid resolution sees
// bit-identical samples of the same surface
var (
	bedJC = [4]int{1, 3, 6, 8}
	bedKC = [4]int{1, 3, 4, 7}
	bedC  = [4][4]float64{
		{2.00000000, 0.33000000, -0.55020034, 0.54495520},
		{0.50000000, 0.45014486, 0.60551833, -0.52250644},
		{0.93812068, 0.32638429, -0.24654812, 0.33887052},
		{0.17592361, -0.35496741, 0.22694547, -0.05280704},
	}
	bedScale = 750.0
)

// Bed returns the synthetic bed elevation b(x,y), a fixed truncated 2D
// Fourier sum on the periodic domain [0,L] x [0,L]
func Bed(x, y, L float64) float64 {
	z := math.Pi / L
	b := 0.0
	for r := 0; r < 4; r++ {
		for s := 0; s < 4; s++ {
			b += bedC[r][s] * math.Sin(float64(bedJC[r])*z*x) * math.Sin(float64(bedKC[s])*z*y)
		}
	}
	return bedScale * b
}

// FormBed fills field b with the synthetic bed elevation over the patch
func FormBed(p grid.Patch, b *grid.Field) {
	g := p.G
	for k := p.Ys; k < p.Ys+p.Ym; k++ {
		y := g.Y(k)
		for j := p.Xs; j < p.Xs+p.Xm; j++ {
			b.Set(j, k, Bed(g.X(j), y, g.Lx))
		}
	}
}
