// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MatVec computes y = A·x for a symmetric positive definite operator A
// that is never formed explicitly
type MatVec func(x, y la.Vector)

// SolveCG solves A·x = b with the (unpreconditioned) conjugate gradient
// method, overwriting x with the solution; x also provides the initial
// guess. The true residual is recomputed every 50 iterations to keep the
// recurrence from drifting.
func SolveCG(op MatVec, b, x la.Vector, tol float64, maxIt int) (nit int, err error) {
	n := len(b)
	r := la.NewVector(n)
	p := la.NewVector(n)
	ap := la.NewVector(n)

	op(x, r)
	for i := 0; i < n; i++ {
		r[i] = b[i] - r[i]
	}
	copy(p, r)
	rr := la.VecDot(r, r)
	bnorm := math.Sqrt(la.VecDot(b, b))
	if bnorm == 0.0 {
		bnorm = 1.0
	}

	for nit = 0; nit < maxIt; nit++ {
		if math.Sqrt(rr) <= tol*bnorm {
			return
		}
		op(p, ap)
		pap := la.VecDot(p, ap)
		if pap <= 0.0 {
			return nit, chk.Err("cg: operator is not positive definite; p·Ap = %g", pap)
		}
		α := rr / pap
		la.VecAdd(x, 1, x, α, p)
		if (nit+1)%50 == 0 {
			op(x, r)
			for i := 0; i < n; i++ {
				r[i] = b[i] - r[i]
			}
		} else {
			la.VecAdd(r, 1, r, -α, ap)
		}
		rrNew := la.VecDot(r, r)
		β := rrNew / rr
		la.VecAdd(p, 1, r, β, p)
		rr = rrNew
	}
	if math.Sqrt(rr) > tol*bnorm {
		return nit, chk.Err("cg: no convergence after %d iterations; |r| = %g", maxIt, math.Sqrt(rr))
	}
	return
}
