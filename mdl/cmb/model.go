// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmb implements climatic mass balance models: maps from surface
// elevation s = H + b to an ice-equivalent accumulation/ablation rate.
package cmb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model defines climatic mass balance models
type Model interface {
	Init(prms utl.Params) error // Init initialises this structure
	Rate(s float64) float64     // Rate returns the mass balance [m/s] at surface elevation s [m]
}

// New returns a new climatic mass balance model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'cmb' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
