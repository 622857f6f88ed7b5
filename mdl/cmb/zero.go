// Copyright 2019 The P4pdes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Zero implements an identically zero mass balance (no forcing)
type Zero struct{}

// add model to factory
func init() {
	allocators["zero"] = func() Model { return new(Zero) }
}

// Init initialises this structure
func (o *Zero) Init(prms utl.Params) error {
	if len(prms) > 0 {
		return chk.Err("cmb.Zero: model takes no parameters; got %d", len(prms))
	}
	return nil
}

// Rate returns the mass balance [m/s] at surface elevation s [m]
func (o *Zero) Rate(s float64) float64 { return 0 }
