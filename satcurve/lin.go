// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satcurve

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear curve: f(s) = fmax * (s-scr)/(smax-scr) for
// scr <= s <= smax
type Lin struct {
	scr  float64 // critical saturation
	smax float64 // maximum saturation
	fmax float64 // function value at smax
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.smax, o.fmax = 1.0, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "scr":
			o.scr = p.V
		case "smax":
			o.smax = p.V
		case "fmax":
			o.fmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect", p.N)
		}
	}
	if !(o.smax > o.scr) {
		return chk.Err("lin: smax=%g must be greater than scr=%g", o.smax, o.scr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "scr", V: 0.2},
		&dbf.P{N: "smax", V: 1.0},
		&dbf.P{N: "fmax", V: 1.0},
	}
}

// SCrit returns the critical saturation
func (o Lin) SCrit() float64 {
	return o.scr
}

// SMax returns the maximum saturation
func (o Lin) SMax() float64 {
	return o.smax
}

// F evaluates the curve at saturation s
func (o Lin) F(s float64) float64 {
	if s <= o.scr {
		return 0
	}
	if s >= o.smax {
		return o.fmax
	}
	return o.fmax * (s - o.scr) / (o.smax - o.scr)
}
