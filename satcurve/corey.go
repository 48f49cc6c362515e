// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satcurve

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Corey implements the Brooks-Corey power-law relative permeability
// curve: kr(s) = kmax * ((s-scr)/(smax-scr))^n for scr <= s <= smax
type Corey struct {
	scr  float64 // critical saturation
	smax float64 // maximum saturation
	kmax float64 // relative permeability at smax
	n    float64 // Corey exponent
}

// add model to factory
func init() {
	allocators["corey"] = func() Model { return new(Corey) }
}

// Init initialises model
func (o *Corey) Init(prms dbf.Params) (err error) {
	o.smax, o.kmax, o.n = 1.0, 1.0, 2.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "scr":
			o.scr = p.V
		case "smax":
			o.smax = p.V
		case "kmax":
			o.kmax = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("corey: parameter named %q is incorrect", p.N)
		}
	}
	if !(o.smax > o.scr) {
		return chk.Err("corey: smax=%g must be greater than scr=%g", o.smax, o.scr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Corey) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "scr", V: 0.1},
		&dbf.P{N: "smax", V: 0.9},
		&dbf.P{N: "kmax", V: 0.8},
		&dbf.P{N: "n", V: 2},
	}
}

// SCrit returns the critical saturation
func (o Corey) SCrit() float64 {
	return o.scr
}

// SMax returns the maximum saturation
func (o Corey) SMax() float64 {
	return o.smax
}

// F evaluates the curve at saturation s
func (o Corey) F(s float64) float64 {
	if s <= o.scr {
		return 0
	}
	if s >= o.smax {
		return o.kmax
	}
	return o.kmax * math.Pow((s-o.scr)/(o.smax-o.scr), o.n)
}
