// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package satcurve implements analytic saturation-function curve models
// (relative permeability and capillary pressure as functions of
// saturation). These stand in for the tabulated curves of a simulation
// deck when driving the end-point scaling engines in tests and tools.
package satcurve

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines an analytic saturation-function curve f(s)
type Model interface {
	Init(prms dbf.Params) error      // initialises curve parameters
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	SCrit() float64                  // critical (or connate) saturation
	SMax() float64                   // maximum saturation
	F(s float64) float64             // evaluates the curve at saturation s
}

// New returns a new curve model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'satcurve' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
