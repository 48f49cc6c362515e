// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import "github.com/cpmech/gosl/chk"

// TwoPointScaling re-maps the saturation interval [smin,smax] of each
// cell onto the table's unscaled interval [Low,High]. A cell end point
// with magnitude >= Undef falls back to the table's value
type TwoPointScaling struct {
	smin          []float64                // scaled connate/critical saturation per cell
	smax          []float64                // scaled maximum saturation per cell
	handleInvalid InvalidEndpointBehaviour // policy for end points outside [0,1]
}

// NewTwoPointScaling allocates a two-point horizontal scaling engine.
// The input arrays must have one value per active cell
func NewTwoPointScaling(smin, smax []float64, handleInvalid InvalidEndpointBehaviour) (o *TwoPointScaling, err error) {
	if len(smin) != len(smax) {
		return nil, chk.Err("size mismatch between minimum and maximum saturation arrays: %d != %d", len(smin), len(smax))
	}
	return &TwoPointScaling{smin: smin, smax: smax, handleInvalid: handleInvalid}, nil
}

// sMin returns the cell's scaled connate saturation, falling back to the
// table's unscaled value when unset
func (o *TwoPointScaling) sMin(cell int, tep TableEndPoints) float64 {
	return defaultedSaturation(o.smin[cell], tep.Low)
}

// sMax returns the cell's scaled maximum saturation, falling back to the
// table's unscaled value when unset
func (o *TwoPointScaling) sMax(cell int, tep TableEndPoints) float64 {
	return defaultedSaturation(o.smax[cell], tep.High)
}

// Eval maps saturations from the per-cell scaled domain to the table's
// unscaled domain. Saturations at or below the cell's lower end point
// map to tep.Low, at or above the upper end point to tep.High, and
// linearly in between. Output has one entry per input point
func (o *TwoPointScaling) Eval(tep TableEndPoints, sp SaturationPoints) []float64 {
	srng := tep.High - tep.Low
	effsat := make([]float64, 0, len(sp))
	for _, p := range sp {
		sLO := o.sMin(p.Cell, tep)
		sHI := o.sMax(p.Cell, tep)
		if !validSaturations(sLO, sHI) {
			effsat = invalidEndpointFallback(o.handleInvalid, p, effsat)
			continue
		}
		switch {
		case !(p.Sat > sLO): // s <= sLO
			effsat = append(effsat, tep.Low)
		case !(p.Sat < sHI): // s >= sHI
			effsat = append(effsat, tep.High)
		default: // s in (sLO, sHI)
			t := (p.Sat - sLO) / (sHI - sLO)
			effsat = append(effsat, tep.Low+t*srng)
		}
	}
	return effsat
}

// Reverse maps saturations from the table's unscaled domain back to the
// per-cell scaled domain; the exact algebraic inverse of Eval on the
// open interval
func (o *TwoPointScaling) Reverse(tep TableEndPoints, sp SaturationPoints) []float64 {
	srng := tep.High - tep.Low
	unscaledsat := make([]float64, 0, len(sp))
	for _, p := range sp {
		sLO := o.sMin(p.Cell, tep)
		sHI := o.sMax(p.Cell, tep)
		if !validSaturations(sLO, sHI) {
			unscaledsat = invalidEndpointFallback(o.handleInvalid, p, unscaledsat)
			continue
		}
		switch {
		case !(p.Sat > tep.Low): // s <= minimum tabulated saturation
			unscaledsat = append(unscaledsat, sLO)
		case !(p.Sat < tep.High): // s >= maximum tabulated saturation
			unscaledsat = append(unscaledsat, sHI)
		default: // s in (tep.Low, tep.High)
			t := (p.Sat - tep.Low) / srng
			unscaledsat = append(unscaledsat, sLO+t*(sHI-sLO))
		}
	}
	return unscaledsat
}

// GetCopy returns a deep copy of this engine
func (o *TwoPointScaling) GetCopy() Scaler {
	return &TwoPointScaling{
		smin:          getCopy(o.smin),
		smax:          getCopy(o.smax),
		handleInvalid: o.handleInvalid,
	}
}
