// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import "github.com/cpmech/gosl/chk"

// ThreePointScaling adds a displacing-saturation node to the two-point
// mapping, splitting the table's [Low,High] interval into [Low,Disp]
// and [Disp,High], matched to the cell's [smin,sdisp] and [sdisp,smax]
type ThreePointScaling struct {
	smin          []float64                // scaled connate/critical saturation per cell
	sdisp         []float64                // scaled displacing saturation per cell
	smax          []float64                // scaled maximum saturation per cell
	handleInvalid InvalidEndpointBehaviour // policy for end points outside [0,1]
}

// NewThreePointScaling allocates a three-point horizontal scaling
// engine. The input arrays must have one value per active cell
func NewThreePointScaling(smin, sdisp, smax []float64, handleInvalid InvalidEndpointBehaviour) (o *ThreePointScaling, err error) {
	if len(sdisp) != len(smin) || len(sdisp) != len(smax) {
		return nil, chk.Err("size mismatch between minimum, displacing and maximum saturation arrays: %d, %d, %d", len(smin), len(sdisp), len(smax))
	}
	return &ThreePointScaling{smin: smin, sdisp: sdisp, smax: smax, handleInvalid: handleInvalid}, nil
}

func (o *ThreePointScaling) sMin(cell int, tep TableEndPoints) float64 {
	return defaultedSaturation(o.smin[cell], tep.Low)
}

func (o *ThreePointScaling) sDisp(cell int, tep TableEndPoints) float64 {
	return defaultedSaturation(o.sdisp[cell], tep.Disp)
}

func (o *ThreePointScaling) sMax(cell int, tep TableEndPoints) float64 {
	return defaultedSaturation(o.smax[cell], tep.High)
}

// Eval maps saturations from the per-cell scaled domain to the table's
// unscaled domain. Outer clamps are as in two-point scaling; interior
// saturations interpolate within their own sub-interval
func (o *ThreePointScaling) Eval(tep TableEndPoints, sp SaturationPoints) []float64 {
	effsat := make([]float64, 0, len(sp))
	for _, p := range sp {
		sLO := o.sMin(p.Cell, tep)
		sR := o.sDisp(p.Cell, tep)
		sHI := o.sMax(p.Cell, tep)
		if !validSaturations(sLO, sR, sHI) {
			effsat = invalidEndpointFallback(o.handleInvalid, p, effsat)
			continue
		}
		switch {
		case !(p.Sat > sLO): // s <= sLO
			effsat = append(effsat, tep.Low)
		case !(p.Sat < sHI): // s >= sHI
			effsat = append(effsat, tep.High)
		case p.Sat < sR: // s in (sLO, sR)
			t := (p.Sat - sLO) / (sR - sLO)
			effsat = append(effsat, tep.Low+t*(tep.Disp-tep.Low))
		default: // s in [sR, sHI)
			t := (p.Sat - sR) / (sHI - sR)
			effsat = append(effsat, tep.Disp+t*(tep.High-tep.Disp))
		}
	}
	return effsat
}

// Reverse maps saturations from the table's unscaled domain back to the
// per-cell scaled domain, sub-interval by sub-interval
func (o *ThreePointScaling) Reverse(tep TableEndPoints, sp SaturationPoints) []float64 {
	unscaledsat := make([]float64, 0, len(sp))
	for _, p := range sp {
		sLO := o.sMin(p.Cell, tep)
		sR := o.sDisp(p.Cell, tep)
		sHI := o.sMax(p.Cell, tep)
		if !validSaturations(sLO, sR, sHI) {
			unscaledsat = invalidEndpointFallback(o.handleInvalid, p, unscaledsat)
			continue
		}
		switch {
		case !(p.Sat > tep.Low): // s <= minimum tabulated saturation
			unscaledsat = append(unscaledsat, sLO)
		case !(p.Sat < tep.High): // s >= maximum tabulated saturation
			unscaledsat = append(unscaledsat, sHI)
		case p.Sat < tep.Disp: // s in (tep.Low, tep.Disp)
			t := (p.Sat - tep.Low) / (tep.Disp - tep.Low)
			unscaledsat = append(unscaledsat, sLO+t*(sR-sLO))
		default: // s in [tep.Disp, tep.High)
			t := (p.Sat - tep.Disp) / (tep.High - tep.Disp)
			unscaledsat = append(unscaledsat, sR+t*(sHI-sR))
		}
	}
	return unscaledsat
}

// GetCopy returns a deep copy of this engine
func (o *ThreePointScaling) GetCopy() Scaler {
	return &ThreePointScaling{
		smin:          getCopy(o.smin),
		sdisp:         getCopy(o.sdisp),
		smax:          getCopy(o.smax),
		handleInvalid: o.handleInvalid,
	}
}
