// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import "github.com/cpmech/gosl/chk"

// PureVerticalScaling rescales every function value of a cell by the
// ratio of the cell's scaled maximum to the table's maximum value
type PureVerticalScaling struct {
	fmax []float64 // scaled maximum function value per cell
}

// NewPureVerticalScaling allocates a pure vertical scaling engine
func NewPureVerticalScaling(fmax []float64) *PureVerticalScaling {
	return &PureVerticalScaling{fmax: fmax}
}

// VertScale multiplies each value by fmax[cell]/f.Max.Val. There is no
// clamping and no saturation dependence. Panics if the number of values
// does not match the number of points (caller contract violation)
func (o *PureVerticalScaling) VertScale(f FunctionValues, sp SaturationPoints, val []float64) []float64 {
	if len(sp) != len(val) {
		chk.Panic("vertical scaling: %d evaluation points but %d function values", len(sp), len(val))
	}
	maxVal := f.Max.Val
	res := make([]float64, len(val))
	for i, p := range sp {
		res[i] = val[i] * o.fmax[p.Cell] / maxVal
	}
	return res
}

// GetCopy returns a deep copy of this engine
func (o *PureVerticalScaling) GetCopy() VertScaler {
	return &PureVerticalScaling{fmax: getCopy(o.fmax)}
}

// CritSatVerticalScaling rescales function values honouring a per-cell
// scaled value at the displacing (critical) saturation in addition to
// the scaled maximum. Left of the cell's displacing saturation the
// curve is rescaled proportionally; right of it the rescale follows the
// value ratio along the curve, or the saturation ratio when the table's
// own right segment is degenerate in value
type CritSatVerticalScaling struct {
	sdisp []float64 // scaled displacing saturation per cell
	fdisp []float64 // scaled function value at displacing saturation per cell
	fmax  []float64 // scaled maximum function value per cell
}

// NewCritSatVerticalScaling allocates a critical-saturation vertical
// scaling engine. The input arrays must have one value per active cell
func NewCritSatVerticalScaling(sdisp, fdisp, fmax []float64) (o *CritSatVerticalScaling, err error) {
	if len(fdisp) != len(sdisp) || len(fmax) != len(sdisp) {
		return nil, chk.Err("size mismatch between displacing saturation, displacing value and maximum value arrays: %d, %d, %d", len(sdisp), len(fdisp), len(fmax))
	}
	return &CritSatVerticalScaling{sdisp: sdisp, fdisp: fdisp, fmax: fmax}, nil
}

// VertScale rescales the unscaled function values val, sampled at the
// saturation points sp, onto the per-cell value range. The value-ratio
// branch takes precedence over the saturation-ratio branch; when both
// table ranges collapse the result is the cell's fmax. Panics if the
// number of values does not match the number of points
func (o *CritSatVerticalScaling) VertScale(f FunctionValues, sp SaturationPoints, val []float64) []float64 {
	if len(sp) != len(val) {
		chk.Panic("vertical scaling: %d evaluation points but %d function values", len(sp), len(val))
	}

	fdisp, sdisp := f.Disp.Val, f.Disp.Sat
	fmax, smax := f.Max.Val, f.Max.Sat
	sepfv := fmax > fdisp // table's right segment separated in value
	sepS := sdisp > smax  // table's nodes separated in saturation only

	res := make([]float64, len(val))
	for i, p := range sp {
		y := val[i]
		sr := o.sdisp[p.Cell]
		fr := o.fdisp[p.Cell]
		fm := o.fmax[p.Cell]
		switch {
		case !(p.Sat > sr): // s <= sr: proportional rescale in left interval
			y *= fr / fdisp
		case sepfv: // normal case: f(Smax) > f(Sr)
			t := (y - fdisp) / (fmax - fdisp)
			y = fr + t*(fm-fr)
		case sepS: // f(Smax) == f(Sr): linear function of saturation
			t := (p.Sat - sdisp) / (smax - sdisp)
			y = fr + t*(fm-fr)
		default: // Smax == Sr: almost arbitrarily pick fmax
			y = fm
		}
		res[i] = y
	}
	return res
}

// GetCopy returns a deep copy of this engine
func (o *CritSatVerticalScaling) GetCopy() VertScaler {
	return &CritSatVerticalScaling{
		sdisp: getCopy(o.sdisp),
		fdisp: getCopy(o.fdisp),
		fmax:  getCopy(o.fmax),
	}
}
