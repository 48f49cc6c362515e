// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the scaled saturation function of one cell together with
// the unscaled tabulated curve
//  eps    -- horizontal scaling engine
//  tep    -- unscaled end points of the table feeding evalSF
//  evalSF -- evaluates the unscaled function at a table-domain saturation
//  cell   -- active cell index to plot
//  npts   -- number of points along the saturation axis
//  label  -- curve label
func Plot(eps Scaler, tep TableEndPoints, evalSF func(s float64) float64, cell, npts int, label string) {

	// unscaled curve
	S := utl.LinSpace(0, 1, npts)
	F := make([]float64, npts)
	for i, s := range S {
		F[i] = evalSF(s)
	}
	plt.Plot(S, F, &plt.A{C: "k", Ls: "--", L: label + " (unscaled)"})

	// scaled curve: re-map the cell-domain saturations onto the table
	// domain and evaluate the table there
	sp := make(SaturationPoints, npts)
	for i, s := range S {
		sp[i] = SaturationAssoc{Cell: cell, Sat: s}
	}
	for i, s := range eps.Eval(tep, sp) {
		F[i] = evalSF(s)
	}
	plt.Plot(S, F, &plt.A{L: label})
}

// PlotEnd finalises the figure, showing it if show==true or saving it
// to dirout/fnkey otherwise
func PlotEnd(dirout, fnkey string, show bool) {
	plt.Gll("$s$", "$f(s)$", nil)
	if show {
		plt.Show()
		return
	}
	plt.Save(dirout, fnkey)
}
