// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_twopoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twopoint01. clamps, interpolation and sentinel defaulting")

	// cell 0 fully scaled; cell 1 has unset (defaulted) minimum
	eps, err := NewTwoPointScaling([]float64{0.2, 1e20}, []float64{0.9, 0.9}, UseUnscaled)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	tep := TableEndPoints{Low: 0.1, Disp: 0.1, High: 0.8}

	// clamps at and outside the cell's end points, linear in between
	res := eps.Eval(tep, points(0, 0.0, 0.2, 0.55, 0.9, 1.0))
	io.Pforan("eval cell0 = %v\n", res)
	chk.Array(tst, "eval cell0", 1e-15, res, []float64{0.1, 0.1, 0.45, 0.8, 0.8})

	// unset minimum falls back to tep.Low
	res = eps.Eval(tep, points(1, 0.05, 0.45))
	io.Pforan("eval cell1 = %v\n", res)
	chk.Array(tst, "eval cell1", 1e-15, res, []float64{0.1, 0.40625})

	// reverse maps table domain back to the cell domain
	res = eps.Reverse(tep, points(0, 0.05, 0.1, 0.45, 0.8, 0.9))
	io.Pforan("reverse cell0 = %v\n", res)
	chk.Array(tst, "reverse cell0", 1e-15, res, []float64{0.2, 0.2, 0.55, 0.9, 0.9})

	// plot
	if chk.Verbose {
		evalSF := func(s float64) float64 { return (s - tep.Low) / (tep.High - tep.Low) }
		Plot(eps, tep, evalSF, 0, 101, "$k_{rw}$")
		PlotEnd("/tmp/eps", "twopoint01", false)
	}
}

func Test_twopoint02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twopoint02. round trip on the open interval")

	eps, err := NewTwoPointScaling([]float64{0.2}, []float64{0.9}, UseUnscaled)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	tep := TableEndPoints{Low: 0.1, Disp: 0.1, High: 0.8}

	sats := []float64{0.25, 0.4, 0.55, 0.7, 0.85}
	sp := points(0, sats...)

	// eval then reverse recovers the original saturations
	fwd := eps.Eval(tep, sp)
	back := eps.Reverse(tep, points(0, fwd...))
	chk.Array(tst, "reverse(eval(s))", 1e-14, back, sats)

	// reverse then eval likewise, for table-domain saturations
	tsats := []float64{0.15, 0.3, 0.45, 0.6, 0.75}
	rev := eps.Reverse(tep, points(0, tsats...))
	fwd = eps.Eval(tep, points(0, rev...))
	chk.Array(tst, "eval(reverse(s))", 1e-14, fwd, tsats)
}

func Test_twopoint03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twopoint03. invalid end-point policy")

	tep := TableEndPoints{Low: 0.1, Disp: 0.1, High: 0.8}
	smin := []float64{1.5, 0.2} // cell 0 carries an invalid minimum
	smax := []float64{0.9, 0.9}

	// UseUnscaled: the input saturation passes through untouched
	eps, err := NewTwoPointScaling(smin, smax, UseUnscaled)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	res := eps.Eval(tep, points(0, 0.0, 0.33, 1.0))
	chk.Array(tst, "UseUnscaled", 1e-15, res, []float64{0.0, 0.33, 1.0})

	// IgnorePoint: every point referencing the bad cell yields NaN,
	// and the output still has one entry per input point
	eps, err = NewTwoPointScaling(smin, smax, IgnorePoint)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	sp := SaturationPoints{{Cell: 0, Sat: 0.3}, {Cell: 1, Sat: 0.55}, {Cell: 0, Sat: 0.7}}
	res = eps.Eval(tep, sp)
	io.Pforan("IgnorePoint = %v\n", res)
	if len(res) != len(sp) {
		tst.Errorf("output length %d must equal input length %d\n", len(res), len(sp))
		return
	}
	if !math.IsNaN(res[0]) || !math.IsNaN(res[2]) {
		tst.Errorf("points at invalid cell must be NaN: %v\n", res)
		return
	}
	chk.Float64(tst, "valid cell", 1e-15, res[1], 0.45)
}

func Test_twopoint04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twopoint04. size mismatch and copies")

	// mismatching arrays must not create an object
	eps, err := NewTwoPointScaling(make([]float64, 10), make([]float64, 9), UseUnscaled)
	if err == nil {
		tst.Errorf("size mismatch must fail\n")
		return
	}
	if eps != nil {
		tst.Errorf("failed construction must not create an object\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// a copy evaluates identically
	eps, err = NewTwoPointScaling([]float64{0.2}, []float64{0.9}, UseUnscaled)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	tep := TableEndPoints{Low: 0.1, Disp: 0.1, High: 0.8}
	sp := points(0, 0.1, 0.55, 0.95)
	chk.Array(tst, "copy", 1e-15, eps.GetCopy().Eval(tep, sp), eps.Eval(tep, sp))
}
