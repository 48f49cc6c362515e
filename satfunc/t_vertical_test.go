// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vertpure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vertpure01. pure vertical scaling linearity")

	f := FunctionValues{Max: PointValue{Sat: 0.9, Val: 0.8}}
	vs := NewPureVerticalScaling([]float64{0.4, 0.8})

	// every value is multiplied by fmax[cell]/f.Max.Val
	sp := SaturationPoints{{Cell: 0, Sat: 0.3}, {Cell: 0, Sat: 0.6}, {Cell: 1, Sat: 0.6}}
	res := vs.VertScale(f, sp, []float64{0.2, 0.6, 0.6})
	io.Pforan("res = %v\n", res)
	chk.Array(tst, "vertScale", 1e-15, res, []float64{0.1, 0.3, 0.6})

	// fmax[cell] == f.Max.Val is the identity
	res = vs.GetCopy().VertScale(f, SaturationPoints{{Cell: 1, Sat: 0.5}}, []float64{0.123})
	chk.Float64(tst, "identity", 1e-15, res[0], 0.123)
}

func Test_vertpure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vertpure02. size mismatch panics")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("mismatching points and values must panic\n")
		} else {
			io.Pforan("panic = %v\n", err)
		}
	}()

	f := FunctionValues{Max: PointValue{Sat: 0.9, Val: 1.0}}
	vs := NewPureVerticalScaling([]float64{0.5})
	vs.VertScale(f, SaturationPoints{{Cell: 0, Sat: 0.5}}, []float64{0.1, 0.2})
}

func Test_vertcrit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vertcrit01. critical-saturation scaling, normal table")

	// table: f(sdisp=0.5)=0.2, f(smax=0.9)=1.0
	f := FunctionValues{
		Disp: PointValue{Sat: 0.5, Val: 0.2},
		Max:  PointValue{Sat: 0.9, Val: 1.0},
	}

	// cell 0: sdisp=0.6, fdisp=0.1, fmax=0.5
	vs, err := NewCritSatVerticalScaling([]float64{0.6}, []float64{0.1}, []float64{0.5})
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}

	// left of the cell's displacing saturation: proportional rescale
	// by fdisp[cell]/f.Disp.Val = 0.5
	sp := SaturationPoints{{Cell: 0, Sat: 0.4}, {Cell: 0, Sat: 0.6}}
	res := vs.VertScale(f, sp, []float64{0.12, 0.2})
	chk.Array(tst, "left segment", 1e-15, res, []float64{0.06, 0.1})

	// right of it: value-ratio rescale along the curve;
	// y=0.6 gives t=(0.6-0.2)/(1.0-0.2)=0.5 and 0.1+0.5*(0.5-0.1)=0.3
	sp = SaturationPoints{{Cell: 0, Sat: 0.8}}
	res = vs.VertScale(f, sp, []float64{0.6})
	io.Pforan("right segment = %v\n", res)
	chk.Float64(tst, "right segment", 1e-15, res[0], 0.3)
}

func Test_vertcrit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vertcrit02. degenerate tables")

	vs, err := NewCritSatVerticalScaling([]float64{0.6}, []float64{0.2}, []float64{0.4})
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}

	// value range collapsed but saturation nodes distinct (table's
	// displacing node beyond its maximum node): saturation-ratio
	// rescale; s=0.8 gives t=(0.8-0.9)/(0.7-0.9)=0.5 and
	// 0.2+0.5*(0.4-0.2)=0.3
	f := FunctionValues{
		Disp: PointValue{Sat: 0.9, Val: 0.5},
		Max:  PointValue{Sat: 0.7, Val: 0.5},
	}
	res := vs.VertScale(f, SaturationPoints{{Cell: 0, Sat: 0.8}}, []float64{0.5})
	chk.Float64(tst, "saturation ratio", 1e-15, res[0], 0.3)

	// both ranges collapsed: deterministic pick of fmax[cell] for
	// every point right of the cell's displacing saturation
	f = FunctionValues{
		Disp: PointValue{Sat: 0.8, Val: 0.5},
		Max:  PointValue{Sat: 0.8, Val: 0.5},
	}
	sp := SaturationPoints{{Cell: 0, Sat: 0.5}, {Cell: 0, Sat: 0.85}, {Cell: 0, Sat: 1.0}}
	res = vs.VertScale(f, sp, []float64{0.5, 0.5, 0.5})
	io.Pforan("degenerate = %v\n", res)
	chk.Array(tst, "degenerate", 1e-15, res, []float64{0.2, 0.4, 0.4})
}

func Test_vertcrit03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vertcrit03. size mismatch at construction")

	vs, err := NewCritSatVerticalScaling(make([]float64, 10), make([]float64, 9), make([]float64, 10))
	if err == nil || vs != nil {
		tst.Errorf("size mismatch must fail without creating an object\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
