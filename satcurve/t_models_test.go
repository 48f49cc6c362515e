// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satcurve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_corey01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corey01. Corey power-law curve")

	mdl, err := New("corey")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	chk.Float64(tst, "scr", 1e-15, mdl.SCrit(), 0.1)
	chk.Float64(tst, "smax", 1e-15, mdl.SMax(), 0.9)

	// clamped below scr and above smax
	chk.Float64(tst, "F(0.05)", 1e-15, mdl.F(0.05), 0)
	chk.Float64(tst, "F(0.1)", 1e-15, mdl.F(0.1), 0)
	chk.Float64(tst, "F(0.95)", 1e-15, mdl.F(0.95), 0.8)

	// kmax * ((s-scr)/(smax-scr))^n
	chk.Float64(tst, "F(0.5)", 1e-15, mdl.F(0.5), 0.8*0.25)
	chk.Float64(tst, "F(0.7)", 1e-15, mdl.F(0.7), 0.8*0.5625)
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. linear curve")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "scr", V: 0.2},
		&dbf.P{N: "smax", V: 0.9},
		&dbf.P{N: "fmax", V: 0.5},
	})
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	chk.Float64(tst, "F(0.2)", 1e-15, mdl.F(0.2), 0)
	chk.Float64(tst, "F(0.55)", 1e-15, mdl.F(0.55), 0.25)
	chk.Float64(tst, "F(0.9)", 1e-15, mdl.F(0.9), 0.5)
	chk.Float64(tst, "F(1.0)", 1e-15, mdl.F(1.0), 0.5)
}

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01. factory and parameter errors")

	// unknown model
	_, err := New("vangenuchten")
	if err == nil {
		tst.Errorf("unknown model must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// wrong parameter name
	mdl, _ := New("corey")
	err = mdl.Init(dbf.Params{&dbf.P{N: "kappa", V: 1}})
	if err == nil {
		tst.Errorf("wrong parameter name must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// inverted range
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "scr", V: 0.9},
		&dbf.P{N: "smax", V: 0.1},
	})
	if err == nil {
		tst.Errorf("smax <= scr must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
