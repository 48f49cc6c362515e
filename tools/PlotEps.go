// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/magnesj/opm-flowdiagnostics-applications/results"
	"github.com/magnesj/opm-flowdiagnostics-applications/satcurve"
	"github.com/magnesj/opm-flowdiagnostics-applications/satfunc"
)

func main() {

	// input data
	resfn := "twophase.json"
	phase := "water"
	mdlname := "corey"
	cell := 0
	npts := 101

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		resfn = flag.Arg(0)
	}
	if len(flag.Args()) > 1 {
		phase = flag.Arg(1)
	}
	if len(flag.Args()) > 2 {
		mdlname = flag.Arg(2)
	}
	if len(flag.Args()) > 3 {
		cell = io.Atoi(flag.Arg(3))
	}
	if len(flag.Args()) > 4 {
		npts = io.Atoi(flag.Arg(4))
	}

	// check extension
	if io.FnExt(resfn) == "" {
		resfn += ".json"
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  resfn   = %30s // result-set filename\n", resfn)
	io.Pf("  phase   = %30s // phase of the curve\n", phase)
	io.Pf("  mdlname = %30s // analytic curve model\n", mdlname)
	io.Pf("  cell    = %30v // active cell to plot\n", cell)
	io.Pf("  npts    = %30v // number of points\n", npts)
	io.Pf("\n")

	// load result set
	set, err := results.Read(resfn)
	if err != nil {
		io.PfRed("cannot load result set\n%v\n", err)
		return
	}
	if cell < 0 || cell >= set.NumCells() {
		io.PfRed("cell %d is out of range\n", cell)
		return
	}

	// select phase
	opt := satfunc.Options{Curve: satfunc.Relperm, SubSys: satfunc.OilWater}
	switch phase {
	case "water":
		opt.ThisPh = satfunc.Water
	case "oil":
		opt.ThisPh = satfunc.Oil
	case "gas":
		opt.ThisPh = satfunc.Gas
		opt.SubSys = satfunc.OilGas
	default:
		io.PfRed("unknown phase %q\n", phase)
		return
	}

	// get and initialise analytic curve standing in for the table
	mdl, err := satcurve.New(mdlname)
	if err != nil {
		io.PfRed("cannot allocate model\n%v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		io.PfRed("cannot initialise model\n%v\n", err)
		return
	}

	// build horizontal scaling
	eps, err := satfunc.NewHorizontal(set, opt)
	if err != nil {
		io.PfRed("cannot create scaling\n%v\n", err)
		return
	}

	// plot scaled against unscaled curve
	tep := satfunc.TableEndPoints{Low: mdl.SCrit(), Disp: mdl.SCrit(), High: mdl.SMax()}
	satfunc.Plot(eps, tep, mdl.F, cell, npts, io.Sf("%s cell %d", phase, cell))
	satfunc.PlotEnd("/tmp/eps", io.Sf("eps_%s_%d", phase, cell), false)
}
