// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// points builds a sequence of evaluation points for one cell
func points(cell int, sats ...float64) SaturationPoints {
	sp := make(SaturationPoints, len(sats))
	for i, s := range sats {
		sp[i] = SaturationAssoc{Cell: cell, Sat: s}
	}
	return sp
}
