// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package results implements a per-cell result-set container read from
// a (.json) file: the active-cell count, the saturation-table region of
// each cell, the active phases, and the named per-cell arrays consumed
// by the end-point scaling factories.
package results

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/magnesj/opm-flowdiagnostics-applications/satfunc"
)

// Set holds the per-cell data of one simulation result set
type Set struct {
	Desc   string               `json:"desc"`   // description of result set
	NCells int                  `json:"ncells"` // number of active cells
	Oil    bool                 `json:"oil"`    // oil phase active
	Gas    bool                 `json:"gas"`    // gas phase active
	Water  bool                 `json:"water"`  // water phase active
	SatNum []int                `json:"satnum"` // 1-based table region per cell; empty means single region
	Arrays map[string][]float64 `json:"arrays"` // named per-cell arrays
}

// Read reads a result set from a JSON file and validates it
func Read(fn string) (o *Set, err error) {
	if _, err = os.Stat(fn); err != nil {
		return nil, chk.Err("cannot read result-set file %q", fn)
	}
	b := io.ReadFile(fn)
	o = new(Set)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse result-set file %q: %v", fn, err)
	}
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// Validate checks region and array lengths against the active-cell count
func (o *Set) Validate() error {
	if o.NCells < 1 {
		return chk.Err("result set must have at least one active cell")
	}
	if len(o.SatNum) > 0 && len(o.SatNum) != o.NCells {
		return chk.Err("SATNUM has %d entries but the result set has %d active cells", len(o.SatNum), o.NCells)
	}
	for key, a := range o.Arrays {
		if len(a) != o.NCells {
			return chk.Err("array %q has %d entries but the result set has %d active cells", key, len(a), o.NCells)
		}
	}
	return nil
}

// NumCells returns the number of active cells
func (o *Set) NumCells() int {
	return o.NCells
}

// Array returns a named per-cell array; nil when absent
func (o *Set) Array(key string) []float64 {
	return o.Arrays[key]
}

// Regions returns the 1-based table region of each cell; nil when absent
func (o *Set) Regions() []int {
	return o.SatNum
}

// Phases returns the active phases of the run
func (o *Set) Phases() satfunc.ActivePhases {
	return satfunc.ActivePhases{Oil: o.Oil, Gas: o.Gas, Water: o.Water}
}
