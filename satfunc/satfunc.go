// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package satfunc implements end-point scaling (EPS) of tabulated
// saturation functions: relative permeability and capillary pressure
// curves defined once per table region are re-mapped onto per-cell
// scaled saturation ranges (horizontal scaling) and per-cell scaled
// function values (vertical scaling).
//  References:
//   [1] Eclipse Technical Description, chapter on Saturation Table
//       Scaling (end-point scaling of saturation functions)
package satfunc

import "math"

// Undef is the sentinel magnitude marking an unset scaled end point.
// Values with |x| >= Undef fall back to the table's unscaled value.
// Upstream result sets emit this literal sentinel; do not replace the
// numeric comparison with an option type.
const Undef = 1.0e+20

// TableEndPoints holds the unscaled saturation end points of one
// tabulated saturation function
type TableEndPoints struct {
	Low  float64 // minimum (connate or critical) saturation
	Disp float64 // displacing saturation; meaningful in three-point scaling only
	High float64 // maximum saturation
}

// SaturationAssoc associates one saturation value with the active cell
// whose scaled end points apply
type SaturationAssoc struct {
	Cell int     // active cell index
	Sat  float64 // saturation value
}

// SaturationPoints is an ordered sequence of evaluation points; the
// output of Eval/Reverse/VertScale follows this order
type SaturationPoints []SaturationAssoc

// PointValue pairs one tabulated saturation with the function value there
type PointValue struct {
	Sat float64 // saturation
	Val float64 // function value at Sat
}

// FunctionValues holds the unscaled function's value at its displacing
// and maximum tabulated saturations. Max.Val >= Disp.Val and
// Max.Sat >= Disp.Sat for well-formed tables
type FunctionValues struct {
	Disp PointValue // value at displacing saturation
	Max  PointValue // value at maximum saturation
}

// InvalidEndpointBehaviour selects the fallback applied to evaluation
// points whose resolved per-cell end points lie outside [0,1]
type InvalidEndpointBehaviour int

const (
	// UseUnscaled emits the point's original saturation unchanged
	UseUnscaled InvalidEndpointBehaviour = iota

	// IgnorePoint emits NaN, marking the point's result as missing
	IgnorePoint
)

// Scaler re-maps saturations between a table's unscaled domain and the
// per-cell scaled domain. Implementations are immutable after
// construction and safe for concurrent use
type Scaler interface {
	Eval(tep TableEndPoints, sp SaturationPoints) []float64    // scaled domain -> table domain
	Reverse(tep TableEndPoints, sp SaturationPoints) []float64 // table domain -> scaled domain
	GetCopy() Scaler                                           // returns a deep copy
}

// VertScaler re-maps unscaled function values onto per-cell scaled
// function values. Implementations are immutable after construction and
// safe for concurrent use
type VertScaler interface {
	VertScale(f FunctionValues, sp SaturationPoints, val []float64) []float64
	GetCopy() VertScaler // returns a deep copy
}

// defaultedSaturation returns s if set (|s| < Undef), dflt otherwise
func defaultedSaturation(s, dflt float64) float64 {
	if math.Abs(s) < Undef {
		return s
	}
	return dflt
}

// validSaturation tells whether s is a physically meaningful saturation
func validSaturation(s float64) bool {
	return !(s < 0.0) && !(s > 1.0)
}

func validSaturations(sats ...float64) bool {
	for _, s := range sats {
		if !validSaturation(s) {
			return false
		}
	}
	return true
}

// invalidEndpointFallback appends the policy fallback for one point.
// Both policies append exactly one entry; output length always matches
// the number of evaluation points
func invalidEndpointFallback(behaviour InvalidEndpointBehaviour, p SaturationAssoc, out []float64) []float64 {
	if behaviour == UseUnscaled {
		return append(out, p.Sat)
	}
	return append(out, math.NaN())
}

// getCopy returns a deep copy of a per-cell array
func getCopy(a []float64) (b []float64) {
	b = make([]float64, len(a))
	copy(b, a)
	return
}
