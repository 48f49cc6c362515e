// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Phase indexes a simulated fluid phase
type Phase int

const (
	Water Phase = iota // aqueous phase
	Oil                // liquid hydrocarbon phase
	Gas                // vapour phase
)

// SubSystem identifies the two-phase sub-system a saturation function
// belongs to
type SubSystem int

const (
	OilWater SubSystem = iota
	OilGas
)

// FunctionCategory identifies the curve family being scaled
type FunctionCategory int

const (
	Relperm FunctionCategory = iota
	CapPress
)

// Options selects one scaling object: which phase, in which sub-system,
// for which curve category, and whether the three-point (alternative)
// horizontal scaling option is active
type Options struct {
	Curve         FunctionCategory // relative permeability or capillary pressure
	SubSys        SubSystem        // oil-water or oil-gas
	ThisPh        Phase            // phase whose saturation parametrises the curve
	Use3PtScaling bool             // three-point horizontal scaling active
}

// ActivePhases holds the phases present in the simulation run
type ActivePhases struct {
	Oil   bool
	Gas   bool
	Water bool
}

// ResultSet provides per-cell arrays from a simulator result set,
// addressed by mnemonic keys. Implementations must support concurrent
// read-only extraction
type ResultSet interface {
	NumCells() int              // number of active cells
	Array(key string) []float64 // named per-cell array; nil when absent
	Regions() []int             // 1-based saturation-table region per cell; nil means single region
	Phases() ActivePhases       // active phases of the run
}

// ConnateSat holds per-region unscaled connate saturations
type ConnateSat struct {
	Water []float64
	Gas   []float64
}

// CriticalSat holds per-region unscaled critical saturations
type CriticalSat struct {
	Water      []float64
	Gas        []float64
	OilInWater []float64
	OilInGas   []float64
}

// MaxSat holds per-region unscaled maximum saturations
type MaxSat struct {
	Water []float64
	Oil   []float64
	Gas   []float64
}

// RawTableEndPoints holds the unscaled end points of every saturation
// table region, one value per region
type RawTableEndPoints struct {
	Conn ConnateSat
	Crit CriticalSat
	SMax MaxSat
}

// SatFuncEvaluator evaluates the unscaled saturation function of one
// table (0-based index) at a table-domain saturation
type SatFuncEvaluator func(table int, sat float64) float64

// NewHorizontal allocates the horizontal scaling engine selected by
// opt, extracting the per-cell scaled end-point arrays from rs.
// Capillary-pressure curves and relperm curves without the three-point
// option use two-point scaling; relperm curves with the three-point
// option use three-point scaling
func NewHorizontal(rs ResultSet, opt Options) (Scaler, error) {
	if opt.Curve == CapPress || !opt.Use3PtScaling {
		return twoPointScalingFunction(rs, opt)
	}
	return threePointScalingFunction(rs, opt)
}

// UnscaledEndPoints derives, for every table region, the unscaled end
// points matching the scaling family selected by opt
func UnscaledEndPoints(ep RawTableEndPoints, opt Options) ([]TableEndPoints, error) {
	if opt.Curve == CapPress || !opt.Use3PtScaling {
		return twoPointUnscaledEndPoints(ep, opt)
	}
	return threePointUnscaledEndPoints(ep, opt)
}

// NewVertical allocates the vertical scaling engine selected by opt.
// Relperm curves with scaled values at critical saturation present in
// the result set use critical-saturation scaling; everything else uses
// pure vertical scaling
func NewVertical(rs ResultSet, opt Options, tep RawTableEndPoints, fvals []FunctionValues) (VertScaler, error) {
	haveScaleCRS, err := haveScaledRelPermAtCritSat(rs, opt.ThisPh, opt.SubSys)
	if err != nil {
		return nil, err
	}
	if opt.Curve == CapPress || !haveScaleCRS {
		return pureVerticalScalingFunction(rs, opt, fvals)
	}
	return critSatVerticalScalingFunction(rs, opt, tep, fvals)
}

// UnscaledFunctionValues evaluates, for every table region, the
// unscaled function values at the nodes relevant to the vertical
// scaling family selected by opt, using the external evaluator evalSF
func UnscaledFunctionValues(rs ResultSet, ep RawTableEndPoints, opt Options, evalSF SatFuncEvaluator) ([]FunctionValues, error) {
	haveScaleCRS, err := haveScaledRelPermAtCritSat(rs, opt.ThisPh, opt.SubSys)
	if err != nil {
		return nil, err
	}

	if opt.Curve == CapPress || !haveScaleCRS {
		o := opt
		o.Use3PtScaling = false
		uep, err := twoPointUnscaledEndPoints(ep, o)
		if err != nil {
			return nil, err
		}
		ret := make([]FunctionValues, len(uep))
		for i, t := range uep {
			ret[i].Max.Sat = t.High
			ret[i].Max.Val = evalSF(i, t.High)
		}
		return ret, nil
	}

	o := opt
	o.Use3PtScaling = true
	uep, err := threePointUnscaledEndPoints(ep, o)
	if err != nil {
		return nil, err
	}
	ret := make([]FunctionValues, len(uep))
	for i, t := range uep {
		ret[i].Disp.Sat = t.Disp
		ret[i].Disp.Val = evalSF(i, t.Disp)
		ret[i].Max.Sat = t.High
		ret[i].Max.Val = evalSF(i, t.High)
	}
	return ret, nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// ones returns an array of n ones
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}
	return v
}

// defaultedCellArray resolves one named array against per-region table
// defaults: a set entry (|v| < Undef) is used as stored; an unset entry
// or an absent array falls back to dflt at the cell's table region
func defaultedCellArray(rs ResultSet, key string, dflt []float64) []float64 {
	nc := rs.NumCells()
	snum := rs.Regions()
	val := rs.Array(key)
	ret := make([]float64, nc)
	for c := 0; c < nc; c++ {
		v := Undef
		if val != nil {
			v = val[c]
		}
		if math.Abs(v) < Undef {
			ret[c] = v
			continue
		}
		reg := 1
		if snum != nil {
			reg = snum[c]
		}
		ret[c] = dflt[reg-1]
	}
	return ret
}

// unscaledTwoPt assembles per-region end points ignoring the displacing
// node. Length disagreement between the nodes of a table indicates
// broken internal wiring and fails loudly
func unscaledTwoPt(min, max []float64) []TableEndPoints {
	if len(min) != len(max) || len(min) == 0 {
		chk.Panic("unscaled end points: minimum and maximum nodes disagree in length: %d != %d", len(min), len(max))
	}
	tep := make([]TableEndPoints, len(min))
	for i, smin := range min {
		tep[i] = TableEndPoints{Low: smin, Disp: smin, High: max[i]}
	}
	return tep
}

func unscaledThreePt(min, disp, max []float64) []TableEndPoints {
	if len(min) != len(disp) || len(min) != len(max) || len(min) == 0 {
		chk.Panic("unscaled end points: minimum, displacing and maximum nodes disagree in length: %d, %d, %d", len(min), len(disp), len(max))
	}
	tep := make([]TableEndPoints, len(min))
	for i := range min {
		tep[i] = TableEndPoints{Low: min[i], Disp: disp[i], High: max[i]}
	}
	return tep
}

// haveScaledRelPermAtCritSat tells whether the result set carries
// scaled relative-permeability values at critical saturation for the
// given phase
func haveScaledRelPermAtCritSat(rs ResultSet, phase Phase, subSys SubSystem) (bool, error) {
	switch phase {
	case Water:
		return len(rs.Array("KRWR")) > 0, nil
	case Oil:
		if subSys == OilGas {
			return len(rs.Array("KROGR")) > 0, nil
		}
		return len(rs.Array("KROWR")) > 0, nil
	case Gas:
		return len(rs.Array("KRGR")) > 0, nil
	}
	return false, chk.Err("invalid phase index %d", phase)
}

// two-point horizontal ////////////////////////////////////////////////////////////////////////////

func twoPointScalingFunction(rs ResultSet, opt Options) (Scaler, error) {
	if opt.Curve == Relperm {
		switch opt.SubSys {
		case OilWater:
			switch opt.ThisPh {
			case Gas:
				return nil, chk.Err("cannot create an EPS for gas relperm in an oil/water system")
			case Water:
				return twoPointKrW(rs)
			}
			return twoPointKrOW(rs)
		case OilGas:
			switch opt.ThisPh {
			case Water:
				return nil, chk.Err("cannot create an EPS for water relperm in an oil/gas system")
			case Gas:
				return twoPointKrG(rs)
			}
			return twoPointKrOG(rs)
		}
	}
	if opt.Curve == CapPress {
		switch opt.ThisPh {
		case Oil:
			return nil, chk.Err("creating capillary pressure EPS as a function of oil saturation is not supported")
		case Gas:
			return twoPointPcGO(rs)
		case Water:
			return twoPointPcOW(rs)
		}
	}
	return nil, chk.Err("invalid two-point EPS request")
}

func twoPointKrG(rs ResultSet) (*TwoPointScaling, error) {
	sgcr := rs.Array("SGCR")
	sgu := rs.Array("SGU")
	if len(sgcr) != len(sgu) || len(sgcr) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching gas end-point specifications (SGCR and/or SGU)")
	}
	return NewTwoPointScaling(sgcr, sgu, UseUnscaled)
}

func twoPointKrOG(rs ResultSet) (*TwoPointScaling, error) {
	sogcr := rs.Array("SOGCR")
	if len(sogcr) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/gas system")
	}

	smax := ones(len(sogcr))

	// adjust maximum S_o for scaled connate gas saturations
	sgl := rs.Array("SGL")
	if len(sgl) != len(sogcr) {
		return nil, chk.Err("missing or mismatching connate gas saturation in oil/gas system")
	}
	for i, s := range sgl {
		smax[i] -= s
	}

	// adjust maximum S_o for scaled connate water saturations (if relevant)
	swl := rs.Array("SWL")
	if len(swl) == len(sogcr) {
		for i, s := range swl {
			smax[i] -= s
		}
	} else if len(swl) > 0 {
		return nil, chk.Err("mismatching connate water saturation in oil/gas system")
	}

	return NewTwoPointScaling(sogcr, smax, UseUnscaled)
}

func twoPointKrOW(rs ResultSet) (*TwoPointScaling, error) {
	sowcr := rs.Array("SOWCR")
	if len(sowcr) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/water system")
	}

	smax := ones(len(sowcr))

	// adjust maximum S_o for scaled connate water saturations
	swl := rs.Array("SWL")
	if len(swl) != len(sowcr) {
		return nil, chk.Err("missing or mismatching connate water saturation in oil/water system")
	}
	for i, s := range swl {
		smax[i] -= s
	}

	// adjust maximum S_o for scaled connate gas saturations (if relevant)
	sgl := rs.Array("SGL")
	if len(sgl) == len(sowcr) {
		for i, s := range sgl {
			smax[i] -= s
		}
	} else if len(sgl) > 0 {
		return nil, chk.Err("mismatching connate gas saturation in oil/water system")
	}

	return NewTwoPointScaling(sowcr, smax, UseUnscaled)
}

func twoPointKrW(rs ResultSet) (*TwoPointScaling, error) {
	swcr := rs.Array("SWCR")
	swu := rs.Array("SWU")
	if len(swcr) != len(swu) || len(swcr) != rs.NumCells() {
		return nil, chk.Err("missing water end-point specifications (SWCR and/or SWU)")
	}
	return NewTwoPointScaling(swcr, swu, UseUnscaled)
}

func twoPointPcGO(rs ResultSet) (*TwoPointScaling, error) {
	// dedicated scaled connate gas saturation for Pc takes precedence
	sgl := rs.Array("SGLPC")
	if sgl == nil {
		sgl = rs.Array("SGL")
	}
	sgu := rs.Array("SGU")
	if len(sgl) != len(sgu) || len(sgl) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching connate or maximum gas saturation in Pcgo EPS")
	}
	return NewTwoPointScaling(sgl, sgu, UseUnscaled)
}

func twoPointPcOW(rs ResultSet) (*TwoPointScaling, error) {
	// dedicated scaled connate water saturation for Pc takes precedence
	swl := rs.Array("SWLPC")
	if swl == nil {
		swl = rs.Array("SWL")
	}
	swu := rs.Array("SWU")
	if len(swl) != len(swu) || len(swl) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching connate or maximum water saturation in Pcow EPS")
	}
	return NewTwoPointScaling(swl, swu, UseUnscaled)
}

func twoPointUnscaledEndPoints(ep RawTableEndPoints, opt Options) ([]TableEndPoints, error) {
	if opt.Curve == CapPress {
		// left node is connate saturation, right node is maximum saturation
		switch opt.ThisPh {
		case Oil:
			return nil, chk.Err("no capillary pressure function for oil")
		case Water:
			return unscaledTwoPt(ep.Conn.Water, ep.SMax.Water), nil
		case Gas:
			return unscaledTwoPt(ep.Conn.Gas, ep.SMax.Gas), nil
		}
	}
	if opt.Curve == Relperm {
		// left node is critical saturation, right node is maximum saturation
		switch opt.SubSys {
		case OilGas:
			switch opt.ThisPh {
			case Water:
				return nil, chk.Err("void request for unscaled water saturation end points in oil/gas system")
			case Oil:
				return unscaledTwoPt(ep.Crit.OilInGas, ep.SMax.Oil), nil
			case Gas:
				return unscaledTwoPt(ep.Crit.Gas, ep.SMax.Gas), nil
			}
		case OilWater:
			switch opt.ThisPh {
			case Water:
				return unscaledTwoPt(ep.Crit.Water, ep.SMax.Water), nil
			case Oil:
				return unscaledTwoPt(ep.Crit.OilInWater, ep.SMax.Oil), nil
			case Gas:
				return nil, chk.Err("void request for unscaled gas saturation end points in oil/water system")
			}
		}
	}
	return nil, chk.Err("invalid unscaled end-point request")
}

// three-point horizontal //////////////////////////////////////////////////////////////////////////

func threePointScalingFunction(rs ResultSet, opt Options) (Scaler, error) {
	switch opt.SubSys {
	case OilWater:
		switch opt.ThisPh {
		case Gas:
			return nil, chk.Err("cannot create a three-point EPS for gas relperm in an oil/water system")
		case Water:
			return threePointKrW(rs)
		}
		return threePointKrOW(rs)
	case OilGas:
		switch opt.ThisPh {
		case Water:
			return nil, chk.Err("cannot create a three-point EPS for water relperm in an oil/gas system")
		case Gas:
			return threePointKrG(rs)
		}
		return threePointKrOG(rs)
	}
	return nil, chk.Err("invalid three-point EPS request")
}

func threePointKrG(rs ResultSet) (*ThreePointScaling, error) {
	sgcr := rs.Array("SGCR")
	sgu := rs.Array("SGU")
	if len(sgcr) != len(sgu) || len(sgcr) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching gas end-point specifications (SGCR and/or SGU)")
	}

	sr := ones(rs.NumCells())

	// adjust displacing saturation for connate water
	swl := rs.Array("SWL")
	if len(swl) == len(sgcr) {
		for i, s := range swl {
			sr[i] -= s
		}
	} else if len(swl) > 0 {
		return nil, chk.Err("connate water saturation array mismatch in three-point scaling option")
	}

	// adjust displacing saturation for critical S_o in oil/gas system
	sogcr := rs.Array("SOGCR")
	if len(sogcr) == len(sgcr) {
		for i, s := range sogcr {
			sr[i] -= s
		}
	} else if len(sogcr) > 0 {
		return nil, chk.Err("critical oil saturation (oil/gas system) array size mismatch in three-point scaling option")
	}

	return NewThreePointScaling(sgcr, sr, sgu, UseUnscaled)
}

func threePointKrOG(rs ResultSet) (*ThreePointScaling, error) {
	sogcr := rs.Array("SOGCR")
	if len(sogcr) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/gas system")
	}

	smax := ones(len(sogcr))

	// adjust maximum S_o for scaled connate gas saturations
	sgl := rs.Array("SGL")
	if len(sgl) != len(sogcr) {
		return nil, chk.Err("missing or mismatching connate gas saturation in oil/gas system")
	}
	for i, s := range sgl {
		smax[i] -= s
	}

	sdisp := ones(len(sogcr))

	// adjust displacing S_o for scaled critical gas saturation
	sgcr := rs.Array("SGCR")
	if len(sgcr) != len(sogcr) {
		return nil, chk.Err("missing or mismatching scaled critical gas saturation in oil/gas system")
	}
	for i, s := range sgcr {
		sdisp[i] -= s
	}

	// adjust displacing and maximum S_o for scaled connate water saturations (if relevant)
	swl := rs.Array("SWL")
	if len(swl) == len(sogcr) {
		for i, s := range swl {
			sdisp[i] -= s
			smax[i] -= s
		}
	} else if len(swl) > 0 {
		return nil, chk.Err("mismatching scaled connate water saturation in oil/gas system")
	}

	return NewThreePointScaling(sogcr, sdisp, smax, UseUnscaled)
}

func threePointKrOW(rs ResultSet) (*ThreePointScaling, error) {
	sowcr := rs.Array("SOWCR")
	if len(sowcr) != rs.NumCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/water system")
	}

	smax := ones(len(sowcr))

	// adjust maximum S_o for scaled connate water saturations
	swl := rs.Array("SWL")
	if len(swl) != len(sowcr) {
		return nil, chk.Err("missing or mismatching connate water saturation in oil/water system")
	}
	for i, s := range swl {
		smax[i] -= s
	}

	sdisp := ones(len(sowcr))

	// adjust displacing S_o for scaled critical water saturations
	swcr := rs.Array("SWCR")
	if len(swcr) != len(sowcr) {
		return nil, chk.Err("missing or mismatching scaled critical water saturation in oil/water system")
	}
	for i, s := range swcr {
		sdisp[i] -= s
	}

	// adjust displacing and maximum S_o for scaled connate gas saturations (if relevant)
	sgl := rs.Array("SGL")
	if len(sgl) == len(sowcr) {
		for i, s := range sgl {
			sdisp[i] -= s
			smax[i] -= s
		}
	} else if len(sgl) > 0 {
		return nil, chk.Err("mismatching connate gas saturation in oil/water system")
	}

	return NewThreePointScaling(sowcr, sdisp, smax, UseUnscaled)
}

func threePointKrW(rs ResultSet) (*ThreePointScaling, error) {
	swcr := rs.Array("SWCR")
	swu := rs.Array("SWU")
	if len(swcr) != rs.NumCells() || len(swcr) != len(swu) {
		return nil, chk.Err("missing water end-point specifications (SWCR and/or SWU)")
	}

	sdisp := ones(len(swcr))

	// adjust displacing S_w for scaled critical oil saturation
	sowcr := rs.Array("SOWCR")
	if len(sowcr) == len(swcr) {
		for i, s := range sowcr {
			sdisp[i] -= s
		}
	} else if len(sowcr) > 0 {
		return nil, chk.Err("missing or mismatching scaled critical oil saturation in oil/water system")
	}

	// adjust displacing S_w for scaled connate gas saturation
	sgl := rs.Array("SGL")
	if len(sgl) == len(swcr) {
		for i, s := range sgl {
			sdisp[i] -= s
		}
	} else if len(sgl) > 0 {
		return nil, chk.Err("missing or mismatching scaled connate gas saturation in oil/water system")
	}

	return NewThreePointScaling(swcr, sdisp, swu, UseUnscaled)
}

func threePointUnscaledEndPoints(ep RawTableEndPoints, opt Options) ([]TableEndPoints, error) {

	// displacing node: 1 - (s1 + s2) per region
	sdisp := func(s1, s2 []float64) []float64 {
		sr := ones(len(s1))
		for i := range s1 {
			sr[i] -= s1[i] + s2[i]
		}
		return sr
	}

	// left node is critical saturation, middle node is displacing
	// critical saturation, right node is maximum saturation
	switch opt.SubSys {
	case OilGas:
		switch opt.ThisPh {
		case Water:
			return nil, chk.Err("void request for unscaled water saturation end points in oil/gas system")
		case Oil:
			return unscaledThreePt(ep.Crit.OilInGas, sdisp(ep.Crit.Gas, ep.Conn.Water), ep.SMax.Oil), nil
		case Gas:
			return unscaledThreePt(ep.Crit.Gas, sdisp(ep.Crit.OilInGas, ep.Conn.Water), ep.SMax.Gas), nil
		}
	case OilWater:
		switch opt.ThisPh {
		case Water:
			return unscaledThreePt(ep.Crit.Water, sdisp(ep.Crit.OilInWater, ep.Conn.Gas), ep.SMax.Water), nil
		case Oil:
			return unscaledThreePt(ep.Crit.OilInWater, sdisp(ep.Crit.Water, ep.Conn.Gas), ep.SMax.Oil), nil
		case Gas:
			return nil, chk.Err("void request for unscaled gas saturation end points in oil/water system")
		}
	}
	return nil, chk.Err("invalid unscaled end-point request")
}

// vertical ////////////////////////////////////////////////////////////////////////////////////////

// dispVals extracts the per-region displacing-node values
func dispVals(fvals []FunctionValues) []float64 {
	v := make([]float64, len(fvals))
	for i, fv := range fvals {
		v[i] = fv.Disp.Val
	}
	return v
}

// maxVals extracts the per-region maximum-node values
func maxVals(fvals []FunctionValues) []float64 {
	v := make([]float64, len(fvals))
	for i, fv := range fvals {
		v[i] = fv.Max.Val
	}
	return v
}

func pureVerticalScalingFunction(rs ResultSet, opt Options, fvals []FunctionValues) (VertScaler, error) {
	dflt := maxVals(fvals)

	if opt.Curve == Relperm {
		switch opt.SubSys {
		case OilGas:
			switch opt.ThisPh {
			case Water:
				return nil, chk.Err("cannot create vertical scaling for water relperm in an oil/gas system")
			case Gas:
				return NewPureVerticalScaling(defaultedCellArray(rs, "KRG", dflt)), nil
			}
			return NewPureVerticalScaling(defaultedCellArray(rs, "KRO", dflt)), nil
		case OilWater:
			switch opt.ThisPh {
			case Gas:
				return nil, chk.Err("cannot create vertical scaling for gas relperm in an oil/water system")
			case Water:
				return NewPureVerticalScaling(defaultedCellArray(rs, "KRW", dflt)), nil
			}
			return NewPureVerticalScaling(defaultedCellArray(rs, "KRO", dflt)), nil
		}
	}
	if opt.Curve == CapPress {
		// scaled maximum capillary pressures are used as stored; unit
		// conversion of pressure values is the caller's concern
		switch opt.ThisPh {
		case Oil:
			return nil, chk.Err("creating capillary pressure vertical scaling as a function of oil saturation is not supported")
		case Gas:
			return NewPureVerticalScaling(defaultedCellArray(rs, "PCG", dflt)), nil
		case Water:
			return NewPureVerticalScaling(defaultedCellArray(rs, "PCW", dflt)), nil
		}
	}
	return nil, chk.Err("invalid pure vertical scaling request")
}

func critSatVerticalScalingFunction(rs ResultSet, opt Options, tep RawTableEndPoints, fvals []FunctionValues) (VertScaler, error) {
	switch opt.SubSys {
	case OilWater:
		switch opt.ThisPh {
		case Gas:
			return nil, chk.Err("cannot create critical saturation vertical scaling for gas relperm in an oil/water system")
		case Water:
			return critSatKrW(rs, tep, fvals)
		}
		return critSatKrOW(rs, tep, fvals)
	case OilGas:
		switch opt.ThisPh {
		case Water:
			return nil, chk.Err("cannot create critical saturation vertical scaling for water relperm in an oil/gas system")
		case Gas:
			return critSatKrG(rs, tep, fvals)
		}
		return critSatKrGO(rs, tep, fvals)
	}
	return nil, chk.Err("invalid critical saturation vertical scaling request")
}

func critSatKrG(rs ResultSet, tep RawTableEndPoints, fvals []FunctionValues) (*CritSatVerticalScaling, error) {
	nc := rs.NumCells()
	sdisp := make([]float64, nc)

	if rs.Phases().Oil {
		sogcr := defaultedCellArray(rs, "SOGCR", tep.Crit.OilInGas)
		swl := defaultedCellArray(rs, "SWL", tep.Conn.Water)
		for c := 0; c < nc; c++ {
			sdisp[c] = 1.0 - (sogcr[c] + swl[c])
		}
	} else { // oil not active (gas/water system)
		swcr := defaultedCellArray(rs, "SWCR", tep.Crit.Water)
		for c := 0; c < nc; c++ {
			sdisp[c] = 1.0 - swcr[c]
		}
	}

	fdisp := defaultedCellArray(rs, "KRGR", dispVals(fvals))
	fmax := defaultedCellArray(rs, "KRG", maxVals(fvals))
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}

func critSatKrGO(rs ResultSet, tep RawTableEndPoints, fvals []FunctionValues) (*CritSatVerticalScaling, error) {
	nc := rs.NumCells()
	sdisp := make([]float64, nc)

	sgcr := defaultedCellArray(rs, "SGCR", tep.Crit.Gas)
	swl := defaultedCellArray(rs, "SWL", tep.Conn.Water)
	for c := 0; c < nc; c++ {
		sdisp[c] = 1.0 - (sgcr[c] + swl[c])
	}

	fdisp := defaultedCellArray(rs, "KRORG", dispVals(fvals))
	fmax := defaultedCellArray(rs, "KRO", maxVals(fvals))
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}

func critSatKrOW(rs ResultSet, tep RawTableEndPoints, fvals []FunctionValues) (*CritSatVerticalScaling, error) {
	nc := rs.NumCells()
	sdisp := make([]float64, nc)

	swcr := defaultedCellArray(rs, "SWCR", tep.Crit.Water)
	sgl := defaultedCellArray(rs, "SGL", tep.Conn.Gas)
	for c := 0; c < nc; c++ {
		sdisp[c] = 1.0 - (swcr[c] + sgl[c])
	}

	fdisp := defaultedCellArray(rs, "KRORW", dispVals(fvals))
	fmax := defaultedCellArray(rs, "KRO", maxVals(fvals))
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}

func critSatKrW(rs ResultSet, tep RawTableEndPoints, fvals []FunctionValues) (*CritSatVerticalScaling, error) {
	nc := rs.NumCells()
	sdisp := make([]float64, nc)

	if rs.Phases().Oil {
		sowcr := defaultedCellArray(rs, "SOWCR", tep.Crit.OilInWater)
		sgl := defaultedCellArray(rs, "SGL", tep.Conn.Gas)
		for c := 0; c < nc; c++ {
			sdisp[c] = 1.0 - (sowcr[c] + sgl[c])
		}
	} else { // oil not active (gas/water system)
		sgcr := defaultedCellArray(rs, "SGCR", tep.Crit.Gas)
		for c := 0; c < nc; c++ {
			sdisp[c] = 1.0 - sgcr[c]
		}
	}

	fdisp := defaultedCellArray(rs, "KRWR", dispVals(fvals))
	fmax := defaultedCellArray(rs, "KRW", maxVals(fvals))
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}
