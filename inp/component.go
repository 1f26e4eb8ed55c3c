// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data structures: chemical component
// records and the component database read from .cmp JSON files
package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/allena90/Plant-Simulator/mdl/eos"
	"github.com/allena90/Plant-Simulator/mdl/vapor"
	"github.com/allena90/Plant-Simulator/phy"
)

// Component holds the property record of a pure chemical substance
type Component struct {

	// input
	Name    string     `json:"name"`    // name of substance; e.g. "water"
	Formula string     `json:"formula"` // chemical formula; e.g. "H2O"
	CAS     string     `json:"cas"`     // CAS registry number
	Phase   string     `json:"phase"`   // phase at standard conditions; e.g. "liquid"
	Descr   string     `json:"descr"`   // description
	VapSat  string     `json:"vapsat"`  // name of vapor pressure model; e.g. "antoine"
	EosName string     `json:"eos"`     // name of equation of state; e.g. "rk"
	Prms    dbf.Params `json:"prms"`    // substance constants
	SatPrms dbf.Params `json:"satprms"` // vapor pressure correlation coefficients

	// connected constants
	MW   float64 // molecular weight [kg/kmol]
	Tc   float64 // critical temperature [K]
	Pc   float64 // critical pressure [Pa]
	Vc   float64 // critical volume [m³/kmol]
	W    float64 // acentric factor
	Tb   float64 // normal boiling point [K]
	Tm   float64 // melting point [K]
	Hvap float64 // heat of vaporisation at the boiling point [J/kmol]

	// heat capacity polynomial
	cpa, cpb, cpc, cpd float64 // coefficients for cp in J/(kmol·K)
	hasCp              bool    // all four coefficients were given

	// derived
	hasCrit bool        // critical point was given
	Vap     vapor.Model // vapor pressure model; nil if vapsat is empty
	Eos     eos.Model   // equation of state; nil if the critical point is absent
}

// Init connects the constants, validates the record and allocates the vapor
// pressure and equation of state models
func (o *Component) Init() (err error) {

	// connect constants
	nCp := 0
	for _, p := range o.Prms {
		switch strings.ToLower(p.N) {
		case "mw":
			o.MW = p.V
		case "tc":
			o.Tc = p.V
		case "pc":
			o.Pc = p.V
		case "vc":
			o.Vc = p.V
		case "w":
			o.W = p.V
		case "tb":
			o.Tb = p.V
		case "tm":
			o.Tm = p.V
		case "hvap":
			o.Hvap = p.V
		case "cpa":
			o.cpa = p.V
			nCp++
		case "cpb":
			o.cpb = p.V
			nCp++
		case "cpc":
			o.cpc = p.V
			nCp++
		case "cpd":
			o.cpd = p.V
			nCp++
		default:
			return chk.Err("component %q: parameter named %q is incorrect\n", o.Name, p.N)
		}
	}
	o.hasCp = nCp == 4
	o.hasCrit = o.Tc > 0 && o.Pc > 0

	// validate
	if o.Name == "" {
		return phy.InvalidInputErr("component name cannot be empty")
	}
	if o.Formula == "" {
		return phy.InvalidInputErr("component %q: chemical formula cannot be empty", o.Name)
	}
	if o.MW <= 0 {
		return phy.InvalidInputErr("component %q: molecular weight must be positive. mw=%g is invalid", o.Name, o.MW)
	}
	if o.Tc < 0 || o.Pc < 0 {
		return phy.InvalidInputErr("component %q: critical point cannot be negative. Tc=%g, Pc=%g are invalid", o.Name, o.Tc, o.Pc)
	}

	// vapor pressure model
	if o.VapSat != "" {
		o.Vap, err = vapor.New(o.VapSat)
		if err != nil {
			return
		}
		err = o.Vap.Init(o.SatPrms)
		if err != nil {
			return
		}
	}

	// equation of state
	if o.EosName == "" {
		o.EosName = "rk"
	}
	if o.hasCrit {
		o.Eos, err = eos.New(o.EosName)
		if err != nil {
			return
		}
		err = o.Eos.Init(dbf.Params{
			&dbf.P{N: "Tc", V: o.Tc},
			&dbf.P{N: "Pc", V: o.Pc},
		})
		if err != nil {
			return
		}
	}
	return
}

// SatPressure computes the saturation pressure [Pa] at temperature T [K]
func (o *Component) SatPressure(T float64) (float64, error) {
	if o.Vap == nil {
		return 0, &phy.MissingDataError{Component: o.Name, Prop: "vapor pressure"}
	}
	return o.Vap.Sat(T)
}

// CpIdealGas computes the ideal gas heat capacity [J/(kmol·K)]
//  cp = cpa + cpb·T + cpc·T² + cpd·T³
func (o *Component) CpIdealGas(T float64) (float64, error) {
	if T <= 0 {
		return 0, phy.InvalidInputErr("component %q: temperature must be positive. T=%g K is invalid", o.Name, T)
	}
	if !o.hasCp {
		return 0, &phy.MissingDataError{Component: o.Name, Prop: "heat capacity"}
	}
	return o.cpa + o.cpb*T + o.cpc*T*T + o.cpd*T*T*T, nil
}

// ReducedTemperature returns tr = T/Tc
func (o *Component) ReducedTemperature(T float64) (float64, error) {
	if !o.hasCrit {
		return 0, &phy.MissingDataError{Component: o.Name, Prop: "critical point"}
	}
	return T / o.Tc, nil
}

// ReducedPressure returns pr = P/Pc
func (o *Component) ReducedPressure(P float64) (float64, error) {
	if !o.hasCrit {
		return 0, &phy.MissingDataError{Component: o.Name, Prop: "critical point"}
	}
	return P / o.Pc, nil
}

// MolarVolume computes the molar volume [m³/kmol] with this component's
// equation of state
func (o *Component) MolarVolume(T, P float64, ph phy.Phase) (float64, error) {
	if o.Eos == nil {
		return 0, &phy.MissingDataError{Component: o.Name, Prop: "critical point"}
	}
	return o.Eos.MolarVolume(T, P, ph)
}

// Compressibility computes Z = P·V/(R·T) with this component's equation of
// state
func (o *Component) Compressibility(T, P float64, ph phy.Phase) (float64, error) {
	if o.Eos == nil {
		return 0, &phy.MissingDataError{Component: o.Name, Prop: "critical point"}
	}
	return eos.Compressibility(o.Eos, T, P, ph)
}
