// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream implements process streams: material flows between unit
// operations carrying temperature, pressure, composition and flow rate.
// Streams support mixing, splitting and ideal gas property calculations.
package stream

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/dim"
	"github.com/allena90/Plant-Simulator/inp"
	"github.com/allena90/Plant-Simulator/phy"
)

// Stream represents a process stream. Components are referenced by name in
// a backing database; Fracs holds the mole fraction of each one.
type Stream struct {

	// state
	Name  string             // stream identifier
	T     float64            // temperature [K]
	P     float64            // pressure [Pa]
	Flow  float64            // total molar flow [kmol/s]
	Fracs map[string]float64 // mole fractions by component name
	Phase string             // "vapor", "liquid", "mixed" or "unknown"

	// access to component data
	db *inp.CompDb
}

// New creates a stream after validating its state. All component names in
// fracs must exist in cdb and the fractions must sum to one.
func New(cdb *inp.CompDb, name string, T, P, flow float64, fracs map[string]float64, phase string) (*Stream, error) {
	if cdb == nil {
		return nil, phy.InvalidInputErr("component database is required")
	}
	if name == "" {
		return nil, phy.InvalidInputErr("stream name cannot be empty")
	}
	if T <= 0 {
		return nil, phy.InvalidInputErr("temperature must be positive. T=%g K is invalid", T)
	}
	if P <= 0 {
		return nil, phy.InvalidInputErr("pressure must be positive. P=%g Pa is invalid", P)
	}
	if flow < 0 {
		return nil, phy.InvalidInputErr("molar flow cannot be negative. flow=%g kmol/s is invalid", flow)
	}
	if len(fracs) == 0 {
		return nil, phy.InvalidInputErr("stream %q has no composition", name)
	}
	sum := 0.0
	for cname, x := range fracs {
		if x < 0 {
			return nil, phy.InvalidInputErr("mole fraction of %q cannot be negative. x=%g is invalid", cname, x)
		}
		if cdb.Get(cname) == nil {
			return nil, phy.InvalidInputErr("component %q is not in the database", cname)
		}
		sum += x
	}
	if sum > 0 && (sum < 1.0-1e-6 || sum > 1.0+1e-6) {
		return nil, phy.InvalidInputErr("mole fractions must sum to one. sum=%g is invalid", sum)
	}
	if phase == "" {
		phase = "unknown"
	}
	o := &Stream{
		Name:  name,
		T:     T,
		P:     P,
		Flow:  flow,
		Fracs: make(map[string]float64),
		Phase: phase,
		db:    cdb,
	}
	for cname, x := range fracs {
		o.Fracs[cname] = x
	}
	return o, nil
}

// names returns the component names sorted alphabetically
func (o *Stream) names() []string {
	names := make([]string, 0, len(o.Fracs))
	for cname := range o.Fracs {
		names = append(names, cname)
	}
	sort.Strings(names)
	return names
}

// Composition returns the components and mole fractions as parallel slices
// sorted by component name; i.e. the form consumed by the vle and flash
// packages.
func (o *Stream) Composition() (comps []*inp.Component, z []float64, err error) {
	names := o.names()
	comps = make([]*inp.Component, len(names))
	z = make([]float64, len(names))
	for i, cname := range names {
		c := o.db.Get(cname)
		if c == nil {
			return nil, nil, phy.InvalidInputErr("component %q is not in the database", cname)
		}
		comps[i] = c
		z[i] = o.Fracs[cname]
	}
	return
}

// MolWeight returns the average molecular weight of the mixture [kg/kmol]
//  mw = Σ x[i]·mw[i]
func (o *Stream) MolWeight() (mw float64) {
	for cname, x := range o.Fracs {
		if c := o.db.Get(cname); c != nil {
			mw += x * c.MW
		}
	}
	return
}

// MassFlow returns the total mass flow rate [kg/s]
func (o *Stream) MassFlow() float64 {
	return o.Flow * o.MolWeight()
}

// MolarFlows returns the molar flow rate of each component [kmol/s]
func (o *Stream) MolarFlows() map[string]float64 {
	flows := make(map[string]float64)
	for cname, x := range o.Fracs {
		flows[cname] = o.Flow * x
	}
	return flows
}

// MassFlows returns the mass flow rate of each component [kg/s]
func (o *Stream) MassFlows() map[string]float64 {
	flows := make(map[string]float64)
	for cname, x := range o.Fracs {
		if c := o.db.Get(cname); c != nil {
			flows[cname] = o.Flow * x * c.MW
		}
	}
	return flows
}

// MassFractions converts the mole fractions to mass fractions
//  w[i] = x[i]·mw[i] / mw
func (o *Stream) MassFractions() map[string]float64 {
	w := make(map[string]float64)
	mw := o.MolWeight()
	if mw == 0 {
		return w
	}
	for cname, x := range o.Fracs {
		if c := o.db.Get(cname); c != nil {
			w[cname] = x * c.MW / mw
		}
	}
	return w
}

// VolumetricFlow returns the volumetric flow rate [m³/s] for a given mixture
// density [kg/m³]
func (o *Stream) VolumetricFlow(density float64) (float64, error) {
	if density <= 0 {
		return 0, phy.InvalidInputErr("density must be positive. rho=%g kg/m³ is invalid", density)
	}
	return o.MassFlow() / density, nil
}

// RhoIdealGas returns the mixture density [kg/m³] assuming ideal gas
// behavior
//  rho = P·mw/(R·T)
func (o *Stream) RhoIdealGas() float64 {
	return o.P * o.MolWeight() / (phy.RKmol * o.T)
}

// MolarVolumeIdealGas returns the molar volume [m³/kmol] assuming ideal gas
// behavior
func (o *Stream) MolarVolumeIdealGas() float64 {
	return phy.RKmol * o.T / o.P
}

// EnthalpyIdealGas returns the specific enthalpy [J/kg] relative to tref [K]
// assuming ideal gas behavior with the mixture heat capacity evaluated at
// the mean temperature. Components without heat capacity data make the call
// fail with MissingDataError.
func (o *Stream) EnthalpyIdealGas(tref float64) (float64, error) {
	if tref <= 0 {
		return 0, phy.InvalidInputErr("reference temperature must be positive. tref=%g K is invalid", tref)
	}
	tmean := (o.T + tref) / 2.0
	cpmix := 0.0
	for _, cname := range o.names() {
		c := o.db.Get(cname)
		if c == nil {
			return 0, phy.InvalidInputErr("component %q is not in the database", cname)
		}
		cp, err := c.CpIdealGas(tmean)
		if err != nil {
			return 0, err
		}
		cpmix += o.Fracs[cname] * cp
	}
	mw := o.MolWeight()
	if mw == 0 {
		return 0, nil
	}
	return cpmix / mw * (o.T - tref), nil
}

// Copy returns a copy of this stream with "_copy" appended to its name
func (o *Stream) Copy() *Stream {
	fracs := make(map[string]float64)
	for cname, x := range o.Fracs {
		fracs[cname] = x
	}
	return &Stream{
		Name:  o.Name + "_copy",
		T:     o.T,
		P:     o.P,
		Flow:  o.Flow,
		Fracs: fracs,
		Phase: o.Phase,
		db:    o.db,
	}
}

// MixWith mixes this stream with another one adiabatically. Component molar
// flows are conserved, the outlet pressure is the smaller of the two inlet
// pressures, and the outlet temperature is the mass weighted average of the
// inlet temperatures.
func (o *Stream) MixWith(other *Stream) (*Stream, error) {
	if other == nil {
		return nil, phy.InvalidInputErr("stream to mix with is required")
	}
	if o.db != other.db {
		return nil, phy.InvalidInputErr("cannot mix streams backed by different component databases")
	}
	nout := o.Flow + other.Flow
	if nout == 0 {
		return nil, phy.InvalidInputErr("cannot mix streams with zero total flow")
	}

	// component molar balance
	fa := o.MolarFlows()
	fb := other.MolarFlows()
	fracs := make(map[string]float64)
	for cname, f := range fa {
		fracs[cname] = f / nout
	}
	for cname, f := range fb {
		fracs[cname] += f / nout
	}

	// outlet pressure and temperature
	pout := o.P
	if other.P < pout {
		pout = other.P
	}
	ma := o.MassFlow()
	mb := other.MassFlow()
	tout := (ma*o.T + mb*other.T) / (ma + mb)

	return &Stream{
		Name:  o.Name + "+" + other.Name,
		T:     tout,
		P:     pout,
		Flow:  nout,
		Fracs: fracs,
		Phase: "mixed",
		db:    o.db,
	}, nil
}

// Split returns a stream with the same state and composition carrying the
// given fraction of this stream's flow. An empty suffix defaults to
// "_split".
func (o *Stream) Split(fraction float64, suffix string) (*Stream, error) {
	if fraction < 0 || fraction > 1 {
		return nil, phy.InvalidInputErr("split fraction must be within [0,1]. fraction=%g is invalid", fraction)
	}
	if suffix == "" {
		suffix = "_split"
	}
	s := o.Copy()
	s.Name = o.Name + suffix
	s.Flow = o.Flow * fraction
	return s, nil
}

// String returns a one line description of this stream
func (o *Stream) String() string {
	return io.Sf("Stream %q: %.2f K, %.4f bar, %.4f kmol/s", o.Name, o.T, dim.PaToBar(o.P), o.Flow)
}

// Summary returns a multi line report with flow rates and the composition
// on mole and mass bases
func (o *Stream) Summary() string {
	l := io.Sf("Stream: %s\n", o.Name)
	l += io.Sf("%s\n", "==================================================")
	l += io.Sf("Temperature: %.2f K (%.2f °C)\n", o.T, dim.KtoC(o.T))
	l += io.Sf("Pressure: %.4f bar (%.4f MPa)\n", dim.PaToBar(o.P), o.P/1e6)
	l += io.Sf("Phase: %s\n\n", o.Phase)
	l += io.Sf("Flow Rates:\n")
	l += io.Sf("  Molar flow: %.4f kmol/s (%.2f kmol/h)\n", o.Flow, dim.KmolSToKmolH(o.Flow))
	l += io.Sf("  Mass flow: %.4f kg/s (%.2f kg/h)\n", o.MassFlow(), o.MassFlow()*3600.0)
	l += io.Sf("  Molecular weight: %.4f kg/kmol\n\n", o.MolWeight())
	l += io.Sf("Composition (Mole Basis):\n")
	for _, cname := range o.names() {
		x := o.Fracs[cname]
		l += io.Sf("  %-20s: %8.4f (%10.4f kmol/s)\n", cname, x, o.Flow*x)
	}
	l += io.Sf("\nComposition (Mass Basis):\n")
	w := o.MassFractions()
	mflow := o.MassFlow()
	for _, cname := range o.names() {
		l += io.Sf("  %-20s: %8.4f (%10.4f kg/s)\n", cname, w[cname], mflow*w[cname])
	}
	return l
}
