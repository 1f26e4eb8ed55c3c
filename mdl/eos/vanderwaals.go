// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/allena90/Plant-Simulator/phy"
)

// VanDerWaals implements the van der Waals equation of state
//  (P + a/V²)·(V - b) = R·T
// with constants derived from the critical point
//  a = 27·R²·tc²/(64·pc)   b = R·tc/(8·pc)
type VanDerWaals struct {

	// critical point
	tc float64 // critical temperature [K]
	pc float64 // critical pressure [Pa]

	// derived
	a float64 // attraction constant [Pa·(m³/kmol)²]
	b float64 // covolume [m³/kmol]
}

// add model to factory
func init() {
	allocators["vdw"] = func() Model { return new(VanDerWaals) }
}

// Init initialises model from the critical point
func (o *VanDerWaals) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tc":
			o.tc = p.V
		case "pc":
			o.pc = p.V
		default:
			return chk.Err("vdw: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.tc < 1e-10 || o.pc < 1e-10 {
		return chk.Err("vdw: critical point must be given. Tc=%g, Pc=%g are invalid", o.tc, o.pc)
	}
	R := phy.RKmol
	o.a = 27.0 * R * R * o.tc * o.tc / (64.0 * o.pc)
	o.b = R * o.tc / (8.0 * o.pc)
	return
}

// Name returns the name in the database
func (o VanDerWaals) Name() string { return "vdw" }

// Constants returns the attraction constant a and covolume b
func (o VanDerWaals) Constants() (a, b float64) { return o.a, o.b }

// MolarVolume computes the molar volume [m³/kmol] of the requested phase by
// solving the characteristic cubic
//  V³ - (b + R·T/P)·V² + (a/P)·V - a·b/P = 0
func (o VanDerWaals) MolarVolume(T, P float64, ph phy.Phase) (float64, error) {
	if T <= 0 || P <= 0 {
		return 0, phy.InvalidInputErr("vdw: temperature and pressure must be positive. T=%g K, P=%g Pa are invalid", T, P)
	}
	R := phy.RKmol
	c2 := -(o.b + R*T/P)
	c1 := o.a / P
	c0 := -o.a * o.b / P
	v, ok := selectRoot(cubicRoots(c2, c1, c0), o.b, ph)
	if !ok {
		return 0, &phy.NoRootError{Model: "vdw", T: T, P: P}
	}
	return v, nil
}

// Pressure computes P = R·T/(V-b) - a/V² [Pa]
func (o VanDerWaals) Pressure(T, V float64) (float64, error) {
	if T <= 0 || V <= o.b {
		return 0, phy.InvalidInputErr("vdw: temperature must be positive and V must exceed the covolume. T=%g K, V=%g m³/kmol are invalid", T, V)
	}
	return phy.RKmol*T/(V-o.b) - o.a/(V*V), nil
}

// GetPrms gets (an example of) parameters. The example set corresponds to
// methane.
func (o VanDerWaals) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Tc", V: 190.6},
			&dbf.P{N: "Pc", V: 4.599e6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.tc},
		&dbf.P{N: "Pc", V: o.pc},
	}
}
