// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/allena90/Plant-Simulator/phy"
)

// RedlichKwong implements the Redlich-Kwong equation of state
//  P = R·T/(V-b) - a/(√T·V·(V+b))
// with constants derived from the critical point
//  a = 0.42748·R²·tc^2.5/pc   b = 0.08664·R·tc/pc
type RedlichKwong struct {

	// critical point
	tc float64 // critical temperature [K]
	pc float64 // critical pressure [Pa]

	// derived
	a float64 // attraction constant [Pa·m⁶·K^0.5/kmol²]
	b float64 // covolume [m³/kmol]
}

// add model to factory
func init() {
	allocators["rk"] = func() Model { return new(RedlichKwong) }
}

// Init initialises model from the critical point
func (o *RedlichKwong) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tc":
			o.tc = p.V
		case "pc":
			o.pc = p.V
		default:
			return chk.Err("rk: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.tc < 1e-10 || o.pc < 1e-10 {
		return chk.Err("rk: critical point must be given. Tc=%g, Pc=%g are invalid", o.tc, o.pc)
	}
	R := phy.RKmol
	o.a = 0.42748 * R * R * math.Pow(o.tc, 2.5) / o.pc
	o.b = 0.08664 * R * o.tc / o.pc
	return
}

// Name returns the name in the database
func (o RedlichKwong) Name() string { return "rk" }

// Constants returns the attraction constant a and covolume b
func (o RedlichKwong) Constants() (a, b float64) { return o.a, o.b }

// MolarVolume computes the molar volume [m³/kmol] of the requested phase by
// solving the characteristic cubic
//  V³ - (R·T/P)·V² - (B²·R·T/P + B·A - A)·V - A·B = 0
// with A = a/(P·√T) and B = b
func (o RedlichKwong) MolarVolume(T, P float64, ph phy.Phase) (float64, error) {
	if T <= 0 || P <= 0 {
		return 0, phy.InvalidInputErr("rk: temperature and pressure must be positive. T=%g K, P=%g Pa are invalid", T, P)
	}
	R := phy.RKmol
	A := o.a / (P * math.Sqrt(T))
	B := o.b
	c2 := -R * T / P
	c1 := -(B*B*R*T/P + B*A - A)
	c0 := -A * B
	v, ok := selectRoot(cubicRoots(c2, c1, c0), o.b, ph)
	if !ok {
		return 0, &phy.NoRootError{Model: "rk", T: T, P: P}
	}
	return v, nil
}

// Pressure computes P = R·T/(V-b) - a/(√T·V·(V+b)) [Pa]
func (o RedlichKwong) Pressure(T, V float64) (float64, error) {
	if T <= 0 || V <= o.b {
		return 0, phy.InvalidInputErr("rk: temperature must be positive and V must exceed the covolume. T=%g K, V=%g m³/kmol are invalid", T, V)
	}
	return phy.RKmol*T/(V-o.b) - o.a/(math.Sqrt(T)*V*(V+o.b)), nil
}

// GetPrms gets (an example of) parameters. The example set corresponds to
// methane.
func (o RedlichKwong) GetPrms(example bool) dbf.Params {
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
