// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/allena90/Plant-Simulator/phy"
)

// IdealGas implements the ideal gas law
//  P·V = R·T
type IdealGas struct{}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(IdealGas) }
}

// Init initialises model. The ideal gas law has no constants; critical point
// parameters are accepted and ignored so that all models can be initialised
// uniformly from a component record.
func (o *IdealGas) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Tc", "Pc":
		default:
			return chk.Err("ideal: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// Name returns the name in the database
func (o IdealGas) Name() string { return "ideal" }

// Constants returns zero attraction constant and covolume
func (o IdealGas) Constants() (a, b float64) { return 0, 0 }

// MolarVolume computes V = R·T/P [m³/kmol]. Both phases give the same value.
func (o IdealGas) MolarVolume(T, P float64, ph phy.Phase) (float64, error) {
	if T <= 0 || P <= 0 {
		return 0, phy.InvalidInputErr("ideal: temperature and pressure must be positive. T=%g K, P=%g Pa are invalid", T, P)
	}
	return phy.RKmol * T / P, nil
}

// Pressure computes P = R·T/V [Pa]
func (o IdealGas) Pressure(T, V float64) (float64, error) {
	if T <= 0 || V <= 0 {
		return 0, phy.InvalidInputErr("ideal: temperature and molar volume must be positive. T=%g K, V=%g m³/kmol are invalid", T, V)
	}
	return phy.RKmol * T / V, nil
}

// GetPrms gets (an example of) parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}
