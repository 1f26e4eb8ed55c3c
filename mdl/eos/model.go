// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eos implements equations of state relating pressure, temperature
// and molar volume of pure substances. Molar volumes are in m³/kmol and the
// corresponding gas constant is phy.RKmol
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/allena90/Plant-Simulator/phy"
)

// Model defines the interface for equations of state
type Model interface {
	Init(prms dbf.Params) error                              // initialises the model constants
	Name() string                                            // returns the name in the database
	MolarVolume(T, P float64, ph phy.Phase) (float64, error) // computes the molar volume [m³/kmol]
	Constants() (a, b float64)                               // returns the attraction constant and covolume
	GetPrms(example bool) dbf.Params                         // gets (an example of) parameters
}

// PVT is implemented by models that express pressure explicitly as a
// function of temperature and molar volume
type PVT interface {
	Pressure(T, V float64) (float64, error) // computes the pressure [Pa]
}

// Compressibility computes Z = P·V/(R·T) using the model's molar volume
func Compressibility(mdl Model, T, P float64, ph phy.Phase) (Z float64, err error) {
	V, err := mdl.MolarVolume(T, P, ph)
	if err != nil {
		return
	}
	return P * V / (phy.RKmol * T), nil
}

// New returns a new equation of state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
