// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/flash"
	"github.com/allena90/Plant-Simulator/inp"
	"github.com/allena90/Plant-Simulator/stream"
)

// Mixes two feeds, drops the pressure into the two phase region and splits
// the result in a flash drum. All reference values were computed with the
// component data in data/components.cmp.
func Test_streams01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("streams01. mixer and flash drum")

	cdb, err := inp.ReadCmp("data", "components.cmp")
	if err != nil {
		tst.Errorf("cannot read components.cmp\n:%v", err)
		return
	}

	// feeds
	s1, err := stream.New(cdb, "Feed-1", 298.15, 1e6, 100.0, map[string]float64{
		"water":   0.6,
		"methane": 0.4,
	}, "liquid")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	s2, err := stream.New(cdb, "Feed-2", 323.15, 5e5, 50.0, map[string]float64{
		"water":   0.3,
		"methane": 0.7,
	}, "vapor")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// adiabatic mixer
	mixed, err := s1.MixWith(s2)
	if err != nil {
		tst.Errorf("MixWith failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mixed)
	chk.Float64(tst, "T", 1e-6, mixed.T, 306.2903292)
	chk.Float64(tst, "P", 1e-12, mixed.P, 5e5)
	chk.Float64(tst, "flow", 1e-12, mixed.Flow, 150.0)
	chk.Float64(tst, "x water", 1e-12, mixed.Fracs["water"], 0.5)

	// mass is conserved through the mixer
	chk.Float64(tst, "mass flow", 1e-9, mixed.MassFlow(), s1.MassFlow()+s2.MassFlow())

	// enthalpy relative to the standard state
	h, err := mixed.EnthalpyIdealGas(298.15)
	if err != nil {
		tst.Errorf("EnthalpyIdealGas failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h mixed", 1e-3, h, 18405.8918)

	// flash drum at 0.5 bar
	comps, z, err := mixed.Composition()
	if err != nil {
		tst.Errorf("Composition failed: %v\n", err)
		return
	}
	chk.StrAssert(comps[0].Name, "methane")
	chk.StrAssert(comps[1].Name, "water")
	res, err := flash.Isothermal(comps, z, mixed.T, 5e4)
	if err != nil {
		tst.Errorf("flash failed: %v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("flash did not converge after %d iterations\n", res.It)
		return
	}
	io.Pfyel("V=%v X=%v Y=%v\n", res.V, res.X, res.Y)
	chk.Float64(tst, "V", 1e-8, res.V, 0.5276849861237857)
	chk.Array(tst, "X", 1e-8, res.X, []float64{0.0488161118010134, 0.9511838881818523})
	chk.Array(tst, "Y", 1e-8, res.Y, []float64{0.9038411742217713, 0.0961588257935651})

	// vapor and liquid product streams
	vap, err := stream.New(cdb, "drum-vapor", mixed.T, 5e4, res.V*mixed.Flow, map[string]float64{
		"methane": res.Y[0],
		"water":   res.Y[1],
	}, "vapor")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	liq, err := stream.New(cdb, "drum-liquid", mixed.T, 5e4, (1.0-res.V)*mixed.Flow, map[string]float64{
		"methane": res.X[0],
		"water":   res.X[1],
	}, "liquid")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// component balance closes around the drum
	fm := mixed.MolarFlows()
	fv := vap.MolarFlows()
	fl := liq.MolarFlows()
	for _, name := range []string{"water", "methane"} {
		chk.Float64(tst, "balance "+name, 1e-6, fv[name]+fl[name], fm[name])
	}

	// heater on the vapor product
	hcold, err := vap.EnthalpyIdealGas(298.15)
	if err != nil {
		tst.Errorf("EnthalpyIdealGas failed: %v\n", err)
		return
	}
	hot := vap.Copy()
	hot.Name = "drum-vapor-heated"
	hot.T = 340.0
	hhot, err := hot.EnthalpyIdealGas(298.15)
	if err != nil {
		tst.Errorf("EnthalpyIdealGas failed: %v\n", err)
		return
	}
	if hhot <= hcold {
		tst.Errorf("heating must increase the enthalpy: h=%g to h=%g\n", hcold, hhot)
		return
	}
	duty := (hhot - hcold) * vap.MassFlow()
	io.Pfgrey("heater duty = %v W\n", duty)
	if duty <= 0 {
		tst.Errorf("duty = %g must be positive\n", duty)
		return
	}

	// splitter on the liquid product
	la, err := liq.Split(0.25, "_A")
	if err != nil {
		tst.Errorf("Split failed: %v\n", err)
		return
	}
	lb, err := liq.Split(0.75, "_B")
	if err != nil {
		tst.Errorf("Split failed: %v\n", err)
		return
	}
	chk.Float64(tst, "split balance", 1e-9, la.Flow+lb.Flow, liq.Flow)
	chk.Float64(tst, "split composition", 1e-15, la.Fracs["water"], liq.Fracs["water"])
}
