// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/allena90/Plant-Simulator/phy"
)

func Test_eos01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eos01. model database")

	_, err := New("bogus")
	if err == nil {
		tst.Errorf("New must fail for unknown model\n")
		return
	}
	for _, name := range []string{"ideal", "vdw", "rk"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("Init(%q) failed: %v\n", name, err)
			return
		}
		chk.StrAssert(mdl.Name(), name)
	}
}

func Test_ideal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal01. ideal gas law")

	mdl, err := New("ideal")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	T, P := 298.15, phy.Patm
	V, err := mdl.MolarVolume(T, P, phy.Vapor)
	if err != nil {
		tst.Errorf("MolarVolume failed: %v\n", err)
		return
	}
	chk.Float64(tst, "V", 1e-12, V, phy.RKmol*T/P)

	// compressibility factor is exactly one
	Z, err := Compressibility(mdl, T, P, phy.Vapor)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Z", 1e-15, Z, 1.0)

	// pressure from molar volume closes the loop
	gas := mdl.(*IdealGas)
	Pback, err := gas.Pressure(T, V)
	if err != nil {
		tst.Errorf("Pressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P round trip", 1e-9, Pback, P)

	// invalid input
	_, err = mdl.MolarVolume(-1, P, phy.Vapor)
	if err == nil {
		tst.Errorf("MolarVolume must fail for negative temperatures\n")
		return
	}
}

func Test_vdw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vdw01. van der Waals for methane")

	mdl, err := New("vdw")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	a, b := mdl.Constants()
	if a <= 0 || b <= 0 {
		tst.Errorf("constants must be positive. a=%g, b=%g\n", a, b)
		return
	}

	// near-ambient vapor behaves almost ideally
	T, P := 300.0, phy.Patm
	V, err := mdl.MolarVolume(T, P, phy.Vapor)
	if err != nil {
		tst.Errorf("MolarVolume failed: %v\n", err)
		return
	}
	videal := phy.RKmol * T / P
	if V/videal < 0.98 || V/videal > 1.02 {
		tst.Errorf("V=%g deviates too much from ideal %g\n", V, videal)
		return
	}
	Z, err := Compressibility(mdl, T, P, phy.Vapor)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	if Z < 0.8 || Z > 1.2 {
		tst.Errorf("Z=%g is out of the expected range\n", Z)
		return
	}

	// supercritical: the single root serves both phases
	Vl, err := mdl.MolarVolume(T, P, phy.Liquid)
	if err != nil {
		tst.Errorf("MolarVolume failed: %v\n", err)
		return
	}
	chk.Float64(tst, "single root, both phases", 1e-12, V, Vl)

	// pressure from molar volume closes the loop
	Pback, err := mdl.(*VanDerWaals).Pressure(T, V)
	if err != nil {
		tst.Errorf("Pressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P round trip", 1e-3, Pback, P)
}

func Test_rk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rk01. Redlich-Kwong for methane")

	mdl, err := New("rk")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// near-ambient vapor behaves almost ideally
	Z, err := Compressibility(mdl, 300.0, phy.Patm, phy.Vapor)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	if Z < 0.8 || Z > 1.2 {
		tst.Errorf("Z=%g is out of the expected range\n", Z)
		return
	}

	// low-pressure limit approaches the ideal gas law
	V, err := mdl.MolarVolume(300.0, 1e3, phy.Vapor)
	if err != nil {
		tst.Errorf("MolarVolume failed: %v\n", err)
		return
	}
	videal := phy.RKmol * 300.0 / 1e3
	if V/videal < 0.95 || V/videal > 1.05 {
		tst.Errorf("V=%g deviates too much from ideal %g\n", V, videal)
		return
	}

	// two-phase region: distinct vapor and liquid roots
	T, P := 150.0, 1.04e6
	Vv, err := mdl.MolarVolume(T, P, phy.Vapor)
	if err != nil {
		tst.Errorf("MolarVolume failed: %v\n", err)
		return
	}
	Vl, err := mdl.MolarVolume(T, P, phy.Liquid)
	if err != nil {
		tst.Errorf("MolarVolume failed: %v\n", err)
		return
	}
	_, b := mdl.Constants()
	if Vl <= b {
		tst.Errorf("liquid root %g must exceed the covolume %g\n", Vl, b)
		return
	}
	if Vl >= Vv {
		tst.Errorf("liquid root %g must be below the vapor root %g\n", Vl, Vv)
		return
	}
	if Vv < 0.94 || Vv > 0.96 {
		tst.Errorf("vapor root %g is out of the expected range\n", Vv)
		return
	}
	if Vl < 0.036 || Vl > 0.040 {
		tst.Errorf("liquid root %g is out of the expected range\n", Vl)
		return
	}

	// no admissible root at extreme pressure
	_, err = mdl.MolarVolume(150.0, 1e9, phy.Vapor)
	if err == nil {
		tst.Errorf("MolarVolume must fail when no root is admissible\n")
		return
	}
	if _, ok := err.(*phy.NoRootError); !ok {
		tst.Errorf("error must be NoRootError, got %v\n", err)
		return
	}
}
