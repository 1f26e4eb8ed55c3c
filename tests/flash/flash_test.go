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
	"github.com/allena90/Plant-Simulator/tests"
	"github.com/allena90/Plant-Simulator/vle"
)

func Test_flash01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flash01. isothermal flash against reference results")

	cdb, err := inp.ReadCmp("data", "components.cmp")
	if err != nil {
		tst.Errorf("cannot read components.cmp\n:%v", err)
		return
	}

	tests.CompareFlashResults(tst, cdb, "data/flashcases.json", chk.Verbose)
}

func Test_flash02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flash02. flash at the bubble and dew pressures")

	cdb, err := inp.ReadCmp("data", "components.cmp")
	if err != nil {
		tst.Errorf("cannot read components.cmp\n:%v", err)
		return
	}
	comps := tests.Comps(tst, cdb, []string{"propane", "n-butane"})
	if comps == nil {
		return
	}
	z := []float64{0.5, 0.5}
	T := 300.0

	pb, err := vle.BubblePressure(comps, z, T)
	if err != nil {
		tst.Errorf("BubblePressure failed: %v\n", err)
		return
	}
	pd, err := vle.DewPressure(comps, z, T)
	if err != nil {
		tst.Errorf("DewPressure failed: %v\n", err)
		return
	}
	io.Pforan("bubble = %v Pa  dew = %v Pa\n", pb, pd)
	chk.Float64(tst, "bubble", 1e-6, pb, 651886.0201277551)
	chk.Float64(tst, "dew", 1e-6, pd, 420374.7246391164)

	// at the bubble pressure the feed is a liquid at incipient boiling
	res, err := flash.Isothermal(comps, z, T, pb)
	if err != nil {
		tst.Errorf("flash failed: %v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("flash did not converge after %d iterations\n", res.It)
		return
	}
	chk.Float64(tst, "V at bubble", 1e-4, res.V, 0)
	chk.Array(tst, "x at bubble", 1e-4, res.X, z)

	// at the dew pressure everything but the first drop is vapor
	res, err = flash.Isothermal(comps, z, T, pd)
	if err != nil {
		tst.Errorf("flash failed: %v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("flash did not converge after %d iterations\n", res.It)
		return
	}
	chk.Float64(tst, "V at dew", 1e-4, res.V, 1)
	chk.Array(tst, "y at dew", 1e-4, res.Y, z)

	// pressures in between give a two phase mixture
	for _, p := range []float64{0.9*pb + 0.1*pd, 0.5*pb + 0.5*pd, 0.1*pb + 0.9*pd} {
		res, err = flash.Isothermal(comps, z, T, p)
		if err != nil {
			tst.Errorf("flash failed: %v\n", err)
			return
		}
		if !res.Converged {
			tst.Errorf("flash did not converge at P=%g\n", p)
			return
		}
		if res.V <= 0 || res.V >= 1 {
			tst.Errorf("V=%g must be within (0,1) at P=%g\n", res.V, p)
			return
		}
	}
}
