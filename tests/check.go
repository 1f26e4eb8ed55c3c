// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test equilibrium
// calculations against stored reference results
package tests

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/flash"
	"github.com/allena90/Plant-Simulator/inp"
)

// FlashCase holds the reference solution of one isothermal flash
type FlashCase struct {
	Descr     string    // description of the case
	Comps     []string  // component names
	Z         []float64 // feed mole fractions
	T         float64   // temperature [K]
	P         float64   // pressure [Pa]
	Converged bool      // whether the solver must converge
	V         float64   // vapor fraction
	X         []float64 // liquid mole fractions
	Y         []float64 // vapor mole fractions
	TolV      float64   // tolerance for V
	TolXY     float64   // tolerance for X and Y
}

// FlashSet is a set of reference cases
type FlashSet []*FlashCase

// CompareFlashResults runs the isothermal flash over all cases stored in
// cmpfname and compares the results with the reference values
func CompareFlashResults(tst *testing.T, cdb *inp.CompDb, cmpfname string, verbose bool) {

	// read file with comparison results
	buf := io.ReadFile(cmpfname)

	// unmarshal json
	var cmpSet FlashSet
	err := json.Unmarshal(buf, &cmpSet)
	if err != nil {
		tst.Errorf("CompareFlashResults: Unmarshal failed\n")
		return
	}

	// run comparisons
	for _, cmp := range cmpSet {

		if verbose {
			io.PfYel("\n\n%s . . . . . . . . . . . . . . . . . . . . . . . . . . .\n", cmp.Descr)
		}

		// components
		comps := Comps(tst, cdb, cmp.Comps)
		if comps == nil {
			return
		}

		// run flash
		res, err := flash.Isothermal(comps, cmp.Z, cmp.T, cmp.P)
		if err != nil {
			tst.Errorf("flash failed: %v\n", err)
			return
		}
		if verbose {
			io.Pfyel("V=%v it=%d converged=%v\n", res.V, res.It, res.Converged)
		}

		// check
		if res.Converged != cmp.Converged {
			tst.Errorf("%s: converged must be %v\n", cmp.Descr, cmp.Converged)
			return
		}
		chk.Float64(tst, "V "+cmp.Descr, cmp.TolV, res.V, cmp.V)
		if cmp.X != nil {
			chk.Array(tst, "X "+cmp.Descr, cmp.TolXY, res.X, cmp.X)
		}
		if cmp.Y != nil {
			chk.Array(tst, "Y "+cmp.Descr, cmp.TolXY, res.Y, cmp.Y)
		}

		// overall mass balance
		if res.X != nil && res.Y != nil {
			for i, z := range cmp.Z {
				lhs := res.V*res.Y[i] + (1.0-res.V)*res.X[i]
				chk.Float64(tst, "balance "+cmp.Descr, 1e-10, lhs, z)
			}
		}
	}
}
