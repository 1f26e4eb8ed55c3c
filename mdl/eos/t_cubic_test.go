// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/allena90/Plant-Simulator/phy"
)

func Test_cubic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic01. closed form roots")

	// (x-1)(x-2)(x-3) = x³ - 6x² + 11x - 6
	roots := cubicRoots(-6, 11, -6)
	chk.IntAssert(len(roots), 3)
	chk.Array(tst, "three roots", 1e-10, roots, []float64{1, 2, 3})

	// (x-1)(x²+x+2) = x³ + x - 2 has one real root
	roots = cubicRoots(0, 1, -2)
	chk.IntAssert(len(roots), 1)
	chk.Float64(tst, "single root", 1e-12, roots[0], 1.0)

	// (x-1)²(x+2) = x³ - 3x + 2 has a double root
	roots = cubicRoots(0, -3, 2)
	chk.IntAssert(len(roots), 2)
	chk.Array(tst, "double root", 1e-12, roots, []float64{-2, 1})

	// (x-2)³ = x³ - 6x² + 12x - 8 has a triple root
	roots = cubicRoots(-6, 12, -8)
	chk.IntAssert(len(roots), 1)
	chk.Float64(tst, "triple root", 1e-8, roots[0], 2.0)
}

func Test_cubic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic02. root selection by phase")

	roots := []float64{1, 2, 3}

	v, ok := selectRoot(roots, 0.5, phy.Vapor)
	if !ok {
		tst.Errorf("selection must succeed\n")
		return
	}
	chk.Float64(tst, "vapor root", 1e-15, v, 3.0)

	v, ok = selectRoot(roots, 0.5, phy.Liquid)
	if !ok {
		tst.Errorf("selection must succeed\n")
		return
	}
	chk.Float64(tst, "liquid root", 1e-15, v, 1.0)

	// roots below the covolume are not admissible
	v, ok = selectRoot(roots, 1.5, phy.Liquid)
	if !ok {
		tst.Errorf("selection must succeed\n")
		return
	}
	chk.Float64(tst, "liquid root above covolume", 1e-15, v, 2.0)

	_, ok = selectRoot(roots, 5.0, phy.Vapor)
	if ok {
		tst.Errorf("selection must fail when all roots are below the covolume\n")
		return
	}

	// a single root serves both phases
	single := []float64{2.5}
	vv, _ := selectRoot(single, 0.5, phy.Vapor)
	vl, _ := selectRoot(single, 0.5, phy.Liquid)
	chk.Float64(tst, "single root, both phases", 1e-15, vv, vl)
}
