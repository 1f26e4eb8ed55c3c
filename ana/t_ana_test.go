// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_bflash01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bflash01. binary flash closed form")

	sol := BinaryFlash{K1: 0.3, K2: 3.0}
	v := sol.VaporFraction(0.5)
	chk.Float64(tst, "v", 1e-15, v, 13.0/28.0)

	x1, x2, y1, y2 := sol.Compositions(0.5, v)
	chk.Float64(tst, "x1", 1e-14, x1, 20.0/27.0)
	chk.Float64(tst, "y1", 1e-14, y1, 6.0/27.0)
	chk.Float64(tst, "Σx", 1e-14, x1+x2, 1.0)
	chk.Float64(tst, "Σy", 1e-14, y1+y2, 1.0)

	// identities hold for any feed and K pair
	for _, kk := range [][]float64{{0.2, 5.0}, {0.8, 1.2}, {0.05, 40.0}} {
		sol = BinaryFlash{K1: kk[0], K2: kk[1]}
		for _, z1 := range []float64{0.2, 0.5, 0.8} {
			v = sol.VaporFraction(z1)
			x1, x2, y1, y2 = sol.Compositions(z1, v)
			chk.Float64(tst, "Σx", 1e-13, x1+x2, 1.0)
			chk.Float64(tst, "Σy", 1e-13, y1+y2, 1.0)
			chk.Float64(tst, "balance1", 1e-13, v*y1+(1.0-v)*x1, z1)
			chk.Float64(tst, "balance2", 1e-13, v*y2+(1.0-v)*x2, 1.0-z1)
			chk.Float64(tst, "equilibrium", 1e-13, y1, sol.K1*x1)
		}
	}
}

func Test_bpxy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bpxy01. binary Pxy envelope")

	sol := BinaryPxy{PsatA: 3e5, PsatB: 3e4}

	// ends meet the pure component vapor pressures
	chk.Float64(tst, "bubble(0)", 1e-15, sol.Bubble(0), 3e4)
	chk.Float64(tst, "bubble(1)", 1e-15, sol.Bubble(1), 3e5)
	chk.Float64(tst, "dew(0)", 1e-9, sol.Dew(0), 3e4)
	chk.Float64(tst, "dew(1)", 1e-9, sol.Dew(1), 3e5)

	chk.Float64(tst, "bubble(0.5)", 1e-9, sol.Bubble(0.5), 1.65e5)
	chk.Float64(tst, "dew(0.5)", 1e-6, sol.Dew(0.5), 1.0/(0.5/3e5+0.5/3e4))

	// the dew curve lies below the bubble curve
	for _, x := range utl.LinSpace(0.05, 0.95, 10) {
		pb := sol.Bubble(x)
		pd := sol.Dew(x)
		if pd >= pb {
			tst.Errorf("dew=%g must be below bubble=%g at x=%g\n", pd, pb, x)
			return
		}
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		sol.Plot("/tmp/plant-simulator", "ana_bpxy01", 101)
	}
}
