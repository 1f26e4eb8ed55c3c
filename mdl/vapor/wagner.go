// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapor

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/allena90/Plant-Simulator/phy"
)

// Wagner implements the Wagner vapor pressure correlation in the 3-6 form
//  ln(psat/pc) = (a·τ + b·τ^1.5 + c·τ³ + d·τ⁶)/tr   τ = 1 - tr   tr = T/tc
// The correlation reproduces the critical point exactly and is valid up to tc
type Wagner struct {

	// critical point
	tc float64 // critical temperature [K]
	pc float64 // critical pressure [Pa]

	// coefficients
	a, b, c, d float64 // Wagner coefficients
}

// add model to factory
func init() {
	allocators["wagner"] = func() Model { return new(Wagner) }
}

// Init initialises model
func (o *Wagner) Init(prms dbf.Params) (err error) {
	var hasA, hasB, hasC, hasD bool
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tc":
			o.tc = p.V
		case "pc":
			o.pc = p.V
		case "a":
			o.a = p.V
			hasA = true
		case "b":
			o.b = p.V
			hasB = true
		case "c":
			o.c = p.V
			hasC = true
		case "d":
			o.d = p.V
			hasD = true
		default:
			return chk.Err("wagner: parameter named %q is incorrect\n", p.N)
		}
	}
	if !hasA || !hasB || !hasC || !hasD {
		return chk.Err("wagner: coefficients 'a', 'b', 'c' and 'd' must all be given")
	}
	if o.tc < 1e-10 || o.pc < 1e-10 {
		return chk.Err("wagner: critical point must be given. tc=%g, pc=%g are invalid", o.tc, o.pc)
	}
	return
}

// Sat computes the saturation pressure [Pa] at temperature T [K]
func (o Wagner) Sat(T float64) (psat float64, err error) {
	if T <= 0 {
		return 0, phy.InvalidInputErr("wagner: temperature must be positive. T=%g K is invalid", T)
	}
	if T > o.tc {
		return 0, phy.InvalidInputErr("wagner: temperature T=%g K is above the critical temperature tc=%g K", T, o.tc)
	}
	tr := T / o.tc
	τ := 1.0 - tr
	f := (o.a*τ + o.b*math.Pow(τ, 1.5) + o.c*τ*τ*τ + o.d*math.Pow(τ, 6.0)) / tr
	return o.pc * math.Exp(f), nil
}

// InRange tells whether T is inside the correlated temperature range
func (o Wagner) InRange(T float64) bool {
	return T > 0 && T <= o.tc
}

// GetPrms gets (an example of) parameters. The example set corresponds to
// water up to the critical point.
func (o Wagner) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "tc", V: 647.1},
			&dbf.P{N: "pc", V: 22.064e6},
			&dbf.P{N: "a", V: -7.76451},
			&dbf.P{N: "b", V: 1.45838},
			&dbf.P{N: "c", V: -2.77580},
			&dbf.P{N: "d", V: -1.23303},
		}
	}
	return dbf.Params{
		&dbf.P{N: "tc", V: o.tc},
		&dbf.P{N: "pc", V: o.pc},
		&dbf.P{N: "a", V: o.a},
		&dbf.P{N: "b", V: o.b},
		&dbf.P{N: "c", V: o.c},
		&dbf.P{N: "d", V: o.d},
	}
}
