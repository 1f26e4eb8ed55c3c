// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapor

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/phy"
)

// Antoine implements the Antoine vapor pressure correlation
//  log10(psat) = a - b/(T+c)   psat [Pa]   T [K]
type Antoine struct {

	// coefficients
	a, b, c float64 // Antoine coefficients for pressures in Pa

	// valid range
	tmin, tmax float64 // correlated temperature range [K]; zero disables the bound
}

// add model to factory
func init() {
	allocators["antoine"] = func() Model { return new(Antoine) }
}

// Init initialises model
func (o *Antoine) Init(prms dbf.Params) (err error) {
	var hasA, hasB, hasC bool
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.a = p.V
			hasA = true
		case "b":
			o.b = p.V
			hasB = true
		case "c":
			o.c = p.V
			hasC = true
		case "tmin":
			o.tmin = p.V
		case "tmax":
			o.tmax = p.V
		default:
			return chk.Err("antoine: parameter named %q is incorrect\n", p.N)
		}
	}
	if !hasA || !hasB || !hasC {
		return chk.Err("antoine: coefficients 'a', 'b' and 'c' must all be given")
	}
	return
}

// Sat computes the saturation pressure [Pa] at temperature T [K].
// Temperatures outside the correlated range are extrapolated; a notice is
// printed and InRange reports the situation.
func (o Antoine) Sat(T float64) (psat float64, err error) {
	if T <= 0 {
		return 0, phy.InvalidInputErr("antoine: temperature must be positive. T=%g K is invalid", T)
	}
	if T+o.c <= 0 {
		return 0, phy.InvalidInputErr("antoine: temperature T=%g K is invalid for coefficient c=%g", T, o.c)
	}
	if !o.InRange(T) {
		io.Pf("antoine: T=%g K is outside the correlated range [%g,%g] K\n", T, o.tmin, o.tmax)
	}
	return math.Pow(10.0, o.a-o.b/(T+o.c)), nil
}

// InRange tells whether T is inside the correlated temperature range
func (o Antoine) InRange(T float64) bool {
	if o.tmin > 0 && T < o.tmin {
		return false
	}
	if o.tmax > 0 && T > o.tmax {
		return false
	}
	return true
}

// GetPrms gets (an example of) parameters. The example set corresponds to
// water between the normal melting and boiling points.
func (o Antoine) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "a", V: 10.196},
			&dbf.P{N: "b", V: 1730.63},
			&dbf.P{N: "c", V: -39.724},
			&dbf.P{N: "tmin", V: 273.15},
			&dbf.P{N: "tmax", V: 373.15},
		}
	}
	return dbf.Params{
		&dbf.P{N: "a", V: o.a},
		&dbf.P{N: "b", V: o.b},
		&dbf.P{N: "c", V: o.c},
		&dbf.P{N: "tmin", V: o.tmin},
		&dbf.P{N: "tmax", V: o.tmax},
	}
}
