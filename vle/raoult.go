// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vle implements vapor-liquid equilibrium relations built from
// Raoult's law: equilibrium ratios and bubble and dew point pressures
package vle

import (
	"math"

	"github.com/allena90/Plant-Simulator/inp"
	"github.com/allena90/Plant-Simulator/phy"
)

// CheckComposition verifies that mole fractions are non-negative and sum to
// one within tol
func CheckComposition(fracs []float64, tol float64) error {
	if len(fracs) == 0 {
		return phy.InvalidInputErr("at least one mole fraction is required")
	}
	sum := 0.0
	for i, f := range fracs {
		if f < 0 {
			return phy.InvalidInputErr("mole fraction %d cannot be negative. x=%g is invalid", i, f)
		}
		sum += f
	}
	if math.Abs(sum-1.0) > tol {
		return phy.InvalidInputErr("mole fractions must sum to one. sum=%g is invalid", sum)
	}
	return nil
}

// KValues computes the Raoult's law equilibrium ratios at T [K] and P [Pa]
//  K[i] = psat[i]/P
// Components without vapor pressure data make the call fail with
// MissingDataError.
func KValues(comps []*inp.Component, T, P float64) (K []float64, err error) {
	if len(comps) == 0 {
		return nil, phy.InvalidInputErr("at least one component is required")
	}
	if T <= 0 || P <= 0 {
		return nil, phy.InvalidInputErr("temperature and pressure must be positive. T=%g K, P=%g Pa are invalid", T, P)
	}
	K = make([]float64, len(comps))
	for i, c := range comps {
		psat, e := c.SatPressure(T)
		if e != nil {
			return nil, e
		}
		K[i] = psat / P
	}
	return
}

// BubblePressure computes the bubble point pressure [Pa] of a liquid with
// mole fractions x at temperature T [K]
//  pbubble = Σ x[i]·psat[i]
func BubblePressure(comps []*inp.Component, x []float64, T float64) (pbubble float64, err error) {
	if len(comps) != len(x) {
		return 0, phy.InvalidInputErr("number of mole fractions (%d) must match number of components (%d)", len(x), len(comps))
	}
	if T <= 0 {
		return 0, phy.InvalidInputErr("temperature must be positive. T=%g K is invalid", T)
	}
	err = CheckComposition(x, 1e-6)
	if err != nil {
		return
	}
	for i, c := range comps {
		psat, e := c.SatPressure(T)
		if e != nil {
			return 0, e
		}
		pbubble += x[i] * psat
	}
	return
}

// DewPressure computes the dew point pressure [Pa] of a vapor with mole
// fractions y at temperature T [K]
//  pdew = 1 / Σ y[i]/psat[i]
func DewPressure(comps []*inp.Component, y []float64, T float64) (pdew float64, err error) {
	if len(comps) != len(y) {
		return 0, phy.InvalidInputErr("number of mole fractions (%d) must match number of components (%d)", len(y), len(comps))
	}
	if T <= 0 {
		return 0, phy.InvalidInputErr("temperature must be positive. T=%g K is invalid", T)
	}
	err = CheckComposition(y, 1e-6)
	if err != nil {
		return
	}
	sum := 0.0
	for i, c := range comps {
		psat, e := c.SatPressure(T)
		if e != nil {
			return 0, e
		}
		if psat > 0 {
			sum += y[i] / psat
		}
	}
	if sum > 0 {
		pdew = 1.0 / sum
	}
	return
}
