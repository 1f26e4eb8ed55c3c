// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"sort"

	"github.com/allena90/Plant-Simulator/phy"
)

// cubicRoots computes the real roots of
//  x³ + c2·x² + c1·x + c0 = 0
// using the closed form solution. Roots are returned in ascending order;
// repeated roots appear once.
func cubicRoots(c2, c1, c0 float64) (roots []float64) {

	// depressed cubic t³ + p·t + q = 0 with x = t - c2/3
	p := c1 - c2*c2/3.0
	q := 2.0*c2*c2*c2/27.0 - c2*c1/3.0 + c0
	Δ := q*q/4.0 + p*p*p/27.0
	shift := -c2 / 3.0

	switch {

	// one real root
	case Δ > 0:
		s := math.Sqrt(Δ)
		u := math.Cbrt(-q/2.0 + s)
		v := math.Cbrt(-q/2.0 - s)
		roots = []float64{u + v + shift}

	// three distinct real roots
	case Δ < 0:
		m := 2.0 * math.Sqrt(-p/3.0)
		arg := 3.0 * q / (2.0 * p) * math.Sqrt(-3.0/p)
		if arg < -1.0 {
			arg = -1.0
		}
		if arg > 1.0 {
			arg = 1.0
		}
		θ := math.Acos(arg)
		roots = []float64{
			m*math.Cos(θ/3.0) + shift,
			m*math.Cos((θ-2.0*math.Pi)/3.0) + shift,
			m*math.Cos((θ-4.0*math.Pi)/3.0) + shift,
		}

	// repeated roots
	default:
		if p == 0 {
			roots = []float64{shift}
		} else {
			roots = []float64{3.0*q/p + shift, -3.0*q/(2.0*p) + shift}
		}
	}

	sort.Float64s(roots)
	return
}

// selectRoot selects the admissible molar volume among the roots of a cubic
// equation of state. Roots not greater than the covolume b are discarded;
// the largest remaining root corresponds to the vapor phase and the smallest
// to the liquid phase. ok is false when no admissible root remains.
func selectRoot(roots []float64, b float64, ph phy.Phase) (v float64, ok bool) {
	for _, r := range roots {
		if r <= b {
			continue
		}
		if !ok {
			v, ok = r, true
			continue
		}
		if ph == phy.Vapor && r > v {
			v = r
		}
		if ph == phy.Liquid && r < v {
			v = r
		}
	}
	return
}
