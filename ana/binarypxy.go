// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// BinaryPxy computes the isothermal phase envelope of an ideal binary
// mixture obeying Raoult's law. Both saturation pressures are taken at the
// same fixed temperature.
type BinaryPxy struct {
	PsatA float64 // saturation pressure of component A [Pa]
	PsatB float64 // saturation pressure of component B [Pa]
}

// Bubble returns the bubble point pressure [Pa] for a liquid with mole
// fraction x1 of component A. For an ideal mixture this is a straight line
// between PsatB and PsatA.
func (o BinaryPxy) Bubble(x1 float64) float64 {
	return x1*o.PsatA + (1.0-x1)*o.PsatB
}

// Dew returns the dew point pressure [Pa] for a vapor with mole fraction y1
// of component A
func (o BinaryPxy) Dew(y1 float64) float64 {
	if o.PsatA <= 0 || o.PsatB <= 0 {
		chk.Panic("BinaryPxy requires positive saturation pressures. PsatA=%g, PsatB=%g", o.PsatA, o.PsatB)
	}
	return 1.0 / (y1/o.PsatA + (1.0-y1)/o.PsatB)
}

// Plot draws the Pxy diagram with np points
func (o BinaryPxy) Plot(dirout, fnkey string, np int) {
	X := utl.LinSpace(0, 1, np)
	Pb := make([]float64, np)
	Pd := make([]float64, np)
	for i, x := range X {
		Pb[i] = o.Bubble(x)
		Pd[i] = o.Dew(x)
	}
	plt.Plot(X, Pb, &plt.A{C: "b", Ls: "-", L: "bubble"})
	plt.Plot(X, Pd, &plt.A{C: "r", Ls: "--", L: "dew"})
	plt.Gll("$x_1,\\;y_1$", "$P$", nil)
	plt.Save(dirout, fnkey)
}
