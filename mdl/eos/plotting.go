// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotIsotherms plots pressure versus molar volume isotherms of a model.
// The model must implement the PVT interface. np points are computed for
// each temperature in Tvals, with V ranging from vmin to vmax [m³/kmol].
func PlotIsotherms(mdl Model, Tvals []float64, vmin, vmax float64, np int, dirout, fnkey string) (err error) {
	pvt, ok := mdl.(PVT)
	if !ok {
		return chk.Err("model %q cannot compute pressure from molar volume", mdl.Name())
	}
	V := utl.LinSpace(vmin, vmax, np)
	P := make([]float64, np)
	plt.Reset(false, nil)
	for _, T := range Tvals {
		for i, v := range V {
			P[i], err = pvt.Pressure(T, v)
			if err != nil {
				return
			}
		}
		plt.Plot(V, P, &plt.A{L: io.Sf("T=%g K", T)})
	}
	plt.Gll("$V$ [m³/kmol]", "$P$ [Pa]", nil)
	plt.Save(dirout, fnkey)
	return
}
