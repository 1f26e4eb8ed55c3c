// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements analytical solutions used to verify the numerical
// solvers
package ana

import (
	"github.com/cpmech/gosl/chk"
)

// BinaryFlash computes the exact solution of the Rachford-Rice equation for
// a binary mixture. With only two components the residual
//
//   f(v) = z1·(K1-1)/(1+v·(K1-1)) + z2·(K2-1)/(1+v·(K2-1)) = 0
//
// reduces to a linear equation in v:
//
//   v = -(z1·α + z2·β)/(α·β)   with  α = K1-1,  β = K2-1  and  z2 = 1-z1
//
type BinaryFlash struct {
	K1 float64 // equilibrium ratio of component 1
	K2 float64 // equilibrium ratio of component 2
}

// VaporFraction returns the vapor fraction for a feed with mole fraction z1
// of component 1. The result is only physical when it falls within [0,1];
// values outside indicate a single phase feed.
func (o BinaryFlash) VaporFraction(z1 float64) float64 {
	alp := o.K1 - 1.0
	bet := o.K2 - 1.0
	if alp*bet == 0 {
		chk.Panic("BinaryFlash requires both K values different from one. K1=%g, K2=%g", o.K1, o.K2)
	}
	z2 := 1.0 - z1
	return -(z1*alp + z2*bet) / (alp * bet)
}

// Compositions returns the phase mole fractions for a feed z1 split at
// vapor fraction v
//  x[i] = z[i]/(1 + v·(K[i]-1))   y[i] = K[i]·x[i]
func (o BinaryFlash) Compositions(z1, v float64) (x1, x2, y1, y2 float64) {
	z2 := 1.0 - z1
	x1 = z1 / (1.0 + v*(o.K1-1.0))
	x2 = z2 / (1.0 + v*(o.K2-1.0))
	y1 = o.K1 * x1
	y2 = o.K2 * x2
	return
}
