// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dim implements dimensional analysis: physical dimensions, units of
// measurement and quantities carrying their units
package dim

import "github.com/cpmech/gosl/io"

// Dimension represents a physical dimension as integer exponents of the five
// base dimensions used in process calculations
type Dimension struct {
	L int // length
	M int // mass
	T int // time
	K int // temperature
	N int // amount of substance
}

// base dimensions
var (
	Dimensionless = Dimension{}
	Length        = Dimension{L: 1}
	Mass          = Dimension{M: 1}
	Time          = Dimension{T: 1}
	Temperature   = Dimension{K: 1}
	Amount        = Dimension{N: 1}
)

// derived dimensions
var (
	Area           = Length.Pow(2)
	Volume         = Length.Pow(3)
	Velocity       = Length.Div(Time)
	Acceleration   = Velocity.Div(Time)
	Force          = Mass.Mul(Acceleration)
	Pressure       = Force.Div(Area)
	Energy         = Force.Mul(Length)
	Power          = Energy.Div(Time)
	Density        = Mass.Div(Volume)
	MolarMass      = Mass.Div(Amount)
	MolarVolume    = Volume.Div(Amount)
	MolarEnergy    = Energy.Div(Amount)
	MolarEntropy   = MolarEnergy.Div(Temperature)
	MolarFlow      = Amount.Div(Time)
	MassFlow       = Mass.Div(Time)
	VolumetricFlow = Volume.Div(Time)
)

// Mul returns the dimension of a product
func (o Dimension) Mul(b Dimension) Dimension {
	return Dimension{o.L + b.L, o.M + b.M, o.T + b.T, o.K + b.K, o.N + b.N}
}

// Div returns the dimension of a quotient
func (o Dimension) Div(b Dimension) Dimension {
	return Dimension{o.L - b.L, o.M - b.M, o.T - b.T, o.K - b.K, o.N - b.N}
}

// Pow returns the dimension raised to an integer power
func (o Dimension) Pow(n int) Dimension {
	return Dimension{o.L * n, o.M * n, o.T * n, o.K * n, o.N * n}
}

// Equal tells whether two dimensions have the same exponents
func (o Dimension) Equal(b Dimension) bool {
	return o == b
}

// IsDimensionless tells whether all exponents are zero
func (o Dimension) IsDimensionless() bool {
	return o == Dimension{}
}

// String returns a representation such as "M·L^-1·T^-2"
func (o Dimension) String() string {
	if o.IsDimensionless() {
		return "1"
	}
	l := ""
	for _, t := range []struct {
		sym string
		exp int
	}{{"M", o.M}, {"L", o.L}, {"T", o.T}, {"K", o.K}, {"N", o.N}} {
		if t.exp == 0 {
			continue
		}
		if l != "" {
			l += "·"
		}
		if t.exp == 1 {
			l += t.sym
		} else {
			l += io.Sf("%s^%d", t.sym, t.exp)
		}
	}
	return l
}
