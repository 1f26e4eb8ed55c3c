// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flash implements the isothermal flash calculation: the equilibrium
// split of a feed into vapor and liquid at fixed temperature and pressure
package flash

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/inp"
	"github.com/allena90/Plant-Simulator/phy"
	"github.com/allena90/Plant-Simulator/vle"
)

// Result holds the outcome of a flash calculation. For a feed that flashes
// into two phases both X and Y are set; an all-liquid feed has V=0 and Y nil
// and an all-vapor feed has V=1 and X nil.
type Result struct {
	T         float64   // temperature [K]
	P         float64   // pressure [Pa]
	V         float64   // vapor fraction on a mole basis
	X         []float64 // liquid phase mole fractions
	Y         []float64 // vapor phase mole fractions
	K         []float64 // equilibrium ratios
	Converged bool      // the residual met the tolerance
	It        int       // number of residual evaluations
}

// Solver solves the Rachford-Rice equation
//  f(v) = Σ z[i]·(K[i]-1)/(1 + v·(K[i]-1)) = 0
// by Newton iteration with the vapor fraction clamped to [0,1]
type Solver struct {
	NmaxIt int     // maximum number of iterations
	Tol    float64 // tolerance for the residual
	DfZero float64 // derivative magnitude treated as a stationary point
	ShowR  bool    // show residual values during iterations
}

// Init initialises the solver with default constants and optional overrides
func (o *Solver) Init(prms dbf.Params) (err error) {

	// constants
	o.NmaxIt = 100
	o.Tol = 1e-6
	o.DfZero = 1e-10

	// parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nmaxit":
			o.NmaxIt = int(p.V)
		case "tol":
			o.Tol = p.V
		case "dfzero":
			o.DfZero = p.V
		case "showr":
			o.ShowR = p.V > 0
		default:
			return chk.Err("flash: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.NmaxIt < 1 {
		return chk.Err("flash: NmaxIt = %d is invalid", o.NmaxIt)
	}
	if o.Tol <= 0 {
		return chk.Err("flash: Tol = %g is invalid", o.Tol)
	}
	if o.DfZero <= 0 {
		return chk.Err("flash: DfZero = %g is invalid", o.DfZero)
	}
	return
}

// GetPrms gets the default parameters
func (o Solver) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "nmaxit", V: 100},
		&dbf.P{N: "tol", V: 1e-6},
		&dbf.P{N: "dfzero", V: 1e-10},
	}
}

// Flash computes the equilibrium state of feed z at temperature T [K] and
// pressure P [Pa]. The feed fractions must sum to one.
func (o *Solver) Flash(comps []*inp.Component, z []float64, T, P float64) (res *Result, err error) {

	// check
	if len(comps) != len(z) {
		return nil, phy.InvalidInputErr("number of feed fractions (%d) must match number of components (%d)", len(z), len(comps))
	}
	err = vle.CheckComposition(z, 1e-6)
	if err != nil {
		return
	}

	// equilibrium ratios
	K, err := vle.KValues(comps, T, P)
	if err != nil {
		return
	}
	res = &Result{T: T, P: P, K: K}

	kmin, kmax := K[0], K[0]
	for _, k := range K {
		kmin = math.Min(kmin, k)
		kmax = math.Max(kmax, k)
	}

	// all liquid: nothing is volatile enough to boil
	if kmax <= 1.0 {
		res.V = 0
		res.X = make([]float64, len(z))
		copy(res.X, z)
		res.Converged = true
		return
	}

	// all vapor: nothing is heavy enough to condense
	if kmin >= 1.0 {
		res.V = 1
		res.Y = make([]float64, len(z))
		copy(res.Y, z)
		res.Converged = true
		return
	}

	// Newton iteration on the vapor fraction
	var f, dfdv float64
	v := 0.5
	var it int
	for it = 0; it < o.NmaxIt; it++ {
		f, dfdv = rachfordRice(z, K, v)
		if o.ShowR {
			io.Pfyel("it=%3d v=%23.15e f=%23.15e\n", it, v, f)
		}
		if math.Abs(f) < o.Tol {
			res.Converged = true
			break
		}
		if math.Abs(dfdv) < o.DfZero {
			break
		}
		v -= f / dfdv
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
	}
	res.V = v
	if it == o.NmaxIt {
		res.It = it
	} else {
		res.It = it + 1
	}

	// phase compositions
	//  x[i] = z[i]/(1 + v·(K[i]-1))   y[i] = K[i]·x[i]
	res.X = make([]float64, len(z))
	res.Y = make([]float64, len(z))
	for i := range z {
		res.X[i] = z[i] / (1.0 + v*(K[i]-1.0))
		res.Y[i] = K[i] * res.X[i]
	}
	return
}

// rachfordRice computes the Rachford-Rice residual and its derivative with
// respect to the vapor fraction
func rachfordRice(z, K []float64, v float64) (f, dfdv float64) {
	for i := range z {
		d := K[i] - 1.0
		den := 1.0 + v*d
		f += z[i] * d / den
		dfdv -= z[i] * d * d / (den * den)
	}
	return
}

// Isothermal performs a flash calculation with the default solver constants
func Isothermal(comps []*inp.Component, z []float64, T, P float64) (*Result, error) {
	var o Solver
	err := o.Init(nil)
	if err != nil {
		return nil, err
	}
	return o.Flash(comps, z, T, P)
}
