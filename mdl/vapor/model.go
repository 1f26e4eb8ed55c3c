// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vapor implements models for the saturation pressure of pure
// substances as a function of temperature
package vapor

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for vapor pressure correlations
type Model interface {
	Init(prms dbf.Params) error      // initialises the correlation coefficients
	Sat(T float64) (float64, error)  // computes the saturation pressure [Pa] at T [K]
	InRange(T float64) bool          // tells whether T is inside the correlated range
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
}

// New returns a new vapor pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'vapor' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
