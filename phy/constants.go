// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phy defines physical constants, phase tags and the error kinds
// shared by all thermodynamic computations
package phy

// constants
const (
	R     = 8.314462 // universal gas constant [J/(mol·K)]
	RKmol = 8314.462 // universal gas constant [J/(kmol·K)]
	Patm  = 101325.0 // standard atmospheric pressure [Pa]
	Tstd  = 298.15   // standard reference temperature [K]
)
