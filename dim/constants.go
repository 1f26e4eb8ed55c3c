// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dim

// CODATA reference constants
const (
	Avogadro     = 6.02214076e23 // Avogadro constant [1/mol]
	Boltzmann    = 1.380649e-23  // Boltzmann constant [J/K]
	StdGravity   = 9.80665       // standard acceleration of gravity [m/s²]
	SpeedOfLight = 299792458.0   // speed of light in vacuum [m/s]
)
