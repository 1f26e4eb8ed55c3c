// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phy

import "github.com/cpmech/gosl/io"

// InvalidInputError indicates input values outside the physical domain of an
// operation; e.g. non-positive temperatures or compositions that do not sum
// to one
type InvalidInputError struct {
	Msg string // message
}

// InvalidInputErr returns a new InvalidInputError with a formatted message
func InvalidInputErr(msg string, prm ...interface{}) *InvalidInputError {
	return &InvalidInputError{io.Sf(msg, prm...)}
}

// Error returns the message
func (o *InvalidInputError) Error() string { return o.Msg }

// MissingDataError indicates that a component record lacks the correlation
// data required by an operation
type MissingDataError struct {
	Component string // component name
	Prop      string // missing property; e.g. "vapor pressure"
}

// Error returns the message
func (o *MissingDataError) Error() string {
	return io.Sf("component %q has no %s data", o.Component, o.Prop)
}

// NoRootError indicates that an equation of state has no admissible volume
// root at the given conditions
type NoRootError struct {
	Model string  // model name
	T     float64 // temperature [K]
	P     float64 // pressure [Pa]
}

// Error returns the message
func (o *NoRootError) Error() string {
	return io.Sf("%s: no valid volume root at T=%g K and P=%g Pa", o.Model, o.T, o.P)
}
