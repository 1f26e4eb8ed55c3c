// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phy

import "strings"

// Phase selects which fluid phase a property refers to
type Phase int

// phases
const (
	Liquid Phase = iota // liquid phase
	Vapor               // vapor phase
)

// String returns the phase name
func (o Phase) String() string {
	if o == Liquid {
		return "liquid"
	}
	return "vapor"
}

// ParsePhase converts a phase name into a Phase tag
func ParsePhase(name string) (Phase, error) {
	switch strings.ToLower(name) {
	case "liquid":
		return Liquid, nil
	case "vapor", "vapour", "gas":
		return Vapor, nil
	}
	return Liquid, InvalidInputErr("unknown phase name. name=%q is invalid", name)
}
