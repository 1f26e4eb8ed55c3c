// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/phy"
)

// Unit represents a unit of measurement tied to a physical dimension.
// Conversion to SI follows si = value·ToSI + Offset
type Unit struct {
	Name   string    // long name; e.g. "kilopascal"
	Symbol string    // short symbol; e.g. "kPa"
	Dim    Dimension // physical dimension
	ToSI   float64   // multiplicative factor to SI
	Offset float64   // additive offset to SI; nonzero for temperature scales only
}

// temperature units
var (
	Kelvin     = Unit{"kelvin", "K", Temperature, 1, 0}
	Celsius    = Unit{"celsius", "°C", Temperature, 1, 273.15}
	Fahrenheit = Unit{"fahrenheit", "°F", Temperature, 5.0 / 9.0, 273.15 - 160.0/9.0}
	Rankine    = Unit{"rankine", "°R", Temperature, 5.0 / 9.0, 0}
)

// pressure units
var (
	Pascal     = Unit{"pascal", "Pa", Pressure, 1, 0}
	Kilopascal = Unit{"kilopascal", "kPa", Pressure, 1e3, 0}
	Bar        = Unit{"bar", "bar", Pressure, 1e5, 0}
	Atm        = Unit{"standard atmosphere", "atm", Pressure, 101325, 0}
	Psi        = Unit{"pound per square inch", "psi", Pressure, 6894.757, 0}
	Torr       = Unit{"torr", "Torr", Pressure, 101325.0 / 760.0, 0}
)

// length, mass and time units
var (
	Meter      = Unit{"metre", "m", Length, 1, 0}
	Centimeter = Unit{"centimetre", "cm", Length, 0.01, 0}
	Foot       = Unit{"foot", "ft", Length, 0.3048, 0}
	Inch       = Unit{"inch", "in", Length, 0.0254, 0}
	Kilogram   = Unit{"kilogram", "kg", Mass, 1, 0}
	Gram       = Unit{"gram", "g", Mass, 1e-3, 0}
	Tonne      = Unit{"tonne", "t", Mass, 1e3, 0}
	Pound      = Unit{"pound", "lb", Mass, 0.45359237, 0}
	Second     = Unit{"second", "s", Time, 1, 0}
	Minute     = Unit{"minute", "min", Time, 60, 0}
	Hour       = Unit{"hour", "h", Time, 3600, 0}
)

// amount and volume units
var (
	Mol        = Unit{"mole", "mol", Amount, 1, 0}
	Kmol       = Unit{"kilomole", "kmol", Amount, 1e3, 0}
	CubicMeter = Unit{"cubic metre", "m³", Volume, 1, 0}
	Liter      = Unit{"litre", "L", Volume, 1e-3, 0}
	CubicFoot  = Unit{"cubic foot", "ft³", Volume, 0.0283168466, 0}
)

// energy and power units
var (
	Joule     = Unit{"joule", "J", Energy, 1, 0}
	Kilojoule = Unit{"kilojoule", "kJ", Energy, 1e3, 0}
	Calorie   = Unit{"calorie", "cal", Energy, 4.184, 0}
	Btu       = Unit{"british thermal unit", "BTU", Energy, 1055.056, 0}
	Watt      = Unit{"watt", "W", Power, 1, 0}
	Kilowatt  = Unit{"kilowatt", "kW", Power, 1e3, 0}
)

// flow and molar units
var (
	MolPerSec    = Unit{"mole per second", "mol/s", MolarFlow, 1, 0}
	KmolPerSec   = Unit{"kilomole per second", "kmol/s", MolarFlow, 1e3, 0}
	KmolPerHour  = Unit{"kilomole per hour", "kmol/h", MolarFlow, 1e3 / 3600.0, 0}
	KgPerSec     = Unit{"kilogram per second", "kg/s", MassFlow, 1, 0}
	KgPerHour    = Unit{"kilogram per hour", "kg/h", MassFlow, 1.0 / 3600.0, 0}
	M3PerHour    = Unit{"cubic metre per hour", "m³/h", VolumetricFlow, 1.0 / 3600.0, 0}
	KgPerKmol    = Unit{"kilogram per kilomole", "kg/kmol", MolarMass, 1e-3, 0}
	M3PerKmol    = Unit{"cubic metre per kilomole", "m³/kmol", MolarVolume, 1e-3, 0}
	KgPerM3      = Unit{"kilogram per cubic metre", "kg/m³", Density, 1, 0}
	JPerMol      = Unit{"joule per mole", "J/mol", MolarEnergy, 1, 0}
	JPerKmol     = Unit{"joule per kilomole", "J/kmol", MolarEnergy, 1e-3, 0}
	JPerKmolTemp = Unit{"joule per kilomole kelvin", "J/(kmol·K)", MolarEntropy, 1e-3, 0}
)

// bySymbol maps symbols to catalog units
var bySymbol = map[string]Unit{}

// register units
func init() {
	all := []Unit{
		Kelvin, Celsius, Fahrenheit, Rankine,
		Pascal, Kilopascal, Bar, Atm, Psi, Torr,
		Meter, Centimeter, Foot, Inch,
		Kilogram, Gram, Tonne, Pound,
		Second, Minute, Hour,
		Mol, Kmol, CubicMeter, Liter, CubicFoot,
		Joule, Kilojoule, Calorie, Btu, Watt, Kilowatt,
		MolPerSec, KmolPerSec, KmolPerHour, KgPerSec, KgPerHour, M3PerHour,
		KgPerKmol, M3PerKmol, KgPerM3, JPerMol, JPerKmol, JPerKmolTemp,
	}
	for _, u := range all {
		if _, ok := bySymbol[u.Symbol]; ok {
			chk.Panic("unit symbol %q is duplicated in 'dim' database", u.Symbol)
		}
		bySymbol[u.Symbol] = u
	}
}

// UnitBySymbol finds a unit in the catalog
func UnitBySymbol(symbol string) (Unit, error) {
	u, ok := bySymbol[symbol]
	if !ok {
		return Unit{}, chk.Err("unit %q is not available in 'dim' database", symbol)
	}
	return u, nil
}

// SI converts a value in this unit to SI
func (o Unit) SI(value float64) float64 {
	return value*o.ToSI + o.Offset
}

// FromSI converts an SI value to this unit
func (o Unit) FromSI(si float64) float64 {
	return (si - o.Offset) / o.ToSI
}

// Convert converts a value in this unit to another unit of the same dimension
func (o Unit) Convert(value float64, to Unit) (float64, error) {
	if !o.Dim.Equal(to.Dim) {
		return 0, phy.InvalidInputErr("cannot convert %q (%v) to %q (%v)", o.Symbol, o.Dim, to.Symbol, to.Dim)
	}
	return to.FromSI(o.SI(value)), nil
}

// String returns the unit symbol
func (o Unit) String() string { return o.Symbol }

// siUnit returns the coherent SI unit of a dimension
func siUnit(d Dimension) Unit {
	if d.IsDimensionless() {
		return Unit{"dimensionless", "-", d, 1, 0}
	}
	sym := ""
	for _, t := range []struct {
		s string
		e int
	}{{"kg", d.M}, {"m", d.L}, {"s", d.T}, {"K", d.K}, {"mol", d.N}} {
		if t.e == 0 {
			continue
		}
		if sym != "" {
			sym += "·"
		}
		if t.e == 1 {
			sym += t.s
		} else {
			sym += io.Sf("%s^%d", t.s, t.e)
		}
	}
	return Unit{"SI derived", sym, d, 1, 0}
}

// Quantity is a physical value paired with its unit
type Quantity struct {
	V float64 // value
	U Unit    // unit
}

// SI returns the value converted to SI
func (o Quantity) SI() float64 {
	return o.U.SI(o.V)
}

// To converts the quantity to another unit of the same dimension
func (o Quantity) To(u Unit) (Quantity, error) {
	v, err := o.U.Convert(o.V, u)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{v, u}, nil
}

// Add returns o + b expressed in o's unit
func (o Quantity) Add(b Quantity) (Quantity, error) {
	bv, err := b.To(o.U)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{o.V + bv.V, o.U}, nil
}

// Sub returns o - b expressed in o's unit
func (o Quantity) Sub(b Quantity) (Quantity, error) {
	bv, err := b.To(o.U)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{o.V - bv.V, o.U}, nil
}

// Mul returns o·b expressed in the coherent SI unit of the combined dimension
func (o Quantity) Mul(b Quantity) Quantity {
	return Quantity{o.SI() * b.SI(), siUnit(o.U.Dim.Mul(b.U.Dim))}
}

// Div returns o÷b expressed in the coherent SI unit of the combined dimension
func (o Quantity) Div(b Quantity) Quantity {
	return Quantity{o.SI() / b.SI(), siUnit(o.U.Dim.Div(b.U.Dim))}
}

// String returns a representation such as "1.2 bar"
func (o Quantity) String() string {
	return io.Sf("%g %s", o.V, o.U.Symbol)
}
