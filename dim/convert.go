// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dim

// CtoK converts degrees Celsius to kelvin
func CtoK(c float64) float64 { return c + 273.15 }

// KtoC converts kelvin to degrees Celsius
func KtoC(k float64) float64 { return k - 273.15 }

// FtoK converts degrees Fahrenheit to kelvin
func FtoK(f float64) float64 { return (f-32.0)*5.0/9.0 + 273.15 }

// KtoF converts kelvin to degrees Fahrenheit
func KtoF(k float64) float64 { return (k-273.15)*9.0/5.0 + 32.0 }

// BarToPa converts bar to pascal
func BarToPa(bar float64) float64 { return bar * 1e5 }

// PaToBar converts pascal to bar
func PaToBar(pa float64) float64 { return pa * 1e-5 }

// AtmToPa converts standard atmospheres to pascal
func AtmToPa(atm float64) float64 { return atm * 101325.0 }

// PaToAtm converts pascal to standard atmospheres
func PaToAtm(pa float64) float64 { return pa / 101325.0 }

// PsiToPa converts pound per square inch to pascal
func PsiToPa(psi float64) float64 { return psi * 6894.757 }

// PaToPsi converts pascal to pound per square inch
func PaToPsi(pa float64) float64 { return pa / 6894.757 }

// KmolSToKmolH converts kilomole per second to kilomole per hour
func KmolSToKmolH(f float64) float64 { return f * 3600.0 }

// KmolHToKmolS converts kilomole per hour to kilomole per second
func KmolHToKmolS(f float64) float64 { return f / 3600.0 }
