// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/fun/dbf"

// GetWater returns an initialised record of water
func GetWater() (*Component, error) {
	c := &Component{
		Name:    "water",
		Formula: "H2O",
		CAS:     "7732-18-5",
		Phase:   "liquid",
		Descr:   "water (steam, H2O)",
		VapSat:  "antoine",
		EosName: "rk",
		Prms: dbf.Params{
			&dbf.P{N: "mw", V: 18.015, U: "kg/kmol"},
			&dbf.P{N: "Tc", V: 647.1, U: "K"},
			&dbf.P{N: "Pc", V: 22.064e6, U: "Pa"},
			&dbf.P{N: "Vc", V: 0.0559, U: "m³/kmol"},
			&dbf.P{N: "w", V: 0.345},
			&dbf.P{N: "Tb", V: 373.15, U: "K"},
			&dbf.P{N: "Tm", V: 273.15, U: "K"},
			&dbf.P{N: "hvap", V: 40660e3, U: "J/kmol"},
			&dbf.P{N: "cpa", V: 33363.0},
			&dbf.P{N: "cpb", V: 26.79},
			&dbf.P{N: "cpc", V: 0.008687},
			&dbf.P{N: "cpd", V: -8.8e-6},
		},
		SatPrms: dbf.Params{
			&dbf.P{N: "a", V: 10.196},
			&dbf.P{N: "b", V: 1730.63},
			&dbf.P{N: "c", V: -39.724},
			&dbf.P{N: "tmin", V: 273.15},
			&dbf.P{N: "tmax", V: 373.15},
		},
	}
	err := c.Init()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetMethane returns an initialised record of methane
func GetMethane() (*Component, error) {
	c := &Component{
		Name:    "methane",
		Formula: "CH4",
		CAS:     "74-82-8",
		Phase:   "gas",
		Descr:   "methane (natural gas main component)",
		VapSat:  "antoine",
		EosName: "rk",
		Prms: dbf.Params{
			&dbf.P{N: "mw", V: 16.043, U: "kg/kmol"},
			&dbf.P{N: "Tc", V: 190.6, U: "K"},
			&dbf.P{N: "Pc", V: 4.599e6, U: "Pa"},
			&dbf.P{N: "Vc", V: 0.0986, U: "m³/kmol"},
			&dbf.P{N: "w", V: 0.011},
			&dbf.P{N: "Tb", V: 111.65, U: "K"},
			&dbf.P{N: "Tm", V: 90.7, U: "K"},
			&dbf.P{N: "hvap", V: 8180e3, U: "J/kmol"},
			&dbf.P{N: "cpa", V: 19252.0},
			&dbf.P{N: "cpb", V: 52.1},
			&dbf.P{N: "cpc", V: 0.0},
			&dbf.P{N: "cpd", V: 0.0},
		},
		SatPrms: dbf.Params{
			&dbf.P{N: "a", V: 8.968},
			&dbf.P{N: "b", V: 897.84},
			&dbf.P{N: "c", V: -7.16},
			&dbf.P{N: "tmin", V: 91.0},
			&dbf.P{N: "tmax", V: 190.0},
		},
	}
	err := c.Init()
	if err != nil {
		return nil, err
	}
	return c, nil
}
