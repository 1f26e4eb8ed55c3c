// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// CompDb implements a database of chemical components
type CompDb struct {

	// input
	Components []*Component `json:"components"` // all components
}

// ReadCmp reads a component database from a .cmp JSON file
func ReadCmp(dir, fn string) (cdb *CompDb, err error) {

	// new database
	cdb = new(CompDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, cdb)
	if err != nil {
		return
	}

	// initialise components
	for _, c := range cdb.Components {
		err = c.Init()
		if err != nil {
			return
		}
	}
	return
}

// Get returns a component
//  Note: returns nil if not found
func (o CompDb) Get(name string) *Component {
	for _, c := range o.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// prmString prints one parameter
func prmString(p *dbf.P) string {
	if p.U != "" {
		return io.Sf("{\"n\":%q, \"v\":%v, \"u\":%q}", p.N, p.V, p.U)
	}
	return io.Sf("{\"n\":%q, \"v\":%v}", p.N, p.V)
}

// prmsString prints a list of parameters
func prmsString(prms dbf.Params, indent string) string {
	l := ""
	for i, p := range prms {
		if i > 0 {
			l += ",\n"
		}
		l += indent + prmString(p)
	}
	return l
}

// String prints one component
func (o *Component) String() string {
	l := io.Sf("    {\n      \"name\"    : %q,\n      \"formula\" : %q,\n      \"cas\"     : %q,\n      \"phase\"   : %q,\n      \"descr\"   : %q,\n      \"vapsat\"  : %q,\n      \"eos\"     : %q,\n", o.Name, o.Formula, o.CAS, o.Phase, o.Descr, o.VapSat, o.EosName)
	l += "      \"prms\" : [\n" + prmsString(o.Prms, "        ") + "\n      ],\n"
	l += "      \"satprms\" : [\n" + prmsString(o.SatPrms, "        ") + "\n      ]\n    }"
	return l
}

// String outputs the database in the .cmp JSON format
func (o CompDb) String() string {
	l := "{\n  \"components\" : [\n"
	for i, c := range o.Components {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", c)
	}
	l += "\n  ]\n}"
	return l
}
