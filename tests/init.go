// Copyright 2025 The Plant-Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/allena90/Plant-Simulator/inp"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Comps resolves component names in a database
func Comps(tst *testing.T, cdb *inp.CompDb, names []string) (comps []*inp.Component) {
	comps = make([]*inp.Component, len(names))
	for i, name := range names {
		comps[i] = cdb.Get(name)
		if comps[i] == nil {
			tst.Errorf("cannot find component %q\n", name)
			return nil
		}
	}
	return
}
