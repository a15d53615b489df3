// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// dumpConfig prints decoded values deterministically.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// dumpCommand prints the Go value decoded from a file.
type dumpCommand struct {
	env  *env
	file *string
}

func (cmd *dumpCommand) run(*kingpin.ParseContext) error {
	v, _, err := cmd.env.decodeFile(*cmd.file)
	if err != nil {
		return errors.Wrap(err, *cmd.file)
	}
	dumpConfig.Fdump(cmd.env.stdout, v)
	return nil
}

func addDumpCommand(app *kingpin.Application, e *env) {
	cmd := &dumpCommand{env: e}
	dump := app.Command("dump", "Print the decoded Go value of a file.").Action(cmd.run)
	cmd.file = dump.Arg("file", "The file to print.").Required().ExistingFile()
}
