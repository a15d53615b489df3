// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// checkCommand validates every file and reports the first error in each.
type checkCommand struct {
	env   *env
	files *[]string
}

func (cmd *checkCommand) run(*kingpin.ParseContext) error {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)

	var failed int
	for _, name := range *cmd.files {
		if _, _, err := cmd.env.decodeFile(name); err != nil {
			failed++
			fail.Fprint(cmd.env.stdout, "FAIL")
			fmt.Fprintf(cmd.env.stdout, " %s: %v\n", name, err)
			level.Debug(cmd.env.logger).Log("msg", "file failed to decode", "file", name, "err", err)
			continue
		}
		ok.Fprint(cmd.env.stdout, "ok")
		fmt.Fprintf(cmd.env.stdout, "   %s\n", name)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files are not valid JSON", failed, len(*cmd.files))
	}
	return nil
}

func addCheckCommand(app *kingpin.Application, e *env) {
	cmd := &checkCommand{env: e}
	check := app.Command("check", "Check that files contain exactly one valid JSON document.").Action(cmd.run)
	cmd.files = check.Arg("file", "The files to check.").Required().ExistingFiles()
}
