// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/help-lazybones/simplejson"
)

// valueStats summarizes the shape of a decoded document.
type valueStats struct {
	Objects  int64
	Arrays   int64
	Strings  int64
	Numbers  int64
	Booleans int64
	Nulls    int64

	MaxDepth int
	Names    map[string]int64 // occurrences of each object name
}

func (s *valueStats) Values() int64 {
	return s.Objects + s.Arrays + s.Strings + s.Numbers + s.Booleans + s.Nulls
}

func collectStats(v any) *valueStats {
	s := &valueStats{Names: make(map[string]int64)}
	s.walk(v, 0)
	return s
}

func (s *valueStats) walk(v any, depth int) {
	switch v := v.(type) {
	case nil:
		s.Nulls++
	case bool:
		s.Booleans++
	case string:
		s.Strings++
	case []any:
		s.enter(depth)
		s.Arrays++
		for _, e := range v {
			s.walk(e, depth+1)
		}
	case map[string]any:
		s.enter(depth)
		s.Objects++
		for name, e := range v {
			s.Names[name]++
			s.walk(e, depth+1)
		}
	case simplejson.Object:
		s.enter(depth)
		s.Objects++
		for _, m := range v {
			s.Names[m.Name]++
			s.walk(m.Value, depth+1)
		}
	default:
		// Every other type is produced by a number or constant parser.
		s.Numbers++
	}
}

func (s *valueStats) enter(depth int) {
	s.MaxDepth = max(s.MaxDepth, depth+1)
}

// statsCommand prints stats for each file.
type statsCommand struct {
	env   *env
	files *[]string
}

func (cmd *statsCommand) run(*kingpin.ParseContext) error {
	for _, name := range *cmd.files {
		v, size, err := cmd.env.decodeFile(name)
		if err != nil {
			return errors.Wrap(err, name)
		}
		cmd.printStats(name, uint64(size), collectStats(v))
	}
	return nil
}

func (cmd *statsCommand) printStats(name string, size uint64, s *valueStats) {
	w := cmd.env.stdout
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "\tsize: %v, values: %s, max depth: %d\n",
		humanize.Bytes(size), humanize.Comma(s.Values()), s.MaxDepth)
	fmt.Fprintf(w, "\tobjects: %s, arrays: %s, strings: %s, numbers: %s, booleans: %s, nulls: %s\n",
		humanize.Comma(s.Objects), humanize.Comma(s.Arrays), humanize.Comma(s.Strings),
		humanize.Comma(s.Numbers), humanize.Comma(s.Booleans), humanize.Comma(s.Nulls))
	fmt.Fprintf(w, "\tdistinct names: %s\n", humanize.Comma(int64(len(s.Names))))
}

func addStatsCommand(app *kingpin.Application, e *env) {
	cmd := &statsCommand{env: e}
	stats := app.Command("stats", "Print stats for the decoded documents.").Action(cmd.run)
	cmd.files = stats.Arg("file", "The files to summarize.").Required().ExistingFiles()
}
