// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command simplejson validates and inspects JSON documents.
//
// Usage:
//
//	simplejson [flags] check FILE...
//	simplejson [flags] dump FILE
//	simplejson [flags] stats FILE...
//
// The check command exits with a non-zero status if any file fails to decode,
// reporting the line and column of the first problem in each file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/help-lazybones/simplejson"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flagValue[T any] struct {
	value T
	set   bool
}

// flagValues holds the global flags. Decoder settings record whether they
// were given so that they override the config file only when they were.
type flagValues struct {
	configFile string
	logLevel   string
	color      string

	encoding        flagValue[string]
	strict          flagValue[bool]
	maxDepth        flagValue[int]
	ordered         flagValue[bool]
	uniqueNames     flagValue[bool]
	numbers         flagValue[string]
	rejectConstants flagValue[bool]
}

func (f *flagValues) register(app *kingpin.Application) {
	app.Flag("config.file", "YAML file with decoder settings.").StringVar(&f.configFile)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&f.logLevel, "debug", "info", "warn", "error")
	app.Flag("color", "Colorize the output.").Default("auto").EnumVar(&f.color, "auto", "always", "never")

	app.Flag("encoding", "Text encoding of the input files.").IsSetByUser(&f.encoding.set).StringVar(&f.encoding.value)
	app.Flag("strict", "Reject raw control characters inside strings.").IsSetByUser(&f.strict.set).BoolVar(&f.strict.value)
	app.Flag("max-depth", "Maximum nesting of objects and arrays, 0 for no limit.").IsSetByUser(&f.maxDepth.set).IntVar(&f.maxDepth.value)
	app.Flag("ordered", "Keep object members in document order.").IsSetByUser(&f.ordered.set).BoolVar(&f.ordered.value)
	app.Flag("unique-names", "Reject objects with duplicate names.").IsSetByUser(&f.uniqueNames.set).BoolVar(&f.uniqueNames.value)
	app.Flag("numbers", "How to decode numbers: float64, fast, decimal or literal.").IsSetByUser(&f.numbers.set).EnumVar(&f.numbers.value, numberModes...)
	app.Flag("reject-constants", "Reject NaN, Infinity and -Infinity.").IsSetByUser(&f.rejectConstants.set).BoolVar(&f.rejectConstants.value)
}

// env is shared by all commands. It is populated once the flags are parsed.
type env struct {
	flags  flagValues
	stdout io.Writer
	stderr io.Writer

	logger  log.Logger
	decoder *simplejson.Decoder
}

func (e *env) setup(*kingpin.ParseContext) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(e.stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	e.logger = level.NewFilter(logger, levelOption(e.flags.logLevel))

	switch e.flags.color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	var cfg Config
	if err := Unmarshal(&cfg, Defaults(), YAMLFile(e.flags.configFile), Flags(&e.flags)); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	e.decoder = simplejson.NewDecoder(opts...)
	level.Debug(e.logger).Log("msg", "decoder configured", "encoding", cfg.Encoding, "strict", cfg.Strict,
		"max_depth", cfg.MaxDepth, "numbers", cfg.Numbers, "ordered", cfg.Ordered, "unique_names", cfg.UniqueNames)
	return nil
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// decodeFile reads and decodes the named file.
func (e *env) decodeFile(name string) (any, int, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, 0, err
	}
	v, err := e.decoder.DecodeBytes(b)
	return v, len(b), err
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("simplejson", "Validate and inspect JSON documents.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(nil)

	e := &env{stdout: stdout, stderr: stderr}
	e.flags.register(app)
	app.PreAction(e.setup)

	addCheckCommand(app, e)
	addDumpCommand(app, e)
	addStatsCommand(app, e)

	if _, err := app.Parse(args); err != nil {
		if e.logger != nil {
			level.Error(e.logger).Log("msg", "command failed", "err", err)
		} else {
			fmt.Fprintf(stderr, "simplejson: %v\n", err)
		}
		return 1
	}
	return 0
}
