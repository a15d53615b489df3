// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/help-lazybones/simplejson"
)

// Config holds the decoder settings of the command.
// It can be read from a YAML file; command-line flags take precedence.
type Config struct {
	Encoding        string `yaml:"encoding"`
	Strict          bool   `yaml:"strict"`
	MaxDepth        int    `yaml:"max_depth"`
	Ordered         bool   `yaml:"ordered"`
	UniqueNames     bool   `yaml:"unique_names"`
	Numbers         string `yaml:"numbers"`
	RejectConstants bool   `yaml:"reject_constants"`
}

// Number modes accepted by Config.Numbers.
const (
	numbersFloat64 = "float64"
	numbersFast    = "fast"
	numbersDecimal = "decimal"
	numbersLiteral = "literal"
)

var numberModes = []string{numbersFloat64, numbersFast, numbersDecimal, numbersLiteral}

// Options translates the configuration into decoder options.
func (c *Config) Options() ([]simplejson.Options, error) {
	opts := []simplejson.Options{
		simplejson.WithEncoding(c.Encoding),
		simplejson.Strict(c.Strict),
		simplejson.MaxDepth(c.MaxDepth),
	}
	switch c.Numbers {
	case numbersFloat64, "":
	case numbersFast:
		opts = append(opts, simplejson.WithFloatParser(simplejson.FastFloats))
	case numbersDecimal:
		opts = append(opts, simplejson.WithFloatParser(simplejson.DecimalFloats))
	case numbersLiteral:
		opts = append(opts,
			simplejson.WithIntParser(simplejson.IntLiterals),
			simplejson.WithFloatParser(simplejson.FloatLiterals))
	default:
		return nil, errors.Errorf("unknown numbers mode %q", c.Numbers)
	}
	if c.RejectConstants {
		opts = append(opts, simplejson.WithConstantParser(simplejson.StrictConstants))
	}
	switch {
	case c.UniqueNames:
		opts = append(opts, simplejson.WithObjectPairsHook(simplejson.UniqueNames))
	case c.Ordered:
		opts = append(opts, simplejson.WithObjectPairsHook(simplejson.OrderedObjects))
	}
	return opts, nil
}

// Source is a generic configuration source. It may write any subset of the
// fields of dst, which also holds the values of all previous sources.
type Source func(dst *Config) error

// Unmarshal merges the values of the various configuration sources into dst.
func Unmarshal(dst *Config, sources ...Source) error {
	for _, source := range sources {
		if err := source(dst); err != nil {
			return errors.Wrap(err, "sourcing")
		}
	}
	return nil
}

// Defaults sets the settings of a decoder constructed without options.
func Defaults() Source {
	return func(dst *Config) error {
		*dst = Config{
			Encoding: "utf-8",
			Strict:   true,
			MaxDepth: simplejson.DefaultMaxDepth,
			Numbers:  numbersFloat64,
		}
		return nil
	}
}

// YAMLFile reads the configuration file at path, if path is not empty.
// Unknown fields are rejected.
func YAMLFile(path string) Source {
	return func(dst *Config) error {
		if path == "" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "reading config file")
		}
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(dst); err != nil && err != io.EOF {
			return errors.Wrapf(err, "parsing config file %s", path)
		}
		return nil
	}
}

// Flags applies the flags that were given on the command line.
func Flags(f *flagValues) Source {
	return func(dst *Config) error {
		if f.encoding.set {
			dst.Encoding = f.encoding.value
		}
		if f.strict.set {
			dst.Strict = f.strict.value
		}
		if f.maxDepth.set {
			dst.MaxDepth = f.maxDepth.value
		}
		if f.ordered.set {
			dst.Ordered = f.ordered.value
		}
		if f.uniqueNames.set {
			dst.UniqueNames = f.uniqueNames.value
		}
		if f.numbers.set {
			dst.Numbers = f.numbers.value
		}
		if f.rejectConstants.set {
			dst.RejectConstants = f.rejectConstants.value
		}
		return nil
	}
}
