// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/help-lazybones/simplejson"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, Unmarshal(&cfg, Defaults()))
	require.Equal(t, Config{
		Encoding: "utf-8",
		Strict:   true,
		MaxDepth: simplejson.DefaultMaxDepth,
		Numbers:  "float64",
	}, cfg)
}

func TestYAMLFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
encoding: latin-1
strict: false
max_depth: 5
numbers: decimal
`)
	var cfg Config
	require.NoError(t, Unmarshal(&cfg, Defaults(), YAMLFile(path)))
	require.Equal(t, Config{
		Encoding: "latin-1",
		Strict:   false,
		MaxDepth: 5,
		Numbers:  "decimal",
	}, cfg)

	// An empty file keeps the defaults.
	empty := writeFile(t, "empty.yaml", "")
	require.NoError(t, Unmarshal(&cfg, Defaults(), YAMLFile(empty)))
	require.True(t, cfg.Strict)

	// No path is not an error.
	require.NoError(t, Unmarshal(&cfg, Defaults(), YAMLFile("")))
}

func TestYAMLFileErrors(t *testing.T) {
	var cfg Config

	err := Unmarshal(&cfg, Defaults(), YAMLFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Contains(t, err.Error(), "sourcing: reading config file")

	unknown := writeFile(t, "unknown.yaml", "no_such_setting: true\n")
	err = Unmarshal(&cfg, Defaults(), YAMLFile(unknown))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no_such_setting")
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "strict: false\nmax_depth: 5\nordered: true\n")

	var f flagValues
	f.maxDepth = flagValue[int]{value: 9, set: true}
	f.encoding = flagValue[string]{value: "ignored"} // not given on the command line

	var cfg Config
	require.NoError(t, Unmarshal(&cfg, Defaults(), YAMLFile(path), Flags(&f)))
	require.Equal(t, "utf-8", cfg.Encoding)
	require.False(t, cfg.Strict)
	require.Equal(t, 9, cfg.MaxDepth)
	require.True(t, cfg.Ordered)
}

func TestConfigOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   string
		want any
	}{
		{
			name: "Defaults",
			cfg:  Config{Strict: true, Numbers: "float64"},
			in:   `{"a": [1, 1.5]}`,
			want: map[string]any{"a": []any{int64(1), 1.5}},
		},
		{
			name: "Literal",
			cfg:  Config{Strict: true, Numbers: "literal"},
			in:   `[1, 1.50]`,
			want: []any{simplejson.Number("1"), simplejson.Number("1.50")},
		},
		{
			name: "Fast",
			cfg:  Config{Strict: true, Numbers: "fast"},
			in:   `[2.25]`,
			want: []any{2.25},
		},
		{
			name: "Ordered",
			cfg:  Config{Strict: true, Ordered: true},
			in:   `{"b": 1, "a": 2}`,
			want: simplejson.Object{{Name: "b", Value: int64(1)}, {Name: "a", Value: int64(2)}},
		},
		{
			name: "NonStrict",
			cfg:  Config{Strict: false},
			in:   "\"a\tb\"",
			want: "a\tb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.Options()
			require.NoError(t, err)
			got, err := simplejson.Unmarshal(tt.in, opts...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConfigOptionsErrors(t *testing.T) {
	_, err := (&Config{Numbers: "roman"}).Options()
	require.EqualError(t, err, `unknown numbers mode "roman"`)

	opts, err := (&Config{Strict: true, UniqueNames: true, Ordered: true}).Options()
	require.NoError(t, err)
	_, err = simplejson.Unmarshal(`{"a": 1, "a": 2}`, opts...)
	require.ErrorIs(t, err, simplejson.HookFailed)

	opts, err = (&Config{Strict: true, RejectConstants: true}).Options()
	require.NoError(t, err)
	_, err = simplejson.Unmarshal(`NaN`, opts...)
	require.ErrorIs(t, err, simplejson.InvalidConstant)
}
