// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	jsonv1 "encoding/json"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func FuzzDecode(f *testing.F) {
	for _, in := range parityTestdata {
		f.Add(in)
	}
	for _, in := range []string{
		`[NaN, Infinity, -Infinity]`, `{"a": 1,}`, `"\ud83d\ude00"`, `"\ud83d"`,
		`01`, `1e`, "\ufeff[]", "[\"\u00e9\xff\"]", "[\"\t\"]", `[[[[[[[[]]]]]]]]`,
	} {
		f.Add(in)
	}
	for _, td := range benchTestdata {
		f.Add(string(td.data))
	}

	d := NewDecoder(MaxDepth(0))
	f.Fuzz(func(t *testing.T, s string) {
		v, err := d.Decode(s)
		if err != nil {
			var de *DecodeError
			if !errors.As(err, &de) || !errors.Is(err, Error) {
				t.Fatalf("Decode error %v is not a *DecodeError", err)
			}
			if de.Pos < 0 || de.Pos > len(s) {
				t.Fatalf("Decode error offset %d outside [0, %d]", de.Pos, len(s))
			}
			if de.Offset > de.Pos || de.Offset != utf8.RuneCountInString(s[:de.Pos]) {
				t.Fatalf("Decode error character offset %d does not match byte offset %d", de.Offset, de.Pos)
			}
			// encoding/json also accepts unpaired surrogates and invalid UTF-8.
			if jsonv1.Valid([]byte(s)) && de.Kind != InvalidSurrogatePair && de.Kind != InvalidEncoding {
				t.Fatalf("Decode rejected valid JSON %q: %v", s, err)
			}
			return
		}

		rv, end, err := d.RawDecode(s, 0)
		if err != nil {
			t.Fatalf("RawDecode error after Decode succeeded: %v", err)
		}
		if end <= 0 || end > len(s) {
			t.Fatalf("RawDecode end %d outside (0, %d]", end, len(s))
		}
		if diff := cmp.Diff(v, rv, cmpValues); diff != "" {
			t.Fatalf("Decode and RawDecode mismatch (-Decode +RawDecode):\n%s", diff)
		}
	})
}
