// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	"fmt"
	"strings"
	"testing"
	"unsafe"
)

// sameString reports whether x and y share the same underlying bytes.
func sameString(x, y string) bool {
	return len(x) == len(y) && unsafe.StringData(x) == unsafe.StringData(y)
}

func TestNameTable(t *testing.T) {
	var names nameTable
	if names.len() != 0 {
		t.Fatalf("zero nameTable.len() = %d, want 0", names.len())
	}

	// Build each name from distinct memory so that only interning
	// can make them share storage.
	fresh := func(s string) string { return strings.Clone(s) }
	for _, name := range []string{"", "a", "id", "name", strings.Repeat("x", 256), strings.Repeat("y", 300)} {
		first := names.intern(fresh(name))
		second := names.intern(fresh(name))
		if first != name || second != name {
			t.Errorf("intern(%q) = (%q, %q)", name, first, second)
		}
		if len(name) > 0 && !sameString(first, second) {
			t.Errorf("intern(%q) returned distinct instances", name)
		}
	}
	if got := names.len(); got != 6 {
		t.Errorf("nameTable.len() = %d, want 6", got)
	}

	names.reset()
	if got := names.len(); got != 0 {
		t.Errorf("nameTable.len() after reset = %d, want 0", got)
	}
	if names.cache != nil && *names.cache != [256]string{} {
		t.Errorf("nameTable.cache not cleared by reset")
	}
}

func TestNameTableCollisions(t *testing.T) {
	// Far more names than cache slots force evictions; every lookup must
	// still resolve to the first instance seen.
	var names nameTable
	canonical := make(map[string]string)
	for round := 0; round < 2; round++ {
		for i := 0; i < 2000; i++ {
			name := fmt.Sprintf("name%04d", i)
			got := names.intern(name)
			if want, ok := canonical[name]; ok {
				if !sameString(got, want) {
					t.Fatalf("intern(%q) returned a non-canonical instance", name)
				}
			} else {
				canonical[name] = got
			}
		}
	}
	if got := names.len(); got != 2000 {
		t.Errorf("nameTable.len() = %d, want 2000", got)
	}
}

func TestNameTableRetention(t *testing.T) {
	var names nameTable
	for i := 0; i < maxRetainedNames+1; i++ {
		names.intern(fmt.Sprint(i))
	}
	names.reset()
	if names.names != nil {
		t.Errorf("reset retained a map of more than %d names", maxRetainedNames)
	}

	names.intern("small")
	names.reset()
	if names.names == nil {
		t.Errorf("reset discarded a small map")
	}
}

func TestScanOnceInterning(t *testing.T) {
	const in = `[{"key": 1, "other": 2}, {"key": 3}, {"other": 4}]`
	d := NewDecoder(WithObjectPairsHook(OrderedObjects))
	sc := new(scanner)
	sc.reset(d, in)
	if sc.names.len() != 0 {
		t.Fatalf("interning scope not empty before decoding")
	}

	v, end, err := d.scanOnce(sc, 0)
	if err != nil {
		t.Fatalf("scanOnce error: %v", err)
	}
	if end != len(in) {
		t.Errorf("scanOnce end = %d, want %d", end, len(in))
	}
	if sc.names.len() != 0 {
		t.Errorf("interning scope not empty after decoding: %d names", sc.names.len())
	}

	arr := v.([]any)
	k0 := arr[0].(Object)[0].Name
	k1 := arr[1].(Object)[0].Name
	o0 := arr[0].(Object)[1].Name
	o2 := arr[2].(Object)[0].Name
	if k0 != "key" || !sameString(k0, k1) {
		t.Errorf("equal names %q and %q do not share storage", k0, k1)
	}
	if o0 != "other" || !sameString(o0, o2) {
		t.Errorf("equal names %q and %q do not share storage", o0, o2)
	}

	// The scope is also cleared when decoding fails.
	sc.reset(d, `{"a": 1, "b": }`)
	if _, _, err := d.scanOnce(sc, 0); err == nil {
		t.Fatalf("scanOnce succeeded on malformed input")
	}
	if sc.names.len() != 0 {
		t.Errorf("interning scope not empty after a failed decode: %d names", sc.names.len())
	}
}
