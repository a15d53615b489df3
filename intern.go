// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import "github.com/cespare/xxhash/v2"

// nameTable interns object names for the duration of one decode call,
// so that every occurrence of a name within a document shares
// a single string. It must be reset before it is used for another call.
//
// Lookups first consult a small direct-mapped cache of recent names
// and fall back to a map that holds every canonical name.
type nameTable struct {
	cache *[256]string // 256*unsafe.Sizeof(string("")) => 4KiB
	names map[string]string
}

const (
	minCachedLen = 2   // shorter names are cheap to look up in the map
	maxCachedLen = 256 // large enough for UUIDs, IPv6 addresses, SHA-256 checksums, etc.

	// maxRetainedNames bounds the map kept across pooled reuse.
	maxRetainedNames = 1 << 12
)

// intern returns the canonical instance of name.
func (t *nameTable) intern(name string) string {
	cacheable := len(name) >= minCachedLen && len(name) <= maxCachedLen
	var i uint64
	if cacheable {
		if t.cache == nil {
			t.cache = new([256]string)
		}
		i = xxhash.Sum64String(name) % uint64(len(t.cache))
		if s := t.cache[i]; s == name {
			return s
		}
	}

	if t.names == nil {
		t.names = make(map[string]string)
	}
	s, ok := t.names[name]
	if !ok {
		s = name
		t.names[s] = s
	}
	if cacheable {
		t.cache[i] = s
	}
	return s
}

// len reports the number of distinct names interned since the last reset.
func (t *nameTable) len() int {
	return len(t.names)
}

// reset forgets every interned name.
func (t *nameTable) reset() {
	if t.cache != nil {
		*t.cache = [256]string{}
	}
	if len(t.names) > maxRetainedNames {
		t.names = nil
		return
	}
	clear(t.names)
}
