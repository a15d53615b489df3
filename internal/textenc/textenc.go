// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textenc converts raw JSON bytes in a named text encoding
// into UTF-8 text, once, before any scanning happens.
package textenc

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding assumed when none is named.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding is returned by Lookup for names that neither the
// IANA registry nor the WHATWG encoding standard know about.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// InvalidUTF8Error reports the first byte offset at which
// input declared as UTF-8 stops being valid.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return "invalid UTF-8 at byte offset " + strconv.Itoa(e.Offset)
}

// Lookup resolves an encoding name such as "utf-8", "latin-1" or
// "windows-1252". An empty name selects DefaultEncoding.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}
	if isUTF8(name) {
		return unicode.UTF8, nil
	}
	// Spellings such as "latin-1" that are not registered names are retried
	// with the separators removed.
	for _, n := range []string{name, separators.Replace(name)} {
		if enc, err := ianaindex.IANA.Encoding(n); err == nil && enc != nil {
			return enc, nil
		}
		if enc, err := htmlindex.Get(n); err == nil {
			return enc, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
}

// Decode returns b converted from the named encoding to UTF-8 text.
//
// Input that is entirely ASCII is returned unchanged for every
// ASCII-compatible encoding. UTF-8 input is validated rather than
// transformed and an *InvalidUTF8Error is returned for malformed bytes.
func Decode(name string, b []byte) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if isASCII(b) && asciiCompatible(enc) {
		return string(b), nil
	}
	if enc == unicode.UTF8 {
		if n := invalidUTF8Offset(b); n >= 0 {
			return "", &InvalidUTF8Error{Offset: n}
		}
		return string(b), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return "", errors.Wrapf(err, "decoding %s", name)
	}
	return string(out), nil
}

var separators = strings.NewReplacer("-", "", "_", "")

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "u8":
		return true
	}
	return false
}

// asciiCompatible reports whether enc maps the ASCII range onto itself,
// which excludes the UTF-16 and UTF-32 families.
func asciiCompatible(enc encoding.Encoding) bool {
	out, err := enc.NewDecoder().Bytes([]byte(`{"a":[1]}`))
	return err == nil && string(out) == `{"a":[1]}`
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func invalidUTF8Offset(b []byte) int {
	for n := 0; n < len(b); {
		if b[n] < utf8.RuneSelf {
			n++
			continue
		}
		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size == 1 {
			return n
		}
		n += size
	}
	return -1
}
