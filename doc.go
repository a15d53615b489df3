// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplejson decodes JSON text into trees of generic Go values
// as specified in RFC 8259, with a few widely used extensions.
//
// # Terminology
//
// This package uses JSON terminology when discussing JSON, which may differ
// from related concepts in Go or elsewhere in computing literature.
//
//   - A JSON "object" refers to an unordered collection of name/value members;
//   - a JSON "array" refers to an ordered sequence of elements; and
//   - a JSON "value" refers to either a literal (i.e., null, false, or true),
//     string, number, object, or array.
//
// # Extensions
//
// The literals NaN, Infinity and -Infinity are accepted where a value is
// expected. They are converted by a ConstantParser, which may also reject
// them; see StrictConstants.
//
// With Strict(false), raw control characters are permitted inside strings.
// A byte-order mark before the first value is ignored.
//
// # Construction hooks
//
// The Go representation of numbers and objects is pluggable.
// An IntParser, FloatParser and ConstantParser convert literals, and
// either an ObjectHook or an ObjectPairsHook builds objects.
// An ObjectPairsHook sees every member in document order, duplicates
// included, which the OrderedObjects and UniqueNames hooks rely on.
//
// Within one decode call, all occurrences of an object name share
// a single string.
//
// # Errors
//
// Every error returned by this package matches Error according to
// errors.Is. Malformed input produces a *DecodeError that reports the
// ErrorKind and where the problem is, both as a byte offset and as a
// character offset with line and column. Messages quote the character
// offset. Decoding stops at the first error and no partial value is
// returned.
//
// String input must be UTF-8. Invalid bytes inside a string literal are
// reported as InvalidEncoding, as DecodeBytes reports them for raw input.
package simplejson
