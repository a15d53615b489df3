// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	"strconv"

	"github.com/help-lazybones/simplejson/internal/jsonwire"
)

const (
	msgExpectingValue    = "Expecting value"
	msgExpectingName     = "Expecting property name enclosed in double quotes"
	msgExpectingColon    = "Expecting ':' delimiter"
	msgExpectingComma    = "Expecting ',' delimiter"
	msgUnterminated      = "Unterminated string starting at"
	msgInvalidUnicode    = `Invalid \uXXXX escape sequence`
	msgInvalidSurrogates = `Invalid \uXXXX\uXXXX surrogate pair`
)

// scanner holds the state of a single decode call over one document.
// It is not safe for concurrent use; every call owns its own scanner.
type scanner struct {
	d     *Decoder
	s     string
	depth int
	names nameTable
}

// reset prepares sc for decoding s with the options of d.
func (sc *scanner) reset(d *Decoder, s string) {
	sc.d = d
	sc.s = s
	sc.depth = 0
	sc.names.reset()
}

// scanValue is the token dispatcher. It decodes the value starting at
// offset i and returns it along with the offset just past it.
//
// If no value starts at i, including at the end of the text, it reports
// found as false with a nil error, leaving it to the caller to decide
// which error describes the situation.
func (sc *scanner) scanValue(i int) (val any, end int, found bool, err error) {
	s := sc.s
	if i >= len(s) {
		return nil, i, false, nil
	}
	switch s[i] {
	case '"':
		val, end, err = sc.scanString(i)
		return val, end, true, err
	case '{':
		if err := sc.enter(i); err != nil {
			return nil, i, true, err
		}
		val, end, err = sc.scanObject(i)
		sc.depth--
		return val, end, true, err
	case '[':
		if err := sc.enter(i); err != nil {
			return nil, i, true, err
		}
		val, end, err = sc.scanArray(i)
		sc.depth--
		return val, end, true, err
	case 'n':
		if jsonwire.HasLiteral(s, i, "null") {
			return nil, i + len("null"), true, nil
		}
	case 't':
		if jsonwire.HasLiteral(s, i, "true") {
			return true, i + len("true"), true, nil
		}
	case 'f':
		if jsonwire.HasLiteral(s, i, "false") {
			return false, i + len("false"), true, nil
		}
	case 'N':
		if jsonwire.HasLiteral(s, i, "NaN") {
			return sc.scanConstant(i, "NaN")
		}
	case 'I':
		if jsonwire.HasLiteral(s, i, "Infinity") {
			return sc.scanConstant(i, "Infinity")
		}
	case '-':
		if jsonwire.HasLiteral(s, i, "-Infinity") {
			return sc.scanConstant(i, "-Infinity")
		}
	}
	return sc.scanNumber(i)
}

// enter records one more level of nesting for the delimiter at offset i.
func (sc *scanner) enter(i int) error {
	if max := sc.d.opts.maxDepth; max > 0 && sc.depth >= max {
		return newDecodeError(MaxDepthExceeded, "Exceeded maximum nesting depth of "+strconv.Itoa(max), sc.s, i)
	}
	sc.depth++
	return nil
}

func (sc *scanner) scanConstant(i int, name string) (any, int, bool, error) {
	v, err := sc.d.opts.constants.ParseConstant(name)
	if err != nil {
		return nil, i, true, wrapDecodeError(InvalidConstant, "Invalid constant "+name, sc.s, i, err)
	}
	return v, i + len(name), true, nil
}

// scanNumber is the number tokenizer. Conversion of the matched literal
// is delegated to the configured IntParser or FloatParser.
func (sc *scanner) scanNumber(i int) (any, int, bool, error) {
	end, isFloat, ok := jsonwire.ScanNumber(sc.s, i)
	if !ok {
		return nil, i, false, nil
	}
	lit := sc.s[i:end]
	var v any
	var err error
	if isFloat {
		v, err = sc.d.opts.floats.ParseFloat(lit)
	} else {
		v, err = sc.d.opts.ints.ParseInt(lit)
	}
	if err != nil {
		return nil, i, true, wrapDecodeError(InvalidNumber, "Invalid number "+strconv.Quote(lit), sc.s, i, err)
	}
	return v, end, true, nil
}

// scanObject is the object assembler for the '{' at offset open.
func (sc *scanner) scanObject(open int) (any, int, error) {
	s := sc.s
	obj := sc.d.newObject()

	c, i := jsonwire.SkipWhitespace(s, open+1)
	if c == '}' {
		return sc.finishObject(obj, open, i+1)
	}
	if c != '"' {
		return nil, i, newDecodeError(ExpectingPropertyName, msgExpectingName, s, i)
	}
	for {
		name, n, err := sc.scanString(i)
		if err != nil {
			return nil, n, err
		}
		name = sc.names.intern(name)

		if c, i = jsonwire.SkipWhitespace(s, n); c != ':' {
			return nil, i, newDecodeError(ExpectingDelimiter, msgExpectingColon, s, i)
		}
		_, i = jsonwire.SkipWhitespace(s, i+1)

		val, n, found, err := sc.scanValue(i)
		if err != nil {
			return nil, n, err
		}
		if !found {
			return nil, i, newDecodeError(ExpectingValue, msgExpectingValue, s, i)
		}
		obj.add(name, val)

		switch c, i = jsonwire.SkipWhitespace(s, n); c {
		case '}':
			return sc.finishObject(obj, open, i+1)
		case ',':
		default:
			return nil, i, newDecodeError(ExpectingDelimiter, msgExpectingComma, s, i)
		}
		if c, i = jsonwire.SkipWhitespace(s, i+1); c != '"' {
			return nil, i, newDecodeError(ExpectingPropertyName, msgExpectingName, s, i)
		}
	}
}

func (sc *scanner) finishObject(obj objectBuilder, open, end int) (any, int, error) {
	v, err := obj.finish()
	if err != nil {
		return nil, open, wrapDecodeError(HookFailed, "Object hook failed", sc.s, open, err)
	}
	return v, end, nil
}

// scanArray is the array assembler for the '[' at offset open.
func (sc *scanner) scanArray(open int) (any, int, error) {
	s := sc.s
	arr := []any{}

	c, i := jsonwire.SkipWhitespace(s, open+1)
	if c == ']' {
		return arr, i + 1, nil
	}
	for {
		val, n, found, err := sc.scanValue(i)
		if err != nil {
			return nil, n, err
		}
		if !found {
			return nil, i, newDecodeError(ExpectingObjectOrArrayElement, msgExpectingValue, s, i)
		}
		arr = append(arr, val)

		switch c, i = jsonwire.SkipWhitespace(s, n); c {
		case ']':
			return arr, i + 1, nil
		case ',':
		default:
			return nil, i, newDecodeError(ExpectingDelimiter, msgExpectingComma, s, i)
		}
		_, i = jsonwire.SkipWhitespace(s, i+1)
	}
}
