// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const errorPrefix = "simplejson: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("simplejson error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// ErrorKind classifies the way in which a document failed to decode.
// Every ErrorKind is itself an error so that it can be used as the
// target of errors.Is:
//
//	if errors.Is(err, simplejson.UnterminatedString) { ... }
type ErrorKind uint8

const (
	_ ErrorKind = iota

	UnterminatedString            // end of input before the closing quote
	InvalidControlCharacter       // raw control character in a strict string
	InvalidEscape                 // backslash followed by an unknown character
	InvalidUnicodeEscape          // \u not followed by four hex digits
	InvalidSurrogatePair          // high surrogate without a valid low surrogate
	ExpectingPropertyName         // object member does not start with a string
	ExpectingDelimiter            // missing ':' or ','
	ExpectingValue                // no value where a document or member value must start
	ExpectingObjectOrArrayElement // no value where an array element must start
	ExtraData                     // non-whitespace after a complete document
	MaxDepthExceeded              // objects and arrays nested too deeply
	InvalidNumber                 // number literal rejected by the IntParser or FloatParser
	InvalidConstant               // NaN or Infinity rejected by the ConstantParser
	HookFailed                    // ObjectHook or ObjectPairsHook returned an error
	InvalidEncoding               // raw bytes could not be decoded to text
)

var kindNames = [...]string{
	UnterminatedString:            "unterminated string",
	InvalidControlCharacter:       "invalid control character",
	InvalidEscape:                 "invalid escape",
	InvalidUnicodeEscape:          "invalid unicode escape",
	InvalidSurrogatePair:          "invalid surrogate pair",
	ExpectingPropertyName:         "expecting property name",
	ExpectingDelimiter:            "expecting delimiter",
	ExpectingValue:                "expecting value",
	ExpectingObjectOrArrayElement: "expecting object or array element",
	ExtraData:                     "extra data",
	MaxDepthExceeded:              "maximum depth exceeded",
	InvalidNumber:                 "invalid number",
	InvalidConstant:               "invalid constant",
	HookFailed:                    "object hook failed",
	InvalidEncoding:               "invalid encoding",
}

// String prints the kind in a humanly readable fashion.
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

func (k ErrorKind) Error() string        { return errorPrefix + k.String() }
func (k ErrorKind) Is(target error) bool { return k == target || target == Error }

// DecodeError describes why and where a document failed to decode.
//
// Pos and End are byte offsets into Doc, suitable for slicing it.
// Offset and EndOffset are the same positions counted in characters,
// as are the one-based Line and Column. The End fields are only
// meaningful for ExtraData errors, which span from the first unexpected
// character to the end of the document; they are zero otherwise.
type DecodeError struct {
	Kind   ErrorKind
	Msg    string // message without position information
	Doc    string // the document being decoded
	Pos    int
	Offset int

	Line   int
	Column int

	End       int
	EndOffset int
	EndLine   int
	EndColumn int

	// Err is the error reported by a hook or parser, if any.
	Err error
}

func newDecodeError(kind ErrorKind, msg, doc string, pos int) *DecodeError {
	e := &DecodeError{Kind: kind, Msg: msg, Doc: doc, Pos: pos}
	e.Offset, e.Line, e.Column = position(doc, pos)
	return e
}

func newSpanError(kind ErrorKind, msg, doc string, pos, end int) *DecodeError {
	e := newDecodeError(kind, msg, doc, pos)
	e.End = end
	e.EndOffset, e.EndLine, e.EndColumn = position(doc, end)
	return e
}

func wrapDecodeError(kind ErrorKind, msg, doc string, pos int, err error) *DecodeError {
	e := newDecodeError(kind, msg, doc, pos)
	e.Err = err
	return e
}

// Error formats the message in the conventional way, for example:
//
//	simplejson: Expecting value: line 1 column 1 (char 0)
//	simplejson: Extra data: line 1 column 3 - line 2 column 1 (char 2 - 5)
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(errorPrefix)
	b.WriteString(e.Msg)
	b.WriteString(": line ")
	b.WriteString(strconv.Itoa(e.Line))
	b.WriteString(" column ")
	b.WriteString(strconv.Itoa(e.Column))
	if e.End > e.Pos {
		b.WriteString(" - line ")
		b.WriteString(strconv.Itoa(e.EndLine))
		b.WriteString(" column ")
		b.WriteString(strconv.Itoa(e.EndColumn))
		b.WriteString(" (char ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteString(" - ")
		b.WriteString(strconv.Itoa(e.EndOffset))
		b.WriteString(")")
	} else {
		b.WriteString(" (char ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is Error or the ErrorKind of e.
func (e *DecodeError) Is(target error) bool {
	if k, ok := target.(ErrorKind); ok {
		return k == e.Kind
	}
	return e == target || target == Error
}

// DuplicateNameError is reported by the UniqueNames hook
// when an object contains the same name more than once.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return errorPrefix + "duplicate object name " + strconv.Quote(e.Name)
}
func (e *DuplicateNameError) Is(target error) bool { return e == target || target == Error }

// position converts a byte offset into a character offset and a
// one-based line and column. Invalid UTF-8 counts one character per byte.
func position(doc string, pos int) (offset, line, column int) {
	before := doc[:min(max(pos, 0), len(doc))]
	offset = utf8.RuneCountInString(before)
	line = strings.Count(before, "\n") + 1
	column = utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return offset, line, column
}

func escapeCharacter(c byte) string {
	switch c {
	case '\'':
		return `'\''`
	case '"':
		return `'"'`
	default:
		return "'" + strings.TrimPrefix(strings.TrimSuffix(strconv.Quote(string([]byte{c})), `"`), `"`) + "'"
	}
}
