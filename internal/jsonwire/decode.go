// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements the lowest level of JSON grammar recognition:
// whitespace, literals, numbers and hexadecimal escapes.
// None of the functions in this package allocate or report errors;
// callers decide what a mismatch means in their context.
package jsonwire

import "strings"

// ConsumeWhitespace consumes leading JSON whitespace per RFC 7159, section 2.
func ConsumeWhitespace(s string) (n int) {
	for len(s) > n && (s[n] == ' ' || s[n] == '\t' || s[n] == '\r' || s[n] == '\n') {
		n++
	}
	return n
}

// SkipWhitespace advances from offset i past any JSON whitespace.
// It returns the first non-whitespace character and its offset.
// At the end of s it returns a zero character and len(s).
func SkipWhitespace(s string, i int) (c byte, n int) {
	if i >= len(s) {
		return 0, len(s)
	}
	n = i + ConsumeWhitespace(s[i:])
	if n < len(s) {
		return s[n], n
	}
	return 0, n
}

// HasLiteral reports whether s contains lit starting at offset i.
func HasLiteral(s string, i int, lit string) bool {
	return i <= len(s) && strings.HasPrefix(s[i:], lit)
}

// ScanNumber matches the JSON number grammar starting at offset i:
//
//	number = [ '-' ] int [ frac ] [ exp ]
//	int    = '0' / ( digit1-9 *digit )
//	frac   = '.' 1*digit
//	exp    = ( 'e' / 'E' ) [ '-' / '+' ] 1*digit
//
// The match is greedy and never reports an error for trailing characters.
// A '.' that is not followed by a digit ends the number before the '.',
// and an exponent marker without digits ends the number before the marker.
// A leading zero terminates the integer part, so "01" matches only "0".
//
// It reports the end offset of the match, whether a fraction or exponent
// was consumed, and whether any number was matched at all.
func ScanNumber(s string, i int) (end int, isFloat, ok bool) {
	n := i
	if n < len(s) && s[n] == '-' {
		n++
	}
	switch {
	case n < len(s) && s[n] == '0':
		n++
	case n < len(s) && '1' <= s[n] && s[n] <= '9':
		n++
		n += consumeDigits(s[n:])
	default:
		return i, false, false
	}

	if n+1 < len(s) && s[n] == '.' && isDigit(s[n+1]) {
		isFloat = true
		n++
		n += consumeDigits(s[n:])
	}

	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		e := n + 1
		if e < len(s) && (s[e] == '-' || s[e] == '+') {
			e++
		}
		if d := consumeDigits(s[e:]); d > 0 {
			isFloat = true
			n = e + d
		}
	}
	return n, isFloat, true
}

// ParseHex4 parses the first four bytes of s as a hexadecimal code unit,
// as found after a "\u" escape. It reports false if s is too short or
// contains a non-hexadecimal digit.
func ParseHex4(s string) (r rune, ok bool) {
	if len(s) < 4 {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			c = c - '0'
		case 'a' <= c && c <= 'f':
			c = 10 + c - 'a'
		case 'A' <= c && c <= 'F':
			c = 10 + c - 'A'
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}

// UnescapeASCII maps the character after a backslash to the character it
// denotes for the fixed set of single-character escapes.
// The "\u" escape is not handled here.
func UnescapeASCII(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// NeedsUnquote reports whether c ends a run of verbatim string content:
// a double quote, a backslash, or a control character.
func NeedsUnquote(c byte) bool {
	return c == '"' || c == '\\' || c < ' '
}

func consumeDigits(s string) (n int) {
	for len(s) > n && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
