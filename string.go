// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"

	"github.com/help-lazybones/simplejson/internal/jsonwire"
)

// scanString decodes the string literal whose opening quote is at begin.
// It returns the unescaped string and the offset just past the closing quote.
//
// A string without escapes or tolerated control characters is returned
// as a substring of the input without copying. Bytes that are not valid
// UTF-8 are rejected with an InvalidEncoding error.
func (sc *scanner) scanString(begin int) (string, int, error) {
	s := sc.s
	i := begin + 1
	n := i + consumeVerbatim(s[i:])
	if n < len(s) && s[n] == '"' {
		if err := sc.checkUTF8(i, n); err != nil {
			return "", i, err
		}
		return s[i:n], n + 1, nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for {
		if err := sc.checkUTF8(i, n); err != nil {
			return "", i, err
		}
		buf.B = append(buf.B, s[i:n]...)
		if n >= len(s) {
			return "", begin, newDecodeError(UnterminatedString, msgUnterminated, s, begin)
		}
		switch c := s[n]; c {
		case '"':
			return string(buf.B), n + 1, nil
		case '\\':
			var err error
			if buf.B, i, err = sc.appendEscape(buf.B, begin, n); err != nil {
				return "", i, err
			}
		default:
			if sc.d.opts.strict {
				return "", n, newDecodeError(InvalidControlCharacter, "Invalid control character "+escapeCharacter(c)+" at", s, n)
			}
			buf.B = append(buf.B, c)
			i = n + 1
		}
		n = i + consumeVerbatim(s[i:])
	}
}

// appendEscape appends the character denoted by the escape sequence whose
// backslash is at offset n, and returns the offset just past the sequence.
// The string literal being decoded opens at begin.
func (sc *scanner) appendEscape(dst []byte, begin, n int) ([]byte, int, error) {
	s := sc.s
	if n+1 >= len(s) {
		return dst, begin, newDecodeError(UnterminatedString, msgUnterminated, s, begin)
	}
	esc := s[n+1]
	if esc != 'u' {
		c, ok := jsonwire.UnescapeASCII(esc)
		if !ok {
			return dst, n, newDecodeError(InvalidEscape, `Invalid \X escape sequence `+escapeCharacter(esc), s, n)
		}
		return append(dst, c), n + 2, nil
	}

	r, ok := jsonwire.ParseHex4(s[n+2:])
	if !ok {
		return dst, n, newDecodeError(InvalidUnicodeEscape, msgInvalidUnicode, s, n)
	}
	end := n + len(`\uXXXX`)
	if utf16.IsSurrogate(r) && r < 0xdc00 {
		lo, ok := rune(0), false
		if len(s) > end+1 && s[end] == '\\' && s[end+1] == 'u' {
			lo, ok = jsonwire.ParseHex4(s[end+2:])
		}
		if r = utf16.DecodeRune(r, lo); !ok || r == utf8.RuneError {
			return dst, n, newDecodeError(InvalidSurrogatePair, msgInvalidSurrogates, s, n)
		}
		end += len(`\uXXXX`)
	}
	// A lone low surrogate is not representable and becomes utf8.RuneError.
	return utf8.AppendRune(dst, r), end, nil
}

// checkUTF8 reports the first byte of s[i:n] that does not belong
// to a valid UTF-8 sequence.
func (sc *scanner) checkUTF8(i, n int) error {
	run := sc.s[i:n]
	if utf8.ValidString(run) {
		return nil
	}
	for j := 0; j < len(run); {
		r, size := utf8.DecodeRuneInString(run[j:])
		if r == utf8.RuneError && size == 1 {
			return newDecodeError(InvalidEncoding, "Invalid UTF-8 byte "+escapeCharacter(run[j])+" at", sc.s, i+j)
		}
		j += size
	}
	return nil
}

// consumeVerbatim reports the length of the leading run of s
// that can be copied into a decoded string as is.
func consumeVerbatim(s string) (n int) {
	for n < len(s) && !jsonwire.NeedsUnquote(s[n]) {
		n++
	}
	return n
}
