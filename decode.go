// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	"errors"
	"strings"

	"github.com/help-lazybones/simplejson/internal/jsonwire"
	"github.com/help-lazybones/simplejson/internal/textenc"
)

// bom is the UTF-8 encoding of U+FEFF.
const bom = "\ufeff"

// Decoder decodes JSON text into Go values.
//
// A Decoder is configured once by NewDecoder and is immutable afterwards.
// It may be used by multiple goroutines simultaneously; every call keeps
// its own scanning state.
//
// Decoded values have the following Go types unless a hook says otherwise:
//
//   - JSON null as nil
//   - JSON boolean as bool
//   - JSON string as string
//   - JSON number as int64 or *big.Int without a fraction or exponent,
//     and as float64 otherwise
//   - NaN, Infinity and -Infinity as float64
//   - JSON array as []any
//   - JSON object as map[string]any
type Decoder struct {
	opts      decodeOptions
	newObject func() objectBuilder
}

// NewDecoder constructs a Decoder configured by opts.
func NewDecoder(opts ...Options) *Decoder {
	d := &Decoder{opts: defaultOptions()}
	joinedOptions(opts).applyOptions(&d.opts)
	d.newObject = d.opts.objectFactory()
	return d
}

var defaultDecoder = NewDecoder()

func decoderFor(opts []Options) *Decoder {
	if len(opts) == 0 {
		return defaultDecoder
	}
	return NewDecoder(opts...)
}

// Unmarshal decodes the JSON document s with the provided options.
// It is shorthand for NewDecoder(opts...).Decode(s).
func Unmarshal(s string, opts ...Options) (any, error) {
	return decoderFor(opts).Decode(s)
}

// UnmarshalBytes decodes the JSON document b with the provided options.
// It is shorthand for NewDecoder(opts...).DecodeBytes(b).
func UnmarshalBytes(b []byte, opts ...Options) (any, error) {
	return decoderFor(opts).DecodeBytes(b)
}

// Decode decodes exactly one JSON value from s, which must be UTF-8 text.
// Leading and trailing whitespace is permitted; anything else following
// the value is reported as an ExtraData error spanning the remainder of s.
// Invalid UTF-8 within a string literal is reported as InvalidEncoding.
func (d *Decoder) Decode(s string) (any, error) {
	v, end, err := d.RawDecode(s, 0)
	if err != nil {
		return nil, err
	}
	if _, n := jsonwire.SkipWhitespace(s, end); n < len(s) {
		return nil, newSpanError(ExtraData, "Extra data", s, n, len(s))
	}
	return v, nil
}

// RawDecode decodes the JSON value that starts at byte offset idx of s,
// after an optional byte-order mark and whitespace. It returns the value
// and the offset just past it. Text after the value is not examined,
// which allows decoding a sequence of concatenated documents.
func (d *Decoder) RawDecode(s string, idx int) (any, int, error) {
	if idx < 0 || idx > len(s) {
		return nil, idx, newDecodeError(ExpectingValue, msgExpectingValue, s, idx)
	}
	if strings.HasPrefix(s[idx:], bom) {
		idx += len(bom)
	}
	_, idx = jsonwire.SkipWhitespace(s, idx)

	sc := getScanner(d, s)
	defer putScanner(sc)
	return d.scanOnce(sc, idx)
}

// DecodeBytes converts b from the configured text encoding and then
// behaves like Decode. Bytes that are invalid in that encoding are
// reported as an InvalidEncoding error.
func (d *Decoder) DecodeBytes(b []byte) (any, error) {
	s, err := textenc.Decode(d.opts.encoding, b)
	if err != nil {
		var pos int
		var utf8Err *textenc.InvalidUTF8Error
		if errors.As(err, &utf8Err) {
			pos = utf8Err.Offset
		}
		return nil, wrapDecodeError(InvalidEncoding, "Invalid "+d.opts.encoding+" text", string(b), pos, err)
	}
	return d.Decode(s)
}

// scanOnce decodes the single value at idx using sc.
// It does not check that the rest of the text is empty.
// The names interned by sc are forgotten on return, whatever the outcome.
func (d *Decoder) scanOnce(sc *scanner, idx int) (any, int, error) {
	defer sc.names.reset()
	v, end, found, err := sc.scanValue(idx)
	if err != nil {
		return nil, end, err
	}
	if !found {
		return nil, idx, newDecodeError(ExpectingValue, msgExpectingValue, sc.s, idx)
	}
	return v, end, nil
}
