// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import "github.com/help-lazybones/simplejson/internal/textenc"

// DefaultMaxDepth is the nesting limit used unless MaxDepth says otherwise.
const DefaultMaxDepth = 10000

// Options configures NewDecoder, Unmarshal and UnmarshalBytes
// with specific features.
//
// List of options and their defaults:
//
//   - [WithEncoding] defaults to "utf-8".
//   - [Strict] defaults to true.
//   - [WithObjectHook] defaults to none.
//   - [WithObjectPairsHook] defaults to none and takes precedence
//     over [WithObjectHook] when both are set.
//   - [WithIntParser] defaults to [DefaultInts].
//   - [WithFloatParser] defaults to [Float64s].
//   - [WithConstantParser] defaults to [DefaultConstants].
//   - [MaxDepth] defaults to [DefaultMaxDepth].
//
// Properties set in later options override previously set properties.
type Options interface {
	applyOptions(*decodeOptions)
}

type optionFunc func(*decodeOptions)

func (f optionFunc) applyOptions(o *decodeOptions) { f(o) }

type joinedOptions []Options

func (opts joinedOptions) applyOptions(o *decodeOptions) {
	for _, opt := range opts {
		if opt != nil {
			opt.applyOptions(o)
		}
	}
}

// JoinOptions coalesces the provided list of options into a single Options.
// Properties set in latter options override previously set properties.
func JoinOptions(srcs ...Options) Options {
	return joinedOptions(srcs)
}

// decodeOptions is the resolved configuration of a Decoder.
// It is never mutated after NewDecoder returns.
type decodeOptions struct {
	encoding  string
	strict    bool
	maxDepth  int
	ints      IntParser
	floats    FloatParser
	constants ConstantParser

	objectHook ObjectHook
	pairsHook  ObjectPairsHook
}

func defaultOptions() decodeOptions {
	return decodeOptions{
		encoding:  textenc.DefaultEncoding,
		strict:    true,
		maxDepth:  DefaultMaxDepth,
		ints:      DefaultInts,
		floats:    Float64s,
		constants: DefaultConstants,
	}
}

// WithEncoding specifies the text encoding of byte input given to
// Decoder.DecodeBytes and UnmarshalBytes. Names are resolved against the
// IANA registry and the WHATWG encoding standard. String input is
// always UTF-8 and ignores this option.
func WithEncoding(name string) Options {
	return optionFunc(func(o *decodeOptions) {
		if name == "" {
			name = textenc.DefaultEncoding
		}
		o.encoding = name
	})
}

// Strict specifies whether raw control characters (U+0000 to U+001F)
// are rejected inside strings. When false they are kept verbatim.
func Strict(v bool) Options {
	return optionFunc(func(o *decodeOptions) { o.strict = v })
}

// MaxDepth limits how deeply objects and arrays may nest.
// A value of zero or less removes the limit, in which case
// adversarial input is bounded only by the goroutine stack.
func MaxDepth(n int) Options {
	return optionFunc(func(o *decodeOptions) { o.maxDepth = n })
}

// WithIntParser specifies how integer literals are converted.
// A nil parser restores DefaultInts.
func WithIntParser(p IntParser) Options {
	return optionFunc(func(o *decodeOptions) {
		if p == nil {
			p = DefaultInts
		}
		o.ints = p
	})
}

// WithFloatParser specifies how literals with a fraction or exponent
// are converted. A nil parser restores Float64s.
func WithFloatParser(p FloatParser) Options {
	return optionFunc(func(o *decodeOptions) {
		if p == nil {
			p = Float64s
		}
		o.floats = p
	})
}

// WithConstantParser specifies how NaN, Infinity and -Infinity are
// converted. A nil parser restores DefaultConstants.
func WithConstantParser(p ConstantParser) Options {
	return optionFunc(func(o *decodeOptions) {
		if p == nil {
			p = DefaultConstants
		}
		o.constants = p
	})
}

// WithObjectHook specifies a transform applied to every decoded object.
// It is ignored while an ObjectPairsHook is configured.
func WithObjectHook(h ObjectHook) Options {
	return optionFunc(func(o *decodeOptions) { o.objectHook = h })
}

// WithObjectPairsHook specifies how every decoded object is built from its
// members in document order. It takes precedence over any ObjectHook.
func WithObjectPairsHook(h ObjectPairsHook) Options {
	return optionFunc(func(o *decodeOptions) { o.pairsHook = h })
}
