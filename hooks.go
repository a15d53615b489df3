// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson/fastfloat"
)

// IntParser converts a JSON number literal without a fraction or exponent
// into a Go value. The literal always matches the JSON integer grammar.
type IntParser interface {
	ParseInt(lit string) (any, error)
}

// IntParserFunc adapts an ordinary function to an IntParser.
type IntParserFunc func(lit string) (any, error)

func (f IntParserFunc) ParseInt(lit string) (any, error) { return f(lit) }

// FloatParser converts a JSON number literal with a fraction and/or an
// exponent into a Go value.
type FloatParser interface {
	ParseFloat(lit string) (any, error)
}

// FloatParserFunc adapts an ordinary function to a FloatParser.
type FloatParserFunc func(lit string) (any, error)

func (f FloatParserFunc) ParseFloat(lit string) (any, error) { return f(lit) }

// ConstantParser converts one of the non-standard literals
// "NaN", "Infinity" or "-Infinity" into a Go value.
// Returning an error rejects the literal.
type ConstantParser interface {
	ParseConstant(name string) (any, error)
}

// ConstantParserFunc adapts an ordinary function to a ConstantParser.
type ConstantParserFunc func(name string) (any, error)

func (f ConstantParserFunc) ParseConstant(name string) (any, error) { return f(name) }

// ObjectHook transforms every decoded JSON object, given as a map in which
// later duplicate names have replaced earlier ones.
type ObjectHook interface {
	TransformObject(obj map[string]any) (any, error)
}

// ObjectHookFunc adapts an ordinary function to an ObjectHook.
type ObjectHookFunc func(obj map[string]any) (any, error)

func (f ObjectHookFunc) TransformObject(obj map[string]any) (any, error) { return f(obj) }

// ObjectPairsHook builds the Go value for every decoded JSON object from
// its members in document order, duplicates included.
type ObjectPairsHook interface {
	BuildObject(members []Member) (any, error)
}

// ObjectPairsHookFunc adapts an ordinary function to an ObjectPairsHook.
type ObjectPairsHookFunc func(members []Member) (any, error)

func (f ObjectPairsHookFunc) BuildObject(members []Member) (any, error) { return f(members) }

// Member is a JSON object member.
type Member struct {
	Name  string
	Value any
}

// Object is an ordered sequence of name/value members in a JSON object,
// as produced by the OrderedObjects hook.
//
// RFC 8259 defines an object as an "unordered collection".
// JSON implementations need not make "ordering of object members visible"
// to applications nor will they agree on the semantic meaning of an object if
// "the names within an object are not unique". For maximum compatibility,
// applications should avoid relying on ordering or duplicity of object names.
type Object []Member

// Get returns the value of the last member with the given name.
func (obj Object) Get(name string) (any, bool) {
	for i := len(obj) - 1; i >= 0; i-- {
		if obj[i].Name == name {
			return obj[i].Value, true
		}
	}
	return nil, false
}

// Number is a JSON number literal kept verbatim,
// as produced by the IntLiterals and FloatLiterals parsers.
type Number string

func (n Number) String() string { return string(n) }

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

var (
	// DefaultInts produces an int64, or a *big.Int when the literal
	// does not fit in 64 bits, so that no integer loses precision.
	DefaultInts IntParser = IntParserFunc(parseInt)

	// BigInts always produces a *big.Int.
	BigInts IntParser = IntParserFunc(parseBigInt)

	// IntLiterals produces the literal as a Number.
	IntLiterals IntParser = IntParserFunc(func(lit string) (any, error) { return Number(lit), nil })

	// Float64s produces a float64. Literals beyond the float64 range
	// become ±Inf rather than an error.
	Float64s FloatParser = FloatParserFunc(parseFloat)

	// FastFloats produces a float64 using the fastfloat parser.
	FastFloats FloatParser = FloatParserFunc(parseFastFloat)

	// DecimalFloats produces an exact decimal.Decimal.
	DecimalFloats FloatParser = FloatParserFunc(parseDecimal)

	// FloatLiterals produces the literal as a Number.
	FloatLiterals FloatParser = FloatParserFunc(func(lit string) (any, error) { return Number(lit), nil })

	// DefaultConstants maps NaN, Infinity and -Infinity to the
	// corresponding float64 values.
	DefaultConstants ConstantParser = ConstantParserFunc(parseConstant)

	// StrictConstants rejects NaN, Infinity and -Infinity,
	// which are not part of RFC 8259.
	StrictConstants ConstantParser = ConstantParserFunc(rejectConstant)

	// OrderedObjects produces an Object for every JSON object,
	// preserving member order and duplicate names.
	OrderedObjects ObjectPairsHook = ObjectPairsHookFunc(func(members []Member) (any, error) {
		return Object(members), nil
	})

	// UniqueNames produces a map[string]any for every JSON object and
	// reports a *DuplicateNameError if any name occurs more than once.
	UniqueNames ObjectPairsHook = ObjectPairsHookFunc(buildUniqueObject)
)

func parseInt(lit string) (any, error) {
	n, err := strconv.ParseInt(lit, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return parseBigInt(lit)
	}
	return nil, err
}

func parseBigInt(lit string) (any, error) {
	n, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", lit)
	}
	return n, nil
}

func parseFloat(lit string) (any, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	return f, nil
}

func parseFastFloat(lit string) (any, error) {
	f, err := fastfloat.Parse(lit)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func parseDecimal(lit string) (any, error) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func parseConstant(name string) (any, error) {
	switch name {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(+1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	return nil, fmt.Errorf("unknown constant %q", name)
}

func rejectConstant(name string) (any, error) {
	return nil, fmt.Errorf("%s is not a valid JSON value", name)
}

func buildUniqueObject(members []Member) (any, error) {
	obj := make(map[string]any, len(members))
	for _, m := range members {
		if _, dup := obj[m.Name]; dup {
			return nil, &DuplicateNameError{Name: m.Name}
		}
		obj[m.Name] = m.Value
	}
	return obj, nil
}
