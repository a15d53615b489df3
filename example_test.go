// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/help-lazybones/simplejson"
)

func Example() {
	v, err := simplejson.Unmarshal(`{"name": "gopher", "tags": ["a", "b"], "age": 13, "ratio": 0.5}`)
	if err != nil {
		log.Fatal(err)
	}
	obj := v.(map[string]any)
	fmt.Println(obj["name"], obj["tags"], obj["age"], obj["ratio"])
	fmt.Printf("%T %T\n", obj["age"], obj["ratio"])

	// Output:
	// gopher [a b] 13 0.5
	// int64 float64
}

// Malformed input is reported with the line and column of the problem.
func Example_errors() {
	_, err := simplejson.Unmarshal("[1,\n  2 3]")
	fmt.Println(err)

	var de *simplejson.DecodeError
	if errors.As(err, &de) {
		fmt.Println(de.Kind.String(), de.Pos, de.Line, de.Column)
	}
	fmt.Println(errors.Is(err, simplejson.ExpectingDelimiter))

	// Output:
	// simplejson: Expecting ',' delimiter: line 2 column 5 (char 8)
	// expecting delimiter 8 2 5
	// true
}

// Objects keep the order and duplicates of their members
// when decoded with the OrderedObjects hook.
func Example_orderedObjects() {
	v, err := simplejson.Unmarshal(`{"z": 1, "a": 2, "z": 3}`,
		simplejson.WithObjectPairsHook(simplejson.OrderedObjects))
	if err != nil {
		log.Fatal(err)
	}
	obj := v.(simplejson.Object)
	for _, m := range obj {
		fmt.Println(m.Name, m.Value)
	}
	z, _ := obj.Get("z")
	fmt.Println("z =", z)

	// Output:
	// z 1
	// a 2
	// z 3
	// z = 3
}

// Concatenated documents can be decoded one after another.
func ExampleDecoder_RawDecode() {
	const stream = `{"id": 1} {"id": 2}  [3]`
	d := simplejson.NewDecoder()
	for i := 0; i < len(stream); {
		v, end, err := d.RawDecode(stream, i)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(v)
		i = end
	}

	// Output:
	// map[id:1]
	// map[id:2]
	// [3]
}

// Exact decimal arithmetic is possible by decoding floats with DecimalFloats.
func ExampleDecimalFloats() {
	v, err := simplejson.Unmarshal(`[0.1, 0.2]`, simplejson.WithFloatParser(simplejson.DecimalFloats))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	// Output:
	// [0.1 0.2]
}

// StrictConstants limits input to RFC 8259 by rejecting NaN and Infinity.
func ExampleStrictConstants() {
	d := simplejson.NewDecoder(simplejson.WithConstantParser(simplejson.StrictConstants))
	_, err := d.Decode(`{"x": NaN}`)
	fmt.Println(err)

	// Output:
	// simplejson: Invalid constant NaN: line 1 column 7 (char 6): NaN is not a valid JSON value
}

// Byte input in other text encodings is converted before decoding.
func ExampleWithEncoding() {
	v, err := simplejson.UnmarshalBytes([]byte("[\"Stra\xdfe\"]"), simplejson.WithEncoding("latin-1"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	// Output:
	// [Straße]
}
