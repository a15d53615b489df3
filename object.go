// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

// objectBuilder accumulates the members of one JSON object.
// There is one implementation per way of constructing objects;
// the Decoder selects it once from its options.
type objectBuilder interface {
	add(name string, val any)
	finish() (any, error)
}

// mapObject is the plain mapping; duplicate names overwrite.
type mapObject map[string]any

func (o mapObject) add(name string, val any) { o[name] = val }
func (o mapObject) finish() (any, error)     { return map[string]any(o), nil }

// hookObject builds a plain mapping and passes it through an ObjectHook.
type hookObject struct {
	obj  map[string]any
	hook ObjectHook
}

func (o *hookObject) add(name string, val any) { o.obj[name] = val }
func (o *hookObject) finish() (any, error)     { return o.hook.TransformObject(o.obj) }

// pairsObject keeps every member in order and leaves construction
// of the final value to an ObjectPairsHook.
type pairsObject struct {
	members []Member
	hook    ObjectPairsHook
}

func (o *pairsObject) add(name string, val any) {
	o.members = append(o.members, Member{Name: name, Value: val})
}

func (o *pairsObject) finish() (any, error) {
	members := o.members
	if members == nil {
		members = []Member{}
	}
	return o.hook.BuildObject(members)
}

// objectFactory returns the constructor for the configured strategy.
func (o *decodeOptions) objectFactory() func() objectBuilder {
	switch {
	case o.pairsHook != nil:
		hook := o.pairsHook
		return func() objectBuilder { return &pairsObject{hook: hook} }
	case o.objectHook != nil:
		hook := o.objectHook
		return func() objectBuilder { return &hookObject{obj: make(map[string]any), hook: hook} }
	default:
		return func() objectBuilder { return make(mapObject) }
	}
}
