// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package deepmerge layers plain nested values: objects merge key by key,
// arrays concatenate, and anything else is replaced by the incoming value.
//
// Objects are map[string]any or *orderedmap.Map[string, any] and arrays are
// []any, the shapes produced by decoding JSON, YAML or HCL into untyped Go
// values. Ordered objects keep their key order and new keys are appended in
// source order. Neither argument is modified; the result shares no maps or
// slices with its inputs.
package deepmerge

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

// Ordered is the ordered object type.
type Ordered = orderedmap.Map[string, any]

// Mergeable reports whether v is an object or array that Merge combines
// with an existing value instead of replacing it.
func Mergeable(v any) bool {
	switch v.(type) {
	case map[string]any, *Ordered, []any:
		return true
	default:
		return false
	}
}

// Merge combines src into dst and returns the result. When the two values
// have different shapes, a copy of src wins.
func Merge(dst, src any) (any, error) {
	switch s := src.(type) {
	case *Ordered:
		switch d := dst.(type) {
		case *Ordered:
			return mergeOrdered(cloneOrdered(d), s)
		case map[string]any:
			return mergeOrdered(fromMap(d), s)
		}
		return Clone(s), nil

	case map[string]any:
		if d, ok := dst.(*Ordered); ok {
			return mergeOrdered(cloneOrdered(d), fromMap(s))
		}
		d, ok := dst.(map[string]any)
		if !ok {
			return Clone(s), nil
		}
		return mergeMap(d, s)

	case []any:
		d, ok := dst.([]any)
		if !ok {
			return Clone(s), nil
		}
		return append(cloneSlice(d), cloneSlice(s)...), nil

	default:
		return src, nil
	}
}

// Clone deep-copies objects and arrays. Other values are returned as is.
func Clone(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case *Ordered:
		return cloneOrdered(v)
	case []any:
		return cloneSlice(v)
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Clone(v)
	}
	return out
}

// mergeMap merges plain objects with mergo. mergo refuses a field whose
// type changes, such as a scalar becoming an array; the objects are then
// merged key by key so only the clashing field is replaced.
func mergeMap(d, s map[string]any) (map[string]any, error) {
	out := cloneMap(d)
	if err := mergo.Merge(&out, cloneMap(s), mergo.WithOverride, mergo.WithAppendSlice); err == nil {
		return out, nil
	}

	out = cloneMap(d)
	for k, v := range s {
		existing, ok := out[k]
		if !ok || !Mergeable(v) {
			out[k] = Clone(v)
			continue
		}
		merged, err := Merge(existing, v)
		if err != nil {
			return nil, fmt.Errorf("merge %q: %w", k, err)
		}
		out[k] = merged
	}
	return out, nil
}

// mergeOrdered merges src into out key by key. out must already be a copy.
func mergeOrdered(out, src *Ordered) (any, error) {
	for k, v := range src.All() {
		existing, ok := out.Get(k)
		if !ok || !Mergeable(v) {
			out.Set(k, Clone(v))
			continue
		}
		merged, err := Merge(existing, v)
		if err != nil {
			return nil, fmt.Errorf("merge %q: %w", k, err)
		}
		out.Set(k, merged)
	}
	return out, nil
}

func cloneOrdered(m *Ordered) *Ordered {
	out := orderedmap.New[string, any]()
	for k, v := range m.All() {
		out.Set(k, Clone(v))
	}
	return out
}

// fromMap copies m into an ordered object with its keys sorted.
func fromMap(m map[string]any) *Ordered {
	out := orderedmap.New[string, any]()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out.Set(k, Clone(m[k]))
	}
	return out
}
