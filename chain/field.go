// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

// Keyed is the key/value surface shared by Map and OrderableMap.
type Keyed[B any] interface {
	Set(key string, value any) B
	Get(key string) (any, bool)
	Extend(names ...string) B
}

// Accessor is a typed setter and getter bound to one key of a builder.
type Accessor[T any, B Keyed[B]] struct {
	b   B
	key string
}

// Field registers key as a shorthand on b and returns a typed accessor for it.
//
//	port := chain.Field[int](server, "port")
//	port.Set(8080).Set("host", "localhost")
func Field[T any, B Keyed[B]](b B, key string) Accessor[T, B] {
	b.Extend(key)
	return Accessor[T, B]{b: b, key: key}
}

// Key returns the bound key.
func (a Accessor[T, B]) Key() string {
	return a.key
}

// Set stores v at the bound key and returns the builder.
func (a Accessor[T, B]) Set(v T) B {
	return a.b.Set(a.key, v)
}

// Get returns the value at the bound key. It reports false when the key is
// absent or holds a value of another type.
func (a Accessor[T, B]) Get() (T, bool) {
	v, ok := a.b.Get(a.key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
