// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package orderedmap provides a generic map that iterates in insertion order.
//
// It wraps github.com/wk8/go-ordered-map/v2 so the rest of the module does not
// depend on that package's API directly. A key keeps the position of its first
// insertion: setting an existing key replaces the value in place, while deleting
// and re-adding a key moves it to the end.
package orderedmap

import (
	"encoding/json"
	"iter"

	wk8 "github.com/wk8/go-ordered-map/v2"
)

// Map is a generic map that maintains insertion order.
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	om *wk8.OrderedMap[K, V]
}

// New creates a new empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		om: wk8.New[K, V](),
	}
}

// Get retrieves a value by key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil || m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(key)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set sets a key-value pair. If the key already exists, its value is updated
// but its position in the iteration order is preserved. If the key is new,
// it is appended to the end.
func (m *Map[K, V]) Set(key K, value V) {
	if m.om == nil {
		m.om = wk8.New[K, V]()
	}
	m.om.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if m == nil || m.om == nil {
		return false
	}
	_, present := m.om.Delete(key)
	return present
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.om = wk8.New[K, V]()
}

// MoveToFront moves an existing key to the first position.
// It reports false if the key is absent.
func (m *Map[K, V]) MoveToFront(key K) bool {
	if m == nil || m.om == nil {
		return false
	}
	return m.om.MoveToFront(key) == nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// All returns an iterator over all key-value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil || m.om == nil {
			return
		}
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToMap converts to a regular Go map.
// Note: The resulting map does not preserve order.
func (m *Map[K, V]) ToMap() map[K]V {
	if m == nil || m.om == nil {
		return nil
	}
	result := make(map[K]V, m.om.Len())
	for k, v := range m.All() {
		result[k] = v
	}
	return result
}

// MarshalJSON implements json.Marshaler. The JSON output preserves key order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m == nil || m.om == nil {
		return []byte("null"), nil
	}
	return json.Marshal(m.om)
}

// UnmarshalJSON implements json.Unmarshaler. The insertion order matches the
// order of keys in the JSON input. Nested objects decode as map[string]any.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	m.om = wk8.New[K, V]()
	return json.Unmarshal(data, &m.om)
}
