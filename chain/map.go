// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"iter"
	"slices"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

// Map is an insertion-ordered key/value builder.
type Map struct {
	Chainable

	store      *store
	shorthands []string
}

// NewMap creates an empty Map whose End returns parent.
func NewMap(parent any) *Map {
	return &Map{
		Chainable: Chainable{parent: parent},
		store:     newStore(),
	}
}

// Batch calls fn with m and returns m.
func (m *Map) Batch(fn func(*Map)) *Map {
	return batch(m, fn)
}

// When calls whenTrue if cond holds and whenFalse otherwise.
func (m *Map) When(cond bool, whenTrue, whenFalse func(*Map)) *Map {
	return when(m, cond, whenTrue, whenFalse)
}

// Set inserts or replaces the value at key. A replaced key keeps its position.
func (m *Map) Set(key string, value any) *Map {
	m.store.set(key, value)
	return m
}

// Get returns the value at key.
func (m *Map) Get(key string) (any, bool) {
	return m.store.get(key)
}

// Has reports whether key is present, even if its value is nil.
func (m *Map) Has(key string) bool {
	return m.store.has(key)
}

// Tap replaces the value at key with fn applied to the current value
// (nil when absent).
func (m *Map) Tap(key string, fn func(any) any) *Map {
	v, _ := m.store.get(key)
	return m.Set(key, fn(v))
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map) Delete(key string) *Map {
	m.store.delete(key)
	return m
}

// Clear removes every entry.
func (m *Map) Clear() *Map {
	m.store.clear()
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.store.len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return m.store.keys()
}

// Values returns the values in insertion order.
func (m *Map) Values() []any {
	return slices.Collect(m.store.entries.Values())
}

// All iterates the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return m.store.entries.All()
}

// Entries returns a copy of the entries as an ordered map.
func (m *Map) Entries() *orderedmap.Map[string, any] {
	out := orderedmap.New[string, any]()
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// ForEach calls fn for every entry in insertion order.
func (m *Map) ForEach(fn func(value any, key string, m *Map)) *Map {
	for _, key := range m.Keys() {
		v, _ := m.store.get(key)
		fn(v, key, m)
	}
	return m
}

// Merge applies the entries of src in its iteration order, skipping omit.
// Objects and arrays are deep-merged into existing values; other values
// replace. New keys are appended.
func (m *Map) Merge(src iter.Seq2[string, any], omit ...string) *Map {
	m.store.merge(src, omit, func(key string, value any) { m.Set(key, value) })
	return m
}

// MergeMap is Merge for a plain map. New keys are appended in sorted order.
func (m *Map) MergeMap(src map[string]any, omit ...string) *Map {
	return m.Merge(sortedEntries(src), omit...)
}

// Extend registers shorthand names, each bound to the key of the same name.
func (m *Map) Extend(names ...string) *Map {
	m.shorthands = extend(m.shorthands, names)
	return m
}

// Shorthands returns the registered shorthand names in registration order.
func (m *Map) Shorthands() []string {
	return slices.Clone(m.shorthands)
}

// Shorthand returns a setter for a name registered with Extend.
func (m *Map) Shorthand(name string) (func(value any) *Map, error) {
	if !slices.Contains(m.shorthands, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShorthand, name)
	}
	return func(value any) *Map { return m.Set(name, value) }, nil
}

// ToConfig returns the entries as an ordered map, converting nested
// builders with their own ToConfig.
func (m *Map) ToConfig() any {
	out := orderedmap.New[string, any]()
	for k, v := range m.All() {
		out.Set(k, toConfig(v))
	}
	return out
}

func extend(names, add []string) []string {
	for _, name := range add {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}
