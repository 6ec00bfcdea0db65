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

	"github.com/albertocavalcante/chainconf/order"
	"github.com/albertocavalcante/chainconf/orderedmap"
)

// Options configures an OrderableMap.
type Options struct {
	// AsArray makes ToConfig return the resolved values as a []any instead
	// of a key-ordered map, for maps whose keys are only positional names.
	AsArray bool
}

// OrderableMap is a Map whose entries can be placed before or after one
// another. Reads resolve the order from scratch each time.
type OrderableMap struct {
	Chainable

	store      *store
	directives *order.Table[string]
	opts       Options
	shorthands []string
}

// NewOrderableMap creates an empty OrderableMap whose End returns parent.
func NewOrderableMap(parent any, opts Options) *OrderableMap {
	return &OrderableMap{
		Chainable:  Chainable{parent: parent},
		store:      newStore(),
		directives: order.NewTable[string](),
		opts:       opts,
	}
}

// Batch calls fn with m and returns m.
func (m *OrderableMap) Batch(fn func(*OrderableMap)) *OrderableMap {
	return batch(m, fn)
}

// When calls whenTrue if cond holds and whenFalse otherwise.
func (m *OrderableMap) When(cond bool, whenTrue, whenFalse func(*OrderableMap)) *OrderableMap {
	return when(m, cond, whenTrue, whenFalse)
}

// Set inserts or replaces the value at key. A replaced key keeps its
// insertion position. If value is a Builder it receives a fresh Position for
// key, so its own Before and After reposition it within m.
func (m *OrderableMap) Set(key string, value any) *OrderableMap {
	if b, ok := value.(Builder); ok {
		b.chainable().attach(m.position(key))
	}
	m.store.set(key, value)
	return m
}

// Move calls fn with the Position for key. key need not be present yet and
// its value need not be a builder.
func (m *OrderableMap) Move(key string, fn func(*Position)) *OrderableMap {
	fn(m.position(key))
	return m
}

// Directive returns the active directive for key.
func (m *OrderableMap) Directive(key string) (order.Directive[string], bool) {
	return m.directives.Get(key)
}

// Get returns the value at key.
func (m *OrderableMap) Get(key string) (any, bool) {
	return m.store.get(key)
}

// Has reports whether key is present.
func (m *OrderableMap) Has(key string) bool {
	return m.store.has(key)
}

// Tap replaces the value at key with fn applied to the current value.
func (m *OrderableMap) Tap(key string, fn func(any) any) *OrderableMap {
	v, _ := m.store.get(key)
	return m.Set(key, fn(v))
}

// Delete removes key and its directive. Directives of other keys that name
// key stay in place and simply stop applying.
func (m *OrderableMap) Delete(key string) *OrderableMap {
	m.directives.Delete(key)
	m.store.delete(key)
	return m
}

// Clear removes every entry and directive.
func (m *OrderableMap) Clear() *OrderableMap {
	m.directives.Clear()
	m.store.clear()
	return m
}

// Len returns the number of entries.
func (m *OrderableMap) Len() int {
	return m.store.len()
}

// Keys returns the keys in resolved order.
func (m *OrderableMap) Keys() []string {
	return order.Resolve(m.store.keys(), m.directives)
}

// Values returns the values in resolved order.
func (m *OrderableMap) Values() []any {
	keys := m.Keys()
	values := make([]any, 0, len(keys))
	for _, k := range keys {
		v, _ := m.store.get(k)
		values = append(values, v)
	}
	return values
}

// All iterates the entries in resolved order. The order is resolved once
// when iteration starts.
func (m *OrderableMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.Keys() {
			v, _ := m.store.get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Entries returns the entries as an ordered map in resolved order.
func (m *OrderableMap) Entries() *orderedmap.Map[string, any] {
	out := orderedmap.New[string, any]()
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// ForEach calls fn for every entry in resolved order.
func (m *OrderableMap) ForEach(fn func(value any, key string, m *OrderableMap)) *OrderableMap {
	for k, v := range m.All() {
		fn(v, k, m)
	}
	return m
}

// Merge applies the entries of src like Map.Merge. Directives are untouched.
func (m *OrderableMap) Merge(src iter.Seq2[string, any], omit ...string) *OrderableMap {
	m.store.merge(src, omit, func(key string, value any) { m.Set(key, value) })
	return m
}

// MergeMap is Merge for a plain map. New keys are appended in sorted order.
func (m *OrderableMap) MergeMap(src map[string]any, omit ...string) *OrderableMap {
	return m.Merge(sortedEntries(src), omit...)
}

// Extend registers shorthand names, each bound to the key of the same name.
func (m *OrderableMap) Extend(names ...string) *OrderableMap {
	m.shorthands = extend(m.shorthands, names)
	return m
}

// Shorthands returns the registered shorthand names in registration order.
func (m *OrderableMap) Shorthands() []string {
	return slices.Clone(m.shorthands)
}

// Shorthand returns a setter for a name registered with Extend.
func (m *OrderableMap) Shorthand(name string) (func(value any) *OrderableMap, error) {
	if !slices.Contains(m.shorthands, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShorthand, name)
	}
	return func(value any) *OrderableMap { return m.Set(name, value) }, nil
}

// ToConfig returns the entries in resolved order with nested builders
// converted. With Options.AsArray it returns only the values, as a []any.
func (m *OrderableMap) ToConfig() any {
	if m.opts.AsArray {
		values := m.Values()
		for i, v := range values {
			values[i] = toConfig(v)
		}
		return values
	}
	out := orderedmap.New[string, any]()
	for k, v := range m.All() {
		out.Set(k, toConfig(v))
	}
	return out
}

func (m *OrderableMap) position(key string) *Position {
	return &Position{key: key, m: m}
}
