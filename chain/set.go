// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

import (
	"iter"
	"slices"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

// Set is an insertion-ordered set builder.
type Set[T comparable] struct {
	Chainable

	store *orderedmap.Map[T, struct{}]
}

// NewSet creates an empty Set whose End returns parent.
func NewSet[T comparable](parent any) *Set[T] {
	return &Set[T]{
		Chainable: Chainable{parent: parent},
		store:     orderedmap.New[T, struct{}](),
	}
}

// Batch calls fn with s and returns s.
func (s *Set[T]) Batch(fn func(*Set[T])) *Set[T] {
	return batch(s, fn)
}

// When calls whenTrue if cond holds and whenFalse otherwise.
func (s *Set[T]) When(cond bool, whenTrue, whenFalse func(*Set[T])) *Set[T] {
	return when(s, cond, whenTrue, whenFalse)
}

// Add appends value unless it is already present.
func (s *Set[T]) Add(value T) *Set[T] {
	s.store.Set(value, struct{}{})
	return s
}

// Prepend moves value to the front, adding it if needed.
func (s *Set[T]) Prepend(value T) *Set[T] {
	s.store.Set(value, struct{}{})
	s.store.MoveToFront(value)
	return s
}

// Has reports whether value is present.
func (s *Set[T]) Has(value T) bool {
	return s.store.Has(value)
}

// Delete removes value.
func (s *Set[T]) Delete(value T) *Set[T] {
	s.store.Delete(value)
	return s
}

// Clear removes every value.
func (s *Set[T]) Clear() *Set[T] {
	s.store.Clear()
	return s
}

// Len returns the number of values.
func (s *Set[T]) Len() int {
	return s.store.Len()
}

// Values returns the values in order.
func (s *Set[T]) Values() []T {
	return slices.Collect(s.store.Keys())
}

// All iterates the values in order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.store.Keys()
}

// ForEach calls fn for every value in order.
func (s *Set[T]) ForEach(fn func(value T, s *Set[T])) *Set[T] {
	for _, v := range s.Values() {
		fn(v, s)
	}
	return s
}

// Merge appends the values not already present, in order.
func (s *Set[T]) Merge(values ...T) *Set[T] {
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// ToConfig returns the values as a []any with nested builders converted.
func (s *Set[T]) ToConfig() any {
	out := make([]any, 0, s.Len())
	for v := range s.All() {
		out = append(out, toConfig(v))
	}
	return out
}
