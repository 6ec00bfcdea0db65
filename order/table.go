// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package order

// Table maps each key to at most one directive. The last directive set for a
// key wins. The zero value is an empty table ready to use.
type Table[K comparable] struct {
	directives map[K]Directive[K]
}

// NewTable creates an empty table.
func NewTable[K comparable]() *Table[K] {
	return &Table[K]{directives: make(map[K]Directive[K])}
}

// Set replaces the directive for key.
func (t *Table[K]) Set(key K, d Directive[K]) {
	if t.directives == nil {
		t.directives = make(map[K]Directive[K])
	}
	t.directives[key] = d
}

// Place is shorthand for Set with a relative key and placement.
func (t *Table[K]) Place(key K, placement Placement, relative K) {
	t.Set(key, Directive[K]{Relative: relative, Placement: placement})
}

// Get returns the directive for key.
func (t *Table[K]) Get(key K) (Directive[K], bool) {
	if t == nil {
		return Directive[K]{}, false
	}
	d, ok := t.directives[key]
	return d, ok
}

// Delete drops the directive owned by key. Directives that name key as
// their relative key are left alone.
func (t *Table[K]) Delete(key K) {
	if t == nil {
		return
	}
	delete(t.directives, key)
}

// Clear drops every directive.
func (t *Table[K]) Clear() {
	if t == nil {
		return
	}
	clear(t.directives)
}

// Len returns the number of keys with a directive.
func (t *Table[K]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.directives)
}
