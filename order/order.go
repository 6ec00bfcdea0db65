// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package order resolves relative placement directives into a linear key order.
//
// A directive asks for one key to sit immediately before or after another
// key. Each key carries at most one directive; setting a new one replaces the
// old. Resolve applies directives in the original insertion order of the keys,
// one pass, against the order as it evolves:
//
//	keys:       [prop1 prop2 prop3]
//	directives: prop1 after prop3, prop2 before prop1
//	resolved:   [prop3 prop2 prop1]
//
// A directive whose relative key is absent (never added, deleted, or the key
// itself) has no effect for that resolution. It is kept and re-evaluated every
// time, so it starts to apply once the relative key appears.
//
// Cycles and contradictory directives are not detected. The result is whatever
// the single pass produces; it is deterministic but not necessarily a fixed
// point. This is not a general topological sort.
package order

import "slices"

// Placement is the side of the relative key a directive targets.
type Placement int

const (
	// Before places the key immediately before its relative key.
	Before Placement = iota
	// After places the key immediately after its relative key.
	After
)

// String returns "before" or "after".
func (p Placement) String() string {
	switch p {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "unknown"
	}
}

// Directive is a single placement instruction attached to a key.
type Directive[K comparable] struct {
	// Relative is the key to place against. It need not exist.
	Relative K

	// Placement is the side of Relative to land on.
	Placement Placement
}

// Directives looks up the active directive for a key.
type Directives[K comparable] interface {
	Get(key K) (Directive[K], bool)
}

// Resolve returns keys permuted by the directives. The input slice is not
// modified and the result is always a new slice. A nil Directives returns a
// copy of keys.
//
// Directives are applied in the order of keys, not in the order of the
// partially resolved output, so the outcome depends only on the inputs.
// When several keys target the same relative key with the same placement,
// the one processed later ends up closer to it.
func Resolve[K comparable](keys []K, directives Directives[K]) []K {
	resolved := make([]K, len(keys))
	copy(resolved, keys)
	if directives == nil {
		return resolved
	}

	for _, key := range keys {
		d, ok := directives.Get(key)
		if !ok {
			continue
		}
		from := slices.Index(resolved, key)
		if from < 0 || !slices.Contains(resolved, d.Relative) {
			continue
		}

		resolved = slices.Delete(resolved, from, from+1)

		// Looked up after removal; a self-reference is gone by now.
		at := slices.Index(resolved, d.Relative)
		if at < 0 {
			resolved = slices.Insert(resolved, from, key)
			continue
		}
		if d.Placement == After {
			at++
		}
		resolved = slices.Insert(resolved, at, key)
	}
	return resolved
}
