// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package chain provides fluent builders for nested configuration values.
//
// Builders are mutated through chained method calls instead of literal
// construction, and convert to plain values with ToConfig. Each builder keeps a
// link to its parent so a nested builder can return to it with End.
//
// # Builders
//
//   - [Map] is an insertion-ordered key/value builder.
//   - [Set] is an insertion-ordered set of comparable values.
//   - [OrderableMap] is a [Map] whose entries can be repositioned relative to
//     each other with before/after directives.
//
// Every builder embeds [Chainable] and therefore satisfies [Builder], the
// single marker interface used to recognize nested builders.
//
// # Ordering
//
// An [OrderableMap] stores entries in insertion order and keeps a separate
// table with at most one directive per key ("place X immediately before Y").
// The resolved order is recomputed from both on every read; nothing is cached:
//
//	m := chain.NewOrderableMap(nil, chain.Options{})
//	m.Set("prop1", 1).Set("prop2", 2).Set("prop3", 3)
//	m.Move("prop1", func(p *chain.Position) { p.After("prop3") })
//	m.Move("prop2", func(p *chain.Position) { p.Before("prop1") })
//	m.Keys() // [prop3 prop2 prop1]
//
// A directive naming a key that does not exist is kept and has no effect
// until that key appears. See package order for the resolution rules.
//
// A builder stored in an OrderableMap can position itself without a
// reference to the map:
//
//	rule := chain.NewMap(m)
//	m.Set("rule", rule)
//	_ = rule.Before("prop3")
//
// Calling Before or After on a builder that was never stored in an
// OrderableMap returns [ErrDetached].
//
// # Concurrency
//
// Builders are not safe for concurrent use. Reads of an OrderableMap resolve
// the order each time; callers reading in a hot loop should keep the result
// between mutations.
package chain
