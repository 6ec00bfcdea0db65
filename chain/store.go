// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

import (
	"iter"
	"maps"
	"slices"

	"github.com/albertocavalcante/chainconf/internal/deepmerge"
	"github.com/albertocavalcante/chainconf/orderedmap"
)

// store is the insertion-ordered entry storage shared by Map and OrderableMap.
type store struct {
	entries *orderedmap.Map[string, any]
}

func newStore() *store {
	return &store{entries: orderedmap.New[string, any]()}
}

func (s *store) get(key string) (any, bool) { return s.entries.Get(key) }
func (s *store) has(key string) bool        { return s.entries.Has(key) }
func (s *store) set(key string, value any)  { s.entries.Set(key, value) }
func (s *store) delete(key string)          { s.entries.Delete(key) }
func (s *store) clear()                     { s.entries.Clear() }
func (s *store) len() int                   { return s.entries.Len() }

func (s *store) keys() []string {
	return slices.Collect(s.entries.Keys())
}

// merge applies src in its iteration order, skipping omitted keys. Objects
// and arrays are deep-merged with an existing value at the same key; anything
// else, and any key not yet present, goes through set unchanged.
func (s *store) merge(src iter.Seq2[string, any], omit []string, set func(key string, value any)) {
	for key, value := range src {
		if slices.Contains(omit, key) {
			continue
		}
		existing, ok := s.get(key)
		if !ok || !deepmerge.Mergeable(value) {
			set(key, value)
			continue
		}
		merged, err := deepmerge.Merge(existing, value)
		if err != nil {
			// Shapes mergo refuses to combine: the incoming value wins.
			merged = deepmerge.Clone(value)
		}
		set(key, merged)
	}
}

// sortedEntries iterates a plain map in key order so merges from it are
// deterministic.
func sortedEntries(m map[string]any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
