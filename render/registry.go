// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Renderer)
)

// Register adds a renderer to the registry.
func Register(r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	meta := r.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("renderer %q already registered", meta.Name))
	}
	registry[meta.Name] = r
}

// Get returns a renderer by name.
func Get(name string) (Renderer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	return r, ok
}

// Lookup is Get returning ErrUnknownRenderer for a missing name.
func Lookup(name string) (Renderer, error) {
	r, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRenderer, name, strings.Join(List(), ", "))
	}
	return r, nil
}

// ForPath returns the renderer whose extensions include the extension of
// path.
func ForPath(path string) (Renderer, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, name := range List() {
		r, _ := Get(name)
		if slices.Contains(r.Metadata().FileExtensions, ext) {
			return r, true
		}
	}
	return nil, false
}

// List returns all registered renderer names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered renderers.
func All() []Renderer {
	mu.RLock()
	defer mu.RUnlock()
	all := make([]Renderer, 0, len(registry))
	for _, r := range registry {
		all = append(all, r)
	}
	return all
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Renderer)
}
