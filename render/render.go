// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render turns resolved configuration trees into text.
//
// A tree is what a builder's ToConfig returns: *orderedmap.Map[string, any]
// for objects, []any for arrays, and scalars. Renderers keep the key order of
// ordered maps; plain Go maps are written with sorted keys. A builder may be
// passed directly, in which case its ToConfig is called first.
package render

import (
	"context"
)

// Renderer is the interface every output format implements.
type Renderer interface {
	// Metadata returns information about this renderer.
	Metadata() Metadata

	// Render encodes cfg.
	Render(ctx context.Context, cfg any, opts Options) ([]byte, error)
}

// Metadata describes a renderer.
type Metadata struct {
	// Name is the short identifier used to select the renderer ("json").
	Name string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".json"]).
	FileExtensions []string
}

// Options controls rendering.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero selects the
	// renderer's default.
	Indent int

	// Options contains renderer-specific options.
	Options map[string]string
}

// Option returns a renderer-specific option with default.
func (o Options) Option(key, defaultValue string) string {
	if v, ok := o.Options[key]; ok {
		return v
	}
	return defaultValue
}

func (o Options) indent(def int) int {
	if o.Indent > 0 {
		return o.Indent
	}
	return def
}
