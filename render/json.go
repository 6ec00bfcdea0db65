// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/albertocavalcante/chainconf/internal/ctxlog"
)

// JSONRenderer writes indented JSON.
//
// Options:
//
//	compact  "true" writes everything on one line
type JSONRenderer struct{}

// NewJSON returns the JSON renderer.
func NewJSON() *JSONRenderer {
	return &JSONRenderer{}
}

// Metadata implements Renderer.
func (*JSONRenderer) Metadata() Metadata {
	return Metadata{
		Name:           "json",
		Description:    "JSON",
		FileExtensions: []string{".json"},
	}
}

// Render implements Renderer.
func (*JSONRenderer) Render(ctx context.Context, cfg any, opts Options) ([]byte, error) {
	tree, err := normalize(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	compact := opts.Option("compact", "false") == "true"
	if !compact {
		enc.SetIndent("", strings.Repeat(" ", opts.indent(2)))
	}
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("rendered", "renderer", "json", "bytes", buf.Len(), "compact", compact)
	return buf.Bytes(), nil
}
