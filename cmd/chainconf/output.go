// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/albertocavalcante/chainconf/chain"
	"github.com/albertocavalcante/chainconf/internal/ctxlog"
	"github.com/albertocavalcante/chainconf/render"
)

// pickRenderer chooses the renderer from -f, then from the -o extension,
// then falls back to JSON.
func pickRenderer(cfg *config) (render.Renderer, error) {
	if cfg.format != "" {
		return render.Lookup(cfg.format)
	}
	if cfg.output != "" && cfg.output != "-" {
		if r, ok := render.ForPath(cfg.output); ok {
			return r, nil
		}
	}
	return render.Lookup("json")
}

func renderConfig(ctx context.Context, cfg *config, root *chain.OrderableMap) ([]byte, error) {
	r, err := pickRenderer(cfg)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("rendering", "renderer", r.Metadata().Name, "keys", root.Len())

	out, err := r.Render(ctx, root, render.Options{Indent: cfg.indent, Options: cfg.options})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", r.Metadata().Name, err)
	}
	return out, nil
}

func writeOutput(path string, out []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
