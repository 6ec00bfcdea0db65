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
	"strings"

	"github.com/albertocavalcante/chainconf/chain"
	"github.com/albertocavalcante/chainconf/internal/ctxlog"
	"github.com/albertocavalcante/chainconf/load"
	"github.com/albertocavalcante/chainconf/order"
	"github.com/albertocavalcante/chainconf/orderedmap"
)

// assemble merges every input into one builder tree, then applies deletes
// and moves.
func assemble(ctx context.Context, cfg *config, stdin io.Reader) (*chain.OrderableMap, error) {
	logger := ctxlog.FromContext(ctx)
	root := chain.NewOrderableMap(nil, chain.Options{AsArray: cfg.array})

	for _, arg := range cfg.paths {
		frags, err := loadArg(ctx, arg, cfg.inputFormat, stdin)
		if err != nil {
			return nil, err
		}
		for _, frag := range frags {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			root.Merge(frag.All(), cfg.omit...)
		}
	}

	lift(root)

	for _, path := range cfg.deletes {
		parent, key, err := lookup(root, path)
		if err != nil {
			return nil, fmt.Errorf("delete %s: %w", path, err)
		}
		parent.Delete(key)
		logger.Debug("deleted key", "path", path)
	}

	for _, mv := range cfg.moves {
		parent, key, err := lookup(root, mv.key)
		if err != nil {
			return nil, fmt.Errorf("move %s: %w", mv, err)
		}
		parent.Move(key, func(p *chain.Position) {
			if mv.placement == order.Before {
				p.Before(mv.relative)
			} else {
				p.After(mv.relative)
			}
		})
		if !parent.Has(mv.relative) {
			logger.Warn("move target not present, directive has no effect", "move", mv.String())
		}
		logger.Debug("placed key", "move", mv.String())
	}

	return root, nil
}

// loadArg loads one command-line path: stdin, a file, or every fragment of a
// directory.
func loadArg(ctx context.Context, arg string, format load.Format, stdin io.Reader) ([]*orderedmap.Map[string, any], error) {
	if arg == "-" {
		if format == "" {
			format = load.YAML
		}
		frag, err := load.Read(ctx, "stdin", stdin, format)
		if err != nil {
			return nil, err
		}
		return []*orderedmap.Map[string, any]{frag}, nil
	}

	files, err := load.Paths(arg)
	if err != nil {
		return nil, err
	}

	frags := make([]*orderedmap.Map[string, any], 0, len(files))
	for _, file := range files {
		frag, err := load.File(ctx, file, load.Options{Format: format})
		if err != nil {
			return nil, err
		}
		frags = append(frags, frag)
	}
	return frags, nil
}

// lift replaces nested objects with orderable builders so nested keys can
// be deleted and moved too.
func lift(m *chain.OrderableMap) {
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		obj, ok := v.(*orderedmap.Map[string, any])
		if !ok {
			continue
		}
		child := chain.NewOrderableMap(m, chain.Options{})
		child.Merge(obj.All())
		lift(child)
		m.Set(key, child)
	}
}

// lookup resolves a dotted key path to the map holding its last segment.
func lookup(root *chain.OrderableMap, path string) (*chain.OrderableMap, string, error) {
	parts := strings.Split(path, ".")
	cur := root
	for i, part := range parts[:len(parts)-1] {
		v, ok := cur.Get(part)
		if !ok {
			return nil, "", fmt.Errorf("no key %q", strings.Join(parts[:i+1], "."))
		}
		child, ok := v.(*chain.OrderableMap)
		if !ok {
			return nil, "", fmt.Errorf("%q is not an object", strings.Join(parts[:i+1], "."))
		}
		cur = child
	}
	return cur, parts[len(parts)-1], nil
}
