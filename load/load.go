// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package load reads configuration fragments into ordered values.
//
// A fragment is a JSON, YAML or HCL document whose top level is an object.
// Objects at every depth become *orderedmap.Map[string, any] in document
// order, arrays become []any, integers become int64 and other numbers
// float64. The result can be passed straight to chain.OrderableMap.Merge:
//
//	frag, err := load.File(ctx, "base.yaml", load.Options{})
//	m.Merge(frag.All())
package load

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/albertocavalcante/chainconf/internal/ctxlog"
	"github.com/albertocavalcante/chainconf/orderedmap"
)

// Format names a fragment syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	HCL  Format = "hcl"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, HCL}

var extensions = map[string]Format{
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
	".hcl":  HCL,
}

// Options configures loading.
type Options struct {
	// Format forces the syntax. If empty, it is taken from the file
	// extension.
	Format Format
}

// ParseFormat validates a format name given by a user.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: file %q", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Paths expands path into the fragment files to load. A file is returned as
// is. A directory yields its supported files, non-recursively and sorted by
// name.
func Paths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("access path: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := FormatFor(entry.Name()); err == nil {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}

	slices.Sort(files)
	return files, nil
}

// File reads and parses one fragment file.
func File(ctx context.Context, path string, opts Options) (*orderedmap.Map[string, any], error) {
	format := opts.Format
	if format == "" {
		f, err := FormatFor(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(ctx, path, data, format)
}

// Read parses a fragment from r. name is used in error messages.
func Read(ctx context.Context, name string, r io.Reader, format Format) (*orderedmap.Map[string, any], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return Parse(ctx, name, data, format)
}

// Parse parses a fragment held in memory.
func Parse(ctx context.Context, name string, data []byte, format Format) (*orderedmap.Map[string, any], error) {
	var (
		m   *orderedmap.Map[string, any]
		err error
	)

	switch format {
	case JSON:
		m, err = parseJSON(data)
	case YAML:
		m, err = parseYAML(data)
	case HCL:
		m, err = parseHCL(name, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	ctxlog.FromContext(ctx).Debug("loaded fragment",
		"name", name,
		"format", string(format),
		"keys", m.Len(),
	)
	return m, nil
}

// empty reports whether data holds only whitespace.
func empty(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
