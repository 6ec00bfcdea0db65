// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"

	yaml "sigs.k8s.io/yaml/goyaml.v3"

	"github.com/albertocavalcante/chainconf/internal/ctxlog"
)

// YAMLRenderer writes block-style YAML. Strings that would read back as
// another type are quoted.
type YAMLRenderer struct{}

// NewYAML returns the YAML renderer.
func NewYAML() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Metadata implements Renderer.
func (*YAMLRenderer) Metadata() Metadata {
	return Metadata{
		Name:           "yaml",
		Description:    "YAML",
		FileExtensions: []string{".yaml", ".yml"},
	}
}

// Render implements Renderer.
func (*YAMLRenderer) Render(ctx context.Context, cfg any, opts Options) ([]byte, error) {
	tree, err := normalize(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(opts.indent(2))
	if err := enc.Encode(yamlNode(tree)); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("rendered", "renderer", "yaml", "bytes", buf.Len())
	return buf.Bytes(), nil
}

// yamlNode builds the node tree for a normalized value. Building nodes
// instead of encoding maps keeps key order.
func yamlNode(v any) *yaml.Node {
	switch v := v.(type) {
	case *object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, e := range v.All() {
			n.Content = append(n.Content, scalarNode("!!str", k), yamlNode(e))
		}
		return n
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v {
			n.Content = append(n.Content, yamlNode(e))
		}
		return n
	case string:
		return scalarNode("!!str", v)
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(v))
	case int64:
		return scalarNode("!!int", strconv.FormatInt(v, 10))
	case float64:
		return floatNode(v)
	}
	return scalarNode("!!null", "null")
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func floatNode(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return scalarNode("!!float", ".nan")
	case math.IsInf(f, 1):
		return scalarNode("!!float", ".inf")
	case math.IsInf(f, -1):
		return scalarNode("!!float", "-.inf")
	}
	// A whole float would otherwise be written with an explicit !!float tag.
	if i, ok := wholeInt(f); ok {
		return scalarNode("!!int", strconv.FormatInt(i, 10))
	}
	return scalarNode("!!float", strconv.FormatFloat(f, 'g', -1, 64))
}
