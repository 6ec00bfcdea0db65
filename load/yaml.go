// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package load

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	yaml "sigs.k8s.io/yaml/goyaml.v3"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

// parseJSON reads JSON through the YAML node parser, which keeps the key
// order of nested objects. JSON is checked first so YAML-only syntax is
// rejected.
func parseJSON(data []byte) (*orderedmap.Map[string, any], error) {
	if empty(data) {
		return orderedmap.New[string, any](), nil
	}
	if !json.Valid(data) {
		return nil, errors.New("invalid JSON")
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*orderedmap.Map[string, any], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	// An empty document decodes to a zero node.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return orderedmap.New[string, any](), nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return orderedmap.New[string, any](), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	v, err := fromNode(root)
	if err != nil {
		return nil, err
	}
	return v.(*orderedmap.Map[string, any]), nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])

	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.MappingNode:
		m := orderedmap.New[string, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: non-scalar key", k.Line)
			}
			if k.Tag == "!!merge" {
				if err := mergeKey(m, v); err != nil {
					return nil, err
				}
				continue
			}
			value, err := fromNode(v)
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, value)
		}
		return m, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

// mergeKey applies a "<<" merge key: keys not already set are copied from
// the referenced mapping, or mappings.
func mergeKey(m *orderedmap.Map[string, any], v *yaml.Node) error {
	src, err := fromNode(v)
	if err != nil {
		return err
	}
	var maps []any
	switch src := src.(type) {
	case *orderedmap.Map[string, any]:
		maps = []any{src}
	case []any:
		maps = src
	default:
		return fmt.Errorf("line %d: merge key needs a mapping", v.Line)
	}
	for _, item := range maps {
		om, ok := item.(*orderedmap.Map[string, any])
		if !ok {
			return fmt.Errorf("line %d: merge key needs a mapping", v.Line)
		}
		for k, val := range om.All() {
			if !m.Has(k) {
				m.Set(k, val)
			}
		}
	}
	return nil
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
