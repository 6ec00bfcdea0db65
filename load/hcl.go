// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package load

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

// parseHCL reads native HCL syntax. Attributes and blocks become keys in
// source order. A block nests one object per label:
//
//	service "web" { port = 80 }
//
// yields {"service": {"web": {"port": 80}}}. Expressions are evaluated
// without variables or functions.
func parseHCL(name string, data []byte) (*orderedmap.Map[string, any], error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type %T", file.Body)
	}
	return fromBody(body)
}

func fromBody(body *hclsyntax.Body) (*orderedmap.Map[string, any], error) {
	type item struct {
		offset int
		attr   *hclsyntax.Attribute
		block  *hclsyntax.Block
	}

	items := make([]item, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, item{offset: attr.SrcRange.Start.Byte, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, item{offset: block.TypeRange.Start.Byte, block: block})
	}
	slices.SortFunc(items, func(a, b item) int { return cmp.Compare(a.offset, b.offset) })

	m := orderedmap.New[string, any]()
	for _, it := range items {
		if it.attr != nil {
			v, err := fromExpr(it.attr.Expr)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", it.attr.Name, err)
			}
			m.Set(it.attr.Name, v)
			continue
		}
		if err := addBlock(m, it.block); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func addBlock(m *orderedmap.Map[string, any], block *hclsyntax.Block) error {
	content, err := fromBody(block.Body)
	if err != nil {
		return fmt.Errorf("block %q: %w", block.Type, err)
	}

	path := append([]string{block.Type}, block.Labels...)
	parent := m
	for _, key := range path[:len(path)-1] {
		existing, ok := parent.Get(key)
		if !ok {
			child := orderedmap.New[string, any]()
			parent.Set(key, child)
			parent = child
			continue
		}
		child, ok := existing.(*orderedmap.Map[string, any])
		if !ok {
			return fmt.Errorf("block %q: %q is already set to a non-object", block.Type, key)
		}
		parent = child
	}

	last := path[len(path)-1]
	if parent.Has(last) {
		return fmt.Errorf("%s: duplicate block %q", block.TypeRange, last)
	}
	parent.Set(last, content)
	return nil
}

// fromExpr walks object and tuple constructors itself so object keys keep
// their source order; cty objects are sorted by attribute name.
func fromExpr(expr hclsyntax.Expression) (any, error) {
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		m := orderedmap.New[string, any]()
		for _, item := range e.Items {
			kv, diags := item.KeyExpr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			if kv.IsNull() || !kv.IsKnown() {
				return nil, fmt.Errorf("%s: object key must be known", item.KeyExpr.Range())
			}
			kv, err := convertString(kv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", item.KeyExpr.Range(), err)
			}
			v, err := fromExpr(item.ValueExpr)
			if err != nil {
				return nil, err
			}
			m.Set(kv.AsString(), v)
		}
		return m, nil

	case *hclsyntax.TupleConsExpr:
		out := make([]any, 0, len(e.Exprs))
		for _, item := range e.Exprs {
			v, err := fromExpr(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	return fromCty(v)
}

func convertString(v cty.Value) (cty.Value, error) {
	if v.Type() == cty.String {
		return v, nil
	}
	var s string
	if err := gocty.FromCtyValue(v, &s); err != nil {
		return cty.NilVal, fmt.Errorf("object key: %w", err)
	}
	return cty.StringVal(s), nil
}

// fromCty converts an evaluated value. Whole numbers that fit become int64.
func fromCty(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil

	case ty == cty.Bool:
		return val.True(), nil

	case ty == cty.Number:
		var i int64
		if err := gocty.FromCtyValue(val, &i); err == nil {
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, err
		}
		return f, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := orderedmap.New[string, any]()
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			e, err := fromCty(v)
			if err != nil {
				return nil, err
			}
			m.Set(k.AsString(), e)
		}
		return m, nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			e, err := fromCty(v)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}
