// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"context"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/albertocavalcante/chainconf/internal/ctxlog"
)

// HCLRenderer writes native HCL syntax. The top level must be an object
// whose keys are HCL identifiers; they become attributes.
//
// Options:
//
//	blocks  "true" writes nested objects whose keys are all identifiers as
//	        blocks instead of object attributes
//
// The indent width is fixed by the HCL formatter.
type HCLRenderer struct{}

// NewHCL returns the HCL renderer.
func NewHCL() *HCLRenderer {
	return &HCLRenderer{}
}

// Metadata implements Renderer.
func (*HCLRenderer) Metadata() Metadata {
	return Metadata{
		Name:           "hcl",
		Description:    "HashiCorp Configuration Language",
		FileExtensions: []string{".hcl"},
	}
}

// Render implements Renderer.
func (*HCLRenderer) Render(ctx context.Context, cfg any, opts Options) ([]byte, error) {
	tree, err := normalize(cfg)
	if err != nil {
		return nil, err
	}

	root, ok := tree.(*object)
	if !ok {
		return nil, fmt.Errorf("%w: hcl needs an object at the top level, got %T", ErrUnsupportedValue, tree)
	}

	blocks := opts.Option("blocks", "false") == "true"
	f := hclwrite.NewEmptyFile()
	if err := writeBody(f.Body(), root, blocks); err != nil {
		return nil, err
	}

	out := hclwrite.Format(f.Bytes())
	ctxlog.FromContext(ctx).Debug("rendered", "renderer", "hcl", "bytes", len(out), "blocks", blocks)
	return out, nil
}

func writeBody(body *hclwrite.Body, obj *object, blocks bool) error {
	for k, v := range obj.All() {
		if !hclsyntax.ValidIdentifier(k) {
			return fmt.Errorf("%w: %q is not an HCL identifier", ErrInvalidKey, k)
		}
		if nested, ok := v.(*object); ok && blocks && identifiersOnly(nested) {
			if err := writeBody(body.AppendNewBlock(k, nil).Body(), nested, blocks); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			continue
		}
		tokens, err := hclTokens(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		body.SetAttributeRaw(k, tokens)
	}
	return nil
}

func identifiersOnly(obj *object) bool {
	for k := range obj.Keys() {
		if !hclsyntax.ValidIdentifier(k) {
			return false
		}
	}
	return true
}

// hclTokens writes objects and tuples token by token so nested keys keep
// their order; cty object values would be sorted by attribute name.
func hclTokens(v any) (hclwrite.Tokens, error) {
	switch v := v.(type) {
	case *object:
		if v.Len() == 0 {
			return hclwrite.TokensForValue(cty.EmptyObjectVal), nil
		}
		attrs := make([]hclwrite.ObjectAttrTokens, 0, v.Len())
		for k, e := range v.All() {
			name := hclwrite.TokensForValue(cty.StringVal(k))
			if hclsyntax.ValidIdentifier(k) {
				name = hclwrite.TokensForIdentifier(k)
			}
			value, err := hclTokens(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			attrs = append(attrs, hclwrite.ObjectAttrTokens{Name: name, Value: value})
		}
		return hclwrite.TokensForObject(attrs), nil

	case []any:
		if len(v) == 0 {
			return hclwrite.TokensForValue(cty.EmptyTupleVal), nil
		}
		elems := make([]hclwrite.Tokens, 0, len(v))
		for i, e := range v {
			t, err := hclTokens(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elems = append(elems, t)
		}
		return hclwrite.TokensForTuple(elems), nil
	}

	val, err := ctyScalar(v)
	if err != nil {
		return nil, err
	}
	return hclwrite.TokensForValue(val), nil
}

func ctyScalar(v any) (cty.Value, error) {
	if v == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	if f, ok := v.(float64); ok {
		if math.IsNaN(f) {
			return cty.NilVal, fmt.Errorf("%w: NaN", ErrUnsupportedValue)
		}
		if i, ok := wholeInt(f); ok {
			v = i
		}
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	val, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("convert %T: %w", v, err)
	}
	return val, nil
}
