// SPDX-License-Identifier: MIT

package deepmerge

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  any
		src  any
		want any
	}{
		{
			name: "objects merge fields",
			dst:  map[string]any{"foo": "bar"},
			src:  map[string]any{"foz": "baz"},
			want: map[string]any{"foo": "bar", "foz": "baz"},
		},
		{
			name: "primitive at a path is overwritten",
			dst:  map[string]any{"foo": "bar", "n": 1},
			src:  map[string]any{"n": 2},
			want: map[string]any{"foo": "bar", "n": 2},
		},
		{
			name: "nested objects merge recursively",
			dst:  map[string]any{"a": map[string]any{"x": 1}},
			src:  map[string]any{"a": map[string]any{"y": 2}},
			want: map[string]any{"a": map[string]any{"x": 1, "y": 2}},
		},
		{
			name: "nested type change keeps sibling fields",
			dst:  map[string]any{"a": map[string]any{"x": "s", "y": 1}},
			src:  map[string]any{"a": map[string]any{"x": []any{1}}},
			want: map[string]any{"a": map[string]any{"x": []any{1}, "y": 1}},
		},
		{
			name: "arrays concatenate",
			dst:  []any{"a", "b"},
			src:  []any{"b", "c"},
			want: []any{"a", "b", "b", "c"},
		},
		{
			name: "array replaces object",
			dst:  map[string]any{"a": 1},
			src:  []any{1},
			want: []any{1},
		},
		{
			name: "object replaces scalar",
			dst:  "plain",
			src:  map[string]any{"a": 1},
			want: map[string]any{"a": 1},
		},
		{
			name: "scalar replaces object",
			dst:  map[string]any{"a": 1},
			src:  3,
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(tt.dst, tt.src)
			if err != nil {
				t.Fatalf("Merge() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	inner := map[string]any{"x": 1}
	dst := map[string]any{"a": inner}
	src := map[string]any{"a": map[string]any{"y": 2}}

	if _, err := Merge(dst, src); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}

	if diff := cmp.Diff(map[string]any{"x": 1}, inner); diff != "" {
		t.Errorf("dst nested map modified (-want +got):\n%s", diff)
	}
}

func TestMergeable(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"object", map[string]any{}, true},
		{"array", []any{}, true},
		{"ordered object", orderedmap.New[string, any](), true},
		{"string", "x", false},
		{"nil", nil, false},
		{"number", 1.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mergeable(tt.value); got != tt.want {
				t.Errorf("Mergeable(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := map[string]any{"list": []any{map[string]any{"k": "v"}}}
	cloned := Clone(orig).(map[string]any)

	cloned["list"].([]any)[0].(map[string]any)["k"] = "changed"

	if diff := cmp.Diff(map[string]any{"list": []any{map[string]any{"k": "v"}}}, orig); diff != "" {
		t.Errorf("original modified (-want +got):\n%s", diff)
	}
}

func ordered(kv ...any) *Ordered {
	m := orderedmap.New[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

func TestMerge_Ordered(t *testing.T) {
	tests := []struct {
		name     string
		dst      any
		src      any
		wantKeys []string
		want     map[string]any
	}{
		{
			name:     "keeps dst order and appends in src order",
			dst:      ordered("z", 1, "a", 2),
			src:      ordered("m", 3, "z", 9, "b", 4),
			wantKeys: []string{"z", "a", "m", "b"},
			want:     map[string]any{"z": 9, "a": 2, "m": 3, "b": 4},
		},
		{
			name:     "nested ordered objects and arrays",
			dst:      ordered("o", ordered("x", 1), "l", []any{1}),
			src:      ordered("o", ordered("y", 2), "l", []any{2}),
			wantKeys: []string{"o", "l"},
			want:     map[string]any{"o": map[string]any{"x": 1, "y": 2}, "l": []any{1, 2}},
		},
		{
			name:     "plain map into ordered appends sorted",
			dst:      ordered("k", 0),
			src:      map[string]any{"c": 3, "b": 2},
			wantKeys: []string{"k", "b", "c"},
			want:     map[string]any{"k": 0, "b": 2, "c": 3},
		},
		{
			name:     "ordered into plain map",
			dst:      map[string]any{"b": 1, "a": 1},
			src:      ordered("c", 2, "a", 3),
			wantKeys: []string{"a", "b", "c"},
			want:     map[string]any{"a": 3, "b": 1, "c": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(tt.dst, tt.src)
			if err != nil {
				t.Fatalf("Merge() error: %v", err)
			}
			om, ok := got.(*Ordered)
			if !ok {
				t.Fatalf("Merge() = %T, want *Ordered", got)
			}
			if diff := cmp.Diff(tt.wantKeys, slices.Collect(om.Keys())); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, plain(om)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_OrderedDoesNotModifyInputs(t *testing.T) {
	dst := ordered("a", ordered("x", 1))
	src := ordered("a", ordered("y", 2), "b", 1)

	if _, err := Merge(dst, src); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if dst.Len() != 1 {
		t.Errorf("dst modified: %d keys", dst.Len())
	}
	inner, _ := dst.Get("a")
	if inner.(*Ordered).Has("y") {
		t.Error("dst nested object modified")
	}
}

// plain converts ordered objects to maps so cmp can compare values.
func plain(v any) any {
	switch v := v.(type) {
	case *Ordered:
		out := map[string]any{}
		for k, e := range v.All() {
			out[k] = plain(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}
