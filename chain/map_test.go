// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/chainconf/orderedmap"
)

// ordered builds an ordered source from alternating keys and values.
func ordered(kv ...any) *orderedmap.Map[string, any] {
	m := orderedmap.New[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

func TestMap_End(t *testing.T) {
	parent := NewMap(nil)
	m := NewMap(parent)
	if m.End() != parent {
		t.Error("End() should return the parent")
	}
}

func TestMap_SetGet(t *testing.T) {
	m := NewMap(nil)
	if ret := m.Set("foo", "bar"); ret != m {
		t.Error("Set should return the receiver")
	}

	got, ok := m.Get("foo")
	if !ok || got != "bar" {
		t.Errorf("Get(foo) = %v, %v; want bar, true", got, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
}

func TestMap_Has(t *testing.T) {
	m := NewMap(nil)
	m.Set("foo", "bar").Set("bar", false).Set("baz", nil)

	for _, key := range []string{"foo", "bar", "baz"} {
		if !m.Has(key) {
			t.Errorf("Has(%q) = false, want true", key)
		}
	}
	if m.Has("qux") {
		t.Error("Has(qux) = true, want false")
	}
}

func TestMap_ClearDelete(t *testing.T) {
	m := NewMap(nil)
	m.Set("foo", "bar").Set("foz", "baz")

	if ret := m.Delete("foo"); ret != m {
		t.Error("Delete should return the receiver")
	}
	if m.Has("foo") || !m.Has("foz") {
		t.Errorf("after Delete(foo) keys = %v", m.Keys())
	}

	m.Delete("never-there")

	if ret := m.Clear(); ret != m {
		t.Error("Clear should return the receiver")
	}
	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", m.Len())
	}
}

func TestMap_Tap(t *testing.T) {
	m := NewMap(nil)
	m.Set("foo", "bar")

	var got []any
	ret := m.Tap("foo", func(v any) any {
		got = append(got, v)
		return "baz"
	})

	if ret != m {
		t.Error("Tap should return the receiver")
	}
	if diff := cmp.Diff([]any{"bar"}, got); diff != "" {
		t.Errorf("fn arguments mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("foo"); v != "baz" {
		t.Errorf("Get(foo) = %v, want baz", v)
	}

	m.Tap("new", func(v any) any {
		if v != nil {
			t.Errorf("Tap on absent key got %v, want nil", v)
		}
		return 1
	})
	if v, _ := m.Get("new"); v != 1 {
		t.Errorf("Get(new) = %v, want 1", v)
	}
}

func TestMap_InsertionOrder(t *testing.T) {
	m := NewMap(nil)
	m.Set("z", 1).Set("a", 2).Set("c", 3)

	if diff := cmp.Diff([]string{"z", "a", "c"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{1, 2, 3}, m.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	entries := m.Entries()
	if diff := cmp.Diff([]string{"z", "a", "c"}, slices.Collect(entries.Keys())); diff != "" {
		t.Errorf("Entries() keys mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_ReplaceKeepsPosition(t *testing.T) {
	m := NewMap(nil)
	m.Set("k", "v1").Set("j", "w").Set("k", "v2")

	if diff := cmp.Diff([]string{"k", "j"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("k"); v != "v2" {
		t.Errorf("Get(k) = %v, want v2", v)
	}
}

func TestMap_ForEach(t *testing.T) {
	m := NewMap(nil)
	m.Set("a", 1).Set("b", 2).Set("c", 3)

	type call struct {
		Value any
		Key   string
		Same  bool
	}
	var calls []call
	ret := m.ForEach(func(v any, k string, self *Map) {
		calls = append(calls, call{v, k, self == m})
	})

	want := []call{{1, "a", true}, {2, "b", true}, {3, "c", true}}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("ForEach calls mismatch (-want +got):\n%s", diff)
	}
	if ret != m {
		t.Error("ForEach should return the receiver")
	}
}

func TestMap_Merge(t *testing.T) {
	tests := []struct {
		name     string
		initial  []any
		src      *orderedmap.Map[string, any]
		omit     []string
		wantKeys []string
		want     map[string]any
	}{
		{
			name:     "appends new keys in source order",
			initial:  []any{"a", 1, "b", 2},
			src:      ordered("d", 4, "c", 3),
			wantKeys: []string{"a", "b", "d", "c"},
			want:     map[string]any{"a": 1, "b": 2, "c": 3, "d": 4},
		},
		{
			name:     "overrides existing scalars in place",
			initial:  []any{"a", 1, "b", 2},
			src:      ordered("a", 3, "b", 4),
			wantKeys: []string{"a", "b"},
			want:     map[string]any{"a": 3, "b": 4},
		},
		{
			name:     "deep merges objects",
			initial:  []any{"a", map[string]any{"foo": "bar"}, "b", 2},
			src:      ordered("a", map[string]any{"foz": "baz"}),
			wantKeys: []string{"a", "b"},
			want:     map[string]any{"a": map[string]any{"foo": "bar", "foz": "baz"}, "b": 2},
		},
		{
			name:     "concatenates arrays",
			initial:  []any{"list", []any{"x"}},
			src:      ordered("list", []any{"y"}),
			wantKeys: []string{"list"},
			want:     map[string]any{"list": []any{"x", "y"}},
		},
		{
			name:     "null overwrites",
			initial:  []any{"a", map[string]any{"foo": "bar"}},
			src:      ordered("a", nil),
			wantKeys: []string{"a"},
			want:     map[string]any{"a": nil},
		},
		{
			name:     "nested type change keeps sibling fields",
			initial:  []any{"a", map[string]any{"x": "s", "y": 1}},
			src:      ordered("a", map[string]any{"x": []any{1}}),
			wantKeys: []string{"a"},
			want:     map[string]any{"a": map[string]any{"x": []any{1}, "y": 1}},
		},
		{
			name:     "omits keys",
			initial:  []any{"a", 1, "b", 2},
			src:      ordered("c", 3, "d", 4),
			omit:     []string{"d"},
			wantKeys: []string{"a", "b", "c"},
			want:     map[string]any{"a": 1, "b": 2, "c": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMap(nil)
			for i := 0; i < len(tt.initial); i += 2 {
				m.Set(tt.initial[i].(string), tt.initial[i+1])
			}

			if ret := m.Merge(tt.src.All(), tt.omit...); ret != m {
				t.Error("Merge should return the receiver")
			}

			if diff := cmp.Diff(tt.wantKeys, m.Keys()); diff != "" {
				t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, maps.Collect(m.All())); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_MergeMapSortsNewKeys(t *testing.T) {
	m := NewMap(nil)
	m.Set("z", 0)
	m.MergeMap(map[string]any{"b": 2, "a": 1, "z": 9})

	if diff := cmp.Diff([]string{"z", "a", "b"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("z"); v != 9 {
		t.Errorf("Get(z) = %v, want 9", v)
	}
}

func TestMap_Extend(t *testing.T) {
	m := NewMap(nil)
	if ret := m.Extend("foo", "bar", "foo"); ret != m {
		t.Error("Extend should return the receiver")
	}

	if diff := cmp.Diff([]string{"foo", "bar"}, m.Shorthands()); diff != "" {
		t.Errorf("Shorthands() mismatch (-want +got):\n%s", diff)
	}

	foo, err := m.Shorthand("foo")
	if err != nil {
		t.Fatalf("Shorthand(foo) error: %v", err)
	}
	if ret := foo("bar"); ret != m {
		t.Error("shorthand setter should return the map")
	}
	if v, _ := m.Get("foo"); v != "bar" {
		t.Errorf("Get(foo) = %v, want bar", v)
	}

	if _, err := m.Shorthand("nope"); !errors.Is(err, ErrUnknownShorthand) {
		t.Errorf("Shorthand(nope) error = %v, want ErrUnknownShorthand", err)
	}
}

func TestMap_ToConfig(t *testing.T) {
	m := NewMap(nil)
	child := NewMap(m).Set("x", 1)
	set := NewSet[string](m).Add("b").Add("a")
	m.Set("plain", "v").Set("child", child).Set("set", set)

	cfg, ok := m.ToConfig().(*orderedmap.Map[string, any])
	if !ok {
		t.Fatalf("ToConfig() = %T, want *orderedmap.Map", m.ToConfig())
	}
	if diff := cmp.Diff([]string{"plain", "child", "set"}, slices.Collect(cfg.Keys())); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	nested, _ := cfg.Get("child")
	nestedMap, ok := nested.(*orderedmap.Map[string, any])
	if !ok {
		t.Fatalf("child = %T, want *orderedmap.Map", nested)
	}
	if diff := cmp.Diff(map[string]any{"x": 1}, nestedMap.ToMap()); diff != "" {
		t.Errorf("child mismatch (-want +got):\n%s", diff)
	}

	values, _ := cfg.Get("set")
	if diff := cmp.Diff([]any{"b", "a"}, values); diff != "" {
		t.Errorf("set mismatch (-want +got):\n%s", diff)
	}
}
