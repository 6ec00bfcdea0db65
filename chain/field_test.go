// SPDX-License-Identifier: MIT

package chain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestField_Map(t *testing.T) {
	server := NewMap(nil)
	port := Field[int](server, "port")

	if _, ok := port.Get(); ok {
		t.Error("Get() on absent key should report false")
	}

	if ret := port.Set(8080).Set("host", "localhost"); ret != server {
		t.Error("Set should return the builder")
	}

	got, ok := port.Get()
	if !ok || got != 8080 {
		t.Errorf("Get() = %v, %v; want 8080, true", got, ok)
	}
	if port.Key() != "port" {
		t.Errorf("Key() = %q, want port", port.Key())
	}
	if diff := cmp.Diff([]string{"port"}, server.Shorthands()); diff != "" {
		t.Errorf("Shorthands() mismatch (-want +got):\n%s", diff)
	}

	server.Set("port", "not-an-int")
	if _, ok := port.Get(); ok {
		t.Error("Get() with a mistyped value should report false")
	}
}

func TestField_OrderableMap(t *testing.T) {
	m := NewOrderableMap(nil, Options{})
	name := Field[string](m, "name")
	name.Set("app").Set("version", "1")

	if got, _ := name.Get(); got != "app" {
		t.Errorf("Get() = %q, want app", got)
	}
	if diff := cmp.Diff([]string{"name", "version"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}
