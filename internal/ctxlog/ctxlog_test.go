// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Fatal("FromContext should return the stored logger")
	}

	FromContext(ctx).Info("hello", "key", "value")
	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("log output = %q, want key=value", buf.String())
	}
}

func TestFromContext_Default(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
	if got := FromContext(WithLogger(context.Background(), nil)); got != slog.Default() {
		t.Error("FromContext with a nil logger should return slog.Default()")
	}
}
