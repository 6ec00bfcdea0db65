// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/chainconf/internal/testutil"
	"github.com/albertocavalcante/chainconf/order"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	testutil.Golden(t, "testdata", *update, func(dir string, stdin []byte, flags []string) ([]byte, error) {
		var stdout, stderr bytes.Buffer
		args := append([]string{"-C", dir}, flags...)
		err := run(context.Background(), args, bytes.NewReader(stdin), &stdout, &stderr)
		return stdout.Bytes(), err
	})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    move
		wantErr bool
	}{
		{in: "a:before:b", want: move{key: "a", placement: order.Before, relative: "b"}},
		{in: "server.port:after:host", want: move{key: "server.port", placement: order.After, relative: "host"}},
		{in: "a:sideways:b", wantErr: true},
		{in: ":before:b", wantErr: true},
		{in: "a:after:", wantErr: true},
		{in: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMove(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMove(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMove(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseMove(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg, done, err := parseArgs([]string{
		"-f", "YAML",
		"-omit", "a", "-omit", "b",
		"-delete", "x.y",
		"-move", "k:before:r",
		"-opt", "compact=true",
		"-indent", "4",
		"-array",
		"-C", "/work",
		"-o", "out.yaml",
		"base.json", "-", "/abs/dir",
	}, &stdout, &stderr)
	if err != nil || done {
		t.Fatalf("parseArgs() = %v, %v", done, err)
	}

	if cfg.format != "yaml" {
		t.Errorf("format = %q, want yaml", cfg.format)
	}
	if diff := cmp.Diff([]string{"a", "b"}, cfg.omit); diff != "" {
		t.Errorf("omit mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x.y"}, cfg.deletes); diff != "" {
		t.Errorf("deletes mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.moves) != 1 || cfg.moves[0].String() != "k:before:r" {
		t.Errorf("moves = %v", cfg.moves)
	}
	if diff := cmp.Diff(map[string]string{"compact": "true"}, cfg.options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if cfg.indent != 4 || !cfg.array {
		t.Errorf("indent, array = %d, %v", cfg.indent, cfg.array)
	}
	if diff := cmp.Diff([]string{"/work/base.json", "-", "/abs/dir"}, cfg.paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	if cfg.output != "/work/out.yaml" {
		t.Errorf("output = %q, want /work/out.yaml", cfg.output)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no paths", args: nil, want: "no input"},
		{name: "unknown output format", args: []string{"-f", "toml", "x"}, want: `invalid -f "toml"`},
		{name: "unknown input format", args: []string{"-i", "ini", "x"}, want: "unsupported format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "x"}, want: "invalid log-level"},
		{name: "bad log format", args: []string{"-log-format", "xml", "x"}, want: "invalid log-format"},
		{name: "bad move", args: []string{"-move", "a", "x"}, want: "invalid move"},
		{name: "bad option", args: []string{"-opt", "novalue", "x"}, want: "invalid option"},
		{name: "negative indent", args: []string{"-indent", "-1", "x"}, want: "invalid indent"},
		{name: "unknown flag", args: []string{"-nope"}, want: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			_, _, err := parseArgs(tt.args, &stdout, &stderr)

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("parseArgs() error = %v, want *ExitError", err)
			}
			if exitErr.Code != 2 {
				t.Errorf("Code = %d, want 2", exitErr.Code)
			}
			if !strings.Contains(exitErr.Message, tt.want) {
				t.Errorf("Message = %q, want it to contain %q", exitErr.Message, tt.want)
			}
		})
	}
}

func TestRun_VersionHelpFormats(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"-version"}, want: "chainconf dev (commit: unknown, built: unknown)\n"},
		{args: []string{"-formats"}, want: "hcl    HashiCorp Configuration Language (.hcl)\njson   JSON (.json)\nyaml   YAML (.yaml, .yml)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(context.Background(), tt.args, nil, &stdout, &stderr); err != nil {
				t.Fatalf("run() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, stdout.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("-help", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := run(context.Background(), []string{"-help"}, nil, &stdout, &stderr); err != nil {
			t.Fatalf("run() error: %v", err)
		}
		if !strings.Contains(stdout.String(), "chainconf [flags] PATH...") {
			t.Errorf("help output missing usage line:\n%s", stdout.String())
		}
		if !strings.Contains(stdout.String(), "hcl, json, yaml") {
			t.Errorf("help output missing formats:\n%s", stdout.String())
		}
	})
}

func TestRun_DebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-log-level", "debug", "-log-format", "json", "-move", "a:after:b", "-"}
	err := run(context.Background(), args, strings.NewReader("a: 1\nb: 2\n"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	for _, want := range []string{`"msg":"loaded fragment"`, `"msg":"placed key"`, `"msg":"rendering"`} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %s:\n%s", want, stderr.String())
		}
	}
	if diff := cmp.Diff("{\n  \"b\": 2,\n  \"a\": 1\n}\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_WarnsOnDanglingMove(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-move", "a:after:missing", "-"}
	if err := run(context.Background(), args, strings.NewReader("a: 1\n"), &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stderr.String(), "move target not present") {
		t.Errorf("stderr = %q, want a warning", stderr.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("error", "text", &buf)
	logger.Warn("hidden")
	logger.Error("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q", buf.String())
	}
}
