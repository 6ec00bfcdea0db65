// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command chainconf assembles configuration fragments into one document.
//
// Usage:
//
//	chainconf [flags] PATH...
//
// Each PATH is a JSON, YAML or HCL file, a directory of them, or "-" for
// stdin. Fragments are merged in order: objects merge key by key, arrays
// concatenate and scalars are replaced. Keys can then be deleted or placed
// before or after one another, and the result is written in the chosen
// format.
//
// Flags:
//
//	-f       Output format (default: from -o extension, else json)
//	-o       Output file (default: stdout)
//	-i       Input format, overriding file extensions (stdin default: yaml)
//	-C       Resolve relative paths against a directory
//	-omit    Key to skip while merging (repeatable)
//	-delete  Key path to delete after merging (repeatable)
//	-move    KEY:before:REL or KEY:after:REL (repeatable, applied in order)
//	-array   Emit the top-level values as an array
//	-indent  Spaces per indent level
//	-opt     Renderer option KEY=VALUE (repeatable)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/albertocavalcante/chainconf/internal/ctxlog"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		code := 1
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(code)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, done, err := parseArgs(args, stdout, stderr)
	if err != nil || done {
		return err
	}

	ctx = ctxlog.WithLogger(ctx, newLogger(cfg.logLevel, cfg.logFormat, stderr))

	root, err := assemble(ctx, cfg, stdin)
	if err != nil {
		return err
	}

	out, err := renderConfig(ctx, cfg, root)
	if err != nil {
		return err
	}

	return writeOutput(cfg.output, out, stdout)
}
