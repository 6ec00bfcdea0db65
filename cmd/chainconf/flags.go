// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/chainconf/load"
	"github.com/albertocavalcante/chainconf/order"
	"github.com/albertocavalcante/chainconf/render"
)

// config holds the parsed command line.
type config struct {
	format      string
	output      string
	inputFormat load.Format
	omit        []string
	deletes     []string
	moves       []move
	array       bool
	indent      int
	options     map[string]string
	logLevel    string
	logFormat   string
	paths       []string
}

// move is one -move directive.
type move struct {
	key       string
	placement order.Placement
	relative  string
}

func (m move) String() string {
	return m.key + ":" + m.placement.String() + ":" + m.relative
}

// parseMove parses KEY:before:REL or KEY:after:REL.
func parseMove(s string) (move, error) {
	for _, p := range []order.Placement{order.Before, order.After} {
		sep := ":" + p.String() + ":"
		key, rel, ok := strings.Cut(s, sep)
		if ok && key != "" && rel != "" {
			return move{key: key, placement: p, relative: rel}, nil
		}
	}
	return move{}, fmt.Errorf("invalid move %q: want KEY:before:REL or KEY:after:REL", s)
}

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type moveFlag []move

func (m *moveFlag) String() string {
	parts := make([]string, len(*m))
	for i, mv := range *m {
		parts[i] = mv.String()
	}
	return strings.Join(parts, ",")
}

func (m *moveFlag) Set(v string) error {
	mv, err := parseMove(v)
	if err != nil {
		return err
	}
	*m = append(*m, mv)
	return nil
}

type optionFlag map[string]string

func (o optionFlag) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (o optionFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("invalid option %q: want KEY=VALUE", v)
	}
	o[key] = value
	return nil
}

// parseArgs parses the command line. done reports that the command already
// did its work (help or version) and should exit cleanly.
func parseArgs(args []string, stdout, stderr io.Writer) (cfg *config, done bool, err error) {
	fs := flag.NewFlagSet("chainconf", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	showFormats := fs.Bool("formats", false, "List output formats")

	format := fs.String("f", "", "Output format")
	output := fs.String("o", "", "Output file")
	inputFormat := fs.String("i", "", "Input format")
	dir := fs.String("C", "", "Resolve relative paths against dir")
	array := fs.Bool("array", false, "Emit the top-level values as an array")
	indent := fs.Int("indent", 0, "Spaces per indent level")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "Log format: text, json")

	var omit, deletes listFlag
	var moves moveFlag
	options := optionFlag{}
	fs.Var(&omit, "omit", "Key to skip while merging (repeatable)")
	fs.Var(&deletes, "delete", "Key path to delete (repeatable)")
	fs.Var(&moves, "move", "KEY:before:REL or KEY:after:REL (repeatable)")
	fs.Var(options, "opt", "Renderer option KEY=VALUE (repeatable)")

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *showHelp {
		usage(stdout)
		return nil, true, nil
	}

	if *showVersion {
		fmt.Fprintf(stdout, "chainconf %s (commit: %s, built: %s)\n", version, commit, date)
		return nil, true, nil
	}

	if *showFormats {
		listFormats(stdout)
		return nil, true, nil
	}

	cfg = &config{
		format:    strings.ToLower(*format),
		output:    *output,
		omit:      omit,
		deletes:   deletes,
		moves:     moves,
		array:     *array,
		indent:    *indent,
		options:   options,
		logLevel:  strings.ToLower(*logLevel),
		logFormat: strings.ToLower(*logFormat),
		paths:     fs.Args(),
	}

	if *dir != "" {
		cfg.paths = resolvePaths(*dir, cfg.paths)
		if cfg.output != "" && cfg.output != "-" && !filepath.IsAbs(cfg.output) {
			cfg.output = filepath.Join(*dir, cfg.output)
		}
	}

	if *inputFormat != "" {
		f, err := load.ParseFormat(*inputFormat)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.inputFormat = f
	}

	if cfg.format != "" {
		if _, ok := render.Get(cfg.format); !ok {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf(
				"invalid -f %q: must be one of %s", cfg.format, strings.Join(render.List(), ", "))}
		}
	}

	switch cfg.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	if cfg.indent < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid indent: must not be negative"}
	}

	if len(cfg.paths) == 0 {
		usage(stderr)
		return nil, false, &ExitError{Code: 2, Message: "no input: pass a file, a directory or -"}
	}

	return cfg, false, nil
}

func resolvePaths(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if p == "-" || filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(dir, p)
	}
	return out
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `chainconf - assemble configuration fragments

Merge JSON, YAML and HCL fragments in order, reorder keys, and render the
result.

Usage:
  chainconf [flags] PATH...

PATH is a file, a directory (its .json, .yaml, .yml and .hcl files, sorted)
or - for stdin.

Flags:
  -f string          Output format: %s (default: from -o, else json)
  -o string          Output file (default: stdout)
  -i string          Input format: json, yaml, hcl (default: from extension, yaml for stdin)
  -C dir             Resolve relative paths, including -o, against dir
  -omit key          Skip a top-level key while merging (repeatable)
  -delete path       Delete a key after merging; dots select nested keys (repeatable)
  -move directive    Place a key: KEY:before:REL or KEY:after:REL (repeatable)
  -array             Emit the top-level values as an array
  -indent int        Spaces per indent level
  -opt key=value     Renderer option, e.g. compact=true for json, blocks=true for hcl
  -log-level string  debug, info, warn, error (default: warn)
  -log-format string text, json (default: text)
  -formats           List output formats
  -version           Show version information
  -help              Show this help

Examples:
  # Merge two fragments to YAML
  chainconf -f yaml base.json overrides.yaml

  # Put "plugins" before "entry" and drop "debug"
  chainconf -move plugins:before:entry -delete debug conf.d/

  # Reorder a nested key
  chainconf -move server.port:after:host config.hcl
`, strings.Join(render.List(), ", "))
}

func listFormats(w io.Writer) {
	for _, name := range render.List() {
		r, _ := render.Get(name)
		meta := r.Metadata()
		fmt.Fprintf(w, "%-6s %s (%s)\n", meta.Name, meta.Description, strings.Join(meta.FileExtensions, ", "))
	}
}
