// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for chainconf.
package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Special archive file names.
const (
	// StdinFile holds the bytes fed to the command's stdin.
	StdinFile = "stdin"

	// StdoutFile is the want/ entry compared against the command's stdout.
	StdoutFile = "stdout"

	// ErrorFile is the want/ entry compared against the command's error
	// message. A case with it expects the command to fail.
	ErrorFile = "error"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains the whitespace-separated arguments of the "Flags: ..."
	// line in the description.
	Flags []string

	// Inputs are the files written into the working directory before the
	// command runs.
	Inputs []txtar.File

	// Stdin is the contents of the "stdin" file, if any.
	Stdin []byte

	// Want maps relative paths (e.g., "stdout", "out.yaml") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - Input files, and optionally a "stdin" file
//   - One or more "want/<filename>" files with expected output
//
// "want/stdout" is compared with standard output and "want/error" with the
// error returned by the command. Any other want file is read from the
// working directory after the run.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}

	c.parseFlags()

	for _, f := range ar.Files {
		switch {
		case f.Name == StdinFile:
			c.Stdin = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.Want[relPath] = f.Data
		default:
			c.Inputs = append(c.Inputs, f)
		}
	}

	if len(c.Inputs) == 0 && c.Stdin == nil {
		return nil, fmt.Errorf("missing input files in archive")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseFlags extracts flags from "Flags: ..." line in the description.
// Flags are space-separated to match CLI conventions.
func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Flags:") {
			c.Flags = strings.Fields(strings.TrimPrefix(line, "Flags:"))
			break
		}
	}
}

// WriteInputs writes the input files into dir.
func (c *Case) WriteInputs(dir string) error {
	for _, f := range c.Inputs {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// RunFunc runs the command under test in dir with the case's stdin and
// flags, returning what it wrote to stdout.
type RunFunc func(dir string, stdin []byte, flags []string) (stdout []byte, err error)

// Run executes the test case in a fresh directory and returns the outputs
// named by the case's want files.
func (c *Case) Run(t *testing.T, run RunFunc) map[string][]byte {
	t.Helper()

	dir := t.TempDir()
	if err := c.WriteInputs(dir); err != nil {
		t.Fatalf("write inputs: %v", err)
	}

	stdout, err := run(dir, c.Stdin, c.Flags)
	_, wantErr := c.Want[ErrorFile]
	switch {
	case err != nil && !wantErr:
		t.Fatalf("run failed: %v", err)
	case err == nil && wantErr:
		t.Fatalf("run succeeded, want error %q", strings.TrimSpace(string(c.Want[ErrorFile])))
	}

	got := map[string][]byte{}
	if err != nil {
		got[ErrorFile] = []byte(err.Error() + "\n")
	}
	if len(stdout) > 0 || c.Want[StdoutFile] != nil {
		got[StdoutFile] = stdout
	}

	for name := range c.Want {
		if name == StdoutFile || name == ErrorFile {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			t.Fatalf("read output %q: %v", name, err)
		}
		got[name] = data
	}
	return got
}

// Compare compares generated output against expected output and reports
// differences.
func (c *Case) Compare(t *testing.T, got map[string][]byte) {
	t.Helper()

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		wantNorm := normalizeContent(wantContent)
		gotNorm := normalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	// Keep comment and inputs
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory, paired with
// the archive each was parsed from.
func LoadTestCases(t *testing.T, dir string) []Loaded {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []Loaded
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, Loaded{Case: c, Path: file, Archive: ar})
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Case.Name < cases[j].Case.Name
	})

	return cases
}

// Loaded is a parsed case together with its source archive.
type Loaded struct {
	Case    *Case
	Path    string
	Archive *txtar.Archive
}

// Golden runs every case in dir with run. With update set, it rewrites the
// want files of each archive instead of comparing.
func Golden(t *testing.T, dir string, update bool, run RunFunc) {
	t.Helper()

	for _, l := range LoadTestCases(t, dir) {
		t.Run(l.Case.Name, func(t *testing.T) {
			got := l.Case.Run(t, run)

			if update {
				updated := UpdateArchive(l.Archive, got)
				if err := os.WriteFile(l.Path, FormatArchive(updated), 0o644); err != nil {
					t.Fatalf("write updated file: %v", err)
				}
				t.Logf("updated %s", l.Path)
				return
			}

			l.Case.Compare(t, got)
		})
	}
}
