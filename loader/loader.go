// Package loader provides functionality for loading Clausewitz script files
// from disk: a single file, or every script file under a directory.
//
// The core parser never touches the filesystem; this package pairs it with
// the one-shot file read and the directory walk. Per-file parse errors do
// not abort a directory load — the errors are collected next to the trees
// that did parse, and the walk continues with the next file.
//
// Example usage:
//
//	ldr := loader.New()
//	file, err := ldr.Load(ctx, "common/traits.txt")
//
//	result, err := ldr.LoadDir(ctx, "common")
//	for _, f := range result.Files { ... }
//	for _, e := range result.Errors { ... }
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/robinvdvleuten/clausewitz/ast"
	"github.com/robinvdvleuten/clausewitz/parser"
	"github.com/robinvdvleuten/clausewitz/telemetry"
)

// DefaultExtension is the file extension scanned by LoadDir.
const DefaultExtension = ".txt"

// Loader reads and parses script files. Configure it using functional
// options passed to New.
type Loader struct {
	// Extension filters which files LoadDir parses.
	Extension string
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithExtension overrides the file extension LoadDir scans for.
func WithExtension(ext string) Option {
	return func(l *Loader) {
		l.Extension = ext
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		Extension: DefaultExtension,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result holds the outcome of a directory load. Files and Errors accumulate
// side by side: a file that fails to parse lands in Errors and does not
// prevent later files from landing in Files.
type Result struct {
	Files  []*ast.FileScope
	Errors []error
}

// Load reads and parses a single script file.
func (l *Loader) Load(ctx context.Context, filename string) (*ast.FileScope, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return parser.ParseFile(ctx, data, Address(filename))
}

// LoadBytes parses an already-read buffer, attributing it to filename.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*ast.FileScope, error) {
	return parser.ParseFile(ctx, data, Address(filename))
}

// LoadDir walks root and parses every file carrying the configured
// extension, in lexical walk order. Infrastructure failures (an unreadable
// directory, a cancelled context) abort the walk; per-file read and parse
// failures are collected and the walk continues.
func (l *Loader) LoadDir(ctx context.Context, root string) (*Result, error) {
	timer := telemetry.FromContext(ctx).Start("load " + root)
	defer timer.End()

	result := &Result{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), l.Extension) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to read %s: %w", path, readErr))
			return nil
		}

		file, parseErr := parser.ParseFile(ctx, data, Address(path))
		if parseErr != nil {
			result.Errors = append(result.Errors, parseErr)
			return nil
		}

		result.Files = append(result.Files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Address normalizes a path for error reporting: relative to the working
// directory when the file sits under it, unchanged otherwise.
func Address(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}
