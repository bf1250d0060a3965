// Package reqgen drives request-builder generation. A run loads annotated
// packages through the provider, validates the resulting descriptors,
// renders one Go file per package, and writes the output next to the
// package sources.
package reqgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmstorey/reqwire/reqgen/golang"
	"github.com/tmstorey/reqwire/reqgen/ir"
	"github.com/tmstorey/reqwire/reqgen/provider"
	"github.com/tmstorey/reqwire/reqgen/sink"
)

// File is one rendered output file.
type File struct {
	// Pkg is the package the file was generated for.
	Pkg *ir.Package

	// Name is the file's base name within the package directory.
	Name string

	// Content is the formatted Go source.
	Content []byte
}

// Path returns the file's location on disk.
func (f *File) Path() string {
	return filepath.Join(f.Pkg.Dir, f.Name)
}

// Build runs the load, validate, and render stages and returns the rendered
// files without writing anything.
func Build(cfg Config) ([]File, error) {
	cfg = cfg.withDefaults()

	p := &provider.SourceProvider{Dir: cfg.Dir, Patterns: cfg.Patterns, Env: cfg.Env}
	pkgs, err := p.Load()
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, nil
	}

	var files []File
	for _, pkg := range pkgs {
		if errs := pkg.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("package %s: %w", pkg.Path, errors.Join(errs...))
		}
		src, err := golang.EmitPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.Path, err)
		}
		files = append(files, File{Pkg: pkg, Name: cfg.FileName, Content: src})
	}
	return files, nil
}

// Generate runs Build and writes each rendered file into its package
// directory. It returns the paths written.
func Generate(ctx context.Context, cfg Config) ([]string, error) {
	files, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	var written []string
	for i := range files {
		f := &files[i]
		s := sink.NewFilesystemSink(f.Pkg.Dir)
		if err := s.WriteFile(ctx, f.Name, f.Content); err != nil {
			return written, fmt.Errorf("package %s: %w", f.Pkg.Path, err)
		}
		written = append(written, f.Path())
	}
	return written, nil
}

// Check runs Build and compares each rendered file against what is on disk.
// It returns the paths that are missing or out of date, so callers can fail
// CI when generated code has drifted from its sources.
func Check(ctx context.Context, cfg Config) ([]string, error) {
	files, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	var stale []string
	for i := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f := &files[i]
		existing, err := os.ReadFile(f.Path())
		if err != nil || !bytes.Equal(existing, f.Content) {
			stale = append(stale, f.Path())
		}
	}
	return stale, nil
}
