// Package loader discovers fixture modules in a directory tree and loads
// them from a registry.
//
// Every source file under a directory maps to a dotted module identifier
// (see ModuleName). ImportDirectory loads the identifiers in sorted order;
// a module that fails to load is logged and skipped so the rest of the tree
// still registers.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"torment.dev/pkg/torment/internal/adapter"
	"torment.dev/pkg/torment/internal/calllog"
	m "torment.dev/pkg/torment/internal/model"
	"torment.dev/pkg/torment/pkg/registry"
)

// Module is a discovered module identifier and the file it came from.
type Module struct {
	ID   m.ModuleID
	Path m.Path
}

// ModuleRegistry is the host capability that loads a module by identifier.
// Failures that should not stop discovery match registry.ErrLoad.
type ModuleRegistry interface {
	Load(ctx context.Context, id string) error
}

// Loader walks directory trees and loads the modules it finds.
type Loader struct {
	fsAdapter adapter.SourceFSAdapter
	modules   ModuleRegistry
}

// New constructs a Loader backed by the provided filesystem adapter and registry.
func New(fsAdapter adapter.SourceFSAdapter, modules ModuleRegistry) *Loader {
	return &Loader{
		fsAdapter: fsAdapter,
		modules:   modules,
	}
}

var defaultLoader = New(adapter.NewLocalSourceFSAdapter(), registry.Default)

// ImportDirectory loads every module under directory from registry.Default.
func ImportDirectory(ctx context.Context, moduleBase, directory string, opts ...Option) error {
	return defaultLoader.ImportDirectory(ctx, moduleBase, directory, opts...)
}

// Discover lists the modules under directory using the local filesystem.
func Discover(ctx context.Context, moduleBase, directory string, opts ...Option) ([]Module, error) {
	return defaultLoader.Discover(ctx, moduleBase, directory, opts...)
}

// ImportDirectory discovers the modules under directory and loads each of
// them in order. Load failures are logged and skipped; the returned error is
// only set for cancellation or failures that are not load errors.
func (l *Loader) ImportDirectory(ctx context.Context, moduleBase, directory string, opts ...Option) error {
	return calllog.Do("ImportDirectory", []any{moduleBase, directory}, func() error {
		slog.Info("loading submodules", "base", moduleBase)
		slog.Info("loading modules", "directory", directory)

		modules, err := l.Discover(ctx, moduleBase, directory, opts...)
		if err != nil {
			return err
		}

		for _, module := range modules {
			if err := l.load(ctx, module); err != nil {
				return err
			}
		}

		return nil
	})
}

func (l *Loader) load(ctx context.Context, module Module) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := l.modules.Load(ctx, string(module.ID))
	if err == nil {
		slog.Info("successfully loaded", "module", module.ID)
		return nil
	}

	if errors.Is(err, registry.ErrLoad) {
		slog.Warn("failed loading", "module", module.ID, "path", module.Path, "error", err)
		return nil
	}

	return fmt.Errorf("load %s: %w", module.ID, err)
}

// Discover walks directory, converts every source file to a module
// identifier and returns them sorted. Unreadable entries are logged and
// skipped; a missing directory yields no modules.
func (l *Loader) Discover(ctx context.Context, moduleBase, directory string, opts ...Option) ([]Module, error) {
	o := buildOptions(opts)

	files, err := l.sourceFiles(ctx, directory, o.Extension)
	if err != nil {
		return nil, err
	}

	modules := make([]Module, 0, len(files))

	for _, file := range files {
		id, ok := moduleName(string(file.Path), string(file.Root), moduleBase, o)
		if !ok {
			slog.Debug("no module name", "path", file.Path)
			continue
		}

		modules = append(modules, Module{ID: m.ModuleID(id), Path: file.Path})
	}

	slices.SortStableFunc(modules, func(a, b Module) int {
		return o.Compare(string(a.ID), string(b.ID))
	})

	return modules, nil
}

// sourceFiles lists the regular files under directory with the given
// extension. Paths are rebuilt from directory as given so the caller's
// spelling of the root can be stripped again.
func (l *Loader) sourceFiles(ctx context.Context, directory, ext string) ([]m.SourceFile, error) {
	root := filepath.Clean(directory)

	var files []m.SourceFile

	err := l.fsAdapter.Walk(ctx, m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if info.IsDir() || path == root || !strings.HasSuffix(path, ext) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			slog.Warn("skipping path outside root", "path", path, "root", root, "error", err)
			return nil
		}

		files = append(files, m.SourceFile{
			Path: m.Path(joinRoot(directory, rel)),
			Root: m.Path(directory),
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", directory, err)
	}

	return files, nil
}

func joinRoot(directory, rel string) string {
	if directory == "" {
		return rel
	}

	if strings.HasSuffix(directory, string(filepath.Separator)) || strings.HasSuffix(directory, "/") {
		return directory + rel
	}

	return directory + string(filepath.Separator) + rel
}
