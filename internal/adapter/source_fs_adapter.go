// Package adapter contains infrastructure adapters used by the loader and the CLI.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "torment.dev/pkg/torment/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that discovery
// relies on when scanning fixture trees. It hides direct `os` access so the
// loader can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses every entry under root, root included. A root that is a
	// symlink is followed; reported paths keep the caller's spelling of root.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the loader.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root and its subdirectories.
// The walk stops with the context error once ctx is done.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	rootStr := string(root)

	// filepath.Walk does not follow a symlinked root, so walk its target.
	walkRoot := rootStr
	if resolved, err := filepath.EvalSymlinks(rootStr); err == nil {
		walkRoot = resolved
	}

	return filepath.Walk(walkRoot, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(rebase(path, walkRoot, rootStr), info, err)
	})
}

// rebase rewrites path, found under walkRoot, to sit under root instead.
func rebase(path, walkRoot, root string) string {
	if walkRoot == root {
		return path
	}

	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}

	return filepath.Join(root, rel)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}
