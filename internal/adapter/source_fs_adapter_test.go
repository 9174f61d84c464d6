package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "torment.dev/pkg/torment/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		visited := walkAll(t, adapter, root)

		assert.Contains(t, visited, child)
	})

	t.Run("follows a symlinked root and keeps its spelling", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		target := t.TempDir()
		writeTestFile(t, filepath.Join(target, "main.go"), "package main\n")
		mustMkdir(t, filepath.Join(target, "nested"))
		writeTestFile(t, filepath.Join(target, "nested", "child.go"), "package nested\n")

		link := filepath.Join(t.TempDir(), "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		visited := walkAll(t, adapter, link)

		assert.Equal(t, []string{
			link,
			filepath.Join(link, "main.go"),
			filepath.Join(link, "nested"),
			filepath.Join(link, "nested", "child.go"),
		}, visited)
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error {
			t.Fatal("callback must not run after cancellation")
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("missing root reports the error to the callback", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		missing := filepath.Join(t.TempDir(), "missing")

		var gotErr error
		err := adapter.Walk(context.Background(), m.Path(missing), func(_ string, _ os.FileInfo, err error) error {
			gotErr = err
			return nil
		})
		require.NoError(t, err)
		assert.True(t, os.IsNotExist(gotErr))
	})
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "package main\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func walkAll(t *testing.T, adapter *LocalSourceFSAdapter, root string) []string {
	t.Helper()

	var visited []string

	err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		visited = append(visited, path)

		return nil
	})
	require.NoError(t, err)

	return visited
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
