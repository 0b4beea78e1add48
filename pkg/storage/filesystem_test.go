package storage_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/speclint/pkg/storage"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestFilesystemRepository_Exists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "contracts", "openapi.yaml"), "openapi: 3.1.0")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "rules", "packs"), 0700))

	repo := storage.NewFilesystemRepository(root, nil)

	assert.True(t, repo.Exists("contracts/openapi.yaml"))
	assert.False(t, repo.Exists("contracts/missing.yaml"))
	assert.False(t, repo.Exists("rules/packs"), "directories are not files")
	assert.False(t, repo.Exists(""), "the root itself is not a file")
	assert.True(t, repo.Exists(filepath.Join(root, "contracts", "openapi.yaml")), "absolute paths resolve as-is")
}

func TestFilesystemRepository_Discover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.spec.yaml"), "id: b")
	writeFile(t, filepath.Join(dir, "a.spec.yaml"), "id: a")
	writeFile(t, filepath.Join(dir, "notes.yaml"), "id: n")
	writeFile(t, filepath.Join(dir, "nested", "c.spec.yaml"), "id: c")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.spec.yaml"), 0700))

	repo := storage.NewFilesystemRepository(dir, nil)
	paths, err := repo.Discover(dir, "")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.spec.yaml"),
		filepath.Join(dir, "b.spec.yaml"),
	}, paths)
}

func TestFilesystemRepository_DiscoverEmpty(t *testing.T) {
	dir := t.TempDir()
	paths, err := storage.NewFilesystemRepository(dir, nil).Discover(dir, storage.DefaultPattern)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestFilesystemRepository_DiscoverMissingDir(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir(), nil)

	_, err := repo.Discover(filepath.Join(t.TempDir(), "nope"), "")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	file := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, file, "x")
	_, err = repo.Discover(file, "")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "a file is not a directory: %v", err)
}

func TestFilesystemRepository_DiscoverInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	_, err := storage.NewFilesystemRepository(dir, nil).Discover(dir, "[")
	assert.Error(t, err)
}

func TestFilesystemRepository_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.spec.yaml")
	writeFile(t, path, "id: a\n")

	repo := storage.NewFilesystemRepository(dir, nil)
	data, err := repo.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "id: a\n", string(data))

	_, err = repo.Read(context.Background(), filepath.Join(dir, "missing.spec.yaml"))
	assert.Error(t, err)
}
