package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.JPG", "c.jpeg", "d.png", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.jpg"), 0755))

	files, err := FindFilesByExtension(dir, ".jpg", ".jpeg")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.JPG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpeg"),
	}, files)
}

func TestFindFilesByExtensionMissingDir(t *testing.T) {
	t.Parallel()
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".jpg")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFindFilesByExtensionPanicsWithoutExtensions(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "recipe.tres")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}
