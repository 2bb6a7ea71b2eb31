package misc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, IsFileExists(path))
	assert.True(t, IsFileExists(dir))
	assert.False(t, IsFileExists(filepath.Join(dir, "missing.txt")))
}

func TestEnsureDir_createsOnce(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "data")

	created, err := EnsureDir(folder)
	require.NoError(t, err)
	assert.True(t, created)
	assert.DirExists(t, folder)

	created, err = EnsureDir(folder)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureDir_blockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := EnsureDir(filepath.Join(blocker, "data"))
	assert.Error(t, err)
}
