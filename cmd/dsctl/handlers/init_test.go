package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsctl.yaml")

	require.NoError(t, Init(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "host:")
	assert.Contains(t, string(data), "acme_email:")
}

func TestInit_WriteError(t *testing.T) {
	origWrite := writeStarter
	writeStarter = func(string) error { return os.ErrPermission }
	t.Cleanup(func() { writeStarter = origWrite })

	err := Init("dsctl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}

func TestInit_ExistingFileStillOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old: config\n"), 0o644))

	require.NoError(t, Init(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old: config")
}
