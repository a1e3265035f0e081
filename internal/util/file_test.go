package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "qr", "deck.png")
	require.NoError(t, WriteFile(path, []byte("png")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), got)
}

func TestEnsureDirExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
}
