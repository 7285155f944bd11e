package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")

	_, err := NewStore(dir, "http://localhost:3005")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "http://localhost:3005")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "intro.mp3"), []byte("mp3"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	assert.True(t, store.Exists("intro.mp3"))
	assert.False(t, store.Exists("missing.mp3"))
	assert.False(t, store.Exists(""), "empty asset ref must not resolve")
	assert.False(t, store.Exists("subdir"), "directories are not assets")
}

func TestPublicURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), "https://bridge.example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://bridge.example.com/audio/intro.mp3", store.PublicURL("intro.mp3"))
}
