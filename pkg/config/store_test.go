package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())
	assert.False(t, store.IsModified())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	err = store.SetSection("ui", map[string]interface{}{
		"theme":    "daylight",
		"vim_keys": false,
	})
	require.NoError(t, err)
	assert.True(t, store.IsModified())

	require.NoError(t, store.Save())
	assert.False(t, store.IsModified())

	// A fresh store reading the same file sees the data.
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)

	data, err := reloaded.GetSection("ui")
	require.NoError(t, err)
	assert.Equal(t, "daylight", data["theme"])
	assert.Equal(t, false, data["vim_keys"])
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)

	data, err := store.GetSection("ui")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreCopiesSectionData(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	original := map[string]interface{}{"theme": "dusk"}
	require.NoError(t, store.SetSection("ui", original))

	// Mutating the caller's map must not reach the store.
	original["theme"] = "mutated"

	data, err := store.GetSection("ui")
	require.NoError(t, err)
	assert.Equal(t, "dusk", data["theme"])

	// And mutating the returned map must not reach the store either.
	data["theme"] = "mutated"
	again, err := store.GetSection("ui")
	require.NoError(t, err)
	assert.Equal(t, "dusk", again["theme"])
}
