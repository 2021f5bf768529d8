package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testThemeYAML = `themes:
  - name: midnight
    accent: "#1D4ED8"
    secondary: "#6D28D9"
    confirm: "#047857"
    destructive: "#B91C1C"
    muted: "#4B5563"
    text: "#E5E7EB"
  - name: paper
    accent: "#0F766E"
    secondary: "#9D174D"
    confirm: "#166534"
    destructive: "#991B1B"
    muted: "#6B7280"
    text: "#1F2937"
`

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, "dusk", theme.Name)
	assert.NoError(t, theme.Validate())
}

func TestBuiltinTheme(t *testing.T) {
	theme, ok := BuiltinTheme("daylight")
	require.True(t, ok)
	assert.NoError(t, theme.Validate())

	_, ok = BuiltinTheme("nonexistent")
	assert.False(t, ok)
}

func TestLoadThemeFile(t *testing.T) {
	path := writeThemeFile(t, testThemeYAML)

	themes, err := LoadThemeFile(path)
	require.NoError(t, err)
	require.Len(t, themes, 2)

	assert.Equal(t, "#1D4ED8", themes["midnight"].Accent)
	assert.Equal(t, "#1F2937", themes["paper"].Text)
}

func TestLoadThemeFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeThemeFile(t, "themes: [not: valid: yaml")
		_, err := LoadThemeFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid color", func(t *testing.T) {
		path := writeThemeFile(t, `themes:
  - name: broken
    accent: "blue"
    secondary: "#6D28D9"
    confirm: "#047857"
    destructive: "#B91C1C"
    muted: "#4B5563"
    text: "#E5E7EB"
`)
		_, err := LoadThemeFile(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accent")
	})

	t.Run("nameless theme", func(t *testing.T) {
		path := writeThemeFile(t, `themes:
  - accent: "#1D4ED8"
    secondary: "#6D28D9"
    confirm: "#047857"
    destructive: "#B91C1C"
    muted: "#4B5563"
    text: "#E5E7EB"
`)
		_, err := LoadThemeFile(path)
		assert.Error(t, err)
	})
}

func TestResolveTheme(t *testing.T) {
	path := writeThemeFile(t, testThemeYAML)

	// File themes win.
	theme := ResolveTheme("midnight", path)
	assert.Equal(t, "midnight", theme.Name)

	// Built-ins resolve without a file.
	theme = ResolveTheme("daylight", "")
	assert.Equal(t, "daylight", theme.Name)

	// Unknown names fall back to the default.
	theme = ResolveTheme("nonexistent", path)
	assert.Equal(t, DefaultTheme().Name, theme.Name)
}
