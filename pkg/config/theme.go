package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Theme defines the colors the rendering layer draws navigation chrome
// with. All values are hex colors.
type Theme struct {
	Name        string `yaml:"name"`
	Accent      string `yaml:"accent"`
	Secondary   string `yaml:"secondary"`
	Confirm     string `yaml:"confirm"`
	Destructive string `yaml:"destructive"`
	Muted       string `yaml:"muted"`
	Text        string `yaml:"text"`
}

// themeFile is the on-disk shape of a theme definition file.
type themeFile struct {
	Themes []Theme `yaml:"themes"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// builtinThemes are always available without a theme file.
var builtinThemes = map[string]Theme{
	"dusk": {
		Name:        "dusk",
		Accent:      "#7AA2F7",
		Secondary:   "#BB9AF7",
		Confirm:     "#9ECE6A",
		Destructive: "#F7768E",
		Muted:       "#565F89",
		Text:        "#C0CAF5",
	},
	"daylight": {
		Name:        "daylight",
		Accent:      "#2563EB",
		Secondary:   "#7C3AED",
		Confirm:     "#15803D",
		Destructive: "#B91C1C",
		Muted:       "#6B7280",
		Text:        "#111827",
	},
}

// DefaultTheme returns the theme used when nothing is configured.
func DefaultTheme() Theme {
	return builtinThemes[defaultTheme]
}

// BuiltinTheme returns a built-in theme by name.
func BuiltinTheme(name string) (Theme, bool) {
	theme, ok := builtinThemes[name]
	return theme, ok
}

// Validate checks that every color of the theme is a hex value.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	colors := map[string]string{
		"accent":      t.Accent,
		"secondary":   t.Secondary,
		"confirm":     t.Confirm,
		"destructive": t.Destructive,
		"muted":       t.Muted,
		"text":        t.Text,
	}
	for field, value := range colors {
		if !hexColor.MatchString(value) {
			return fmt.Errorf("theme %q: %s is not a hex color: %q", t.Name, field, value)
		}
	}
	return nil
}

// LoadThemeFile parses user-defined themes from a YAML file, keyed by
// theme name.
func LoadThemeFile(path string) (map[string]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}

	themes := make(map[string]Theme, len(file.Themes))
	for _, theme := range file.Themes {
		if err := theme.Validate(); err != nil {
			return nil, err
		}
		themes[theme.Name] = theme
	}
	return themes, nil
}

// ResolveTheme finds the named theme, checking the optional theme file
// first and the built-ins second. Falls back to the default theme when the
// name is unknown.
func ResolveTheme(name, themePath string) Theme {
	if themePath != "" {
		if themes, err := LoadThemeFile(themePath); err == nil {
			if theme, ok := themes[name]; ok {
				return theme
			}
		}
	}
	if theme, ok := BuiltinTheme(name); ok {
		return theme
	}
	return DefaultTheme()
}
