package config

import (
	"fmt"
	"sync"
)

const (
	// SectionIDUI is the identifier for the UI settings section
	SectionIDUI = "ui"

	// Default values for UI settings
	defaultTheme       = "dusk"
	defaultVimKeys     = true
	defaultConfirmQuit = false
)

// UISection manages user interface configuration settings for the
// navigation TUI.
type UISection struct {
	Theme       string `json:"theme"`
	VimKeys     bool   `json:"vim_keys"`
	ConfirmQuit bool   `json:"confirm_quit"`
	mu          sync.RWMutex
}

// NewUISection creates a new UI section with default settings.
func NewUISection() *UISection {
	return &UISection{
		Theme:       defaultTheme,
		VimKeys:     defaultVimKeys,
		ConfirmQuit: defaultConfirmQuit,
	}
}

// ID returns the section identifier.
func (s *UISection) ID() string {
	return SectionIDUI
}

// Title returns the section title.
func (s *UISection) Title() string {
	return "UI Settings"
}

// Description returns the section description.
func (s *UISection) Description() string {
	return "Configure navigation interface behavior including theme selection, vim-style keys, and quit confirmation."
}

// Data returns the current configuration data.
func (s *UISection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"theme":        s.Theme,
		"vim_keys":     s.VimKeys,
		"confirm_quit": s.ConfirmQuit,
	}
}

// SetData updates the configuration from the provided data.
func (s *UISection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "theme":
			name, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for theme: expected string, got %T", value)
			}
			s.Theme = name

		case "vim_keys":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for vim_keys: expected bool, got %T", value)
			}
			s.VimKeys = enabled

		case "confirm_quit":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for confirm_quit: expected bool, got %T", value)
			}
			s.ConfirmQuit = enabled
		}
	}

	return nil
}

// Validate checks the section's current values.
func (s *UISection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Theme == "" {
		return fmt.Errorf("theme must not be empty")
	}
	return nil
}

// Reset restores the section's defaults.
func (s *UISection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Theme = defaultTheme
	s.VimKeys = defaultVimKeys
	s.ConfirmQuit = defaultConfirmQuit
}

// GetTheme returns the configured theme name.
func (s *UISection) GetTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Theme
}

// GetVimKeys returns whether vim-style keys are enabled.
func (s *UISection) GetVimKeys() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.VimKeys
}

// GetConfirmQuit returns whether quitting asks for confirmation.
func (s *UISection) GetConfirmQuit() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ConfirmQuit
}
