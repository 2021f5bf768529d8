// Package tui is the rendering layer for a navigation state container: a
// Bubble Tea model that draws the screen for the current stack top, layers
// modal and overlay presentations above it, and reports user-driven
// dismissals back into the container through its binding contract.
package tui

import (
	"github.com/quayside/navstack/pkg/logging"
	"github.com/quayside/navstack/pkg/navigation"
)

// Model renders one navigation session. Applications either run it directly
// as the program's root model or embed it and delegate unhandled messages.
type Model struct {
	state    *navigation.State
	registry *Registry
	keys     KeyMap
	logger   *logging.Logger

	width  int
	height int
	ready  bool

	// Cursor positions inside the two overlay slots
	dialogCursor int
	alertCursor  int
}

// Option customizes a Model at construction time.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithLogger enables debug logging of navigation field changes.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// New creates a rendering model observing state and drawing screens from
// registry. The model subscribes to the container's field-level change
// notifications for logging; the draw itself always reads current state, so
// a render pass can never observe a partially applied mutation.
func New(state *navigation.State, registry *Registry, opts ...Option) *Model {
	m := &Model{
		state:    state,
		registry: registry,
		keys:     DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger != nil {
		state.Subscribe(func(field navigation.Field) {
			m.logger.Debugf("navigation changed: %s", field)
		})
	}

	return m
}

// State returns the observed navigation state container.
func (m *Model) State() *navigation.State {
	return m.state
}

// modalActive reports whether any modal slot is occupied.
func (m *Model) modalActive() bool {
	for _, slot := range []navigation.Slot{
		navigation.SlotSheet,
		navigation.SlotFullScreenCover,
		navigation.SlotPopover,
	} {
		if _, occupied := m.state.Presented(slot); occupied {
			return true
		}
	}
	return false
}
