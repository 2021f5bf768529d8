package tui

import (
	"fmt"
	"strings"

	"github.com/quayside/navstack/pkg/navigation"
)

// ScreenFunc renders the content for one destination at the given size.
// The returned string is plain or lipgloss-styled text; the model handles
// placement and layering.
type ScreenFunc func(dest navigation.Destination, width, height int) string

// Registry maps destination kinds to their renderable content. This is the
// application-provided half of the rendering contract: the container knows
// where the user is, the registry knows what that looks like.
type Registry struct {
	screens map[string]ScreenFunc
	root    ScreenFunc
}

// NewRegistry creates an empty screen registry.
func NewRegistry() *Registry {
	return &Registry{
		screens: make(map[string]ScreenFunc),
	}
}

// Register binds a destination kind to its screen renderer. Registering the
// same kind twice replaces the earlier renderer.
func (r *Registry) Register(kind string, fn ScreenFunc) {
	r.screens[kind] = fn
}

// SetRoot binds the renderer for the implicit root view shown when the
// path is empty. The root is not a Destination; it sits beneath the stack.
func (r *Registry) SetRoot(fn ScreenFunc) {
	r.root = fn
}

// Render produces the content for dest, or the root view when dest is nil.
// Unregistered kinds render a visible placeholder rather than failing, so a
// missing registration shows up on screen during development.
func (r *Registry) Render(dest navigation.Destination, width, height int) string {
	if dest == nil {
		if r.root == nil {
			return ""
		}
		return r.root(nil, width, height)
	}

	if fn, ok := r.screens[kindOf(dest)]; ok {
		return fn(dest, width, height)
	}
	return fmt.Sprintf("no screen registered for %q", dest.ID())
}

// kindOf extracts the registry lookup key from a destination: the Kind of
// a navigation.Dest, otherwise the ID's variant prefix.
func kindOf(dest navigation.Destination) string {
	if d, ok := dest.(navigation.Dest); ok {
		return d.Kind
	}
	id := dest.ID()
	if i := strings.IndexByte(id, '/'); i >= 0 {
		return id[:i]
	}
	return id
}
