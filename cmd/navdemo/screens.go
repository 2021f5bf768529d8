package main

import (
	"fmt"
	"strings"

	"github.com/quayside/navstack/pkg/navigation"
	"github.com/quayside/navstack/pkg/tui"
)

// demoRegistry maps every destination kind the demo navigates to onto its
// renderable content.
func demoRegistry() *tui.Registry {
	registry := tui.NewRegistry()

	registry.SetRoot(func(_ navigation.Destination, _, _ int) string {
		return strings.Join([]string{
			"navdemo",
			"",
			"  p  push a profile screen",
			"  g  push the gallery",
			"  t  push settings",
			"  r  pop to root",
			"",
			"  s  present a compose sheet",
			"  f  present the player full-screen",
			"  o  show the hints popover",
			"",
			"  a  show an alert",
			"  d  show a confirmation dialog",
			"",
			"  q  quit",
		}, "\n")
	})

	registry.Register("profile", func(d navigation.Destination, _, _ int) string {
		dest := d.(navigation.Dest)
		return fmt.Sprintf("Profile %s\n\nBio, posts and followers would render here.\n\np pushes another profile on top.", dest.Param)
	})

	registry.Register("settings", func(_ navigation.Destination, _, _ int) string {
		return "Settings\n\nTheme, keybindings and quit confirmation live in\n~/.navstack/config.json."
	})

	registry.Register("gallery", func(_ navigation.Destination, _, _ int) string {
		return "Gallery\n\nA grid of images would render here."
	})

	registry.Register("compose", func(_ navigation.Destination, _, _ int) string {
		return "Compose a new post.\n\nDismissing this sheet fires its dismissal callback\nexactly once, gesture or not."
	})

	registry.Register("player", func(_ navigation.Destination, width, _ int) string {
		bar := strings.Repeat("─", max(width/2, 10))
		return fmt.Sprintf("Now playing\n\n%s\n\nesc closes the cover.", bar)
	})

	registry.Register("hints", func(_ navigation.Destination, _, _ int) string {
		return "Hint: all three modal slots are independent;\nthe renderer just prefers the topmost."
	})

	return registry
}
