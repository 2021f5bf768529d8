package navigation

// Slot identifies one of the three independent modal presentation slots.
// The container does not enforce exclusivity across slots: all three may be
// occupied simultaneously, and it is the rendering layer's policy which one
// is visibly on top.
type Slot int

const (
	// SlotSheet presents a destination as a partial-height sheet.
	SlotSheet Slot = iota
	// SlotFullScreenCover presents a destination covering the whole screen.
	SlotFullScreenCover
	// SlotPopover presents a destination as a small anchored popover.
	SlotPopover
)

// String returns the slot name for logging and configuration.
func (s Slot) String() string {
	switch s {
	case SlotSheet:
		return "sheet"
	case SlotFullScreenCover:
		return "full_screen_cover"
	case SlotPopover:
		return "popover"
	default:
		return "unknown"
	}
}

// Presentation is the occupant of a modal slot: the presented destination
// plus an optional callback invoked exactly once when the presentation is
// dismissed, whether programmatically or by user gesture.
type Presentation struct {
	Destination Destination

	onDismiss func()
}

// NewPresentation creates a presentation of dest with an optional dismissal
// callback. A nil onDismiss is allowed and means no callback.
func NewPresentation(dest Destination, onDismiss func()) Presentation {
	return Presentation{Destination: dest, onDismiss: onDismiss}
}
