package navigation

// Binding is the two-way contract between the container and a rendering
// layer for one field: Get reads the current value, Set reports a
// user-driven change back into the container. A Set carrying the empty
// value (nil, or a shorter path) is a user-driven dismissal and routes
// through exactly the same logic as the corresponding explicit operation,
// so dismissal callbacks fire once no matter which side closed the
// presentation.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

// PathBinding returns the binding for the push stack. Setting a shorter
// path is how a rendering layer reports back-gesture pops; setting any
// other sequence behaves like SetPath.
func (s *State) PathBinding() Binding[[]Destination] {
	return Binding[[]Destination]{
		Get: s.Path,
		Set: s.SetPath,
	}
}

// SheetBinding returns the binding for the sheet slot.
func (s *State) SheetBinding() Binding[Destination] {
	return s.slotBinding(SlotSheet)
}

// CoverBinding returns the binding for the full-screen cover slot.
func (s *State) CoverBinding() Binding[Destination] {
	return s.slotBinding(SlotFullScreenCover)
}

// PopoverBinding returns the binding for the popover slot.
func (s *State) PopoverBinding() Binding[Destination] {
	return s.slotBinding(SlotPopover)
}

// slotBinding builds the get/set pair for one modal slot. A nil Set value
// is the user-driven dismissal report; a non-nil value presents without a
// dismissal callback.
func (s *State) slotBinding(slot Slot) Binding[Destination] {
	return Binding[Destination]{
		Get: func() Destination {
			dest, _ := s.Presented(slot)
			return dest
		},
		Set: func(dest Destination) {
			if dest == nil {
				s.Dismiss(slot)
				return
			}
			s.Present(slot, dest, nil)
		},
	}
}

// AlertBinding returns the binding for the alert overlay. Setting nil is
// the system-dismissal report.
func (s *State) AlertBinding() Binding[*Alert] {
	return Binding[*Alert]{
		Get: func() *Alert {
			if alert, ok := s.ActiveAlert(); ok {
				return &alert
			}
			return nil
		},
		Set: func(alert *Alert) {
			if alert == nil {
				s.ClearAlert()
				return
			}
			s.ShowAlert(*alert)
		},
	}
}

// DialogBinding returns the binding for the confirmation dialog overlay.
// Setting nil closes the dialog without running any action, matching the
// tap-outside gesture.
func (s *State) DialogBinding() Binding[*ConfirmationDialog] {
	return Binding[*ConfirmationDialog]{
		Get: func() *ConfirmationDialog {
			if dialog, ok := s.ActiveDialog(); ok {
				return &dialog
			}
			return nil
		},
		Set: func(dialog *ConfirmationDialog) {
			if dialog == nil {
				s.ClearConfirmationDialog()
				return
			}
			s.ShowConfirmationDialog(dialog.Title, dialog.Message, dialog.Actions)
		},
	}
}
