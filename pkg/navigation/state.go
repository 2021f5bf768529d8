package navigation

// Field identifies one of the six observable fields of a State. Subscribers
// receive the field that changed so they can re-derive only the affected
// parts of their view.
type Field int

const (
	// FieldPath is the push/pop stack.
	FieldPath Field = iota
	// FieldSheet is the sheet modal slot.
	FieldSheet
	// FieldFullScreenCover is the full-screen cover modal slot.
	FieldFullScreenCover
	// FieldPopover is the popover modal slot.
	FieldPopover
	// FieldAlert is the alert overlay slot.
	FieldAlert
	// FieldConfirmationDialog is the confirmation dialog overlay slot.
	FieldConfirmationDialog
)

// String returns the field name for logging.
func (f Field) String() string {
	switch f {
	case FieldPath:
		return "path"
	case FieldSheet:
		return "sheet"
	case FieldFullScreenCover:
		return "full_screen_cover"
	case FieldPopover:
		return "popover"
	case FieldAlert:
		return "alert"
	case FieldConfirmationDialog:
		return "confirmation_dialog"
	default:
		return "unknown"
	}
}

// State is the navigation state container for one UI session. It owns the
// push stack, the three modal slots, and the two overlay slots, and is the
// single source of truth for "what is currently visible".
//
// State is not safe for concurrent use. It is owned by the UI loop of its
// session; all mutation happens on that one logical thread, including
// re-entrant mutation from within dismissal callbacks.
type State struct {
	path            []Destination
	sheet           *Presentation
	fullScreenCover *Presentation
	popover         *Presentation
	alert           *Alert
	dialog          *ConfirmationDialog

	subscribers map[int]func(Field)
	nextSubID   int
}

// NewState creates an empty navigation state. One State is created per
// navigation session and discarded when the session ends.
func NewState() *State {
	return &State{
		subscribers: make(map[int]func(Field)),
	}
}

// Subscribe registers a field-level change listener and returns a cancel
// function. Listeners are invoked synchronously after each mutation that
// actually changed a field.
func (s *State) Subscribe(fn func(Field)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *State) notify(field Field) {
	for _, fn := range s.subscribers {
		fn(field)
	}
}

// Push appends dest to the path, making it the new stack top.
func (s *State) Push(dest Destination) {
	s.path = append(s.path, dest)
	s.notify(FieldPath)
}

// Pop removes the current stack top. Popping an empty path is a no-op.
func (s *State) Pop() {
	if len(s.path) == 0 {
		return
	}
	s.path = s.path[:len(s.path)-1]
	s.notify(FieldPath)
}

// PopToRoot clears the path entirely, returning to the implicit root view.
func (s *State) PopToRoot() {
	if len(s.path) == 0 {
		return
	}
	s.path = nil
	s.notify(FieldPath)
}

// SetPath replaces the path wholesale. This supports bulk restoration such
// as replaying a deep link.
func (s *State) SetPath(path []Destination) {
	s.path = append([]Destination(nil), path...)
	s.notify(FieldPath)
}

// Path returns a copy of the current path, oldest destination first.
func (s *State) Path() []Destination {
	return append([]Destination(nil), s.path...)
}

// PathLen returns the number of destinations on the path.
func (s *State) PathLen() int {
	return len(s.path)
}

// Top returns the currently visible stack top, or nil when the path is
// empty and the implicit root view is showing.
func (s *State) Top() Destination {
	if len(s.path) == 0 {
		return nil
	}
	return s.path[len(s.path)-1]
}

// PathContains reports whether dest is anywhere on the path.
func (s *State) PathContains(dest Destination) bool {
	for _, d := range s.path {
		if SameDestination(d, dest) {
			return true
		}
	}
	return false
}

// RemovePath removes every destination on the path for which the predicate
// returns true, preserving the order of the remainder.
func (s *State) RemovePath(match func(Destination) bool) {
	kept := s.path[:0]
	removed := false
	for _, d := range s.path {
		if match(d) {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	if !removed {
		return
	}
	s.path = kept
	s.notify(FieldPath)
}

// slotRef maps a slot to its backing field.
func (s *State) slotRef(slot Slot) **Presentation {
	switch slot {
	case SlotSheet:
		return &s.sheet
	case SlotFullScreenCover:
		return &s.fullScreenCover
	case SlotPopover:
		return &s.popover
	default:
		return nil
	}
}

func (s Slot) field() Field {
	switch s {
	case SlotSheet:
		return FieldSheet
	case SlotFullScreenCover:
		return FieldFullScreenCover
	default:
		return FieldPopover
	}
}

// Present places dest into the given modal slot with an optional dismissal
// callback. Presenting over an occupied slot replaces the occupant without
// invoking its dismissal callback (replace semantics, not stack semantics).
func (s *State) Present(slot Slot, dest Destination, onDismiss func()) {
	ref := s.slotRef(slot)
	if ref == nil {
		return
	}
	p := NewPresentation(dest, onDismiss)
	*ref = &p
	s.notify(slot.field())
}

// Presented returns the destination occupying the slot, or (nil, false)
// when the slot is empty.
func (s *State) Presented(slot Slot) (Destination, bool) {
	ref := s.slotRef(slot)
	if ref == nil || *ref == nil {
		return nil, false
	}
	return (*ref).Destination, true
}

// Dismiss clears the given modal slot, invoking its dismissal callback
// exactly once. Dismissing an empty slot is a no-op, so racing dismiss
// paths (explicit call plus user gesture) stay safe.
//
// The slot is cleared before the callback runs so the callback may
// re-enter the container, including presenting into the same slot again.
func (s *State) Dismiss(slot Slot) {
	ref := s.slotRef(slot)
	if ref == nil || *ref == nil {
		return
	}
	p := *ref
	*ref = nil
	s.notify(slot.field())
	if p.onDismiss != nil {
		p.onDismiss()
	}
}

// ShowAlert activates the alert overlay, replacing any prior alert.
func (s *State) ShowAlert(alert Alert) {
	s.alert = &alert
	s.notify(FieldAlert)
}

// ClearAlert deactivates the alert overlay. Idempotent.
func (s *State) ClearAlert() {
	if s.alert == nil {
		return
	}
	s.alert = nil
	s.notify(FieldAlert)
}

// ActiveAlert returns the active alert, if any.
func (s *State) ActiveAlert() (Alert, bool) {
	if s.alert == nil {
		return Alert{}, false
	}
	return *s.alert, true
}

// ShowConfirmationDialog activates the confirmation dialog overlay,
// replacing any prior dialog. An empty action list is permitted and simply
// renders no choices.
func (s *State) ShowConfirmationDialog(title, message string, actions []DialogAction) {
	s.dialog = &ConfirmationDialog{
		Title:   title,
		Message: message,
		Actions: append([]DialogAction(nil), actions...),
	}
	s.notify(FieldConfirmationDialog)
}

// ActiveDialog returns the active confirmation dialog, if any.
func (s *State) ActiveDialog() (ConfirmationDialog, bool) {
	if s.dialog == nil {
		return ConfirmationDialog{}, false
	}
	return *s.dialog, true
}

// ClearConfirmationDialog deactivates the dialog without running any
// action. This is the user-gesture close path (Esc, tap outside).
func (s *State) ClearConfirmationDialog() {
	if s.dialog == nil {
		return
	}
	s.dialog = nil
	s.notify(FieldConfirmationDialog)
}

// InvokeDialogAction runs the action with the given id and closes the
// dialog, whatever the action's role. Ids not belonging to the currently
// active dialog are ignored, so an action invoked after its dialog was
// already replaced or cleared is a no-op.
//
// The dialog is cleared before the action runs so the action may show a
// fresh dialog of its own.
func (s *State) InvokeDialogAction(actionID string) {
	if s.dialog == nil {
		return
	}
	for _, a := range s.dialog.Actions {
		if a.id != actionID {
			continue
		}
		s.dialog = nil
		s.notify(FieldConfirmationDialog)
		if a.Action != nil {
			a.Action()
		}
		return
	}
}
