// Package types defines the Bubble Tea messages used to request navigation
// changes from anywhere in an application, so event handlers can emit
// commands instead of holding a reference to the state container.
package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quayside/navstack/pkg/navigation"
)

// PushMsg requests pushing a destination onto the path.
type PushMsg struct {
	Dest navigation.Destination
}

// PopMsg requests popping the current stack top.
type PopMsg struct{}

// PopToRootMsg requests clearing the path back to the root view.
type PopToRootMsg struct{}

// SetPathMsg requests replacing the path wholesale, e.g. to replay a deep
// link.
type SetPathMsg struct {
	Path []navigation.Destination
}

// PresentMsg requests presenting a destination in a modal slot.
type PresentMsg struct {
	Slot      navigation.Slot
	Dest      navigation.Destination
	OnDismiss func() // optional, fires exactly once on dismissal
}

// DismissMsg requests dismissing whatever occupies a modal slot.
type DismissMsg struct {
	Slot navigation.Slot
}

// ShowAlertMsg requests activating the alert overlay.
type ShowAlertMsg struct {
	Alert navigation.Alert
}

// ClearAlertMsg requests deactivating the alert overlay.
type ClearAlertMsg struct{}

// ShowDialogMsg requests activating the confirmation dialog overlay.
type ShowDialogMsg struct {
	Title   string
	Message string
	Actions []navigation.DialogAction
}

// Push returns a command that pushes dest onto the path.
func Push(dest navigation.Destination) tea.Cmd {
	return func() tea.Msg { return PushMsg{Dest: dest} }
}

// Pop returns a command that pops the current stack top.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// PopToRoot returns a command that clears the path.
func PopToRoot() tea.Cmd {
	return func() tea.Msg { return PopToRootMsg{} }
}

// SetPath returns a command that replaces the path wholesale.
func SetPath(path []navigation.Destination) tea.Cmd {
	return func() tea.Msg { return SetPathMsg{Path: path} }
}

// Present returns a command that presents dest in the given slot.
func Present(slot navigation.Slot, dest navigation.Destination, onDismiss func()) tea.Cmd {
	return func() tea.Msg { return PresentMsg{Slot: slot, Dest: dest, OnDismiss: onDismiss} }
}

// Dismiss returns a command that dismisses the given slot.
func Dismiss(slot navigation.Slot) tea.Cmd {
	return func() tea.Msg { return DismissMsg{Slot: slot} }
}

// ShowAlert returns a command that activates the alert overlay.
func ShowAlert(alert navigation.Alert) tea.Cmd {
	return func() tea.Msg { return ShowAlertMsg{Alert: alert} }
}

// ShowDialog returns a command that activates the confirmation dialog.
func ShowDialog(title, message string, actions ...navigation.DialogAction) tea.Cmd {
	return func() tea.Msg { return ShowDialogMsg{Title: title, Message: message, Actions: actions} }
}
