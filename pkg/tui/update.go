package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quayside/navstack/pkg/navigation"
	"github.com/quayside/navstack/pkg/tui/types"
)

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It consumes navigation request messages and
// the key input that drives user-driven dismissal; everything else is left
// for an embedding application to handle.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case types.PushMsg:
		m.state.Push(msg.Dest)
		return m, nil

	case types.PopMsg:
		m.state.Pop()
		return m, nil

	case types.PopToRootMsg:
		m.state.PopToRoot()
		return m, nil

	case types.SetPathMsg:
		m.state.SetPath(msg.Path)
		return m, nil

	case types.PresentMsg:
		m.state.Present(msg.Slot, msg.Dest, msg.OnDismiss)
		return m, nil

	case types.DismissMsg:
		m.state.Dismiss(msg.Slot)
		return m, nil

	case types.ShowAlertMsg:
		m.state.ShowAlert(msg.Alert)
		m.alertCursor = 0
		return m, nil

	case types.ClearAlertMsg:
		m.state.ClearAlert()
		return m, nil

	case types.ShowDialogMsg:
		m.state.ShowConfirmationDialog(msg.Title, msg.Message, msg.Actions)
		m.dialogCursor = 0
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key input to the topmost visible layer: confirmation
// dialog, then alert, then modal slots, then the path itself.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if dialog, ok := m.state.ActiveDialog(); ok {
		return m.handleDialogKey(msg, dialog)
	}

	if alert, ok := m.state.ActiveAlert(); ok {
		return m.handleAlertKey(msg, alert)
	}

	if key.Matches(msg, m.keys.Dismiss) {
		m.dismissTopmostModal()
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) && !m.modalActive() {
		// The back gesture: report the shortened path through the binding,
		// the same write hook a host toolkit would use.
		binding := m.state.PathBinding()
		if path := binding.Get(); len(path) > 0 {
			binding.Set(path[:len(path)-1])
		}
		return m, nil
	}

	return m, nil
}

// dismissTopmostModal closes the visibly topmost occupied modal slot
// through its binding write hook. Visible layering prefers the full-screen
// cover, then the sheet, then the popover; the slots themselves are
// independent, this ordering is purely rendering policy.
func (m *Model) dismissTopmostModal() {
	for _, binding := range []navigation.Binding[navigation.Destination]{
		m.state.CoverBinding(),
		m.state.SheetBinding(),
		m.state.PopoverBinding(),
	} {
		if binding.Get() != nil {
			binding.Set(nil)
			return
		}
	}
}

func (m *Model) handleDialogKey(msg tea.KeyMsg, dialog navigation.ConfirmationDialog) (tea.Model, tea.Cmd) {
	last := len(dialog.Actions) - 1
	if m.dialogCursor > last {
		m.dialogCursor = last
	}
	if m.dialogCursor < 0 {
		m.dialogCursor = 0
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.dialogCursor > 0 {
			m.dialogCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dialogCursor < last {
			m.dialogCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if last >= 0 {
			m.state.InvokeDialogAction(dialog.Actions[m.dialogCursor].ID())
		} else {
			m.state.ClearConfirmationDialog()
		}
		m.dialogCursor = 0
	case key.Matches(msg, m.keys.Dismiss):
		// Close without running any action, like tapping outside.
		m.state.DialogBinding().Set(nil)
		m.dialogCursor = 0
	}
	return m, nil
}

func (m *Model) handleAlertKey(msg tea.KeyMsg, alert navigation.Alert) (tea.Model, tea.Cmd) {
	last := len(alert.Buttons) - 1
	if m.alertCursor > last {
		m.alertCursor = last
	}
	if m.alertCursor < 0 {
		m.alertCursor = 0
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.alertCursor > 0 {
			m.alertCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.alertCursor < last {
			m.alertCursor++
		}
	case key.Matches(msg, m.keys.Select):
		var action func()
		if last >= 0 {
			action = alert.Buttons[m.alertCursor].Action
		}
		m.state.AlertBinding().Set(nil)
		if action != nil {
			action()
		}
		m.alertCursor = 0
	case key.Matches(msg, m.keys.Dismiss):
		// System dismissal: clear through the binding, run nothing.
		m.state.AlertBinding().Set(nil)
		m.alertCursor = 0
	}
	return m, nil
}
