package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/navstack/pkg/navigation"
	"github.com/quayside/navstack/pkg/tui/types"
)

func testModel() (*Model, *navigation.State) {
	state := navigation.NewState()
	registry := NewRegistry()
	registry.SetRoot(func(_ navigation.Destination, _, _ int) string {
		return "root screen"
	})
	registry.Register("profile", func(d navigation.Destination, _, _ int) string {
		return fmt.Sprintf("profile screen %s", d.ID())
	})
	registry.Register("settings", func(_ navigation.Destination, _, _ int) string {
		return "settings screen"
	})

	m := New(state, registry)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, state
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	m, state := testModel()

	m.Update(types.PushMsg{Dest: navigation.NewDestParam("profile", "123")})
	m.Update(types.PushMsg{Dest: navigation.NewDest("settings")})
	assert.Equal(t, 2, state.PathLen())

	m.Update(types.PopMsg{})
	assert.Equal(t, 1, state.PathLen())

	m.Update(types.PopToRootMsg{})
	assert.Equal(t, 0, state.PathLen())

	m.Update(types.SetPathMsg{Path: []navigation.Destination{
		navigation.NewDest("settings"),
	}})
	assert.Equal(t, 1, state.PathLen())
}

func TestViewRendersStackTop(t *testing.T) {
	m, state := testModel()

	view := m.View()
	assert.Contains(t, view, "root screen")

	state.Push(navigation.NewDestParam("profile", "123"))
	view = m.View()
	assert.Contains(t, view, "profile screen profile/123")
	assert.Contains(t, view, "profile") // breadcrumb

	state.Push(navigation.NewDest("settings"))
	assert.Contains(t, m.View(), "settings screen")
}

func TestViewRendersPlaceholderForUnknownKind(t *testing.T) {
	m, state := testModel()
	state.Push(navigation.NewDest("unregistered"))
	assert.Contains(t, m.View(), `no screen registered for "unregistered"`)
}

func TestEscDismissesSheetThroughBinding(t *testing.T) {
	m, state := testModel()
	dismissed := 0
	state.Present(navigation.SlotSheet, navigation.NewDestParam("profile", "1"), func() { dismissed++ })

	require.Contains(t, m.View(), "profile screen")

	m.Update(keyPress("esc"))
	_, occupied := state.Presented(navigation.SlotSheet)
	assert.False(t, occupied)
	assert.Equal(t, 1, dismissed)

	// A second Esc is a silent no-op, the callback stays fired once.
	m.Update(keyPress("esc"))
	assert.Equal(t, 1, dismissed)
}

func TestEscPrefersTopmostLayer(t *testing.T) {
	m, state := testModel()
	state.Present(navigation.SlotSheet, navigation.NewDest("settings"), nil)
	state.Present(navigation.SlotFullScreenCover, navigation.NewDestParam("profile", "2"), nil)

	// The cover renders above the sheet, so Esc closes it first.
	m.Update(keyPress("esc"))
	_, coverUp := state.Presented(navigation.SlotFullScreenCover)
	_, sheetUp := state.Presented(navigation.SlotSheet)
	assert.False(t, coverUp)
	assert.True(t, sheetUp)

	m.Update(keyPress("esc"))
	_, sheetUp = state.Presented(navigation.SlotSheet)
	assert.False(t, sheetUp)
}

func TestBackspacePopsPath(t *testing.T) {
	m, state := testModel()
	state.Push(navigation.NewDestParam("profile", "1"))
	state.Push(navigation.NewDest("settings"))

	m.Update(keyPress("backspace"))
	assert.Equal(t, 1, state.PathLen())

	// On the empty path the back key is a no-op.
	m.Update(keyPress("backspace"))
	m.Update(keyPress("backspace"))
	assert.Equal(t, 0, state.PathLen())
}

func TestBackspaceIgnoredWhileModalActive(t *testing.T) {
	m, state := testModel()
	state.Push(navigation.NewDest("settings"))
	state.Present(navigation.SlotSheet, navigation.NewDestParam("profile", "1"), nil)

	m.Update(keyPress("backspace"))
	assert.Equal(t, 1, state.PathLen())
}

func TestDialogKeyboardFlow(t *testing.T) {
	m, state := testModel()
	var ran []string
	state.ShowConfirmationDialog("Manage post", "", []navigation.DialogAction{
		navigation.NewDialogAction("Edit", navigation.RoleDefault, func() { ran = append(ran, "edit") }),
		navigation.NewDialogAction("Delete", navigation.RoleDestructive, func() { ran = append(ran, "delete") }),
		navigation.NewDialogAction("Cancel", navigation.RoleCancel, nil),
	})

	view := m.View()
	assert.Contains(t, view, "Manage post")
	assert.Contains(t, view, "Delete")

	m.Update(keyPress("down"))
	m.Update(keyPress("enter"))

	assert.Equal(t, []string{"delete"}, ran)
	_, ok := state.ActiveDialog()
	assert.False(t, ok, "dialog closes after any action fires")
}

func TestDialogEscClosesWithoutRunningActions(t *testing.T) {
	m, state := testModel()
	ran := 0
	state.ShowConfirmationDialog("Manage", "", []navigation.DialogAction{
		navigation.NewDialogAction("Edit", navigation.RoleDefault, func() { ran++ }),
	})

	m.Update(keyPress("esc"))
	assert.Equal(t, 0, ran)
	_, ok := state.ActiveDialog()
	assert.False(t, ok)
}

func TestAlertKeyboardFlow(t *testing.T) {
	m, state := testModel()
	confirmed := 0
	state.ShowAlert(navigation.Alert{
		Title:   "Delete post?",
		Message: "This cannot be undone.",
		Buttons: []navigation.AlertButton{
			{Title: "Delete", Role: navigation.RoleDestructive, Action: func() { confirmed++ }},
			{Title: "Keep", Role: navigation.RoleCancel},
		},
	})

	view := m.View()
	assert.Contains(t, view, "Delete post?")
	assert.Contains(t, view, "This cannot be undone.")

	m.Update(keyPress("enter"))
	assert.Equal(t, 1, confirmed)
	_, ok := state.ActiveAlert()
	assert.False(t, ok)
}

func TestAlertEscClearsWithoutRunningButton(t *testing.T) {
	m, state := testModel()
	confirmed := 0
	state.ShowAlert(navigation.Alert{
		Title: "Delete post?",
		Buttons: []navigation.AlertButton{
			{Title: "Delete", Action: func() { confirmed++ }},
		},
	})

	m.Update(keyPress("esc"))
	assert.Equal(t, 0, confirmed)
	_, ok := state.ActiveAlert()
	assert.False(t, ok)
}

func TestDialogRendersAboveModalSlots(t *testing.T) {
	m, state := testModel()
	state.Present(navigation.SlotSheet, navigation.NewDest("settings"), nil)
	state.ShowConfirmationDialog("Pick one", "", []navigation.DialogAction{
		navigation.NewDialogAction("A", navigation.RoleDefault, nil),
	})

	view := m.View()
	assert.Contains(t, view, "Pick one")
	assert.NotContains(t, view, "settings screen")
}

func TestQuitKey(t *testing.T) {
	m, _ := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
