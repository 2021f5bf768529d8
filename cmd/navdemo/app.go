package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quayside/navstack/pkg/config"
	"github.com/quayside/navstack/pkg/logging"
	"github.com/quayside/navstack/pkg/navigation"
	"github.com/quayside/navstack/pkg/tui"
	"github.com/quayside/navstack/pkg/tui/types"
)

// app embeds the navigation rendering model and adds the demo's own key
// bindings on top. Unhandled messages are delegated to the embedded model,
// the usual composition pattern for navstack hosts.
type app struct {
	nav    *tui.Model
	state  *navigation.State
	logger *logging.Logger

	confirmQuit bool
	quitting    bool

	nextProfile int
}

func newApp(state *navigation.State, logger *logging.Logger, ui *config.UISection) *app {
	keys := tui.DefaultKeyMap()
	if !ui.GetVimKeys() {
		keys.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
		keys.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
	}

	return &app{
		nav:         tui.New(state, demoRegistry(), tui.WithKeyMap(keys), tui.WithLogger(logger)),
		state:       state,
		logger:      logger,
		confirmQuit: ui.GetConfirmQuit(),
		nextProfile: 1,
	}
}

// Init implements tea.Model.
func (a *app) Init() tea.Cmd {
	return a.nav.Init()
}

// Update implements tea.Model.
func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !a.overlayActive() {
		if cmd, handled := a.handleDemoKey(keyMsg); handled {
			return a, cmd
		}
	}

	_, cmd := a.nav.Update(msg)
	if a.quitting {
		return a, tea.Quit
	}
	return a, cmd
}

// View implements tea.Model.
func (a *app) View() string {
	return a.nav.View()
}

// overlayActive reports whether any layer above the base screen is
// showing; demo keys only apply on the base screen.
func (a *app) overlayActive() bool {
	if _, ok := a.state.ActiveDialog(); ok {
		return true
	}
	if _, ok := a.state.ActiveAlert(); ok {
		return true
	}
	for _, slot := range []navigation.Slot{
		navigation.SlotSheet,
		navigation.SlotFullScreenCover,
		navigation.SlotPopover,
	} {
		if _, occupied := a.state.Presented(slot); occupied {
			return true
		}
	}
	return false
}

// handleDemoKey triggers the demo's navigation actions. Everything goes
// through navigation request messages so the full message path is
// exercised, exactly as a larger application would do it.
func (a *app) handleDemoKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "p":
		id := fmt.Sprintf("%d", a.nextProfile)
		a.nextProfile++
		return types.Push(navigation.NewDestParam("profile", id)), true

	case "g":
		return types.Push(navigation.NewDest("gallery")), true

	case "t":
		return types.Push(navigation.NewDest("settings")), true

	case "r":
		return types.PopToRoot(), true

	case "s":
		return types.Present(navigation.SlotSheet, navigation.NewDest("compose"), func() {
			a.logger.Debugf("compose sheet dismissed")
		}), true

	case "f":
		return types.Present(navigation.SlotFullScreenCover, navigation.NewDest("player"), func() {
			a.logger.Debugf("player cover dismissed")
		}), true

	case "o":
		return types.Present(navigation.SlotPopover, navigation.NewDest("hints"), nil), true

	case "a":
		return types.ShowAlert(navigation.Alert{
			Title:   "Delete profile?",
			Message: "This cannot be undone.",
			Buttons: []navigation.AlertButton{
				{Title: "Delete", Role: navigation.RoleDestructive, Action: func() {
					if err := a.state.RemovePathMatching("profile/*"); err != nil {
						a.logger.Errorf("remove profiles: %v", err)
					}
				}},
				{Title: "Keep", Role: navigation.RoleCancel},
			},
		}), true

	case "d":
		return types.ShowDialog("Manage post", "Choose an action",
			navigation.NewDialogAction("Edit", navigation.RoleDefault, func() {
				a.logger.Debugf("edit selected")
			}),
			navigation.NewDialogAction("Delete", navigation.RoleDestructive, func() {
				a.logger.Debugf("delete selected")
			}),
			navigation.NewDialogAction("Cancel", navigation.RoleCancel, nil),
		), true

	case "q":
		if !a.confirmQuit {
			a.quitting = true
			return tea.Quit, true
		}
		return types.ShowDialog("Quit navdemo?", "",
			navigation.NewDialogAction("Quit", navigation.RoleDestructive, func() {
				a.quitting = true
			}),
			navigation.NewDialogAction("Stay", navigation.RoleCancel, nil),
		), true
	}

	return nil, false
}
