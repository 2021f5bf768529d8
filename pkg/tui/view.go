package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quayside/navstack/pkg/navigation"
)

// View implements tea.Model. The topmost visible layer wins: confirmation
// dialog, then alert, then full-screen cover, then sheet, then popover,
// then the base screen for the current stack top.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if dialog, ok := m.state.ActiveDialog(); ok {
		return m.renderDialog(dialog)
	}
	if alert, ok := m.state.ActiveAlert(); ok {
		return m.renderAlert(alert)
	}
	if dest, ok := m.state.Presented(navigation.SlotFullScreenCover); ok {
		return m.renderCover(dest)
	}
	if dest, ok := m.state.Presented(navigation.SlotSheet); ok {
		return m.renderSheet(dest)
	}
	if dest, ok := m.state.Presented(navigation.SlotPopover); ok {
		return m.renderPopover(dest)
	}

	return m.baseView()
}

// baseView renders the breadcrumb trail and the screen for the stack top
// (or the root view when the path is empty).
func (m *Model) baseView() string {
	crumbs := m.breadcrumbs()
	help := helpStyle.Render(" backspace: back • esc: close • ctrl+c: quit")

	contentHeight := m.height - lipgloss.Height(crumbs) - lipgloss.Height(help)
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := m.registry.Render(m.state.Top(), m.width, contentHeight)

	return lipgloss.JoinVertical(lipgloss.Left, crumbs, content, help)
}

// breadcrumbs renders the path as a trail, root first, stack top
// highlighted.
func (m *Model) breadcrumbs() string {
	parts := []string{"root"}
	for _, dest := range m.state.Path() {
		parts = append(parts, dest.Title())
	}
	if len(parts) > 1 {
		top := parts[len(parts)-1]
		parts[len(parts)-1] = breadcrumbTopStyle.Render(top)
	}
	return breadcrumbStyle.Render(strings.Join(parts, " > "))
}

// renderCover fills the whole window with the covered destination.
func (m *Model) renderCover(dest navigation.Destination) string {
	title := overlayTitleStyle.Render(dest.Title())
	content := m.registry.Render(dest, m.width-4, m.height-4)
	return coverStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}

// renderSheet centers the sheet content over a clean background, giving the
// modal appearance without showing the base view underneath.
func (m *Model) renderSheet(dest navigation.Destination) string {
	boxWidth := min(m.width-4, 60)
	content := m.registry.Render(dest, boxWidth-4, m.height/2)
	box := sheetStyle.Width(boxWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			overlayTitleStyle.Render(dest.Title()),
			"",
			content,
			"",
			helpStyle.Render("esc to close"),
		),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Bottom, box)
}

// renderPopover anchors a small box near the top edge.
func (m *Model) renderPopover(dest navigation.Destination) string {
	boxWidth := min(m.width-4, 40)
	content := m.registry.Render(dest, boxWidth-2, m.height/3)
	box := popoverStyle.Width(boxWidth).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Right, lipgloss.Top, box)
}

// renderAlert draws the alert centered with its buttons stacked below the
// message.
func (m *Model) renderAlert(alert navigation.Alert) string {
	lines := []string{overlayTitleStyle.Render(alert.Title)}
	if alert.Message != "" {
		lines = append(lines, "", overlayMessageStyle.Render(alert.Message))
	}
	if len(alert.Buttons) > 0 {
		lines = append(lines, "")
		for i, btn := range alert.Buttons {
			lines = append(lines, m.renderChoice(btn.Title, btn.Role, i == m.alertCursor))
		}
	} else {
		lines = append(lines, "", helpStyle.Render("enter or esc to close"))
	}

	box := alertStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderDialog draws the confirmation dialog centered with its ordered
// actions.
func (m *Model) renderDialog(dialog navigation.ConfirmationDialog) string {
	lines := []string{overlayTitleStyle.Render(dialog.Title)}
	if dialog.Message != "" {
		lines = append(lines, "", overlayMessageStyle.Render(dialog.Message))
	}
	lines = append(lines, "")
	for i, action := range dialog.Actions {
		lines = append(lines, m.renderChoice(action.Title, action.Role, i == m.dialogCursor))
	}
	lines = append(lines, "", helpStyle.Render("↑/↓ select • enter confirm • esc close"))

	box := dialogStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderChoice renders one selectable action row, styled by role.
func (m *Model) renderChoice(title string, role navigation.ActionRole, selected bool) string {
	style := actionStyle
	switch role {
	case navigation.RoleDestructive:
		style = actionDestructiveStyle
	case navigation.RoleCancel:
		style = actionCancelStyle
	}

	if selected {
		return actionCursorStyle.Render("> ") + style.Render(title)
	}
	return "  " + style.Render(title)
}
