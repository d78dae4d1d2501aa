package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrandt/huddle/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	header := m.header.View()
	footer := m.footer.View()

	// Render panels side by side; a collapsed sidebar gives its width to chat
	cols := make([]string, 0, 3)
	if !m.ws.SidebarCollapsed() {
		cols = append(cols, m.sidebar.View())
	}
	cols = append(cols, m.chat.View())
	if m.membersPanelVisible() {
		cols = append(cols, m.members.View())
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panels,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return view
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.chat.HasConversation(),
		m.focus == FocusSidebar,
		m.ws.SidebarCollapsed(),
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	chatWidth := ctx.ChatWidth
	if m.ws.SidebarCollapsed() {
		chatWidth = ctx.TerminalWidth
	} else {
		m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	}
	if m.membersPanelVisible() {
		chatWidth -= ui.MembersPanelWidth
		m.members.SetSize(ui.MembersPanelWidth, ctx.ContentHeight)
	}
	m.chat.SetSize(chatWidth, ctx.ContentHeight)
}

// membersPanelVisible reports whether the members panel renders: it needs an
// open conversation and enough horizontal room.
func (m *Model) membersPanelVisible() bool {
	return m.ws.MembersPanelOpen() &&
		m.chat.HasConversation() &&
		m.width >= ui.MinTerminalWidth+ui.MembersPanelWidth
}
