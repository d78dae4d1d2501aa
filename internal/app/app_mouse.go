package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/ui"
)

// routeMouseToChat forwards mouse click/motion/release events to the chat
// panel for text selection. Events land in terminal coordinates; the chat
// panel wants panel coordinates, so X drops the sidebar width and Y drops
// the header height. Events over the sidebar are ignored.
func (m *Model) routeMouseToChat(msg tea.Msg) tea.Cmd {
	sidebarWidth := 0
	if !m.ws.SidebarCollapsed() {
		sidebarWidth = m.sidebar.Width()
	}

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		if mouseMsg.X > sidebarWidth {
			adjusted := tea.MouseClickMsg{
				X:      mouseMsg.X - sidebarWidth,
				Y:      mouseMsg.Y - ui.HeaderHeight,
				Button: mouseMsg.Button,
				Mod:    mouseMsg.Mod,
			}
			chat, cmd := m.chat.Update(adjusted)
			m.chat = chat
			return cmd
		}

	case tea.MouseMotionMsg:
		if mouseMsg.X > sidebarWidth {
			adjusted := tea.MouseMotionMsg{
				X:      mouseMsg.X - sidebarWidth,
				Y:      mouseMsg.Y - ui.HeaderHeight,
				Button: mouseMsg.Button,
				Mod:    mouseMsg.Mod,
			}
			chat, cmd := m.chat.Update(adjusted)
			m.chat = chat
			return cmd
		}

	case tea.MouseReleaseMsg:
		adjusted := tea.MouseReleaseMsg{
			X:      mouseMsg.X - sidebarWidth,
			Y:      mouseMsg.Y - ui.HeaderHeight,
			Button: mouseMsg.Button,
			Mod:    mouseMsg.Mod,
		}
		chat, cmd := m.chat.Update(adjusted)
		m.chat = chat
		return cmd
	}

	return nil
}
