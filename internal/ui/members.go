package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abrandt/huddle/internal/backend"
)

// Members is the optional right-hand panel listing who is in the open
// conversation.
type Members struct {
	width    int
	height   int
	profiles []backend.Profile
}

// NewMembers creates a new members panel
func NewMembers() *Members {
	return &Members{}
}

// SetSize sets the panel dimensions
func (m *Members) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetProfiles replaces the listed members
func (m *Members) SetProfiles(profiles []backend.Profile) {
	m.profiles = profiles
}

// View renders the members panel
func (m *Members) View() string {
	innerWidth := GetViewContext().InnerWidth(m.width)

	var sb strings.Builder
	sb.WriteString(SidebarSectionStyle.Render("MEMBERS"))
	sb.WriteString("\n")

	if len(m.profiles) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("Nobody here yet"))
	}

	for _, p := range m.profiles {
		name := truncateString(p.Name(), innerWidth-4)
		sb.WriteString(SidebarItemStyle.Render("• " + name))
		sb.WriteString("\n")
		if p.DisplayName != "" && p.Username != "" {
			handle := truncateString("@"+p.Username, innerWidth-4)
			sb.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1).Render("  " + handle))
			sb.WriteString("\n")
		}
	}

	return PanelStyle.Width(m.width).Height(m.height).Render(sb.String())
}
