package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/keys"
	"github.com/abrandt/huddle/internal/logger"
)

// sidebarItemKind distinguishes section headers, conversations, and action rows.
type sidebarItemKind int

const (
	itemKindSection      sidebarItemKind = iota // A section header (not selectable)
	itemKindConversation                        // A channel or DM
	itemKindNewChannel                          // The "+ New channel" action
	itemKindNewDM                               // The "+ New DM" action
)

// sidebarItem represents one row in the sidebar.
type sidebarItem struct {
	Kind         sidebarItemKind
	Conversation backend.Conversation // Only valid when Kind == itemKindConversation
	Label        string               // Only set for section headers
}

// Sidebar represents the left panel with the conversation list
type Sidebar struct {
	conversations []backend.Conversation
	items         []sidebarItem
	selectedIdx   int
	width         int
	height        int
	focused       bool
	scrollOffset  int
	activeID      string         // Conversation currently open in the chat pane
	unread        map[string]int // Conversation ID -> unread count
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{
		unread: make(map[string]int),
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetConversations rebuilds the sidebar rows from the conversation list.
// Channels come first under "Channels", DMs under "Direct messages", each
// section followed by its create action. DM conversations are expected to
// arrive with their display name already resolved.
func (s *Sidebar) SetConversations(convs []backend.Conversation) {
	s.conversations = convs

	s.items = s.items[:0]
	s.items = append(s.items, sidebarItem{Kind: itemKindSection, Label: backend.SectionChannels})
	for _, c := range convs {
		if c.Kind == backend.KindChannel {
			s.items = append(s.items, sidebarItem{Kind: itemKindConversation, Conversation: c})
		}
	}
	s.items = append(s.items, sidebarItem{Kind: itemKindNewChannel})

	s.items = append(s.items, sidebarItem{Kind: itemKindSection, Label: backend.SectionDMs})
	for _, c := range convs {
		if c.Kind == backend.KindDM {
			s.items = append(s.items, sidebarItem{Kind: itemKindConversation, Conversation: c})
		}
	}
	s.items = append(s.items, sidebarItem{Kind: itemKindNewDM})

	// Keep selection on a selectable row
	if s.selectedIdx >= len(s.items) {
		s.selectedIdx = len(s.items) - 1
	}
	if s.selectedIdx < 0 || s.items[s.selectedIdx].Kind == itemKindSection {
		s.selectNext(0)
	}

	logger.ComponentLogger("sidebar").Debug("conversations set",
		"total", len(convs), "rows", len(s.items))
}

// selectNext moves the selection to the first selectable row at or after idx.
func (s *Sidebar) selectNext(idx int) {
	for i := idx; i < len(s.items); i++ {
		if s.items[i].Kind != itemKindSection {
			s.selectedIdx = i
			return
		}
	}
	s.selectedIdx = 0
}

// SelectedConversation returns the currently selected conversation, or nil if
// an action row is selected.
func (s *Sidebar) SelectedConversation() *backend.Conversation {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.items) {
		return nil
	}
	item := &s.items[s.selectedIdx]
	if item.Kind != itemKindConversation {
		return nil
	}
	return &item.Conversation
}

// IsNewChannelSelected returns true when the "+ New channel" action is selected.
func (s *Sidebar) IsNewChannelSelected() bool {
	return s.selectedIdx >= 0 && s.selectedIdx < len(s.items) && s.items[s.selectedIdx].Kind == itemKindNewChannel
}

// IsNewDMSelected returns true when the "+ New DM" action is selected.
func (s *Sidebar) IsNewDMSelected() bool {
	return s.selectedIdx >= 0 && s.selectedIdx < len(s.items) && s.items[s.selectedIdx].Kind == itemKindNewDM
}

// SelectConversation moves the selection to a conversation by ID.
func (s *Sidebar) SelectConversation(id string) {
	for i, item := range s.items {
		if item.Kind == itemKindConversation && item.Conversation.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// SetActive marks a conversation as the one open in the chat pane and clears
// its unread count.
func (s *Sidebar) SetActive(id string) {
	s.activeID = id
	delete(s.unread, id)
}

// ActiveID returns the active conversation ID.
func (s *Sidebar) ActiveID() string {
	return s.activeID
}

// IncrementUnread bumps the unread counter for a conversation. The active
// conversation never accumulates unreads.
func (s *Sidebar) IncrementUnread(id string) {
	if id == s.activeID {
		return
	}
	s.unread[id]++
}

// UnreadCount returns the unread counter for a conversation.
func (s *Sidebar) UnreadCount(id string) int {
	return s.unread[id]
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		for i := s.selectedIdx - 1; i >= 0; i-- {
			if s.items[i].Kind != itemKindSection {
				s.selectedIdx = i
				break
			}
		}
	case keys.Down, "j":
		for i := s.selectedIdx + 1; i < len(s.items); i++ {
			if s.items[i].Kind != itemKindSection {
				s.selectedIdx = i
				break
			}
		}
	}

	return s, nil
}

// renderConversation builds the display row for a conversation.
func (s *Sidebar) renderConversation(c backend.Conversation, isSelected bool) string {
	prefix := "  "
	if isSelected {
		prefix = "> "
	} else if c.ID == s.activeID {
		prefix = "● "
	}

	sigil := "#"
	if c.IsDM() {
		sigil = "@"
	}

	row := prefix + sigil + c.Name

	if n := s.unread[c.ID]; n > 0 {
		badge := fmt.Sprintf(" %d ", n)
		if isSelected {
			row += " " + badge
		} else {
			row += " " + SidebarUnreadStyle.Render(badge)
		}
	}

	return row
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	var allLines []string
	selectedLine := 0

	for i, item := range s.items {
		isSelected := i == s.selectedIdx && s.focused

		switch item.Kind {
		case itemKindSection:
			if len(allLines) > 0 {
				allLines = append(allLines, "")
			}
			allLines = append(allLines, SidebarSectionStyle.Render(item.Label))

		case itemKindConversation:
			row := s.renderConversation(item.Conversation, i == s.selectedIdx)
			itemStyle := SidebarItemStyle.Width(innerWidth)
			if isSelected {
				itemStyle = SidebarSelectedStyle.Width(innerWidth)
			}
			if i == s.selectedIdx {
				selectedLine = len(allLines)
			}
			rendered := itemStyle.Render(row)
			allLines = append(allLines, strings.Split(rendered, "\n")...)

		case itemKindNewChannel, itemKindNewDM:
			label := "  + New channel"
			if item.Kind == itemKindNewDM {
				label = "  + New DM"
			}
			if i == s.selectedIdx {
				selectedLine = len(allLines)
				rendered := SidebarSelectedStyle.Width(innerWidth).Render("> " + strings.TrimSpace(label))
				allLines = append(allLines, strings.Split(rendered, "\n")...)
			} else {
				actionStyle := lipgloss.NewStyle().
					Foreground(ColorTextMuted).
					Italic(true)
				allLines = append(allLines, actionStyle.Render(label))
			}
		}
	}

	if len(s.items) == 0 {
		allLines = append(allLines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No conversations."))
	}

	// Adjust scroll to keep the selected row visible
	if selectedLine < s.scrollOffset {
		s.scrollOffset = selectedLine
	} else if selectedLine >= s.scrollOffset+innerHeight {
		s.scrollOffset = selectedLine - innerHeight + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	maxScroll := len(allLines) - innerHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}

	if s.scrollOffset > 0 && s.scrollOffset < len(allLines) {
		allLines = allLines[s.scrollOffset:]
	}
	if len(allLines) > innerHeight && innerHeight > 0 {
		allLines = allLines[:innerHeight]
	}

	content := strings.Join(allLines, "\n")

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(content)
}
