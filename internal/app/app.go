package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/compose"
	"github.com/abrandt/huddle/internal/config"
	"github.com/abrandt/huddle/internal/directory"
	"github.com/abrandt/huddle/internal/feed"
	"github.com/abrandt/huddle/internal/logger"
	"github.com/abrandt/huddle/internal/ui"
	"github.com/abrandt/huddle/internal/workspace"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	client  backend.Client
	dir     *directory.Directory
	version string // App version (injected at build time)

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	members *ui.Members
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	// Workspace UI state (active conversation, panel toggles)
	ws *workspace.State

	// Feed state machine for the active conversation
	feed *feed.Feed

	// Per-conversation composer drafts
	drafts *compose.Drafts

	conversations []backend.Conversation
	profiles      []backend.Profile

	// Workspace-wide realtime subscription
	sub *backend.Subscription
}

// New creates a new app model
func New(cfg *config.Config, client backend.Client, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:  cfg,
		client:  client,
		dir:     directory.New(client),
		version: version,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		sidebar: ui.NewSidebar(),
		chat:    ui.NewChat(),
		members: ui.NewMembers(),
		modal:   ui.NewModal(),
		focus:   FocusSidebar,
		ws:      workspace.New(),
		feed:    feed.New(),
		drafts:  compose.NewDrafts(),
	}

	m.header.SetWorkspaceName(cfg.GetWorkspaceName())
	m.chat.SetWorkspaceName(cfg.GetWorkspaceName())
	m.sidebar.SetFocused(true)

	return m
}

// Close tears down the realtime subscription
func (m *Model) Close() {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
}

// Init initializes the model: kick off the startup modal check and the
// initial directory loads.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return StartupModalMsg{} },
		m.loadConversations(),
		m.loadProfiles(),
	)
}

// toggleFocus switches focus between the sidebar and the chat panel
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusChat
	} else {
		m.focus = FocusSidebar
	}
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.chat.SetFocused(m.focus == FocusChat)
	logger.Debug("App: Focus switched to %v", m.focus)
}

// activeConversation returns the open conversation, or nil.
func (m *Model) activeConversation() *backend.Conversation {
	id := m.ws.ActiveConversationID()
	if id == "" {
		return nil
	}
	for i := range m.conversations {
		if m.conversations[i].ID == id {
			return &m.conversations[i]
		}
	}
	return nil
}

// conversationByID returns the conversation with the given id, or nil.
func (m *Model) conversationByID(id string) *backend.Conversation {
	for i := range m.conversations {
		if m.conversations[i].ID == id {
			return &m.conversations[i]
		}
	}
	return nil
}

// profileByID returns the profile with the given id, or nil.
func (m *Model) profileByID(id string) *backend.Profile {
	for i := range m.profiles {
		if m.profiles[i].ID == id {
			return &m.profiles[i]
		}
	}
	return nil
}

// otherProfiles returns every workspace member except the current user, for
// the DM and mention pickers.
func (m *Model) otherProfiles() []backend.Profile {
	userID, _, _ := m.config.GetUser()
	out := make([]backend.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		if p.ID != userID {
			out = append(out, p)
		}
	}
	return out
}

// resolveDMNames rewrites each DM conversation's display name to the other
// participant's name. The backend stores the name from the creator's
// perspective, which is wrong for the other side.
func (m *Model) resolveDMNames() {
	userID, _, _ := m.config.GetUser()
	for i := range m.conversations {
		c := &m.conversations[i]
		if !c.IsDM() {
			continue
		}
		for _, pid := range c.DMParticipants {
			if pid == userID {
				continue
			}
			if p := m.profileByID(pid); p != nil {
				c.Name = p.Name()
			}
		}
	}
}

// memberCount returns the header's member tally for a conversation: DM
// participant count for DMs, workspace size for channels.
func (m *Model) memberCount(conv backend.Conversation) int {
	if conv.IsDM() {
		return len(conv.DMParticipants)
	}
	return len(m.profiles)
}

// conversationMembers returns the profiles shown in the members panel: the
// participant pair for DMs, every workspace profile for channels.
func (m *Model) conversationMembers(conv backend.Conversation) []backend.Profile {
	if !conv.IsDM() {
		return m.profiles
	}
	out := make([]backend.Profile, 0, len(conv.DMParticipants))
	for _, pid := range conv.DMParticipants {
		if p := m.profileByID(pid); p != nil {
			out = append(out, *p)
		}
	}
	return out
}
