package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/clipboard"
	"github.com/abrandt/huddle/internal/compose"
	"github.com/abrandt/huddle/internal/feed"
	"github.com/abrandt/huddle/internal/keys"
	"github.com/abrandt/huddle/internal/logger"
	"github.com/abrandt/huddle/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return m, m.routeMouseToChat(msg)

	case ui.ClipboardErrorMsg:
		return m, m.ShowFlashError("Failed to copy to clipboard")

	case StartupModalMsg:
		if !m.config.HasSeenWelcome() {
			m.modal.Show(ui.NewWelcomeState(m.config.GetWorkspaceName()))
		}
		return m, nil

	case ConversationsLoadedMsg:
		return m.handleConversationsLoaded(msg)

	case ProfilesLoadedMsg:
		return m.handleProfilesLoaded(msg)

	case MessagesLoadedMsg:
		return m.handleMessagesLoaded(msg)

	case MessageSentMsg:
		return m.handleMessageSent(msg)

	case SubscriptionStartedMsg:
		return m.handleSubscriptionStarted(msg)

	case MessageInsertedMsg:
		return m.handleMessageInserted(msg)

	case ChannelCreatedMsg:
		return m.handleChannelCreated(msg)

	case DMCreatedMsg:
		return m.handleDMCreated(msg)
	}

	// Everything else (mouse, viewport ticks) goes to the chat panel
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// handleKey routes key presses: modal first, then global keys, then the
// focused panel.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Global keys
	switch msg.String() {
	case keys.CtrlC:
		return m, tea.Quit
	case keys.Tab:
		m.toggleFocus()
		return m, nil
	case keys.CtrlN:
		m.modal.Show(ui.NewCreateChannelState())
		return m, nil
	case keys.CtrlD:
		m.modal.Show(ui.NewNewDMState(m.otherProfiles()))
		return m, nil
	case keys.CtrlU:
		m.ws.ToggleSidebar()
		m.updateSizes()
		return m, nil
	case keys.CtrlO:
		if m.chat.HasConversation() {
			m.ws.ToggleMembersPanel()
			m.updateSizes()
		}
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleChatKey(msg)
}

// handleSidebarKey handles keys while the sidebar is focused
func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.modal.Show(ui.NewHelpState())
		return m, nil
	case "t":
		m.modal.Show(ui.NewThemeState(ui.CurrentThemeName()))
		return m, nil
	case "y":
		return m, m.copyLatestMessage()
	case keys.Enter:
		if m.sidebar.IsNewChannelSelected() {
			m.modal.Show(ui.NewCreateChannelState())
			return m, nil
		}
		if m.sidebar.IsNewDMSelected() {
			m.modal.Show(ui.NewNewDMState(m.otherProfiles()))
			return m, nil
		}
		if conv := m.sidebar.SelectedConversation(); conv != nil {
			return m, m.openConversation(*conv)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

// handleChatKey handles keys while the chat panel is focused
func (m *Model) handleChatKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if !m.chat.HasConversation() {
		return m, nil
	}

	switch msg.String() {
	case keys.Enter:
		return m.sendCurrentInput()
	case keys.ShiftEnter:
		// The textarea binds newline insertion to plain enter, which send
		// owns; rewrite shift+enter so the textarea sees a newline key.
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		return m, cmd
	case keys.CtrlB:
		return m, m.chat.ApplyBold()
	case keys.CtrlI:
		return m, m.chat.ApplyItalic()
	case keys.CtrlE:
		return m, m.chat.ApplyCode()
	case keys.CtrlL:
		return m, m.chat.ApplyBullet()
	case keys.CtrlG:
		m.modal.Show(ui.NewEmojiPickerState())
		return m, nil
	case keys.CtrlA:
		m.modal.Show(ui.NewMentionState(m.otherProfiles()))
		return m, nil
	case keys.CtrlF:
		m.modal.Show(ui.NewAttachFileState())
		return m, nil
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// sendCurrentInput validates the composer draft, applies it optimistically,
// and issues the insert.
func (m *Model) sendCurrentInput() (tea.Model, tea.Cmd) {
	conv := m.activeConversation()
	if conv == nil {
		return m, nil
	}

	userID, userName, userAvatar := m.config.GetUser()
	outgoing, err := feed.NewOutgoing(conv.ID, userID, userName, userAvatar, m.chat.GetInput())
	if err != nil {
		return m, m.ShowFlashWarning("Nothing to send")
	}

	// Optimistic append; the subscription echo collapses into it by id
	m.feed.ApplyInsert(outgoing)
	m.chat.SetMessages(m.feed.Messages())
	m.chat.ClearInput()
	m.drafts.Discard(conv.ID)

	logger.Debug("App: Sending message to %s", conv.ID)
	return m, m.sendMessage(outgoing)
}

// copyLatestMessage copies the newest message in the open conversation to
// the clipboard, via OSC 52 plus the native fallback.
func (m *Model) copyLatestMessage() tea.Cmd {
	text, ok := m.chat.LatestMessageText()
	if !ok {
		return nil
	}
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				logger.Warn("App: Clipboard write failed: %v", err)
				return ui.ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		m.ShowFlashSuccess("Copied message"),
	)
}

// openConversation switches the chat panel to a conversation: save the
// outgoing draft, reset the feed, restore the new conversation's draft, and
// start the history load.
func (m *Model) openConversation(conv backend.Conversation) tea.Cmd {
	// Stash the current composer text before switching
	if prev := m.ws.ActiveConversationID(); prev != "" {
		if text := m.chat.GetInput(); text != "" {
			m.drafts.Set(prev, compose.Draft{Text: text})
		} else {
			m.drafts.Discard(prev)
		}
	}

	m.ws.SetActiveConversation(conv.ID)
	m.sidebar.SetActive(conv.ID)
	m.sidebar.SelectConversation(conv.ID)
	m.header.SetConversation(conv.Name, m.memberCount(conv))
	m.members.SetProfiles(m.conversationMembers(conv))

	m.feed.Reset(conv.ID)
	m.feed.StartLoading()

	m.chat.SetConversation(conv)
	m.chat.ClearInput()
	if draft := m.drafts.Get(conv.ID); draft.Text != "" {
		m.chat.SetInput(draft.Text)
	}

	if m.focus != FocusChat {
		m.toggleFocus()
	}

	logger.Debug("App: Opened conversation %s (%s)", conv.ID, conv.Name)
	return m.loadMessages(conv.ID)
}
