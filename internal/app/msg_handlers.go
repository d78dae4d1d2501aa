package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abrandt/huddle/internal/compose"
	"github.com/abrandt/huddle/internal/logger"
	"github.com/abrandt/huddle/internal/notification"
)

func (m *Model) handleConversationsLoaded(msg ConversationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: Conversation load failed: %v", msg.Err)
		return m, m.ShowFlashError("Couldn't load conversations")
	}

	m.conversations = msg.Conversations
	m.resolveDMNames()
	m.sidebar.SetConversations(m.conversations)

	var cmds []tea.Cmd

	// Land the user in the first conversation on the initial load
	if m.ws.ActiveConversationID() == "" && len(m.conversations) > 0 {
		cmds = append(cmds, m.openConversation(m.conversations[0]))
	}

	// Open the realtime stream once the directory is known
	if m.sub == nil {
		cmds = append(cmds, m.subscribe())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleProfilesLoaded(msg ProfilesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: Profile load failed: %v", msg.Err)
		return m, m.ShowFlashError("Couldn't load workspace members")
	}

	m.profiles = msg.Profiles
	// DM display names depend on profiles; re-resolve now that they exist
	m.resolveDMNames()
	m.sidebar.SetConversations(m.conversations)
	if conv := m.activeConversation(); conv != nil {
		m.members.SetProfiles(m.conversationMembers(*conv))
	}
	return m, nil
}

func (m *Model) handleMessagesLoaded(msg MessagesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.feed.LoadFailed(msg.ConversationID)
		if msg.ConversationID == m.ws.ActiveConversationID() {
			m.chat.SetLoading(false)
			return m, m.ShowFlashError("Couldn't load messages")
		}
		return m, nil
	}

	// ApplyHistory discards results from a conversation we already left
	if m.feed.ApplyHistory(msg.ConversationID, msg.Messages) {
		m.chat.SetMessages(m.feed.Messages())
	}
	return m, nil
}

func (m *Model) handleMessageSent(msg MessageSentMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: Send failed for %s: %v", msg.ConversationID, msg.Err)
		// Roll back the optimistic row and put the text back so the user
		// can retry without retyping
		if m.feed.Remove(msg.Message.ID) {
			m.chat.SetMessages(m.feed.Messages())
		}
		if m.ws.ActiveConversationID() == msg.ConversationID {
			if m.chat.GetInput() == "" {
				m.chat.SetInput(msg.Message.Content)
			}
		} else {
			m.drafts.Set(msg.ConversationID, compose.Draft{Text: msg.Message.Content})
		}
		return m, m.ShowFlashError("Message failed to send")
	}

	// The stored row replaces the optimistic one by id
	if m.feed.ApplyInsert(msg.Message) {
		m.chat.SetMessages(m.feed.Messages())
	}
	return m, nil
}

func (m *Model) handleSubscriptionStarted(msg SubscriptionStartedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: Subscribe failed: %v", msg.Err)
		return m, m.ShowFlashWarning("Live updates unavailable")
	}

	m.sub = msg.Sub
	return m, m.listenForInsert(m.sub)
}

func (m *Model) handleMessageInserted(msg MessageInsertedMsg) (tea.Model, tea.Cmd) {
	if msg.Closed {
		logger.Warn("App: Realtime stream closed, reconnecting")
		m.sub = nil
		return m, m.subscribe()
	}

	inserted := msg.Message

	if m.feed.ApplyInsert(inserted) {
		// Active conversation: render it
		m.chat.SetMessages(m.feed.Messages())
	} else {
		// Some other conversation: badge it, and notify if it's someone else
		m.sidebar.IncrementUnread(inserted.ConversationID)

		userID, _, _ := m.config.GetUser()
		if inserted.AuthorID != userID && m.config.GetNotificationsEnabled() {
			if conv := m.conversationByID(inserted.ConversationID); conv != nil {
				if conv.IsDM() {
					notification.DirectMessage(inserted.AuthorName, preview(inserted.Content))
				} else {
					notification.MessageReceived("#"+conv.Name, inserted.AuthorName, preview(inserted.Content))
				}
			}
		}
	}

	// Re-arm the listener for the next event
	return m, m.listenForInsert(m.sub)
}

func (m *Model) handleChannelCreated(msg ChannelCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: Channel create failed: %v", msg.Err)
		return m, m.ShowFlashError("Couldn't create channel")
	}

	m.conversations = append(m.conversations, msg.Conversation)
	m.sidebar.SetConversations(m.conversations)

	openCmd := m.openConversation(msg.Conversation)
	return m, tea.Batch(openCmd, m.ShowFlashSuccess("Channel #"+msg.Conversation.Name+" created"))
}

func (m *Model) handleDMCreated(msg DMCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: DM create failed: %v", msg.Err)
		return m, m.ShowFlashError("Couldn't start conversation")
	}

	conv := msg.Conversation
	conv.Name = msg.Other.Name()

	if m.conversationByID(conv.ID) == nil {
		m.conversations = append(m.conversations, conv)
		m.sidebar.SetConversations(m.conversations)
	}

	openCmd := m.openConversation(conv)
	if msg.Reused {
		return m, tea.Batch(openCmd, m.ShowFlashInfo("You already have a conversation with "+msg.Other.Name()))
	}
	return m, openCmd
}

// preview shortens message content for a desktop notification. Truncation is
// width-aware so multibyte runes are never split.
func preview(content string) string {
	content = strings.TrimSpace(content)
	if line, _, found := strings.Cut(content, "\n"); found {
		content = line + "…"
	}
	return runewidth.Truncate(content, 80, "...")
}
