package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
	apperrors "github.com/abrandt/huddle/internal/errors"
)

// requestTimeout bounds every one-shot backend call issued from the update
// loop. The realtime subscription is not subject to it.
const requestTimeout = 10 * time.Second

// loadConversations fetches the sidebar's conversation list
func (m *Model) loadConversations() tea.Cmd {
	userID, _, _ := m.config.GetUser()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		convs, err := m.dir.List(ctx, userID)
		return ConversationsLoadedMsg{Conversations: convs, Err: err}
	}
}

// loadProfiles fetches the workspace member list
func (m *Model) loadProfiles() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		profiles, err := m.client.ListProfiles(ctx)
		return ProfilesLoadedMsg{Profiles: profiles, Err: err}
	}
}

// loadMessages fetches a conversation's history. The result carries the
// conversation id so stale responses are discarded after a switch.
func (m *Model) loadMessages(conversationID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msgs, err := m.client.ListMessages(ctx, conversationID)
		if err != nil {
			err = apperrors.MessagesFetchFailed(conversationID, err)
		}
		return MessagesLoadedMsg{ConversationID: conversationID, Messages: msgs, Err: err}
	}
}

// sendMessage inserts a message row
func (m *Model) sendMessage(msg backend.Message) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stored, err := m.client.SendMessage(ctx, msg)
		if err != nil {
			// Keep the outgoing row so the failure path can roll it back
			return MessageSentMsg{
				ConversationID: msg.ConversationID,
				Message:        msg,
				Err:            apperrors.MessageSendFailed(msg.ConversationID, err),
			}
		}
		return MessageSentMsg{ConversationID: msg.ConversationID, Message: stored}
	}
}

// subscribe opens the workspace-wide realtime stream
func (m *Model) subscribe() tea.Cmd {
	return func() tea.Msg {
		sub, err := m.client.Subscribe(context.Background(), "")
		return SubscriptionStartedMsg{Sub: sub, Err: err}
	}
}

// createChannel inserts a channel conversation
func (m *Model) createChannel(name, description string) tea.Cmd {
	userID, _, _ := m.config.GetUser()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		conv, err := m.dir.CreateChannel(ctx, name, description, userID)
		return ChannelCreatedMsg{Conversation: conv, Err: err}
	}
}

// createOrReuseDM opens the DM with the given profile, creating it if needed
func (m *Model) createOrReuseDM(other backend.Profile) tea.Cmd {
	userID, _, _ := m.config.GetUser()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		conv, reused, err := m.dir.CreateOrReuseDM(ctx, userID, other)
		return DMCreatedMsg{Conversation: conv, Other: other, Reused: reused, Err: err}
	}
}
