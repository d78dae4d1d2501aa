package app

import (
	"github.com/abrandt/huddle/internal/backend"
)

// StartupModalMsg is sent on app start to trigger the welcome modal
type StartupModalMsg struct{}

// ConversationsLoadedMsg is sent when the sidebar's conversation list loads
type ConversationsLoadedMsg struct {
	Conversations []backend.Conversation
	Err           error
}

// ProfilesLoadedMsg is sent when the workspace member list loads
type ProfilesLoadedMsg struct {
	Profiles []backend.Profile
	Err      error
}

// MessagesLoadedMsg is sent when a conversation's history load completes.
// ConversationID tags the result so a stale response from a previous
// conversation can be discarded.
type MessagesLoadedMsg struct {
	ConversationID string
	Messages       []backend.Message
	Err            error
}

// MessageSentMsg is sent when a message insert completes
type MessageSentMsg struct {
	ConversationID string
	Message        backend.Message
	Err            error
}

// SubscriptionStartedMsg is sent when the realtime subscription opens
type SubscriptionStartedMsg struct {
	Sub *backend.Subscription
	Err error
}

// MessageInsertedMsg is sent for each realtime insert event. Closed marks the
// end of the stream.
type MessageInsertedMsg struct {
	Message backend.Message
	Closed  bool
}

// ChannelCreatedMsg is sent when a create-channel call completes
type ChannelCreatedMsg struct {
	Conversation backend.Conversation
	Err          error
}

// DMCreatedMsg is sent when a create-or-reuse DM call completes
type DMCreatedMsg struct {
	Conversation backend.Conversation
	Other        backend.Profile
	Reused       bool
	Err          error
}
