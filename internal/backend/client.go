package backend

import "context"

// Client is the surface the app uses to talk to the workspace backend. The
// production implementation is HTTPClient; tests use the in-memory Fake.
type Client interface {
	// ListConversations returns every conversation visible to the user:
	// all channels plus DMs the user participates in.
	ListConversations(ctx context.Context, userID string) ([]Conversation, error)

	// CreateConversation inserts a new conversation row and returns it with
	// its server-assigned fields populated.
	CreateConversation(ctx context.Context, conv Conversation) (Conversation, error)

	// FindDM returns the DM between the two profiles, or nil if none exists.
	FindDM(ctx context.Context, userA, userB string) (*Conversation, error)

	// ListMessages returns all messages in a conversation ordered by
	// created_at ascending.
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)

	// SendMessage inserts a message row and returns the stored row.
	SendMessage(ctx context.Context, msg Message) (Message, error)

	// ListProfiles returns all workspace member profiles.
	ListProfiles(ctx context.Context) ([]Profile, error)

	// Subscribe opens a realtime stream of message inserts. A non-empty
	// conversationID scopes the stream to that conversation; an empty id
	// streams every insert in the workspace. The subscription ends when ctx
	// is canceled or Close is called.
	Subscribe(ctx context.Context, conversationID string) (*Subscription, error)
}

// Subscription is a live stream of insert events for one conversation.
type Subscription struct {
	ConversationID string

	events chan InsertEvent
	cancel context.CancelFunc
}

// Events returns the channel insert events arrive on. The channel is closed
// when the subscription ends.
func (s *Subscription) Events() <-chan InsertEvent {
	return s.events
}

// Close tears the subscription down. Safe to call more than once.
func (s *Subscription) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}
