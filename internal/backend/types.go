// Package backend is the client for the workspace data service. It speaks the
// service's row API over HTTP for queries and mutations, and a websocket for
// realtime row-insert notifications.
package backend

import (
	"time"
)

// ConversationKind distinguishes channels from direct messages.
type ConversationKind string

const (
	KindChannel ConversationKind = "channel"
	KindDM      ConversationKind = "dm"
)

// Sidebar section titles stored on conversation rows.
const (
	SectionChannels = "Channels"
	SectionDMs      = "Direct messages"
)

// Conversation is a channel or direct-message thread.
type Conversation struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Kind        ConversationKind `json:"kind"`
	Section     string           `json:"section"`
	Description string           `json:"description,omitempty"`
	CreatedBy   string           `json:"created_by,omitempty"`

	// DMParticipants holds exactly two profile ids for kind == dm.
	DMParticipants []string `json:"dm_participants,omitempty"`
}

// IsDM reports whether the conversation is a direct message.
func (c Conversation) IsDM() bool {
	return c.Kind == KindDM
}

// HasParticipants reports whether the conversation is a DM between exactly
// the two given profiles, in either order.
func (c Conversation) HasParticipants(a, b string) bool {
	if !c.IsDM() || len(c.DMParticipants) != 2 {
		return false
	}
	p0, p1 := c.DMParticipants[0], c.DMParticipants[1]
	return (p0 == a && p1 == b) || (p0 == b && p1 == a)
}

// Includes reports whether the given profile is a DM participant.
func (c Conversation) Includes(userID string) bool {
	for _, p := range c.DMParticipants {
		if p == userID {
			return true
		}
	}
	return false
}

// Reaction is an emoji tally on a message.
type Reaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Message is a single message row.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	AuthorID       string     `json:"author_id"`
	AuthorName     string     `json:"author_name"`
	AuthorAvatar   string     `json:"author_avatar,omitempty"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	Reactions      []Reaction `json:"reactions,omitempty"`
	ReplyCount     int        `json:"reply_count,omitempty"`
}

// Profile is a workspace member.
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Name returns the best display string for the profile.
func (p Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// InsertEvent is a realtime row-insert notification.
type InsertEvent struct {
	Table   string  `json:"table"`
	Message Message `json:"record"`
}
