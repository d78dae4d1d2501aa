// Package feed keeps the active conversation's message list in sync with the
// backend: a history load, live inserts, and optimistic sends all merge into
// one ordered, duplicate-free list. The app drives it from the update loop,
// so no locking happens here.
package feed

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/errors"
)

// GroupWindow is the maximum gap between two messages from the same author
// for the second to continue the first's group.
const GroupWindow = 5 * time.Minute

// Phase is the load state of the feed for the active conversation.
type Phase int

const (
	// PhaseIdle means no history load has started.
	PhaseIdle Phase = iota
	// PhaseLoading means a history fetch is in flight.
	PhaseLoading
	// PhaseReady means history has been applied; live inserts keep it ready.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "idle"
	}
}

// Feed is the per-conversation message list state machine. A Feed tracks one
// conversation at a time; switching conversations resets it.
type Feed struct {
	conversationID string
	phase          Phase
	prevPhase      Phase
	messages       []backend.Message
}

// New returns an idle feed with no conversation.
func New() *Feed {
	return &Feed{}
}

// ConversationID returns the conversation this feed tracks.
func (f *Feed) ConversationID() string {
	return f.conversationID
}

// Phase returns the current load phase.
func (f *Feed) Phase() Phase {
	return f.phase
}

// Messages returns the ordered message list. The slice is shared; callers
// must not mutate it.
func (f *Feed) Messages() []backend.Message {
	return f.messages
}

// Reset points the feed at a new conversation and clears its state.
func (f *Feed) Reset(conversationID string) {
	f.conversationID = conversationID
	f.phase = PhaseIdle
	f.prevPhase = PhaseIdle
	f.messages = nil
}

// StartLoading marks a history fetch in flight. Messages already present
// (live inserts that raced the load) are kept.
func (f *Feed) StartLoading() {
	f.prevPhase = f.phase
	f.phase = PhaseLoading
}

// ApplyHistory merges a completed history load. A result tagged with a
// different conversation id is a stale response from a previous conversation
// and is discarded; the return value reports whether the result was applied.
func (f *Feed) ApplyHistory(conversationID string, msgs []backend.Message) bool {
	if conversationID != f.conversationID {
		return false
	}

	for _, m := range msgs {
		f.merge(m)
	}
	f.phase = PhaseReady
	f.prevPhase = PhaseReady
	return true
}

// LoadFailed records a failed history fetch. The feed keeps its prior phase
// and prior messages.
func (f *Feed) LoadFailed(conversationID string) {
	if conversationID != f.conversationID {
		return
	}
	if f.phase == PhaseLoading {
		f.phase = f.prevPhase
	}
}

// Remove drops the message with the given id, used to roll back an
// optimistic append whose insert failed.
func (f *Feed) Remove(id string) bool {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyInsert merges a live insert. Events for other conversations are
// ignored; the return value reports whether the message was applied.
func (f *Feed) ApplyInsert(msg backend.Message) bool {
	if msg.ConversationID != f.conversationID {
		return false
	}
	f.merge(msg)
	return true
}

// merge inserts msg in (CreatedAt, ID) order, replacing any entry with the
// same id so an optimistic append and its subscription echo collapse to one.
func (f *Feed) merge(msg backend.Message) {
	for i := range f.messages {
		if f.messages[i].ID == msg.ID {
			f.messages[i] = msg
			return
		}
	}

	pos := len(f.messages)
	for i := range f.messages {
		if less(msg, f.messages[i]) {
			pos = i
			break
		}
	}

	f.messages = append(f.messages, backend.Message{})
	copy(f.messages[pos+1:], f.messages[pos:])
	f.messages[pos] = msg
}

// less orders messages by (CreatedAt, ID).
func less(a, b backend.Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// ContinuesGroup reports whether msg continues prev's display group: same
// author and a gap no greater than GroupWindow.
func ContinuesGroup(prev, msg backend.Message) bool {
	if prev.AuthorID != msg.AuthorID {
		return false
	}
	gap := msg.CreatedAt.Sub(prev.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	return gap <= GroupWindow
}

// NewOutgoing validates a draft and builds the message row to insert. An
// empty or whitespace-only draft is rejected before any remote call. The id
// is a client-generated UUID so the optimistic append and the subscription
// echo deduplicate.
func NewOutgoing(conversationID, authorID, authorName, authorAvatar, content string) (backend.Message, error) {
	if strings.TrimSpace(content) == "" {
		return backend.Message{}, errors.MessageEmpty()
	}

	return backend.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		AuthorName:     authorName,
		AuthorAvatar:   authorAvatar,
		Content:        content,
		CreatedAt:      time.Now(),
	}, nil
}
