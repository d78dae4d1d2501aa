package backend

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Fake is an in-memory Client for tests. It stores rows in slices, assigns
// sequential ids, and lets tests emit realtime inserts and force failures.
type Fake struct {
	mu            sync.Mutex
	conversations []Conversation
	messages      []Message
	profiles      []Profile
	nextID        int

	subs []*fakeSub

	// Err, when set, is returned by every call. Tests use it to simulate an
	// unreachable backend.
	Err error
}

type fakeSub struct {
	sub  *Subscription
	ctx  context.Context
	once sync.Once
}

var _ Client = (*Fake)(nil)

// NewFake returns an empty in-memory backend.
func NewFake() *Fake {
	return &Fake{}
}

// Seed replaces the stored rows. Intended for test setup.
func (f *Fake) Seed(convs []Conversation, msgs []Message, profiles []Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conversations = append([]Conversation(nil), convs...)
	f.messages = append([]Message(nil), msgs...)
	f.profiles = append([]Profile(nil), profiles...)
}

func (f *Fake) genID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

// ListConversations returns channels plus DMs the user participates in.
func (f *Fake) ListConversations(_ context.Context, userID string) ([]Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	var out []Conversation
	for _, c := range f.conversations {
		if c.IsDM() && !c.Includes(userID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// CreateConversation stores the conversation, assigning an id if empty.
func (f *Fake) CreateConversation(_ context.Context, conv Conversation) (Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Conversation{}, f.Err
	}

	if conv.ID == "" {
		conv.ID = f.genID("conv")
	}
	f.conversations = append(f.conversations, conv)
	return conv, nil
}

// FindDM returns the stored DM between the two profiles, or nil.
func (f *Fake) FindDM(_ context.Context, userA, userB string) (*Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	for i := range f.conversations {
		if f.conversations[i].HasParticipants(userA, userB) {
			c := f.conversations[i]
			return &c, nil
		}
	}
	return nil, nil
}

// ListMessages returns the conversation's messages oldest first.
func (f *Fake) ListMessages(_ context.Context, conversationID string) ([]Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	var out []Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	// Stored in insertion order; sort by timestamp to match the backend's
	// created_at ascending ordering.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.Before(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// SendMessage stores the message, assigning id and timestamp if missing.
func (f *Fake) SendMessage(_ context.Context, msg Message) (Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Message{}, f.Err
	}

	if msg.ID == "" {
		msg.ID = f.genID("msg")
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	f.messages = append(f.messages, msg)
	return msg, nil
}

// ListProfiles returns all seeded profiles.
func (f *Fake) ListProfiles(_ context.Context) ([]Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]Profile(nil), f.profiles...), nil
}

// Subscribe registers an in-memory subscription. Events are delivered via
// Emit; the channel closes when the context is canceled or Close is called.
func (f *Fake) Subscribe(ctx context.Context, conversationID string) (*Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		ConversationID: conversationID,
		events:         make(chan InsertEvent, 16),
		cancel:         cancel,
	}
	fs := &fakeSub{sub: sub, ctx: ctx}
	f.subs = append(f.subs, fs)

	// Close under the same lock Emit holds so a concurrent Emit can never
	// send on a just-closed channel.
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		fs.once.Do(func() { close(sub.events) })
		f.mu.Unlock()
	}()

	return sub, nil
}

// Emit delivers a message insert to every live subscription for its
// conversation, mirroring the realtime endpoint's scoping. Subscriptions
// opened with an empty conversation id receive every insert.
func (f *Fake) Emit(msg Message) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, fs := range f.subs {
		if fs.sub.ConversationID != "" && fs.sub.ConversationID != msg.ConversationID {
			continue
		}
		// A canceled subscription may be closed at any moment; checking the
		// context first keeps the send off a closed channel, and holding the
		// lock keeps the close from racing it.
		if fs.ctx.Err() != nil {
			continue
		}
		select {
		case fs.sub.events <- InsertEvent{Table: "messages", Message: msg}:
		default:
		}
	}
}

// SubscriptionCount returns the number of subscriptions ever opened. Tests
// use it to assert teardown behavior alongside closed event channels.
func (f *Fake) SubscriptionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
