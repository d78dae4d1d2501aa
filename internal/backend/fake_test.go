package backend

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFake_ListConversations_FiltersDMs(t *testing.T) {
	f := NewFake()
	f.Seed([]Conversation{
		{ID: "c1", Name: "general", Kind: KindChannel, Section: SectionChannels},
		{ID: "d1", Kind: KindDM, Section: SectionDMs, DMParticipants: []string{"u1", "u2"}},
		{ID: "d2", Kind: KindDM, Section: SectionDMs, DMParticipants: []string{"u2", "u3"}},
	}, nil, nil)

	convs, err := f.ListConversations(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListConversations failed: %v", err)
	}

	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations (channel + own DM), got %d", len(convs))
	}
	for _, c := range convs {
		if c.ID == "d2" {
			t.Error("should not include DMs the user is not part of")
		}
	}
}

func TestFake_FindDM_UnorderedPair(t *testing.T) {
	f := NewFake()
	f.Seed([]Conversation{
		{ID: "d1", Kind: KindDM, DMParticipants: []string{"u1", "u2"}},
	}, nil, nil)

	// Both orderings must find the same conversation
	got, err := f.FindDM(context.Background(), "u1", "u2")
	if err != nil || got == nil || got.ID != "d1" {
		t.Errorf("FindDM(u1,u2) = %v, %v; want d1", got, err)
	}

	got, err = f.FindDM(context.Background(), "u2", "u1")
	if err != nil || got == nil || got.ID != "d1" {
		t.Errorf("FindDM(u2,u1) = %v, %v; want d1", got, err)
	}

	// Missing pair returns nil without error
	got, err = f.FindDM(context.Background(), "u1", "u9")
	if err != nil {
		t.Errorf("FindDM for missing pair errored: %v", err)
	}
	if got != nil {
		t.Errorf("FindDM for missing pair = %v, want nil", got)
	}
}

func TestFake_ListMessages_OrderedByCreatedAt(t *testing.T) {
	f := NewFake()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.Seed(nil, []Message{
		{ID: "m2", ConversationID: "c1", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "m1", ConversationID: "c1", CreatedAt: base},
		{ID: "m3", ConversationID: "c2", CreatedAt: base.Add(time.Minute)},
	}, nil)

	msgs, err := f.ListMessages(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}

	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages for c1, got %d", len(msgs))
	}
	if msgs[0].ID != "m1" || msgs[1].ID != "m2" {
		t.Errorf("messages out of order: %s, %s", msgs[0].ID, msgs[1].ID)
	}
}

func TestFake_SendMessage_AssignsIDAndTimestamp(t *testing.T) {
	f := NewFake()

	stored, err := f.SendMessage(context.Background(), Message{
		ConversationID: "c1",
		AuthorID:       "u1",
		Content:        "hello",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if stored.ID == "" {
		t.Error("SendMessage should assign an id")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("SendMessage should assign a timestamp")
	}

	// Client-provided ids are kept
	stored2, err := f.SendMessage(context.Background(), Message{
		ID:             "client-id",
		ConversationID: "c1",
		Content:        "again",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if stored2.ID != "client-id" {
		t.Errorf("SendMessage replaced client id: %q", stored2.ID)
	}
}

func TestFake_Subscribe_ScopedDelivery(t *testing.T) {
	f := NewFake()
	ctx := context.Background()

	sub, err := f.Subscribe(ctx, "c1")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer sub.Close()

	f.Emit(Message{ID: "m1", ConversationID: "c1", Content: "for c1"})
	f.Emit(Message{ID: "m2", ConversationID: "c2", Content: "for c2"})

	select {
	case ev := <-sub.Events():
		if ev.Message.ID != "m1" {
			t.Errorf("received %q, want m1", ev.Message.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	// The c2 event must not arrive on this subscription
	select {
	case ev := <-sub.Events():
		t.Errorf("unexpected event for other conversation: %+v", ev)
	default:
	}
}

func TestFake_Subscribe_CloseEndsStream(t *testing.T) {
	f := NewFake()

	sub, err := f.Subscribe(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	sub.Close()

	select {
	case _, ok := <-sub.Events():
		if ok {
			t.Error("expected closed channel after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after Close")
	}

	// Double close is safe
	sub.Close()
}

func TestFake_Subscribe_ContextCancelEndsStream(t *testing.T) {
	f := NewFake()
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := f.Subscribe(ctx, "c1")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	cancel()

	select {
	case _, ok := <-sub.Events():
		if ok {
			t.Error("expected closed channel after context cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after context cancel")
	}
}

func TestFake_EmitAfterCancelDropsEvent(t *testing.T) {
	f := NewFake()
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := f.Subscribe(ctx, "c1")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	cancel()

	// The events channel may close at any point after the cancel; emitting
	// here must neither panic nor deliver the event.
	f.Emit(Message{ID: "m1", ConversationID: "c1"})

	select {
	case ev, ok := <-sub.Events():
		if ok {
			t.Errorf("event delivered after cancel: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}

func TestFake_ErrPropagates(t *testing.T) {
	f := NewFake()
	f.Err = errors.New("backend down")
	ctx := context.Background()

	if _, err := f.ListConversations(ctx, "u1"); err == nil {
		t.Error("ListConversations should fail when Err is set")
	}
	if _, err := f.ListMessages(ctx, "c1"); err == nil {
		t.Error("ListMessages should fail when Err is set")
	}
	if _, err := f.SendMessage(ctx, Message{ConversationID: "c1"}); err == nil {
		t.Error("SendMessage should fail when Err is set")
	}
	if _, err := f.CreateConversation(ctx, Conversation{}); err == nil {
		t.Error("CreateConversation should fail when Err is set")
	}
	if _, err := f.Subscribe(ctx, "c1"); err == nil {
		t.Error("Subscribe should fail when Err is set")
	}
}

func TestConversation_HasParticipants(t *testing.T) {
	tests := []struct {
		name string
		conv Conversation
		a, b string
		want bool
	}{
		{
			name: "matching pair",
			conv: Conversation{Kind: KindDM, DMParticipants: []string{"u1", "u2"}},
			a:    "u1", b: "u2",
			want: true,
		},
		{
			name: "reversed pair",
			conv: Conversation{Kind: KindDM, DMParticipants: []string{"u1", "u2"}},
			a:    "u2", b: "u1",
			want: true,
		},
		{
			name: "different pair",
			conv: Conversation{Kind: KindDM, DMParticipants: []string{"u1", "u3"}},
			a:    "u1", b: "u2",
			want: false,
		},
		{
			name: "channel never matches",
			conv: Conversation{Kind: KindChannel},
			a:    "u1", b: "u2",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conv.HasParticipants(tt.a, tt.b); got != tt.want {
				t.Errorf("HasParticipants(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestProfile_Name(t *testing.T) {
	p := Profile{Username: "maria", DisplayName: "Maria G"}
	if p.Name() != "Maria G" {
		t.Errorf("Name() = %q, want display name", p.Name())
	}

	p = Profile{Username: "maria"}
	if p.Name() != "maria" {
		t.Errorf("Name() = %q, want username fallback", p.Name())
	}
}
