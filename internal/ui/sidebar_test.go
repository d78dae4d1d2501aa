package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
)

func testConversations() []backend.Conversation {
	return []backend.Conversation{
		{ID: "c1", Name: "general", Kind: backend.KindChannel, Section: backend.SectionChannels},
		{ID: "c2", Name: "random", Kind: backend.KindChannel, Section: backend.SectionChannels},
		{ID: "d1", Name: "maria", Kind: backend.KindDM, Section: backend.SectionDMs, DMParticipants: []string{"u1", "u2"}},
	}
}

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

func TestSidebar_SetConversations_SelectsFirstConversation(t *testing.T) {
	s := NewSidebar()
	s.SetConversations(testConversations())

	sel := s.SelectedConversation()
	if sel == nil {
		t.Fatal("expected a selected conversation")
	}
	if sel.ID != "c1" {
		t.Errorf("selected = %s, want c1", sel.ID)
	}
}

func TestSidebar_Navigation_SkipsSectionHeaders(t *testing.T) {
	s := NewSidebar()
	s.SetConversations(testConversations())
	s.SetFocused(true)

	// c1 -> c2 -> "+ New channel" -> d1 (skipping the DM section header)
	s.Update(keyPress("j"))
	if sel := s.SelectedConversation(); sel == nil || sel.ID != "c2" {
		t.Fatalf("after one down, selected = %v, want c2", sel)
	}

	s.Update(keyPress("j"))
	if !s.IsNewChannelSelected() {
		t.Fatal("expected '+ New channel' action to be selected")
	}

	s.Update(keyPress("j"))
	if sel := s.SelectedConversation(); sel == nil || sel.ID != "d1" {
		t.Fatalf("selected = %v, want d1", sel)
	}

	s.Update(keyPress("j"))
	if !s.IsNewDMSelected() {
		t.Fatal("expected '+ New DM' action to be selected")
	}

	// Down at the bottom stays put
	s.Update(keyPress("j"))
	if !s.IsNewDMSelected() {
		t.Error("selection should not move past the last row")
	}
}

func TestSidebar_Navigation_IgnoredWhenUnfocused(t *testing.T) {
	s := NewSidebar()
	s.SetConversations(testConversations())
	s.SetFocused(false)

	s.Update(keyPress("j"))
	if sel := s.SelectedConversation(); sel == nil || sel.ID != "c1" {
		t.Errorf("unfocused sidebar should not navigate, selected = %v", sel)
	}
}

func TestSidebar_SelectConversation(t *testing.T) {
	s := NewSidebar()
	s.SetConversations(testConversations())

	s.SelectConversation("d1")
	if sel := s.SelectedConversation(); sel == nil || sel.ID != "d1" {
		t.Errorf("selected = %v, want d1", sel)
	}

	// Unknown ID leaves selection alone
	s.SelectConversation("nope")
	if sel := s.SelectedConversation(); sel == nil || sel.ID != "d1" {
		t.Errorf("selected = %v, want d1 after unknown id", sel)
	}
}

func TestSidebar_Unread(t *testing.T) {
	s := NewSidebar()
	s.SetConversations(testConversations())
	s.SetActive("c1")

	s.IncrementUnread("c2")
	s.IncrementUnread("c2")
	if got := s.UnreadCount("c2"); got != 2 {
		t.Errorf("unread for c2 = %d, want 2", got)
	}

	// The active conversation never accumulates unreads
	s.IncrementUnread("c1")
	if got := s.UnreadCount("c1"); got != 0 {
		t.Errorf("unread for active conversation = %d, want 0", got)
	}

	// Opening a conversation clears its unreads
	s.SetActive("c2")
	if got := s.UnreadCount("c2"); got != 0 {
		t.Errorf("unread after SetActive = %d, want 0", got)
	}
}
