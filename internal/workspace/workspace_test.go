package workspace

import "testing"

func TestNew_Defaults(t *testing.T) {
	s := New()

	if s.ActiveConversationID() != "" {
		t.Errorf("ActiveConversationID = %q, want empty", s.ActiveConversationID())
	}
	if s.SidebarCollapsed() {
		t.Error("sidebar should start expanded")
	}
	if s.MembersPanelOpen() {
		t.Error("members panel should start closed")
	}
}

func TestSetActiveConversation(t *testing.T) {
	s := New()

	s.SetActiveConversation("conv-1")
	if s.ActiveConversationID() != "conv-1" {
		t.Errorf("ActiveConversationID = %q, want conv-1", s.ActiveConversationID())
	}

	s.SetActiveConversation("conv-2")
	if s.ActiveConversationID() != "conv-2" {
		t.Errorf("ActiveConversationID = %q, want conv-2", s.ActiveConversationID())
	}
}

func TestToggleSidebar(t *testing.T) {
	s := New()

	s.ToggleSidebar()
	if !s.SidebarCollapsed() {
		t.Error("sidebar should be collapsed after first toggle")
	}

	s.ToggleSidebar()
	if s.SidebarCollapsed() {
		t.Error("sidebar should be expanded after second toggle")
	}
}

func TestToggleMembersPanel(t *testing.T) {
	s := New()

	s.ToggleMembersPanel()
	if !s.MembersPanelOpen() {
		t.Error("members panel should be open after first toggle")
	}

	s.ToggleMembersPanel()
	if s.MembersPanelOpen() {
		t.Error("members panel should be closed after second toggle")
	}
}

// Toggling one flag must not disturb the other or the active conversation.
func TestTogglesAreIndependent(t *testing.T) {
	s := New()
	s.SetActiveConversation("conv-1")

	s.ToggleSidebar()
	if s.MembersPanelOpen() {
		t.Error("ToggleSidebar should not open the members panel")
	}
	if s.ActiveConversationID() != "conv-1" {
		t.Error("ToggleSidebar should not change the active conversation")
	}

	s.ToggleMembersPanel()
	if !s.SidebarCollapsed() {
		t.Error("ToggleMembersPanel should not expand the sidebar")
	}
}
