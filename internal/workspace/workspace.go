// Package workspace holds the UI-level workspace state: which conversation is
// active and which panels are open. The container is injected into the app
// model rather than accessed as a singleton, so tests construct their own.
// None of it is persisted; every session starts from the defaults.
package workspace

// State is the mutable workspace UI state. Mutation goes through the setter
// methods only.
type State struct {
	activeConversationID string
	sidebarCollapsed     bool
	membersPanelOpen     bool
}

// New returns a State with the defaults: no active conversation, sidebar
// expanded, members panel closed.
func New() *State {
	return &State{}
}

// ActiveConversationID returns the id of the active conversation, or empty
// string when none has been selected yet.
func (s *State) ActiveConversationID() string {
	return s.activeConversationID
}

// SetActiveConversation switches the active conversation.
func (s *State) SetActiveConversation(conversationID string) {
	s.activeConversationID = conversationID
}

// SidebarCollapsed reports whether the sidebar is collapsed.
func (s *State) SidebarCollapsed() bool {
	return s.sidebarCollapsed
}

// ToggleSidebar flips the sidebar-collapsed flag.
func (s *State) ToggleSidebar() {
	s.sidebarCollapsed = !s.sidebarCollapsed
}

// MembersPanelOpen reports whether the members panel is open.
func (s *State) MembersPanelOpen() bool {
	return s.membersPanelOpen
}

// ToggleMembersPanel flips the members-panel flag.
func (s *State) ToggleMembersPanel() {
	s.membersPanelOpen = !s.membersPanelOpen
}
