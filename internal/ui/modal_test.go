package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
)

func testProfiles() []backend.Profile {
	return []backend.Profile{
		{ID: "u1", Username: "maria", DisplayName: "Maria Ortiz"},
		{ID: "u2", Username: "alex"},
		{ID: "u3", Username: "sam", DisplayName: "Sam Chen"},
	}
}

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should not be visible")
	}

	m.Show(NewHelpState())
	if !m.IsVisible() {
		t.Error("modal should be visible after Show")
	}

	m.SetError("something broke")
	if m.GetError() != "something broke" {
		t.Errorf("GetError() = %q", m.GetError())
	}

	m.Hide()
	if m.IsVisible() {
		t.Error("modal should not be visible after Hide")
	}
	if m.GetError() != "" {
		t.Error("Hide should clear the error")
	}
}

func TestModal_ViewIncludesError(t *testing.T) {
	m := NewModal()
	m.Show(NewHelpState())
	m.SetError("name taken")

	view := m.View(100, 40)
	if !strings.Contains(view, "name taken") {
		t.Error("modal view should include the error message")
	}
}

func TestCreateChannelState_Values(t *testing.T) {
	s := NewCreateChannelState()
	if s.GetName() != "" || s.GetDescription() != "" {
		t.Error("new create-channel state should start empty")
	}
	if !strings.Contains(s.Render(), "Create Channel") {
		t.Error("render should include the title")
	}
}

func TestAttachFileState_TrimsPath(t *testing.T) {
	s := NewAttachFileState()
	if s.GetPath() != "" {
		t.Error("new attach-file state should start empty")
	}
	s.path = "  ~/notes/plan.md "
	if got := s.GetPath(); got != "~/notes/plan.md" {
		t.Errorf("GetPath() = %q, want trimmed path", got)
	}
	if !strings.Contains(s.Render(), "Attach File") {
		t.Error("render should include the title")
	}
}

func TestNewDMState_FilterAndSelect(t *testing.T) {
	s := NewNewDMState(testProfiles())

	sel := s.GetSelectedProfile()
	if sel == nil || sel.Username != "maria" {
		t.Fatalf("initial selection = %v, want maria", sel)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if sel := s.GetSelectedProfile(); sel == nil || sel.Username != "alex" {
		t.Errorf("after down, selected = %v, want alex", sel)
	}

	// Typing filters by username and display name
	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	usernames := make([]string, 0, len(s.Filtered))
	for _, p := range s.Filtered {
		usernames = append(usernames, p.Username)
	}
	if len(s.Filtered) != 1 || s.Filtered[0].Username != "sam" {
		t.Errorf("filter 's' matched %v, want [sam]", usernames)
	}
	if sel := s.GetSelectedProfile(); sel == nil || sel.Username != "sam" {
		t.Errorf("selection should clamp into the filtered list, got %v", sel)
	}
}

func TestNewDMState_NoMatch(t *testing.T) {
	s := NewNewDMState(testProfiles())
	s.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})

	if s.GetSelectedProfile() != nil {
		t.Error("GetSelectedProfile should be nil when nothing matches")
	}
	if !strings.Contains(s.Render(), "No matching people") {
		t.Error("render should say nothing matched")
	}
}

func TestEmojiPickerState_SearchAndSelect(t *testing.T) {
	s := NewEmojiPickerState()

	if s.GetSelectedEmoji() == "" {
		t.Fatal("picker should start with the full catalogue selected")
	}

	for _, r := range "fire" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	if got := s.GetSelectedEmoji(); got != "🔥" {
		t.Errorf("search 'fire' selected %q, want 🔥", got)
	}
}

func TestEmojiPickerState_Navigation(t *testing.T) {
	s := NewEmojiPickerState()
	first := s.GetSelectedEmoji()

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.GetSelectedEmoji() == first {
		t.Error("down should move the selection")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := s.GetSelectedEmoji(); got != first {
		t.Errorf("up should move back to %q, got %q", first, got)
	}
}

func TestMentionState_Filter(t *testing.T) {
	s := NewMentionState(testProfiles())

	for _, r := range "al" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	sel := s.GetSelectedProfile()
	if sel == nil || sel.Username != "alex" {
		t.Errorf("filter 'al' selected %v, want alex", sel)
	}
}

func TestThemeState_Selection(t *testing.T) {
	s := NewThemeState(ThemeNord)

	if got := s.GetSelectedTheme(); got != ThemeNord {
		t.Errorf("initial selection = %v, want the current theme", got)
	}
	if !strings.Contains(s.Render(), "(current)") {
		t.Error("render should mark the current theme")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := s.GetSelectedTheme(); got == ThemeNord {
		t.Error("up should move off the current theme")
	}
}

func TestHelpState_RenderListsShortcuts(t *testing.T) {
	s := NewHelpState()
	view := s.Render()

	for _, want := range []string{"ctrl+n", "ctrl+d", "shift+enter", "ctrl+g"} {
		if !strings.Contains(view, want) {
			t.Errorf("help should list %q", want)
		}
	}
}

func TestWelcomeState_UsesWorkspaceName(t *testing.T) {
	s := NewWelcomeState("Acme")
	if !strings.Contains(s.Render(), "Welcome to Acme!") {
		t.Error("welcome title should use the workspace name")
	}

	s = NewWelcomeState("")
	if !strings.Contains(s.Render(), "Welcome to Huddle!") {
		t.Error("welcome title should fall back to the app name")
	}
}
