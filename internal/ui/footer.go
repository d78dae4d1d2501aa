package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FlashType identifies the severity of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 5 * time.Second

// FlashMessage is a transient status message shown in the footer
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is visible
type FlashTickMsg time.Time

// FlashTick returns a command that sends a tick to check flash expiry
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width            int
	bindings         []KeyBinding
	hasConversation  bool // Whether a conversation is open
	sidebarFocused   bool // Whether sidebar has focus
	sidebarCollapsed bool // Whether sidebar is hidden
	flashMessage     *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "ctrl+n", Desc: "new channel"},
			{Key: "ctrl+d", Desc: "new dm"},
			{Key: "ctrl+u", Desc: "toggle sidebar"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasConversation, sidebarFocused, sidebarCollapsed bool) {
	f.hasConversation = hasConversation
	f.sidebarFocused = sidebarFocused
	f.sidebarCollapsed = sidebarCollapsed
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash displays a flash message with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration displays a flash message with a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is visible
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears the flash message if it has expired,
// returning whether it was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// flashIcon returns the icon for a flash type
func flashIcon(t FlashType) string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

// flashColor returns the color for a flash type
func flashColor(t FlashType) color.Color {
	switch t {
	case FlashError:
		return ColorError
	case FlashWarning:
		return ColorWarning
	case FlashSuccess:
		return ColorSuccess
	default:
		return ColorInfo
	}
}

// View renders the footer
func (f *Footer) View() string {
	// Flash messages take priority over keybindings
	if f.flashMessage != nil {
		style := lipgloss.NewStyle().Foreground(flashColor(f.flashMessage.Type)).Bold(true)
		content := style.Render(flashIcon(f.flashMessage.Type) + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(content)
	}

	var parts []string

	if !f.sidebarFocused && f.hasConversation {
		// Composer focused with an open conversation
		chatBindings := []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "shift+enter", Desc: "newline"},
			{Key: "ctrl+b/i/e", Desc: "format"},
			{Key: "ctrl+l", Desc: "bullet"},
			{Key: "ctrl+g", Desc: "emoji"},
			{Key: "ctrl+a", Desc: "mention"},
			{Key: "tab", Desc: "sidebar"},
		}
		for _, b := range chatBindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
	} else {
		for _, b := range f.bindings {
			// Can't switch to the composer without an open conversation
			if b.Key == "tab" && !f.hasConversation {
				continue
			}
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
