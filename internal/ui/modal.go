package ui

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/emoji"
	"github.com/abrandt/huddle/internal/keys"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	// Add error if present
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// CreateChannelState - State for the Create Channel modal
// =============================================================================

type CreateChannelState struct {
	form        *huh.Form
	name        string
	description string
	initialized bool
}

func (*CreateChannelState) modalState() {}

func (s *CreateChannelState) Title() string { return "Create Channel" }

func (s *CreateChannelState) Help() string {
	return "Tab: next field  Enter: create  Esc: cancel"
}

func (s *CreateChannelState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *CreateChannelState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// GetName returns the channel name as typed, before normalization
func (s *CreateChannelState) GetName() string {
	return s.name
}

// GetDescription returns the channel description
func (s *CreateChannelState) GetDescription() string {
	return s.description
}

// NewCreateChannelState creates a new CreateChannelState
func NewCreateChannelState() *CreateChannelState {
	s := &CreateChannelState{}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Lowercased, spaces become dashes").
				Placeholder("product-launch").
				CharLimit(ModalInputCharLimit).
				Value(&s.name),
			huh.NewInput().
				Title("Description").
				Placeholder("What is this channel about? (optional)").
				CharLimit(ModalInputCharLimit).
				Value(&s.description),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	s.initialized = true

	return s
}

// =============================================================================
// AttachFileState - State for the Attach File modal
// =============================================================================

// AttachFileState collects a file path to reference in the draft. There is
// no upload pipeline; the path is inserted as an attachment reference.
type AttachFileState struct {
	form        *huh.Form
	path        string
	initialized bool
}

func (*AttachFileState) modalState() {}

func (s *AttachFileState) Title() string { return "Attach File" }

func (s *AttachFileState) Help() string {
	return "Enter: attach  Esc: cancel"
}

func (s *AttachFileState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AttachFileState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// GetPath returns the entered file path, trimmed
func (s *AttachFileState) GetPath() string {
	return strings.TrimSpace(s.path)
}

// NewAttachFileState creates a new AttachFileState
func NewAttachFileState() *AttachFileState {
	s := &AttachFileState{}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Placeholder("~/notes/launch-plan.md").
				CharLimit(ModalInputCharLimit).
				Value(&s.path),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	s.initialized = true

	return s
}

// =============================================================================
// NewDMState - State for the New Direct Message modal
// =============================================================================

type NewDMState struct {
	Filter        textinput.Model
	Profiles      []backend.Profile // All candidates, excluding the current user
	Filtered      []backend.Profile
	SelectedIndex int
}

func (*NewDMState) modalState() {}

func (s *NewDMState) Title() string { return "New Direct Message" }

func (s *NewDMState) Help() string {
	return "Type to filter  ↑/↓ select  Enter: open  Esc: cancel"
}

func (s *NewDMState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	filterView := s.Filter.View()

	var list string
	if len(s.Filtered) == 0 {
		list = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No matching people.")
	} else {
		for i, p := range s.Filtered {
			if i >= ModalMaxListRows {
				remaining := len(s.Filtered) - ModalMaxListRows
				list += lipgloss.NewStyle().
					Foreground(ColorTextMuted).
					Italic(true).
					Render("  ... and " + strconv.Itoa(remaining) + " more")
				break
			}

			style := SidebarItemStyle
			prefix := "  "
			if i == s.SelectedIndex {
				style = SidebarSelectedStyle
				prefix = "> "
			}

			row := prefix + "@" + p.Username
			if p.DisplayName != "" && p.DisplayName != p.Username {
				row += "  " + lipgloss.NewStyle().
					Foreground(ColorTextMuted).
					Render(truncateString(p.DisplayName, 30))
			}
			list += style.Render(row) + "\n"
		}
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, filterView, "", list, help)
}

func (s *NewDMState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
			return s, nil
		case keys.Down:
			if s.SelectedIndex < len(s.Filtered)-1 {
				s.SelectedIndex++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Filter, cmd = s.Filter.Update(msg)
	s.applyFilter()
	return s, cmd
}

func (s *NewDMState) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.Filter.Value()))

	s.Filtered = s.Filtered[:0]
	for _, p := range s.Profiles {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Username), query) ||
			strings.Contains(strings.ToLower(p.DisplayName), query) {
			s.Filtered = append(s.Filtered, p)
		}
	}

	if s.SelectedIndex >= len(s.Filtered) {
		s.SelectedIndex = len(s.Filtered) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// GetSelectedProfile returns the selected profile, or nil when the filter
// matches nobody.
func (s *NewDMState) GetSelectedProfile() *backend.Profile {
	if len(s.Filtered) == 0 || s.SelectedIndex >= len(s.Filtered) {
		return nil
	}
	return &s.Filtered[s.SelectedIndex]
}

// NewNewDMState creates a new NewDMState
func NewNewDMState(profiles []backend.Profile) *NewDMState {
	filter := textinput.New()
	filter.Placeholder = "Search people..."
	filter.CharLimit = ModalInputCharLimit
	filter.SetWidth(ModalInputWidth)
	filter.Focus()

	s := &NewDMState{
		Filter:   filter,
		Profiles: profiles,
	}
	s.applyFilter()
	return s
}

// =============================================================================
// EmojiPickerState - State for the emoji picker modal
// =============================================================================

type EmojiPickerState struct {
	Search        textinput.Model
	Results       []emoji.Emoji
	SelectedIndex int
}

func (*EmojiPickerState) modalState() {}

func (s *EmojiPickerState) Title() string { return "Insert Emoji" }

func (s *EmojiPickerState) Help() string {
	return "Type to search  ↑/↓ select  Enter: insert  Esc: cancel"
}

func (s *EmojiPickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	searchView := s.Search.View()

	var list string
	if len(s.Results) == 0 {
		list = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No matching emoji.")
	} else {
		for i, e := range s.Results {
			if i >= ModalMaxListRows {
				remaining := len(s.Results) - ModalMaxListRows
				list += lipgloss.NewStyle().
					Foreground(ColorTextMuted).
					Italic(true).
					Render("  ... and " + strconv.Itoa(remaining) + " more")
				break
			}

			style := SidebarItemStyle
			prefix := "  "
			if i == s.SelectedIndex {
				style = SidebarSelectedStyle
				prefix = "> "
			}
			list += style.Render(prefix+e.Char+"  :"+e.Name+":") + "\n"
		}
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, searchView, "", list, help)
}

func (s *EmojiPickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
			return s, nil
		case keys.Down:
			if s.SelectedIndex < len(s.Results)-1 {
				s.SelectedIndex++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Search, cmd = s.Search.Update(msg)

	s.Results = emoji.Search(s.Search.Value())
	if s.SelectedIndex >= len(s.Results) {
		s.SelectedIndex = len(s.Results) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}

	return s, cmd
}

// GetSelectedEmoji returns the selected emoji character, or "" when the
// search matches nothing.
func (s *EmojiPickerState) GetSelectedEmoji() string {
	if len(s.Results) == 0 || s.SelectedIndex >= len(s.Results) {
		return ""
	}
	return s.Results[s.SelectedIndex].Char
}

// NewEmojiPickerState creates a new EmojiPickerState
func NewEmojiPickerState() *EmojiPickerState {
	search := textinput.New()
	search.Placeholder = "Search emoji..."
	search.CharLimit = ModalInputCharLimit
	search.SetWidth(ModalInputWidth)
	search.Focus()

	return &EmojiPickerState{
		Search:  search,
		Results: emoji.Search(""),
	}
}

// =============================================================================
// MentionState - State for the @mention picker modal
// =============================================================================

type MentionState struct {
	Filter        textinput.Model
	Profiles      []backend.Profile
	Filtered      []backend.Profile
	SelectedIndex int
}

func (*MentionState) modalState() {}

func (s *MentionState) Title() string { return "Mention Someone" }

func (s *MentionState) Help() string {
	return "Type to filter  ↑/↓ select  Enter: insert  Esc: cancel"
}

func (s *MentionState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	filterView := s.Filter.View()

	var list string
	if len(s.Filtered) == 0 {
		list = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No matching people.")
	} else {
		for i, p := range s.Filtered {
			if i >= ModalMaxListRows {
				break
			}

			style := SidebarItemStyle
			prefix := "  "
			if i == s.SelectedIndex {
				style = SidebarSelectedStyle
				prefix = "> "
			}
			list += style.Render(prefix+"@"+p.Username) + "\n"
		}
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, filterView, "", list, help)
}

func (s *MentionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
			return s, nil
		case keys.Down:
			if s.SelectedIndex < len(s.Filtered)-1 {
				s.SelectedIndex++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Filter, cmd = s.Filter.Update(msg)

	query := strings.ToLower(strings.TrimSpace(s.Filter.Value()))
	s.Filtered = s.Filtered[:0]
	for _, p := range s.Profiles {
		if query == "" || strings.Contains(strings.ToLower(p.Username), query) {
			s.Filtered = append(s.Filtered, p)
		}
	}
	if s.SelectedIndex >= len(s.Filtered) {
		s.SelectedIndex = len(s.Filtered) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}

	return s, cmd
}

// GetSelectedProfile returns the selected profile, or nil when the filter
// matches nobody.
func (s *MentionState) GetSelectedProfile() *backend.Profile {
	if len(s.Filtered) == 0 || s.SelectedIndex >= len(s.Filtered) {
		return nil
	}
	return &s.Filtered[s.SelectedIndex]
}

// NewMentionState creates a new MentionState
func NewMentionState(profiles []backend.Profile) *MentionState {
	filter := textinput.New()
	filter.Placeholder = "Who?"
	filter.CharLimit = ModalInputCharLimit
	filter.SetWidth(ModalInputWidth)
	filter.Focus()

	s := &MentionState{
		Filter:   filter,
		Profiles: profiles,
		Filtered: append([]backend.Profile(nil), profiles...),
	}
	return s
}

// =============================================================================
// HelpState - State for the keyboard shortcut reference modal
// =============================================================================

type HelpState struct{}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	return "Press Enter or Esc to close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	section := func(label string) string {
		return lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			MarginTop(1).
			Render(label)
	}
	row := func(key, desc string) string {
		k := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(14).Render(key)
		d := lipgloss.NewStyle().Foreground(ColorText).Render(desc)
		return "  " + k + d
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		section("Navigation"),
		row("tab", "Switch between sidebar and chat"),
		row("↑/↓ or j/k", "Move through conversations"),
		row("enter", "Open the selected conversation"),
		row("ctrl+u", "Collapse or expand the sidebar"),
		row("ctrl+o", "Show or hide the members panel"),
		section("Conversations"),
		row("ctrl+n", "Create a channel"),
		row("ctrl+d", "Start a direct message"),
		section("Composer"),
		row("enter", "Send the message"),
		row("shift+enter", "Insert a newline"),
		row("ctrl+b", "Bold"),
		row("ctrl+i", "Italic"),
		row("ctrl+e", "Code"),
		row("ctrl+l", "Bullet list"),
		row("ctrl+g", "Emoji picker"),
		row("ctrl+a", "Mention someone"),
		row("ctrl+f", "Attach a file reference"),
		section("Other"),
		row("y", "Copy the newest message"),
		row("t", "Pick a theme"),
		row("?", "This help"),
		row("ctrl+c", "Quit"),
	)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewHelpState creates a new HelpState
func NewHelpState() *HelpState {
	return &HelpState{}
}

// =============================================================================
// WelcomeState - State for the first-time user welcome modal
// =============================================================================

type WelcomeState struct {
	WorkspaceName string
}

func (*WelcomeState) modalState() {}

func (s *WelcomeState) Title() string {
	name := s.WorkspaceName
	if name == "" {
		name = "Huddle"
	}
	return "Welcome to " + name + "!"
}

func (s *WelcomeState) Help() string {
	return "Press Enter or Esc to continue"
}

func (s *WelcomeState) Render() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginBottom(1).
		Render(s.Title())

	intro := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(50).
		Render("Huddle brings your team's channels and direct messages to the terminal, updating live as messages arrive.")

	gettingStarted := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render("Getting started:")

	shortcuts := lipgloss.NewStyle().
		Foreground(ColorText).
		Render("  enter   Open the selected conversation\n  ctrl+n  Create a channel\n  ctrl+d  Start a direct message\n  ?       All keyboard shortcuts")

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		intro,
		gettingStarted,
		shortcuts,
		help,
	)
}

func (s *WelcomeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewWelcomeState creates a new WelcomeState
func NewWelcomeState(workspaceName string) *WelcomeState {
	return &WelcomeState{WorkspaceName: workspaceName}
}

// =============================================================================
// ThemeState - State for the Theme picker modal
// =============================================================================

type ThemeState struct {
	Themes        []ThemeName
	SelectedIndex int
	CurrentTheme  ThemeName
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Select Theme" }

func (s *ThemeState) Help() string {
	return "↑/↓ to select, Enter to apply, Esc to cancel"
}

func (s *ThemeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	for i, themeName := range s.Themes {
		theme := GetTheme(themeName)
		style := SidebarItemStyle
		prefix := "  "
		suffix := ""

		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}

		if themeName == s.CurrentTheme {
			suffix = " (current)"
		}

		content += style.Render(prefix+theme.Name+suffix) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Themes)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// GetSelectedTheme returns the selected theme name
func (s *ThemeState) GetSelectedTheme() ThemeName {
	if len(s.Themes) == 0 || s.SelectedIndex >= len(s.Themes) {
		return DefaultTheme
	}
	return s.Themes[s.SelectedIndex]
}

// NewThemeState creates a new ThemeState
func NewThemeState(currentTheme ThemeName) *ThemeState {
	themes := ThemeNames()

	selectedIndex := 0
	for i, t := range themes {
		if t == currentTheme {
			selectedIndex = i
			break
		}
	}

	return &ThemeState{
		Themes:        themes,
		SelectedIndex: selectedIndex,
		CurrentTheme:  currentTheme,
	}
}

// =============================================================================
// Helper functions
// =============================================================================

// truncateString shortens s to maxWidth terminal cells, accounting for
// wide characters.
func truncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
