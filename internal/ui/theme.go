// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of Huddle.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for timestamps, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Author  string // Message author labels
	Mention string // @mention highlights
	Warning string // Warnings
	Error   string // Error messages
	Info    string // Information
	Success string // Success confirmations

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Code colors
	CodeFg string // Inline code
	CodeBg string // Code background
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Author:      "#A78BFA",
		Mention:     "#22D3EE",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
		CodeFg:      "#67E8F9",
		CodeBg:      "#1E1E2E",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Author:      "#A3BE8C",
		Mention:     "#88C0D0",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		CodeFg:      "#A3BE8C",
		CodeBg:      "#242933",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Author:      "#FF79C6",
		Mention:     "#8BE9FD",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
		CodeFg:      "#50FA7B",
		CodeBg:      "#21222C",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#7C3AED",
		Secondary:   "#0E7490",
		Bg:          "#FFFFFF",
		BgSelected:  "#DDD6FE",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Author:      "#6D28D9",
		Mention:     "#0E7490",
		Warning:     "#B45309",
		Error:       "#B91C1C",
		Info:        "#0E7490",
		Success:     "#047857",
		Border:      "#D1D5DB",
		CodeFg:      "#0E7490",
		CodeBg:      "#F3F4F6",
	},
}

// ThemeNames returns all theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorAuthor = lipgloss.Color(t.Author)
	ColorMention = lipgloss.Color(t.Mention)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = HeaderStyle.Foreground(ColorText).Background(ColorPrimary)

	FooterStyle = FooterStyle.Foreground(ColorTextMuted)
	FooterKeyStyle = FooterKeyStyle.Foreground(ColorSecondary)
	FooterDescStyle = FooterDescStyle.Foreground(ColorTextMuted)

	PanelStyle = PanelStyle.BorderForeground(ColorBorder)
	PanelFocusedStyle = PanelFocusedStyle.BorderForeground(ColorBorderFocus)

	SidebarSelectedStyle = SidebarSelectedStyle.
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text))
	SidebarSectionStyle = SidebarSectionStyle.Foreground(ColorTextMuted)
	SidebarUnreadStyle = SidebarUnreadStyle.Foreground(ColorTextInverse).Background(ColorError)

	ChatAuthorStyle = ChatAuthorStyle.Foreground(ColorAuthor)
	ChatTimestampStyle = ChatTimestampStyle.Foreground(ColorTextMuted)
	ChatMessageStyle = ChatMessageStyle.Foreground(ColorText)
	ChatMentionStyle = ChatMentionStyle.Foreground(ColorMention)
	ChatReactionStyle = ChatReactionStyle.Foreground(ColorTextMuted)
	ChatReplyStyle = ChatReplyStyle.Foreground(ColorSecondary)
	ChatInputStyle = ChatInputStyle.BorderForeground(ColorBorder)
	ChatInputFocusedStyle = ChatInputFocusedStyle.BorderForeground(ColorBorderFocus)
	TextSelectionStyle = TextSelectionStyle.
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText)
	TextSelectionFlashStyle = TextSelectionFlashStyle.
		Background(ColorSuccess).
		Foreground(ColorTextInverse)

	ModalStyle = ModalStyle.BorderForeground(ColorPrimary)
	ModalTitleStyle = ModalTitleStyle.Foreground(ColorPrimary)
	ModalHelpStyle = ModalHelpStyle.Foreground(ColorTextMuted)

	StatusLoadingStyle = StatusLoadingStyle.Foreground(ColorSecondary)
	StatusErrorStyle = StatusErrorStyle.Foreground(ColorError)
}
