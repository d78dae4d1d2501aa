package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width            int
	workspaceName    string
	conversationName string
	memberCount      int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{workspaceName: "Huddle"}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetWorkspaceName sets the workspace name shown on the left
func (h *Header) SetWorkspaceName(name string) {
	if name != "" {
		h.workspaceName = name
	}
}

// SetConversation sets the active conversation name and member count
func (h *Header) SetConversation(name string, memberCount int) {
	h.conversationName = name
	h.memberCount = memberCount
}

// ClearConversation clears the active conversation display
func (h *Header) ClearConversation() {
	h.conversationName = ""
	h.memberCount = 0
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.workspaceName
	var rightText string
	if h.conversationName != "" {
		rightText = h.conversationName
		if h.memberCount > 0 {
			rightText += fmt.Sprintf(" (%d members)", h.memberCount)
		}
		rightText += " "
	}

	paddingLen := h.width - len(titleText) - len(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background,
// fading from the primary color into the main background.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(h.workspaceName)) + 1
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(i < titleLen)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
