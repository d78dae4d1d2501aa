package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/compose"
)

// Chat represents the right panel with the message feed and composer
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	conversation    backend.Conversation
	hasConversation bool
	loading         bool
	messages        []backend.Message
	workspaceName   string

	// Text selection state, in viewport-relative coordinates
	selectionStartCol   int
	selectionStartLine  int
	selectionEndCol     int
	selectionEndLine    int
	selectionActive     bool
	selectionFlashFrame int // -1 = inactive, 0 = flash visible

	// Click tracking for double/triple click detection
	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Select a conversation..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:            vp,
		input:               ti,
		selectionFlashFrame: -1,
	}
	c.SelectionClear()
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	// Chat panel height (excluding the composer which is separate)
	chatPanelHeight := height - InputTotalHeight

	innerWidth := ctx.InnerWidth(width)
	viewportHeight := ctx.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Composer width accounts for its own border AND padding
	c.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth)

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetWorkspaceName sets the workspace name shown in the welcome block
func (c *Chat) SetWorkspaceName(name string) {
	c.workspaceName = name
}

// SetConversation points the chat pane at a conversation and clears the feed
// display until messages arrive.
func (c *Chat) SetConversation(conv backend.Conversation) {
	c.conversation = conv
	c.hasConversation = true
	c.messages = nil
	c.loading = true

	sigil := "#"
	if conv.IsDM() {
		sigil = "@"
	}
	c.input.Placeholder = "Message " + sigil + conv.Name
	c.SelectionClear()
	c.updateContent()
}

// ClearConversation clears the active conversation
func (c *Chat) ClearConversation() {
	c.conversation = backend.Conversation{}
	c.hasConversation = false
	c.messages = nil
	c.loading = false
	c.input.Placeholder = "Select a conversation..."
	c.updateContent()
}

// HasConversation reports whether a conversation is open
func (c *Chat) HasConversation() bool {
	return c.hasConversation
}

// Conversation returns the open conversation
func (c *Chat) Conversation() backend.Conversation {
	return c.conversation
}

// SetLoading toggles the history-loading indicator
func (c *Chat) SetLoading(loading bool) {
	c.loading = loading
	c.updateContent()
}

// SetMessages replaces the rendered message list
func (c *Chat) SetMessages(msgs []backend.Message) {
	c.messages = msgs
	c.loading = false
	c.updateContent()
}

// LatestMessageText returns the newest message's content, if any
func (c *Chat) LatestMessageText() (string, bool) {
	if len(c.messages) == 0 {
		return "", false
	}
	return c.messages[len(c.messages)-1].Content, true
}

// GetInput returns the current composer text
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput clears the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the composer text. The cursor lands at the end.
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// RestoreComposerFocusMsg is delivered on the cycle after an edit command. It
// re-focuses the composer and replays the cursor the edit computed; doing it
// synchronously would lose the position to the textarea's own key handling.
type RestoreComposerFocusMsg struct {
	Cursor int // rune offset into the composer text
}

// CursorOffset returns the composer cursor as a rune offset into the text
func (c *Chat) CursorOffset() int {
	lines := strings.Split(c.input.Value(), "\n")
	row := c.input.Line()
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1 // +1 for the newline
	}

	// StartColumn anchors the soft-wrapped row within the logical line;
	// ColumnOffset is the cursor's distance into that row.
	info := c.input.LineInfo()
	return offset + info.StartColumn + info.ColumnOffset
}

// SetCursorOffset places the composer cursor at the given rune offset,
// clamping to the text bounds.
func (c *Chat) SetCursorOffset(offset int) {
	lines := strings.Split(c.input.Value(), "\n")
	row, col := 0, offset
	if col < 0 {
		col = 0
	}
	for row < len(lines)-1 && col > len([]rune(lines[row])) {
		col -= len([]rune(lines[row])) + 1
		row++
	}

	c.input.MoveToBegin()
	// CursorDown steps one soft-wrapped row at a time, so a wrapped logical
	// line can take several steps; bound the walk by the buffer size.
	for guard := c.input.Length() + c.input.LineCount(); c.input.Line() < row && guard > 0; guard-- {
		c.input.CursorDown()
	}
	c.input.SetCursorColumn(col)
}

// draft snapshots the composer text and cursor for the editing functions
func (c *Chat) draft() compose.Draft {
	offset := c.CursorOffset()
	return compose.Draft{Text: c.input.Value(), SelStart: offset, SelEnd: offset}
}

// applyDraft writes an edited draft back and schedules the focus/cursor
// restoration for the next update cycle.
func (c *Chat) applyDraft(d compose.Draft) tea.Cmd {
	c.input.SetValue(d.Text)
	cursor := d.Cursor()
	return func() tea.Msg {
		return RestoreComposerFocusMsg{Cursor: cursor}
	}
}

// ApplyBold inserts bold markers at the cursor
func (c *Chat) ApplyBold() tea.Cmd {
	return c.applyDraft(c.draft().Bold())
}

// ApplyItalic inserts italic markers at the cursor
func (c *Chat) ApplyItalic() tea.Cmd {
	return c.applyDraft(c.draft().Italic())
}

// ApplyCode inserts code markers at the cursor
func (c *Chat) ApplyCode() tea.Cmd {
	return c.applyDraft(c.draft().Code())
}

// ApplyBullet prefixes each non-blank composer line with a bullet
func (c *Chat) ApplyBullet() tea.Cmd {
	return c.applyDraft(c.draft().Bullet())
}

// InsertText inserts text at the cursor, used by the emoji picker, the
// mention dialog, and the attach-file dialog.
func (c *Chat) InsertText(s string) tea.Cmd {
	return c.applyDraft(c.draft().Insert(s))
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	// Mouse selection: coordinates arrive panel-relative, the border eats
	// one cell on each edge.
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			return c, c.handleMouseClick(msg.X-1, msg.Y-1)
		}
	case tea.MouseMotionMsg:
		if msg.Button == tea.MouseLeft && c.selectionActive {
			c.EndSelection(msg.X-1, msg.Y-1)
			return c, nil
		}
	case tea.MouseReleaseMsg:
		if c.selectionActive {
			c.SelectionStop()
			return c, c.CopySelectedText()
		}
	case SelectionFlashTickMsg:
		return c, c.handleSelectionFlashTick()
	case RestoreComposerFocusMsg:
		cmd := c.input.Focus()
		c.SetCursorOffset(msg.Cursor)
		c.focused = true
		return c, cmd
	}

	if c.focused && c.hasConversation {
		// Let scroll keys through to the viewport before the composer sees them
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Don't pass key events to the viewport while typing
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var content string
	switch {
	case !c.hasConversation:
		content = c.renderWelcome()
	case c.loading && len(c.messages) == 0:
		content = StatusLoadingStyle.Render("Loading messages...")
	case len(c.messages) == 0:
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No messages yet. Say hello!")
	default:
		content = renderMessages(c.messages, wrapWidth)
	}

	c.viewport.SetContent(content)
	c.viewport.GotoBottom()
}

// renderWelcome renders the placeholder shown before any conversation is open
func (c *Chat) renderWelcome() string {
	name := c.workspaceName
	if name == "" {
		name = "Huddle"
	}

	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var sb strings.Builder
	sb.WriteString(msgStyle.Italic(true).Render("Welcome to " + name))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("To get started:"))
	sb.WriteString("\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("enter"))
	sb.WriteString(msgStyle.Render(" on a conversation to open it"))
	sb.WriteString("\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("ctrl+n"))
	sb.WriteString(msgStyle.Render(" to create a channel"))
	sb.WriteString("\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("ctrl+d"))
	sb.WriteString(msgStyle.Render(" to start a direct message"))
	return sb.String()
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	if !c.hasConversation {
		return panelStyle.Width(c.width).Height(c.height).Render(c.renderWelcome())
	}

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.selectionView(c.viewport.View()))

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
