// Text selection in the message feed.
//
// Mouse events arrive in panel coordinates (the app subtracts the sidebar
// width and header height before forwarding). The selection code subtracts 1
// from both X and Y for the panel border, yielding viewport-relative
// coordinates. Those coordinates index the viewport's rendered lines after
// ANSI codes are stripped, so they line up with visible character positions.
package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/abrandt/huddle/internal/clipboard"
	"github.com/abrandt/huddle/internal/logger"
)

// ClipboardErrorMsg is sent when the native clipboard write fails
type ClipboardErrorMsg struct {
	Error error
}

// SelectionFlashTickMsg advances the brief post-copy highlight
type SelectionFlashTickMsg time.Time

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// StartSelection begins a text selection at the given coordinates
func (c *Chat) StartSelection(col, line int) {
	c.selectionStartCol = col
	c.selectionStartLine = line
	c.selectionEndCol = col
	c.selectionEndLine = line
	c.selectionActive = true
}

// EndSelection updates the end position of the selection during drag
func (c *Chat) EndSelection(col, line int) {
	if !c.selectionActive {
		return
	}
	c.selectionEndCol = col
	c.selectionEndLine = line
}

// SelectionStop ends the drag but keeps the selection visible
func (c *Chat) SelectionStop() {
	c.selectionActive = false
}

// SelectionClear clears the selection entirely
func (c *Chat) SelectionClear() {
	c.selectionStartCol = -1
	c.selectionStartLine = -1
	c.selectionEndCol = -1
	c.selectionEndLine = -1
	c.selectionActive = false
}

// HasTextSelection returns true if there is an active or completed selection
func (c *Chat) HasTextSelection() bool {
	return c.selectionStartCol >= 0 && c.selectionStartLine >= 0 &&
		(c.selectionEndCol != c.selectionStartCol || c.selectionEndLine != c.selectionStartLine)
}

// handleMouseClick handles mouse click events and detects double/triple clicks
func (c *Chat) handleMouseClick(x, y int) tea.Cmd {
	now := time.Now()

	if now.Sub(c.lastClickTime) <= doubleClickThreshold &&
		abs(x-c.lastClickX) <= clickTolerance &&
		abs(y-c.lastClickY) <= clickTolerance {
		c.clickCount++
	} else {
		c.clickCount = 1
	}

	c.lastClickTime = now
	c.lastClickX = x
	c.lastClickY = y

	switch c.clickCount {
	case 1:
		c.StartSelection(x, y)
	case 2:
		// Double click selects the word and copies immediately
		c.SelectWord(x, y)
		return c.CopySelectedText()
	case 3:
		// Triple click selects the paragraph and copies immediately
		c.SelectParagraph(x, y)
		c.clickCount = 0
		return c.CopySelectedText()
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectWord selects the word at the given position
func (c *Chat) SelectWord(col, line int) {
	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	currentLine := ansi.Strip(lines[line])
	if col < 0 || col >= len(currentLine) {
		return
	}

	// Walk the line's word segments and take the one covering col
	startCol := 0
	endCol := len(currentLine)
	rest := currentLine
	state := -1
	pos := 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if word == "" {
			break
		}
		if col < pos+len(word) {
			startCol = pos
			endCol = pos + len(word)
			break
		}
		pos += len(word)
	}

	c.selectionStartCol = startCol
	c.selectionStartLine = line
	c.selectionEndCol = endCol
	c.selectionEndLine = line
	c.selectionActive = false
}

// SelectParagraph selects the paragraph at the given position, bounded by
// blank lines.
func (c *Chat) SelectParagraph(col, line int) {
	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	startLine := line
	endLine := line

	for startLine > 0 {
		prevLine := ansi.Strip(lines[startLine-1])
		if strings.TrimSpace(prevLine) == "" {
			break
		}
		startLine--
	}

	for endLine < len(lines)-1 {
		nextLine := ansi.Strip(lines[endLine+1])
		if strings.TrimSpace(nextLine) == "" {
			break
		}
		endLine++
	}

	lastLineWidth := len(ansi.Strip(lines[endLine]))

	c.selectionStartCol = 0
	c.selectionStartLine = startLine
	c.selectionEndCol = lastLineWidth
	c.selectionEndLine = endLine
	c.selectionActive = false
}

// selectionArea returns the selection normalized to reading order: the user
// can drag bottom-right to top-left, so start/end may need swapping both
// across lines and within a single line.
func (c *Chat) selectionArea() (startCol, startLine, endCol, endLine int) {
	startCol = c.selectionStartCol
	startLine = c.selectionStartLine
	endCol = c.selectionEndCol
	endLine = c.selectionEndLine

	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}

	return
}

// GetSelectedText returns the currently selected text.
//
// Selection coordinates correspond to visible character positions, not raw
// string positions, so each line has its ANSI codes stripped before the
// substring is taken. A bold "Hello" is 15 bytes on the wire but 5 visible
// characters; selecting 0-5 must yield "Hello", not a partial escape
// sequence.
func (c *Chat) GetSelectedText() string {
	if !c.HasTextSelection() {
		return ""
	}

	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	startCol, startLine, endCol, endLine := c.selectionArea()

	var result strings.Builder

	for y := startLine; y <= endLine && y < len(lines); y++ {
		line := ansi.Strip(lines[y])

		var lineStart, lineEnd int
		if y == startLine {
			lineStart = startCol
		}
		if y == endLine {
			lineEnd = endCol
		} else {
			lineEnd = len(line)
		}

		if lineStart < 0 {
			lineStart = 0
		}
		if lineEnd > len(line) {
			lineEnd = len(line)
		}
		if lineStart > lineEnd {
			lineStart = lineEnd
		}

		if lineStart < len(line) {
			result.WriteString(line[lineStart:lineEnd])
		}
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// CopySelectedText copies the selection to the clipboard and starts the
// flash animation.
func (c *Chat) CopySelectedText() tea.Cmd {
	if !c.HasTextSelection() {
		return nil
	}

	selectedText := c.GetSelectedText()
	if selectedText == "" {
		return nil
	}

	c.selectionFlashFrame = 0

	return tea.Batch(
		// OSC 52 escape sequence (works in modern terminals)
		tea.SetClipboard(selectedText),
		// Native clipboard fallback
		func() tea.Msg {
			if err := clipboard.WriteText(selectedText); err != nil {
				logger.Warn("Failed to write to clipboard: %v", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		SelectionFlashTick(),
	)
}

// handleSelectionFlashTick advances the post-copy flash, then clears the
// selection once the flash finishes.
func (c *Chat) handleSelectionFlashTick() tea.Cmd {
	if c.selectionFlashFrame < 0 {
		return nil
	}

	c.selectionFlashFrame++
	if c.selectionFlashFrame >= 2 {
		c.selectionFlashFrame = -1
		c.SelectionClear()
		return nil
	}
	return SelectionFlashTick()
}

// selectionView applies selection highlighting to the rendered viewport
// using an ultraviolet screen buffer.
func (c *Chat) selectionView(view string) string {
	if !c.HasTextSelection() {
		return view
	}

	width := c.viewport.Width()
	height := c.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := c.selectionArea()

	// The flash frame uses the success style to signal the copy landed
	var selBg, selFg color.Color
	if c.selectionFlashFrame == 0 {
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	for y := startLine; y <= endLine && y < height; y++ {
		var xStart, xEnd int
		switch {
		case y == startLine && y == endLine:
			xStart = startCol
			xEnd = endCol
		case y == startLine:
			xStart = startCol
			xEnd = width
		case y == endLine:
			xStart = 0
			xEnd = endCol
		default:
			xStart = 0
			xEnd = width
		}

		for x := xStart; x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
