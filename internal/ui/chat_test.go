package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
)

func chatMsg(id, author, authorName, content string, at time.Time) backend.Message {
	return backend.Message{
		ID:         id,
		AuthorID:   author,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  at,
	}
}

func TestRenderMessages_GroupsSameAuthor(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []backend.Message{
		chatMsg("m1", "u1", "maria", "first", base),
		chatMsg("m2", "u1", "maria", "second", base.Add(time.Minute)),
		chatMsg("m3", "u2", "alex", "third", base.Add(2*time.Minute)),
	}

	out := renderMessages(msgs, 80)

	if got := strings.Count(out, "maria"); got != 1 {
		t.Errorf("grouped messages should render one author header, got %d", got)
	}
	if !strings.Contains(out, "alex") {
		t.Error("new author should get a header")
	}
	for _, content := range []string{"first", "second", "third"} {
		if !strings.Contains(out, content) {
			t.Errorf("output missing message content %q", content)
		}
	}
}

func TestRenderMessages_GapBreaksGroup(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []backend.Message{
		chatMsg("m1", "u1", "maria", "first", base),
		chatMsg("m2", "u1", "maria", "later", base.Add(10*time.Minute)),
	}

	out := renderMessages(msgs, 80)
	if got := strings.Count(out, "maria"); got != 2 {
		t.Errorf("a gap past the grouping window should break the group, got %d headers", got)
	}
}

func TestRenderMessages_ReactionsAndReplies(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := chatMsg("m1", "u1", "maria", "hello", base)
	m.Reactions = []backend.Reaction{{Emoji: "👍", Count: 3}}
	m.ReplyCount = 2

	out := renderMessages([]backend.Message{m}, 80)
	if !strings.Contains(out, "👍 3") {
		t.Error("reaction tally should render")
	}
	if !strings.Contains(out, "2 replies") {
		t.Error("reply count should render")
	}
}

func TestRenderMarkdown_PlainTextPassesThrough(t *testing.T) {
	in := "just some text\nwith two lines"
	if got := renderMarkdown(in, 80); got != in {
		t.Errorf("renderMarkdown() = %q, want unchanged input", got)
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	in := "before\n```go\nfunc main() {}\n```\nafter"
	got := renderMarkdown(in, 80)

	if !strings.Contains(got, "before") || !strings.Contains(got, "after") {
		t.Error("text around the code block should survive")
	}
	if strings.Contains(got, "```") {
		t.Error("code fences should not appear in rendered output")
	}
	if !strings.Contains(got, "main") {
		t.Error("code content should survive highlighting")
	}
}

func TestFormatTimestamp(t *testing.T) {
	past := time.Date(2024, 7, 4, 9, 30, 0, 0, time.Local)
	if got := formatTimestamp(past); !strings.Contains(got, "Jul 4") {
		t.Errorf("old timestamp = %q, want date included", got)
	}

	today := time.Now()
	if got := formatTimestamp(today); strings.Contains(got, "Jan") || strings.Contains(got, ",") {
		t.Errorf("today's timestamp = %q, want time only", got)
	}
}

func TestChat_SetConversation_Placeholder(t *testing.T) {
	c := NewChat()

	c.SetConversation(backend.Conversation{ID: "c1", Name: "general", Kind: backend.KindChannel})
	if c.input.Placeholder != "Message #general" {
		t.Errorf("channel placeholder = %q", c.input.Placeholder)
	}

	c.SetConversation(backend.Conversation{ID: "d1", Name: "maria", Kind: backend.KindDM})
	if c.input.Placeholder != "Message @maria" {
		t.Errorf("dm placeholder = %q", c.input.Placeholder)
	}

	c.ClearConversation()
	if c.HasConversation() {
		t.Error("HasConversation() should be false after ClearConversation")
	}
}

// composerChat returns a chat pane with an open conversation and the given
// composer text, cursor at the end.
func composerChat(text string) *Chat {
	c := NewChat()
	c.SetConversation(backend.Conversation{ID: "c1", Name: "general", Kind: backend.KindChannel})
	c.SetInput(text)
	return c
}

// restoreFocus replays an edit command's deferred message through Update, the
// way the app's update loop would on the next cycle.
func restoreFocus(t *testing.T, c *Chat, cmd tea.Cmd) RestoreComposerFocusMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("edit command should schedule the focus restoration")
	}
	msg, ok := cmd().(RestoreComposerFocusMsg)
	if !ok {
		t.Fatalf("edit command produced %T, want RestoreComposerFocusMsg", cmd())
	}
	c.Update(msg)
	return msg
}

func TestChat_ComposerFormatting(t *testing.T) {
	c := composerChat("hello")
	restoreFocus(t, c, c.ApplyItalic())
	if got := c.GetInput(); got != "hello__" {
		t.Errorf("ApplyItalic at end = %q, want hello__", got)
	}

	c = composerChat("one\ntwo")
	restoreFocus(t, c, c.ApplyBullet())
	if got := c.GetInput(); got != "• one\n• two" {
		t.Errorf("ApplyBullet = %q", got)
	}

	c = composerChat("nice ")
	restoreFocus(t, c, c.InsertText("🎉"))
	if got := c.GetInput(); got != "nice 🎉" {
		t.Errorf("InsertText = %q", got)
	}
}

func TestChat_InsertTextLandsAtCursor(t *testing.T) {
	c := composerChat("abcdef")
	c.SetCursorOffset(3)

	cmd := c.InsertText("X")
	if got := c.GetInput(); got != "abcXdef" {
		t.Errorf("InsertText at offset 3 = %q, want abcXdef", got)
	}

	msg := restoreFocus(t, c, cmd)
	if msg.Cursor != 4 {
		t.Errorf("restored cursor = %d, want 4 (after the insertion)", msg.Cursor)
	}
	if got := c.CursorOffset(); got != 4 {
		t.Errorf("CursorOffset after restore = %d, want 4", got)
	}
	if !c.input.Focused() {
		t.Error("restore should re-focus the composer")
	}
}

func TestChat_WrapInsertsMarkersAtCursor(t *testing.T) {
	c := composerChat("hello")
	c.SetCursorOffset(0)

	cmd := c.ApplyBold()
	if got := c.GetInput(); got != "****hello" {
		t.Errorf("ApplyBold at offset 0 = %q, want the marker pair at the cursor", got)
	}
	if msg := restoreFocus(t, c, cmd); msg.Cursor != 4 {
		t.Errorf("restored cursor = %d, want 4 (after the markers)", msg.Cursor)
	}

	c = composerChat("hello")
	c.SetCursorOffset(2)
	restoreFocus(t, c, c.ApplyCode())
	if got := c.GetInput(); got != "he``llo" {
		t.Errorf("ApplyCode at offset 2 = %q, want he``llo", got)
	}
}

func TestChat_CursorOffsetAcrossLines(t *testing.T) {
	c := composerChat("one\ntwo\nthree")

	// Offset 5 is inside "two"; an insert there must honor the line mapping
	c.SetCursorOffset(5)
	if got := c.CursorOffset(); got != 5 {
		t.Fatalf("CursorOffset = %d, want 5", got)
	}

	restoreFocus(t, c, c.InsertText("X"))
	if got := c.GetInput(); got != "one\ntXwo\nthree" {
		t.Errorf("multi-line insert = %q, want one\\ntXwo\\nthree", got)
	}
	if got := c.CursorOffset(); got != 6 {
		t.Errorf("CursorOffset after insert = %d, want 6", got)
	}

	// Out-of-range offsets clamp to the ends
	c.SetCursorOffset(999)
	if got := c.CursorOffset(); got != 13 {
		t.Errorf("clamped CursorOffset = %d, want 13 (end of text)", got)
	}
	c.SetCursorOffset(-1)
	if got := c.CursorOffset(); got != 0 {
		t.Errorf("clamped CursorOffset = %d, want 0", got)
	}
}
