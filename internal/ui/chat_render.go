package ui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/feed"
)

// renderMessages renders the feed with same-author grouping: a message that
// continues the previous author's run within the grouping window skips the
// author/timestamp header line.
func renderMessages(msgs []backend.Message, wrapWidth int) string {
	var sb strings.Builder

	for i, msg := range msgs {
		grouped := i > 0 && feed.ContinuesGroup(msgs[i-1], msg)

		if !grouped {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(renderMessageHeader(msg))
			sb.WriteString("\n")
		}

		sb.WriteString(renderMessageBody(msg, wrapWidth))
		sb.WriteString("\n")

		if line := renderReactions(msg.Reactions); line != "" {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if msg.ReplyCount > 0 {
			sb.WriteString(ChatReplyStyle.Render(fmt.Sprintf("  ↳ %d replies", msg.ReplyCount)))
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderMessageHeader renders the author line: avatar, name, timestamp.
func renderMessageHeader(msg backend.Message) string {
	name := msg.AuthorName
	if name == "" {
		name = msg.AuthorID
	}

	var sb strings.Builder
	if msg.AuthorAvatar != "" {
		sb.WriteString(ChatAuthorStyle.Render(msg.AuthorAvatar + " "))
	}
	sb.WriteString(ChatAuthorStyle.Render(name))
	sb.WriteString(" ")
	sb.WriteString(ChatTimestampStyle.Render(formatTimestamp(msg.CreatedAt)))
	return sb.String()
}

// renderMessageBody renders the message content with markdown, code
// highlighting, and mention emphasis.
func renderMessageBody(msg backend.Message, wrapWidth int) string {
	rendered := renderMarkdown(strings.TrimSpace(msg.Content), wrapWidth)
	return highlightMentions(rendered)
}

// renderReactions renders the emoji reaction tallies under a message.
func renderReactions(reactions []backend.Reaction) string {
	if len(reactions) == 0 {
		return ""
	}

	parts := make([]string, 0, len(reactions))
	for _, r := range reactions {
		parts = append(parts, fmt.Sprintf("%s %d", r.Emoji, r.Count))
	}
	return ChatReactionStyle.Render("  " + strings.Join(parts, "  "))
}

// formatTimestamp renders a message time: clock time for today, date
// otherwise.
func formatTimestamp(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("3:04 PM")
	}
	return t.Format("Jan 2, 3:04 PM")
}

// highlightMentions styles @name tokens in a rendered line.
func highlightMentions(content string) string {
	if !strings.Contains(content, "@") {
		return content
	}

	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		words := strings.Split(line, " ")
		for i, w := range words {
			if i > 0 {
				sb.WriteString(" ")
			}
			if strings.HasPrefix(w, "@") && len(w) > 1 {
				sb.WriteString(ChatMentionStyle.Render(w))
			} else {
				sb.WriteString(w)
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderMarkdown renders message content with syntax-highlighted code blocks.
// Inline formatting markers are left as-is; fenced code blocks go through
// chroma.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	lines := strings.Split(content, "\n")
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
		} else {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	// An unterminated code block still renders
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}
