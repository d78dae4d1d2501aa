// Package compose implements the draft-editing operations behind the message
// composer: wrapping a selection in formatting markers, bulleting lines, and
// inserting text at the cursor. All functions are pure and total; offsets are
// rune counts into the text, and out-of-range offsets clamp rather than fail.
package compose

import (
	"strings"
	"unicode/utf8"
)

// Formatting markers applied by the composer shortcuts.
const (
	BoldMarker   = "**"
	ItalicMarker = "_"
	CodeMarker   = "`"
	BulletMarker = "• "
)

// clampRange clamps start and end to [0, runelen(text)] and swaps them when
// inverted, so callers always see a forward range.
func clampRange(text string, start, end int) (int, int) {
	n := utf8.RuneCountInString(text)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < 0 {
		end = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start, end = end, start
	}
	return start, end
}

// slice returns the substring of text covering rune offsets [start, end).
// Offsets must already be clamped.
func slice(text string, start, end int) string {
	if start >= end {
		return ""
	}
	runes := []rune(text)
	return string(runes[start:end])
}

// WrapSelection inserts prefix immediately before the selection and suffix
// immediately after it, preserving the selected text. It returns the new text
// and the cursor position after the inserted suffix. An empty selection
// (start == end) produces an adjacent marker pair with the cursor placed
// after it.
func WrapSelection(text string, start, end int, prefix, suffix string) (string, int) {
	start, end = clampRange(text, start, end)

	before := slice(text, 0, start)
	selected := slice(text, start, end)
	after := slice(text, end, utf8.RuneCountInString(text))

	result := before + prefix + selected + suffix + after
	cursor := start + utf8.RuneCountInString(prefix) + utf8.RuneCountInString(selected) + utf8.RuneCountInString(suffix)
	return result, cursor
}

// PrefixLines prepends marker to every line whose trimmed content is
// non-empty. Blank and whitespace-only lines pass through untouched. Line
// structure is preserved exactly. Applying it twice prefixes twice; callers
// decide whether that is wanted.
func PrefixLines(text, marker string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = marker + line
		}
	}
	return strings.Join(lines, "\n")
}

// InsertAt inserts insert literally at the given rune offset, clamping
// out-of-range offsets to the nearest end. It returns the new text and the
// cursor position after the inserted text.
func InsertAt(text string, offset int, insert string) (string, int) {
	n := utf8.RuneCountInString(text)
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}

	before := slice(text, 0, offset)
	after := slice(text, offset, n)

	result := before + insert + after
	cursor := offset + utf8.RuneCountInString(insert)
	return result, cursor
}
