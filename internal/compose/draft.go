package compose

// Draft is the in-progress message for a single conversation: the text plus
// the current selection as rune offsets. When SelStart == SelEnd the
// selection is just the cursor.
type Draft struct {
	Text     string
	SelStart int
	SelEnd   int
}

// Cursor returns the cursor position (the selection end).
func (d Draft) Cursor() int {
	return d.SelEnd
}

// Wrap applies WrapSelection to the draft's selection and collapses the
// selection to the returned cursor.
func (d Draft) Wrap(prefix, suffix string) Draft {
	text, cursor := WrapSelection(d.Text, d.SelStart, d.SelEnd, prefix, suffix)
	return Draft{Text: text, SelStart: cursor, SelEnd: cursor}
}

// Bold wraps the selection in the bold marker.
func (d Draft) Bold() Draft {
	return d.Wrap(BoldMarker, BoldMarker)
}

// Italic wraps the selection in the italic marker.
func (d Draft) Italic() Draft {
	return d.Wrap(ItalicMarker, ItalicMarker)
}

// Code wraps the selection in the inline-code marker.
func (d Draft) Code() Draft {
	return d.Wrap(CodeMarker, CodeMarker)
}

// Bullet prefixes every non-blank line of the draft with the bullet marker.
// The cursor moves to the end of the text.
func (d Draft) Bullet() Draft {
	text := PrefixLines(d.Text, BulletMarker)
	cursor := runeLen(text)
	return Draft{Text: text, SelStart: cursor, SelEnd: cursor}
}

// Insert inserts text at the cursor and collapses the selection after it.
func (d Draft) Insert(insert string) Draft {
	text, cursor := InsertAt(d.Text, d.SelEnd, insert)
	return Draft{Text: text, SelStart: cursor, SelEnd: cursor}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Drafts holds per-conversation drafts. The active conversation's draft is
// discarded on send and on navigation, so switching back starts clean.
type Drafts struct {
	byConversation map[string]Draft
}

// NewDrafts returns an empty draft store.
func NewDrafts() *Drafts {
	return &Drafts{byConversation: make(map[string]Draft)}
}

// Get returns the draft for a conversation, or a zero draft if none exists.
func (s *Drafts) Get(conversationID string) Draft {
	return s.byConversation[conversationID]
}

// Set stores the draft for a conversation.
func (s *Drafts) Set(conversationID string, d Draft) {
	s.byConversation[conversationID] = d
}

// Discard removes the draft for a conversation.
func (s *Drafts) Discard(conversationID string) {
	delete(s.byConversation, conversationID)
}
