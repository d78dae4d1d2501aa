package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/backend"
)

// listenForInsert creates a command that waits for the next realtime insert.
// The handler re-arms it after each event, so exactly one listener is in
// flight per subscription.
func (m *Model) listenForInsert(sub *backend.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	ch := sub.Events()

	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return MessageInsertedMsg{Closed: true}
		}
		return MessageInsertedMsg{Message: ev.Message}
	}
}
