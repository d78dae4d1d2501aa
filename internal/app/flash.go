package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/ui"
)

// ShowFlash puts a transient status line in the footer and returns the
// command that starts its auto-dismiss timer. Remote failures (sends, loads,
// creates) surface here rather than interrupting the conversation view.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError flashes a failure, e.g. a message that didn't send
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning flashes a degraded-but-working condition, e.g. live
// updates being unavailable
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo flashes a neutral notice, e.g. reusing an existing DM
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess flashes a completed action, e.g. a created channel
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
