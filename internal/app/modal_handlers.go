package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abrandt/huddle/internal/directory"
	"github.com/abrandt/huddle/internal/keys"
	"github.com/abrandt/huddle/internal/logger"
	"github.com/abrandt/huddle/internal/ui"
)

// handleModalKey routes key presses while a modal is open. Enter confirms
// per-state, Escape dismisses, everything else goes to the state's Update.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.dismissModal()
		return m, nil
	case keys.Enter:
		return m.confirmModal()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// dismissModal hides the modal, recording welcome-seen when applicable
func (m *Model) dismissModal() {
	if _, ok := m.modal.State.(*ui.WelcomeState); ok {
		m.markWelcomeShown()
	}
	m.modal.Hide()
}

// confirmModal applies the open modal's result
func (m *Model) confirmModal() (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *ui.CreateChannelState:
		name := state.GetName()
		if directory.NormalizeChannelName(name) == "" {
			m.modal.SetError("Channel name is required")
			return m, nil
		}
		description := state.GetDescription()
		m.modal.Hide()
		return m, m.createChannel(name, description)

	case *ui.NewDMState:
		other := state.GetSelectedProfile()
		if other == nil {
			return m, nil
		}
		m.modal.Hide()
		return m, m.createOrReuseDM(*other)

	case *ui.EmojiPickerState:
		var cmd tea.Cmd
		if e := state.GetSelectedEmoji(); e != "" {
			cmd = m.chat.InsertText(e)
		}
		m.modal.Hide()
		return m, cmd

	case *ui.AttachFileState:
		var cmd tea.Cmd
		if path := state.GetPath(); path != "" {
			cmd = m.chat.InsertText("📎 " + path + " ")
		}
		m.modal.Hide()
		return m, cmd

	case *ui.MentionState:
		var cmd tea.Cmd
		if p := state.GetSelectedProfile(); p != nil {
			cmd = m.chat.InsertText("@" + p.Username + " ")
		}
		m.modal.Hide()
		return m, cmd

	case *ui.ThemeState:
		theme := state.GetSelectedTheme()
		ui.SetThemeByName(string(theme))
		m.config.SetTheme(string(theme))
		if err := m.config.Save(); err != nil {
			logger.Warn("App: Theme save failed: %v", err)
		}
		m.modal.Hide()
		return m, nil

	case *ui.WelcomeState:
		m.markWelcomeShown()
		m.modal.Hide()
		return m, nil

	case *ui.HelpState:
		m.modal.Hide()
		return m, nil
	}

	m.modal.Hide()
	return m, nil
}

func (m *Model) markWelcomeShown() {
	if m.config.HasSeenWelcome() {
		return
	}
	m.config.MarkWelcomeShown()
	if err := m.config.Save(); err != nil {
		logger.Warn("App: Welcome-shown save failed: %v", err)
	}
}
