package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/state"
)

// handleOnboardingKey handles keys on the schema onboarding view
func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		// Cycle the target dialect
		m.dialectIdx = (m.dialectIdx + 1) % len(state.Dialects)
		return m, nil

	case "ctrl+s":
		if m.uploadBusy {
			return m, nil
		}
		schema := m.schemaEditor.Value()
		if strings.TrimSpace(schema) == "" {
			return m, m.setNotice(noticeError, "Paste your schema before saving, or skip for now", noticeDuration)
		}
		m.uploadBusy = true
		return m, tea.Batch(m.uploadSchemaCmd(schema, m.dialect()), m.spinner.Tick)

	case "ctrl+k":
		// Skip: remember the choice without uploading anything
		if err := m.settings.Save(m.session.Email(), state.Settings{
			Dialect:        m.dialect(),
			SchemaText:     m.schemaEditor.Value(),
			OnboardingDone: true,
		}); err != nil {
			m.log.Warn("could not persist workspace settings", zap.Error(err))
		}
		m.appState = StateReady
		m.schemaEditor.Blur()
		m.editor.Focus()
		return m, nil
	}

	if matchKey(msg.String(), m.cfg.Keys.SignOut) {
		return m.signOut()
	}

	var cmd tea.Cmd
	m.schemaEditor, cmd = m.schemaEditor.Update(msg)
	return m, cmd
}

// signOut clears the identity and returns to the sign-in view
func (m Model) signOut() (tea.Model, tea.Cmd) {
	m.session.SignOut()
	m.appState = StateSignIn
	m.signupMode = false
	m.authErr = ""
	m.authNotice = ""
	m.authFocus = 0
	m.emailInput.SetValue("")
	m.passwordInput.SetValue("")
	m.emailInput.Focus()
	m.passwordInput.Blur()
	m.resetDashboard()
	return m, nil
}
