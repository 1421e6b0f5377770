package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleSignInKey handles keys on the sign-in / sign-up view
func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.authFocus = 1 - m.authFocus
		if m.authFocus == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, nil

	case "ctrl+u":
		// Toggle between sign-in and sign-up
		m.signupMode = !m.signupMode
		m.authErr = ""
		m.authNotice = ""
		return m, nil

	case "enter":
		if m.authBusy {
			return m, nil
		}
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			m.authErr = "Email and password are required"
			return m, nil
		}
		m.authBusy = true
		m.authErr = ""
		if m.signupMode {
			return m, tea.Batch(m.signUpCmd(email, password), m.spinner.Tick)
		}
		return m, tea.Batch(m.signInCmd(email, password), m.spinner.Tick)
	}

	var cmd tea.Cmd
	if m.authFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}
