package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/auth"
	"github.com/nhath/sqlscribe/internal/state"
)

// matchKey reports whether the pressed key matches any configured binding
func matchKey(key string, bindings []string) bool {
	for _, b := range bindings {
		if key == b {
			return true
		}
	}
	return false
}

// setNotice replaces the status bar notification and schedules its expiry
func (m *Model) setNotice(kind noticeKind, text string, d time.Duration) tea.Cmd {
	m.notice = text
	m.noticeKind = kind
	m.noticeSeq++
	return expireNoticeCmd(m.noticeSeq, d)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseRunning || m.authBusy || m.uploadBusy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case signInResultMsg:
		return m.handleSignInResult(msg)

	case signUpResultMsg:
		return m.handleSignUpResult(msg)

	case runResultMsg:
		return m.handleRunResult(msg)

	case schemaUploadMsg:
		return m.handleSchemaUpload(msg)

	case clipboardCopiedMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard copy failed", zap.Error(msg.Err))
			return m, nil
		}
		m.copied = msg.Target
		m.copySeq++
		return m, resetCopyCmd(m.copySeq)

	case copyResetMsg:
		if msg.Seq == m.copySeq {
			m.copied = copyNone
		}
		return m, nil

	case noticeExpireMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case historyLoadedMsg:
		if msg.Err != nil {
			return m, m.setNotice(noticeError, "Could not load history", noticeDuration)
		}
		m.historyEntries = msg.Entries
		m.historyTable = m.buildHistoryTable(msg.Entries)
		m.showHistory = true
		return m, nil

	case tea.KeyMsg:
		if matchKey(msg.String(), m.cfg.Keys.Exit) {
			return m, tea.Quit
		}
		switch m.appState {
		case StateSignIn:
			return m.handleSignInKey(msg)
		case StateOnboarding:
			return m.handleOnboardingKey(msg)
		default:
			return m.handleDashboardKey(msg)
		}
	}

	// Everything else (cursor blink and friends) goes to the focused inputs
	return m.updateFocused(msg)
}

// resize propagates the terminal size to the editors
func (m *Model) resize() {
	inner := m.width - 4
	if !m.sidebarCollapsed {
		inner -= sidebarWidth
	}
	if inner < 20 {
		inner = 20
	}
	m.editor.SetWidth(inner)
	m.schemaEditor.SetWidth(m.width - 8)
}

// updateFocused forwards non-key messages to whichever input has focus
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.appState {
	case StateSignIn:
		m.emailInput, cmd = m.emailInput.Update(msg)
		cmds = append(cmds, cmd)
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateOnboarding:
		m.schemaEditor, cmd = m.schemaEditor.Update(msg)
		cmds = append(cmds, cmd)
	default:
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
		m.countInput, cmd = m.countInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleSignInResult routes a completed sign-in exchange
func (m Model) handleSignInResult(msg signInResultMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false
	if msg.Err != nil {
		var authErr *auth.AuthError
		if errors.As(msg.Err, &authErr) {
			m.authErr = authErr.Message
		} else {
			m.authErr = "Login failed"
		}
		return m, nil
	}

	m.authErr = ""
	m.authNotice = ""
	m.passwordInput.SetValue("")
	m.enterWorkspace()
	return m, nil
}

// handleSignUpResult routes a completed sign-up exchange. Success returns
// the user to sign-in: the account still needs email verification.
func (m Model) handleSignUpResult(msg signUpResultMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false
	if msg.Err != nil {
		var authErr *auth.AuthError
		if errors.As(msg.Err, &authErr) {
			m.authErr = authErr.Message
		} else {
			m.authErr = "Signup failed"
		}
		return m, nil
	}

	m.signupMode = false
	m.authErr = ""
	m.authNotice = "Account created. Check your inbox, then sign in."
	m.passwordInput.SetValue("")
	return m, nil
}

// handleRunResult routes a completed dashboard run. Results from a
// superseded run (operation switched, newer run started) are dropped.
func (m Model) handleRunResult(msg runResultMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.runSeq {
		return m, nil
	}

	if msg.Err != nil {
		m.phase = phaseErrored
		m.result = api.Result{Suggestions: []api.Suggestion{}}
		m.runErr = runErrorMessage(msg.Err)
		d := noticeDuration
		var apiErr *api.Error
		if errors.As(msg.Err, &apiErr) && apiErr.IsSchemaError() {
			d = noticeSchemaDuration
		}
		return m, m.setNotice(noticeError, m.runErr, d)
	}

	m.phase = phaseSucceeded
	m.result = msg.Result
	m.runErr = ""
	m.selectedSug = 0
	return m, nil
}

// runErrorMessage maps a run failure to user-facing copy
func runErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Failed to process query"
}

// handleSchemaUpload routes a completed onboarding upload
func (m Model) handleSchemaUpload(msg schemaUploadMsg) (tea.Model, tea.Cmd) {
	m.uploadBusy = false
	if msg.Err != nil {
		// The schema text is preserved so the user can correct and resubmit
		text := "Failed to upload schema"
		d := noticeDuration
		var apiErr *api.Error
		if errors.As(msg.Err, &apiErr) {
			if apiErr.Message != "" {
				text = apiErr.Message
			}
			if apiErr.IsSchemaError() {
				d = noticeSchemaDuration
				if apiErr.Hint != "" {
					text += ". " + apiErr.Hint
				}
			}
		}
		return m, m.setNotice(noticeError, text, d)
	}

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

	text := "Schema uploaded"
	kind := noticeSuccess
	if msg.Warning != "" {
		text = "Schema uploaded: " + msg.Warning
		kind = noticeWarning
	}
	return m, m.setNotice(kind, text, noticeDuration)
}
