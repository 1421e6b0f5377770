package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// blankInputError is the operation-agnostic local validation message: the
// field may hold English or SQL depending on the mode.
const blankInputError = "Please enter a query or description"

// handleDashboardKey handles keys on the dashboard view
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	switch {
	case matchKey(key, m.cfg.Keys.NextOp):
		return m.setOperation(workflow.Next(m.op)), nil

	case matchKey(key, m.cfg.Keys.PrevOp):
		return m.setOperation(workflow.Prev(m.op)), nil

	case matchKey(key, m.cfg.Keys.Run):
		return m.submitRun()

	case matchKey(key, m.cfg.Keys.ToggleSidebar):
		m.sidebarCollapsed = !m.sidebarCollapsed
		if err := m.settings.SetSidebarCollapsed(m.sidebarCollapsed); err != nil {
			m.log.Warn("could not persist sidebar state", zap.Error(err))
		}
		m.resize()
		return m, nil

	case matchKey(key, m.cfg.Keys.Copy):
		return m.copySelection()

	case matchKey(key, m.cfg.Keys.History):
		return m, m.loadHistoryCmd()

	case matchKey(key, m.cfg.Keys.Schema):
		// Re-open the schema editor with the stored text
		settings := m.settings.ForAccount(m.session.Email())
		m.schemaEditor.SetValue(settings.SchemaText)
		m.dialectIdx = dialectIndex(settings.Dialect)
		m.appState = StateOnboarding
		m.editor.Blur()
		m.schemaEditor.Focus()
		return m, nil

	case matchKey(key, m.cfg.Keys.SignOut):
		return m.signOut()
	}

	spec := workflow.Lookup(m.op)

	switch key {
	case "ctrl+n":
		if !spec.TakesCount {
			break
		}
		// Toggle focus between editor and the suggestion-count field;
		// leaving the field clamps whatever was typed.
		if m.countFocused {
			m.blurCount()
		} else {
			m.countFocused = true
			m.editor.Blur()
			m.countInput.Focus()
		}
		return m, nil

	case "esc":
		if m.countFocused {
			m.blurCount()
			return m, nil
		}

	case "ctrl+j":
		if len(m.result.Suggestions) > 0 {
			m.selectedSug = (m.selectedSug + 1) % len(m.result.Suggestions)
			return m, nil
		}

	case "ctrl+k":
		if n := len(m.result.Suggestions); n > 0 {
			m.selectedSug = (m.selectedSug + n - 1) % n
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.countFocused {
		m.countInput, cmd = m.countInput.Update(msg)
	} else {
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// blurCount leaves the count field, normalizing its text to the clamped
// value so the display always matches what would be sent.
func (m *Model) blurCount() {
	m.countFocused = false
	m.countInput.SetValue(strconv.Itoa(workflow.ClampSuggestionCount(m.countInput.Value())))
	m.countInput.Blur()
	m.editor.Focus()
}

// setOperation switches the dashboard to a different operation. Input,
// output, and error state never carry over between operations, and any
// in-flight run is invalidated.
func (m Model) setOperation(op workflow.Operation) Model {
	if op == m.op {
		return m
	}
	m.op = op
	m.sidebar.Select(op)
	m.editor.Reset()
	m.editor.Placeholder = workflow.Lookup(op).Placeholder
	m.result = api.Result{Suggestions: []api.Suggestion{}}
	m.runErr = ""
	m.phase = phaseIdle
	m.runSeq++ // orphan any outstanding run
	m.selectedSug = 0
	m.copied = copyNone
	if m.countFocused {
		m.blurCount()
	}
	return m
}

// submitRun validates the input and starts one run. Blank input is
// rejected locally without touching the network.
func (m Model) submitRun() (tea.Model, tea.Cmd) {
	if m.phase == phaseRunning {
		return m, nil
	}

	input := m.editor.Value()
	if strings.TrimSpace(input) == "" {
		m.phase = phaseErrored
		m.result = api.Result{Suggestions: []api.Suggestion{}}
		m.runErr = blankInputError
		return m, nil
	}

	count := 0
	if workflow.Lookup(m.op).TakesCount {
		count = workflow.ClampSuggestionCount(m.countInput.Value())
		m.countInput.SetValue(strconv.Itoa(count))
	}

	m.phase = phaseRunning
	m.runErr = ""
	m.runSeq++
	return m, tea.Batch(m.runCmd(m.runSeq, m.op, input, count), m.spinner.Tick)
}

// copySelection copies the relevant SQL block: the highlighted suggestion
// when a list is shown, the single SQL block otherwise.
func (m Model) copySelection() (tea.Model, tea.Cmd) {
	if len(m.result.Suggestions) > 0 {
		idx := m.selectedSug
		if idx >= len(m.result.Suggestions) {
			idx = 0
		}
		return m, m.copyCmd(idx, m.result.Suggestions[idx].SQL)
	}
	if m.result.SQL != "" {
		return m, m.copyCmd(copyMain, m.result.SQL)
	}
	return m, nil
}

// resetDashboard restores the dashboard to its initial generate state
func (m *Model) resetDashboard() {
	m.op = workflow.OpGenerate
	m.sidebar.Select(m.op)
	m.editor.Reset()
	m.editor.Placeholder = workflow.Lookup(m.op).Placeholder
	m.countInput.SetValue("")
	m.countFocused = false
	m.result = api.Result{Suggestions: []api.Suggestion{}}
	m.runErr = ""
	m.phase = phaseIdle
	m.runSeq++
	m.selectedSug = 0
	m.copied = copyNone
	m.showHistory = false
}
