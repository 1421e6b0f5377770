package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/nhath/sqlscribe/internal/history"
	"github.com/nhath/sqlscribe/internal/ui/styles"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// buildHistoryTable builds the popup table over recent runs
func (m Model) buildHistoryTable(entries []history.RunEntry) table.Model {
	cols := []table.Column{
		table.NewColumn("time", "Time", 17),
		table.NewColumn("op", "Operation", 10),
		table.NewColumn("status", "Status", 8),
		table.NewColumn("input", "Input", 48),
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		statusStyle := lipgloss.NewStyle().Foreground(styles.SuccessColor())
		if e.Status != "success" {
			statusStyle = lipgloss.NewStyle().Foreground(styles.ErrorColor())
		}
		rows = append(rows, table.NewRow(table.RowData{
			"time":   e.ExecutedAt.Format("2006-01-02 15:04"),
			"op":     e.Operation,
			"status": table.NewStyledCell(e.Status, statusStyle),
			"input":  e.InputPreview(46),
			"idx":    i,
		}))
	}

	return table.New(cols).
		WithRows(rows).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(styles.TextPrimary()).
			BorderForeground(styles.TextFaint())).
		WithPageSize(12).
		Focused(true)
}

// handleHistoryKey handles keys while the history popup is open
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.showHistory = false
		return m, nil

	case "enter":
		// Load the selected run's input back into the editor
		row := m.historyTable.HighlightedRow()
		if idx, ok := row.Data["idx"].(int); ok && idx < len(m.historyEntries) {
			entry := m.historyEntries[idx]
			m = m.setOperation(workflow.Parse(entry.Operation))
			m.editor.SetValue(entry.Input)
		}
		m.showHistory = false
		return m, nil
	}

	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// renderHistoryPopup renders the popup box
func (m Model) renderHistoryPopup() string {
	title := styles.PanelTitleStyle.Render(fmt.Sprintf("Run history: %s", m.account()))
	body := m.historyTable.View()
	if len(m.historyEntries) == 0 {
		body = styles.HintStyle.Render("No runs yet.")
	}
	hint := styles.HintStyle.Render("enter: load input  •  esc: close")
	box := styles.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, hint))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
