package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlscribe/internal/ui/highlight"
	"github.com/nhath/sqlscribe/internal/ui/icons"
	"github.com/nhath/sqlscribe/internal/ui/styles"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// renderOutput renders the response panel. The four display modes are
// mutually exclusive: loading, error, empty placeholder, and result.
func (m Model) renderOutput(width, height int) string {
	panel := styles.PanelStyle.Width(width).Height(height)

	var body string
	switch {
	case m.phase == phaseRunning:
		body = m.spinner.View() + " Working on it..."
	case m.phase == phaseErrored:
		body = styles.ErrorStyle.Render(icons.IconError+" "+m.runErr) +
			"\n\n" + styles.HintStyle.Render("Adjust your input and run again.")
	case m.phase == phaseSucceeded:
		body = m.renderResult(width - 4)
	default:
		body = m.renderEmpty()
	}

	title := styles.PanelTitleStyle.Render("Result")
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}

// renderEmpty shows the per-operation idle placeholder.
func (m Model) renderEmpty() string {
	spec := workflow.Lookup(m.op)
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.MetaStyle.Render(icons.ForOperation(spec.Icon)+"  "+spec.Description),
		"",
		styles.HintStyle.Render("Type below and press ctrl+d to run."),
	)
}

// renderResult renders a successful response: either the suggestion list or a
// SQL block with its explanation. Explanation-only responses carry no SQL, so
// nothing extra is needed to suppress the code block for them.
func (m Model) renderResult(width int) string {
	if len(m.result.Suggestions) > 0 {
		return m.renderSuggestions()
	}

	var parts []string
	if m.result.SQL != "" {
		sql := highlight.SQL(m.result.SQL, string(m.dialect()))
		parts = append(parts, sql)
		if m.copied == copyMain {
			parts = append(parts, styles.CopiedStyle.Render(icons.IconSuccess+" copied"))
		} else {
			parts = append(parts, styles.HintStyle.Render("ctrl+y: copy"))
		}
	}
	if m.result.Explanation != "" {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, styles.ExplanationStyle.Width(width).Render(m.result.Explanation))
	}
	if len(parts) == 0 {
		return styles.MetaStyle.Render("The server returned an empty response.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSuggestions renders the numbered follow-up list with the selection
// cursor and per-item copy acknowledgment.
func (m Model) renderSuggestions() string {
	var b strings.Builder
	for i, s := range m.result.Suggestions {
		cursor := "  "
		if i == m.selectedSug {
			cursor = styles.SelectedStyle.Render(icons.IconSelect) + " "
		}
		line := fmt.Sprintf("%d. %s", i+1, s.SQL)
		if s.Title != "" {
			line = fmt.Sprintf("%d. %s", i+1, s.Title)
		}
		if i == m.selectedSug {
			b.WriteString(cursor + styles.PanelTitleStyle.Render(line))
		} else {
			b.WriteString(cursor + styles.ItemStyle.Render(line))
		}
		if m.copied == i {
			b.WriteString(" " + styles.CopiedStyle.Render(icons.IconSuccess+" copied"))
		}
		b.WriteString("\n")
		if s.Title != "" && i == m.selectedSug {
			b.WriteString("   " + highlight.SQL(s.SQL, string(m.dialect())) + "\n")
		}
	}
	b.WriteString("\n" + styles.HintStyle.Render("ctrl+j/ctrl+k: select"+icons.IconSeparator+"ctrl+y: copy selection"))
	return b.String()
}
