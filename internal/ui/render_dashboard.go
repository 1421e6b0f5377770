package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlscribe/internal/ui/icons"
	"github.com/nhath/sqlscribe/internal/ui/styles"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// renderInput renders the prompt editor, the suggestion count field when the
// operation takes one, and the run hint row.
func (m Model) renderInput() string {
	spec := workflow.Lookup(m.op)

	header := styles.ModeStyle.Render(icons.ForOperation(spec.Icon) + " " + spec.Label)
	if spec.TakesCount {
		count := m.countInput.View()
		if m.countFocused {
			count = styles.SelectedStyle.Render(" ") + count
		}
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", count,
			styles.HintStyle.Render("  ctrl+n: edit count"))
	}

	hint := styles.HintStyle.Render("ctrl+d: run" + icons.IconSeparator + "tab: switch operation" + icons.IconSeparator + "ctrl+y: copy" + icons.IconSeparator + "ctrl+h: history")

	return styles.InputStyle.Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, m.editor.View(), hint),
	)
}

// renderStatusBar renders the bottom bar: account, dialect, and any active
// notification.
func (m Model) renderStatusBar() string {
	account := styles.ConnectionStyle.Render(icons.IconLock + " " + m.account())
	dialect := styles.ConnectionStyle.Render(icons.ForDialect(string(m.dialect())) + " " + string(m.dialect()))

	left := lipgloss.JoinHorizontal(lipgloss.Center, account, " ", dialect)

	right := ""
	if m.notice != "" {
		right = m.renderNotice()
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return styles.StatusBarStyle.Width(m.width).Render(
		left + strings.Repeat(" ", gap) + right,
	)
}
