package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlscribe/internal/state"
	"github.com/nhath/sqlscribe/internal/ui/icons"
	"github.com/nhath/sqlscribe/internal/ui/styles"
)

// renderOnboarding renders the schema setup view
func (m Model) renderOnboarding() string {
	title := styles.PanelTitleStyle.Render("Set up your workspace")
	subtitle := styles.MetaStyle.Render("Paste your schema so generated SQL matches your tables.")

	// Dialect picker row
	var picker []string
	for i, d := range state.Dialects {
		label := icons.ForDialect(string(d)) + " " + string(d)
		if i == m.dialectIdx {
			picker = append(picker, styles.SelectedStyle.Render(" "+label+" "))
		} else {
			picker = append(picker, styles.ItemStyle.Render(" "+label+" "))
		}
	}
	dialectRow := "Dialect: " + strings.Join(picker, " ") + styles.HintStyle.Render("  (ctrl+t to switch)")

	busy := ""
	if m.uploadBusy {
		busy = m.spinner.View() + " Uploading schema..."
	}

	hint := styles.HintStyle.Render("ctrl+s: save & upload  •  ctrl+k: skip for now  •  ctrl+c: quit")

	parts := []string{title, subtitle, "", dialectRow, "", m.schemaEditor.View()}
	if busy != "" {
		parts = append(parts, busy)
	}
	if m.notice != "" {
		parts = append(parts, m.renderNotice())
	}
	parts = append(parts, "", hint)

	box := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderNotice renders the current notification with kind-based styling
func (m Model) renderNotice() string {
	switch m.noticeKind {
	case noticeSuccess:
		return styles.SuccessStyle.Render(icons.IconSuccess + " " + m.notice)
	case noticeWarning:
		return styles.WarningStyle.Render(icons.IconError + " " + m.notice)
	case noticeError:
		return styles.ErrorStyle.Render(icons.IconError + " " + m.notice)
	default:
		return styles.MetaStyle.Render(m.notice)
	}
}
