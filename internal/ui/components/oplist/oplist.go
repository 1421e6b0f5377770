// Package oplist renders the operation sidebar for the dashboard.
package oplist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlscribe/internal/config"
	"github.com/nhath/sqlscribe/internal/ui/icons"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// Styles for the sidebar list
type Styles struct {
	Item         lipgloss.Style
	Selected     lipgloss.Style
	Description  lipgloss.Style
	SectionTitle lipgloss.Style
}

// DefaultStyles returns the default styling
func DefaultStyles(theme config.Theme) Styles {
	return Styles{
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextSecondary)).
			PaddingLeft(1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.BgPrimary)).
			Background(lipgloss.Color(theme.Accent)).
			Bold(true).
			PaddingLeft(1),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextFaint)).
			Italic(true).
			PaddingLeft(3),
		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Highlight)).
			Bold(true).
			PaddingLeft(1).
			MarginBottom(1),
	}
}

// Model is the operation list component
type Model struct {
	specs    []workflow.Spec
	selected workflow.Operation
	styles   Styles
}

// New creates an operation list over the full workflow table
func New(theme config.Theme) Model {
	return Model{
		specs:    workflow.All(),
		selected: workflow.OpGenerate,
		styles:   DefaultStyles(theme),
	}
}

// Select marks an operation as current
func (m *Model) Select(op workflow.Operation) {
	m.selected = op
}

// Selected returns the current operation
func (m Model) Selected() workflow.Operation {
	return m.selected
}

// View renders the list. When collapsed only the icons remain.
func (m Model) View(collapsed bool) string {
	var b strings.Builder

	if !collapsed {
		b.WriteString(m.styles.SectionTitle.Render("Operations"))
		b.WriteString("\n")
	}

	for _, spec := range m.specs {
		icon := icons.ForOperation(spec.Icon)
		label := icon
		if !collapsed {
			label = icon + " " + spec.Label
		}

		if spec.Op == m.selected {
			b.WriteString(m.styles.Selected.Render(icons.IconSelect + " " + label))
		} else {
			b.WriteString(m.styles.Item.Render("  " + label))
		}
		b.WriteString("\n")

		if !collapsed && spec.Op == m.selected {
			b.WriteString(m.styles.Description.Render(wrap(spec.Description, 24)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// wrap does a crude word wrap for the short description column.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
