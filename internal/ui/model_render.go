package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlscribe/internal/ui/styles"
)

// sidebarWidth is the expanded operation sidebar width, borders included.
const sidebarWidth = 30

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.appState {
	case StateSignIn:
		return m.renderSignIn()
	case StateOnboarding:
		return m.renderOnboarding()
	}

	if m.showHistory {
		return m.renderHistoryPopup()
	}

	return m.renderDashboard()
}

// renderDashboard lays out sidebar, editor, output panel, and status bar
func (m Model) renderDashboard() string {
	statusBar := m.renderStatusBar()

	inputView := m.renderInput()
	chromeHeight := lipgloss.Height(statusBar) + lipgloss.Height(inputView)

	outputHeight := m.height - chromeHeight - 1
	if outputHeight < 3 {
		outputHeight = 3
	}

	contentWidth := m.width
	var sidebar string
	if m.sidebarCollapsed {
		sidebar = styles.SidebarStyle.Render(m.sidebar.View(true))
		contentWidth -= lipgloss.Width(sidebar)
	} else {
		sidebar = styles.SidebarStyle.Width(sidebarWidth - 2).Render(m.sidebar.View(false))
		contentWidth -= sidebarWidth
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	output := m.renderOutput(contentWidth-2, outputHeight)

	main := lipgloss.JoinVertical(lipgloss.Left,
		output,
		inputView,
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}
