package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/sqlscribe/internal/ui/styles"
)

// renderSignIn renders the sign-in / sign-up card
func (m Model) renderSignIn() string {
	title := "Sign in to sqlscribe"
	action := "enter: sign in"
	toggle := "ctrl+u: create an account"
	if m.signupMode {
		title = "Create a sqlscribe account"
		action = "enter: sign up"
		toggle = "ctrl+u: back to sign in"
	}

	parts := []string{
		styles.PanelTitleStyle.Render(title),
		"",
		m.emailInput.View(),
		m.passwordInput.View(),
		"",
	}

	if m.authBusy {
		parts = append(parts, m.spinner.View()+" Contacting server...")
	} else if m.authErr != "" {
		parts = append(parts, styles.ErrorStyle.Render(m.authErr))
	} else if m.authNotice != "" {
		parts = append(parts, styles.SuccessStyle.Render(m.authNotice))
	} else {
		parts = append(parts, "")
	}

	parts = append(parts, "", styles.HintStyle.Render(action+"  •  "+toggle+"  •  ctrl+c: quit"))

	box := styles.PanelStyle.Width(54).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
