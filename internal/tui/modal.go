package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/accessihome/internal/core/styles"
)

// Modal is a blocking alert with a single OK button. While visible it
// swallows key input; any key dismisses it.
type Modal struct {
	title   string
	message string
	visible bool
}

// NewAlert creates a visible alert with the given title and message.
func NewAlert(title, message string) Modal {
	return Modal{
		title:   title,
		message: message,
		visible: true,
	}
}

// Visible returns whether the modal should be displayed.
func (m Modal) Visible() bool {
	return m.visible
}

func (m Modal) Message() string {
	return m.message
}

// Dismiss hides the modal.
func (m *Modal) Dismiss() {
	m.visible = false
}

// Overlay renders the modal centered over the given background content.
func (m Modal) Overlay(background string, width, height int) string {
	if !m.visible {
		return background
	}

	button := lipgloss.NewStyle().MarginTop(1).Render(styles.ModalButtonSelectedStyle.Render("OK"))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(styles.IconNotifyWarning+" "+m.title),
		"",
		m.message,
		button,
		styles.ModalHelpStyle.Render("press any key to dismiss"),
	)

	modal := styles.ModalStyle.Render(content)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)
	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(x).Y(y).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
