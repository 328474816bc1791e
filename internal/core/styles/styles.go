// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
	ColorAccent     color.Color
)

// Style exports.
var (
	// Text styles.
	TextPrimaryStyle lipgloss.Style
	TextMutedStyle   lipgloss.Style
	TextSuccessStyle lipgloss.Style
	TextWarningStyle lipgloss.Style
	TextErrorStyle   lipgloss.Style

	// Header.
	HeaderTitleStyle   lipgloss.Style
	HeaderTaglineStyle lipgloss.Style

	// URL input.
	InputBoxStyle        lipgloss.Style
	InputBoxFocusedStyle lipgloss.Style
	InputButtonStyle     lipgloss.Style

	// Result panels.
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style

	// Report panel.
	SummaryStyle               lipgloss.Style
	SectionHeaderStyle         lipgloss.Style
	SectionHeaderSelectedStyle lipgloss.Style
	ItemStyle                  lipgloss.Style
	ItemSelectedStyle          lipgloss.Style
	DescriptionStyle           lipgloss.Style

	// Gallery panel.
	CounterStyle       lipgloss.Style
	ThumbStyle         lipgloss.Style
	ThumbSelectedStyle lipgloss.Style
	NavHintStyle       lipgloss.Style

	// Loading state.
	LoadingTextStyle    lipgloss.Style
	LoadingSubtextStyle lipgloss.Style

	// Modal styles.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Toast styles.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	HelpStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorAccent = p.Accent

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HeaderTaglineStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	InputBoxFocusedStyle = InputBoxStyle.
		BorderForeground(ColorPrimary)
	InputButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	PanelFocusedStyle = PanelStyle.
		BorderForeground(ColorPrimary)
	PanelTitleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	SummaryStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SectionHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	SectionHeaderSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)
	ItemStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface)
	DescriptionStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorSecondary).
		Foreground(ColorMuted).
		PaddingLeft(1)

	CounterStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorMuted).
		Padding(0, 1)
	ThumbStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	ThumbSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1).
		Bold(true)
	NavHintStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	LoadingTextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	LoadingSubtextStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)

	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
