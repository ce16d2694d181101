// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"dispensa/internal/inventory"
	"dispensa/internal/model"
)

var (
	// PrimaryColor is the main theme color (kitchen-pass orange).
	PrimaryColor = lipgloss.Color("#E8590C")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	AlertIcon   = "🚨"
	BoxIcon     = "📦"
)

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(BoxIcon + " " + title)
}

// RenderNotification formats a store notification with the style and icon
// matching its level.
func RenderNotification(n inventory.Notification) string {
	switch n.Level {
	case inventory.LevelSuccess:
		return SuccessStyle.Render(SuccessIcon + " " + n.Message)
	case inventory.LevelWarning:
		return WarningStyle.Render(WarningIcon + " " + n.Message)
	case inventory.LevelError:
		return ErrorStyle.Render(ErrorIcon + " " + n.Message)
	default:
		return InfoStyle.Render(InfoIcon + " " + n.Message)
	}
}

// RenderStatus formats a stock status label in its signal color.
func RenderStatus(s model.Status) string {
	switch s {
	case model.StatusOut:
		return ErrorStyle.Render(s.Label())
	case model.StatusLow:
		return WarningStyle.Render(s.Label())
	default:
		return SuccessStyle.Render(s.Label())
	}
}
