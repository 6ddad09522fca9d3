// Package styles provides shared lipgloss styles for moji's terminal output.
//
// Styles always render ANSI sequences. Writers created with
// colorprofile.NewWriter downsample or strip them for the actual terminal,
// pipes and NO_COLOR.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the generated message (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Warning is used for skipped files and no-op results (orange)
	Warning color.Color = lipgloss.Color("214")
)

var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MessageBox frames a generated commit message.
	MessageBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)
