// Package tui provides styled console output using lipgloss for rich terminal UI:
// the help command table, the build summary table and the version box.
package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lazy initialization to avoid cold start penalty from lipgloss terminal detection
var (
	initOnce sync.Once

	// Colors
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorSuccess   lipgloss.Color
	colorError     lipgloss.Color
	colorMuted     lipgloss.Color

	// Text styles
	StyleTitle    lipgloss.Style
	StyleVersion  lipgloss.Style
	StylePlatform lipgloss.Style
	StyleMuted    lipgloss.Style

	// Box styles
	StyleInfoBox lipgloss.Style

	// Table styles
	StyleTableHeader    lipgloss.Style
	StyleTableCell      lipgloss.Style
	StyleTableRowActive lipgloss.Style
	StyleTableBorder    lipgloss.Style

	// Indicator styles
	StyleCheckMark lipgloss.Style
	StyleCrossMark lipgloss.Style
)

// initStyles initializes all lipgloss styles lazily
func initStyles() {
	initOnce.Do(func() {
		// Force TrueColor profile to skip slow terminal capability detection
		// See: https://github.com/charmbracelet/lipgloss/issues/86
		lipgloss.SetColorProfile(termenv.TrueColor)

		// Color palette
		colorPrimary = lipgloss.Color("39")    // Cyan
		colorSecondary = lipgloss.Color("213") // Magenta/Pink
		colorSuccess = lipgloss.Color("42")    // Green
		colorError = lipgloss.Color("196")     // Red
		colorMuted = lipgloss.Color("245")     // Gray

		StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

		StyleVersion = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

		StylePlatform = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

		StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

		StyleInfoBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

		StyleTableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

		StyleTableCell = lipgloss.NewStyle().
			Padding(0, 1)

		StyleTableRowActive = StyleTableCell.
			Foreground(colorSuccess)

		StyleTableBorder = lipgloss.NewStyle().
			Foreground(colorMuted)

		StyleCheckMark = lipgloss.NewStyle().Foreground(colorSuccess)
		StyleCrossMark = lipgloss.NewStyle().Foreground(colorError)
	})
}

// SetColor switches rendering between the full palette and plain text.
// Plain text suits pipes and --no-color.
func SetColor(enabled bool) {
	initStyles()
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// RenderTitle renders a styled title
func RenderTitle(text string) string {
	initStyles()
	return StyleTitle.Render(text)
}

// RenderPlatform renders a platform name with styling
func RenderPlatform(name string) string {
	initStyles()
	return StylePlatform.Render(name)
}

// RenderVersion renders a version string with styling
func RenderVersion(version string) string {
	initStyles()
	return StyleVersion.Render(version)
}

// RenderMuted renders text in a muted/dim style
func RenderMuted(text string) string {
	initStyles()
	return StyleMuted.Render(text)
}

// RenderInfoBox renders content in an info-styled box
func RenderInfoBox(content string) string {
	initStyles()
	return StyleInfoBox.Render(content)
}

// GetCheckMark returns the styled checkmark indicator
func GetCheckMark() string {
	initStyles()
	return StyleCheckMark.Render("✓")
}

// GetCrossMark returns the styled cross indicator
func GetCrossMark() string {
	initStyles()
	return StyleCrossMark.Render("✗")
}
