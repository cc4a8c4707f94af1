// Package display renders session state as terminal tables, panels, and
// bar charts. It is purely derived from the state it is handed and never
// mutates it.
package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	panelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(0, 1)

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6"))

	dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	ordersBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6"))

	participantsBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))
)

// Title renders a section title.
func Title(text string) string {
	return titleStyle.Render(text)
}

// Error shows an error message.
func Error(err error) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %s", err)))
}

// Errorf shows a formatted error message.
func Errorf(format string, args ...any) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("❌ "+format, args...)))
}

// Success shows a success message.
func Success(message string) {
	fmt.Println(successStyle.Render(fmt.Sprintf("✅ %s", message)))
}

// Warning shows a warning message.
func Warning(message string) {
	fmt.Println(warnStyle.Render(fmt.Sprintf("⚠️  %s", message)))
}

// Info shows an informational message.
func Info(message string) {
	fmt.Println(infoStyle.Render(fmt.Sprintf("ℹ️  %s", message)))
}
