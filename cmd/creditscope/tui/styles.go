// Package tui provides the interactive terminal dashboard for creditscope.
// It uses Charmbracelet's Bubble Tea, Lip Gloss, and Bubbles.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the dashboard.
var (
	// Primary colors
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#00D9FF")

	// Meter colors
	ingestionColor = lipgloss.Color("#FF9500")
	indexingColor  = lipgloss.Color("#5AC8FA")

	// Status colors
	successColor = lipgloss.Color("#28A745")
	warningColor = lipgloss.Color("#FFC107")
	dangerColor  = lipgloss.Color("#DC3545")

	// Neutral colors
	mutedColor     = lipgloss.Color("#666666")
	subtleColor    = lipgloss.Color("#444444")
	borderColor    = lipgloss.Color("#333333")
	highlightColor = lipgloss.Color("#1A1A2E")
)

// Box styles for containers.
var (
	// outerBoxStyle is the main container style.
	outerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// dividerStyle creates horizontal dividers.
	dividerStyle = lipgloss.NewStyle().
			Foreground(borderColor)
)

// Text styles.
var (
	// titleStyle for main titles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// mutedTextStyle for less important text.
	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// errorTextStyle for error messages.
	errorTextStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// successTextStyle for success messages.
	successTextStyle = lipgloss.NewStyle().
				Foreground(successColor)

	// warningTextStyle for warning messages.
	warningTextStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	// creditsTextStyle for credit amounts.
	creditsTextStyle = lipgloss.NewStyle().
				Foreground(accentColor)
)

// Meter styles.
var (
	// ingestionBarStyle for Batch Data Pipeline chart segments.
	ingestionBarStyle = lipgloss.NewStyle().
				Foreground(ingestionColor)

	// indexingBarStyle for Unstructured Data Processed chart segments.
	indexingBarStyle = lipgloss.NewStyle().
				Foreground(indexingColor)

	// ingestionTextStyle for ingestion meter labels.
	ingestionTextStyle = lipgloss.NewStyle().
				Foreground(ingestionColor).
				Bold(true)

	// indexingTextStyle for indexing meter labels.
	indexingTextStyle = lipgloss.NewStyle().
				Foreground(indexingColor).
				Bold(true)
)

// List and row styles.
var (
	// selectedItemStyle for the currently highlighted row.
	selectedItemStyle = lipgloss.NewStyle().
				Background(highlightColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	// normalItemStyle for non-selected rows.
	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// cursorStyle for the cursor indicator.
	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// emptyBarStyle for the unfilled portion of chart rows.
	emptyBarStyle = lipgloss.NewStyle().
			Foreground(subtleColor)
)

// Severity styles.
var (
	// highSeverityStyle for high severity alerts.
	highSeverityStyle = lipgloss.NewStyle().
				Foreground(dangerColor).
				Bold(true)

	// mediumSeverityStyle for medium severity alerts.
	mediumSeverityStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	// lowSeverityStyle for low severity alerts.
	lowSeverityStyle = lipgloss.NewStyle().
				Foreground(mutedColor)
)

// Tab bar styles.
var (
	// activeTabStyle for the selected tab.
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	// inactiveTabStyle for unselected tabs.
	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(subtleColor).
				Foreground(lipgloss.Color("#CCCCCC"))
)

// Key hint styles.
var (
	// keyStyle for keyboard key hints.
	keyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// keyDescStyle for key descriptions.
	keyDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// renderDivider creates a horizontal divider line.
func renderDivider(width int) string {
	return dividerStyle.Render(repeatChar('─', width))
}

// repeatChar repeats a character n times.
func repeatChar(char rune, n int) string {
	if n <= 0 {
		return ""
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = char
	}
	return string(result)
}

// truncate shortens a string to fit within maxLen, preserving the start.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// padLeft pads a string to the left to reach the target width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return repeatChar(' ', width-len(s)) + s
}

// padRight pads a string to the right to reach the target width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + repeatChar(' ', width-len(s))
}
